package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/NotAnsar/orava-api/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	recentOrdersLimit  = 5
	lowStockThreshold  = 10
	monthlyRevenueSpan = 6
)

func (s *Service) DashboardSummary(ctx context.Context) (DashboardSummary, error) {
	totalClients, err := s.Store.CountUsers(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	totalProducts, err := s.Store.CountProducts(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	orders, err := s.Store.Orders(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	totalRevenue := decimal.Zero
	for _, order := range orders {
		totalRevenue = totalRevenue.Add(order.Total)
	}
	return DashboardSummary{
		TotalClients:  totalClients,
		TotalProducts: totalProducts,
		TotalRevenue:  totalRevenue,
		TotalSales:    int64(len(orders)),
	}, nil
}

func (s *Service) MonthlyRevenue(ctx context.Context) ([]MonthlyRevenue, error) {
	orders, err := s.Store.Orders(ctx)
	if err != nil {
		return nil, err
	}
	return BuildMonthlyRevenue(orders, time.Now()), nil
}

func (s *Service) RecentOrders(ctx context.Context) ([]RecentOrder, error) {
	orders, err := s.Store.Orders(ctx)
	if err != nil {
		return nil, err
	}
	return BuildRecentOrders(orders), nil
}

func (s *Service) InventoryAlert(ctx context.Context) ([]InventoryAlert, error) {
	products, err := s.Store.Products(ctx)
	if err != nil {
		return nil, err
	}
	return BuildInventoryAlert(products), nil
}

func (s *Service) CategorySalesPerformance(ctx context.Context) ([]CategorySales, error) {
	orders, err := s.Store.Orders(ctx)
	if err != nil {
		return nil, err
	}
	return BuildCategorySales(orders), nil
}

// BuildMonthlyRevenue sums order totals per month over the last six
// months, strictly after the boundary instant. Months without orders
// are omitted rather than zero-filled.
func BuildMonthlyRevenue(orders []store.Order, now time.Time) []MonthlyRevenue {
	boundary := monthsAgo(now, monthlyRevenueSpan)

	totals := make(map[string]decimal.Decimal)
	for _, order := range orders {
		if !order.CreatedAt.After(boundary) {
			continue
		}
		month := order.CreatedAt.Format(layoutMonth)
		totals[month] = totals[month].Add(order.Total)
	}

	out := make([]MonthlyRevenue, 0, len(totals))
	for month, revenue := range totals {
		out = append(out, MonthlyRevenue{Month: month, Revenue: revenue})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// BuildRecentOrders returns the five newest orders.
func BuildRecentOrders(orders []store.Order) []RecentOrder {
	sorted := make([]store.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > recentOrdersLimit {
		sorted = sorted[:recentOrdersLimit]
	}

	out := make([]RecentOrder, 0, len(sorted))
	for _, order := range sorted {
		out = append(out, RecentOrder{
			ID:        order.ID,
			UserID:    order.UserID,
			FirstName: order.UserFirstName,
			LastName:  order.UserLastName,
			Email:     order.UserEmail,
			Total:     order.Total,
			CreatedAt: order.CreatedAt,
			Status:    string(order.Status),
		})
	}
	return out
}

// BuildInventoryAlert flags every product at or below the low-stock
// threshold, archived ones included.
func BuildInventoryAlert(products []store.Product) []InventoryAlert {
	out := make([]InventoryAlert, 0)
	for _, p := range products {
		if p.Stock > lowStockThreshold {
			continue
		}
		categoryName := ""
		if p.Category != nil {
			categoryName = p.Category.Name
		}
		out = append(out, InventoryAlert{
			ProductID:    p.ID,
			ProductName:  p.Name,
			CategoryName: categoryName,
			CurrentStock: p.Stock,
			LowStock:     true,
			Archived:     p.Archived,
			ProductPrice: p.Price,
		})
	}
	return out
}

// BuildCategorySales aggregates every order's item lines per category,
// descending by revenue. The order counter increments once per item
// line, not once per distinct order, which is what the dashboard has
// always displayed.
func BuildCategorySales(orders []store.Order) []CategorySales {
	totals := make(map[uuid.UUID]*CategorySales)
	seen := make([]uuid.UUID, 0)

	for _, order := range orders {
		for _, item := range order.Items {
			entry, ok := totals[item.CategoryID]
			if !ok {
				entry = &CategorySales{
					CategoryID:   item.CategoryID,
					CategoryName: item.CategoryName,
					TotalRevenue: decimal.Zero,
				}
				totals[item.CategoryID] = entry
				seen = append(seen, item.CategoryID)
			}
			entry.TotalOrders++
			entry.TotalRevenue = entry.TotalRevenue.Add(item.Subtotal())
		}
	}

	out := make([]CategorySales, 0, len(seen))
	for _, id := range seen {
		out = append(out, *totals[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalRevenue.GreaterThan(out[j].TotalRevenue)
	})
	return out
}
