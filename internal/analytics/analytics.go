package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/NotAnsar/orava-api/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service computes the dashboard reports. Every report fetches a full
// snapshot and folds in memory; the builders below are pure so they can
// be exercised with a fixed clock.
type Service struct {
	Store *store.Store
}

func NewService(s *store.Store) *Service {
	return &Service{Store: s}
}

func (s *Service) ordersInRange(ctx context.Context, token string, now time.Time) ([]store.Order, error) {
	return s.Store.OrdersCreatedAfter(ctx, StartFor(token, now))
}

func (s *Service) RevenueTrends(ctx context.Context, token string) ([]RevenueTrend, error) {
	now := time.Now()
	orders, err := s.ordersInRange(ctx, token, now)
	if err != nil {
		return nil, err
	}
	return BuildRevenueTrends(orders, token, now), nil
}

func (s *Service) CategoryPerformance(ctx context.Context, token string) ([]CategoryPerformance, error) {
	now := time.Now()
	orders, err := s.ordersInRange(ctx, token, now)
	if err != nil {
		return nil, err
	}
	return BuildCategoryPerformance(orders), nil
}

func (s *Service) OrderStatusDistribution(ctx context.Context, token string) ([]OrderStatusCount, error) {
	now := time.Now()
	orders, err := s.ordersInRange(ctx, token, now)
	if err != nil {
		return nil, err
	}
	return BuildOrderStatusDistribution(orders), nil
}

func (s *Service) TopSellingProducts(ctx context.Context, token string) ([]TopProduct, error) {
	now := time.Now()
	orders, err := s.ordersInRange(ctx, token, now)
	if err != nil {
		return nil, err
	}
	return BuildTopProducts(orders), nil
}

func (s *Service) CustomerSegmentation(ctx context.Context, token string) ([]CustomerSegment, error) {
	now := time.Now()
	orders, err := s.ordersInRange(ctx, token, now)
	if err != nil {
		return nil, err
	}
	return BuildCustomerSegmentation(orders, token, now), nil
}

func (s *Service) SalesByDayOfWeek(ctx context.Context, token string) ([]SalesByDay, error) {
	now := time.Now()
	orders, err := s.ordersInRange(ctx, token, now)
	if err != nil {
		return nil, err
	}
	return BuildSalesByDay(orders), nil
}

// inventoryStatusThreshold is the alert line drawn on the dashboard
// inventory widget; inventoryStatusLimit caps the widget to the lowest
// stocked items.
const (
	inventoryStatusThreshold = 15
	inventoryStatusLimit     = 6
)

func (s *Service) InventoryStatus(ctx context.Context) ([]InventoryStatus, error) {
	products, err := s.Store.Products(ctx)
	if err != nil {
		return nil, err
	}
	return BuildInventoryStatus(products), nil
}

// BuildRevenueTrends folds orders into ordered, zero-filled buckets.
// Orders whose label falls outside the pre-initialized window get a
// fresh bucket appended at the end.
func BuildRevenueTrends(orders []store.Order, token string, now time.Time) []RevenueTrend {
	layout := labelLayout(token)
	labels := bucketLabels(token, now)

	buckets := make(map[string]*RevenueTrend, len(labels))
	for _, label := range labels {
		buckets[label] = &RevenueTrend{Date: label, Revenue: decimal.Zero}
	}

	for _, order := range orders {
		label := order.CreatedAt.Format(layout)
		bucket, ok := buckets[label]
		if !ok {
			bucket = &RevenueTrend{Date: label, Revenue: decimal.Zero}
			buckets[label] = bucket
			labels = append(labels, label)
		}
		bucket.Revenue = bucket.Revenue.Add(order.Total)
		bucket.Orders++
	}

	out := make([]RevenueTrend, 0, len(labels))
	for _, label := range labels {
		out = append(out, *buckets[label])
	}
	return out
}

// BuildCategoryPerformance sums unitPrice×quantity per category across
// every item line, descending by sales.
func BuildCategoryPerformance(orders []store.Order) []CategoryPerformance {
	totals := make(map[uuid.UUID]*CategoryPerformance)
	seen := make([]uuid.UUID, 0)

	for _, order := range orders {
		for _, item := range order.Items {
			entry, ok := totals[item.CategoryID]
			if !ok {
				entry = &CategoryPerformance{CategoryName: item.CategoryName, Sales: decimal.Zero}
				totals[item.CategoryID] = entry
				seen = append(seen, item.CategoryID)
			}
			entry.Sales = entry.Sales.Add(item.Subtotal())
		}
	}

	out := make([]CategoryPerformance, 0, len(seen))
	for _, id := range seen {
		out = append(out, *totals[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sales.GreaterThan(out[j].Sales)
	})
	return out
}

// BuildOrderStatusDistribution counts orders per observed status; absent
// statuses produce no entry.
func BuildOrderStatusDistribution(orders []store.Order) []OrderStatusCount {
	counts := make(map[store.OrderStatus]int)
	seen := make([]store.OrderStatus, 0, 4)

	for _, order := range orders {
		if _, ok := counts[order.Status]; !ok {
			seen = append(seen, order.Status)
		}
		counts[order.Status]++
	}

	out := make([]OrderStatusCount, 0, len(seen))
	for _, status := range seen {
		out = append(out, OrderStatusCount{Status: string(status), Count: counts[status]})
	}
	return out
}

const topProductsLimit = 5

// BuildTopProducts ranks products by summed quantity; ties keep
// first-seen order.
func BuildTopProducts(orders []store.Order) []TopProduct {
	totals := make(map[uuid.UUID]*TopProduct)
	seen := make([]uuid.UUID, 0)

	for _, order := range orders {
		for _, item := range order.Items {
			entry, ok := totals[item.ProductID]
			if !ok {
				entry = &TopProduct{Name: item.ProductName}
				totals[item.ProductID] = entry
				seen = append(seen, item.ProductID)
			}
			entry.Sales += item.Quantity
		}
	}

	out := make([]TopProduct, 0, len(seen))
	for _, id := range seen {
		out = append(out, *totals[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sales > out[j].Sales
	})
	if len(out) > topProductsLimit {
		out = out[:topProductsLimit]
	}
	return out
}

// BuildCustomerSegmentation classifies each order as a new or returning
// customer per bucket. "New" means the order instant equals that user's
// earliest order instant within the filtered window, so a returning
// customer whose earlier orders fall outside the window still counts as
// new. Orders whose label is not pre-initialized are skipped entirely,
// unlike the revenue trend.
func BuildCustomerSegmentation(orders []store.Order, token string, now time.Time) []CustomerSegment {
	layout := labelLayout(token)
	labels := bucketLabels(token, now)

	buckets := make(map[string]*CustomerSegment, len(labels))
	for _, label := range labels {
		buckets[label] = &CustomerSegment{Month: label}
	}

	earliest := make(map[uuid.UUID]time.Time)
	for _, order := range orders {
		first, ok := earliest[order.UserID]
		if !ok || order.CreatedAt.Before(first) {
			earliest[order.UserID] = order.CreatedAt
		}
	}

	for _, order := range orders {
		bucket, ok := buckets[order.CreatedAt.Format(layout)]
		if !ok {
			continue
		}
		if order.CreatedAt.Equal(earliest[order.UserID]) {
			bucket.NewCustomers++
		} else {
			bucket.Returning++
		}
	}

	out := make([]CustomerSegment, 0, len(labels))
	for _, label := range labels {
		out = append(out, *buckets[label])
	}
	return out
}

var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// BuildSalesByDay always yields seven entries, Monday through Sunday.
func BuildSalesByDay(orders []store.Order) []SalesByDay {
	totals := make(map[time.Weekday]*SalesByDay, len(weekdayOrder))
	for _, day := range weekdayOrder {
		totals[day] = &SalesByDay{Day: day.String(), Sales: decimal.Zero}
	}

	for _, order := range orders {
		entry := totals[order.CreatedAt.Weekday()]
		entry.Sales = entry.Sales.Add(order.Total)
		entry.Transactions++
	}

	out := make([]SalesByDay, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		out = append(out, *totals[day])
	}
	return out
}

// BuildInventoryStatus surfaces the six lowest-stock live products.
func BuildInventoryStatus(products []store.Product) []InventoryStatus {
	live := make([]store.Product, 0, len(products))
	for _, p := range products {
		if !p.Archived {
			live = append(live, p)
		}
	}
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].Stock < live[j].Stock
	})
	if len(live) > inventoryStatusLimit {
		live = live[:inventoryStatusLimit]
	}

	out := make([]InventoryStatus, 0, len(live))
	for _, p := range live {
		out = append(out, InventoryStatus{Name: p.Name, Stock: p.Stock, Threshold: inventoryStatusThreshold})
	}
	return out
}
