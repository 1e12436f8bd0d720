package search

import (
	"context"
	"time"

	"github.com/NotAnsar/orava-api/internal/auth"
	"github.com/NotAnsar/orava-api/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Engine runs searches over full table snapshots. Filtering, sorting,
// and pagination all happen in memory.
type Engine struct {
	Store *store.Store
}

func NewEngine(s *store.Store) *Engine {
	return &Engine{Store: s}
}

func (e *Engine) Products(ctx context.Context, q ProductQuery) ([]store.Product, error) {
	products, err := e.Store.Products(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProducts(products, q), nil
}

func (e *Engine) Orders(ctx context.Context, q OrderQuery) ([]store.Order, error) {
	orders, err := e.Store.Orders(ctx)
	if err != nil {
		return nil, err
	}
	return FilterOrders(orders, q), nil
}

func (e *Engine) Users(ctx context.Context, q UserQuery) ([]store.User, error) {
	users, err := e.Store.Users(ctx)
	if err != nil {
		return nil, err
	}
	return FilterUsers(users, q), nil
}

const (
	defaultLimit              = 10
	defaultInventoryThreshold = 10
)

// Params is a loosely typed parameter bag decoded from JSON. Every
// getter is lenient: a missing key, wrong type, bad UUID, bad date, or
// unknown enum name reads as absent, never as an error.
type Params map[string]any

func subParams(value any) Params {
	if m, ok := value.(map[string]any); ok {
		return Params(m)
	}
	return Params{}
}

func (p Params) str(key, fallback string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return fallback
}

func (p Params) strPtr(key string) *string {
	if v, ok := p[key].(string); ok {
		return &v
	}
	return nil
}

func (p Params) boolPtr(key string) *bool {
	if v, ok := p[key].(bool); ok {
		return &v
	}
	return nil
}

func (p Params) number(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func (p Params) intPtr(key string) *int {
	if v, ok := p.number(key); ok {
		n := int(v)
		return &n
	}
	return nil
}

func (p Params) intOr(key string, fallback int) int {
	if v := p.intPtr(key); v != nil {
		return *v
	}
	return fallback
}

func (p Params) decimalPtr(key string) *decimal.Decimal {
	if v, ok := p.number(key); ok {
		d := decimal.NewFromFloat(v)
		return &d
	}
	return nil
}

func (p Params) uuidPtr(key string) *uuid.UUID {
	v, ok := p[key].(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func (p Params) datePtr(key string) *time.Time {
	v, ok := p[key].(string)
	if !ok {
		return nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil
	}
	return &t
}

func (p Params) orderStatusPtr(key string) *store.OrderStatus {
	v, ok := p[key].(string)
	if !ok {
		return nil
	}
	status, ok := store.ParseOrderStatus(v)
	if !ok {
		return nil
	}
	return &status
}

func (p Params) rolePtr(key string) *auth.UserRole {
	v, ok := p[key].(string)
	if !ok {
		return nil
	}
	role, ok := auth.ParseRole(v)
	if !ok {
		return nil
	}
	return &role
}

func DecodeProductQuery(p Params) ProductQuery {
	return ProductQuery{
		Name:       p.strPtr("name"),
		CategoryID: p.uuidPtr("categoryId"),
		ColorID:    p.uuidPtr("colorId"),
		SizeID:     p.uuidPtr("sizeId"),
		Archived:   p.boolPtr("archived"),
		Featured:   p.boolPtr("featured"),
		MinPrice:   p.decimalPtr("minPrice"),
		MaxPrice:   p.decimalPtr("maxPrice"),
		MinStock:   p.intPtr("minStock"),
		MaxStock:   p.intPtr("maxStock"),
		PageSort: PageSort{
			SortBy:        p.str("sortBy", "name"),
			SortDirection: p.str("sortDirection", "asc"),
			Limit:         p.intOr("limit", defaultLimit),
			Offset:        p.intOr("offset", 0),
		},
	}
}

func DecodeOrderQuery(p Params) OrderQuery {
	return OrderQuery{
		UserID:    p.uuidPtr("userId"),
		UserEmail: p.strPtr("userEmail"),
		UserName:  p.strPtr("userName"),
		Status:    p.orderStatusPtr("status"),
		MinTotal:  p.decimalPtr("minTotal"),
		MaxTotal:  p.decimalPtr("maxTotal"),
		StartDate: p.datePtr("startDate"),
		EndDate:   p.datePtr("endDate"),
		PageSort: PageSort{
			SortBy:        p.str("sortBy", "createdAt"),
			SortDirection: p.str("sortDirection", "desc"),
			Limit:         p.intOr("limit", defaultLimit),
			Offset:        p.intOr("offset", 0),
		},
	}
}

func DecodeUserQuery(p Params) UserQuery {
	return UserQuery{
		FirstName: p.strPtr("firstName"),
		LastName:  p.strPtr("lastName"),
		Email:     p.strPtr("email"),
		Role:      p.rolePtr("role"),
		StartDate: p.datePtr("startDate"),
		EndDate:   p.datePtr("endDate"),
		PageSort: PageSort{
			SortBy:        p.str("sortBy", "createdAt"),
			SortDirection: p.str("sortDirection", "asc"),
			Limit:         p.intOr("limit", defaultLimit),
			Offset:        p.intOr("offset", 0),
		},
	}
}

// InventoryAlertQuery is the specialized product query behind the
// "inventoryAlerts" key: live products at or below a stock threshold,
// lowest stock first.
func InventoryAlertQuery(p Params) ProductQuery {
	archived := false
	threshold := p.intOr("threshold", defaultInventoryThreshold)
	return ProductQuery{
		Archived: &archived,
		MaxStock: &threshold,
		PageSort: PageSort{
			SortBy:        "stock",
			SortDirection: "asc",
			Limit:         p.intOr("limit", defaultLimit),
			Offset:        0,
		},
	}
}

// MultiQuery dispatches a bag of named sub-queries and returns a result
// map under the same keys. Keys absent from the input produce no output
// keys.
func (e *Engine) MultiQuery(ctx context.Context, input map[string]any) (map[string]any, error) {
	result := make(map[string]any)

	if raw, ok := input["products"]; ok {
		products, err := e.Products(ctx, DecodeProductQuery(subParams(raw)))
		if err != nil {
			return nil, err
		}
		result["products"] = products
	}

	if raw, ok := input["orders"]; ok {
		orders, err := e.Orders(ctx, DecodeOrderQuery(subParams(raw)))
		if err != nil {
			return nil, err
		}
		result["orders"] = orders
	}

	if raw, ok := input["users"]; ok {
		users, err := e.Users(ctx, DecodeUserQuery(subParams(raw)))
		if err != nil {
			return nil, err
		}
		result["users"] = users
	}

	if raw, ok := input["inventoryAlerts"]; ok {
		alerts, err := e.Products(ctx, InventoryAlertQuery(subParams(raw)))
		if err != nil {
			return nil, err
		}
		result["inventoryAlerts"] = alerts
	}

	return result, nil
}
