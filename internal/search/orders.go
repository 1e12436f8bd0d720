package search

import (
	"time"

	"github.com/NotAnsar/orava-api/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderQuery is the optional predicate set for order search. Date
// bounds are inclusive on both ends.
type OrderQuery struct {
	UserID    *uuid.UUID
	UserEmail *string
	UserName  *string
	Status    *store.OrderStatus
	MinTotal  *decimal.Decimal
	MaxTotal  *decimal.Decimal
	StartDate *time.Time
	EndDate   *time.Time
	PageSort
}

var orderComparators = map[string]func(a, b store.Order) bool{
	"total":    func(a, b store.Order) bool { return a.Total.LessThan(b.Total) },
	"status":   func(a, b store.Order) bool { return a.Status < b.Status },
	"userName": func(a, b store.Order) bool { return a.UserName < b.UserName },
}

func orderComparator(sortBy string) func(a, b store.Order) bool {
	if cmp, ok := orderComparators[sortBy]; ok {
		return cmp
	}
	return func(a, b store.Order) bool { return a.CreatedAt.Before(b.CreatedAt) }
}

func FilterOrders(orders []store.Order, q OrderQuery) []store.Order {
	if q.UserID != nil {
		orders = filterList(orders, func(o store.Order) bool {
			return o.UserID == *q.UserID
		})
	}
	if q.UserEmail != nil && *q.UserEmail != "" {
		orders = filterList(orders, func(o store.Order) bool {
			return containsFold(o.UserEmail, *q.UserEmail)
		})
	}
	if q.UserName != nil && *q.UserName != "" {
		orders = filterList(orders, func(o store.Order) bool {
			return containsFold(o.UserName, *q.UserName)
		})
	}
	if q.Status != nil {
		orders = filterList(orders, func(o store.Order) bool {
			return o.Status == *q.Status
		})
	}
	if q.MinTotal != nil {
		orders = filterList(orders, func(o store.Order) bool {
			return o.Total.GreaterThanOrEqual(*q.MinTotal)
		})
	}
	if q.MaxTotal != nil {
		orders = filterList(orders, func(o store.Order) bool {
			return o.Total.LessThanOrEqual(*q.MaxTotal)
		})
	}
	if q.StartDate != nil {
		orders = filterList(orders, func(o store.Order) bool {
			return !o.CreatedAt.Before(*q.StartDate)
		})
	}
	if q.EndDate != nil {
		orders = filterList(orders, func(o store.Order) bool {
			return !o.CreatedAt.After(*q.EndDate)
		})
	}
	return sortAndPaginate(orders, orderComparator(q.SortBy), q.PageSort)
}
