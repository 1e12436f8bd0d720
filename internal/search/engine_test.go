package search

import (
	"testing"
	"time"

	"github.com/NotAnsar/orava-api/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

func product(name string, price int64, stock int, createdOffset int) store.Product {
	return store.Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     decimal.NewFromInt(price),
		Stock:     stock,
		CreatedAt: baseTime.AddDate(0, 0, createdOffset),
	}
}

func names(products []store.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func page(sortBy, direction string, limit, offset int) PageSort {
	return PageSort{SortBy: sortBy, SortDirection: direction, Limit: limit, Offset: offset}
}

func TestFilterProductsNameSubstringCaseInsensitive(t *testing.T) {
	products := []store.Product{
		product("Blue Shirt", 10, 5, 0),
		product("red shirt", 12, 5, 1),
		product("Sneakers", 50, 5, 2),
	}

	name := "SHIRT"
	got := FilterProducts(products, ProductQuery{Name: &name, PageSort: page("name", "asc", 10, 0)})
	assert.Equal(t, []string{"Blue Shirt", "red shirt"}, names(got))
}

func TestFilterProductsPriceRangeInclusive(t *testing.T) {
	products := []store.Product{
		product("a", 9, 5, 0),
		product("b", 10, 5, 0),
		product("c", 20, 5, 0),
		product("d", 21, 5, 0),
	}

	min := decimal.NewFromInt(10)
	max := decimal.NewFromInt(20)
	got := FilterProducts(products, ProductQuery{
		MinPrice: &min,
		MaxPrice: &max,
		PageSort: page("price", "desc", 2, 0),
	})
	assert.Equal(t, []string{"c", "b"}, names(got))
}

func TestFilterProductsCategoryPredicateSkipsNilCategory(t *testing.T) {
	shirts := uuid.New()
	withCategory := product("categorized", 10, 5, 0)
	withCategory.Category = &store.Category{ID: shirts, Name: "Shirts"}
	products := []store.Product{product("bare", 10, 5, 0), withCategory}

	got := FilterProducts(products, ProductQuery{CategoryID: &shirts, PageSort: page("name", "asc", 10, 0)})
	assert.Equal(t, []string{"categorized"}, names(got))
}

func TestFilterProductsUnknownSortFallsBackToName(t *testing.T) {
	products := []store.Product{
		product("zebra", 1, 1, 0),
		product("apple", 2, 2, 0),
	}

	got := FilterProducts(products, ProductQuery{PageSort: page("nonsense", "asc", 10, 0)})
	assert.Equal(t, []string{"apple", "zebra"}, names(got))
}

func TestFilterProductsDirectionOnlyDescReverses(t *testing.T) {
	products := []store.Product{
		product("a", 1, 1, 0),
		product("b", 2, 2, 0),
	}

	desc := FilterProducts(products, ProductQuery{PageSort: page("name", "DESC", 10, 0)})
	assert.Equal(t, []string{"b", "a"}, names(desc))

	// anything that is not "desc" sorts ascending
	weird := FilterProducts(products, ProductQuery{PageSort: page("name", "downwards", 10, 0)})
	assert.Equal(t, []string{"a", "b"}, names(weird))
}

func TestSortAndPaginateClamping(t *testing.T) {
	products := []store.Product{
		product("a", 1, 1, 0),
		product("b", 2, 2, 0),
		product("c", 3, 3, 0),
	}

	tests := []struct {
		name string
		page PageSort
		want []string
	}{
		{"offset past end", page("name", "asc", 10, 5), []string{}},
		{"offset at end", page("name", "asc", 10, 3), []string{}},
		{"zero limit", page("name", "asc", 0, 0), []string{}},
		{"negative limit", page("name", "asc", -1, 0), []string{}},
		{"negative offset treated as zero", page("name", "asc", 2, -3), []string{"a", "b"}},
		{"offset then limit", page("name", "asc", 1, 1), []string{"b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(FilterProducts(products, ProductQuery{PageSort: tt.page})))
		})
	}
}

func TestSortAndPaginateDoesNotMutateInput(t *testing.T) {
	products := []store.Product{
		product("b", 2, 2, 0),
		product("a", 1, 1, 0),
	}

	_ = FilterProducts(products, ProductQuery{PageSort: page("name", "asc", 10, 0)})
	assert.Equal(t, []string{"b", "a"}, names(products))
}

func TestFilterProductsExcludingPredicateYieldsEmpty(t *testing.T) {
	products := []store.Product{product("a", 1, 1, 0)}

	minStock := 100
	got := FilterProducts(products, ProductQuery{MinStock: &minStock, PageSort: page("name", "asc", 10, 0)})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterOrders(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	orders := []store.Order{
		{ID: uuid.New(), UserID: alice, UserName: "Alice Smith", UserEmail: "alice@example.com",
			Total: decimal.NewFromInt(100), Status: store.OrderStatusNew, CreatedAt: baseTime},
		{ID: uuid.New(), UserID: bob, UserName: "Bob Jones", UserEmail: "bob@example.com",
			Total: decimal.NewFromInt(50), Status: store.OrderStatusCompleted, CreatedAt: baseTime.AddDate(0, 0, 1)},
		{ID: uuid.New(), UserID: alice, UserName: "Alice Smith", UserEmail: "alice@example.com",
			Total: decimal.NewFromInt(75), Status: store.OrderStatusCompleted, CreatedAt: baseTime.AddDate(0, 0, 2)},
	}

	t.Run("by user id sorted by total desc", func(t *testing.T) {
		got := FilterOrders(orders, OrderQuery{UserID: &alice, PageSort: page("total", "desc", 10, 0)})
		require.Len(t, got, 2)
		assert.True(t, got[0].Total.Equal(decimal.NewFromInt(100)))
	})

	t.Run("by status", func(t *testing.T) {
		status := store.OrderStatusCompleted
		got := FilterOrders(orders, OrderQuery{Status: &status, PageSort: page("createdAt", "asc", 10, 0)})
		require.Len(t, got, 2)
		assert.Equal(t, bob, got[0].UserID)
	})

	t.Run("created range inclusive both bounds", func(t *testing.T) {
		start := baseTime.AddDate(0, 0, 1)
		end := baseTime.AddDate(0, 0, 2)
		got := FilterOrders(orders, OrderQuery{StartDate: &start, EndDate: &end, PageSort: page("createdAt", "asc", 10, 0)})
		require.Len(t, got, 2)
	})

	t.Run("user name substring", func(t *testing.T) {
		needle := "smith"
		got := FilterOrders(orders, OrderQuery{UserName: &needle, PageSort: page("createdAt", "asc", 10, 0)})
		assert.Len(t, got, 2)
	})
}

func TestFilterOrdersDefaultSortIsCreatedAt(t *testing.T) {
	orders := []store.Order{
		{ID: uuid.New(), CreatedAt: baseTime.AddDate(0, 0, 2), Total: decimal.Zero},
		{ID: uuid.New(), CreatedAt: baseTime, Total: decimal.Zero},
	}

	got := FilterOrders(orders, OrderQuery{PageSort: page("whatever", "asc", 10, 0)})
	require.Len(t, got, 2)
	assert.True(t, got[0].CreatedAt.Before(got[1].CreatedAt))
}
