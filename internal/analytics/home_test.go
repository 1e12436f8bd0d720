package analytics

import (
	"testing"

	"github.com/NotAnsar/orava-api/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthlyRevenue(t *testing.T) {
	user := uuid.New()
	orders := []store.Order{
		makeOrder(user, 100, store.OrderStatusNew, testNow),
		makeOrder(user, 50, store.OrderStatusNew, testNow.AddDate(0, -2, 0)),
		makeOrder(user, 25, store.OrderStatusNew, testNow.AddDate(0, -2, 0)),
		// exactly on the boundary: strictly-after filter drops it
		makeOrder(user, 999, store.OrderStatusNew, monthsAgo(testNow, 6)),
		makeOrder(user, 999, store.OrderStatusNew, testNow.AddDate(0, -9, 0)),
	}

	monthly := BuildMonthlyRevenue(orders, testNow)
	require.Len(t, monthly, 2)

	// ascending by month label, months without orders omitted
	assert.Equal(t, testNow.AddDate(0, -2, 0).Format("2006-01"), monthly[0].Month)
	assert.True(t, monthly[0].Revenue.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, testNow.Format("2006-01"), monthly[1].Month)
	assert.True(t, monthly[1].Revenue.Equal(decimal.NewFromInt(100)))
}

func TestBuildRecentOrders(t *testing.T) {
	user := uuid.New()
	orders := make([]store.Order, 0, 8)
	for i := 0; i < 8; i++ {
		o := makeOrder(user, int64(i), store.OrderStatusNew, testNow.AddDate(0, 0, -i))
		o.UserFirstName = "Ada"
		o.UserLastName = "Lovelace"
		o.UserEmail = "ada@example.com"
		orders = append(orders, o)
	}

	recent := BuildRecentOrders(orders)
	require.Len(t, recent, 5)
	assert.Equal(t, testNow, recent[0].CreatedAt)
	for i := 1; i < len(recent); i++ {
		assert.True(t, recent[i-1].CreatedAt.After(recent[i].CreatedAt))
	}
	assert.Equal(t, "Ada", recent[0].FirstName)
	assert.Equal(t, "Lovelace", recent[0].LastName)
	assert.Equal(t, "ada@example.com", recent[0].Email)
}

func TestBuildInventoryAlert(t *testing.T) {
	category := &store.Category{ID: uuid.New(), Name: "Shoes"}
	products := []store.Product{
		{ID: uuid.New(), Name: "plenty", Stock: 11, Category: category},
		{ID: uuid.New(), Name: "boundary", Stock: 10, Category: category, Price: decimal.NewFromInt(30)},
		{ID: uuid.New(), Name: "archived-low", Stock: 1, Archived: true},
	}

	alerts := BuildInventoryAlert(products)
	require.Len(t, alerts, 2)

	assert.Equal(t, "boundary", alerts[0].ProductName)
	assert.Equal(t, "Shoes", alerts[0].CategoryName)
	assert.Equal(t, 10, alerts[0].CurrentStock)
	assert.True(t, alerts[0].LowStock)
	assert.True(t, alerts[0].ProductPrice.Equal(decimal.NewFromInt(30)))

	// archived products still alert, with an empty category name when absent
	assert.Equal(t, "archived-low", alerts[1].ProductName)
	assert.True(t, alerts[1].Archived)
	assert.Equal(t, "", alerts[1].CategoryName)
}

func TestBuildCategorySalesCountsItemLines(t *testing.T) {
	shirts := uuid.New()
	user := uuid.New()

	// two item lines in one order both bump the counter
	orders := []store.Order{
		makeOrder(user, 0, store.OrderStatusNew, testNow,
			makeItem(uuid.New(), shirts, "tee", "Shirts", 1, 10),
			makeItem(uuid.New(), shirts, "polo", "Shirts", 2, 20),
		),
	}

	sales := BuildCategorySales(orders)
	require.Len(t, sales, 1)
	assert.Equal(t, shirts, sales[0].CategoryID)
	assert.Equal(t, int64(2), sales[0].TotalOrders)
	assert.True(t, sales[0].TotalRevenue.Equal(decimal.NewFromInt(50)))
}

func TestBuildCategorySalesSortedByRevenue(t *testing.T) {
	shirts, shoes := uuid.New(), uuid.New()
	user := uuid.New()
	orders := []store.Order{
		makeOrder(user, 0, store.OrderStatusNew, testNow,
			makeItem(uuid.New(), shirts, "tee", "Shirts", 1, 10),
			makeItem(uuid.New(), shoes, "runner", "Shoes", 1, 90),
		),
	}

	sales := BuildCategorySales(orders)
	require.Len(t, sales, 2)
	assert.Equal(t, "Shoes", sales[0].CategoryName)
	assert.Equal(t, "Shirts", sales[1].CategoryName)
}
