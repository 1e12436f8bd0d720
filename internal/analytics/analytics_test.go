package analytics

import (
	"testing"
	"time"

	"github.com/NotAnsar/orava-api/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

func makeOrder(userID uuid.UUID, total int64, status store.OrderStatus, createdAt time.Time, items ...store.OrderItem) store.Order {
	return store.Order{
		ID:        uuid.New(),
		UserID:    userID,
		Total:     decimal.NewFromInt(total),
		Status:    status,
		CreatedAt: createdAt,
		Items:     items,
	}
}

func makeItem(productID, categoryID uuid.UUID, productName, categoryName string, quantity int, unitPrice int64) store.OrderItem {
	return store.OrderItem{
		ID:           uuid.New(),
		ProductID:    productID,
		ProductName:  productName,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		Quantity:     quantity,
		UnitPrice:    decimal.NewFromInt(unitPrice),
	}
}

func TestBuildRevenueTrendsZeroFilledBuckets(t *testing.T) {
	user := uuid.New()
	orders := []store.Order{
		makeOrder(user, 100, store.OrderStatusNew, testNow),
		makeOrder(user, 40, store.OrderStatusCompleted, testNow.AddDate(0, 0, -1)),
		makeOrder(user, 60, store.OrderStatusCompleted, testNow.AddDate(0, 0, -1)),
	}

	trends := BuildRevenueTrends(orders, Range30Days, testNow)
	require.Len(t, trends, 31)

	byDate := make(map[string]RevenueTrend, len(trends))
	for _, trend := range trends {
		byDate[trend.Date] = trend
	}

	today := byDate[testNow.Format("01-02")]
	assert.True(t, today.Revenue.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, today.Orders)

	yesterday := byDate[testNow.AddDate(0, 0, -1).Format("01-02")]
	assert.True(t, yesterday.Revenue.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 2, yesterday.Orders)

	empty := byDate[testNow.AddDate(0, 0, -10).Format("01-02")]
	assert.True(t, empty.Revenue.IsZero())
	assert.Equal(t, 0, empty.Orders)
}

func TestBuildRevenueTrendsAppendsUnseenBucket(t *testing.T) {
	// a label outside the pre-initialized window still gets a bucket,
	// appended after the initialized sequence
	user := uuid.New()
	stray := makeOrder(user, 25, store.OrderStatusNew, testNow.AddDate(0, 0, -45))

	trends := BuildRevenueTrends([]store.Order{stray}, Range30Days, testNow)
	require.Len(t, trends, 32)

	last := trends[len(trends)-1]
	assert.Equal(t, testNow.AddDate(0, 0, -45).Format("01-02"), last.Date)
	assert.True(t, last.Revenue.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 1, last.Orders)
}

func TestBuildRevenueTrendsTotalMatchesOrderSum(t *testing.T) {
	user := uuid.New()
	orders := []store.Order{
		makeOrder(user, 10, store.OrderStatusNew, testNow),
		makeOrder(user, 20, store.OrderStatusNew, testNow.AddDate(0, -2, 0)),
		makeOrder(user, 30, store.OrderStatusNew, testNow.AddDate(0, -4, 0)),
	}

	trends := BuildRevenueTrends(orders, Range6Months, testNow)
	sum := decimal.Zero
	for _, trend := range trends {
		sum = sum.Add(trend.Revenue)
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(60)))
}

func TestBuildCategoryPerformance(t *testing.T) {
	shirts, shoes := uuid.New(), uuid.New()
	user := uuid.New()
	orders := []store.Order{
		makeOrder(user, 0, store.OrderStatusNew, testNow,
			makeItem(uuid.New(), shirts, "tee", "Shirts", 2, 15),  // 30
			makeItem(uuid.New(), shoes, "runner", "Shoes", 1, 80), // 80
		),
		makeOrder(user, 0, store.OrderStatusNew, testNow,
			makeItem(uuid.New(), shirts, "polo", "Shirts", 1, 25), // 25
		),
	}

	perf := BuildCategoryPerformance(orders)
	require.Len(t, perf, 2)
	assert.Equal(t, "Shoes", perf[0].CategoryName)
	assert.True(t, perf[0].Sales.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, "Shirts", perf[1].CategoryName)
	assert.True(t, perf[1].Sales.Equal(decimal.NewFromInt(55)))
}

func TestBuildOrderStatusDistributionOmitsAbsentStatuses(t *testing.T) {
	user := uuid.New()
	orders := []store.Order{
		makeOrder(user, 10, store.OrderStatusNew, testNow),
		makeOrder(user, 10, store.OrderStatusCompleted, testNow),
		makeOrder(user, 10, store.OrderStatusNew, testNow),
	}

	dist := BuildOrderStatusDistribution(orders)
	require.Len(t, dist, 2)

	counts := make(map[string]int, len(dist))
	for _, entry := range dist {
		counts[entry.Status] = entry.Count
	}
	assert.Equal(t, 2, counts["NEW"])
	assert.Equal(t, 1, counts["COMPLETED"])
}

func TestBuildTopProductsLimitAndTies(t *testing.T) {
	user := uuid.New()
	category := uuid.New()

	items := make([]store.OrderItem, 0, 7)
	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	for i, name := range names {
		items = append(items, makeItem(uuid.New(), category, name, "cat", 10-i, 1))
	}
	// tie: first-seen product keeps its rank under a stable sort
	tied := makeItem(uuid.New(), category, "tied", "cat", 10, 1)
	orders := []store.Order{makeOrder(user, 0, store.OrderStatusNew, testNow, items...)}
	orders = append(orders, makeOrder(user, 0, store.OrderStatusNew, testNow, tied))

	top := BuildTopProducts(orders)
	require.Len(t, top, 5)
	assert.Equal(t, "a", top[0].Name)
	assert.Equal(t, "tied", top[1].Name)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Sales, top[i].Sales)
	}
}

func TestBuildCustomerSegmentation(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	thisMonth := testNow.AddDate(0, 0, -1)
	lastMonth := testNow.AddDate(0, -1, 0)

	orders := []store.Order{
		makeOrder(alice, 10, store.OrderStatusNew, lastMonth),
		makeOrder(alice, 10, store.OrderStatusNew, thisMonth),
		makeOrder(bob, 10, store.OrderStatusNew, thisMonth),
	}

	segments := BuildCustomerSegmentation(orders, Range6Months, testNow)
	require.Len(t, segments, 7)

	byMonth := make(map[string]CustomerSegment, len(segments))
	for _, segment := range segments {
		byMonth[segment.Month] = segment
	}

	assert.Equal(t, 1, byMonth[lastMonth.Format("2006-01")].NewCustomers)
	current := byMonth[thisMonth.Format("2006-01")]
	assert.Equal(t, 1, current.NewCustomers) // bob
	assert.Equal(t, 1, current.Returning)    // alice
}

func TestBuildCustomerSegmentationWindowApproximation(t *testing.T) {
	// Classification only sees orders inside the window: a long-time
	// customer whose earlier orders were excluded by the range filter is
	// counted as new. Intentional, matches the live dashboard.
	alice := uuid.New()
	orders := []store.Order{
		makeOrder(alice, 10, store.OrderStatusNew, testNow.AddDate(0, -1, 0)),
	}

	segments := BuildCustomerSegmentation(orders, Range3Months, testNow)
	byMonth := make(map[string]CustomerSegment, len(segments))
	for _, segment := range segments {
		byMonth[segment.Month] = segment
	}
	assert.Equal(t, 1, byMonth[testNow.AddDate(0, -1, 0).Format("2006-01")].NewCustomers)
}

func TestBuildCustomerSegmentationSkipsUnseenBuckets(t *testing.T) {
	alice := uuid.New()
	outside := makeOrder(alice, 10, store.OrderStatusNew, testNow.AddDate(0, 0, -45))

	segments := BuildCustomerSegmentation([]store.Order{outside}, Range30Days, testNow)
	require.Len(t, segments, 31)
	for _, segment := range segments {
		assert.Zero(t, segment.NewCustomers)
		assert.Zero(t, segment.Returning)
	}
}

func TestBuildSalesByDayAlwaysSevenEntries(t *testing.T) {
	monday := time.Date(2026, time.August, 24, 9, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())

	user := uuid.New()
	orders := []store.Order{
		makeOrder(user, 100, store.OrderStatusNew, monday),
		makeOrder(user, 50, store.OrderStatusNew, monday),
	}

	days := BuildSalesByDay(orders)
	require.Len(t, days, 7)
	assert.Equal(t, "Monday", days[0].Day)
	assert.Equal(t, "Sunday", days[6].Day)

	assert.True(t, days[0].Sales.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 2, days[0].Transactions)
	for _, day := range days[1:] {
		assert.True(t, day.Sales.IsZero())
		assert.Zero(t, day.Transactions)
	}
}

func TestBuildSalesByDayEmptyOrders(t *testing.T) {
	days := BuildSalesByDay(nil)
	require.Len(t, days, 7)
	assert.Equal(t, "Monday", days[0].Day)
}

func TestBuildInventoryStatus(t *testing.T) {
	products := []store.Product{
		{ID: uuid.New(), Name: "p1", Stock: 50},
		{ID: uuid.New(), Name: "p2", Stock: 2},
		{ID: uuid.New(), Name: "archived", Stock: 0, Archived: true},
		{ID: uuid.New(), Name: "p3", Stock: 9},
		{ID: uuid.New(), Name: "p4", Stock: 30},
		{ID: uuid.New(), Name: "p5", Stock: 12},
		{ID: uuid.New(), Name: "p6", Stock: 7},
		{ID: uuid.New(), Name: "p7", Stock: 40},
	}

	status := BuildInventoryStatus(products)
	require.Len(t, status, 6)
	assert.Equal(t, "p2", status[0].Name)
	for i := 1; i < len(status); i++ {
		assert.LessOrEqual(t, status[i-1].Stock, status[i].Stock)
	}
	for _, entry := range status {
		assert.NotEqual(t, "archived", entry.Name)
		assert.Equal(t, 15, entry.Threshold)
	}
}
