package search

import (
	"testing"

	"github.com/NotAnsar/orava-api/internal/auth"
	"github.com/NotAnsar/orava-api/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProductQueryDefaults(t *testing.T) {
	q := DecodeProductQuery(Params{})

	assert.Nil(t, q.Name)
	assert.Nil(t, q.CategoryID)
	assert.Nil(t, q.MinPrice)
	assert.Equal(t, "name", q.SortBy)
	assert.Equal(t, "asc", q.SortDirection)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, 0, q.Offset)
}

func TestDecodeProductQueryValues(t *testing.T) {
	categoryID := uuid.New()
	q := DecodeProductQuery(Params{
		"name":       "shirt",
		"categoryId": categoryID.String(),
		"archived":   false,
		"minPrice":   9.5,
		"maxStock":   float64(20), // JSON numbers arrive as float64
		"limit":      float64(3),
		"offset":     float64(6),
		"sortBy":     "price",
	})

	require.NotNil(t, q.Name)
	assert.Equal(t, "shirt", *q.Name)
	require.NotNil(t, q.CategoryID)
	assert.Equal(t, categoryID, *q.CategoryID)
	require.NotNil(t, q.Archived)
	assert.False(t, *q.Archived)
	require.NotNil(t, q.MinPrice)
	assert.Equal(t, "9.5", q.MinPrice.String())
	require.NotNil(t, q.MaxStock)
	assert.Equal(t, 20, *q.MaxStock)
	assert.Equal(t, 3, q.Limit)
	assert.Equal(t, 6, q.Offset)
	assert.Equal(t, "price", q.SortBy)
}

func TestDecodeLeniency(t *testing.T) {
	// malformed values read as absent, never as an error
	q := DecodeProductQuery(Params{
		"categoryId": "not-a-uuid",
		"minPrice":   "free",
		"archived":   "yes",
		"limit":      "many",
	})
	assert.Nil(t, q.CategoryID)
	assert.Nil(t, q.MinPrice)
	assert.Nil(t, q.Archived)
	assert.Equal(t, 10, q.Limit)

	o := DecodeOrderQuery(Params{
		"status":    "SHIPPED",
		"startDate": "yesterday",
		"userId":    12345,
	})
	assert.Nil(t, o.Status)
	assert.Nil(t, o.StartDate)
	assert.Nil(t, o.UserID)

	u := DecodeUserQuery(Params{"role": "SUPERADMIN"})
	assert.Nil(t, u.Role)
}

func TestDecodeEnumsUppercased(t *testing.T) {
	o := DecodeOrderQuery(Params{"status": "completed"})
	require.NotNil(t, o.Status)
	assert.Equal(t, store.OrderStatusCompleted, *o.Status)

	u := DecodeUserQuery(Params{"role": "admin"})
	require.NotNil(t, u.Role)
	assert.Equal(t, auth.RoleAdmin, *u.Role)
}

func TestDecodeOrderAndUserDefaults(t *testing.T) {
	o := DecodeOrderQuery(Params{})
	assert.Equal(t, "createdAt", o.SortBy)
	assert.Equal(t, "desc", o.SortDirection)
	assert.Equal(t, 10, o.Limit)

	u := DecodeUserQuery(Params{})
	assert.Equal(t, "createdAt", u.SortBy)
	assert.Equal(t, "asc", u.SortDirection)
}

func TestDecodeDateParam(t *testing.T) {
	o := DecodeOrderQuery(Params{"startDate": "2026-08-01T00:00:00Z"})
	require.NotNil(t, o.StartDate)
	assert.Equal(t, 2026, o.StartDate.Year())
}

func TestInventoryAlertQuery(t *testing.T) {
	q := InventoryAlertQuery(Params{})
	require.NotNil(t, q.Archived)
	assert.False(t, *q.Archived)
	require.NotNil(t, q.MaxStock)
	assert.Equal(t, 10, *q.MaxStock)
	assert.Equal(t, "stock", q.SortBy)
	assert.Equal(t, "asc", q.SortDirection)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, 0, q.Offset)

	custom := InventoryAlertQuery(Params{"threshold": float64(5), "limit": float64(3)})
	assert.Equal(t, 5, *custom.MaxStock)
	assert.Equal(t, 3, custom.Limit)
}

func TestInventoryAlertQueryFiltersProducts(t *testing.T) {
	products := []store.Product{
		product("plenty", 10, 50, 0),
		product("low", 10, 3, 0),
		product("lower", 10, 1, 0),
	}
	archivedLow := product("archived", 10, 0, 0)
	archivedLow.Archived = true
	products = append(products, archivedLow)

	got := FilterProducts(products, InventoryAlertQuery(Params{"threshold": float64(5)}))
	assert.Equal(t, []string{"lower", "low"}, names(got))
}

func TestSubParamsRejectsNonMaps(t *testing.T) {
	assert.Empty(t, subParams("just a string"))
	assert.Empty(t, subParams(nil))
	assert.Equal(t, Params{"a": 1}, subParams(map[string]any{"a": 1}))
}
