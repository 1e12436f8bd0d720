package handlers

import (
	"net/http"

	"github.com/NotAnsar/orava-api/internal/analytics"
	"github.com/NotAnsar/orava-api/pkg/response"

	"go.uber.org/zap"
)

func timeRangeParam(r *http.Request) string {
	if v := r.URL.Query().Get("timeRange"); v != "" {
		return v
	}
	return analytics.Range6Months
}

func (h *Handler) serveAnalytics(w http.ResponseWriter, key string, fetch func() (any, error)) {
	if cached, ok := getAnalyticsCache(key); ok {
		response.Success(w, cached)
		return
	}
	value, err := fetch()
	if err != nil {
		h.Logger.Error("analytics query failed", zap.String("key", key), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute analytics")
		return
	}
	setAnalyticsCache(key, value)
	response.Success(w, value)
}

func (h *Handler) AnalyticsRevenueTrends(w http.ResponseWriter, r *http.Request) {
	token := timeRangeParam(r)
	h.serveAnalytics(w, analyticsCacheKey("revenue-trends", token), func() (any, error) {
		return h.Analytics.RevenueTrends(r.Context(), token)
	})
}

func (h *Handler) AnalyticsCategoryPerformance(w http.ResponseWriter, r *http.Request) {
	token := timeRangeParam(r)
	h.serveAnalytics(w, analyticsCacheKey("category-performance", token), func() (any, error) {
		return h.Analytics.CategoryPerformance(r.Context(), token)
	})
}

func (h *Handler) AnalyticsOrderStatus(w http.ResponseWriter, r *http.Request) {
	token := timeRangeParam(r)
	h.serveAnalytics(w, analyticsCacheKey("order-status", token), func() (any, error) {
		return h.Analytics.OrderStatusDistribution(r.Context(), token)
	})
}

func (h *Handler) AnalyticsTopProducts(w http.ResponseWriter, r *http.Request) {
	token := timeRangeParam(r)
	h.serveAnalytics(w, analyticsCacheKey("top-products", token), func() (any, error) {
		return h.Analytics.TopSellingProducts(r.Context(), token)
	})
}

func (h *Handler) AnalyticsCustomerSegmentation(w http.ResponseWriter, r *http.Request) {
	token := timeRangeParam(r)
	h.serveAnalytics(w, analyticsCacheKey("customer-segmentation", token), func() (any, error) {
		return h.Analytics.CustomerSegmentation(r.Context(), token)
	})
}

func (h *Handler) AnalyticsSalesByDay(w http.ResponseWriter, r *http.Request) {
	token := timeRangeParam(r)
	h.serveAnalytics(w, analyticsCacheKey("sales-by-day", token), func() (any, error) {
		return h.Analytics.SalesByDayOfWeek(r.Context(), token)
	})
}

func (h *Handler) AnalyticsInventoryStatus(w http.ResponseWriter, r *http.Request) {
	h.serveAnalytics(w, analyticsCacheKey("inventory-status"), func() (any, error) {
		return h.Analytics.InventoryStatus(r.Context())
	})
}
