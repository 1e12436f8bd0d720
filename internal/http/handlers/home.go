package handlers

import (
	"net/http"

	"github.com/NotAnsar/orava-api/pkg/response"
)

func (h *Handler) HomeSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Analytics.DashboardSummary(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute summary")
		return
	}
	response.Success(w, summary)
}

func (h *Handler) HomeMonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.Analytics.MonthlyRevenue(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute monthly revenue")
		return
	}
	response.Success(w, revenue)
}

func (h *Handler) HomeRecentOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Analytics.RecentOrders(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve recent orders")
		return
	}
	response.Success(w, orders)
}

func (h *Handler) HomeInventoryAlert(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.Analytics.InventoryAlert(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve inventory alerts")
		return
	}
	response.Success(w, alerts)
}

func (h *Handler) HomeCategorySales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Analytics.CategorySalesPerformance(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute category sales")
		return
	}
	response.Success(w, sales)
}
