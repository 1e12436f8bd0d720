package handlers

import (
	"net/http"
	"time"

	"github.com/NotAnsar/orava-api/internal/queue"
	"github.com/NotAnsar/orava-api/internal/store"
	"github.com/NotAnsar/orava-api/pkg/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) OrdersList(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Store.Orders(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve orders")
		return
	}
	response.Success(w, orders)
}

func (h *Handler) OrderGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	order, err := h.Store.OrderByID(r.Context(), id)
	if err != nil {
		notFoundOrInternal(w, err, "Order")
		return
	}
	response.Success(w, order)
}

func (h *Handler) OrdersByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId")
	if !ok {
		return
	}
	orders, err := h.Store.OrdersByUser(r.Context(), userID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve orders")
		return
	}
	response.Success(w, orders)
}

func (h *Handler) OrdersByStatus(w http.ResponseWriter, r *http.Request) {
	status, valid := store.ParseOrderStatus(chi.URLParam(r, "status"))
	if !valid {
		response.Error(w, http.StatusBadRequest, "INVALID_STATUS", "Unknown order status")
		return
	}
	orders, err := h.Store.Orders(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve orders")
		return
	}
	filtered := make([]store.Order, 0)
	for _, order := range orders {
		if order.Status == status {
			filtered = append(filtered, order)
		}
	}
	response.Success(w, filtered)
}

type createOrderPayload struct {
	UserID string `json:"userId"`
	Status string `json:"status"`
	Items  []struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	} `json:"items"`
}

func (h *Handler) OrderCreate(w http.ResponseWriter, r *http.Request) {
	var payload createOrderPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "INVALID_ID", "Invalid userId format")
		return
	}
	if len(payload.Items) == 0 {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "At least one item is required")
		return
	}

	items := make([]store.OrderItemDraft, 0, len(payload.Items))
	for _, item := range payload.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil || item.Quantity <= 0 {
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid order item")
			return
		}
		items = append(items, store.OrderItemDraft{ProductID: productID, Quantity: item.Quantity})
	}

	status := store.OrderStatusNew
	if parsed, ok := store.ParseOrderStatus(payload.Status); ok {
		status = parsed
	}

	order, err := h.Store.CreateOrder(r.Context(), userID, status, items)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create order")
		return
	}
	response.Created(w, order)
}

type orderStatusPayload struct {
	Status string `json:"status"`
}

func (h *Handler) OrderUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var payload orderStatusPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	status, valid := store.ParseOrderStatus(payload.Status)
	if !valid {
		response.Error(w, http.StatusBadRequest, "INVALID_STATUS", "Unknown order status")
		return
	}

	if err := h.Store.UpdateOrderStatus(ctx, id, status); err != nil {
		notFoundOrInternal(w, err, "Order")
		return
	}

	if h.Queue != nil {
		event := queue.OrderStatusUpdatedEvent{
			Type:      queue.OrderStatusUpdatedRK,
			OrderID:   id,
			Status:    string(status),
			UpdatedAt: time.Now(),
		}
		if err := h.Queue.PublishJSON(ctx, queue.EventsExchange, queue.OrderStatusUpdatedRK, event); err != nil {
			h.Logger.Warn("order status event publish failed", zap.Error(err))
		}
	}

	order, err := h.Store.OrderByID(ctx, id)
	if err != nil {
		notFoundOrInternal(w, err, "Order")
		return
	}
	response.Success(w, order)
}

func (h *Handler) OrderDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteOrder(r.Context(), id); err != nil {
		notFoundOrInternal(w, err, "Order")
		return
	}
	response.Message(w, "Order deleted successfully")
}
