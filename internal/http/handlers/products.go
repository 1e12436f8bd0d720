package handlers

import (
	"net/http"

	"github.com/NotAnsar/orava-api/internal/store"
	"github.com/NotAnsar/orava-api/pkg/response"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type productPayload struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Archived    *bool    `json:"archived"`
	Featured    *bool    `json:"featured"`
	CategoryID  *string  `json:"categoryId"`
	ColorID     *string  `json:"colorId"`
	SizeID      *string  `json:"sizeId"`
}

func parseOptionalUUID(raw *string) *uuid.UUID {
	if raw == nil || *raw == "" {
		return nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil
	}
	return &id
}

func (h *Handler) ProductsList(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.Products(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}
	response.Success(w, products)
}

func (h *Handler) ProductsActive(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.ActiveProducts(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}
	response.Success(w, products)
}

func (h *Handler) ProductsFeatured(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.FeaturedProducts(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}
	response.Success(w, products)
}

func (h *Handler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	products, err := h.Store.ProductsByCategory(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}
	response.Success(w, products)
}

func (h *Handler) ProductsByColor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	products, err := h.Store.ProductsByColor(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}
	response.Success(w, products)
}

func (h *Handler) ProductsBySize(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	products, err := h.Store.ProductsBySize(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}
	response.Success(w, products)
}

func (h *Handler) ProductGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	product, err := h.Store.ProductByID(r.Context(), id)
	if err != nil {
		notFoundOrInternal(w, err, "Product")
		return
	}
	response.Success(w, product)
}

func (h *Handler) ProductCreate(w http.ResponseWriter, r *http.Request) {
	var payload productPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Name == "" || payload.Price == nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Name and price are required")
		return
	}

	draft := store.ProductDraft{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       decimal.NewFromFloat(*payload.Price),
		CategoryID:  parseOptionalUUID(payload.CategoryID),
		ColorID:     parseOptionalUUID(payload.ColorID),
		SizeID:      parseOptionalUUID(payload.SizeID),
	}
	if payload.Stock != nil {
		draft.Stock = *payload.Stock
	}
	if payload.Archived != nil {
		draft.Archived = *payload.Archived
	}
	if payload.Featured != nil {
		draft.Featured = *payload.Featured
	}

	product, err := h.Store.CreateProduct(r.Context(), draft)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create product")
		return
	}
	response.Created(w, product)
}

func (h *Handler) ProductUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var payload productPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	current, err := h.Store.ProductByID(ctx, id)
	if err != nil {
		notFoundOrInternal(w, err, "Product")
		return
	}

	draft := store.ProductDraft{
		Name:        current.Name,
		Description: current.Description,
		Price:       current.Price,
		Stock:       current.Stock,
		Archived:    current.Archived,
		Featured:    current.Featured,
	}
	if current.Category != nil {
		draft.CategoryID = &current.Category.ID
	}
	if current.Color != nil {
		draft.ColorID = &current.Color.ID
	}
	if current.Size != nil {
		draft.SizeID = &current.Size.ID
	}

	if payload.Name != "" {
		draft.Name = payload.Name
	}
	if payload.Description != nil {
		draft.Description = payload.Description
	}
	if payload.Price != nil {
		draft.Price = decimal.NewFromFloat(*payload.Price)
	}
	if payload.Stock != nil {
		draft.Stock = *payload.Stock
	}
	if payload.Archived != nil {
		draft.Archived = *payload.Archived
	}
	if payload.Featured != nil {
		draft.Featured = *payload.Featured
	}
	if id := parseOptionalUUID(payload.CategoryID); id != nil {
		draft.CategoryID = id
	}
	if id := parseOptionalUUID(payload.ColorID); id != nil {
		draft.ColorID = id
	}
	if id := parseOptionalUUID(payload.SizeID); id != nil {
		draft.SizeID = id
	}

	product, err := h.Store.UpdateProduct(ctx, current.ID, draft)
	if err != nil {
		notFoundOrInternal(w, err, "Product")
		return
	}
	response.Success(w, product)
}

func (h *Handler) ProductArchive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Store.SetProductArchived(r.Context(), id, true); err != nil {
		notFoundOrInternal(w, err, "Product")
		return
	}
	response.Message(w, "Product archived successfully")
}

func (h *Handler) ProductToggleArchive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	product, err := h.Store.ProductByID(ctx, id)
	if err != nil {
		notFoundOrInternal(w, err, "Product")
		return
	}
	if err := h.Store.SetProductArchived(ctx, id, !product.Archived); err != nil {
		notFoundOrInternal(w, err, "Product")
		return
	}
	product.Archived = !product.Archived
	response.Success(w, product)
}

func (h *Handler) ProductDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	// remove stored image objects before the rows go away
	images, err := h.Store.ProductImages(ctx, id)
	if err == nil && h.Storage != nil {
		for _, img := range images {
			if img.Key != "" {
				_ = h.Storage.Delete(ctx, img.Key)
				_ = h.Storage.Delete(ctx, imageThumbKey(img.Key))
			}
		}
	}

	if err := h.Store.DeleteProduct(ctx, id); err != nil {
		notFoundOrInternal(w, err, "Product")
		return
	}
	response.Message(w, "Product deleted successfully")
}
