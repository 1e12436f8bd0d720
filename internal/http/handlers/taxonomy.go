package handlers

import (
	"net/http"

	"github.com/NotAnsar/orava-api/pkg/response"
)

type namePayload struct {
	Name string `json:"name"`
}

type colorPayload struct {
	Name  string  `json:"name"`
	Value *string `json:"value"`
}

type sizePayload struct {
	Name     string  `json:"name"`
	FullName *string `json:"fullname"`
}

func (h *Handler) CategoriesList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Store.Categories(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve categories")
		return
	}
	response.Success(w, categories)
}

func (h *Handler) CategoryGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	category, err := h.Store.CategoryByID(r.Context(), id)
	if err != nil {
		notFoundOrInternal(w, err, "Category")
		return
	}
	response.Success(w, category)
}

func (h *Handler) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var payload namePayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Name == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}
	category, err := h.Store.CreateCategory(r.Context(), payload.Name)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create category")
		return
	}
	response.Created(w, category)
}

func (h *Handler) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var payload namePayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if err := h.Store.UpdateCategory(r.Context(), id, payload.Name); err != nil {
		notFoundOrInternal(w, err, "Category")
		return
	}
	category, err := h.Store.CategoryByID(r.Context(), id)
	if err != nil {
		notFoundOrInternal(w, err, "Category")
		return
	}
	response.Success(w, category)
}

func (h *Handler) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteCategory(r.Context(), id); err != nil {
		notFoundOrInternal(w, err, "Category")
		return
	}
	response.Message(w, "Category deleted successfully")
}

func (h *Handler) ColorsList(w http.ResponseWriter, r *http.Request) {
	colors, err := h.Store.Colors(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve colors")
		return
	}
	response.Success(w, colors)
}

func (h *Handler) ColorGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	color, err := h.Store.ColorByID(r.Context(), id)
	if err != nil {
		notFoundOrInternal(w, err, "Color")
		return
	}
	response.Success(w, color)
}

func (h *Handler) ColorCreate(w http.ResponseWriter, r *http.Request) {
	var payload colorPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Name == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}
	color, err := h.Store.CreateColor(r.Context(), payload.Name, payload.Value)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create color")
		return
	}
	response.Created(w, color)
}

func (h *Handler) ColorUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var payload colorPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if err := h.Store.UpdateColor(r.Context(), id, payload.Name, payload.Value); err != nil {
		notFoundOrInternal(w, err, "Color")
		return
	}
	color, err := h.Store.ColorByID(r.Context(), id)
	if err != nil {
		notFoundOrInternal(w, err, "Color")
		return
	}
	response.Success(w, color)
}

func (h *Handler) ColorDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteColor(r.Context(), id); err != nil {
		notFoundOrInternal(w, err, "Color")
		return
	}
	response.Message(w, "Color deleted successfully")
}

func (h *Handler) SizesList(w http.ResponseWriter, r *http.Request) {
	sizes, err := h.Store.Sizes(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve sizes")
		return
	}
	response.Success(w, sizes)
}

func (h *Handler) SizeGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	size, err := h.Store.SizeByID(r.Context(), id)
	if err != nil {
		notFoundOrInternal(w, err, "Size")
		return
	}
	response.Success(w, size)
}

func (h *Handler) SizeCreate(w http.ResponseWriter, r *http.Request) {
	var payload sizePayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Name == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}
	size, err := h.Store.CreateSize(r.Context(), payload.Name, payload.FullName)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create size")
		return
	}
	response.Created(w, size)
}

func (h *Handler) SizeUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var payload sizePayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if err := h.Store.UpdateSize(r.Context(), id, payload.Name, payload.FullName); err != nil {
		notFoundOrInternal(w, err, "Size")
		return
	}
	size, err := h.Store.SizeByID(r.Context(), id)
	if err != nil {
		notFoundOrInternal(w, err, "Size")
		return
	}
	response.Success(w, size)
}

func (h *Handler) SizeDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteSize(r.Context(), id); err != nil {
		notFoundOrInternal(w, err, "Size")
		return
	}
	response.Message(w, "Size deleted successfully")
}
