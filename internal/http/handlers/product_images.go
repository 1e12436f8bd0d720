package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/NotAnsar/orava-api/internal/store"
	"github.com/NotAnsar/orava-api/internal/utils"
	"github.com/NotAnsar/orava-api/pkg/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func imageThumbKey(key string) string {
	if ext := ".jpg"; strings.HasSuffix(key, ext) {
		return strings.TrimSuffix(key, ext) + "_thumb" + ext
	}
	return key + "_thumb"
}

func (h *Handler) ProductImagesList(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	images, err := h.Store.ProductImages(r.Context(), id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve images")
		return
	}
	response.Success(w, images)
}

func (h *Handler) ProductImageUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if h.Storage == nil {
		response.Error(w, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Image storage is not configured")
		return
	}

	product, err := h.Store.ProductByID(ctx, productID)
	if err != nil {
		notFoundOrInternal(w, err, "Product")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Config.MaxFileSizeBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "A file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Failed to read uploaded file")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = utils.DetectContentType(data)
	}
	if !utils.ValidateImageContentType(contentType) {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Unsupported image type")
		return
	}

	processed, err := utils.ProcessProductImage(data)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Could not decode image")
		return
	}

	imageID := uuid.New()
	key := fmt.Sprintf("products/%s/%s.jpg", product.ID, imageID)

	url, err := h.Storage.Upload(ctx, key, processed.Full, "image/jpeg")
	if err != nil {
		h.Logger.Error("image upload failed", zap.String("key", key), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store image")
		return
	}
	thumbURL, err := h.Storage.Upload(ctx, imageThumbKey(key), processed.Thumbnail, "image/jpeg")
	if err != nil {
		h.Logger.Error("thumbnail upload failed", zap.String("key", key), zap.Error(err))
		_ = h.Storage.Delete(ctx, key)
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store image")
		return
	}

	img, err := h.Store.CreateProductImage(ctx, store.ProductImage{
		ProductID:    product.ID,
		URL:          url,
		ThumbnailURL: thumbURL,
		Key:          key,
	})
	if err != nil {
		_ = h.Storage.Delete(ctx, key)
		_ = h.Storage.Delete(ctx, imageThumbKey(key))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save image record")
		return
	}
	response.Created(w, img)
}

func (h *Handler) ProductImageDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathUUID(w, r, "imageId")
	if !ok {
		return
	}

	img, err := h.Store.ProductImageByID(ctx, id)
	if err != nil {
		notFoundOrInternal(w, err, "Image")
		return
	}
	if h.Storage != nil && img.Key != "" {
		if err := h.Storage.Delete(ctx, img.Key); err != nil {
			h.Logger.Warn("image object delete failed", zap.String("key", img.Key), zap.Error(err))
		}
		if err := h.Storage.Delete(ctx, imageThumbKey(img.Key)); err != nil {
			h.Logger.Warn("thumbnail object delete failed", zap.String("key", img.Key), zap.Error(err))
		}
	}
	if err := h.Store.DeleteProductImage(ctx, id); err != nil {
		notFoundOrInternal(w, err, "Image")
		return
	}
	response.Message(w, "Image deleted successfully")
}
