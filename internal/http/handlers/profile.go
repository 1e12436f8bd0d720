package handlers

import (
	"net/http"

	"github.com/NotAnsar/orava-api/internal/auth"
	"github.com/NotAnsar/orava-api/internal/middleware"
	"github.com/NotAnsar/orava-api/pkg/response"
)

func (h *Handler) ProfileGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	authCtx, ok := middleware.GetAuthContext(ctx)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	user, err := h.Store.UserByID(ctx, authCtx.UserID)
	if err != nil {
		notFoundOrInternal(w, err, "User")
		return
	}
	response.Success(w, user)
}

type updateProfilePayload struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

func (h *Handler) ProfileUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	authCtx, ok := middleware.GetAuthContext(ctx)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var payload updateProfilePayload
	if !decodeBody(w, r, &payload) {
		return
	}

	user, err := h.Store.UserByID(ctx, authCtx.UserID)
	if err != nil {
		notFoundOrInternal(w, err, "User")
		return
	}
	if payload.FirstName != nil {
		user.FirstName = *payload.FirstName
	}
	if payload.LastName != nil {
		user.LastName = *payload.LastName
	}
	if payload.Email != nil && *payload.Email != user.Email {
		exists, err := h.Store.EmailExists(ctx, *payload.Email)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update profile")
			return
		}
		if exists {
			response.Error(w, http.StatusBadRequest, "EMAIL_TAKEN", "Email is already in use")
			return
		}
		user.Email = *payload.Email
	}

	if err := h.Store.UpdateUser(ctx, user); err != nil {
		notFoundOrInternal(w, err, "User")
		return
	}
	response.Success(w, user)
}

type changePasswordPayload struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) ProfileChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	authCtx, ok := middleware.GetAuthContext(ctx)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var payload changePasswordPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.NewPassword == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "New password is required")
		return
	}

	user, err := h.Store.UserByID(ctx, authCtx.UserID)
	if err != nil {
		notFoundOrInternal(w, err, "User")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, payload.CurrentPassword) {
		response.Error(w, http.StatusBadRequest, "INVALID_PASSWORD", "Current password is incorrect")
		return
	}

	hash, err := auth.HashPassword(payload.NewPassword)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to change password")
		return
	}
	if err := h.Store.UpdateUserPassword(ctx, user.ID, hash); err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to change password")
		return
	}
	response.Message(w, "Password changed successfully")
}

func (h *Handler) ProfileDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	authCtx, ok := middleware.GetAuthContext(ctx)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	if err := h.Store.DeleteUser(ctx, authCtx.UserID); err != nil {
		notFoundOrInternal(w, err, "User")
		return
	}
	response.Message(w, "Account deleted successfully")
}
