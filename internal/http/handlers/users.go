package handlers

import (
	"net/http"

	"github.com/NotAnsar/orava-api/internal/auth"
	"github.com/NotAnsar/orava-api/internal/store"
	"github.com/NotAnsar/orava-api/pkg/response"
)

func (h *Handler) UsersList(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.Users(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve users")
		return
	}
	response.Success(w, users)
}

func (h *Handler) UserGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	user, err := h.Store.UserByID(r.Context(), id)
	if err != nil {
		notFoundOrInternal(w, err, "User")
		return
	}
	response.Success(w, user)
}

type createUserPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

func (h *Handler) UserCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload createUserPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Email == "" || payload.Password == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password are required")
		return
	}

	exists, err := h.Store.EmailExists(ctx, payload.Email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create user")
		return
	}
	if exists {
		response.Error(w, http.StatusBadRequest, "EMAIL_TAKEN", "Email is already in use")
		return
	}

	role := auth.RoleUser
	if parsed, ok := auth.ParseRole(payload.Role); ok {
		role = parsed
	}
	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create user")
		return
	}

	user, err := h.Store.CreateUser(ctx, store.User{
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Email:        payload.Email,
		Role:         role,
		PasswordHash: hash,
	})
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create user")
		return
	}
	response.Created(w, user)
}

type updateUserPayload struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
}

func (h *Handler) UserUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var payload updateUserPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	user, err := h.Store.UserByID(ctx, id)
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
	if payload.Email != nil {
		user.Email = *payload.Email
	}
	if payload.Role != nil {
		if parsed, ok := auth.ParseRole(*payload.Role); ok {
			user.Role = parsed
		}
	}

	if err := h.Store.UpdateUser(ctx, user); err != nil {
		notFoundOrInternal(w, err, "User")
		return
	}
	response.Success(w, user)
}

func (h *Handler) UserDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteUser(r.Context(), id); err != nil {
		notFoundOrInternal(w, err, "User")
		return
	}
	response.Message(w, "User deleted successfully")
}
