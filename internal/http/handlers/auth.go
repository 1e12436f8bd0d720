package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/NotAnsar/orava-api/internal/auth"
	"github.com/NotAnsar/orava-api/internal/queue"
	"github.com/NotAnsar/orava-api/internal/store"
	"github.com/NotAnsar/orava-api/pkg/response"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const passwordResetTokenTTL = time.Hour

const (
	guestEmail     = "guest@example.com"
	guestPassword  = "guest123"
	guestFirstName = "Guest"
	guestLastName  = "User"
)

type authUserData struct {
	ID        uuid.UUID     `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Email     string        `json:"email"`
	Role      auth.UserRole `json:"role"`
	CreatedAt time.Time     `json:"createdAt"`
}

type authResponse struct {
	Message string        `json:"message"`
	User    *authUserData `json:"user,omitempty"`
	Token   string        `json:"token,omitempty"`
	Success bool          `json:"success"`
}

func writeAuthFailure(w http.ResponseWriter, status int, message string) {
	response.JSON(w, status, authResponse{Message: message})
}

func userData(u store.User) *authUserData {
	return &authUserData{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func (h *Handler) issueToken(u store.User) (string, error) {
	return auth.GenerateAccessToken(u.ID, u.Role, u.Email, h.Config.JWTSecret,
		time.Duration(h.Config.JWTExpirySeconds)*time.Second)
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload loginPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	user, err := h.Store.UserByEmail(ctx, payload.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		writeAuthFailure(w, http.StatusUnauthorized, "Error: User not found")
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		return
	}
	if !auth.CheckPassword(user.PasswordHash, payload.Password) {
		writeAuthFailure(w, http.StatusUnauthorized, "Error: Invalid password")
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		return
	}
	response.JSON(w, http.StatusOK, authResponse{
		Message: "User logged in successfully!",
		User:    userData(user),
		Token:   token,
		Success: true,
	})
}

type registerPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload registerPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.Email == "" || payload.Password == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password are required")
		return
	}

	exists, err := h.Store.EmailExists(ctx, payload.Email)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
		return
	}
	if exists {
		writeAuthFailure(w, http.StatusBadRequest, "Error: Email is already in use!")
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
		return
	}

	user, err := h.Store.CreateUser(ctx, store.User{
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Email:        payload.Email,
		Role:         auth.RoleUser,
		PasswordHash: hash,
	})
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
		return
	}
	response.JSON(w, http.StatusOK, authResponse{
		Message: "User registered successfully!",
		User:    userData(user),
		Token:   token,
		Success: true,
	})
}

func (h *Handler) GuestLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.Store.UserByEmail(ctx, guestEmail)
	if errors.Is(err, pgx.ErrNoRows) {
		hash, hashErr := auth.HashPassword(guestPassword)
		if hashErr != nil {
			writeAuthFailure(w, http.StatusUnauthorized, "Error: Failed to authenticate guest")
			return
		}
		user, err = h.Store.CreateUser(ctx, store.User{
			FirstName:    guestFirstName,
			LastName:     guestLastName,
			Email:        guestEmail,
			Role:         auth.RoleGuest,
			PasswordHash: hash,
		})
	}
	if err != nil {
		writeAuthFailure(w, http.StatusUnauthorized, "Error: Failed to authenticate guest")
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		writeAuthFailure(w, http.StatusUnauthorized, "Error: Failed to authenticate guest")
		return
	}
	response.JSON(w, http.StatusOK, authResponse{
		Message: "Guest access granted",
		User:    userData(user),
		Token:   token,
		Success: true,
	})
}

type forgotPasswordPayload struct {
	Email string `json:"email"`
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload forgotPasswordPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	user, err := h.Store.UserByEmail(ctx, payload.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		// never reveal whether the email exists
		response.JSON(w, http.StatusOK, authResponse{
			Message: "If your email exists in our system, you will receive a password reset link shortly.",
			Success: true,
		})
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process request")
		return
	}

	if err := h.Store.DeletePasswordResetTokensForUser(ctx, user.ID); err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process request")
		return
	}
	token := uuid.NewString()
	if _, err := h.Store.CreatePasswordResetToken(ctx, user.ID, token, time.Now().Add(passwordResetTokenTTL)); err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process request")
		return
	}

	if h.Queue != nil {
		event := queue.PasswordResetRequestedEvent{
			Type:        queue.PasswordResetRequestedRK,
			Email:       user.Email,
			Token:       token,
			RequestedAt: time.Now(),
		}
		publishErr := h.Queue.PublishJSON(ctx, queue.EventsExchange, queue.PasswordResetRequestedRK, event)
		if publishErr == nil {
			response.JSON(w, http.StatusOK, authResponse{
				Message: "Password reset link sent to your email.",
				Success: true,
			})
			return
		}
		h.Logger.Warn("password reset event publish failed", zap.Error(publishErr))
	}

	// mailer unavailable: hand the token back so development flows keep working
	response.JSON(w, http.StatusOK, authResponse{
		Message: "Email service is not working, use this token to reset: " + token,
		Token:   token,
		Success: true,
	})
}

type resetPasswordPayload struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload resetPasswordPayload
	if !decodeBody(w, r, &payload) {
		return
	}

	token, err := h.Store.PasswordResetTokenByValue(ctx, payload.Token)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && (token.Used || token.Expired(time.Now()))) {
		writeAuthFailure(w, http.StatusBadRequest, "Invalid or expired password reset token")
		return
	}
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reset password")
		return
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reset password")
		return
	}
	if err := h.Store.UpdateUserPassword(ctx, token.UserID, hash); err != nil {
		writeAuthFailure(w, http.StatusBadRequest, "Failed to reset password")
		return
	}
	if err := h.Store.MarkPasswordResetTokenUsed(ctx, token.ID); err != nil {
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reset password")
		return
	}

	response.JSON(w, http.StatusOK, authResponse{
		Message: "Password has been reset successfully. You can now login with your new password.",
		Success: true,
	})
}
