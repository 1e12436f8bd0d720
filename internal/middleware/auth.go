package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/NotAnsar/orava-api/internal/auth"

	"github.com/google/uuid"
)

type contextKey string

const authContextKey contextKey = "authContext"

type AuthContext struct {
	UserID uuid.UUID
	Role   auth.UserRole
	Email  string
}

func WithAuthContext(ctx context.Context, authCtx *AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey, authCtx)
}

func GetAuthContext(ctx context.Context) (*AuthContext, bool) {
	value := ctx.Value(authContextKey)
	if value == nil {
		return nil, false
	}
	ac, ok := value.(*AuthContext)
	return ac, ok
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   "UNAUTHORIZED",
		"message": message,
	})
}

// Authenticate verifies the bearer token and attaches the caller identity to
// the request context. Tokens are self-contained; no session table lookup.
func Authenticate(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.ParseBearerToken(r.Header.Get("Authorization"))
			claims, err := auth.VerifyAccessToken(token, jwtSecret)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "Authorization token required")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			role, ok := auth.ParseRole(string(claims.Role))
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			authCtx := &AuthContext{
				UserID: userID,
				Role:   role,
				Email:  claims.Email,
			}

			ctx := WithAuthContext(r.Context(), authCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireDashboard allows ADMIN and GUEST (demo) accounts.
func RequireDashboard() func(http.Handler) http.Handler {
	return requireRole(auth.CanViewDashboard, "Dashboard access required")
}

// RequireWriter allows ADMIN and USER accounts; guests are read-only.
func RequireWriter() func(http.Handler) http.Handler {
	return requireRole(auth.CanWrite, "Write access required")
}

// RequireAdmin allows ADMIN only.
func RequireAdmin() func(http.Handler) http.Handler {
	return requireRole(auth.CanManageUsers, "Admin access required")
}

func requireRole(allowed func(auth.UserRole) bool, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authCtx, ok := GetAuthContext(r.Context())
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "Authorization token required")
				return
			}
			if !allowed(authCtx.Role) {
				writeAuthError(w, http.StatusForbidden, message)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
