package middleware

import (
	"context"
	"net/http"
	"strings"

	"jeopardy-server/internal/service"
)

type contextKey string

const (
	UsernameKey   contextKey = "username"
	SessionKeyKey contextKey = "sessionKey"
)

// AuthMiddleware provides JWT session authentication.
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware.
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireSession validates the session JWT from the Authorization header or
// the token query param and stores username and session key in the context.
func (m *AuthMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			http.Error(w, `{"error":"missing authorization"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, SessionKeyKey, claims.SessionKey)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUsername extracts the username from context.
func GetUsername(ctx context.Context) string {
	if v := ctx.Value(UsernameKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetSessionKey extracts the session key from context.
func GetSessionKey(ctx context.Context) string {
	if v := ctx.Value(SessionKeyKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
