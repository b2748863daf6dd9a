package http

import (
	"context"
	"net/http"
	"strings"

	"geoaccess-backend/internal/domain"
	"geoaccess-backend/internal/logger"
	"geoaccess-backend/internal/security"

	"github.com/google/uuid"
)

type contextKey string

const (
	claimsContextKey    contextKey = "claims"
	requestIDContextKey contextKey = "request_id"
)

// RequestIDMiddleware tags every request with a correlation id, honoring a
// caller-supplied X-Request-ID.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthMiddleware validates the bearer token and stores its org/role claims in
// the request context. The claims are issued by the authentication
// collaborator and trusted as given.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}
			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				logger.Debug("Token validation failed", "error", err)
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
				return
			}
			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSuperAdmin gates the review and summary routes.
func RequireSuperAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || claims.Role != domain.RoleSuperAdmin {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "superadmin role required"})
			return
		}
		next(w, r)
	}
}

// ClaimsFromContext returns the authenticated claims, or nil outside the auth
// middleware.
func ClaimsFromContext(ctx context.Context) *security.AccessClaims {
	claims, _ := ctx.Value(claimsContextKey).(*security.AccessClaims)
	return claims
}
