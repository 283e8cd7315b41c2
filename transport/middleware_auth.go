package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	authapp "github.com/vapehero/wholesale-backend/application/auth"
	"github.com/vapehero/wholesale-backend/constant"
	"github.com/vapehero/wholesale-backend/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using AuthApp.
// It allows public endpoints (like the OTP routes and the catalog) without token.
func AuthMiddleware(authApp authapp.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, role, err := authApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			if strings.HasPrefix(path, "/api/v1/admin/") && role != constant.UserRoleAdmin {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			ctx = context.WithValue(ctx, constant.UserRoleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") ||
		strings.HasPrefix(path, "/uploads/") {
		return true
	}
	if strings.HasPrefix(path, "/api/v1/auth/otp/") || path == "/api/v1/auth/admin/login" {
		return true
	}
	if strings.HasPrefix(path, "/api/v1/products") {
		return true
	}

	return false
}
