package http

import (
	"net/http"
	"strings"

	"waterbill-backend/internal/logger"
	"waterbill-backend/internal/security"

	"github.com/google/uuid"
)

// RequestIDMiddleware tags every request with an X-Request-ID, generating one
// when the client did not supply it.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware verifies the bearer token on protected routes.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "missing bearer token", false)
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				logger.Debug("Token rejected", "path", r.URL.Path, "error", err)
				writeError(w, http.StatusUnauthorized, "invalid or expired token", false)
				return
			}

			logger.Debug("Request authenticated", "path", r.URL.Path, "staffID", claims.StaffID)
			next.ServeHTTP(w, r)
		})
	}
}
