package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"inkwell/app/services"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const claimsKey contextKey = "authClaims"

const bearerPrefix = "Bearer "

// RequireAuth guards a handler with a stateless bearer-token check. The
// Authorization header must carry a "Bearer " token that verifies against
// the shared secret; the decoded claims are attached to the request context.
func RequireAuth(auth *services.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			unauthorized(w, "no token provided")
			return
		}

		claims, err := auth.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			unauthorized(w, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the verified token claims attached by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*jwt.RegisteredClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*jwt.RegisteredClaims)
	return claims, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
