// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Authorizer validates a presented bearer token.
type Authorizer interface {
	Authorize(token string) error
}

// BearerAuth rejects requests whose Authorization header does not carry
// a token accepted by auth. Rejected requests never reach next.
func BearerAuth(auth Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := auth.Authorize(BearerToken(r)); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"success": false,
					"error":   "Unauthorized",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. It returns an empty string if the header is absent or uses
// another scheme.
func BearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
