// Package auth implements the static write-token check for the add endpoint.
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

// TokenMiddleware authorizes requests against a single configured token,
// supplied either as "Authorization: Bearer <token>" or via the
// X-Reading-Token header. An empty configured token refuses every request.
type TokenMiddleware struct {
	token string
}

// NewTokenMiddleware creates a TokenMiddleware for the configured token.
func NewTokenMiddleware(token string) *TokenMiddleware {
	return &TokenMiddleware{token: token}
}

// Authenticate rejects the request with 401 unless it carries the configured
// token. Comparison is constant-time.
func (m *TokenMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.token == "" || !m.authorized(r) {
			writeUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *TokenMiddleware) authorized(r *http.Request) bool {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		presented := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		return equal(presented, m.token)
	}
	return equal(r.Header.Get("X-Reading-Token"), m.token)
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// writeUnauthorized writes a 401 JSON response with {"error": "Unauthorized"}.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
