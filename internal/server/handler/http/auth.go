package http

import (
	"net/http"

	"github.com/atinyakov/nexus/internal/service"
)

// AuthHandler handles admin login.
type AuthHandler struct {
	// Auth checks credentials and issues the bearer token.
	Auth service.Authenticator
}

// Login handles POST /api/login with an {email, password} body.
// On success it returns {success: true, token}; on any mismatch 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	field, err := readFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	token, err := h.Auth.Login(field("email"), field("password"))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid Credentials")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": token})
}
