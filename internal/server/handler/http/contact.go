package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/atinyakov/nexus/internal/models"
	"github.com/atinyakov/nexus/internal/service"
	"go.uber.org/zap"
)

// ContactService defines the contact operations required by the HTTP handlers.
type ContactService interface {
	// Submit validates and stores a submission, returning its id.
	Submit(ctx context.Context, name, email, message string) (int64, error)
	// List returns up to limit submissions, newest first.
	List(ctx context.Context, limit int) ([]models.Contact, error)
}

// ContactHandler handles contact-form submissions and the admin listing.
type ContactHandler struct {
	ContactService ContactService
	// Logger may be nil.
	Logger *zap.Logger
}

func (h *ContactHandler) log() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	field, err := readFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	name := field("name")
	id, err := h.ContactService.Submit(r.Context(), name, field("email"), field("message"))
	switch {
	case errors.Is(err, service.ErrValidation):
		h.log().Warn("contact submission missing fields")
		writeError(w, http.StatusBadRequest, "Missing name, email, or message.")
		return
	case err != nil:
		h.log().Error("contact insert failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Database save failed.")
		return
	}

	h.log().Info("contact saved", zap.Int64("id", id), zap.String("name", name))
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": id})
}

// List handles GET /api/contacts?limit=N. It must sit behind BearerAuth.
// limit defaults to service.DefaultListLimit and has no upper bound.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := service.DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit.")
			return
		}
		limit = n
	}

	contacts, err := h.ContactService.List(r.Context(), limit)
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, "Invalid limit.")
		return
	case err != nil:
		h.log().Error("contact list failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Database read failed.")
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": contacts})
}
