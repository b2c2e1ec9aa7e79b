package sandbox

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eurofurence/paystakk/internal/logging"
)

// CreatePage handles POST /page.
func (h *Handler) CreatePage(ctx context.Context, in *PageInput, logger logging.Logger) (*Page, error) {
	p, err := h.store.CreatePage(*in)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPage handles GET /page/{key}, key is an id or slug.
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.GetPage(chi.URLParam(r, "key"))
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, "Page retrieved", p)
}

// ListPages handles GET /page.
func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	respondList(w, r, "Pages retrieved", h.store.ListPages())
}

// CheckSlugAvailability handles GET /page/check_slug_availability/{slug}.
func (h *Handler) CheckSlugAvailability(w http.ResponseWriter, r *http.Request) {
	if !h.store.SlugAvailable(chi.URLParam(r, "slug")) {
		fail(w, r, badRequest("Slug is not available"))
		return
	}
	respond(w, r, "Slug is available", nil)
}
