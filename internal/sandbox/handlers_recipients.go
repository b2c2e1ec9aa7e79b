package sandbox

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eurofurence/paystakk/internal/logging"
)

// CreateRecipient handles POST /transferrecipient.
func (h *Handler) CreateRecipient(ctx context.Context, in *RecipientInput, logger logging.Logger) (*Recipient, error) {
	rcp, err := h.store.CreateRecipient(*in)
	if err != nil {
		return nil, err
	}
	return &rcp, nil
}

// GetRecipient handles GET /transferrecipient/{key}.
func (h *Handler) GetRecipient(w http.ResponseWriter, r *http.Request) {
	rcp, err := h.store.GetRecipient(chi.URLParam(r, "key"))
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, "Recipient retrieved", rcp)
}

// ListRecipients handles GET /transferrecipient.
func (h *Handler) ListRecipients(w http.ResponseWriter, r *http.Request) {
	respondList(w, r, "Recipients retrieved", h.store.ListRecipients())
}
