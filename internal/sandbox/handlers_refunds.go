package sandbox

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eurofurence/paystakk/internal/logging"
)

// CreateRefund handles POST /refund.
func (h *Handler) CreateRefund(ctx context.Context, in *RefundInput, logger logging.Logger) (*Refund, error) {
	refund, err := h.store.CreateRefund(*in)
	if err != nil {
		return nil, err
	}
	return &refund, nil
}

// GetRefund handles GET /refund/{key}.
func (h *Handler) GetRefund(w http.ResponseWriter, r *http.Request) {
	refund, err := h.store.GetRefund(chi.URLParam(r, "key"))
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, "Refund retrieved", refund)
}

// ListRefunds handles GET /refund.
func (h *Handler) ListRefunds(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	respondList(w, r, "Refunds retrieved", h.store.ListRefunds(query.Get("reference"), query.Get("currency")))
}
