package sandbox

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eurofurence/paystakk/internal/logging"
)

// CreateSubaccount handles POST /subaccount.
func (h *Handler) CreateSubaccount(ctx context.Context, in *SubaccountInput, logger logging.Logger) (*Subaccount, error) {
	sa, err := h.store.CreateSubaccount(*in)
	if err != nil {
		return nil, err
	}
	return &sa, nil
}

// GetSubaccount handles GET /subaccount/{key}.
func (h *Handler) GetSubaccount(w http.ResponseWriter, r *http.Request) {
	sa, err := h.store.GetSubaccount(chi.URLParam(r, "key"))
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, "Subaccount retrieved", sa)
}

// ListSubaccounts handles GET /subaccount.
func (h *Handler) ListSubaccounts(w http.ResponseWriter, r *http.Request) {
	respondList(w, r, "Subaccounts retrieved", h.store.ListSubaccounts())
}
