package sandbox

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eurofurence/paystakk/internal/logging"
)

type initializeResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// InitializeTransaction handles POST /transaction/initialize.
func (h *Handler) InitializeTransaction(ctx context.Context, in *TransactionInput, logger logging.Logger) (*initializeResponse, error) {
	t, err := h.store.InitializeTransaction(*in)
	if err != nil {
		return nil, err
	}
	logger.Debug("sandbox transaction %s initialized over %d %s", t.Reference, t.Amount, t.Currency)
	return &initializeResponse{
		AuthorizationURL: t.AuthorizationURL,
		AccessCode:       t.AccessCode,
		Reference:        t.Reference,
	}, nil
}

// VerifyTransaction handles GET /transaction/verify/{reference}.
func (h *Handler) VerifyTransaction(w http.ResponseWriter, r *http.Request) {
	t, err := h.store.VerifyTransaction(chi.URLParam(r, "reference"))
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, "Verification successful", t)
}

// GetTransaction handles GET /transaction/{key}.
func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	t, err := h.store.GetTransaction(chi.URLParam(r, "key"))
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, "Transaction retrieved", t)
}

// ListTransactions handles GET /transaction. The amount filter is in minor units.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := TransactionFilter{
		Customer: query.Get("customer"),
		Status:   query.Get("status"),
	}
	if amount := query.Get("amount"); amount != "" {
		parsed, err := strconv.ParseInt(amount, 10, 64)
		if err != nil {
			fail(w, r, badRequest("Invalid amount filter"))
			return
		}
		filter.Amount = parsed
	}
	respondList(w, r, "Transactions retrieved", h.store.ListTransactions(filter))
}

// ChargeAuthorization handles POST /transaction/charge_authorization.
func (h *Handler) ChargeAuthorization(ctx context.Context, in *TransactionInput, logger logging.Logger) (*Transaction, error) {
	t, err := h.store.ChargeAuthorization(*in)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// PayTransaction handles POST /sandbox/transaction/{reference}/pay.
// It stands in for the customer completing the hosted checkout.
func (h *Handler) PayTransaction(w http.ResponseWriter, r *http.Request) {
	t, err := h.store.Pay(chi.URLParam(r, "reference"))
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, "Transaction marked as paid", t)
}
