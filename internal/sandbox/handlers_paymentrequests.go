package sandbox

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eurofurence/paystakk/internal/logging"
)

// CreatePaymentRequest handles POST /paymentrequest.
func (h *Handler) CreatePaymentRequest(ctx context.Context, in *PaymentRequestInput, logger logging.Logger) (*PaymentRequest, error) {
	pr, err := h.store.CreatePaymentRequest(*in)
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// GetPaymentRequest handles GET /paymentrequest/{key}, key is an id or request code.
func (h *Handler) GetPaymentRequest(w http.ResponseWriter, r *http.Request) {
	pr, err := h.store.GetPaymentRequest(chi.URLParam(r, "key"))
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, "Payment request retrieved", pr)
}

// VerifyPaymentRequest handles GET /paymentrequest/verify/{key}.
func (h *Handler) VerifyPaymentRequest(w http.ResponseWriter, r *http.Request) {
	pr, err := h.store.GetPaymentRequest(chi.URLParam(r, "key"))
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, "Payment request retrieved", pr)
}

// ListPaymentRequests handles GET /paymentrequest.
func (h *Handler) ListPaymentRequests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := PaymentRequestFilter{
		Customer:       query.Get("customer"),
		Status:         query.Get("status"),
		Currency:       query.Get("currency"),
		Paid:           queryBool(r, "paid"),
		IncludeArchive: query.Get("include_archive") == "true",
	}
	respondList(w, r, "Payment requests retrieved", h.store.ListPaymentRequests(filter))
}
