package sandbox

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eurofurence/paystakk/internal/logging"
	"github.com/eurofurence/paystakk/internal/restapi/common"
)

// CreateCustomer handles POST /customer.
func (h *Handler) CreateCustomer(ctx context.Context, in *CustomerInput, logger logging.Logger) (*Customer, error) {
	c, err := h.store.CreateCustomer(*in)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCustomer handles GET /customer/{key}, key is an email, id or customer code.
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.GetCustomer(chi.URLParam(r, "key"))
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, "Customer retrieved", c)
}

// UpdateCustomer handles PUT /customer/{key}.
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	in, err := common.DecodeJSONBody[CustomerInput](r)
	if err != nil {
		fail(w, r, badRequest(common.RequestParseErrorMessage))
		return
	}

	c, err := h.store.UpdateCustomer(chi.URLParam(r, "key"), *in)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, "Customer updated", c)
}

// ListCustomers handles GET /customer.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	respondList(w, r, "Customers retrieved", h.store.ListCustomers())
}
