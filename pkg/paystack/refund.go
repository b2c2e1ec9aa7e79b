package paystack

import "context"

var _ CachedResponse = (*Refund)(nil)

type Refund struct {
	resource
}

func NewRefund(opts Options) (*Refund, error) {
	r, err := newResource(opts, "/refund")
	if err != nil {
		return nil, err
	}
	return &Refund{resource: r}, nil
}

// CreateRefundRequest refunds a transaction, given by reference or id.
// Amount is in major units, a zero amount refunds the full transaction.
type CreateRefundRequest struct {
	Transaction  string
	Amount       float64
	Currency     string
	CustomerNote string
	MerchantNote string
}

type ListRefundsRequest struct {
	Pagination
	Reference string
	Currency  string
}

func (r *Refund) RefundID() string {
	return r.field("id")
}

// RefundStatus is the processor's state of the refund, e.g. pending or processed.
func (r *Refund) RefundStatus() string {
	return r.field("status")
}

func (r *Refund) CreateRefund(ctx context.Context, req CreateRefundRequest) (Result, error) {
	params := BuildParams(Params{
		"transaction":   req.Transaction,
		"amount":        req.Amount,
		"currency":      req.Currency,
		"customer_note": req.CustomerNote,
		"merchant_note": req.MerchantNote,
	})
	return r.ctx.Post(ctx, r.url, params)
}

func (r *Refund) ListRefunds(ctx context.Context, req ListRefundsRequest) (Result, error) {
	params := BuildParams(merge(req.Pagination.params(), Params{
		"reference": req.Reference,
		"currency":  req.Currency,
	}))
	return r.ctx.Get(ctx, r.url, params)
}

func (r *Refund) FetchRefund(ctx context.Context, id string) (Result, error) {
	return r.ctx.Get(ctx, r.endpoint(id), nil)
}
