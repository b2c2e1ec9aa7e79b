package paystack

import "context"

var _ CachedResponse = (*Invoice)(nil)

const defaultCurrency = "NGN"

// Invoice covers the processor's payment requests.
type Invoice struct {
	resource
}

func NewInvoice(opts Options) (*Invoice, error) {
	r, err := newResource(opts, "/paymentrequest")
	if err != nil {
		return nil, err
	}
	return &Invoice{resource: r}, nil
}

type LineItem struct {
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	Quantity int    `json:"quantity,omitempty"`
}

type Tax struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// CreateInvoiceRequest describes a payment request. Amount is in major units,
// LineItems and Tax amounts are passed on as given, in minor units.
//
// Flags left false are not sent, so the processor defaults apply to them.
type CreateInvoiceRequest struct {
	Customer         string
	Amount           float64
	DueDate          string
	Description      string
	LineItems        []LineItem
	Tax              []Tax
	Currency         string
	Metadata         map[string]interface{}
	SendNotification bool
	Draft            bool
	HasInvoice       bool
	InvoiceNumber    int
}

type ListInvoicesRequest struct {
	Pagination
	Customer       string
	Paid           bool
	Status         string
	Currency       string
	IncludeArchive bool
}

// InvoiceCode is the request code (PRQ_...) of the last invoice received.
func (i *Invoice) InvoiceCode() string {
	if code := i.field("request_code"); code != "" {
		return code
	}
	return i.field("invoice_code")
}

func (i *Invoice) InvoiceID() string {
	return i.field("id")
}

func (i *Invoice) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (Result, error) {
	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	params := BuildParams(Params{
		"customer":          req.Customer,
		"amount":            req.Amount,
		"due_date":          req.DueDate,
		"description":       req.Description,
		"line_items":        req.LineItems,
		"tax":               req.Tax,
		"currency":          currency,
		"metadata":          req.Metadata,
		"send_notification": req.SendNotification,
		"draft":             req.Draft,
		"has_invoice":       req.HasInvoice,
		"invoice_number":    req.InvoiceNumber,
	})
	return i.ctx.Post(ctx, i.url, params)
}

func (i *Invoice) ListInvoices(ctx context.Context, req ListInvoicesRequest) (Result, error) {
	params := BuildParams(merge(req.Pagination.params(), Params{
		"customer":        req.Customer,
		"paid":            req.Paid,
		"status":          req.Status,
		"currency":        req.Currency,
		"include_archive": req.IncludeArchive,
	}))
	return i.ctx.Get(ctx, i.url, params)
}

func (i *Invoice) FetchInvoice(ctx context.Context, idOrCode string) (Result, error) {
	return i.ctx.Get(ctx, i.endpoint(idOrCode), nil)
}

func (i *Invoice) VerifyInvoice(ctx context.Context, invoiceCode string) (Result, error) {
	return i.ctx.Get(ctx, i.endpoint("verify", invoiceCode), nil)
}
