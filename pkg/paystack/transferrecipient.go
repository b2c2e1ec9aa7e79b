package paystack

import "context"

var _ CachedResponse = (*TransferRecipient)(nil)

type TransferRecipient struct {
	resource
}

func NewTransferRecipient(opts Options) (*TransferRecipient, error) {
	r, err := newResource(opts, "/transferrecipient")
	if err != nil {
		return nil, err
	}
	return &TransferRecipient{resource: r}, nil
}

// CreateTransferRecipientRequest registers a payout destination.
// Type is one of nuban, mobile_money, basa or authorization.
type CreateTransferRecipientRequest struct {
	Type              string
	Name              string
	AccountNumber     string
	BankCode          string
	Currency          string
	Description       string
	AuthorizationCode string
	Metadata          map[string]interface{}
}

func (tr *TransferRecipient) RecipientCode() string {
	return tr.field("recipient_code")
}

func (tr *TransferRecipient) RecipientID() string {
	return tr.field("id")
}

func (tr *TransferRecipient) CreateTransferRecipient(ctx context.Context, req CreateTransferRecipientRequest) (Result, error) {
	params := BuildParams(Params{
		"type":               req.Type,
		"name":               req.Name,
		"account_number":     req.AccountNumber,
		"bank_code":          req.BankCode,
		"currency":           req.Currency,
		"description":        req.Description,
		"authorization_code": req.AuthorizationCode,
		"metadata":           req.Metadata,
	})
	return tr.ctx.Post(ctx, tr.url, params)
}

func (tr *TransferRecipient) FetchTransferRecipient(ctx context.Context, idOrCode string) (Result, error) {
	return tr.ctx.Get(ctx, tr.endpoint(idOrCode), nil)
}

func (tr *TransferRecipient) ListTransferRecipients(ctx context.Context, page Pagination) (Result, error) {
	return tr.ctx.Get(ctx, tr.url, BuildParams(page.params()))
}
