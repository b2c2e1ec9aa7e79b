package paystack

import "context"

var _ CachedResponse = (*Transaction)(nil)

type Transaction struct {
	resource
}

func NewTransaction(opts Options) (*Transaction, error) {
	r, err := newResource(opts, "/transaction")
	if err != nil {
		return nil, err
	}
	return &Transaction{resource: r}, nil
}

// InitializeTransactionRequest starts a checkout. Amount is in major units.
// CallbackURL falls back to the callback url of the keys.
type InitializeTransactionRequest struct {
	Email       string
	Amount      float64
	Reference   string
	Currency    string
	CallbackURL string
	Plan        string
	Channels    []string
	Metadata    map[string]interface{}
}

type ChargeAuthorizationRequest struct {
	Email             string
	Amount            float64
	AuthorizationCode string
	Reference         string
	Currency          string
	Metadata          map[string]interface{}
}

// ListTransactionsRequest filters the transaction list. Amount is in major units
// like everywhere else, it is converted to minor units before sending.
type ListTransactionsRequest struct {
	Pagination
	Customer string
	Status   string
	From     string
	To       string
	Amount   float64
}

func (t *Transaction) AuthorizationURL() string {
	return t.field("authorization_url")
}

func (t *Transaction) AccessCode() string {
	return t.field("access_code")
}

func (t *Transaction) Reference() string {
	return t.field("reference")
}

// TransactionStatus is the processor's state of the transaction, e.g. success or abandoned.
func (t *Transaction) TransactionStatus() string {
	return t.field("status")
}

func (t *Transaction) TransactionID() string {
	return t.field("id")
}

func (t *Transaction) InitializeTransaction(ctx context.Context, req InitializeTransactionRequest) (Result, error) {
	callbackURL := req.CallbackURL
	if callbackURL == "" {
		callbackURL = t.ctx.Keys().CallbackURL()
	}

	params := BuildParams(Params{
		"email":        req.Email,
		"amount":       req.Amount,
		"reference":    req.Reference,
		"currency":     req.Currency,
		"callback_url": callbackURL,
		"plan":         req.Plan,
		"channels":     req.Channels,
		"metadata":     req.Metadata,
	})
	return t.ctx.Post(ctx, t.endpoint("initialize"), params)
}

func (t *Transaction) VerifyTransaction(ctx context.Context, reference string) (Result, error) {
	return t.ctx.Get(ctx, t.endpoint("verify", reference), nil)
}

func (t *Transaction) FetchTransaction(ctx context.Context, id string) (Result, error) {
	return t.ctx.Get(ctx, t.endpoint(id), nil)
}

func (t *Transaction) ListTransactions(ctx context.Context, req ListTransactionsRequest) (Result, error) {
	params := BuildParams(merge(req.Pagination.params(), Params{
		"customer": req.Customer,
		"status":   req.Status,
		"from":     req.From,
		"to":       req.To,
		"amount":   req.Amount,
	}))
	return t.ctx.Get(ctx, t.url, params)
}

// ChargeAuthorization charges a card authorization saved from an earlier transaction.
func (t *Transaction) ChargeAuthorization(ctx context.Context, req ChargeAuthorizationRequest) (Result, error) {
	params := BuildParams(Params{
		"email":              req.Email,
		"amount":             req.Amount,
		"authorization_code": req.AuthorizationCode,
		"reference":          req.Reference,
		"currency":           req.Currency,
		"metadata":           req.Metadata,
	})
	return t.ctx.Post(ctx, t.endpoint("charge_authorization"), params)
}
