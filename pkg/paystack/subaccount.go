package paystack

import "context"

var _ CachedResponse = (*Subaccount)(nil)

type Subaccount struct {
	resource
}

func NewSubaccount(opts Options) (*Subaccount, error) {
	r, err := newResource(opts, "/subaccount")
	if err != nil {
		return nil, err
	}
	return &Subaccount{resource: r}, nil
}

type CreateSubaccountRequest struct {
	BusinessName        string
	SettlementBank      string
	AccountNumber       string
	PercentageCharge    float64
	Description         string
	PrimaryContactEmail string
	PrimaryContactName  string
	PrimaryContactPhone string
	Metadata            map[string]interface{}
}

func (s *Subaccount) SubaccountCode() string {
	return s.field("subaccount_code")
}

func (s *Subaccount) SubaccountID() string {
	return s.field("id")
}

func (s *Subaccount) CreateSubaccount(ctx context.Context, req CreateSubaccountRequest) (Result, error) {
	params := BuildParams(Params{
		"business_name":         req.BusinessName,
		"settlement_bank":       req.SettlementBank,
		"account_number":        req.AccountNumber,
		"percentage_charge":     req.PercentageCharge,
		"description":           req.Description,
		"primary_contact_email": req.PrimaryContactEmail,
		"primary_contact_name":  req.PrimaryContactName,
		"primary_contact_phone": req.PrimaryContactPhone,
		"metadata":              req.Metadata,
	})
	return s.ctx.Post(ctx, s.url, params)
}

func (s *Subaccount) FetchSubaccount(ctx context.Context, idOrCode string) (Result, error) {
	return s.ctx.Get(ctx, s.endpoint(idOrCode), nil)
}

func (s *Subaccount) ListSubaccounts(ctx context.Context, page Pagination) (Result, error) {
	return s.ctx.Get(ctx, s.url, BuildParams(page.params()))
}
