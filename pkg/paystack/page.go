package paystack

import "context"

var _ CachedResponse = (*PaymentPage)(nil)

type PaymentPage struct {
	resource
	payURL string
}

func NewPaymentPage(opts Options) (*PaymentPage, error) {
	r, err := newResource(opts, "/page")
	if err != nil {
		return nil, err
	}
	return &PaymentPage{
		resource: r,
		payURL:   r.ctx.PayURL(),
	}, nil
}

// CreatePageRequest describes a hosted payment page. Amount is in major units,
// leave it zero to let the payer choose.
type CreatePageRequest struct {
	Name         string
	Description  string
	Amount       float64
	Slug         string
	RedirectURL  string
	CustomFields []map[string]interface{}
}

func (p *PaymentPage) PaymentURL() string {
	return p.payURL
}

func (p *PaymentPage) Slug() string {
	return p.field("slug")
}

func (p *PaymentPage) Name() string {
	return p.field("name")
}

// PageURL is where payers find the page, "" unless the last call succeeded.
func (p *PaymentPage) PageURL() string {
	if !p.Status() || p.Slug() == "" {
		return ""
	}
	return p.payURL + "/" + p.Slug()
}

func (p *PaymentPage) CreatePage(ctx context.Context, req CreatePageRequest) (Result, error) {
	params := BuildParams(Params{
		"name":          req.Name,
		"description":   req.Description,
		"amount":        req.Amount,
		"slug":          req.Slug,
		"redirect_url":  req.RedirectURL,
		"custom_fields": req.CustomFields,
	})
	return p.ctx.Post(ctx, p.url, params)
}

func (p *PaymentPage) FetchPage(ctx context.Context, idOrSlug string) (Result, error) {
	return p.ctx.Get(ctx, p.endpoint(idOrSlug), nil)
}

func (p *PaymentPage) ListPages(ctx context.Context, page Pagination) (Result, error) {
	return p.ctx.Get(ctx, p.url, BuildParams(page.params()))
}

// CheckSlugAvailability reports through Status whether slug is still free.
func (p *PaymentPage) CheckSlugAvailability(ctx context.Context, slug string) (Result, error) {
	return p.ctx.Get(ctx, p.endpoint("check_slug_availability", slug), nil)
}
