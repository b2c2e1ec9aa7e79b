package paystack

import "context"

var _ CachedResponse = (*Customer)(nil)

type Customer struct {
	resource
}

func NewCustomer(opts Options) (*Customer, error) {
	r, err := newResource(opts, "/customer")
	if err != nil {
		return nil, err
	}
	return &Customer{resource: r}, nil
}

type CreateCustomerRequest struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Metadata  map[string]interface{}
}

type UpdateCustomerRequest struct {
	FirstName string
	LastName  string
	Phone     string
	Metadata  map[string]interface{}
}

type ListCustomersRequest struct {
	Pagination
	// From and To limit the creation date, e.g. 2016-09-24T00:00:05.000Z
	From string
	To   string
}

func (c *Customer) CustomerCode() string {
	return c.field("customer_code")
}

// CustomerID is the numeric id the processor assigned, in decimal.
func (c *Customer) CustomerID() string {
	return c.field("id")
}

func (c *Customer) Email() string {
	return c.field("email")
}

func (c *Customer) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (Result, error) {
	params := BuildParams(Params{
		"email":      req.Email,
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"phone":      req.Phone,
		"metadata":   req.Metadata,
	})
	return c.ctx.Post(ctx, c.url, params)
}

// FetchCustomer looks up a customer by email, id or customer code.
//
// An unknown customer is reported through Status false, not as error.
func (c *Customer) FetchCustomer(ctx context.Context, emailOrIdOrCustomerCode string) (Result, error) {
	return c.ctx.Get(ctx, c.endpoint(emailOrIdOrCustomerCode), nil)
}

func (c *Customer) ListCustomers(ctx context.Context, req ListCustomersRequest) (Result, error) {
	params := BuildParams(merge(req.Pagination.params(), Params{
		"from": req.From,
		"to":   req.To,
	}))
	return c.ctx.Get(ctx, c.url, params)
}

func (c *Customer) UpdateCustomer(ctx context.Context, customerCode string, req UpdateCustomerRequest) (Result, error) {
	params := BuildParams(Params{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"phone":      req.Phone,
		"metadata":   req.Metadata,
	})
	return c.ctx.Put(ctx, c.endpoint(customerCode), params)
}
