package paystack_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eurofurence/paystakk/pkg/paystack"
)

func TestInvoiceRoundTrip(t *testing.T) {
	sb := newTstSandbox(t)
	ctx := context.Background()

	customer, err := paystack.NewCustomer(sb.options())
	require.NoError(t, err)
	_, err = customer.CreateCustomer(ctx, paystack.CreateCustomerRequest{Email: "payer@example.com"})
	require.NoError(t, err)

	invoice, err := paystack.NewInvoice(sb.options())
	require.NoError(t, err)

	result, err := invoice.CreateInvoice(ctx, paystack.CreateInvoiceRequest{
		Customer:    customer.CustomerCode(),
		Amount:      250,
		Description: "Conference ticket",
		DueDate:     "2026-12-01",
	})
	require.NoError(t, err)
	require.True(t, result.Status, result.Message)
	require.Equal(t, "Payment request created", invoice.Message())
	require.Regexp(t, "^PRQ_", invoice.InvoiceCode())
	require.NotEmpty(t, invoice.InvoiceID())
	require.Equal(t, result.Data.String("id"), invoice.InvoiceID())
	require.Equal(t, "25000", invoice.Data().String("amount"))
	require.Equal(t, "NGN", invoice.Data().String("currency"))
	require.Equal(t, "pending", invoice.Data().String("status"))

	code := invoice.InvoiceCode()

	_, err = invoice.FetchInvoice(ctx, code)
	require.NoError(t, err)
	require.True(t, invoice.Status())
	require.Equal(t, code, invoice.InvoiceCode())

	_, err = invoice.VerifyInvoice(ctx, code)
	require.NoError(t, err)
	require.True(t, invoice.Status())

	result, err = invoice.ListInvoices(ctx, paystack.ListInvoicesRequest{Customer: customer.CustomerCode()})
	require.NoError(t, err)
	require.Len(t, result.Data.List(), 1)
}

func TestInvoiceFromLineItems(t *testing.T) {
	sb := newTstSandbox(t)
	ctx := context.Background()

	customer, err := paystack.NewCustomer(sb.options())
	require.NoError(t, err)
	_, err = customer.CreateCustomer(ctx, paystack.CreateCustomerRequest{Email: "items@example.com"})
	require.NoError(t, err)

	invoice, err := paystack.NewInvoice(sb.options())
	require.NoError(t, err)

	_, err = invoice.CreateInvoice(ctx, paystack.CreateInvoiceRequest{
		Customer:  customer.CustomerCode(),
		LineItems: []paystack.LineItem{{Name: "ticket", Amount: 10000}, {Name: "shirt", Amount: 2500}},
		Tax:       []paystack.Tax{{Name: "VAT", Amount: 500}},
		Draft:     true,
	})
	require.NoError(t, err)
	require.True(t, invoice.Status(), invoice.Message())
	require.Equal(t, "13000", invoice.Data().String("amount"))
	require.Equal(t, "draft", invoice.Data().String("status"))
}

func TestInvoiceUnknownCustomer(t *testing.T) {
	sb := newTstSandbox(t)

	invoice, err := paystack.NewInvoice(sb.options())
	require.NoError(t, err)

	result, err := invoice.CreateInvoice(context.Background(), paystack.CreateInvoiceRequest{Customer: "CUS_unknown", Amount: 10})
	require.NoError(t, err)
	require.False(t, result.Status)
	require.Equal(t, "Customer not found", result.Message)
	require.Equal(t, "", invoice.InvoiceCode())
	require.Equal(t, "", invoice.InvoiceID())
}

func TestInvoiceRequestEncoding(t *testing.T) {
	client := &recordingClient{}
	invoice, err := paystack.NewInvoice(paystack.Options{Client: client})
	require.NoError(t, err)

	_, err = invoice.CreateInvoice(context.Background(), paystack.CreateInvoiceRequest{
		Customer:         "CUS_1",
		Amount:           12.34,
		SendNotification: false,
		HasInvoice:       true,
	})
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{
		"customer":    "CUS_1",
		"amount":      int64(1234),
		"currency":    "NGN",
		"has_invoice": true,
	}, client.last(t).body)

	_, err = invoice.ListInvoices(context.Background(), paystack.ListInvoicesRequest{
		Pagination: paystack.Pagination{Page: 3},
		Status:     "pending",
		Paid:       true,
	})
	require.NoError(t, err)

	u, err := url.Parse(client.last(t).url)
	require.NoError(t, err)
	require.Equal(t, url.Values{"page": {"3"}, "status": {"pending"}, "paid": {"true"}}, u.Query())
}
