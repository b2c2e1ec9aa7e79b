package paystack_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eurofurence/paystakk/pkg/paystack"
)

func TestPaymentPage(t *testing.T) {
	sb := newTstSandbox(t)
	ctx := context.Background()

	page, err := paystack.NewPaymentPage(sb.options())
	require.NoError(t, err)
	require.Equal(t, tstPayURL, page.PaymentURL())
	require.Equal(t, "", page.PageURL())

	result, err := page.CreatePage(ctx, paystack.CreatePageRequest{Name: "test page", Amount: 20})
	require.NoError(t, err)
	require.True(t, result.Status, result.Message)
	require.Equal(t, "Page created", page.Message())
	require.Equal(t, "test page", page.Name())
	require.NotEmpty(t, page.Slug())
	require.Equal(t, tstPayURL+"/"+page.Slug(), page.PageURL())
	require.Equal(t, "2000", page.Data().String("amount"))

	slug := page.Slug()

	_, err = page.CheckSlugAvailability(ctx, slug)
	require.NoError(t, err)
	require.False(t, page.Status())
	require.Equal(t, "Slug is not available", page.Message())
	require.Equal(t, "", page.PageURL())

	_, err = page.CheckSlugAvailability(ctx, "still-free")
	require.NoError(t, err)
	require.True(t, page.Status())
	require.Equal(t, "Slug is available", page.Message())

	_, err = page.FetchPage(ctx, slug)
	require.NoError(t, err)
	require.Equal(t, "Page retrieved", page.Message())
	require.Equal(t, tstPayURL+"/"+slug, page.PageURL())

	result, err = page.ListPages(ctx, paystack.Pagination{})
	require.NoError(t, err)
	require.Len(t, result.Data.List(), 1)
}

func TestPaymentPageRejected(t *testing.T) {
	sb := newTstSandbox(t)
	ctx := context.Background()

	page, err := paystack.NewPaymentPage(sb.options())
	require.NoError(t, err)

	_, err = page.CreatePage(ctx, paystack.CreatePageRequest{Name: "first", Slug: "taken"})
	require.NoError(t, err)
	require.True(t, page.Status())

	_, err = page.CreatePage(ctx, paystack.CreatePageRequest{Name: "second", Slug: "taken"})
	require.NoError(t, err)
	require.False(t, page.Status())
	require.Equal(t, "Slug is not available", page.Message())
	require.Equal(t, "", page.PageURL())
	require.Equal(t, "", page.Slug())

	_, err = page.CreatePage(ctx, paystack.CreatePageRequest{Description: "nameless"})
	require.NoError(t, err)
	require.False(t, page.Status())
	require.Equal(t, "Name is required", page.Message())
}
