package paystack_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eurofurence/paystakk/pkg/paystack"
)

func TestRefund(t *testing.T) {
	sb := newTstSandbox(t)
	ctx := context.Background()

	sb.initializePaid(t, "refund@example.com", "refund-1", 100)

	refund, err := paystack.NewRefund(sb.options())
	require.NoError(t, err)

	result, err := refund.CreateRefund(ctx, paystack.CreateRefundRequest{
		Transaction:  "refund-1",
		Amount:       40,
		CustomerNote: "partial refund",
	})
	require.NoError(t, err)
	require.True(t, result.Status, result.Message)
	require.Equal(t, "Refund has been queued for processing", refund.Message())
	require.Equal(t, "pending", refund.RefundStatus())
	require.Equal(t, "4000", refund.Data().String("amount"))

	id := refund.RefundID()
	require.NotEmpty(t, id)

	_, err = refund.FetchRefund(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Refund retrieved", refund.Message())
	require.Equal(t, id, refund.RefundID())

	_, err = refund.CreateRefund(ctx, paystack.CreateRefundRequest{Transaction: "refund-1", Amount: 70})
	require.NoError(t, err)
	require.False(t, refund.Status())
	require.Equal(t, "Refund amount cannot be greater than transaction amount", refund.Message())
	require.Equal(t, "", refund.RefundID())

	// no amount refunds what is left
	_, err = refund.CreateRefund(ctx, paystack.CreateRefundRequest{Transaction: "refund-1"})
	require.NoError(t, err)
	require.True(t, refund.Status(), refund.Message())
	require.Equal(t, "6000", refund.Data().String("amount"))

	result, err = refund.ListRefunds(ctx, paystack.ListRefundsRequest{Reference: "refund-1"})
	require.NoError(t, err)
	require.Len(t, result.Data.List(), 2)

	transaction, err := paystack.NewTransaction(sb.options())
	require.NoError(t, err)
	_, err = transaction.VerifyTransaction(ctx, "refund-1")
	require.NoError(t, err)
	require.Equal(t, "reversed", transaction.TransactionStatus())
}

func TestRefundUnpaidTransaction(t *testing.T) {
	sb := newTstSandbox(t)
	ctx := context.Background()

	transaction, err := paystack.NewTransaction(sb.options())
	require.NoError(t, err)
	_, err = transaction.InitializeTransaction(ctx, paystack.InitializeTransactionRequest{
		Email:     "unpaid@example.com",
		Amount:    10,
		Reference: "unpaid-1",
	})
	require.NoError(t, err)

	refund, err := paystack.NewRefund(sb.options())
	require.NoError(t, err)

	result, err := refund.CreateRefund(ctx, paystack.CreateRefundRequest{Transaction: "unpaid-1"})
	require.NoError(t, err)
	require.False(t, result.Status)
	require.Equal(t, "Cannot refund a transaction that was not successful", result.Message)
	require.Equal(t, "", refund.RefundStatus())
}
