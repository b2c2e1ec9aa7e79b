package paystack_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"
	"github.com/stretchr/testify/require"

	"github.com/eurofurence/paystakk/internal/sandbox"
	"github.com/eurofurence/paystakk/internal/server"
	"github.com/eurofurence/paystakk/pkg/paystack"
)

const (
	tstSecretKey   = "sk_test_paystakk"
	tstPublicKey   = "pk_test_paystakk"
	tstCallbackURL = "https://example.com/paid"
	tstPayURL      = "https://paystack.com/pay"
)

type tstSandbox struct {
	server *httptest.Server
	store  *sandbox.Store
}

func newTstSandbox(t *testing.T) *tstSandbox {
	store := sandbox.NewStore("")
	srv := httptest.NewServer(server.CreateRouter(tstSecretKey, sandbox.NewHandler(store)))
	t.Cleanup(srv.Close)
	return &tstSandbox{server: srv, store: store}
}

func (s *tstSandbox) options() paystack.Options {
	return paystack.Options{
		Keys:   paystack.NewKeys(tstSecretKey, tstPublicKey, tstCallbackURL),
		APIURL: s.server.URL,
		PayURL: tstPayURL,
	}
}

// pay completes the hosted checkout of reference, as the customer would.
func (s *tstSandbox) pay(t *testing.T, reference string) {
	rc, err := paystack.NewRequestContext(s.options())
	require.NoError(t, err)

	result, err := rc.Post(context.Background(), s.server.URL+"/sandbox/transaction/"+reference+"/pay", nil)
	require.NoError(t, err)
	require.True(t, result.Status, result.Message)
}

// initializePaid creates a successful transaction over amount major units.
func (s *tstSandbox) initializePaid(t *testing.T, email string, reference string, amount float64) {
	transaction, err := paystack.NewTransaction(s.options())
	require.NoError(t, err)

	result, err := transaction.InitializeTransaction(context.Background(), paystack.InitializeTransactionRequest{
		Email:     email,
		Amount:    amount,
		Reference: reference,
	})
	require.NoError(t, err)
	require.True(t, result.Status, result.Message)

	s.pay(t, reference)
}

type recordedCall struct {
	method string
	url    string
	body   interface{}
}

// recordingClient captures outgoing calls without sending them and answers with body,
// or with a minimal successful envelope when body is nil.
type recordingClient struct {
	calls []recordedCall
	body  []byte
	err   error
}

func (c *recordingClient) Perform(ctx context.Context, method string, requestUrl string, requestBody interface{}, response *aurestclientapi.ParsedResponse) error {
	c.calls = append(c.calls, recordedCall{method: method, url: requestUrl, body: requestBody})
	if c.err != nil {
		return c.err
	}

	body := c.body
	if body == nil {
		body = []byte(`{"status":true,"message":"recorded"}`)
	}
	if raw, ok := response.Body.(**[]byte); ok {
		*raw = &body
	}
	response.Status = http.StatusOK
	return nil
}

func (c *recordingClient) last(t *testing.T) recordedCall {
	require.NotEmpty(t, c.calls)
	return c.calls[len(c.calls)-1]
}
