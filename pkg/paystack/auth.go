package paystack

import (
	"context"
	"net/http"

	"github.com/go-http-utils/headers"
)

// Authenticator attaches the account credential to every outgoing request.
type Authenticator interface {
	Authenticate(ctx context.Context, r *http.Request)
}

// BearerTokenAuth sends the secret key as bearer token.
type BearerTokenAuth struct {
	secretKey string
}

func NewBearerTokenAuth(keys Keys) *BearerTokenAuth {
	return &BearerTokenAuth{
		secretKey: keys.SecretKey(),
	}
}

func (a *BearerTokenAuth) Authenticate(ctx context.Context, r *http.Request) {
	r.Header.Set(headers.Authorization, "Bearer "+a.secretKey)
}
