package paystack

import (
	"time"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"
	"github.com/go-http-utils/headers"
)

const (
	DefaultAPIURL  = "https://api.paystack.co"
	DefaultPayURL  = "https://paystack.com/pay"
	DefaultTimeout = 5 * time.Second

	circuitBreakerName = "paystack-breaker"
)

// Options configures the request context owned by each resource client.
// Only Keys is required, everything else falls back to the processor defaults.
type Options struct {
	Keys Keys

	// APIURL is the processor host without trailing slash.
	APIURL string

	// PayURL is the base of hosted payment pages.
	PayURL string

	// Timeout for each single call.
	Timeout time.Duration

	// Headers sent with every request in addition to the authorization header.
	// When nil, Content-Type: application/json is sent.
	Headers map[string]string

	CircuitBreaker bool

	// Authenticator replaces the bearer token authentication.
	Authenticator Authenticator

	// Client replaces the whole transport stack, headers and Authenticator
	// are then the responsibility of the replacement.
	Client aurestclientapi.Client
}

func (o Options) withDefaults() Options {
	if o.APIURL == "" {
		o.APIURL = DefaultAPIURL
	}
	if o.PayURL == "" {
		o.PayURL = DefaultPayURL
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Headers == nil {
		o.Headers = map[string]string{headers.ContentType: "application/json"}
	}
	if o.Authenticator == nil {
		o.Authenticator = NewBearerTokenAuth(o.Keys)
	}
	return o
}
