package downstreams

import (
	"context"
	"net/http"
	"time"

	aurestbreaker "github.com/StephanHCB/go-autumn-restclient-circuitbreaker/implementation/breaker"
	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"
	auresthttpclient "github.com/StephanHCB/go-autumn-restclient/implementation/httpclient"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/eurofurence/paystakk/internal/logging"
)

const defaultBreakerTimeout = 15 * time.Second

// ClientSettings describes the transport stack built by ClientWith.
type ClientSettings struct {
	// Timeout applies to the whole round trip, 0 means the http client default.
	Timeout time.Duration

	// CircuitBreakerName enables a circuit breaker around the client when non-empty.
	CircuitBreakerName string
}

// RequestIDFromContext returns the request id for outgoing calls. If the caller did not
// provide one, a fresh 8 character id is generated, so every call can be traced in the logs.
func RequestIDFromContext(ctx context.Context) string {
	if reqID, ok := logging.RequestIDFromContext(ctx); ok {
		return reqID
	}

	reqUuid, err := uuid.NewRandom()
	if err != nil {
		// this should not normally ever happen, but continue with this fixed requestId
		return "ffffffff"
	}
	return reqUuid.String()[:8]
}

// RequestManipulatorChain applies the callbacks in order.
func RequestManipulatorChain(callbacks ...aurestclientapi.RequestManipulatorCallback) aurestclientapi.RequestManipulatorCallback {
	return func(ctx context.Context, r *http.Request) {
		for _, callback := range callbacks {
			if callback != nil {
				callback(ctx, r)
			}
		}
	}
}

// HeaderRequestManipulator sets fixed headers and the request id on every outgoing request.
func HeaderRequestManipulator(fixedHeaders map[string]string) aurestclientapi.RequestManipulatorCallback {
	return func(ctx context.Context, r *http.Request) {
		for k, v := range fixedHeaders {
			r.Header.Set(k, v)
		}
		if r.Header.Get(middleware.RequestIDHeader) == "" {
			r.Header.Set(middleware.RequestIDHeader, RequestIDFromContext(ctx))
		}
	}
}

func ClientWith(requestManipulator aurestclientapi.RequestManipulatorCallback, settings ClientSettings) (aurestclientapi.Client, error) {
	httpClient, err := auresthttpclient.New(settings.Timeout, nil, requestManipulator)
	if err != nil {
		return nil, err
	}

	requestLoggingClient := NewRequestLoggingWrapper(httpClient)

	if settings.CircuitBreakerName == "" {
		return requestLoggingClient, nil
	}

	breakerTimeout := settings.Timeout
	if breakerTimeout <= 0 {
		breakerTimeout = defaultBreakerTimeout
	}

	circuitBreakerClient := aurestbreaker.New(requestLoggingClient,
		settings.CircuitBreakerName,
		10,
		2*time.Minute,
		30*time.Second,
		breakerTimeout,
	)

	return circuitBreakerClient, nil
}
