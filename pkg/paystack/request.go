package paystack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"

	"github.com/eurofurence/paystakk/internal/downstreams"
)

// ErrTransport is matched by every error caused by the network or an unreadable response body.
var ErrTransport = errors.New("paystack request failed")

type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrTransport.Error(), e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// CachedResponse gives access to the last response received.
type CachedResponse interface {
	Status() bool
	Message() string
	Data() Data
	Last() Result
}

var _ CachedResponse = (*RequestContext)(nil)

// RequestContext sends requests to the processor and remembers the last response.
//
// Every call replaces the remembered response, so a RequestContext must not be used
// from more than one goroutine at a time.
type RequestContext struct {
	keys          Keys
	authenticator Authenticator
	headers       map[string]string
	client        aurestclientapi.Client
	apiURL        string
	payURL        string
	timeout       time.Duration

	last Result
}

func NewRequestContext(opts Options) (*RequestContext, error) {
	opts = opts.withDefaults()

	client := opts.Client
	if client == nil {
		settings := downstreams.ClientSettings{
			Timeout: opts.Timeout,
		}
		if opts.CircuitBreaker {
			settings.CircuitBreakerName = circuitBreakerName
		}

		var err error
		client, err = downstreams.ClientWith(
			downstreams.RequestManipulatorChain(
				downstreams.HeaderRequestManipulator(opts.Headers),
				opts.Authenticator.Authenticate,
			),
			settings,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to set up http client: %w", err)
		}
	}

	return &RequestContext{
		keys:          opts.Keys,
		authenticator: opts.Authenticator,
		headers:       opts.Headers,
		client:        client,
		apiURL:        strings.TrimSuffix(opts.APIURL, "/"),
		payURL:        strings.TrimSuffix(opts.PayURL, "/"),
		timeout:       opts.Timeout,
	}, nil
}

// Get sends query as URL query parameters.
func (rc *RequestContext) Get(ctx context.Context, requestUrl string, query Params) (Result, error) {
	fullUrl, err := withQuery(requestUrl, query)
	if err != nil {
		rc.last = Result{}
		return Result{}, &TransportError{Method: http.MethodGet, URL: requestUrl, Err: err}
	}
	return rc.perform(ctx, http.MethodGet, fullUrl, nil)
}

// Post sends body as JSON.
func (rc *RequestContext) Post(ctx context.Context, requestUrl string, body Params) (Result, error) {
	return rc.perform(ctx, http.MethodPost, requestUrl, jsonBody(body))
}

// Put sends body as JSON.
func (rc *RequestContext) Put(ctx context.Context, requestUrl string, body Params) (Result, error) {
	return rc.perform(ctx, http.MethodPut, requestUrl, jsonBody(body))
}

func (rc *RequestContext) perform(ctx context.Context, method string, requestUrl string, body interface{}) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, rc.timeout)
	defer cancel()

	var rawBody *[]byte
	response := aurestclientapi.ParsedResponse{
		Body: &rawBody,
	}
	if err := rc.client.Perform(ctx, method, requestUrl, body, &response); err != nil {
		rc.last = Result{}
		return Result{}, &TransportError{Method: method, URL: requestUrl, Err: err}
	}

	var responseBody []byte
	if rawBody != nil {
		responseBody = *rawBody
	}
	result, err := parseResult(responseBody, response.Status)
	if err != nil {
		rc.last = Result{}
		return Result{}, &TransportError{Method: method, URL: requestUrl, Err: fmt.Errorf("http status %d: %w", response.Status, err)}
	}

	// the processor encodes logical failures in the body, so any http status is cached as is
	rc.last = result
	return rc.last, nil
}

func (rc *RequestContext) Status() bool {
	return rc.last.Status
}

func (rc *RequestContext) Message() string {
	return rc.last.Message
}

func (rc *RequestContext) Data() Data {
	return rc.last.Data
}

func (rc *RequestContext) Last() Result {
	return rc.last
}

func (rc *RequestContext) Keys() Keys {
	return rc.keys
}

func (rc *RequestContext) Authenticator() Authenticator {
	return rc.authenticator
}

// Headers returns a copy of the fixed request headers.
func (rc *RequestContext) Headers() map[string]string {
	result := make(map[string]string, len(rc.headers))
	for k, v := range rc.headers {
		result[k] = v
	}
	return result
}

func (rc *RequestContext) APIURL() string {
	return rc.apiURL
}

func (rc *RequestContext) PayURL() string {
	return rc.payURL
}

func jsonBody(body Params) map[string]interface{} {
	if body == nil {
		return map[string]interface{}{}
	}
	return body
}

func withQuery(requestUrl string, query Params) (string, error) {
	if len(query) == 0 {
		return requestUrl, nil
	}

	u, err := url.Parse(requestUrl)
	if err != nil {
		return "", err
	}

	values := u.Query()
	for k, v := range query {
		for _, s := range queryValues(v) {
			values.Add(k, s)
		}
	}
	u.RawQuery = values.Encode()
	return u.String(), nil
}

func queryValues(v interface{}) []string {
	switch typed := v.(type) {
	case []string:
		return typed
	case []interface{}:
		result := make([]string, 0, len(typed))
		for _, e := range typed {
			result = append(result, fmt.Sprint(e))
		}
		return result
	case *string:
		return []string{*typed}
	case *bool:
		return []string{fmt.Sprint(*typed)}
	default:
		return []string{fmt.Sprint(typed)}
	}
}
