package downstreams

import (
	"context"
	"net/url"
	"time"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"

	"github.com/eurofurence/paystakk/internal/logging"
)

// custom implementation so downstream calls end up in the context logger

type RequestLoggingImpl struct {
	Wrapped aurestclientapi.Client
}

func NewRequestLoggingWrapper(wrapped aurestclientapi.Client) aurestclientapi.Client {
	return &RequestLoggingImpl{
		Wrapped: wrapped,
	}
}

func (c *RequestLoggingImpl) Perform(ctx context.Context, method string, requestUrl string, requestBody interface{}, response *aurestclientapi.ParsedResponse) error {
	before := time.Now()
	err := c.Wrapped.Perform(ctx, method, requestUrl, requestBody, response)
	millis := time.Since(before).Milliseconds()
	loggedUrl := withoutQuery(requestUrl)
	if err != nil {
		logging.LoggerFromContext(ctx).Warn("downstream %s %s -> %d FAILED (%d ms): %s", method, loggedUrl, response.Status, millis, err.Error())
	} else {
		logging.LoggerFromContext(ctx).Info("downstream %s %s -> %d OK (%d ms)", method, loggedUrl, response.Status, millis)
	}
	return err
}

// query strings may carry customer emails, keep them out of the logs
func withoutQuery(requestUrl string) string {
	u, err := url.Parse(requestUrl)
	if err != nil {
		return requestUrl
	}
	u.RawQuery = ""
	return u.String()
}
