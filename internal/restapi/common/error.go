package common

import (
	"context"
	"errors"
	"net/http"

	"github.com/eurofurence/paystakk/internal/logging"
)

// StatusError is a failure the client should see as is,
// with its own http status and message.
type StatusError interface {
	error
	HTTPStatus() int
	APIMessage() string
}

// SendError answers with the status and message of a StatusError.
// Any other error is logged and answered with a generic 500.
func SendError(ctx context.Context, w http.ResponseWriter, err error) {
	var statusErr StatusError
	if errors.As(err, &statusErr) {
		SendResponseWithStatusAndMessage(ctx, w, statusErr.HTTPStatus(), statusErr.APIMessage())
		return
	}

	logging.LoggerFromContext(ctx).Error("An error occurred during the request. [error]: %v", err)
	SendInternalServerError(ctx, w)
}
