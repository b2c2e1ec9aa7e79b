package common

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-http-utils/headers"

	"github.com/eurofurence/paystakk/internal/logging"
)

const (
	ContentTypeApplicationJson = "application/json"

	UnknownErrorMessage      = "An error occurred"
	RequestParseErrorMessage = "Invalid JSON body"
)

// Response is the envelope the processor wraps around every answer.
type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

func NewResponse(message string, data interface{}) *Response {
	return &Response{
		Status:  true,
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  false,
		Message: message,
	}
}

func EncodeToJSON(ctx context.Context, w http.ResponseWriter, obj interface{}) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if obj != nil {
		err := enc.Encode(obj)

		if err != nil {
			logging.LoggerFromContext(ctx).Error("Could not encode response. [error]: %v", err)
		}
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, status int, obj interface{}) {
	w.Header().Set(headers.ContentType, ContentTypeApplicationJson)
	w.WriteHeader(status)
	EncodeToJSON(ctx, w, obj)
}

func SendResponseWithStatusAndMessage(ctx context.Context, w http.ResponseWriter, status int, message string) {
	logging.LoggerFromContext(ctx).Debug("Request was not successful: %d %s", status, message)
	SendJSON(ctx, w, status, NewErrorResponse(message))
}

func SendUnauthorizedResponse(ctx context.Context, w http.ResponseWriter, message string) {
	SendResponseWithStatusAndMessage(ctx, w, http.StatusUnauthorized, message)
}

func SendBadRequestResponse(ctx context.Context, w http.ResponseWriter, message string) {
	SendResponseWithStatusAndMessage(ctx, w, http.StatusBadRequest, message)
}

func SendStatusNotFoundResponse(ctx context.Context, w http.ResponseWriter, message string) {
	SendResponseWithStatusAndMessage(ctx, w, http.StatusNotFound, message)
}

func SendInternalServerError(ctx context.Context, w http.ResponseWriter) {
	SendResponseWithStatusAndMessage(ctx, w, http.StatusInternalServerError, UnknownErrorMessage)
}
