package common

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/eurofurence/paystakk/internal/logging"
)

type RequestHandler[Req any] func(r *http.Request) (*Req, error)
type ResponseHandler[Res any] func(ctx context.Context, res *Res, w http.ResponseWriter) error
type Endpoint[Req, Res any] func(ctx context.Context, request *Req, logger logging.Logger) (*Res, error)

func CreateHandler[Req, Res any](endpoint Endpoint[Req, Res],
	requestHandler RequestHandler[Req],
	responseHandler ResponseHandler[Res]) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logging.LoggerFromContext(ctx)

		defer func() {
			err := r.Body.Close()
			if err != nil {
				logger.Error("Error when closing the request body. [error]: %v", err)
			}
		}()

		if requestHandler == nil {
			logger.Error("No request handler supplied")
			SendInternalServerError(ctx, w)
			return
		}

		if responseHandler == nil {
			logger.Error("No response handler supplied")
			SendInternalServerError(ctx, w)
			return
		}

		request, err := requestHandler(r)
		if err != nil {
			logger.Warn("An error occurred while parsing the request. [error]: %v", err)
			SendBadRequestResponse(ctx, w, RequestParseErrorMessage)
			return
		}

		response, err := endpoint(ctx, request, logger)
		if err != nil {
			SendError(ctx, w, err)
			return
		}

		if err := responseHandler(ctx, response, w); err != nil {
			logger.Error("An error occurred during the handling of the response. [error]: %v", err)
			SendInternalServerError(ctx, w)
			return
		}
	})
}

// DecodeJSONBody is a RequestHandler for json bodies. An empty body yields the zero value.
func DecodeJSONBody[Req any](r *http.Request) (*Req, error) {
	request := new(Req)
	if r.ContentLength == 0 {
		return request, nil
	}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		return nil, err
	}
	return request, nil
}

// RespondWithMessage is a ResponseHandler wrapping the result into a successful Response.
func RespondWithMessage[Res any](message string) ResponseHandler[Res] {
	return func(ctx context.Context, res *Res, w http.ResponseWriter) error {
		SendJSON(ctx, w, http.StatusOK, NewResponse(message, res))
		return nil
	}
}
