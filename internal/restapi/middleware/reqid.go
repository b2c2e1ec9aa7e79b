package middleware

import (
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/eurofurence/paystakk/internal/logging"
)

var RequestIDHeader = middleware.RequestIDHeader

var ValidRequestIdRegex = regexp.MustCompile("^[0-9a-f]{8}$")

// requestIdOrNew keeps a well formed incoming id, so client and sandbox log lines can be matched up.
func requestIdOrNew(incoming string) string {
	if ValidRequestIdRegex.MatchString(incoming) {
		return incoming
	}
	reqUuid, err := uuid.NewRandom()
	if err != nil {
		// this should not normally ever happen, but continue with this fixed requestId
		return "ffffffff"
	}
	return reqUuid.String()[:8]
}

// RequestIdMiddleware assigns the request id, echoes it in the response header and
// places a logger tagged with it in the request context.
func RequestIdMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := requestIdOrNew(r.Header.Get(RequestIDHeader))
			w.Header().Set(RequestIDHeader, reqID)

			ctx := logging.CreateContextWithLoggerForRequestId(r.Context(), reqID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
