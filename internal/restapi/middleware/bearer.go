package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/go-http-utils/headers"

	"github.com/eurofurence/paystakk/internal/logging"
	"github.com/eurofurence/paystakk/internal/restapi/common"
)

const bearerPrefix = "Bearer "

func bearerTokenHandlerMiddleware(secretKey string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.LoggerFromContext(r.Context())

		header := r.Header.Get(headers.Authorization)
		if header == "" {
			logger.Warn("no authorization header provided")
			common.SendUnauthorizedResponse(r.Context(), w, "No Authorization Header was found")
			return
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		if token == header || subtle.ConstantTimeCompare([]byte(token), []byte(secretKey)) != 1 {
			logger.Warn("invalid key provided")
			common.SendUnauthorizedResponse(r.Context(), w, "Invalid key")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// BearerTokenMiddleware only lets requests through that carry "Authorization: Bearer <secretKey>".
func BearerTokenMiddleware(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return bearerTokenHandlerMiddleware(secretKey, next)
	}
}
