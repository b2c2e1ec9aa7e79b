// The sandbox server answers the processor endpoints from memory, so the client can be
// exercised without network access or real keys.

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/eurofurence/paystakk/internal/config"
	"github.com/eurofurence/paystakk/internal/logging"
	"github.com/eurofurence/paystakk/internal/restapi/middleware"
	v1health "github.com/eurofurence/paystakk/internal/restapi/v1/health"
	"github.com/eurofurence/paystakk/internal/sandbox"
)

const shutdownGracePeriod = 5 * time.Second

func NewServer(ctx context.Context, conf *config.SandboxConfig, router http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", conf.BaseAddress, conf.Port),
		Handler:      router,
		ReadTimeout:  time.Second * time.Duration(conf.ReadTimeout),
		WriteTimeout: time.Second * time.Duration(conf.WriteTimeout),
		IdleTimeout:  time.Second * time.Duration(conf.IdleTimeout),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}
}

// CreateRouter protects everything except the health endpoint with the secret key.
func CreateRouter(secretKey string, handler *sandbox.Handler) chi.Router {
	router := chi.NewRouter()

	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestIdMiddleware())

	v1health.Create(router)

	router.Group(func(r chi.Router) {
		r.Use(middleware.BearerTokenMiddleware(secretKey))
		handler.Routes(r)
	})

	return router
}

// Serve blocks until ctx is cancelled, then shuts the server down gracefully.
func Serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		logging.NoCtx().Info("sandbox listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.NoCtx().Info("stopping sandbox now")

	tCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()

	if err := srv.Shutdown(tCtx); err != nil {
		return fmt.Errorf("couldn't shutdown sandbox gracefully: %w", err)
	}
	return <-errCh
}
