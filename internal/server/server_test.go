package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-http-utils/headers"
	"github.com/stretchr/testify/require"

	"github.com/eurofurence/paystakk/internal/config"
	"github.com/eurofurence/paystakk/internal/restapi/common"
	"github.com/eurofurence/paystakk/internal/restapi/middleware"
	"github.com/eurofurence/paystakk/internal/sandbox"
)

const testSecret = "sk_test_server"

func tstRouter() http.Handler {
	return CreateRouter(testSecret, sandbox.NewHandler(sandbox.NewStore("")))
}

func TestHealthIsPublic(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/info/health", nil)
	rec := httptest.NewRecorder()

	tstRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Regexp(t, "^[0-9a-f]{8}$", rec.Header().Get(middleware.RequestIDHeader))
	require.JSONEq(t, `{"status":"up"}`, rec.Body.String())
}

func TestSandboxRoutes(t *testing.T) {
	tests := []struct {
		name           string
		authorization  string
		expectedStatus int
		expectedBody   common.Response
	}{
		{
			name:           "Should reject balance without key",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   common.Response{Status: false, Message: "No Authorization Header was found"},
		},
		{
			name:           "Should reject balance with wrong key",
			authorization:  "Bearer sk_test_other",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   common.Response{Status: false, Message: "Invalid key"},
		},
		{
			name:           "Should answer balance with the right key",
			authorization:  "Bearer " + testSecret,
			expectedStatus: http.StatusOK,
			expectedBody:   common.Response{Status: true, Message: "Balances retrieved"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/balance", nil)
			if tt.authorization != "" {
				req.Header.Set(headers.Authorization, tt.authorization)
			}
			rec := httptest.NewRecorder()

			tstRouter().ServeHTTP(rec, req)

			require.Equal(t, tt.expectedStatus, rec.Code)

			body := common.Response{}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			require.Equal(t, tt.expectedBody.Status, body.Status)
			require.Equal(t, tt.expectedBody.Message, body.Message)
		})
	}
}

func TestNewServer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.Default().Sandbox
	conf.BaseAddress = "127.0.0.1"
	conf.Port = 18086

	srv := NewServer(ctx, &conf, tstRouter())

	require.Equal(t, "127.0.0.1:18086", srv.Addr)
	require.Equal(t, 30*time.Second, srv.ReadTimeout)
	require.Equal(t, 120*time.Second, srv.IdleTimeout)
	require.Equal(t, ctx, srv.BaseContext(nil))
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	conf := config.Default().Sandbox
	conf.BaseAddress = "127.0.0.1"
	conf.Port = 18087

	srv := NewServer(ctx, &conf, tstRouter())

	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, srv)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:18087/info/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
