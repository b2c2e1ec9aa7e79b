package sandbox

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type tstEnvelope struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    *PageMeta   `json:"meta"`
}

func tstRouter(s *Store) http.Handler {
	router := chi.NewRouter()
	NewHandler(s).Routes(router)
	return router
}

func tstRequest(t *testing.T, handler http.Handler, method string, target string, body string) (int, tstEnvelope) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	envelope := tstEnvelope{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return rec.Code, envelope
}

func TestPagination(t *testing.T) {
	s := tstStore()
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com", "d@example.com", "e@example.com"} {
		_, err := s.CreateCustomer(CustomerInput{Email: email})
		require.NoError(t, err)
	}
	router := tstRouter(s)

	tests := []struct {
		name          string
		query         string
		expectedCount int
		expectedMeta  PageMeta
	}{
		{
			name:          "Should default to one large page",
			expectedCount: 5,
			expectedMeta:  PageMeta{Total: 5, Skipped: 0, PerPage: 50, Page: 1, PageCount: 1},
		},
		{
			name:          "Should cut the last page short",
			query:         "?perPage=2&page=3",
			expectedCount: 1,
			expectedMeta:  PageMeta{Total: 5, Skipped: 4, PerPage: 2, Page: 3, PageCount: 3},
		},
		{
			name:          "Should answer an empty page beyond the end",
			query:         "?perPage=2&page=9",
			expectedCount: 0,
			expectedMeta:  PageMeta{Total: 5, Skipped: 16, PerPage: 2, Page: 9, PageCount: 3},
		},
		{
			name:          "Should ignore invalid values",
			query:         "?perPage=-1&page=abc",
			expectedCount: 5,
			expectedMeta:  PageMeta{Total: 5, Skipped: 0, PerPage: 50, Page: 1, PageCount: 1},
		},
		{
			name:          "Should cap the page size",
			query:         "?perPage=500",
			expectedCount: 5,
			expectedMeta:  PageMeta{Total: 5, Skipped: 0, PerPage: 100, Page: 1, PageCount: 1},
		},
		{
			name:          "Should not overflow on huge values",
			query:         "?perPage=4611686018427387904&page=3",
			expectedCount: 0,
			expectedMeta:  PageMeta{Total: 5, Skipped: 200, PerPage: 100, Page: 3, PageCount: 1},
		},
		{
			name:          "Should cap the page number",
			query:         "?perPage=2&page=9223372036854775807",
			expectedCount: 0,
			expectedMeta:  PageMeta{Total: 5, Skipped: 1999998, PerPage: 2, Page: 1000000, PageCount: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, envelope := tstRequest(t, router, http.MethodGet, "/customer"+tt.query, "")
			require.Equal(t, http.StatusOK, status)
			require.True(t, envelope.Status)
			require.Len(t, envelope.Data, tt.expectedCount)
			require.Equal(t, &tt.expectedMeta, envelope.Meta)
		})
	}
}

func TestInvalidJSONBody(t *testing.T) {
	status, envelope := tstRequest(t, tstRouter(tstStore()), http.MethodPost, "/customer", "{not json")

	require.Equal(t, http.StatusBadRequest, status)
	require.False(t, envelope.Status)
	require.Equal(t, "Invalid JSON body", envelope.Message)
}

func TestInitializeTransactionHandler(t *testing.T) {
	router := tstRouter(tstStore())

	status, envelope := tstRequest(t, router, http.MethodPost, "/transaction/initialize",
		`{"email":"payer@example.com","amount":5000,"reference":"h-1"}`)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Authorization URL created", envelope.Message)

	data := envelope.Data.(map[string]interface{})
	require.Equal(t, "h-1", data["reference"])
	require.True(t, strings.HasPrefix(data["authorization_url"].(string), "https://checkout.example.com/"))

	status, envelope = tstRequest(t, router, http.MethodGet, "/transaction?amount=five", "")
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Invalid amount filter", envelope.Message)

	status, envelope = tstRequest(t, router, http.MethodPost, "/sandbox/transaction/h-1/pay", "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Transaction marked as paid", envelope.Message)
}

func TestUnknownPaymentRequest(t *testing.T) {
	status, envelope := tstRequest(t, tstRouter(tstStore()), http.MethodGet, "/paymentrequest/PRQ_missing", "")

	require.Equal(t, http.StatusNotFound, status)
	require.False(t, envelope.Status)
	require.Equal(t, "Payment request not found", envelope.Message)
	require.Nil(t, envelope.Data)
}
