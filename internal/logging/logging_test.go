package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupRejectsUnknownSeverity(t *testing.T) {
	err := Setup("CAT", "plain")
	require.Error(t, err)
	require.Contains(t, err.Error(), "CAT")
}

func TestSetup(t *testing.T) {
	require.NoError(t, Setup("DEBUG", "plain"))
	require.NoError(t, Setup("WARN", "json"))
	require.NotNil(t, NoCtx())
}

func TestRequestIDFromContext(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected string
		found    bool
	}{
		{
			name: "Should report nothing for a nil context",
		},
		{
			name: "Should report nothing when no request id was stored",
			ctx:  context.Background(),
		},
		{
			name:     "Should return the stored request id",
			ctx:      CreateContextWithLoggerForRequestId(context.Background(), "0123abcd"),
			expected: "0123abcd",
			found:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqID, ok := RequestIDFromContext(tt.ctx)
			require.Equal(t, tt.found, ok)
			require.Equal(t, tt.expected, reqID)
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	noop := NewNoopLogger()
	ctx := ContextWithLogger(context.Background(), noop)
	require.Same(t, noop, LoggerFromContext(ctx))

	require.NotNil(t, LoggerFromContext(context.Background()))
}
