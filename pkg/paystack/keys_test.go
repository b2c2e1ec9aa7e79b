package paystack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveKey(t *testing.T) {
	t.Setenv("PAYSTAKK_TEST_FOO", "bar")
	t.Setenv("PAYSTAKK_TEST_EMPTY", "")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Should return the value of an existing environment variable",
			input:    "PAYSTAKK_TEST_FOO",
			expected: "bar",
		},
		{
			name:     "Should return the input unchanged when no variable exists",
			input:    "literal_key",
			expected: "literal_key",
		},
		{
			name:     "Should return an empty variable value as empty",
			input:    "PAYSTAKK_TEST_EMPTY",
			expected: "",
		},
		{
			name:     "Should propagate empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ResolveKey(tt.input))
		})
	}
}

func TestNewKeys(t *testing.T) {
	t.Setenv("PAYSTAKK_TEST_SECRET", "sk_test_from_env")

	keys := NewKeys("PAYSTAKK_TEST_SECRET", "pk_test_literal", "https://example.com/callback")

	require.Equal(t, "sk_test_from_env", keys.SecretKey())
	require.Equal(t, "pk_test_literal", keys.PublicKey())
	require.Equal(t, "https://example.com/callback", keys.CallbackURL())
}

func TestDefaultKeys(t *testing.T) {
	t.Setenv(SecretKeyEnv, "sk_test_default")
	t.Setenv(PublicKeyEnv, "pk_test_default")
	t.Setenv(CallbackURLEnv, "")

	keys := DefaultKeys()

	require.Equal(t, "sk_test_default", keys.SecretKey())
	require.Equal(t, "pk_test_default", keys.PublicKey())
	require.Equal(t, "", keys.CallbackURL())
}
