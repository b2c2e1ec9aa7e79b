package paystack

import "os"

// Conventional environment variable names, used by DefaultKeys.
const (
	SecretKeyEnv   = "PAYSTACK_SECRET_KEY"
	PublicKeyEnv   = "PAYSTACK_PUBLIC_KEY"
	CallbackURLEnv = "PAYSTACK_CALLBACK_URL"
)

// Keys holds the account credentials. The values are resolved once and never change afterwards.
type Keys struct {
	secretKey   string
	publicKey   string
	callbackURL string
}

// ResolveKey returns the value of the environment variable named v if it exists,
// otherwise v itself is taken as the literal value.
func ResolveKey(v string) string {
	if v == "" {
		return ""
	}
	if value, ok := os.LookupEnv(v); ok {
		return value
	}
	return v
}

// NewKeys resolves each argument independently, see ResolveKey.
//
// Pass either your keys, or the names of the environment variables holding them:
//
//	NewKeys("sk_test_topSEKrit", "pk_test_Ud0NtKNo", "https://example.com/paid")
//	NewKeys("MY_SECRET_VARIABLE", "MY_PUBLIC_VARIABLE", "")
func NewKeys(secretKey string, publicKey string, callbackURL string) Keys {
	return Keys{
		secretKey:   ResolveKey(secretKey),
		publicKey:   ResolveKey(publicKey),
		callbackURL: ResolveKey(callbackURL),
	}
}

// DefaultKeys reads PAYSTACK_SECRET_KEY, PAYSTACK_PUBLIC_KEY and PAYSTACK_CALLBACK_URL.
func DefaultKeys() Keys {
	return Keys{
		secretKey:   os.Getenv(SecretKeyEnv),
		publicKey:   os.Getenv(PublicKeyEnv),
		callbackURL: os.Getenv(CallbackURLEnv),
	}
}

func (k Keys) SecretKey() string {
	return k.secretKey
}

func (k Keys) PublicKey() string {
	return k.publicKey
}

func (k Keys) CallbackURL() string {
	return k.callbackURL
}
