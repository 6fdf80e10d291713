package auth

import (
	"errors"
	"strings"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrEmptySecretKey = errors.New("secret key is empty")
)

// Mode is the environment an API key belongs to.
type Mode string

// Key modes.
const (
	ModeLive    Mode = "live"
	ModeTest    Mode = "test"
	ModeUnknown Mode = "unknown"
)

// Credentials holds the secret API key of one account. It is immutable and
// renders redacted when formatted.
type Credentials struct {
	secretKey string
	mode      Mode
}

// NewCredentials creates credentials for the given secret or restricted key.
func NewCredentials(secretKey string) (*Credentials, error) {
	secretKey = strings.TrimSpace(secretKey)
	if secretKey == "" {
		return nil, ErrEmptySecretKey
	}

	return &Credentials{
		secretKey: secretKey,
		mode:      modeOf(secretKey),
	}, nil
}

func modeOf(secretKey string) Mode {
	switch {
	case strings.HasPrefix(secretKey, "sk_live_"), strings.HasPrefix(secretKey, "rk_live_"):
		return ModeLive
	case strings.HasPrefix(secretKey, "sk_test_"), strings.HasPrefix(secretKey, "rk_test_"):
		return ModeTest
	default:
		return ModeUnknown
	}
}

// Mode returns whether the key is a live or test key.
func (c *Credentials) Mode() Mode {
	return c.mode
}

// Livemode reports whether requests affect live data.
func (c *Credentials) Livemode() bool {
	return c.mode == ModeLive
}

// AuthorizationHeader returns the value of the Authorization header.
func (c *Credentials) AuthorizationHeader() string {
	return "Bearer " + c.secretKey
}

// String returns a redacted form keeping the key prefix and the last four characters.
func (c *Credentials) String() string {
	return Redact(c.secretKey)
}

// GoString keeps %#v from printing the key.
func (c *Credentials) GoString() string {
	return "auth.Credentials{" + c.String() + "}"
}

// Redact masks a secret key for display.
func Redact(secretKey string) string {
	const visible = 4

	prefixEnd := strings.LastIndex(secretKey, "_") + 1
	if prefixEnd == 0 || len(secretKey)-prefixEnd <= visible {
		return constants.MaskedSecret
	}

	return secretKey[:prefixEnd] + constants.MaskedSecret + secretKey[len(secretKey)-visible:]
}
