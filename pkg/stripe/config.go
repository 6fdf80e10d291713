package stripe

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
)

// Config represents client configuration for building a stripe.Client.
type Config struct {
	// Required fields
	// SecretKey: secret (sk_) or restricted (rk_) API key. It is sent as a
	// Bearer token and never logged.
	SecretKey string `validate:"required,startswith=sk_|startswith=rk_"`

	// Optional configurations
	// APIBase: base URL of the API, defaults to https://api.stripe.com.
	APIBase string `validate:"omitempty,url"`
	// APIVersion: value of the Stripe-Version header. Defaults to the version
	// the models in this package were written against.
	APIVersion string `validate:"omitempty,printascii"`
	// StripeAccount: connected account to act on behalf of (acct_...).
	StripeAccount string `validate:"omitempty,startswith=acct_"`
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// HTTPTimeout: overall timeout of one HTTP attempt. Zero uses the default.
	HTTPTimeout time.Duration `validate:"gte=0"`
	// RetryMax: transport-level retries. Zero, the default, sends every
	// request exactly once.
	RetryMax int `validate:"gte=0,lte=10"`
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration `validate:"gte=0"`
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration `validate:"omitempty,gtefield=RetryWaitMin"`
	// IdempotencyKeys: attach a random Idempotency-Key header to POST requests.
	IdempotencyKeys bool
	// Debug: enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// MetricsRegisterer: when set, request counters and latency histograms
	// are registered with it.
	MetricsRegisterer prometheus.Registerer
	// HTTPDoer: replaces the default transport.
	HTTPDoer Doer
}

// Validate checks the configuration and reports every invalid field.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}

	if c.SecretKey == "" {
		return ErrSecretKeyRequired
	}

	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s failed %q", fieldErr.Field(), fieldErr.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(fields, ", "))
}
