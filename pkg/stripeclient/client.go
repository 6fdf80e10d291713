// Package stripeclient provides the main entry point for creating payment API clients
package stripeclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/stripe-client/internal/client"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// New creates a new API client from config.
func New(config *stripe.Config) (stripe.Client, error) {
	if config == nil {
		return nil, stripe.ErrConfigRequired
	}

	// Normalize API base
	if config.APIBase != "" {
		config.APIBase = strings.TrimSuffix(config.APIBase, "/")
		if !strings.HasPrefix(config.APIBase, "http://") && !strings.HasPrefix(config.APIBase, "https://") {
			config.APIBase = "https://" + config.APIBase
		}
	}

	client, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithKey creates a new client for the default API base with a secret key.
func NewWithKey(secretKey string) (stripe.Client, error) {
	return New(&stripe.Config{
		SecretKey: secretKey,
	})
}

// NewWithAccount creates a new client acting on behalf of a connected account.
func NewWithAccount(secretKey, account string) (stripe.Client, error) {
	return New(&stripe.Config{
		SecretKey:     secretKey,
		StripeAccount: account,
	})
}
