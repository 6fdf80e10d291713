package client

import (
	"testing"

	"github.com/fivetwenty-io/stripe-client/internal/stripetest"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "sk_test_4eC39HqLyjWDarjtT1zdp7dc"

// newTestClient creates a client talking to a fake API server with the given routes.
func newTestClient(t *testing.T, routes func(r chi.Router)) (*Client, *stripetest.Server) {
	t.Helper()

	server := stripetest.NewServer(t, routes)

	client, err := New(&stripe.Config{
		SecretKey: testSecretKey,
		APIBase:   server.URL,
	})
	require.NoError(t, err)

	return client, server
}
