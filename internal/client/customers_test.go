package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/stripe-client/internal/stripetest"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCustomersClient(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(t, func(r chi.Router) {
		r.Post("/v1/customers", stripetest.Object("customer", map[string]any{"id": "cus_new", "email": "jenny@example.com"}))
		r.Get("/v1/customers", stripetest.List("/v1/customers", false, map[string]any{"id": "cus_1", "object": "customer"}))
		r.Route("/v1/customers/{id}", func(r chi.Router) {
			r.Get("/", stripetest.Object("customer", map[string]any{
				"default_source": map[string]any{"id": "card_1", "object": "card", "last4": "4242"},
			}))
			r.Post("/", stripetest.Object("customer", map[string]any{"name": "Jenny Rosen"}))
			r.Delete("/", stripetest.Object("customer", map[string]any{"deleted": true}))
		})
	})

	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		customer, err := client.Customers().Create(ctx, &stripe.CustomerParams{
			Email: stripe.Ptr("jenny@example.com"),
			Address: &stripe.AddressParams{
				Line1:   stripe.Ptr("510 Townsend St"),
				Country: stripe.Ptr("US"),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "cus_new", customer.ID)

		request := server.LastRequest()
		assert.Equal(t, "510 Townsend St", request.Form.Get("address[line1]"))
		assert.Equal(t, "US", request.Form.Get("address[country]"))
	})

	t.Run("get", func(t *testing.T) {
		customer, err := client.Customers().Get(ctx, "cus_1", nil)
		require.NoError(t, err)
		assert.Equal(t, "cus_1", customer.ID)
		assert.Empty(t, server.LastRequest().Query)

		card, err := stripe.ExpandableAs[stripe.Card](customer.DefaultSource)
		require.NoError(t, err)
		assert.Equal(t, "4242", card.Last4)
	})

	t.Run("update", func(t *testing.T) {
		customer, err := client.Customers().Update(ctx, "cus_1", &stripe.CustomerParams{Name: stripe.Ptr("Jenny Rosen")})
		require.NoError(t, err)
		assert.Equal(t, "Jenny Rosen", customer.Name)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := client.Customers().Delete(ctx, "cus_1")
		require.NoError(t, err)
		assert.True(t, deleted.Deleted)
		assert.Equal(t, "cus_1", deleted.ID)
		assert.Equal(t, http.MethodDelete, server.LastRequest().Method)
	})

	t.Run("list", func(t *testing.T) {
		list, err := client.Customers().List(ctx, &stripe.CustomerListParams{Email: stripe.Ptr("jenny@example.com")})
		require.NoError(t, err)
		assert.Equal(t, 1, list.Len())
		assert.Equal(t, "jenny@example.com", server.LastRequest().Query.Get("email"))
	})
}
