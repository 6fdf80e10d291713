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
func TestChargesClient(t *testing.T) {
	t.Parallel()

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		client, server := newTestClient(t, func(r chi.Router) {
			r.Post("/v1/charges", stripetest.Object("charge", map[string]any{
				"id":       "ch_1",
				"amount":   2000,
				"currency": "usd",
				"customer": "cus_1",
				"status":   "succeeded",
				"created":  1700000000,
			}))
		})

		charge, err := client.Charges().Create(context.Background(), &stripe.ChargeParams{
			Amount:   stripe.Ptr(int64(2000)),
			Currency: stripe.Ptr("usd"),
			Customer: stripe.Ptr("cus_1"),
			Metadata: map[string]string{"order_id": "6735"},
		})
		require.NoError(t, err)

		assert.Equal(t, "ch_1", charge.ID)
		assert.Equal(t, int64(2000), charge.Amount)
		assert.Equal(t, "cus_1", charge.Customer.ID())
		assert.Equal(t, int64(1700000000), charge.Created.Unix())

		request := server.LastRequest()
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "2000", request.Form.Get("amount"))
		assert.Equal(t, "usd", request.Form.Get("currency"))
		assert.Equal(t, "6735", request.Form.Get("metadata[order_id]"))
		assert.Equal(t, "Bearer "+testSecretKey, request.Header.Get("Authorization"))
	})

	t.Run("get with expand", func(t *testing.T) {
		t.Parallel()

		client, server := newTestClient(t, func(r chi.Router) {
			r.Get("/v1/charges/{id}", stripetest.Object("charge", map[string]any{
				"customer": map[string]any{"id": "cus_1", "object": "customer", "email": "jenny@example.com"},
			}))
		})

		charge, err := client.Charges().Get(context.Background(), "ch_1", &stripe.GetParams{Expand: []string{"customer"}})
		require.NoError(t, err)

		assert.Equal(t, "ch_1", charge.ID)

		customer, err := charge.Customer.Object()
		require.NoError(t, err)
		assert.Equal(t, "jenny@example.com", customer.Email)
		assert.Equal(t, "customer", server.LastRequest().Query.Get("expand[0]"))
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		client, server := newTestClient(t, func(r chi.Router) {
			r.Post("/v1/charges/{id}", stripetest.Object("charge", map[string]any{"description": "updated"}))
		})

		charge, err := client.Charges().Update(context.Background(), "ch_1", &stripe.ChargeParams{Description: stripe.Ptr("updated")})
		require.NoError(t, err)

		assert.Equal(t, "updated", charge.Description)
		assert.Equal(t, "/v1/charges/ch_1", server.LastRequest().Path)
		assert.Equal(t, "updated", server.LastRequest().Form.Get("description"))
	})

	t.Run("capture", func(t *testing.T) {
		t.Parallel()

		client, server := newTestClient(t, func(r chi.Router) {
			r.Post("/v1/charges/{id}/capture", stripetest.Object("charge", map[string]any{"captured": true, "amount_captured": 1500}))
		})

		charge, err := client.Charges().Capture(context.Background(), "ch_1", &stripe.ChargeCaptureParams{Amount: stripe.Ptr(int64(1500))})
		require.NoError(t, err)

		assert.True(t, charge.Captured)
		assert.Equal(t, int64(1500), charge.AmountCaptured)
		assert.Equal(t, "1500", server.LastRequest().Form.Get("amount"))
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		client, server := newTestClient(t, func(r chi.Router) {
			r.Get("/v1/charges", stripetest.List("/v1/charges", true,
				map[string]any{"id": "ch_3", "object": "charge"},
				map[string]any{"id": "ch_2", "object": "charge"},
			))
		})

		list, err := client.Charges().List(context.Background(), &stripe.ChargeListParams{
			ListParams: stripe.ListParams{Limit: stripe.Ptr(int64(2))},
			Customer:   stripe.Ptr("cus_1"),
		})
		require.NoError(t, err)

		assert.True(t, list.HasMore)
		require.Len(t, list.Data, 2)
		assert.Equal(t, "ch_3", list.Data[0].ID)
		assert.Equal(t, "2", server.LastRequest().Query.Get("limit"))
		assert.Equal(t, "cus_1", server.LastRequest().Query.Get("customer"))
	})

	t.Run("card declined", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, func(r chi.Router) {
			r.Post("/v1/charges", stripetest.Raw(http.StatusPaymentRequired, `{
				"error": {
					"type": "card_error",
					"code": "card_declined",
					"decline_code": "generic_decline",
					"message": "Your card was declined.",
					"charge": "ch_declined"
				}
			}`))
		})

		charge, err := client.Charges().Create(context.Background(), &stripe.ChargeParams{Amount: stripe.Ptr(int64(100))})
		require.Error(t, err)
		assert.Nil(t, charge)
		assert.True(t, stripe.IsCardError(err))

		apiErr, ok := stripe.AsError(err)
		require.True(t, ok)
		assert.Equal(t, "generic_decline", apiErr.DeclineCode)
		assert.Equal(t, "ch_declined", apiErr.Charge)
		assert.Equal(t, "req_test", apiErr.RequestID)
	})
}
