package client

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/stripe-client/internal/stripetest"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestPaymentIntentsClient(t *testing.T) {
	t.Parallel()

	client, server := newTestClient(t, func(r chi.Router) {
		r.Post("/v1/payment_intents", stripetest.Object("payment_intent", map[string]any{
			"id": "pi_1", "amount": 1099, "currency": "eur", "status": "requires_payment_method",
		}))
		r.Get("/v1/payment_intents", stripetest.List("/v1/payment_intents", false))
		r.Route("/v1/payment_intents/{id}", func(r chi.Router) {
			r.Get("/", stripetest.Object("payment_intent", map[string]any{"latest_charge": "ch_1"}))
			r.Post("/", stripetest.Object("payment_intent", map[string]any{"description": "updated"}))
			r.Post("/confirm", stripetest.Object("payment_intent", map[string]any{"status": "succeeded"}))
			r.Post("/cancel", stripetest.Object("payment_intent", map[string]any{
				"status": "canceled", "cancellation_reason": "abandoned", "canceled_at": 1700000000,
			}))
		})
	})

	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		intent, err := client.PaymentIntents().Create(ctx, &stripe.PaymentIntentParams{
			Amount:             stripe.Ptr(int64(1099)),
			Currency:           stripe.Ptr("eur"),
			PaymentMethodTypes: []string{"card", "sepa_debit"},
		})
		require.NoError(t, err)
		assert.Equal(t, "pi_1", intent.ID)

		form := server.LastRequest().Form
		assert.Equal(t, "card", form.Get("payment_method_types[0]"))
		assert.Equal(t, "sepa_debit", form.Get("payment_method_types[1]"))
	})

	t.Run("get", func(t *testing.T) {
		intent, err := client.PaymentIntents().Get(ctx, "pi_1", nil)
		require.NoError(t, err)
		assert.Equal(t, "ch_1", intent.LatestCharge.ID())
		assert.False(t, intent.LatestCharge.IsExpanded())
	})

	t.Run("update", func(t *testing.T) {
		intent, err := client.PaymentIntents().Update(ctx, "pi_1", &stripe.PaymentIntentParams{Description: stripe.Ptr("updated")})
		require.NoError(t, err)
		assert.Equal(t, "updated", intent.Description)
	})

	t.Run("confirm", func(t *testing.T) {
		intent, err := client.PaymentIntents().Confirm(ctx, "pi_1", &stripe.PaymentIntentConfirmParams{
			PaymentMethod: stripe.Ptr("pm_card_visa"),
		})
		require.NoError(t, err)
		assert.Equal(t, "succeeded", intent.Status)
		assert.Equal(t, "/v1/payment_intents/pi_1/confirm", server.LastRequest().Path)
		assert.Equal(t, "pm_card_visa", server.LastRequest().Form.Get("payment_method"))
	})

	t.Run("cancel", func(t *testing.T) {
		intent, err := client.PaymentIntents().Cancel(ctx, "pi_1", &stripe.PaymentIntentCancelParams{
			CancellationReason: stripe.Ptr("abandoned"),
		})
		require.NoError(t, err)
		assert.Equal(t, "canceled", intent.Status)
		assert.Equal(t, int64(1700000000), intent.CanceledAt.Unix())
	})

	t.Run("list", func(t *testing.T) {
		list, err := client.PaymentIntents().List(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, list.Len())
		assert.Empty(t, server.LastRequest().Query)
	})
}
