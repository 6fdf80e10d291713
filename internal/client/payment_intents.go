package client

import (
	"context"

	"github.com/fivetwenty-io/stripe-client/internal/http"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// PaymentIntentsClient implements stripe.PaymentIntentsClient.
type PaymentIntentsClient struct {
	resource resourceClient[stripe.PaymentIntent]
}

// NewPaymentIntentsClient creates a new payment intents client.
func NewPaymentIntentsClient(httpClient http.Sender) *PaymentIntentsClient {
	return &PaymentIntentsClient{
		resource: newResourceClient[stripe.PaymentIntent](httpClient, "/payment_intents", "payment intent"),
	}
}

// Create implements stripe.PaymentIntentsClient.Create.
func (c *PaymentIntentsClient) Create(ctx context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return c.resource.create(ctx, params)
}

// Get implements stripe.PaymentIntentsClient.Get.
func (c *PaymentIntentsClient) Get(ctx context.Context, id string, params *stripe.GetParams) (*stripe.PaymentIntent, error) {
	return c.resource.get(ctx, id, params)
}

// Update implements stripe.PaymentIntentsClient.Update.
func (c *PaymentIntentsClient) Update(ctx context.Context, id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return c.resource.update(ctx, id, params)
}

// Confirm implements stripe.PaymentIntentsClient.Confirm.
func (c *PaymentIntentsClient) Confirm(ctx context.Context, id string, params *stripe.PaymentIntentConfirmParams) (*stripe.PaymentIntent, error) {
	return c.resource.action(ctx, id, "confirm", params)
}

// Cancel implements stripe.PaymentIntentsClient.Cancel.
func (c *PaymentIntentsClient) Cancel(ctx context.Context, id string, params *stripe.PaymentIntentCancelParams) (*stripe.PaymentIntent, error) {
	return c.resource.action(ctx, id, "cancel", params)
}

// List implements stripe.PaymentIntentsClient.List.
func (c *PaymentIntentsClient) List(ctx context.Context, params *stripe.PaymentIntentListParams) (*stripe.List[stripe.PaymentIntent], error) {
	return c.resource.list(ctx, params)
}
