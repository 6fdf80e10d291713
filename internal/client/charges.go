package client

import (
	"context"

	"github.com/fivetwenty-io/stripe-client/internal/http"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// ChargesClient implements stripe.ChargesClient.
type ChargesClient struct {
	resource resourceClient[stripe.Charge]
}

// NewChargesClient creates a new charges client.
func NewChargesClient(httpClient http.Sender) *ChargesClient {
	return &ChargesClient{
		resource: newResourceClient[stripe.Charge](httpClient, "/charges", "charge"),
	}
}

// Create implements stripe.ChargesClient.Create.
func (c *ChargesClient) Create(ctx context.Context, params *stripe.ChargeParams) (*stripe.Charge, error) {
	return c.resource.create(ctx, params)
}

// Get implements stripe.ChargesClient.Get.
func (c *ChargesClient) Get(ctx context.Context, id string, params *stripe.GetParams) (*stripe.Charge, error) {
	return c.resource.get(ctx, id, params)
}

// Update implements stripe.ChargesClient.Update.
func (c *ChargesClient) Update(ctx context.Context, id string, params *stripe.ChargeParams) (*stripe.Charge, error) {
	return c.resource.update(ctx, id, params)
}

// Capture captures the funds of an uncaptured charge.
func (c *ChargesClient) Capture(ctx context.Context, id string, params *stripe.ChargeCaptureParams) (*stripe.Charge, error) {
	return c.resource.action(ctx, id, "capture", params)
}

// List implements stripe.ChargesClient.List.
func (c *ChargesClient) List(ctx context.Context, params *stripe.ChargeListParams) (*stripe.List[stripe.Charge], error) {
	return c.resource.list(ctx, params)
}
