package client

import (
	"context"

	"github.com/fivetwenty-io/stripe-client/internal/http"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// RefundsClient implements stripe.RefundsClient.
type RefundsClient struct {
	resource resourceClient[stripe.Refund]
}

// NewRefundsClient creates a new refunds client.
func NewRefundsClient(httpClient http.Sender) *RefundsClient {
	return &RefundsClient{
		resource: newResourceClient[stripe.Refund](httpClient, "/refunds", "refund"),
	}
}

// Create implements stripe.RefundsClient.Create.
func (c *RefundsClient) Create(ctx context.Context, params *stripe.RefundParams) (*stripe.Refund, error) {
	return c.resource.create(ctx, params)
}

// Get implements stripe.RefundsClient.Get.
func (c *RefundsClient) Get(ctx context.Context, id string, params *stripe.GetParams) (*stripe.Refund, error) {
	return c.resource.get(ctx, id, params)
}

// Update implements stripe.RefundsClient.Update. Only metadata can change.
func (c *RefundsClient) Update(ctx context.Context, id string, params *stripe.RefundParams) (*stripe.Refund, error) {
	return c.resource.update(ctx, id, params)
}

// List implements stripe.RefundsClient.List.
func (c *RefundsClient) List(ctx context.Context, params *stripe.RefundListParams) (*stripe.List[stripe.Refund], error) {
	return c.resource.list(ctx, params)
}
