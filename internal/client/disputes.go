package client

import (
	"context"

	"github.com/fivetwenty-io/stripe-client/internal/http"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// DisputesClient implements stripe.DisputesClient.
type DisputesClient struct {
	resource resourceClient[stripe.Dispute]
}

// NewDisputesClient creates a new disputes client.
func NewDisputesClient(httpClient http.Sender) *DisputesClient {
	return &DisputesClient{
		resource: newResourceClient[stripe.Dispute](httpClient, "/disputes", "dispute"),
	}
}

// Get implements stripe.DisputesClient.Get.
func (c *DisputesClient) Get(ctx context.Context, id string, params *stripe.GetParams) (*stripe.Dispute, error) {
	return c.resource.get(ctx, id, params)
}

// Update submits evidence or changes metadata.
func (c *DisputesClient) Update(ctx context.Context, id string, params *stripe.DisputeParams) (*stripe.Dispute, error) {
	return c.resource.update(ctx, id, params)
}

// Close concedes the dispute. This cannot be undone.
func (c *DisputesClient) Close(ctx context.Context, id string) (*stripe.Dispute, error) {
	return c.resource.action(ctx, id, "close", nil)
}

// List implements stripe.DisputesClient.List.
func (c *DisputesClient) List(ctx context.Context, params *stripe.DisputeListParams) (*stripe.List[stripe.Dispute], error) {
	return c.resource.list(ctx, params)
}
