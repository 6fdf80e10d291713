package client

import (
	"context"

	"github.com/fivetwenty-io/stripe-client/internal/http"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// TransfersClient implements stripe.TransfersClient.
type TransfersClient struct {
	resource resourceClient[stripe.Transfer]
}

// NewTransfersClient creates a new transfers client.
func NewTransfersClient(httpClient http.Sender) *TransfersClient {
	return &TransfersClient{
		resource: newResourceClient[stripe.Transfer](httpClient, "/transfers", "transfer"),
	}
}

// Create implements stripe.TransfersClient.Create.
func (c *TransfersClient) Create(ctx context.Context, params *stripe.TransferParams) (*stripe.Transfer, error) {
	return c.resource.create(ctx, params)
}

// Get implements stripe.TransfersClient.Get.
func (c *TransfersClient) Get(ctx context.Context, id string, params *stripe.GetParams) (*stripe.Transfer, error) {
	return c.resource.get(ctx, id, params)
}

// Update implements stripe.TransfersClient.Update.
func (c *TransfersClient) Update(ctx context.Context, id string, params *stripe.TransferParams) (*stripe.Transfer, error) {
	return c.resource.update(ctx, id, params)
}

// List implements stripe.TransfersClient.List.
func (c *TransfersClient) List(ctx context.Context, params *stripe.TransferListParams) (*stripe.List[stripe.Transfer], error) {
	return c.resource.list(ctx, params)
}
