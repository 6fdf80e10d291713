package client

import (
	"context"

	"github.com/fivetwenty-io/stripe-client/internal/http"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// TerminalReadersClient implements stripe.TerminalReadersClient.
type TerminalReadersClient struct {
	resource resourceClient[stripe.TerminalReader]
}

// NewTerminalReadersClient creates a new terminal readers client.
func NewTerminalReadersClient(httpClient http.Sender) *TerminalReadersClient {
	return &TerminalReadersClient{
		resource: newResourceClient[stripe.TerminalReader](httpClient, "/terminal/readers", "terminal reader"),
	}
}

// Create registers a reader with a registration code.
func (c *TerminalReadersClient) Create(ctx context.Context, params *stripe.TerminalReaderParams) (*stripe.TerminalReader, error) {
	return c.resource.create(ctx, params)
}

// Get implements stripe.TerminalReadersClient.Get.
func (c *TerminalReadersClient) Get(ctx context.Context, id string, params *stripe.GetParams) (*stripe.TerminalReader, error) {
	return c.resource.get(ctx, id, params)
}

// Update implements stripe.TerminalReadersClient.Update.
func (c *TerminalReadersClient) Update(ctx context.Context, id string, params *stripe.TerminalReaderParams) (*stripe.TerminalReader, error) {
	return c.resource.update(ctx, id, params)
}

// Delete implements stripe.TerminalReadersClient.Delete.
func (c *TerminalReadersClient) Delete(ctx context.Context, id string) (*stripe.Deleted, error) {
	return c.resource.delete(ctx, id)
}

// List implements stripe.TerminalReadersClient.List.
func (c *TerminalReadersClient) List(ctx context.Context, params *stripe.TerminalReaderListParams) (*stripe.List[stripe.TerminalReader], error) {
	return c.resource.list(ctx, params)
}
