package client

import (
	"context"

	"github.com/fivetwenty-io/stripe-client/internal/http"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// CustomersClient implements stripe.CustomersClient.
type CustomersClient struct {
	resource resourceClient[stripe.Customer]
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(httpClient http.Sender) *CustomersClient {
	return &CustomersClient{
		resource: newResourceClient[stripe.Customer](httpClient, "/customers", "customer"),
	}
}

// Create implements stripe.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, params *stripe.CustomerParams) (*stripe.Customer, error) {
	return c.resource.create(ctx, params)
}

// Get implements stripe.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, id string, params *stripe.GetParams) (*stripe.Customer, error) {
	return c.resource.get(ctx, id, params)
}

// Update implements stripe.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, id string, params *stripe.CustomerParams) (*stripe.Customer, error) {
	return c.resource.update(ctx, id, params)
}

// Delete implements stripe.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, id string) (*stripe.Deleted, error) {
	return c.resource.delete(ctx, id)
}

// List implements stripe.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, params *stripe.CustomerListParams) (*stripe.List[stripe.Customer], error) {
	return c.resource.list(ctx, params)
}
