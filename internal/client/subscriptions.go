package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/stripe-client/internal/http"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// SubscriptionsClient implements stripe.SubscriptionsClient.
type SubscriptionsClient struct {
	httpClient http.Sender
	resource   resourceClient[stripe.Subscription]
}

// NewSubscriptionsClient creates a new subscriptions client.
func NewSubscriptionsClient(httpClient http.Sender) *SubscriptionsClient {
	return &SubscriptionsClient{
		httpClient: httpClient,
		resource:   newResourceClient[stripe.Subscription](httpClient, "/subscriptions", "subscription"),
	}
}

// Create implements stripe.SubscriptionsClient.Create.
func (c *SubscriptionsClient) Create(ctx context.Context, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return c.resource.create(ctx, params)
}

// Get implements stripe.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, id string, params *stripe.GetParams) (*stripe.Subscription, error) {
	return c.resource.get(ctx, id, params)
}

// Update implements stripe.SubscriptionsClient.Update.
func (c *SubscriptionsClient) Update(ctx context.Context, id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return c.resource.update(ctx, id, params)
}

// Cancel cancels the subscription immediately. The API models this as a
// DELETE that returns the canceled subscription, with options in the query.
func (c *SubscriptionsClient) Cancel(ctx context.Context, id string, params *stripe.SubscriptionCancelParams) (*stripe.Subscription, error) {
	path, err := c.resource.objectPath(id)
	if err != nil {
		return nil, fmt.Errorf("canceling subscription: %w", err)
	}

	var subscription stripe.Subscription

	err = c.httpClient.Send(ctx, &http.Request{
		Method: nethttp.MethodDelete,
		Path:   path,
		Query:  params.Params(),
	}, &subscription)
	if err != nil {
		return nil, fmt.Errorf("canceling subscription %s: %w", id, err)
	}

	return &subscription, nil
}

// List implements stripe.SubscriptionsClient.List.
func (c *SubscriptionsClient) List(ctx context.Context, params *stripe.SubscriptionListParams) (*stripe.List[stripe.Subscription], error) {
	return c.resource.list(ctx, params)
}
