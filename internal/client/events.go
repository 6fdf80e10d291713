package client

import (
	"context"

	"github.com/fivetwenty-io/stripe-client/internal/http"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// EventsClient implements stripe.EventsClient.
type EventsClient struct {
	resource resourceClient[stripe.Event]
}

// NewEventsClient creates a new events client.
func NewEventsClient(httpClient http.Sender) *EventsClient {
	return &EventsClient{
		resource: newResourceClient[stripe.Event](httpClient, "/events", "event"),
	}
}

// Get implements stripe.EventsClient.Get.
func (c *EventsClient) Get(ctx context.Context, id string) (*stripe.Event, error) {
	return c.resource.get(ctx, id, nil)
}

// List implements stripe.EventsClient.List.
func (c *EventsClient) List(ctx context.Context, params *stripe.EventListParams) (*stripe.List[stripe.Event], error) {
	return c.resource.list(ctx, params)
}
