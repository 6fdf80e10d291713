package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/internal/http"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// BalanceClient implements stripe.BalanceClient.
type BalanceClient struct {
	httpClient http.Sender
}

// NewBalanceClient creates a new balance client.
func NewBalanceClient(httpClient http.Sender) *BalanceClient {
	return &BalanceClient{
		httpClient: httpClient,
	}
}

// Get implements stripe.BalanceClient.Get.
func (c *BalanceClient) Get(ctx context.Context) (*stripe.Balance, error) {
	var balance stripe.Balance

	err := c.httpClient.Send(ctx, &http.Request{
		Method: nethttp.MethodGet,
		Path:   constants.APIPathPrefix + "/balance",
	}, &balance)
	if err != nil {
		return nil, fmt.Errorf("getting balance: %w", err)
	}

	return &balance, nil
}
