package client

import (
	"context"
	"fmt"
	nethttp "net/http"
	"strings"

	"github.com/fivetwenty-io/stripe-client/internal/http"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// RawClient implements stripe.RawClient.
type RawClient struct {
	httpClient http.Sender
}

// NewRawClient creates a new raw client.
func NewRawClient(httpClient http.Sender) *RawClient {
	return &RawClient{
		httpClient: httpClient,
	}
}

// Do implements stripe.RawClient.Do.
func (c *RawClient) Do(ctx context.Context, method, path string, params stripe.Params, out any) error {
	method = strings.ToUpper(method)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req := &http.Request{
		Method: method,
		Path:   path,
	}

	switch method {
	case nethttp.MethodGet, nethttp.MethodDelete:
		req.Query = params
	default:
		req.Body = params
	}

	err := c.httpClient.Send(ctx, req, out)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	return nil
}
