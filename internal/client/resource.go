package client

import (
	"context"
	"fmt"
	nethttp "net/http"
	"net/url"

	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/internal/http"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// resourceClient provides the create/retrieve/update/delete/list operations
// shared by every resource family.
type resourceClient[T any] struct {
	httpClient   http.Sender
	resourcePath string
	resourceName string
}

func newResourceClient[T any](httpClient http.Sender, resourcePath, resourceName string) resourceClient[T] {
	return resourceClient[T]{
		httpClient:   httpClient,
		resourcePath: constants.APIPathPrefix + resourcePath,
		resourceName: resourceName,
	}
}

// objectPath escapes id as a single path segment.
func (c resourceClient[T]) objectPath(id string, action ...string) (string, error) {
	if id == "" {
		return "", stripe.ErrIDRequired
	}

	path := c.resourcePath + "/" + url.PathEscape(id)
	for _, segment := range action {
		path += "/" + segment
	}

	return path, nil
}

func (c resourceClient[T]) create(ctx context.Context, params stripe.ParamsBuilder) (*T, error) {
	var resource T

	err := c.httpClient.Send(ctx, &http.Request{
		Method: nethttp.MethodPost,
		Path:   c.resourcePath,
		Body:   params.Params(),
	}, &resource)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.resourceName, err)
	}

	return &resource, nil
}

func (c resourceClient[T]) get(ctx context.Context, id string, params stripe.ParamsBuilder) (*T, error) {
	path, err := c.objectPath(id)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.resourceName, err)
	}

	var query stripe.Params
	if params != nil {
		query = params.Params()
	}

	var resource T

	err = c.httpClient.Send(ctx, &http.Request{
		Method: nethttp.MethodGet,
		Path:   path,
		Query:  query,
	}, &resource)
	if err != nil {
		return nil, fmt.Errorf("getting %s %s: %w", c.resourceName, id, err)
	}

	return &resource, nil
}

func (c resourceClient[T]) update(ctx context.Context, id string, params stripe.ParamsBuilder) (*T, error) {
	path, err := c.objectPath(id)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", c.resourceName, err)
	}

	var resource T

	err = c.httpClient.Send(ctx, &http.Request{
		Method: nethttp.MethodPost,
		Path:   path,
		Body:   params.Params(),
	}, &resource)
	if err != nil {
		return nil, fmt.Errorf("updating %s %s: %w", c.resourceName, id, err)
	}

	return &resource, nil
}

// action posts to a sub-resource such as /v1/charges/{id}/capture.
func (c resourceClient[T]) action(ctx context.Context, id, action string, params stripe.ParamsBuilder) (*T, error) {
	path, err := c.objectPath(id, action)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", action, c.resourceName, err)
	}

	var body stripe.Params
	if params != nil {
		body = params.Params()
	}

	var resource T

	err = c.httpClient.Send(ctx, &http.Request{
		Method: nethttp.MethodPost,
		Path:   path,
		Body:   body,
	}, &resource)
	if err != nil {
		return nil, fmt.Errorf("%s %s %s: %w", action, c.resourceName, id, err)
	}

	return &resource, nil
}

func (c resourceClient[T]) delete(ctx context.Context, id string) (*stripe.Deleted, error) {
	path, err := c.objectPath(id)
	if err != nil {
		return nil, fmt.Errorf("deleting %s: %w", c.resourceName, err)
	}

	var deleted stripe.Deleted

	err = c.httpClient.Send(ctx, &http.Request{
		Method: nethttp.MethodDelete,
		Path:   path,
	}, &deleted)
	if err != nil {
		return nil, fmt.Errorf("deleting %s %s: %w", c.resourceName, id, err)
	}

	return &deleted, nil
}

func (c resourceClient[T]) list(ctx context.Context, params stripe.ParamsBuilder) (*stripe.List[T], error) {
	var list stripe.List[T]

	err := c.httpClient.Send(ctx, &http.Request{
		Method: nethttp.MethodGet,
		Path:   c.resourcePath,
		Query:  params.Params(),
	}, &list)
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", c.resourceName, err)
	}

	return &list, nil
}
