package client

import (
	"fmt"

	"github.com/fivetwenty-io/stripe-client/internal/auth"
	"github.com/fivetwenty-io/stripe-client/internal/constants"
	"github.com/fivetwenty-io/stripe-client/internal/http"
	"github.com/fivetwenty-io/stripe-client/pkg/stripe"
)

// Client implements the stripe.Client interface.
type Client struct {
	httpClient  *http.Client
	credentials *auth.Credentials
	baseURL     string

	// Resource clients
	charges         stripe.ChargesClient
	customers       stripe.CustomersClient
	paymentIntents  stripe.PaymentIntentsClient
	refunds         stripe.RefundsClient
	subscriptions   stripe.SubscriptionsClient
	transfers       stripe.TransfersClient
	disputes        stripe.DisputesClient
	terminalReaders stripe.TerminalReadersClient
	events          stripe.EventsClient
	balance         stripe.BalanceClient
	raw             stripe.RawClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *stripe.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.APIVersion != "" {
		httpOpts = append(httpOpts, http.WithAPIVersion(config.APIVersion))
	}

	if config.StripeAccount != "" {
		httpOpts = append(httpOpts, http.WithStripeAccount(config.StripeAccount))
	}

	if config.IdempotencyKeys {
		httpOpts = append(httpOpts, http.WithIdempotencyKeys(true))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.MetricsRegisterer != nil {
		httpOpts = append(httpOpts, http.WithMetrics(config.MetricsRegisterer))
	}

	if config.HTTPDoer != nil {
		httpOpts = append(httpOpts, http.WithDoer(config.HTTPDoer))
	}

	return httpOpts
}

// New creates a new API client from a validated config.
func New(config *stripe.Config) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	credentials, err := auth.NewCredentials(config.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("creating credentials: %w", err)
	}

	baseURL := config.APIBase
	if baseURL == "" {
		baseURL = constants.DefaultAPIBase
	}

	httpClient := http.NewClient(baseURL, credentials, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:  httpClient,
		credentials: credentials,
		baseURL:     baseURL,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client, nil
}

// Livemode reports whether the client uses a live key.
func (c *Client) Livemode() bool {
	return c.credentials.Livemode()
}

// BaseURL returns the API endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Charges returns the charges client.
func (c *Client) Charges() stripe.ChargesClient {
	return c.charges
}

// Customers returns the customers client.
func (c *Client) Customers() stripe.CustomersClient {
	return c.customers
}

// PaymentIntents returns the payment intents client.
func (c *Client) PaymentIntents() stripe.PaymentIntentsClient {
	return c.paymentIntents
}

// Refunds returns the refunds client.
func (c *Client) Refunds() stripe.RefundsClient {
	return c.refunds
}

// Subscriptions returns the subscriptions client.
func (c *Client) Subscriptions() stripe.SubscriptionsClient {
	return c.subscriptions
}

// Transfers returns the transfers client.
func (c *Client) Transfers() stripe.TransfersClient {
	return c.transfers
}

// Disputes returns the disputes client.
func (c *Client) Disputes() stripe.DisputesClient {
	return c.disputes
}

// TerminalReaders returns the terminal readers client.
func (c *Client) TerminalReaders() stripe.TerminalReadersClient {
	return c.terminalReaders
}

// Events returns the events client.
func (c *Client) Events() stripe.EventsClient {
	return c.events
}

// Balance returns the balance client.
func (c *Client) Balance() stripe.BalanceClient {
	return c.balance
}

// Raw returns a client for endpoints without a typed client.
func (c *Client) Raw() stripe.RawClient {
	return c.raw
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.charges = NewChargesClient(c.httpClient)
	c.customers = NewCustomersClient(c.httpClient)
	c.paymentIntents = NewPaymentIntentsClient(c.httpClient)
	c.refunds = NewRefundsClient(c.httpClient)
	c.subscriptions = NewSubscriptionsClient(c.httpClient)
	c.transfers = NewTransfersClient(c.httpClient)
	c.disputes = NewDisputesClient(c.httpClient)
	c.terminalReaders = NewTerminalReadersClient(c.httpClient)
	c.events = NewEventsClient(c.httpClient)
	c.balance = NewBalanceClient(c.httpClient)
	c.raw = NewRawClient(c.httpClient)
}
