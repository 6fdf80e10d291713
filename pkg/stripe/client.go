package stripe

import (
	"context"
	"net/http"
)

// ChargesClient defines operations for charges.
type ChargesClient interface {
	Create(ctx context.Context, params *ChargeParams) (*Charge, error)
	Get(ctx context.Context, id string, params *GetParams) (*Charge, error)
	Update(ctx context.Context, id string, params *ChargeParams) (*Charge, error)
	Capture(ctx context.Context, id string, params *ChargeCaptureParams) (*Charge, error)
	List(ctx context.Context, params *ChargeListParams) (*List[Charge], error)
}

// CustomersClient defines operations for customers.
type CustomersClient interface {
	Create(ctx context.Context, params *CustomerParams) (*Customer, error)
	Get(ctx context.Context, id string, params *GetParams) (*Customer, error)
	Update(ctx context.Context, id string, params *CustomerParams) (*Customer, error)
	Delete(ctx context.Context, id string) (*Deleted, error)
	List(ctx context.Context, params *CustomerListParams) (*List[Customer], error)
}

// PaymentIntentsClient defines operations for payment intents.
type PaymentIntentsClient interface {
	Create(ctx context.Context, params *PaymentIntentParams) (*PaymentIntent, error)
	Get(ctx context.Context, id string, params *GetParams) (*PaymentIntent, error)
	Update(ctx context.Context, id string, params *PaymentIntentParams) (*PaymentIntent, error)
	Confirm(ctx context.Context, id string, params *PaymentIntentConfirmParams) (*PaymentIntent, error)
	Cancel(ctx context.Context, id string, params *PaymentIntentCancelParams) (*PaymentIntent, error)
	List(ctx context.Context, params *PaymentIntentListParams) (*List[PaymentIntent], error)
}

// RefundsClient defines operations for refunds.
type RefundsClient interface {
	Create(ctx context.Context, params *RefundParams) (*Refund, error)
	Get(ctx context.Context, id string, params *GetParams) (*Refund, error)
	Update(ctx context.Context, id string, params *RefundParams) (*Refund, error)
	List(ctx context.Context, params *RefundListParams) (*List[Refund], error)
}

// SubscriptionsClient defines operations for subscriptions.
type SubscriptionsClient interface {
	Create(ctx context.Context, params *SubscriptionParams) (*Subscription, error)
	Get(ctx context.Context, id string, params *GetParams) (*Subscription, error)
	Update(ctx context.Context, id string, params *SubscriptionParams) (*Subscription, error)
	Cancel(ctx context.Context, id string, params *SubscriptionCancelParams) (*Subscription, error)
	List(ctx context.Context, params *SubscriptionListParams) (*List[Subscription], error)
}

// TransfersClient defines operations for transfers.
type TransfersClient interface {
	Create(ctx context.Context, params *TransferParams) (*Transfer, error)
	Get(ctx context.Context, id string, params *GetParams) (*Transfer, error)
	Update(ctx context.Context, id string, params *TransferParams) (*Transfer, error)
	List(ctx context.Context, params *TransferListParams) (*List[Transfer], error)
}

// DisputesClient defines operations for disputes.
type DisputesClient interface {
	Get(ctx context.Context, id string, params *GetParams) (*Dispute, error)
	Update(ctx context.Context, id string, params *DisputeParams) (*Dispute, error)
	Close(ctx context.Context, id string) (*Dispute, error)
	List(ctx context.Context, params *DisputeListParams) (*List[Dispute], error)
}

// TerminalReadersClient defines operations for terminal readers.
type TerminalReadersClient interface {
	Create(ctx context.Context, params *TerminalReaderParams) (*TerminalReader, error)
	Get(ctx context.Context, id string, params *GetParams) (*TerminalReader, error)
	Update(ctx context.Context, id string, params *TerminalReaderParams) (*TerminalReader, error)
	Delete(ctx context.Context, id string) (*Deleted, error)
	List(ctx context.Context, params *TerminalReaderListParams) (*List[TerminalReader], error)
}

// EventsClient defines operations for events.
type EventsClient interface {
	Get(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, params *EventListParams) (*List[Event], error)
}

// BalanceClient retrieves the account balance.
type BalanceClient interface {
	Get(ctx context.Context) (*Balance, error)
}

// RawClient sends requests to endpoints without a typed client.
// Params go to the query string for GET and DELETE and to the body otherwise.
type RawClient interface {
	Do(ctx context.Context, method, path string, params Params, out any) error
}

// PaymentClients provides access to payment resource clients.
type PaymentClients interface {
	Charges() ChargesClient
	PaymentIntents() PaymentIntentsClient
	Refunds() RefundsClient
	Disputes() DisputesClient
}

// BillingClients provides access to customer and billing resource clients.
type BillingClients interface {
	Customers() CustomersClient
	Subscriptions() SubscriptionsClient
}

// ConnectClients provides access to money movement and account clients.
type ConnectClients interface {
	Transfers() TransfersClient
	Balance() BalanceClient
}

type Client interface {
	PaymentClients
	BillingClients
	ConnectClients
	TerminalReaders() TerminalReadersClient
	Events() EventsClient
	Raw() RawClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
