package stripe

import "encoding/json"

// Address represents a postal address.
type Address struct {
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	State      string `json:"state,omitempty"`
}

// Account represents a connected account.
type Account struct {
	ID             string            `json:"id"`
	Object         string            `json:"object"`
	BusinessType   string            `json:"business_type,omitempty"`
	Country        string            `json:"country,omitempty"`
	Email          string            `json:"email,omitempty"`
	Type           string            `json:"type,omitempty"`
	ChargesEnabled bool              `json:"charges_enabled"`
	PayoutsEnabled bool              `json:"payouts_enabled"`
	Created        Timestamp         `json:"created"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// Card represents a card payment source.
type Card struct {
	ID          string               `json:"id"`
	Object      string               `json:"object"`
	Brand       string               `json:"brand,omitempty"`
	Country     string               `json:"country,omitempty"`
	ExpMonth    int                  `json:"exp_month"`
	ExpYear     int                  `json:"exp_year"`
	Fingerprint string               `json:"fingerprint,omitempty"`
	Funding     string               `json:"funding,omitempty"`
	Last4       string               `json:"last4"`
	Customer    Expandable[Customer] `json:"customer"`
	Metadata    map[string]string    `json:"metadata,omitempty"`
}

// BankAccount represents a bank account payment source or payout destination.
type BankAccount struct {
	ID                string               `json:"id"`
	Object            string               `json:"object"`
	AccountHolderName string               `json:"account_holder_name,omitempty"`
	BankName          string               `json:"bank_name,omitempty"`
	Country           string               `json:"country,omitempty"`
	Currency          string               `json:"currency,omitempty"`
	Last4             string               `json:"last4"`
	RoutingNumber     string               `json:"routing_number,omitempty"`
	Status            string               `json:"status,omitempty"`
	Customer          Expandable[Customer] `json:"customer"`
	Metadata          map[string]string    `json:"metadata,omitempty"`
}

// Customer represents a customer.
type Customer struct {
	ID            string            `json:"id"`
	Object        string            `json:"object"`
	Address       *Address          `json:"address,omitempty"`
	Balance       int64             `json:"balance"`
	Created       Timestamp         `json:"created"`
	Currency      string            `json:"currency,omitempty"`
	DefaultSource DynamicExpandable `json:"default_source"`
	Deleted       bool              `json:"deleted,omitempty"`
	Delinquent    bool              `json:"delinquent"`
	Description   string            `json:"description,omitempty"`
	Email         string            `json:"email,omitempty"`
	InvoicePrefix string            `json:"invoice_prefix,omitempty"`
	Livemode      bool              `json:"livemode"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	Name          string            `json:"name,omitempty"`
	Phone         string            `json:"phone,omitempty"`
}

// ChargeOutcome describes the result of the charge attempt.
type ChargeOutcome struct {
	NetworkStatus string `json:"network_status,omitempty"`
	Reason        string `json:"reason,omitempty"`
	RiskLevel     string `json:"risk_level,omitempty"`
	SellerMessage string `json:"seller_message,omitempty"`
	Type          string `json:"type,omitempty"`
}

// Charge represents a charge.
type Charge struct {
	ID                 string                    `json:"id"`
	Object             string                    `json:"object"`
	Amount             int64                     `json:"amount"`
	AmountCaptured     int64                     `json:"amount_captured"`
	AmountRefunded     int64                     `json:"amount_refunded"`
	BalanceTransaction string                    `json:"balance_transaction,omitempty"`
	Captured           bool                      `json:"captured"`
	Created            Timestamp                 `json:"created"`
	Currency           string                    `json:"currency"`
	Customer           Expandable[Customer]      `json:"customer"`
	Description        string                    `json:"description,omitempty"`
	Dispute            Expandable[Dispute]       `json:"dispute"`
	FailureCode        string                    `json:"failure_code,omitempty"`
	FailureMessage     string                    `json:"failure_message,omitempty"`
	Livemode           bool                      `json:"livemode"`
	Metadata           map[string]string         `json:"metadata,omitempty"`
	Outcome            *ChargeOutcome            `json:"outcome,omitempty"`
	Paid               bool                      `json:"paid"`
	PaymentIntent      Expandable[PaymentIntent] `json:"payment_intent"`
	ReceiptEmail       string                    `json:"receipt_email,omitempty"`
	ReceiptURL         string                    `json:"receipt_url,omitempty"`
	Refunded           bool                      `json:"refunded"`
	Refunds            *List[Refund]             `json:"refunds,omitempty"`
	Source             DynamicExpandable         `json:"source"`
	Status             string                    `json:"status"`
}

// PaymentIntent represents a payment intent.
type PaymentIntent struct {
	ID                 string               `json:"id"`
	Object             string               `json:"object"`
	Amount             int64                `json:"amount"`
	AmountReceived     int64                `json:"amount_received"`
	CanceledAt         Timestamp            `json:"canceled_at"`
	CancellationReason string               `json:"cancellation_reason,omitempty"`
	CaptureMethod      string               `json:"capture_method,omitempty"`
	ClientSecret       string               `json:"client_secret,omitempty"`
	ConfirmationMethod string               `json:"confirmation_method,omitempty"`
	Created            Timestamp            `json:"created"`
	Currency           string               `json:"currency"`
	Customer           Expandable[Customer] `json:"customer"`
	Description        string               `json:"description,omitempty"`
	LastPaymentError   *Error               `json:"last_payment_error,omitempty"`
	LatestCharge       Expandable[Charge]   `json:"latest_charge"`
	Livemode           bool                 `json:"livemode"`
	Metadata           map[string]string    `json:"metadata,omitempty"`
	PaymentMethodTypes []string             `json:"payment_method_types,omitempty"`
	Status             string               `json:"status"`
}

// Refund represents a refund of a charge.
type Refund struct {
	ID            string                    `json:"id"`
	Object        string                    `json:"object"`
	Amount        int64                     `json:"amount"`
	Charge        Expandable[Charge]        `json:"charge"`
	Created       Timestamp                 `json:"created"`
	Currency      string                    `json:"currency"`
	Metadata      map[string]string         `json:"metadata,omitempty"`
	PaymentIntent Expandable[PaymentIntent] `json:"payment_intent"`
	Reason        string                    `json:"reason,omitempty"`
	Status        string                    `json:"status"`
}

// Recurring describes the billing interval of a price.
type Recurring struct {
	Interval      string `json:"interval"`
	IntervalCount int64  `json:"interval_count"`
}

// Price represents a price of a product.
type Price struct {
	ID         string     `json:"id"`
	Object     string     `json:"object"`
	Active     bool       `json:"active"`
	Currency   string     `json:"currency"`
	Nickname   string     `json:"nickname,omitempty"`
	Product    string     `json:"product"`
	Recurring  *Recurring `json:"recurring,omitempty"`
	UnitAmount int64      `json:"unit_amount"`
}

// SubscriptionItem represents one price on a subscription.
type SubscriptionItem struct {
	ID       string    `json:"id"`
	Object   string    `json:"object"`
	Created  Timestamp `json:"created"`
	Price    Price     `json:"price"`
	Quantity int64     `json:"quantity"`
}

// Subscription represents a recurring subscription of a customer.
type Subscription struct {
	ID                 string                 `json:"id"`
	Object             string                 `json:"object"`
	CancelAtPeriodEnd  bool                   `json:"cancel_at_period_end"`
	CanceledAt         Timestamp              `json:"canceled_at"`
	Created            Timestamp              `json:"created"`
	Currency           string                 `json:"currency"`
	CurrentPeriodEnd   Timestamp              `json:"current_period_end"`
	CurrentPeriodStart Timestamp              `json:"current_period_start"`
	Customer           Expandable[Customer]   `json:"customer"`
	Items              List[SubscriptionItem] `json:"items"`
	Livemode           bool                   `json:"livemode"`
	Metadata           map[string]string      `json:"metadata,omitempty"`
	Status             string                 `json:"status"`
	TrialEnd           Timestamp              `json:"trial_end"`
}

// Transfer represents a transfer of funds to a connected account.
type Transfer struct {
	ID                string              `json:"id"`
	Object            string              `json:"object"`
	Amount            int64               `json:"amount"`
	AmountReversed    int64               `json:"amount_reversed"`
	Created           Timestamp           `json:"created"`
	Currency          string              `json:"currency"`
	Description       string              `json:"description,omitempty"`
	Destination       Expandable[Account] `json:"destination"`
	Livemode          bool                `json:"livemode"`
	Metadata          map[string]string   `json:"metadata,omitempty"`
	Reversed          bool                `json:"reversed"`
	SourceTransaction Expandable[Charge]  `json:"source_transaction"`
	TransferGroup     string              `json:"transfer_group,omitempty"`
}

// DisputeEvidence holds the evidence submitted for a dispute.
type DisputeEvidence struct {
	CustomerEmailAddress string `json:"customer_email_address,omitempty"`
	CustomerName         string `json:"customer_name,omitempty"`
	ProductDescription   string `json:"product_description,omitempty"`
	UncategorizedText    string `json:"uncategorized_text,omitempty"`
}

// DisputeEvidenceDetails describes the evidence submission state.
type DisputeEvidenceDetails struct {
	DueBy           Timestamp `json:"due_by"`
	HasEvidence     bool      `json:"has_evidence"`
	PastDue         bool      `json:"past_due"`
	SubmissionCount int64     `json:"submission_count"`
}

// Dispute represents a dispute of a charge.
type Dispute struct {
	ID                 string                    `json:"id"`
	Object             string                    `json:"object"`
	Amount             int64                     `json:"amount"`
	Charge             Expandable[Charge]        `json:"charge"`
	Created            Timestamp                 `json:"created"`
	Currency           string                    `json:"currency"`
	Evidence           *DisputeEvidence          `json:"evidence,omitempty"`
	EvidenceDetails    *DisputeEvidenceDetails   `json:"evidence_details,omitempty"`
	IsChargeRefundable bool                      `json:"is_charge_refundable"`
	Livemode           bool                      `json:"livemode"`
	Metadata           map[string]string         `json:"metadata,omitempty"`
	PaymentIntent      Expandable[PaymentIntent] `json:"payment_intent"`
	Reason             string                    `json:"reason"`
	Status             string                    `json:"status"`
}

// TerminalReader represents an in-person payment reader.
type TerminalReader struct {
	ID              string            `json:"id"`
	Object          string            `json:"object"`
	Deleted         bool              `json:"deleted,omitempty"`
	DeviceSwVersion string            `json:"device_sw_version,omitempty"`
	DeviceType      string            `json:"device_type"`
	IPAddress       string            `json:"ip_address,omitempty"`
	Label           string            `json:"label"`
	Livemode        bool              `json:"livemode"`
	Location        string            `json:"location,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	SerialNumber    string            `json:"serial_number"`
	Status          string            `json:"status,omitempty"`
}

// EventData carries the object an event is about.
type EventData struct {
	Object             DynamicExpandable `json:"object"`
	PreviousAttributes json.RawMessage   `json:"previous_attributes,omitempty"`
}

// EventRequest identifies the API request that caused an event.
type EventRequest struct {
	ID             string `json:"id,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// Event represents a change notification.
type Event struct {
	ID              string        `json:"id"`
	Object          string        `json:"object"`
	APIVersion      string        `json:"api_version,omitempty"`
	Created         Timestamp     `json:"created"`
	Data            EventData     `json:"data"`
	Livemode        bool          `json:"livemode"`
	PendingWebhooks int64         `json:"pending_webhooks"`
	Request         *EventRequest `json:"request,omitempty"`
	Type            string        `json:"type"`
}

// BalanceAmount is an amount in one currency.
type BalanceAmount struct {
	Amount      int64            `json:"amount"`
	Currency    string           `json:"currency"`
	SourceTypes map[string]int64 `json:"source_types,omitempty"`
}

// Balance represents the account balance.
type Balance struct {
	Object    string          `json:"object"`
	Available []BalanceAmount `json:"available"`
	Livemode  bool            `json:"livemode"`
	Pending   []BalanceAmount `json:"pending"`
}
