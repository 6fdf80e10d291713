package stripe

import "time"

// ParamsBuilder is implemented by every typed parameter struct.
type ParamsBuilder interface {
	Params() Params
}

// RangeQuery filters a timestamp field by bounds. Nil bounds are not sent.
type RangeQuery struct {
	GT  *time.Time
	GTE *time.Time
	LT  *time.Time
	LTE *time.Time
}

// Params implements ParamsBuilder.
func (r *RangeQuery) Params() Params {
	if r == nil {
		return nil
	}

	params := Params{}
	setTime(params, "gt", r.GT)
	setTime(params, "gte", r.GTE)
	setTime(params, "lt", r.LT)
	setTime(params, "lte", r.LTE)

	return params
}

// ListParams holds the cursor parameters shared by all list operations.
// Filters is merged last and may carry any filter without a typed field.
type ListParams struct {
	Limit         *int64
	StartingAfter *string
	EndingBefore  *string
	Created       *RangeQuery
	Expand        []string
	Filters       Params
}

// Params implements ParamsBuilder.
func (p *ListParams) Params() Params {
	params := Params{}
	if p == nil {
		return params
	}

	setInt(params, "limit", p.Limit)
	setString(params, "starting_after", p.StartingAfter)
	setString(params, "ending_before", p.EndingBefore)
	setExpand(params, p.Expand)

	if created := p.Created.Params(); len(created) > 0 {
		params["created"] = created
	}

	return params.Merge(p.Filters)
}

// GetParams is accepted by retrieve operations.
type GetParams struct {
	Expand []string
}

// Params implements ParamsBuilder.
func (p *GetParams) Params() Params {
	params := Params{}
	if p == nil {
		return params
	}

	setExpand(params, p.Expand)

	return params
}

// AddressParams is a postal address in a create or update request.
type AddressParams struct {
	City       *string
	Country    *string
	Line1      *string
	Line2      *string
	PostalCode *string
	State      *string
}

// Params implements ParamsBuilder.
func (p *AddressParams) Params() Params {
	if p == nil {
		return nil
	}

	params := Params{}
	setString(params, "city", p.City)
	setString(params, "country", p.Country)
	setString(params, "line1", p.Line1)
	setString(params, "line2", p.Line2)
	setString(params, "postal_code", p.PostalCode)
	setString(params, "state", p.State)

	return params
}

// ChargeParams creates or updates a charge.
type ChargeParams struct {
	Amount        *int64
	Currency      *string
	Customer      *string
	Description   *string
	ReceiptEmail  *string
	Source        *string
	Capture       *bool
	TransferGroup *string
	Metadata      map[string]string
	Expand        []string
}

// Params implements ParamsBuilder.
func (p *ChargeParams) Params() Params {
	params := Params{}
	if p == nil {
		return params
	}

	setInt(params, "amount", p.Amount)
	setString(params, "currency", p.Currency)
	setString(params, "customer", p.Customer)
	setString(params, "description", p.Description)
	setString(params, "receipt_email", p.ReceiptEmail)
	setString(params, "source", p.Source)
	setBool(params, "capture", p.Capture)
	setString(params, "transfer_group", p.TransferGroup)
	setMetadata(params, p.Metadata)
	setExpand(params, p.Expand)

	return params
}

// ChargeCaptureParams captures an uncaptured charge.
type ChargeCaptureParams struct {
	Amount       *int64
	ReceiptEmail *string
	Expand       []string
}

// Params implements ParamsBuilder.
func (p *ChargeCaptureParams) Params() Params {
	params := Params{}
	if p == nil {
		return params
	}

	setInt(params, "amount", p.Amount)
	setString(params, "receipt_email", p.ReceiptEmail)
	setExpand(params, p.Expand)

	return params
}

// ChargeListParams lists charges.
type ChargeListParams struct {
	ListParams

	Customer      *string
	PaymentIntent *string
}

// Params implements ParamsBuilder.
func (p *ChargeListParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{}
	setString(params, "customer", p.Customer)
	setString(params, "payment_intent", p.PaymentIntent)

	return params.Merge(p.ListParams.Params())
}

// CustomerParams creates or updates a customer.
type CustomerParams struct {
	Address     *AddressParams
	Balance     *int64
	Description *string
	Email       *string
	Name        *string
	Phone       *string
	Source      *string
	Metadata    map[string]string
	Expand      []string
}

// Params implements ParamsBuilder.
func (p *CustomerParams) Params() Params {
	params := Params{}
	if p == nil {
		return params
	}

	if address := p.Address.Params(); address != nil {
		params["address"] = address
	}

	setInt(params, "balance", p.Balance)
	setString(params, "description", p.Description)
	setString(params, "email", p.Email)
	setString(params, "name", p.Name)
	setString(params, "phone", p.Phone)
	setString(params, "source", p.Source)
	setMetadata(params, p.Metadata)
	setExpand(params, p.Expand)

	return params
}

// CustomerListParams lists customers.
type CustomerListParams struct {
	ListParams

	Email *string
}

// Params implements ParamsBuilder.
func (p *CustomerListParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{}
	setString(params, "email", p.Email)

	return params.Merge(p.ListParams.Params())
}

// PaymentIntentParams creates or updates a payment intent.
type PaymentIntentParams struct {
	Amount             *int64
	Currency           *string
	Customer           *string
	Description        *string
	PaymentMethod      *string
	PaymentMethodTypes []string
	CaptureMethod      *string
	Confirm            *bool
	ReceiptEmail       *string
	Metadata           map[string]string
	Expand             []string
}

// Params implements ParamsBuilder.
func (p *PaymentIntentParams) Params() Params {
	params := Params{}
	if p == nil {
		return params
	}

	setInt(params, "amount", p.Amount)
	setString(params, "currency", p.Currency)
	setString(params, "customer", p.Customer)
	setString(params, "description", p.Description)
	setString(params, "payment_method", p.PaymentMethod)
	setStrings(params, "payment_method_types", p.PaymentMethodTypes)
	setString(params, "capture_method", p.CaptureMethod)
	setBool(params, "confirm", p.Confirm)
	setString(params, "receipt_email", p.ReceiptEmail)
	setMetadata(params, p.Metadata)
	setExpand(params, p.Expand)

	return params
}

// PaymentIntentConfirmParams confirms a payment intent.
type PaymentIntentConfirmParams struct {
	PaymentMethod *string
	ReturnURL     *string
	Expand        []string
}

// Params implements ParamsBuilder.
func (p *PaymentIntentConfirmParams) Params() Params {
	params := Params{}
	if p == nil {
		return params
	}

	setString(params, "payment_method", p.PaymentMethod)
	setString(params, "return_url", p.ReturnURL)
	setExpand(params, p.Expand)

	return params
}

// PaymentIntentCancelParams cancels a payment intent.
type PaymentIntentCancelParams struct {
	CancellationReason *string
	Expand             []string
}

// Params implements ParamsBuilder.
func (p *PaymentIntentCancelParams) Params() Params {
	params := Params{}
	if p == nil {
		return params
	}

	setString(params, "cancellation_reason", p.CancellationReason)
	setExpand(params, p.Expand)

	return params
}

// PaymentIntentListParams lists payment intents.
type PaymentIntentListParams struct {
	ListParams

	Customer *string
}

// Params implements ParamsBuilder.
func (p *PaymentIntentListParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{}
	setString(params, "customer", p.Customer)

	return params.Merge(p.ListParams.Params())
}

// RefundParams creates or updates a refund.
type RefundParams struct {
	Amount        *int64
	Charge        *string
	PaymentIntent *string
	Reason        *string
	Metadata      map[string]string
	Expand        []string
}

// Params implements ParamsBuilder.
func (p *RefundParams) Params() Params {
	params := Params{}
	if p == nil {
		return params
	}

	setInt(params, "amount", p.Amount)
	setString(params, "charge", p.Charge)
	setString(params, "payment_intent", p.PaymentIntent)
	setString(params, "reason", p.Reason)
	setMetadata(params, p.Metadata)
	setExpand(params, p.Expand)

	return params
}

// RefundListParams lists refunds.
type RefundListParams struct {
	ListParams

	Charge        *string
	PaymentIntent *string
}

// Params implements ParamsBuilder.
func (p *RefundListParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{}
	setString(params, "charge", p.Charge)
	setString(params, "payment_intent", p.PaymentIntent)

	return params.Merge(p.ListParams.Params())
}

// SubscriptionItemParams adds, changes or removes one item of a subscription.
type SubscriptionItemParams struct {
	ID       *string
	Price    *string
	Quantity *int64
	Deleted  *bool
}

// Params implements ParamsBuilder.
func (p *SubscriptionItemParams) Params() Params {
	params := Params{}
	if p == nil {
		return params
	}

	setString(params, "id", p.ID)
	setString(params, "price", p.Price)
	setInt(params, "quantity", p.Quantity)
	setBool(params, "deleted", p.Deleted)

	return params
}

// SubscriptionParams creates or updates a subscription.
type SubscriptionParams struct {
	Customer             *string
	Items                []*SubscriptionItemParams
	CancelAtPeriodEnd    *bool
	DefaultPaymentMethod *string
	TrialEnd             *time.Time
	Metadata             map[string]string
	Expand               []string
}

// Params implements ParamsBuilder.
func (p *SubscriptionParams) Params() Params {
	params := Params{}
	if p == nil {
		return params
	}

	setString(params, "customer", p.Customer)

	if p.Items != nil {
		items := make(Array, 0, len(p.Items))
		for _, item := range p.Items {
			items = append(items, item.Params())
		}

		params["items"] = items
	}

	setBool(params, "cancel_at_period_end", p.CancelAtPeriodEnd)
	setString(params, "default_payment_method", p.DefaultPaymentMethod)
	setTime(params, "trial_end", p.TrialEnd)
	setMetadata(params, p.Metadata)
	setExpand(params, p.Expand)

	return params
}

// SubscriptionCancelParams cancels a subscription immediately.
type SubscriptionCancelParams struct {
	InvoiceNow *bool
	Prorate    *bool
	Expand     []string
}

// Params implements ParamsBuilder.
func (p *SubscriptionCancelParams) Params() Params {
	params := Params{}
	if p == nil {
		return params
	}

	setBool(params, "invoice_now", p.InvoiceNow)
	setBool(params, "prorate", p.Prorate)
	setExpand(params, p.Expand)

	return params
}

// SubscriptionListParams lists subscriptions.
type SubscriptionListParams struct {
	ListParams

	Customer *string
	Price    *string
	Status   *string
}

// Params implements ParamsBuilder.
func (p *SubscriptionListParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{}
	setString(params, "customer", p.Customer)
	setString(params, "price", p.Price)
	setString(params, "status", p.Status)

	return params.Merge(p.ListParams.Params())
}

// TransferParams creates or updates a transfer.
type TransferParams struct {
	Amount            *int64
	Currency          *string
	Description       *string
	Destination       *string
	SourceTransaction *string
	TransferGroup     *string
	Metadata          map[string]string
	Expand            []string
}

// Params implements ParamsBuilder.
func (p *TransferParams) Params() Params {
	params := Params{}
	if p == nil {
		return params
	}

	setInt(params, "amount", p.Amount)
	setString(params, "currency", p.Currency)
	setString(params, "description", p.Description)
	setString(params, "destination", p.Destination)
	setString(params, "source_transaction", p.SourceTransaction)
	setString(params, "transfer_group", p.TransferGroup)
	setMetadata(params, p.Metadata)
	setExpand(params, p.Expand)

	return params
}

// TransferListParams lists transfers.
type TransferListParams struct {
	ListParams

	Destination   *string
	TransferGroup *string
}

// Params implements ParamsBuilder.
func (p *TransferListParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{}
	setString(params, "destination", p.Destination)
	setString(params, "transfer_group", p.TransferGroup)

	return params.Merge(p.ListParams.Params())
}

// DisputeEvidenceParams is evidence submitted for a dispute.
type DisputeEvidenceParams struct {
	CustomerEmailAddress *string
	CustomerName         *string
	ProductDescription   *string
	UncategorizedText    *string
}

// Params implements ParamsBuilder.
func (p *DisputeEvidenceParams) Params() Params {
	if p == nil {
		return nil
	}

	params := Params{}
	setString(params, "customer_email_address", p.CustomerEmailAddress)
	setString(params, "customer_name", p.CustomerName)
	setString(params, "product_description", p.ProductDescription)
	setString(params, "uncategorized_text", p.UncategorizedText)

	return params
}

// DisputeParams updates a dispute.
type DisputeParams struct {
	Evidence *DisputeEvidenceParams
	Submit   *bool
	Metadata map[string]string
	Expand   []string
}

// Params implements ParamsBuilder.
func (p *DisputeParams) Params() Params {
	params := Params{}
	if p == nil {
		return params
	}

	if evidence := p.Evidence.Params(); evidence != nil {
		params["evidence"] = evidence
	}

	setBool(params, "submit", p.Submit)
	setMetadata(params, p.Metadata)
	setExpand(params, p.Expand)

	return params
}

// DisputeListParams lists disputes.
type DisputeListParams struct {
	ListParams

	Charge        *string
	PaymentIntent *string
}

// Params implements ParamsBuilder.
func (p *DisputeListParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{}
	setString(params, "charge", p.Charge)
	setString(params, "payment_intent", p.PaymentIntent)

	return params.Merge(p.ListParams.Params())
}

// TerminalReaderParams registers or updates a terminal reader.
type TerminalReaderParams struct {
	RegistrationCode *string
	Label            *string
	Location         *string
	Metadata         map[string]string
	Expand           []string
}

// Params implements ParamsBuilder.
func (p *TerminalReaderParams) Params() Params {
	params := Params{}
	if p == nil {
		return params
	}

	setString(params, "registration_code", p.RegistrationCode)
	setString(params, "label", p.Label)
	setString(params, "location", p.Location)
	setMetadata(params, p.Metadata)
	setExpand(params, p.Expand)

	return params
}

// TerminalReaderListParams lists terminal readers.
type TerminalReaderListParams struct {
	ListParams

	DeviceType *string
	Location   *string
	Status     *string
}

// Params implements ParamsBuilder.
func (p *TerminalReaderListParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{}
	setString(params, "device_type", p.DeviceType)
	setString(params, "location", p.Location)
	setString(params, "status", p.Status)

	return params.Merge(p.ListParams.Params())
}

// EventListParams lists events.
type EventListParams struct {
	ListParams

	Type  *string
	Types []string
}

// Params implements ParamsBuilder.
func (p *EventListParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{}
	setString(params, "type", p.Type)
	setStrings(params, "types", p.Types)

	return params.Merge(p.ListParams.Params())
}

func setString(params Params, key string, value *string) {
	if value != nil {
		params[key] = String(*value)
	}
}

func setInt(params Params, key string, value *int64) {
	if value != nil {
		params[key] = Int(*value)
	}
}

func setBool(params Params, key string, value *bool) {
	if value != nil {
		params[key] = Bool(*value)
	}
}

func setTime(params Params, key string, value *time.Time) {
	if value != nil {
		params[key] = Time(*value)
	}
}

func setStrings(params Params, key string, values []string) {
	if values != nil {
		params[key] = Strings(values...)
	}
}

// A non-nil empty map is sent as "metadata=", which clears all keys.
func setMetadata(params Params, metadata map[string]string) {
	if metadata == nil {
		return
	}

	nested := make(Params, len(metadata))
	for key, value := range metadata {
		nested[key] = String(value)
	}

	params["metadata"] = nested
}

func setExpand(params Params, fields []string) {
	if len(fields) > 0 {
		params["expand"] = Expand(fields...)
	}
}
