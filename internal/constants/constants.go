package constants

import "time"

// Version is the client library version reported in the User-Agent header.
const Version = "0.4.0"

// API defaults.
const (
	// APIVersion is the Stripe-Version the models were written against.
	APIVersion = "2024-06-20"

	// DefaultAPIBase is the production API endpoint.
	DefaultAPIBase = "https://api.stripe.com"

	// APIPathPrefix is prepended to every resource path.
	APIPathPrefix = "/v1"

	// DefaultUserAgent identifies this client library.
	DefaultUserAgent = "stripe-client-go/" + Version
)

// Header names.
const (
	HeaderAuthorization  = "Authorization"
	HeaderContentType    = "Content-Type"
	HeaderUserAgent      = "User-Agent"
	HeaderStripeVersion  = "Stripe-Version"
	HeaderStripeAccount  = "Stripe-Account"
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderRequestID      = "Request-Id"

	// ContentTypeForm is the encoding of every request body.
	ContentTypeForm = "application/x-www-form-urlencoded"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 80 * time.Second

	// DefaultRetryWaitMin is the minimum wait between opt-in retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between opt-in retries.
	DefaultRetryWaitMax = 5 * time.Second
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK is the only status treated as success.
	HTTPStatusOK = 200
)

// Relay defaults.
const (
	// DefaultPollInterval is the interval between event polls.
	DefaultPollInterval = 30 * time.Second

	// DefaultSubjectPrefix prefixes the NATS subject of relayed events.
	DefaultSubjectPrefix = "stripe.events"

	// EventPageSize is the page size used when polling events.
	EventPageSize = 100
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of items listed by the CLI.
	DefaultPageSize = 10
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)
