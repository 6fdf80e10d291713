package stripe

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorType is the category of an API error.
type ErrorType string

// Error categories returned by the API, plus connection_error for requests
// that never produced a response.
const (
	ErrorTypeConnection     ErrorType = "connection_error"
	ErrorTypeAPI            ErrorType = "api_error"
	ErrorTypeAuthentication ErrorType = "authentication_error"
	ErrorTypeCard           ErrorType = "card_error"
	ErrorTypeIdempotency    ErrorType = "idempotency_error"
	ErrorTypeInvalidRequest ErrorType = "invalid_request_error"
	ErrorTypeRateLimit      ErrorType = "rate_limit_error"
	ErrorTypeValidation     ErrorType = "validation_error"
)

// Static errors for err113 compliance.
var (
	ErrNotExpanded          = errors.New("reference not expanded")
	ErrUnknownObjectType    = errors.New("unknown object type")
	ErrUnexpectedObjectType = errors.New("unexpected object type")
	ErrInvalidExpandable    = errors.New("expected an ID string or an object")
	ErrContractViolation    = errors.New("response does not match the expected schema")
	ErrIDRequired           = errors.New("resource ID is required")
	ErrConfigRequired       = errors.New("config is required")
	ErrSecretKeyRequired    = errors.New("secret key is required")
	ErrInvalidConfig        = errors.New("invalid config")
	ErrMissingErrorPayload  = errors.New("error response has no error object")
)

// Error is a structured failure returned by the API or produced when the
// transport fails before any response arrives.
type Error struct {
	Type          ErrorType                 `json:"type"`
	Code          string                    `json:"code,omitempty"`
	DeclineCode   string                    `json:"decline_code,omitempty"`
	Message       string                    `json:"message,omitempty"`
	Param         string                    `json:"param,omitempty"`
	DocURL        string                    `json:"doc_url,omitempty"`
	RequestLogURL string                    `json:"request_log_url,omitempty"`
	Charge        string                    `json:"charge,omitempty"`
	PaymentIntent Expandable[PaymentIntent] `json:"payment_intent"`
	Source        DynamicExpandable         `json:"source"`

	// HTTPStatusCode is the status of the failed response, 0 for connection errors.
	HTTPStatusCode int `json:"-"`
	// RequestID is the value of the Request-Id response header.
	RequestID string `json:"-"`

	cause error
}

// NewConnectionError wraps a transport failure.
func NewConnectionError(cause error) *Error {
	return &Error{
		Type:    ErrorTypeConnection,
		Message: "request failed before a response was received",
		cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var builder strings.Builder

	builder.WriteString(string(e.Type))
	builder.WriteString(": ")
	builder.WriteString(e.Message)

	if e.cause != nil {
		builder.WriteString(": ")
		builder.WriteString(e.cause.Error())
	}

	var details []string
	if e.Code != "" {
		details = append(details, "code: "+e.Code)
	}

	if e.DeclineCode != "" {
		details = append(details, "decline_code: "+e.DeclineCode)
	}

	if e.Param != "" {
		details = append(details, "param: "+e.Param)
	}

	if e.HTTPStatusCode != 0 {
		details = append(details, fmt.Sprintf("status: %d", e.HTTPStatusCode))
	}

	if e.RequestID != "" {
		details = append(details, "request: "+e.RequestID)
	}

	if len(details) > 0 {
		builder.WriteString(" (")
		builder.WriteString(strings.Join(details, ", "))
		builder.WriteString(")")
	}

	return builder.String()
}

// Unwrap returns the transport failure behind a connection error.
func (e *Error) Unwrap() error {
	return e.cause
}

// DecodeError reports a response body that does not match the shape the
// caller expected. It always matches ErrContractViolation with errors.Is.
type DecodeError struct {
	Target     string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s from response with status %d: %v", e.Target, e.StatusCode, e.Err)
}

// Unwrap returns ErrContractViolation and the underlying decode failure.
func (e *DecodeError) Unwrap() []error {
	return []error{ErrContractViolation, e.Err}
}

type errorEnvelope struct {
	Error *Error `json:"error"`
}

// ParseError decodes the {"error": {...}} payload of a failed response.
// A body of any other shape yields a *DecodeError.
func ParseError(statusCode int, data []byte) (*Error, error) {
	var envelope errorEnvelope

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return nil, &DecodeError{Target: "error payload", StatusCode: statusCode, Err: err}
	}

	if envelope.Error == nil {
		return nil, &DecodeError{Target: "error payload", StatusCode: statusCode, Err: ErrMissingErrorPayload}
	}

	envelope.Error.HTTPStatusCode = statusCode

	return envelope.Error, nil
}

// AsError returns the *Error in err's chain.
func AsError(err error) (*Error, bool) {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

func isErrorType(err error, errorType ErrorType) bool {
	apiErr, ok := AsError(err)

	return ok && apiErr.Type == errorType
}

// IsCardError checks if the error is a card decline.
func IsCardError(err error) bool {
	return isErrorType(err, ErrorTypeCard)
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	return isErrorType(err, ErrorTypeRateLimit)
}

// IsAuthenticationError checks if the error is caused by a bad or missing key.
func IsAuthenticationError(err error) bool {
	return isErrorType(err, ErrorTypeAuthentication)
}

// IsConnectionError checks if the request failed before a response arrived.
func IsConnectionError(err error) bool {
	return isErrorType(err, ErrorTypeConnection)
}

// IsInvalidRequest checks if the error is an invalid request error.
func IsInvalidRequest(err error) bool {
	return isErrorType(err, ErrorTypeInvalidRequest)
}

// IsIdempotencyError checks if the error is an idempotency error.
func IsIdempotencyError(err error) bool {
	return isErrorType(err, ErrorTypeIdempotency)
}

// IsNotFound checks if the error is an invalid request for a missing resource.
func IsNotFound(err error) bool {
	apiErr, ok := AsError(err)

	return ok && apiErr.Type == ErrorTypeInvalidRequest && (apiErr.Code == "resource_missing" || apiErr.HTTPStatusCode == 404)
}

// IsContractViolation checks if a response body failed to decode.
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrContractViolation)
}
