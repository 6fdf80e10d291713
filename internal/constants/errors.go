package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKey          = errors.New("no API key configured, use 'stripe login' or --api-key")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrInvalidParam      = errors.New("parameter must be in key=value form")
	ErrNoNATSURL         = errors.New("--nats-url is required")
)
