package cryptotax

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMissingAPIKey  = errors.New("api key is required")
	ErrInvalidBaseURL = errors.New("base url must be an absolute http(s) url")
	ErrNoWallets      = errors.New("at least one wallet is required")
	ErrEmptyAddress   = errors.New("empty wallet address provided")
	ErrMissingData    = errors.New("response has no data field")
)

// ConfigError is returned by New when the client options are unusable.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid client option %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ValidationError is returned before any request is made. Err may hold
// several problems, use multierr.Errors to split them.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "invalid create link request: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx answer of the link API. Body is kept verbatim.
type APIError struct {
	StatusCode int
	StatusText string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed: %d %s. %s", e.StatusCode, e.StatusText, e.Body)
}

// DecodeError means a 2xx response did not carry the {"data": {...}} envelope.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return "failed to decode a link API response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
