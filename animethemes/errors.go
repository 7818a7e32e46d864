package animethemes

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid animethemes configuration")
)

// APIError represents a non-2xx response from the AnimeThemes API.
type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("animethemes API error: status %d: %s", e.StatusCode, e.URL)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsRateLimited checks if the error indicates request throttling
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}

// InvalidResponseError indicates a response body that was not the JSON the
// endpoint is defined to return.
type InvalidResponseError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("animethemes: invalid response from %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying decode error
func (e *InvalidResponseError) Unwrap() error {
	return e.Err
}

// TimestampError indicates a declared timestamp field whose non-empty value
// could not be parsed as a point in time.
type TimestampError struct {
	Field string
	Value any
	Err   error
}

// Error implements the error interface
func (e *TimestampError) Error() string {
	return fmt.Sprintf("animethemes: malformed timestamp %q: %v", e.Field, e.Value)
}

// Unwrap returns the underlying parse error, if any
func (e *TimestampError) Unwrap() error {
	return e.Err
}
