package twitch

import (
	"errors"
	"fmt"
)

// Common errors returned by the Twitch client.
var (
	// ErrMissingBaseURL indicates the client was constructed without a base URL.
	ErrMissingBaseURL = errors.New("twitch base URL is required")

	// ErrInvalidPaging indicates an offset/limit combination outside the
	// range accepted by the API.
	ErrInvalidPaging = errors.New("limit must be between 1 and 100")
)

// APIError represents a non-success response from the Twitch API.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("twitch API error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("twitch API error: status %d", e.StatusCode)
}

// IsNotFound checks if the error indicates a missing resource,
// e.g. an unknown channel name.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates a rejected or missing
// credential.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsServerError checks if the error was caused by Twitch itself (5xx).
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode <= 599
}
