package graph

import (
	"errors"
	"fmt"
	"strings"
)

// APIError is a typed failure from the directory REST API. It carries the
// status code and the raw error body so callers can pattern-match specific
// rejection reasons.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("graph API error %d: %s", e.StatusCode, e.Body)
}

// AsAPIError extracts an *APIError from an error chain
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// BodyContains reports whether the server-provided error body contains the
// given phrase
func (e *APIError) BodyContains(phrase string) bool {
	return strings.Contains(e.Body, phrase)
}
