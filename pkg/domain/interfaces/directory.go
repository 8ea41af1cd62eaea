package interfaces

//go:generate moq -out mocks/directory_mock.go -pkg mocks . DirectoryClient

import (
	"context"
	"encoding/json"
	"net/url"
)

// DirectoryClient defines the authenticated REST transport against the
// directory API. Implementations handle token acquisition, single-retry
// refresh on auth expiry and pagination; callers work with decoded JSON.
type DirectoryClient interface {
	// Get performs a GET request and decodes the response into out.
	// A nil out discards the body.
	Get(ctx context.Context, path string, query url.Values, out any) error

	// Post performs a POST request with a JSON body. A nil out discards
	// the response body.
	Post(ctx context.Context, path string, body any, out any) error

	// Patch performs a PATCH request with a JSON body
	Patch(ctx context.Context, path string, body any) error

	// Delete performs a DELETE request
	Delete(ctx context.Context, path string) error

	// GetAllPages follows server-provided continuation links until
	// exhausted and returns the concatenated items in order. The query
	// applies to the first page only; continuation links are
	// self-contained.
	GetAllPages(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error)
}
