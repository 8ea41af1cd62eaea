package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/entraops/dlman/pkg/domain/interfaces"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultBaseURL  = "https://graph.microsoft.com/v1.0"
	defaultScope    = "https://graph.microsoft.com/.default"
	authorityFormat = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"
)

// Client is an authenticated request/response wrapper for the Microsoft
// Graph API. Tokens are acquired lazily via the OAuth2 client-credentials
// flow and memoized; a 401 response triggers exactly one re-acquisition
// and one retry of the same request before the error surfaces.
type Client struct {
	baseURL string
	httpc   *http.Client
	creds   *clientcredentials.Config

	// token is mutated under mu on concurrent 401 handling. A refresh
	// that lost the race reuses the winner's token instead of hitting
	// the authority again.
	mu    sync.Mutex
	token string
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the API base URL
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTokenURL overrides the token endpoint
func WithTokenURL(u string) Option {
	return func(c *Client) {
		c.creds.TokenURL = u
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpc = hc
	}
}

// New creates a Graph API client for the given tenant
func New(tenantID, clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpc:   http.DefaultClient,
		creds: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     strings.Replace(authorityFormat, "%s", tenantID, 1),
			Scopes:       []string{defaultScope},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ interfaces.DirectoryClient = &Client{}

// accessToken returns the memoized token, acquiring one on first use
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		return c.token, nil
	}

	tok, err := c.creds.Token(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to acquire access token")
	}
	c.token = tok.AccessToken
	ctxlog.From(ctx).Debug("access token acquired")
	return c.token, nil
}

// refreshToken re-acquires the token after an expiry signal. If another
// worker already refreshed since stale was handed out, its token is reused.
func (c *Client) refreshToken(ctx context.Context, stale string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.token != stale {
		return c.token, nil
	}

	tok, err := c.creds.Token(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to refresh access token")
	}
	c.token = tok.AccessToken
	ctxlog.From(ctx).Debug("access token refreshed")
	return c.token, nil
}

// requestURL builds the absolute URL for path. Continuation links from the
// server are already absolute and pass through untouched.
func (c *Client) requestURL(path string, query url.Values) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do executes one request with the single-refresh retry policy and returns
// the response body
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to marshal request body")
		}
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	reqURL := c.requestURL(path, query)
	status, respBody, err := c.send(ctx, method, reqURL, token, payload)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized {
		ctxlog.From(ctx).Warn("token expired, refreshing", "method", method, "path", path)
		token, err = c.refreshToken(ctx, token)
		if err != nil {
			return nil, err
		}
		status, respBody, err = c.send(ctx, method, reqURL, token, payload)
		if err != nil {
			return nil, err
		}
	}

	if status < 200 || status >= 300 {
		return nil, goerr.Wrap(
			&APIError{StatusCode: status, Body: string(respBody)},
			"graph request failed",
			goerr.V("method", method),
			goerr.V("path", path),
		)
	}

	return respBody, nil
}

func (c *Client) send(ctx context.Context, method, reqURL, token string, payload []byte) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return 0, nil, goerr.Wrap(err, "failed to build request", goerr.V("url", reqURL))
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, nil, goerr.Wrap(err, "graph request transport failure", goerr.V("url", reqURL))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, goerr.Wrap(err, "failed to read response body")
	}

	return resp.StatusCode, respBody, nil
}

// Get performs a GET request and decodes the response into out
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	respBody, err := c.do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	return decode(respBody, out)
}

// Patch performs a PATCH request with a JSON body
func (c *Client) Patch(ctx context.Context, path string, body any) error {
	_, err := c.do(ctx, http.MethodPatch, path, nil, body)
	return err
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

type pagedResponse struct {
	Value    []json.RawMessage `json:"value"`
	NextLink string            `json:"@odata.nextLink"`
}

// GetAllPages follows @odata.nextLink continuations until exhausted. The
// original query applies to the first page only; continuation links are
// self-contained.
func (c *Client) GetAllPages(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
	logger := ctxlog.From(ctx)

	var items []json.RawMessage
	next := path
	page := 1

	for next != "" {
		body, err := c.do(ctx, http.MethodGet, next, query, nil)
		if err != nil {
			return nil, err
		}

		var resp pagedResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, goerr.Wrap(err, "failed to decode paged response", goerr.V("path", path))
		}

		items = append(items, resp.Value...)
		logger.Debug("fetched page", "page", page, "items", len(resp.Value))

		next = resp.NextLink
		query = nil
		page++
	}

	logger.Debug("pagination complete", "path", path, "total", len(items))
	return items, nil
}

func decode(body []byte, out any) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return goerr.Wrap(err, "failed to decode graph response")
	}
	return nil
}
