package animethemes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultAPIURL is the root of the public AnimeThemes API.
const DefaultAPIURL = "https://animethemes.dev/api"

const defaultTimeout = 30 * time.Second

// Client represents an AnimeThemes API client. The API is public and
// read-only, so there are no credentials and every request is a GET. A
// Client is safe for concurrent use; each call performs at most one
// round trip and no state is shared between calls.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithHTTPClient supplies a preconfigured HTTP client. It overrides
// WithTimeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// NewClient creates a new AnimeThemes client. An empty baseURL selects
// DefaultAPIURL. No request is issued until an endpoint method is called.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid API URL %q", ErrInvalidConfig, baseURL)
	}

	baseURL = strings.TrimRight(baseURL, "/")

	options := clientOptions{
		timeout:   defaultTimeout,
		userAgent: "animethemes-go/" + Version,
	}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  options.userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// getURL performs one GET against an absolute URL, the form pagination
// links arrive in. The status code is checked before anyone looks at the
// body: a non-2xx response never reaches the JSON layer.
func (c *Client) getURL(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().
		Str("url", u).
		Msg("Requesting AnimeThemes API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: resp.StatusCode, URL: u, Body: string(body)}
	}

	return body, nil
}

// getObject performs one GET and decodes the body as a JSON object.
func (c *Client) getObject(ctx context.Context, endpoint string, params url.Values) (map[string]any, error) {
	u := c.requestURL(endpoint, params)
	body, err := c.getURL(ctx, u)
	if err != nil {
		return nil, err
	}
	return decodeObject(u, body)
}

// requestURL joins an endpoint path and its encoded query onto the base URL.
func (c *Client) requestURL(endpoint string, params url.Values) string {
	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// decodeObject decodes a body that must hold a single JSON object.
func decodeObject(u string, body []byte) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &InvalidResponseError{URL: u, Err: err}
	}
	return raw, nil
}
