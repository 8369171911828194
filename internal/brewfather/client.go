// Package brewfather is a client for the Brewfather v2 REST API. It issues
// authenticated requests, validates responses into internal/models records
// and hydrates summary lists into details with bounded concurrency.
package brewfather

import (
	"bytes"
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

// DefaultTimeout bounds every upstream request when no HTTP client is given.
const DefaultTimeout = 30 * time.Second

// Config holds everything needed to construct a Client.
type Config struct {
	UserID  string
	APIKey  string
	BaseURL string

	// DebugDir, when set, receives a copy of every GET response body.
	DebugDir string

	HTTPClient *http.Client
	Logger     *zerolog.Logger
	Metrics    *Metrics
}

// Client talks to the Brewfather API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	basePath   string
	userID     string
	apiKey     string
	debugDir   string
	httpClient *http.Client
	log        zerolog.Logger
	metrics    *Metrics
}

// NewClient validates cfg and returns a client. Missing credentials yield a
// *ConfigError naming the environment variable that supplies them.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.UserID) == "" {
		return nil, &ConfigError{Field: "BREWFATHER_API_USER_ID"}
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &ConfigError{Field: "BREWFATHER_API_KEY"}
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Client{
		baseURL:    baseURL,
		basePath:   parsed.Path,
		userID:     cfg.UserID,
		apiKey:     cfg.APIKey,
		debugDir:   cfg.DebugDir,
		httpClient: httpClient,
		log:        logger,
		metrics:    cfg.Metrics,
	}, nil
}

// get issues an authenticated GET and returns the response body.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	c.dump(rawURL, body)
	return body, nil
}

// patch issues an authenticated PATCH with a JSON body. The response body is
// discarded on success.
func (c *Client) patch(ctx context.Context, rawURL string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, rawURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	_, err = c.do(req)
	return err
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.SetBasicAuth(c.userID, c.apiKey)

	endpoint := endpointLabel(strings.TrimPrefix(req.URL.Path, c.basePath))
	done := c.metrics.start()
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		done(req.Method, endpoint, 0)
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Redacted(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	done(req.Method, endpoint, resp.StatusCode)
	c.log.Debug().
		Str("method", req.Method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Brewfather request")
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}
	return body, nil
}
