// Package builder is a client for the Builder.io content API.
package builder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mishasvintus/builder_site/internal/domain"
	"github.com/mishasvintus/builder_site/internal/logger"
)

const (
	contentPath     = "/api/v3/content/"
	maxResponseSize = 10 << 20
	defaultTimeout  = 10 * time.Second
)

// Fetch outcomes reported to the Recorder.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	OutcomeCacheHit = "cache_hit"
)

// ErrMissingAPIKey is returned by NewClient when no API key is configured.
var ErrMissingAPIKey = errors.New("builder api key is required")

// APIError is returned when the content API answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Model      string
	URLPath    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("content api returned status %d for model %q path %q", e.StatusCode, e.Model, e.URLPath)
}

// Config holds content API connection settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// GetOptions controls a single content lookup.
type GetOptions struct {
	// URLPath is matched against the urlPath user attribute of content entries.
	URLPath string
	// Prerender asks the API for rendered HTML instead of the JSON block tree.
	Prerender bool
	// CacheTTL is a revalidation hint. Zero disables caching for the call.
	CacheTTL time.Duration
}

// Cache stores raw content responses.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Recorder observes fetch outcomes.
type Recorder interface {
	ObserveFetch(model, outcome string)
}

// Client fetches content entries.
type Client struct {
	apiKey     string
	baseURL    *url.URL
	httpClient *http.Client
	cache      Cache
	recorder   Recorder
	log        logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache enables response caching.
func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithRecorder reports fetch outcomes to r.
func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// WithLogger sets the logger used for cache failures.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a content API client. It must be called at most once per
// process and only when an API key is configured.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid builder base url %q", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		apiKey:     cfg.APIKey,
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type contentResponse struct {
	Results []domain.ContentRecord `json:"results"`
}

// Get returns the first entry of model matching opts.URLPath, or nil when
// nothing matches.
func (c *Client) Get(ctx context.Context, model string, opts GetOptions) (*domain.ContentRecord, error) {
	cacheKey := "builder:" + model + ":" + opts.URLPath
	useCache := c.cache != nil && opts.CacheTTL > 0

	if useCache {
		if record, ok := c.readCache(ctx, cacheKey); ok {
			c.observe(model, OutcomeCacheHit)
			return record, nil
		}
	}

	record, err := c.fetch(ctx, model, opts)
	if err != nil {
		c.observe(model, OutcomeError)
		return nil, err
	}

	if record == nil {
		c.observe(model, OutcomeNotFound)
	} else {
		c.observe(model, OutcomeOK)
	}

	if useCache {
		c.writeCache(ctx, cacheKey, record, opts.CacheTTL)
	}

	return record, nil
}

func (c *Client) fetch(ctx context.Context, model string, opts GetOptions) (*domain.ContentRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.contentURL(model, opts), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build content request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return nil, &APIError{StatusCode: resp.StatusCode, Model: model, URLPath: opts.URLPath}
	}

	var body contentResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode content response: %w", err)
	}

	if len(body.Results) == 0 {
		return nil, nil
	}
	record := body.Results[0]
	return &record, nil
}

func (c *Client) contentURL(model string, opts GetOptions) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + contentPath + url.PathEscape(model)

	q := url.Values{}
	q.Set("apiKey", c.apiKey)
	q.Set("limit", "1")
	q.Set("includeRefs", "true")
	q.Set("userAttributes.urlPath", opts.URLPath)
	if opts.Prerender {
		q.Set("prerender", "true")
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// readCache returns a cached record. A cached nil record is a valid hit.
func (c *Client) readCache(ctx context.Context, key string) (*domain.ContentRecord, bool) {
	raw, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Warn("content cache read failed", logger.String("key", key), logger.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var record *domain.ContentRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		c.log.Warn("content cache entry corrupt", logger.String("key", key), logger.Error(err))
		return nil, false
	}
	return record, true
}

func (c *Client) writeCache(ctx context.Context, key string, record *domain.ContentRecord, ttl time.Duration) {
	raw, err := json.Marshal(record)
	if err != nil {
		c.log.Warn("content cache encode failed", logger.String("key", key), logger.Error(err))
		return
	}
	if err := c.cache.Set(ctx, key, raw, ttl); err != nil {
		c.log.Warn("content cache write failed", logger.String("key", key), logger.Error(err))
	}
}

func (c *Client) observe(model, outcome string) {
	if c.recorder != nil {
		c.recorder.ObserveFetch(model, outcome)
	}
}
