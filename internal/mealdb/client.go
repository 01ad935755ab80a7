package mealdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/mmcdole/mealfinder/internal/domain"
)

const (
	// DefaultBaseURL is TheMealDB's public v1 API root
	DefaultBaseURL   = "https://www.themealdb.com/api/json/v1/1/"
	defaultUserAgent = "mealfinder/1.0"

	searchPath  = "search.php"
	searchParam = "s"
)

// Client implements domain.SearchClient for TheMealDB.
// It keeps no state between calls.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ domain.SearchClient = (*Client)(nil)

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the transport. The default client has no timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if strings.TrimSpace(ua) != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a client rooted at baseURL (DefaultBaseURL when empty)
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	base, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:    base,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized API root, always ending in "/"
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FindMeals searches meals by name. The query is sent unmodified; the empty
// string is a legal query. Every failure is returned as *domain.FetchFailure.
func (c *Client) FindMeals(ctx context.Context, query string) ([]domain.Meal, error) {
	reqURL := c.searchURL(query)

	body, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := decodeResponse(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, &domain.FetchFailure{
			Kind:    domain.FailureParse,
			Message: fmt.Sprintf("could not read recipe data: %v", err),
			Err:     fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err),
		}
	}

	meals, err := MapMeals(resp.Meals)
	if err != nil {
		c.logger.Error("meal mapping failed", "error", err)
		return nil, &domain.FetchFailure{
			Kind:    domain.FailureParse,
			Message: fmt.Sprintf("could not read recipe data: %v", err),
			Err:     fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err),
		}
	}

	c.logger.Debug("search complete", "query", query, "results", len(meals))
	return meals, nil
}

// searchURL builds <base>search.php?s=<query>.
// Spaces are encoded as %20 rather than '+'.
func (c *Client) searchURL(query string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
	return c.baseURL + searchPath + "?" + searchParam + "=" + escaped
}

// doRequest performs a GET and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &domain.FetchFailure{
			Kind:    domain.FailureTransport,
			Message: fmt.Sprintf("could not build request: %v", err),
			Err:     err,
		}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("mealdb request", "method", http.MethodGet, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("mealdb request failed", "error", err)
		return nil, &domain.FetchFailure{
			Kind:    domain.FailureTransport,
			Message: transportMessage(err),
			Err:     fmt.Errorf("%w: %w", domain.ErrServerOffline, err),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.FetchFailure{
			Kind:    domain.FailureTransport,
			Message: fmt.Sprintf("failed to read response: %v", err),
			Err:     fmt.Errorf("%w: %w", domain.ErrServerOffline, err),
		}
	}

	c.logger.Debug("mealdb response", "status", resp.StatusCode, "bodyLen", len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("mealdb request error", "status", resp.StatusCode, "body", string(body))
		return nil, &domain.FetchFailure{
			Kind:    domain.FailureStatus,
			Message: fmt.Sprintf("recipe server returned HTTP %d", resp.StatusCode),
			Err:     fmt.Errorf("%w: %d", domain.ErrUnexpectedStatus, resp.StatusCode),
		}
	}

	return body, nil
}

// decodeResponse rejects a bare JSON null in addition to syntax errors
func decodeResponse(body []byte, dest *SearchResponse) error {
	if string(bytes.TrimSpace(body)) == "null" {
		return errors.New("response body is null")
	}
	return json.Unmarshal(body, dest)
}

func transportMessage(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "search was cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		return "recipe server did not respond in time"
	default:
		return fmt.Sprintf("could not reach recipe server: %v", err)
	}
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("base url %q must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("base url %q has no host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String(), nil
}
