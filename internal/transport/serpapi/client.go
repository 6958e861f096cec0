// Package serpapi implements the JobSearch capability client against the
// SerpAPI Google Jobs engine.
package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/pathwise-io/pathwise/internal/domain"
	"github.com/pathwise-io/pathwise/internal/domain/dispatch"
	"github.com/pathwise-io/pathwise/internal/domain/record"
)

// Config holds the job search provider settings.
type Config struct {
	APIKey            string
	BaseURL           string
	Engine            string
	Language          string
	MaxTitleResults   int
	MaxKeywordResults int
	DescriptionLimit  int
	Logger            *zap.Logger
}

// Client executes JobSearch dispatch requests.
type Client struct {
	httpClient        *http.Client
	baseURL           string
	apiKey            string
	engine            string
	language          string
	maxTitleResults   int
	maxKeywordResults int
	descLimit         int
	logger            *zap.Logger
}

// NewClient creates a JobSearch client. A missing API key is a configuration
// error; no dispatch is attempted against it.
func NewClient(cfg *Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("serpapi api key: %w", domain.ErrMissingCredential)
	}
	return &Client{
		httpClient:        &http.Client{},
		baseURL:           strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:            cfg.APIKey,
		engine:            cfg.Engine,
		language:          cfg.Language,
		maxTitleResults:   cfg.MaxTitleResults,
		maxKeywordResults: cfg.MaxKeywordResults,
		descLimit:         cfg.DescriptionLimit,
		logger:            cfg.Logger,
	}, nil
}

// Dispatch issues exactly one search request. Title searches use the composed
// "{title} in {location}, {country}" query and the title result cap; keyword
// searches send the raw text and use the larger keyword cap.
func (c *Client) Dispatch(ctx context.Context, req dispatch.Request) dispatch.Result {
	ctx, cancel := context.WithTimeout(ctx, req.Timeout())
	defer cancel()

	params := req.Jobs()
	query := params.Keyword
	maxResults := c.maxKeywordResults
	if query == "" {
		query = fmt.Sprintf("%s in %s, %s", params.Title, params.Location, params.Country)
		maxResults = c.maxTitleResults
	}

	jobs, err := c.search(ctx, query)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return dispatch.NewTimedOut(domain.JobSearch)
		}
		return dispatch.NewFailed(domain.JobSearch, domain.KindOf(err), err.Error())
	}

	jobs = record.Dedup(jobs)
	available := len(jobs)
	if available > maxResults {
		jobs = jobs[:maxResults]
	}

	c.logger.Debug("job search completed",
		zap.String("query", query),
		zap.Int("available", available),
		zap.Int("returned", len(jobs)),
	)
	return dispatch.NewJobResult(jobs, available)
}

// search performs one GET /search.json call and normalizes the listings.
func (c *Client) search(ctx context.Context, query string) ([]record.Job, error) {
	q := url.Values{}
	q.Set("engine", c.engine)
	q.Set("q", query)
	q.Set("hl", c.language)
	q.Set("api_key", c.apiKey)

	reqURL := c.baseURL + "/search.json?" + q.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("job search: %w", context.DeadlineExceeded)
		}
		return nil, fmt.Errorf("job search: %s: %w", err.Error(), domain.ErrNetwork)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %s: %w", err.Error(), domain.ErrMalformed)
	}
	// SerpAPI reports some failures as 200 with an error field.
	if parsed.Error != "" && len(parsed.JobsResults) == 0 {
		return nil, fmt.Errorf("search API error: %s", parsed.Error)
	}

	jobs := make([]record.Job, 0, len(parsed.JobsResults))
	for _, dto := range parsed.JobsResults {
		jobs = append(jobs, dto.toRecord(c.descLimit))
	}
	return jobs, nil
}

// statusError maps an HTTP status to the domain error taxonomy.
func statusError(code int) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("search API status %d: %w", code, domain.ErrUnauthorized)
	case http.StatusNotFound:
		return fmt.Errorf("search API status %d: %w", code, domain.ErrNotFound)
	case http.StatusTooManyRequests:
		return fmt.Errorf("search API status %d: %w", code, domain.ErrRateLimited)
	}
	return fmt.Errorf("search API status %d: %s", code, http.StatusText(code))
}
