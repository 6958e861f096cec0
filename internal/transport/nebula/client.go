// Package nebula implements the CourseSearch capability client against the
// UTD Nebula course catalog API.
package nebula

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/pathwise-io/pathwise/internal/domain"
	"github.com/pathwise-io/pathwise/internal/domain/dispatch"
	"github.com/pathwise-io/pathwise/internal/domain/record"
)

// CatalogFetcher fetches the full normalized course catalog. The endpoint
// takes no query parameters, so filtering always happens client-side.
type CatalogFetcher interface {
	FetchAll(ctx context.Context) ([]record.Course, error)
}

// Config holds the course catalog provider settings.
type Config struct {
	APIKey           string
	BaseURL          string
	MaxResults       int
	DescriptionLimit int
	Logger           *zap.Logger
}

// Client executes CourseSearch dispatch requests.
type Client struct {
	fetcher    CatalogFetcher
	maxResults int
	logger     *zap.Logger
}

// NewClient creates a CourseSearch client. A missing API key is a
// configuration error; no dispatch is attempted against it.
func NewClient(cfg *Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("nebula api key: %w", domain.ErrMissingCredential)
	}
	return &Client{
		fetcher: &httpCatalog{
			httpClient: &http.Client{},
			baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
			apiKey:     cfg.APIKey,
			descLimit:  cfg.DescriptionLimit,
		},
		maxResults: cfg.MaxResults,
		logger:     cfg.Logger,
	}, nil
}

// WithCatalog replaces the catalog source, e.g. with a caching decorator.
func (c *Client) WithCatalog(f CatalogFetcher) *Client {
	c.fetcher = f
	return c
}

// Catalog returns the current catalog source, for decorator chains built at
// the composition root.
func (c *Client) Catalog() CatalogFetcher {
	return c.fetcher
}

// Dispatch fetches the catalog once and filters it down to the requested
// departments. The request timeout is a hard deadline: expiry yields a
// TimedOut result, any other failure a Failed result with its kind.
func (c *Client) Dispatch(ctx context.Context, req dispatch.Request) dispatch.Result {
	ctx, cancel := context.WithTimeout(ctx, req.Timeout())
	defer cancel()

	all, err := c.fetcher.FetchAll(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return dispatch.NewTimedOut(domain.CourseSearch)
		}
		return dispatch.NewFailed(domain.CourseSearch, domain.KindOf(err), err.Error())
	}

	params := req.Courses()
	matched := filterCourses(all, params)
	matched = record.Dedup(matched)

	available := len(matched)
	if available > c.maxResults {
		matched = matched[:c.maxResults]
	}

	c.logger.Debug("course search completed",
		zap.Strings("departments", params.Departments),
		zap.Int("available", available),
		zap.Int("returned", len(matched)),
	)
	return dispatch.NewCourseResult(matched, available)
}

// filterCourses applies department, keyword, and level filters in catalog order.
func filterCourses(all []record.Course, params dispatch.CourseParams) []record.Course {
	var out []record.Course
	for _, dept := range params.Departments {
		for _, course := range all {
			if !strings.EqualFold(course.Subject, dept) {
				continue
			}
			if params.Keyword != "" && !matchesKeyword(course, params.Keyword) {
				continue
			}
			if params.LevelFilter != "" &&
				!strings.Contains(strings.ToLower(course.Level), strings.ToLower(params.LevelFilter)) {
				continue
			}
			out = append(out, course)
		}
	}
	return out
}

func matchesKeyword(course record.Course, keyword string) bool {
	keyword = strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(course.Title), keyword) ||
		strings.Contains(strings.ToLower(course.Description), keyword)
}

// httpCatalog performs the actual catalog fetch.
type httpCatalog struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	descLimit  int
}

// FetchAll implements CatalogFetcher over GET /course/all.
func (h *httpCatalog) FetchAll(ctx context.Context) ([]record.Course, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/course/all", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("x-api-key", h.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("catalog fetch: %w", context.DeadlineExceeded)
		}
		return nil, fmt.Errorf("catalog fetch: %s: %w", err.Error(), domain.ErrNetwork)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, statusError(resp.StatusCode, body)
	}

	var parsed catalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode catalog response: %s: %w", err.Error(), domain.ErrMalformed)
	}

	courses := make([]record.Course, 0, len(parsed.Data))
	for _, dto := range parsed.Data {
		courses = append(courses, dto.toRecord(h.descLimit))
	}
	return courses, nil
}

// statusError maps an HTTP status to the domain error taxonomy.
func statusError(code int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("catalog API status %d: %w", code, domain.ErrUnauthorized)
	case http.StatusNotFound:
		return fmt.Errorf("catalog API status %d: %w", code, domain.ErrNotFound)
	case http.StatusTooManyRequests:
		return fmt.Errorf("catalog API status %d: %w", code, domain.ErrRateLimited)
	}
	if msg == "" {
		msg = http.StatusText(code)
	}
	return fmt.Errorf("catalog API status %d: %s", code, msg)
}
