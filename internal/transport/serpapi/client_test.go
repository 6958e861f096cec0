package serpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pathwise-io/pathwise/internal/domain"
	"github.com/pathwise-io/pathwise/internal/domain/dispatch"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(&Config{
		APIKey:            "test-key",
		BaseURL:           srv.URL,
		Engine:            "google_jobs",
		Language:          "en",
		MaxTitleResults:   2,
		MaxKeywordResults: 3,
		DescriptionLimit:  200,
		Logger:            zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

const listingsBody = `{"jobs_results": [
	{"title": "Python Developer", "company_name": "Acme", "location": "Austin, TX",
	 "source": "LinkedIn", "description": "Ship\nthings", "apply_options": [{"link": "https://example.com/1"}]},
	{"title": "Python Developer", "company_name": "Acme", "location": "Austin, TX",
	 "source": "Indeed", "description": "duplicate listing"},
	{"title": "Backend Developer", "company_name": "Initech", "location": "Austin, TX"},
	{"title": "Platform Engineer", "company_name": "Globex", "location": "Austin, TX"}
]}`

func TestNewClient_MissingKey(t *testing.T) {
	_, err := NewClient(&Config{Logger: zap.NewNop()})
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Errorf("expected ErrMissingCredential, got %v", err)
	}
}

func TestDispatch_TitleModeComposesQuery(t *testing.T) {
	var gotQuery url.Values
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(listingsBody))
	})

	req := dispatch.NewJobRequest(dispatch.JobParams{
		Title:    "python developer",
		Location: "Austin",
		Country:  "USA",
	}, time.Second)
	res := client.Dispatch(context.Background(), req)

	if got := gotQuery.Get("q"); got != "python developer in Austin, USA" {
		t.Errorf("unexpected search query %q", got)
	}
	if gotQuery.Get("engine") != "google_jobs" || gotQuery.Get("hl") != "en" {
		t.Errorf("engine/language params missing: %v", gotQuery)
	}
	if gotQuery.Get("api_key") != "test-key" {
		t.Errorf("api key param missing: %v", gotQuery)
	}

	if res.Status() != dispatch.StatusOK {
		t.Fatalf("expected ok, got %s (%s)", res.Status(), res.Message())
	}
	// 4 listings, 1 duplicate, title cap of 2.
	if res.Returned() != 2 || res.Available() != 3 {
		t.Errorf("expected 2 of 3, got %d of %d", res.Returned(), res.Available())
	}
	first := res.Jobs()[0]
	if first.Via != "LinkedIn" || first.Link != "https://example.com/1" {
		t.Errorf("normalization lost fields: %+v", first)
	}
	if first.Description != "Ship things" {
		t.Errorf("expected flattened description, got %q", first.Description)
	}
}

func TestDispatch_KeywordModeSendsRawQuery(t *testing.T) {
	var gotQ string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQ = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(listingsBody))
	})

	req := dispatch.NewJobRequest(dispatch.JobParams{
		Title:    "software engineer",
		Location: "New York",
		Country:  "USA",
		Keyword:  "any openings in Dallas",
	}, time.Second)
	res := client.Dispatch(context.Background(), req)

	if gotQ != "any openings in Dallas" {
		t.Errorf("keyword mode must send the raw query, got %q", gotQ)
	}
	// Keyword cap of 3 applies instead of the title cap.
	if res.Returned() != 3 {
		t.Errorf("expected keyword cap of 3, got %d", res.Returned())
	}
}

func TestDispatch_ErrorFieldInOKResponse(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error": "Google Jobs hasn't returned any results for this query."}`))
	})

	res := client.Dispatch(context.Background(), dispatch.NewJobRequest(dispatch.JobParams{Title: "x"}, time.Second))
	if res.Status() != dispatch.StatusFailed {
		t.Fatalf("expected failed, got %s", res.Status())
	}
	if res.Kind() != domain.KindUnknown {
		t.Errorf("expected unknown kind, got %s", res.Kind())
	}
}

func TestDispatch_RateLimited(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	res := client.Dispatch(context.Background(), dispatch.NewJobRequest(dispatch.JobParams{Title: "x"}, time.Second))
	if res.Status() != dispatch.StatusFailed || res.Kind() != domain.KindRateLimited {
		t.Errorf("expected failed/rate_limited, got %s/%s", res.Status(), res.Kind())
	}
}

func TestDispatch_TimeoutYieldsTimedOut(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	})

	req := dispatch.NewJobRequest(dispatch.JobParams{Title: "x"}, 30*time.Millisecond)
	res := client.Dispatch(context.Background(), req)
	if res.Status() != dispatch.StatusTimedOut {
		t.Fatalf("expected timed out, got %s (%s)", res.Status(), res.Message())
	}
}
