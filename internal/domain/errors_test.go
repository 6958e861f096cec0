package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestKindOf_SentinelChain(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{fmt.Errorf("nebula api key: %w", ErrMissingCredential), KindConfig},
		{fmt.Errorf("catalog API status 401: %w", ErrUnauthorized), KindUnauthorized},
		{fmt.Errorf("catalog API status 404: %w", ErrNotFound), KindNotFound},
		{fmt.Errorf("catalog API status 429: %w", ErrRateLimited), KindRateLimited},
		{fmt.Errorf("dial tcp: %w", ErrNetwork), KindNetwork},
		{fmt.Errorf("decode: %w", ErrMalformed), KindMalformed},
		{fmt.Errorf("fetch: %w", context.DeadlineExceeded), KindTimedOut},
		{errors.New("something else"), KindUnknown},
	}
	for _, c := range cases {
		if got := KindOf(c.err); got != c.want {
			t.Errorf("KindOf(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestKindOf_DeadlineWinsOverSentinels(t *testing.T) {
	// A timeout observed through a wrapped network error is still a timeout.
	err := fmt.Errorf("%w: %w", ErrNetwork, context.DeadlineExceeded)
	if got := KindOf(err); got != KindTimedOut {
		t.Errorf("expected KindTimedOut, got %v", got)
	}
}

func TestKindHuman(t *testing.T) {
	if got := Kind("bogus").Human(); got != "unknown error" {
		t.Errorf("expected fallback phrase, got %q", got)
	}
	if got := KindRateLimited.Human(); got != "rate limited" {
		t.Errorf("expected %q, got %q", "rate limited", got)
	}
}

func TestParseCapability(t *testing.T) {
	for name, want := range map[string]Capability{
		"courses":        CourseSearch,
		"course_search":  CourseSearch,
		"jobs":           JobSearch,
		"projects":       ProjectSearch,
		"project_search": ProjectSearch,
	} {
		got, ok := ParseCapability(name)
		if !ok || got != want {
			t.Errorf("ParseCapability(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := ParseCapability("salaries"); ok {
		t.Error("expected unknown capability name to be rejected")
	}
}
