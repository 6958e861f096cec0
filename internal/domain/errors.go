package domain

import (
	"context"
	"errors"
)

var (
	// ErrMissingCredential signals an absent provider API key (configuration error).
	ErrMissingCredential = errors.New("missing credential")
	// ErrUnauthorized signals a rejected credential on a downstream call.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound signals a missing downstream resource.
	ErrNotFound = errors.New("not found")
	// ErrRateLimited signals a downstream rate limit hit.
	ErrRateLimited = errors.New("rate limited")
	// ErrNetwork signals a connection, DNS, or transport failure.
	ErrNetwork = errors.New("network error")
	// ErrMalformed signals an unparseable downstream response body.
	ErrMalformed = errors.New("malformed response")
	// ErrNoClient signals a capability with no registered client (internal defect).
	ErrNoClient = errors.New("no client registered")
)

// Kind classifies a dispatch failure for the result envelope.
type Kind string

// Failure kinds surfaced in dispatch results.
const (
	KindConfig       Kind = "config"
	KindUnauthorized Kind = "unauthorized"
	KindNotFound     Kind = "not_found"
	KindRateLimited  Kind = "rate_limited"
	KindNetwork      Kind = "network"
	KindMalformed    Kind = "malformed"
	KindTimedOut     Kind = "timed_out"
	KindUnknown      Kind = "unknown"
)

// KindOf classifies an error into a failure kind via the sentinel chain.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimedOut
	case errors.Is(err, ErrMissingCredential):
		return KindConfig
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrRateLimited):
		return KindRateLimited
	case errors.Is(err, ErrNetwork):
		return KindNetwork
	case errors.Is(err, ErrMalformed):
		return KindMalformed
	}
	return KindUnknown
}

func (k Kind) String() string { return string(k) }

// Human returns the phrase used in user-facing unavailability notes.
func (k Kind) Human() string {
	switch k {
	case KindConfig:
		return "not configured"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindRateLimited:
		return "rate limited"
	case KindNetwork:
		return "network error"
	case KindMalformed:
		return "malformed response"
	case KindTimedOut:
		return "timed out"
	}
	return "unknown error"
}
