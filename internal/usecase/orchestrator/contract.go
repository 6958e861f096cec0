package orchestrator

import (
	"context"

	"github.com/pathwise-io/pathwise/internal/domain/dispatch"
)

// Router maps a query onto dispatch requests.
type Router interface {
	Route(query string) []dispatch.Request
}

// Client executes one dispatch request against a single capability.
// Implementations apply the request timeout themselves and never return an
// error: every failure mode is encoded in the result status.
type Client interface {
	Dispatch(ctx context.Context, req dispatch.Request) dispatch.Result
}
