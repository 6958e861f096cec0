// Package orchestrator fans a query out to capability clients and merges
// their results into a single response envelope.
package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pathwise-io/pathwise/internal/domain"
	"github.com/pathwise-io/pathwise/internal/domain/dispatch"
	"github.com/pathwise-io/pathwise/internal/metrics"
)

// Service is the top-level entry point for orchestrated queries.
type Service struct {
	router  Router
	clients map[domain.Capability]Client
	logger  *zap.Logger
}

// New creates an orchestrator over the given capability clients.
func New(router Router, clients map[domain.Capability]Client, logger *zap.Logger) *Service {
	return &Service{router: router, clients: clients, logger: logger}
}

// Orchestrate routes the query, dispatches every resulting request
// concurrently, and assembles the envelope. One capability's failure or
// timeout never aborts its siblings; the only error path is an internal
// defect such as a routed capability with no registered client.
func (s *Service) Orchestrate(ctx context.Context, query string) (dispatch.Envelope, error) {
	reqs := s.router.Route(query)

	for _, req := range reqs {
		if _, ok := s.clients[req.Capability()]; !ok {
			return dispatch.Envelope{}, fmt.Errorf("%w for capability %s", domain.ErrNoClient, req.Capability())
		}
	}

	results := make([]dispatch.Result, len(reqs))
	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req dispatch.Request) {
			defer wg.Done()
			results[i] = s.dispatch(ctx, req)
		}(i, req)
	}
	wg.Wait()

	byCapability := make(map[domain.Capability]dispatch.Result, len(results))
	var notes []string
	for _, res := range results {
		byCapability[res.Capability()] = res
		if res.Truncated() {
			notes = append(notes, fmt.Sprintf("Showing first %d of %d %s",
				res.Returned(), res.Available(), res.Capability().Noun()))
		}
	}

	return dispatch.NewEnvelope(query, byCapability, strings.Join(notes, "; ")), nil
}

// dispatch runs one client call with instrumentation. A panicking client is
// captured as a Failed result so siblings still complete.
func (s *Service) dispatch(ctx context.Context, req dispatch.Request) (res dispatch.Result) {
	capability := req.Capability()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("capability client panicked",
				zap.String("capability", capability.String()),
				zap.Any("panic", r),
				zap.Stack("stacktrace"),
			)
			res = dispatch.NewFailed(capability, domain.KindUnknown, fmt.Sprintf("panic: %v", r))
		}

		duration := time.Since(start)
		metrics.DispatchRequestsTotal.WithLabelValues(capability.String(), string(res.Status())).Inc()
		metrics.DispatchDuration.WithLabelValues(capability.String()).Observe(duration.Seconds())
		if res.Status() == dispatch.StatusOK {
			metrics.RecordsReturnedTotal.WithLabelValues(capability.String()).Add(float64(res.Returned()))
		}

		s.logger.Info("dispatch completed",
			zap.String("capability", capability.String()),
			zap.String("status", string(res.Status())),
			zap.Duration("latency", duration),
			zap.Int("returned", res.Returned()),
			zap.Int("available", res.Available()),
		)
	}()

	return s.clients[capability].Dispatch(ctx, req)
}
