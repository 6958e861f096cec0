// Package chi exposes the orchestrator over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pathwise-io/pathwise/internal/domain"
	"github.com/pathwise-io/pathwise/internal/domain/dispatch"
)

// Orchestrator runs one query end to end.
type Orchestrator interface {
	Orchestrate(ctx context.Context, query string) (dispatch.Envelope, error)
}

// Advisor turns an envelope into a narrative plan. Optional; when absent the
// advise flag is ignored.
type Advisor interface {
	Advise(ctx context.Context, env dispatch.Envelope) (string, error)
}

// Server is the HTTP API server.
type Server struct {
	orchestrator Orchestrator
	advisor      Advisor
	metrics      http.Handler
	logger       *zap.Logger
}

// NewServer creates an HTTP API server. advisor may be nil.
func NewServer(orchestrator Orchestrator, advisor Advisor, logger *zap.Logger) *Server {
	return &Server{
		orchestrator: orchestrator,
		advisor:      advisor,
		metrics:      promhttp.Handler(),
		logger:       logger,
	}
}

// Routes mounts the API endpoints on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/plan", s.CreatePlan)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// CreatePlan handles POST /v1/plan.
func (s *Server) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	env, err := s.orchestrator.Orchestrate(r.Context(), req.Query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := envelopeToResponse(env)

	if req.Advise && s.advisor != nil {
		plan, err := s.advisor.Advise(r.Context(), env)
		if err != nil {
			// Advice is additive; the dispatched results still go out.
			s.logger.Warn("advisor failed", zap.Error(err))
			resp.Note = appendNote(resp.Note, "advice unavailable")
		} else {
			resp.Plan = plan
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	s.metrics.ServeHTTP(w, r)
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNoClient) {
		s.logger.Error("orchestration defect", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, domain.ErrNoClient.Error())
		return
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

func appendNote(note, extra string) string {
	if note == "" {
		return extra
	}
	return strings.Join([]string{note, extra}, "; ")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
