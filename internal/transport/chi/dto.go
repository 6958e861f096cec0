package chi

import (
	"strings"

	"github.com/pathwise-io/pathwise/internal/domain"
	"github.com/pathwise-io/pathwise/internal/domain/dispatch"
	"github.com/pathwise-io/pathwise/internal/domain/record"
)

// planRequest is the body of POST /v1/plan.
type planRequest struct {
	Query  string `json:"query"`
	Advise bool   `json:"advise,omitempty"`
}

// planResponse is the envelope rendered for the wire. Results are keyed by
// capability name; every requested capability appears, failed ones included.
type planResponse struct {
	Query   string                      `json:"query"`
	Results map[string]capabilityResult `json:"results"`
	Note    string                      `json:"note,omitempty"`
	Plan    string                      `json:"plan,omitempty"`
}

type capabilityResult struct {
	Status    string              `json:"status"`
	Returned  int                 `json:"returned,omitempty"`
	Available int                 `json:"available,omitempty"`
	Courses   []record.Course     `json:"courses,omitempty"`
	Jobs      []record.Job        `json:"jobs,omitempty"`
	Projects  []record.Project    `json:"projects,omitempty"`
	Skills    map[string][]string `json:"recommended_skills,omitempty"`
	Error     *resultError        `json:"error,omitempty"`
}

type resultError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Note    string `json:"note"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Wire error codes.
const (
	codeBadRequest    = "bad_request"
	codeUnauthorized  = "unauthorized"
	codeInternalError = "internal_error"
)

func envelopeToResponse(env dispatch.Envelope) planResponse {
	results := make(map[string]capabilityResult, len(env.Results()))
	for capability, res := range env.Results() {
		results[capability.String()] = resultToDTO(capability, res)
	}
	return planResponse{
		Query:   env.Query(),
		Results: results,
		Note:    env.Note(),
	}
}

func resultToDTO(capability domain.Capability, res dispatch.Result) capabilityResult {
	if res.Status() != dispatch.StatusOK {
		return capabilityResult{
			Status: string(res.Status()),
			Error: &resultError{
				Kind:    res.Kind().String(),
				Message: res.Message(),
				Note:    unavailabilityNote(capability, res.Kind()),
			},
		}
	}

	return capabilityResult{
		Status:    string(res.Status()),
		Returned:  res.Returned(),
		Available: res.Available(),
		Courses:   res.Courses(),
		Jobs:      res.Jobs(),
		Projects:  res.Projects(),
		Skills:    res.Skills(),
	}
}

// unavailabilityNote builds the user-facing phrase for a failed capability,
// e.g. "job search unavailable: rate limited".
func unavailabilityNote(capability domain.Capability, kind domain.Kind) string {
	name := strings.ReplaceAll(capability.String(), "_", " ")
	return name + " unavailable: " + kind.Human()
}
