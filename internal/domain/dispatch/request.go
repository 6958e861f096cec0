// Package dispatch defines the request and result records of one capability
// invocation within an orchestrated query.
package dispatch

import (
	"time"

	"github.com/pathwise-io/pathwise/internal/domain"
)

// CourseParams are the CourseSearch dispatch parameters.
type CourseParams struct {
	Departments []string // non-empty, deduplicated, first-match order
	Keyword     string   // optional substring filter on title/description
	LevelFilter string   // optional class level filter
}

// JobParams are the JobSearch dispatch parameters.
// When Keyword is set the downstream query uses it verbatim instead of the
// composed "{title} in {location}, {country}" form.
type JobParams struct {
	Title    string
	Location string
	Country  string
	Keyword  string
}

// ProjectParams are the ProjectSearch dispatch parameters.
type ProjectParams struct {
	CareerGoal      string
	ExperienceLevel string // beginner, intermediate, advanced, all
}

// Request is one immutable capability invocation. It is constructed by the
// intent router and consumed exactly once by the orchestrator.
type Request struct {
	capability domain.Capability
	courses    CourseParams
	jobs       JobParams
	projects   ProjectParams
	timeout    time.Duration
}

// NewCourseRequest creates a CourseSearch dispatch request.
func NewCourseRequest(p CourseParams, timeout time.Duration) Request {
	return Request{capability: domain.CourseSearch, courses: p, timeout: timeout}
}

// NewJobRequest creates a JobSearch dispatch request.
func NewJobRequest(p JobParams, timeout time.Duration) Request {
	return Request{capability: domain.JobSearch, jobs: p, timeout: timeout}
}

// NewProjectRequest creates a ProjectSearch dispatch request.
func NewProjectRequest(p ProjectParams, timeout time.Duration) Request {
	return Request{capability: domain.ProjectSearch, projects: p, timeout: timeout}
}

// Capability returns the target capability.
func (r Request) Capability() domain.Capability { return r.capability }

// Courses returns the CourseSearch parameters.
func (r Request) Courses() CourseParams { return r.courses }

// Jobs returns the JobSearch parameters.
func (r Request) Jobs() JobParams { return r.jobs }

// Projects returns the ProjectSearch parameters.
func (r Request) Projects() ProjectParams { return r.projects }

// Timeout returns the per-request hard deadline.
func (r Request) Timeout() time.Duration { return r.timeout }
