package dispatch

import (
	"github.com/pathwise-io/pathwise/internal/domain"
	"github.com/pathwise-io/pathwise/internal/domain/record"
)

// Status is the terminal state of a dispatch.
type Status string

// Terminal dispatch states.
const (
	StatusOK       Status = "ok"
	StatusFailed   Status = "failed"
	StatusTimedOut Status = "timed_out"
)

// Result is the outcome of one capability invocation. Record slices are typed
// per capability; only the slice matching the capability is populated.
type Result struct {
	capability domain.Capability
	status     Status
	kind       domain.Kind
	message    string

	courses  []record.Course
	jobs     []record.Job
	projects []record.Project
	skills   map[string][]string

	returned  int
	available int
}

// NewCourseResult creates an Ok CourseSearch result.
// available is the pre-truncation record count.
func NewCourseResult(courses []record.Course, available int) Result {
	return Result{
		capability: domain.CourseSearch,
		status:     StatusOK,
		courses:    courses,
		returned:   len(courses),
		available:  available,
	}
}

// NewJobResult creates an Ok JobSearch result.
func NewJobResult(jobs []record.Job, available int) Result {
	return Result{
		capability: domain.JobSearch,
		status:     StatusOK,
		jobs:       jobs,
		returned:   len(jobs),
		available:  available,
	}
}

// NewProjectResult creates an Ok ProjectSearch result with skill
// recommendations keyed by skill category.
func NewProjectResult(projects []record.Project, available int, skills map[string][]string) Result {
	return Result{
		capability: domain.ProjectSearch,
		status:     StatusOK,
		projects:   projects,
		skills:     skills,
		returned:   len(projects),
		available:  available,
	}
}

// NewFailed creates a Failed result carrying the error kind and message.
func NewFailed(capability domain.Capability, kind domain.Kind, message string) Result {
	return Result{capability: capability, status: StatusFailed, kind: kind, message: message}
}

// NewTimedOut creates a TimedOut result.
func NewTimedOut(capability domain.Capability) Result {
	return Result{
		capability: capability,
		status:     StatusTimedOut,
		kind:       domain.KindTimedOut,
		message:    "deadline exceeded",
	}
}

// Capability returns the capability this result belongs to.
func (r Result) Capability() domain.Capability { return r.capability }

// Status returns the terminal state.
func (r Result) Status() Status { return r.status }

// Kind returns the failure kind for Failed and TimedOut results.
func (r Result) Kind() domain.Kind { return r.kind }

// Message returns the failure message.
func (r Result) Message() string { return r.message }

// Courses returns the CourseSearch records.
func (r Result) Courses() []record.Course { return r.courses }

// Jobs returns the JobSearch records.
func (r Result) Jobs() []record.Job { return r.jobs }

// Projects returns the ProjectSearch records.
func (r Result) Projects() []record.Project { return r.projects }

// Skills returns recommended skills by category (ProjectSearch only).
func (r Result) Skills() map[string][]string { return r.skills }

// Returned is the record count after the capability's cap was applied.
func (r Result) Returned() int { return r.returned }

// Available is the record count before truncation.
func (r Result) Available() int { return r.available }

// Truncated reports whether the capability's cap dropped records.
func (r Result) Truncated() bool { return r.available > r.returned }
