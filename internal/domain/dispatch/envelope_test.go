package dispatch

import (
	"testing"

	"github.com/pathwise-io/pathwise/internal/domain"
)

func TestEnvelope_ResultsIsACopy(t *testing.T) {
	env := NewEnvelope("q", map[domain.Capability]Result{
		domain.JobSearch: NewJobResult(nil, 0),
	}, "")

	results := env.Results()
	delete(results, domain.JobSearch)
	results[domain.CourseSearch] = NewCourseResult(nil, 0)

	if _, ok := env.Result(domain.JobSearch); !ok {
		t.Error("deleting from the returned map must not reach the envelope")
	}
	if _, ok := env.Result(domain.CourseSearch); ok {
		t.Error("inserting into the returned map must not reach the envelope")
	}
	if len(env.Results()) != 1 {
		t.Errorf("expected 1 result, got %d", len(env.Results()))
	}
}
