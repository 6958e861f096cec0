package projects

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pathwise-io/pathwise/internal/domain/dispatch"
)

func projectRequest(goal, level string) dispatch.Request {
	return dispatch.NewProjectRequest(dispatch.ProjectParams{
		CareerGoal:      goal,
		ExperienceLevel: level,
	}, time.Second)
}

func TestDispatch_MachineLearningPullsDataScience(t *testing.T) {
	repo := New(3, zap.NewNop())

	res := repo.Dispatch(context.Background(), projectRequest("machine learning engineer", "advanced"))
	if res.Status() != dispatch.StatusOK {
		t.Fatalf("expected ok, got %s", res.Status())
	}
	// machine_learning (3 projects) plus data_science (2) are candidates.
	if res.Available() != 5 {
		t.Errorf("expected 5 candidates, got %d", res.Available())
	}
	if res.Returned() != 3 {
		t.Fatalf("expected cap of 3, got %d", res.Returned())
	}
	for _, p := range res.Projects() {
		if p.Value != "Very High" {
			t.Errorf("ranking must surface the highest value projects first, got %q (%s)", p.Value, p.Name)
		}
	}
}

func TestDispatch_LevelFilterFallsBackWhenEmpty(t *testing.T) {
	repo := New(3, zap.NewNop())

	// No web development project is labeled beginner; the filter must not
	// empty the candidate list.
	res := repo.Dispatch(context.Background(), projectRequest("web developer", "beginner"))
	if res.Returned() == 0 {
		t.Fatal("level filter emptied the candidate list")
	}
	if res.Available() != 3 {
		t.Errorf("expected 3 candidates, got %d", res.Available())
	}
}

func TestDispatch_IntermediateActsAsWildcard(t *testing.T) {
	repo := New(10, zap.NewNop())

	res := repo.Dispatch(context.Background(), projectRequest("machine learning engineer", "intermediate"))
	// Advanced-only projects still pass an intermediate filter.
	if res.Returned() != 5 {
		t.Errorf("expected all 5 candidates, got %d", res.Returned())
	}
}

func TestDispatch_UnknownGoalUsesDefaults(t *testing.T) {
	repo := New(3, zap.NewNop())

	res := repo.Dispatch(context.Background(), projectRequest("underwater basket weaving", "all"))
	if res.Status() != dispatch.StatusOK {
		t.Fatalf("expected ok, got %s", res.Status())
	}
	// general (2) plus web_development (3) fallback categories.
	if res.Available() != 5 {
		t.Errorf("expected 5 candidates, got %d", res.Available())
	}
	for _, p := range res.Projects() {
		if p.Value != "High" {
			t.Errorf("expected the High-value web projects first, got %q (%s)", p.Value, p.Name)
		}
	}
}

func TestDispatch_SkillsAccompanyProjects(t *testing.T) {
	repo := New(3, zap.NewNop())

	res := repo.Dispatch(context.Background(), projectRequest("devops engineer", "advanced"))
	skills := res.Skills()
	if len(skills) == 0 {
		t.Fatal("expected skill recommendations")
	}
	if _, ok := skills["devops"]; !ok {
		t.Errorf("expected devops skills, got categories %v", keys(skills))
	}
	if _, ok := skills["soft_skills"]; !ok {
		t.Errorf("expected soft skills, got categories %v", keys(skills))
	}
}

func keys(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
