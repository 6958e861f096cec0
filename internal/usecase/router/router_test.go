package router

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pathwise-io/pathwise/internal/domain"
	"github.com/pathwise-io/pathwise/internal/domain/dispatch"
)

func testConfig() Config {
	return Config{
		DefaultQuery:        "software engineer career plan",
		DefaultCapabilities: []domain.Capability{domain.CourseSearch, domain.JobSearch, domain.ProjectSearch},
		DefaultDepartments:  []string{"CS"},
		DefaultJobTitle:     "software engineer",
		DefaultLocation:     "New York",
		DefaultCountry:      "USA",
		MaxDepartments:      2,
		MaxRequests:         3,

		CourseTimeout:  15 * time.Second,
		JobTimeout:     10 * time.Second,
		ProjectTimeout: 5 * time.Second,
	}
}

func newTestRouter(cfg Config) *Router {
	return New(cfg, zap.NewNop())
}

func findRequest(reqs []dispatch.Request, c domain.Capability) (dispatch.Request, bool) {
	for _, r := range reqs {
		if r.Capability() == c {
			return r, true
		}
	}
	return dispatch.Request{}, false
}

func TestRoute_FreeFormTitleWithLocation(t *testing.T) {
	reqs := newTestRouter(testConfig()).Route("python developer jobs in Austin, USA")

	if len(reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(reqs))
	}
	req, ok := findRequest(reqs, domain.JobSearch)
	if !ok {
		t.Fatal("expected a job search request")
	}
	p := req.Jobs()
	if p.Title != "python developer" {
		t.Errorf("expected title %q, got %q", "python developer", p.Title)
	}
	if p.Location != "Austin" || p.Country != "USA" {
		t.Errorf("expected Austin, USA, got %q, %q", p.Location, p.Country)
	}
	if p.Keyword != "" {
		t.Errorf("keyword mode must not be used for an extracted title, got %q", p.Keyword)
	}
	if req.Timeout() != 10*time.Second {
		t.Errorf("expected job timeout, got %v", req.Timeout())
	}
}

func TestRoute_EmptyQueryUsesDefaultQuery(t *testing.T) {
	reqs := newTestRouter(testConfig()).Route("   ")

	course, ok := findRequest(reqs, domain.CourseSearch)
	if !ok {
		t.Fatal("expected a course search request")
	}
	if got := course.Courses().Departments; len(got) != 1 || got[0] != "CS" {
		t.Errorf("expected departments [CS], got %v", got)
	}

	job, ok := findRequest(reqs, domain.JobSearch)
	if !ok {
		t.Fatal("expected a job search request")
	}
	if job.Jobs().Title != "software engineer" {
		t.Errorf("expected default title, got %q", job.Jobs().Title)
	}
	if job.Jobs().Location != "New York" {
		t.Errorf("expected default location, got %q", job.Jobs().Location)
	}
}

func TestRoute_DepartmentAccumulationCapped(t *testing.T) {
	reqs := newTestRouter(testConfig()).Route("data science courses and machine learning projects for beginners")

	course, ok := findRequest(reqs, domain.CourseSearch)
	if !ok {
		t.Fatal("expected a course search request")
	}
	depts := course.Courses().Departments
	if len(depts) != 2 || depts[0] != "CS" || depts[1] != "STAT" {
		t.Errorf("expected departments [CS STAT], got %v", depts)
	}

	job, ok := findRequest(reqs, domain.JobSearch)
	if !ok {
		t.Fatal("expected a job search request")
	}
	if job.Jobs().Title != "machine learning engineer" {
		t.Errorf("expected canonical title, got %q", job.Jobs().Title)
	}

	project, ok := findRequest(reqs, domain.ProjectSearch)
	if !ok {
		t.Fatal("expected a project search request")
	}
	if project.Projects().ExperienceLevel != "beginner" {
		t.Errorf("expected beginner level, got %q", project.Projects().ExperienceLevel)
	}
}

func TestRoute_KeywordFallbackWithoutRoleNoun(t *testing.T) {
	reqs := newTestRouter(testConfig()).Route("any openings in Dallas")

	job, ok := findRequest(reqs, domain.JobSearch)
	if !ok {
		t.Fatal("expected a job search request")
	}
	p := job.Jobs()
	if p.Keyword != "any openings in Dallas" {
		t.Errorf("expected raw keyword search, got %q", p.Keyword)
	}
	if p.Location != "Dallas" {
		t.Errorf("expected location Dallas, got %q", p.Location)
	}
	if p.Country != "USA" {
		t.Errorf("expected default country, got %q", p.Country)
	}
}

func TestRoute_TitleRuleActivatesProjects(t *testing.T) {
	reqs := newTestRouter(testConfig()).Route("show me beginner portfolio projects for devops")

	if _, ok := findRequest(reqs, domain.CourseSearch); ok {
		t.Error("no course signal present, course search must not be routed")
	}
	job, ok := findRequest(reqs, domain.JobSearch)
	if !ok {
		t.Fatal("expected a job search request")
	}
	if job.Jobs().Title != "devops engineer" {
		t.Errorf("expected canonical title, got %q", job.Jobs().Title)
	}
	project, ok := findRequest(reqs, domain.ProjectSearch)
	if !ok {
		t.Fatal("expected a project search request")
	}
	if project.Projects().ExperienceLevel != "beginner" {
		t.Errorf("expected beginner level, got %q", project.Projects().ExperienceLevel)
	}
}

func TestRoute_LocationFillerStripped(t *testing.T) {
	reqs := newTestRouter(testConfig()).Route("frontend developer jobs in the Seattle area")

	job, ok := findRequest(reqs, domain.JobSearch)
	if !ok {
		t.Fatal("expected a job search request")
	}
	if got := job.Jobs().Location; got != "the Seattle" {
		t.Errorf("expected filler-trimmed location, got %q", got)
	}
}

func TestRoute_GraduateLevelFilter(t *testing.T) {
	reqs := newTestRouter(testConfig()).Route("graduate data science courses")

	course, ok := findRequest(reqs, domain.CourseSearch)
	if !ok {
		t.Fatal("expected a course search request")
	}
	if got := course.Courses().LevelFilter; got != "graduate" {
		t.Errorf("expected graduate filter, got %q", got)
	}
}

func TestRoute_MaxRequestsBounded(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRequests = 1
	reqs := newTestRouter(cfg).Route("data science courses and machine learning projects")

	if len(reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(reqs))
	}
	if reqs[0].Capability() != domain.CourseSearch {
		t.Errorf("routing order must be preserved under the cap, got %v", reqs[0].Capability())
	}
}
