package domain

// Capability identifies one independently dispatchable downstream query type.
type Capability string

// Downstream capabilities.
const (
	CourseSearch  Capability = "course_search"
	JobSearch     Capability = "job_search"
	ProjectSearch Capability = "project_search"
)

// Capabilities lists every known capability in canonical order.
func Capabilities() []Capability {
	return []Capability{CourseSearch, JobSearch, ProjectSearch}
}

// ParseCapability maps a config/API name to a Capability.
func ParseCapability(s string) (Capability, bool) {
	switch s {
	case "courses", "course_search":
		return CourseSearch, true
	case "jobs", "job_search":
		return JobSearch, true
	case "projects", "project_search":
		return ProjectSearch, true
	}
	return "", false
}

func (c Capability) String() string { return string(c) }

// Noun returns the plural record noun used in user-facing notes.
func (c Capability) Noun() string {
	switch c {
	case CourseSearch:
		return "courses"
	case JobSearch:
		return "jobs"
	case ProjectSearch:
		return "projects"
	}
	return "records"
}
