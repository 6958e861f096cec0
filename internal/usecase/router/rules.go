package router

import "strings"

// The routing tables below are ordered data: the router tests them top to
// bottom and first match wins where a single value is produced. Matching is
// substring-based on the lowercased query.

// titleRule maps query phrases to a canonical job title.
type titleRule struct {
	phrases []string
	title   string
}

var titleRules = []titleRule{
	{phrases: []string{"data scientist"}, title: "data scientist"},
	{phrases: []string{"machine learning", "ml engineer"}, title: "machine learning engineer"},
	{phrases: []string{"devops"}, title: "devops engineer"},
	{phrases: []string{"frontend"}, title: "frontend developer"},
	{phrases: []string{"backend"}, title: "backend developer"},
	{phrases: []string{"full-stack", "full stack"}, title: "full stack developer"},
}

// deptRule contributes department codes to the course search. Unlike title
// rules, every matching rule contributes; codes are deduplicated in
// first-match order and capped afterwards.
type deptRule struct {
	phrases     []string
	departments []string
}

var deptRules = []deptRule{
	{phrases: []string{"computer science", "cs", "software", "programming"}, departments: []string{"CS"}},
	{phrases: []string{"data science", "data", "analytics", "ml", "machine learning"}, departments: []string{"CS", "STAT", "MATH"}},
	{phrases: []string{"math"}, departments: []string{"MATH"}},
	{phrases: []string{"engineering"}, departments: []string{"SE", "CS"}},
}

// Capability activation signals.
var (
	jobSignals     = []string{"job", "salary", "salaries", "hiring", "opening", "position", "vacanc"}
	courseSignals  = []string{"course", "class", "learn", "study", "studies", "degree", "education", "curriculum"}
	projectSignals = []string{"project", "portfolio", "build", "showcase"}
)

// roleNouns let the router accept a free-form job title ("python developer")
// that no title rule covers.
var roleNouns = []string{"developer", "engineer", "scientist", "analyst", "designer", "architect", "administrator", "manager"}

// Filler tokens stripped from extracted job-title fragments.
var (
	leadingFiller  = map[string]struct{}{"find": {}, "search": {}, "show": {}, "get": {}, "list": {}, "me": {}, "any": {}, "some": {}, "i": {}, "want": {}, "need": {}, "looking": {}, "for": {}}
	trailingFiller = map[string]struct{}{"job": {}, "jobs": {}, "position": {}, "positions": {}, "opening": {}, "openings": {}, "role": {}, "roles": {}, "listing": {}, "listings": {}, "career": {}, "careers": {}, "plan": {}}
)

// locationFiller words are trimmed from the tail of a location clause.
var locationFiller = []string{"area", "jobs", "job"}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// titleFromRules returns the first matching canonical job title.
func titleFromRules(lower string) (string, bool) {
	for _, rule := range titleRules {
		if containsAny(lower, rule.phrases) {
			return rule.title, true
		}
	}
	return "", false
}

// departmentsFromRules accumulates department contributions from every
// matching rule, deduplicated in first-match order.
func departmentsFromRules(lower string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, rule := range deptRules {
		if !containsAny(lower, rule.phrases) {
			continue
		}
		for _, d := range rule.departments {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			out = append(out, d)
		}
	}
	return out
}

// levelFromQuery extracts an experience level keyword, defaulting to intermediate.
func levelFromQuery(lower string) string {
	switch {
	case strings.Contains(lower, "all levels") || strings.Contains(lower, "any level"):
		return "all"
	case strings.Contains(lower, "beginner") || strings.Contains(lower, "entry level") || strings.Contains(lower, "entry-level"):
		return "beginner"
	case strings.Contains(lower, "advanced"):
		return "advanced"
	}
	return "intermediate"
}

// classLevelFromQuery extracts an optional course level filter.
func classLevelFromQuery(lower string) string {
	switch {
	case strings.Contains(lower, "undergraduate"):
		return "undergraduate"
	case strings.Contains(lower, "graduate"):
		return "graduate"
	}
	return ""
}
