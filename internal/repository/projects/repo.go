// Package projects serves the ProjectSearch capability from an in-process
// curated catalog. No network call is involved; selection, filtering, and
// ranking are pure.
package projects

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/pathwise-io/pathwise/internal/domain/dispatch"
	"github.com/pathwise-io/pathwise/internal/domain/record"
)

// Repository recommends portfolio projects and skills for a career goal.
type Repository struct {
	maxResults int
	logger     *zap.Logger
}

// New creates a project recommendation repository.
func New(maxResults int, logger *zap.Logger) *Repository {
	return &Repository{maxResults: maxResults, logger: logger}
}

// Dispatch selects candidate projects by career-goal category, filters by
// experience level, and returns the top candidates by portfolio-value rank.
func (r *Repository) Dispatch(_ context.Context, req dispatch.Request) dispatch.Result {
	params := req.Projects()
	goal := strings.ToLower(params.CareerGoal)
	level := strings.ToLower(params.ExperienceLevel)

	categories := categoriesFor(goal)

	var candidates []record.Project
	for _, c := range categories {
		candidates = append(candidates, catalog[c]...)
	}
	candidates = record.Dedup(candidates)

	candidates = filterByLevel(candidates, level)

	record.SortByValue(candidates)

	available := len(candidates)
	if available > r.maxResults {
		candidates = candidates[:r.maxResults]
	}

	r.logger.Debug("project recommendations selected",
		zap.String("career_goal", goal),
		zap.String("experience_level", level),
		zap.Strings("categories", categories),
		zap.Int("returned", len(candidates)),
	)
	return dispatch.NewProjectResult(candidates, available, skillsFor(goal))
}

// categoriesFor maps a career goal onto topic categories, first-match order,
// deduplicated. Falls back to the default category pair.
func categoriesFor(goal string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, rule := range categoryRules {
		if !containsAny(goal, rule.phrases) {
			continue
		}
		for _, c := range rule.categories {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return defaultCategories
	}
	return out
}

// filterByLevel keeps candidates whose difficulty label contains the
// requested level. "all" disables the filter, and "intermediate" passes every
// candidate through. A filter that would empty the list is discarded so that
// existing candidates are never filtered down to nothing.
func filterByLevel(candidates []record.Project, level string) []record.Project {
	if level == "" || level == "all" {
		return candidates
	}
	var filtered []record.Project
	for _, p := range candidates {
		if strings.Contains(strings.ToLower(p.Difficulty), level) || level == "intermediate" {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == 0 {
		return candidates
	}
	return filtered
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
