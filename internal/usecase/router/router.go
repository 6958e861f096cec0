// Package router maps free-text queries onto capability dispatch requests.
// Routing is deterministic and rule-based; it never fails and never returns
// an empty request set.
package router

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pathwise-io/pathwise/internal/domain"
	"github.com/pathwise-io/pathwise/internal/domain/dispatch"
)

// Config holds routing defaults and fan-out bounds.
type Config struct {
	DefaultQuery        string
	DefaultCapabilities []domain.Capability
	DefaultDepartments  []string
	DefaultJobTitle     string
	DefaultLocation     string
	DefaultCountry      string
	MaxDepartments      int
	MaxRequests         int

	CourseTimeout  time.Duration
	JobTimeout     time.Duration
	ProjectTimeout time.Duration
}

// Router turns a query into an ordered set of dispatch requests.
type Router struct {
	cfg    Config
	logger *zap.Logger
}

// New creates an intent router.
func New(cfg Config, logger *zap.Logger) *Router {
	return &Router{cfg: cfg, logger: logger}
}

// Route inspects the query and builds one dispatch request per implicated
// capability. Empty or whitespace-only queries are replaced by the configured
// default query before routing; if no rule matches at all, the configured
// default capability set is routed with default parameters.
func (r *Router) Route(query string) []dispatch.Request {
	q := strings.TrimSpace(query)
	if q == "" {
		q = r.cfg.DefaultQuery
	}
	lower := strings.ToLower(q)

	var reqs []dispatch.Request

	if depts := departmentsFromRules(lower); len(depts) > 0 || containsAny(lower, courseSignals) {
		reqs = append(reqs, r.courseRequest(lower, depts))
	}

	title, ruleMatched := titleFromRules(lower)
	fallbackTitle, fallbackMatched := extractTitle(q, lower)
	if !ruleMatched && fallbackMatched {
		title = fallbackTitle
	}
	titleMatched := ruleMatched || fallbackMatched

	if titleMatched || containsAny(lower, jobSignals) {
		reqs = append(reqs, r.jobRequest(q, lower, title, titleMatched))
	}

	if ruleMatched || containsAny(lower, projectSignals) {
		reqs = append(reqs, r.projectRequest(lower))
	}

	if len(reqs) == 0 {
		reqs = r.defaultRequests(lower)
	}
	if len(reqs) > r.cfg.MaxRequests {
		reqs = reqs[:r.cfg.MaxRequests]
	}

	caps := make([]string, 0, len(reqs))
	for _, req := range reqs {
		caps = append(caps, req.Capability().String())
	}
	r.logger.Debug("routed query",
		zap.String("query", q),
		zap.Strings("capabilities", caps),
	)
	return reqs
}

func (r *Router) courseRequest(lower string, depts []string) dispatch.Request {
	if len(depts) == 0 {
		depts = append([]string(nil), r.cfg.DefaultDepartments...)
	}
	if len(depts) > r.cfg.MaxDepartments {
		depts = depts[:r.cfg.MaxDepartments]
	}
	return dispatch.NewCourseRequest(dispatch.CourseParams{
		Departments: depts,
		LevelFilter: classLevelFromQuery(lower),
	}, r.cfg.CourseTimeout)
}

func (r *Router) jobRequest(q, lower, title string, titleMatched bool) dispatch.Request {
	params := dispatch.JobParams{
		Title:    r.cfg.DefaultJobTitle,
		Location: r.cfg.DefaultLocation,
		Country:  r.cfg.DefaultCountry,
	}
	if titleMatched {
		params.Title = title
	} else {
		// No extractable title: fall back to a keyword search of the raw query.
		params.Keyword = q
	}

	if loc, country, ok := extractLocation(q, lower); ok {
		params.Location = loc
		if country != "" {
			params.Country = country
		}
	}
	return dispatch.NewJobRequest(params, r.cfg.JobTimeout)
}

func (r *Router) projectRequest(lower string) dispatch.Request {
	return dispatch.NewProjectRequest(dispatch.ProjectParams{
		CareerGoal:      lower,
		ExperienceLevel: levelFromQuery(lower),
	}, r.cfg.ProjectTimeout)
}

// defaultRequests builds the configured fallback set when nothing matched.
func (r *Router) defaultRequests(lower string) []dispatch.Request {
	reqs := make([]dispatch.Request, 0, len(r.cfg.DefaultCapabilities))
	for _, c := range r.cfg.DefaultCapabilities {
		switch c {
		case domain.CourseSearch:
			reqs = append(reqs, r.courseRequest(lower, nil))
		case domain.JobSearch:
			reqs = append(reqs, dispatch.NewJobRequest(dispatch.JobParams{
				Title:    r.cfg.DefaultJobTitle,
				Location: r.cfg.DefaultLocation,
				Country:  r.cfg.DefaultCountry,
			}, r.cfg.JobTimeout))
		case domain.ProjectSearch:
			reqs = append(reqs, r.projectRequest(lower))
		}
	}
	return reqs
}

// extractTitle pulls a free-form job title from the text before the location
// clause, trimming filler tokens from both ends. It only accepts fragments
// naming a recognizable role noun.
func extractTitle(q, lower string) (string, bool) {
	frag := q
	if idx := strings.Index(lower, " in "); idx >= 0 {
		frag = q[:idx]
	}

	words := strings.Fields(frag)
	for len(words) > 0 {
		if _, ok := leadingFiller[strings.ToLower(words[0])]; !ok {
			break
		}
		words = words[1:]
	}
	for len(words) > 0 {
		if _, ok := trailingFiller[strings.ToLower(words[len(words)-1])]; !ok {
			break
		}
		words = words[:len(words)-1]
	}
	if len(words) == 0 {
		return "", false
	}

	title := strings.Join(words, " ")
	if !containsAny(strings.ToLower(title), roleNouns) {
		return "", false
	}
	return title, true
}

// extractLocation parses the "... in <location>[, <country>]" clause.
// Case is preserved from the original query; trailing filler words
// ("area", "jobs") are stripped before the comma split.
func extractLocation(q, lower string) (location, country string, ok bool) {
	idx := strings.Index(lower, " in ")
	if idx < 0 {
		return "", "", false
	}

	clause := strings.TrimSpace(q[idx+len(" in "):])
	clause = trimLocationFiller(clause)
	if clause == "" {
		return "", "", false
	}

	if loc, ctry, found := strings.Cut(clause, ","); found {
		return strings.TrimSpace(loc), strings.TrimSpace(ctry), true
	}
	return clause, "", true
}

func trimLocationFiller(clause string) string {
	for {
		trimmed := false
		for _, filler := range locationFiller {
			suffix := " " + filler
			if len(clause) > len(suffix) && strings.EqualFold(clause[len(clause)-len(suffix):], suffix) {
				clause = strings.TrimSpace(clause[:len(clause)-len(suffix)])
				trimmed = true
			}
		}
		if !trimmed {
			return clause
		}
	}
}
