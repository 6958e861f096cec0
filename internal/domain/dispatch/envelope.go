package dispatch

import "github.com/pathwise-io/pathwise/internal/domain"

// Envelope is the complete per-capability outcome of one orchestrated query.
// It always carries one result per requested capability, failures included.
type Envelope struct {
	query   string
	results map[domain.Capability]Result
	note    string
}

// NewEnvelope creates a response envelope.
func NewEnvelope(query string, results map[domain.Capability]Result, note string) Envelope {
	return Envelope{query: query, results: results, note: note}
}

// Query returns the routed query text.
func (e Envelope) Query() string { return e.query }

// Results returns a copy of the capability-to-result mapping; mutating it
// does not affect the envelope.
func (e Envelope) Results() map[domain.Capability]Result {
	out := make(map[domain.Capability]Result, len(e.results))
	for c, r := range e.results {
		out[c] = r
	}
	return out
}

// Result returns the result for one capability.
func (e Envelope) Result(c domain.Capability) (Result, bool) {
	r, ok := e.results[c]
	return r, ok
}

// Note returns the aggregated truncation note, empty when nothing was cut.
func (e Envelope) Note() string { return e.note }
