package serpapi

import (
	"github.com/pathwise-io/pathwise/internal/domain"
	"github.com/pathwise-io/pathwise/internal/domain/record"
)

// searchResponse is the wire shape of GET /search.json.
type searchResponse struct {
	JobsResults []jobDTO `json:"jobs_results"`
	Error       string   `json:"error"`
}

// jobDTO is one raw listing. Missing fields decode to empty values.
type jobDTO struct {
	Title        string      `json:"title"`
	CompanyName  string      `json:"company_name"`
	Location     string      `json:"location"`
	Source       string      `json:"source"`
	Description  string      `json:"description"`
	ApplyOptions []applyLink `json:"apply_options"`
}

type applyLink struct {
	Link string `json:"link"`
}

// toRecord normalizes a raw listing, flattening and truncating the
// description for one-line display.
func (d jobDTO) toRecord(descLimit int) record.Job {
	link := ""
	if len(d.ApplyOptions) > 0 {
		link = d.ApplyOptions[0].Link
	}
	return record.Job{
		Title:       d.Title,
		Company:     d.CompanyName,
		Location:    d.Location,
		Via:         d.Source,
		Link:        link,
		Description: domain.Truncate(domain.Flatten(d.Description), descLimit),
	}
}
