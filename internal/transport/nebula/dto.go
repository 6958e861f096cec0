package nebula

import (
	"github.com/pathwise-io/pathwise/internal/domain"
	"github.com/pathwise-io/pathwise/internal/domain/record"
)

// catalogResponse is the wire shape of GET /course/all.
type catalogResponse struct {
	Data []courseDTO `json:"data"`
}

// courseDTO is one raw catalog record. Missing fields decode to empty values;
// normalization is total and never fails on a record.
type courseDTO struct {
	SubjectPrefix string `json:"subject_prefix"`
	CourseNumber  string `json:"course_number"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	CreditHours   string `json:"credit_hours"`
	ClassLevel    string `json:"class_level"`
	School        string `json:"school"`
}

// toRecord normalizes a raw catalog record into the canonical course shape,
// truncating the description for display.
func (d courseDTO) toRecord(descLimit int) record.Course {
	return record.Course{
		Subject:     d.SubjectPrefix,
		Number:      d.CourseNumber,
		Title:       d.Title,
		Description: domain.Truncate(d.Description, descLimit),
		CreditHours: d.CreditHours,
		Level:       d.ClassLevel,
		School:      d.School,
	}
}
