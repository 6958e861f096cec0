// Package record defines the canonical, provider-agnostic record shapes
// produced from raw downstream results, plus the dedup rules over them.
package record

// Keyed is any normalized record carrying a stable dedup key.
type Keyed interface {
	DedupKey() string
}

// Course is a normalized catalog entry.
type Course struct {
	Subject     string `json:"subject"`
	Number      string `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreditHours string `json:"credit_hours"`
	Level       string `json:"level"`
	School      string `json:"school"`
}

// DedupKey identifies a course by (department, course number).
func (c Course) DedupKey() string { return c.Subject + "\x00" + c.Number }

// Code returns the display code, e.g. "CS 3345".
func (c Course) Code() string { return c.Subject + " " + c.Number }

// Job is a normalized job listing.
type Job struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Via         string `json:"via"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// DedupKey identifies a listing by (title, company, location).
func (j Job) DedupKey() string {
	return j.Title + "\x00" + j.Company + "\x00" + j.Location
}

// Project is a curated portfolio project template.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Difficulty  string   `json:"difficulty"`
	Duration    string   `json:"duration"`
	Value       string   `json:"value"`
}

// DedupKey identifies a project by name.
func (p Project) DedupKey() string { return p.Name }

// valueRanks orders the fixed portfolio-value scale; unrecognized values rank lowest.
var valueRanks = map[string]int{
	"Very High":   4,
	"High":        3,
	"Medium-High": 2,
	"Medium":      1,
}

// ValueRank returns the numeric rank of the project's portfolio value.
func (p Project) ValueRank() int { return valueRanks[p.Value] }
