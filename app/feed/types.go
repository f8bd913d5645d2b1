package feed

import (
	"time"
)

// Item is one feed-derived notification. It is constructed fresh each fetch
// cycle and discarded after delivery; only the fingerprint persists.
type Item struct {
	Fingerprint string
	Title       string
	Link        string
	Summary     string
	PublishedAt *time.Time
	Source      string

	Details  Details
	Enriched bool
}

// Details holds the enrichment fields. Empty string means unknown; the
// renderer substitutes sentinel text, templates never see a blank.
type Details struct {
	ExamDate        string
	FormDates       string
	Authority       string
	Institute       string
	Eligibility     string
	Pattern         string
	Syllabus        string
	Strategy        string
	Insights        string
	Selection       string
	Seats           string
	Salary          string
	WhyExam         string
	AdmitCardStatus string
	ResultStatus    string
	MinAge          string
	MaxAge          string
	Fee             string
	Qualification   string
}

// Source is one entry of the ordered feed source list.
type Source struct {
	URL  string `yaml:"url"`
	Name string `yaml:"name"`
}
