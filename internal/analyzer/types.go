package analyzer

import (
	"errors"

	"github.com/cloudopt/gcpcost/internal/gcloud"
)

// Status describes how the listing behind a report part was obtained.
type Status string

const (
	// StatusOK means the listing fetched, parsed, and was non-empty.
	StatusOK Status = "ok"
	// StatusEmpty means the listing fetched and parsed but held no items.
	StatusEmpty Status = "empty"
	// StatusFetchError means the external command failed.
	StatusFetchError Status = "fetch_error"
	// StatusParseError means the command succeeded but returned bad JSON.
	StatusParseError Status = "parse_error"
	// StatusStatic marks advisory parts with no data dependency.
	StatusStatic Status = "static"
)

// Part is one sub-analysis inside a section: a heading plus recommendation
// lines, tagged with the outcome of its listing. Immutable once returned.
type Part struct {
	Name   string   `json:"name"`
	Status Status   `json:"status"`
	Lines  []string `json:"lines"`
}

// Section is one titled block of the final report, produced by exactly one
// analyzer.
type Section struct {
	Title string `json:"title"`
	Parts []Part `json:"parts"`
}

// listingStatus classifies a fetch result for a listing of n items.
func listingStatus(n int, err error) Status {
	var parseErr *gcloud.ParseError
	switch {
	case errors.As(err, &parseErr):
		return StatusParseError
	case err != nil:
		return StatusFetchError
	case n == 0:
		return StatusEmpty
	default:
		return StatusOK
	}
}
