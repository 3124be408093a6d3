package report

import (
	"encoding/json"
	"io"
)

// JSONReporter emits the structured sections, statuses included, for machine
// consumption.
type JSONReporter struct {
	Writer io.Writer
}

// Generate writes the report data as indented JSON.
func (r *JSONReporter) Generate(data Data) error {
	enc := json.NewEncoder(r.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
