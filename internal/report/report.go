package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudopt/gcpcost/internal/analyzer"
)

const separator = "=================================================="

// Data holds everything needed to render a report. Date is injected by the
// caller so identical inputs render identical output.
type Data struct {
	Tool     string             `json:"tool"`
	Version  string             `json:"version"`
	Project  string             `json:"project"`
	Date     time.Time          `json:"date"`
	Sections []analyzer.Section `json:"sections"`
}

// Reporter is the interface for output formatters.
type Reporter interface {
	Generate(data Data) error
}

// OutputPath returns the dated report path under dir.
func OutputPath(dir string, day time.Time) string {
	name := fmt.Sprintf("gcp_cost_report_%s.txt", day.Format("2006-01-02"))
	return filepath.Join(dir, name)
}

// TextReporter renders the human-readable report.
type TextReporter struct {
	Writer io.Writer
}

// Generate writes the preamble and every section in order.
func (r *TextReporter) Generate(data Data) error {
	var b strings.Builder

	fmt.Fprintf(&b, "GCP COST OPTIMIZATION REPORT - %s\n", data.Date.Format("2006-01-02"))
	b.WriteString(separator + "\n\n")
	fmt.Fprintf(&b, "Project: %s\n\n", data.Project)

	for _, section := range data.Sections {
		writeSection(&b, section)
		b.WriteString("\n\n")
	}

	_, err := io.WriteString(r.Writer, b.String())
	return err
}

func writeSection(b *strings.Builder, section analyzer.Section) {
	b.WriteString(section.Title + ":\n")
	b.WriteString(separator + "\n")
	for _, part := range section.Parts {
		b.WriteString("\n")
		for _, line := range part.Lines {
			b.WriteString(line + "\n")
		}
	}
}
