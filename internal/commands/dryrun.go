package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cloudopt/gcpcost/internal/gcloud"
	"github.com/spf13/cobra"
)

// DryRunPlan describes what a report run would execute.
type DryRunPlan struct {
	GcloudBin string   `json:"gcloud_bin"`
	Commands  []string `json:"commands"`
	OutputDir string   `json:"output_dir"`
	Format    string   `json:"format"`
	Timeout   string   `json:"timeout"`
}

func printDryRun(cmd *cobra.Command) error {
	bin := cfg.GcloudBin
	if bin == "" {
		bin = gcloud.DefaultBinary
	}

	commands := make([]string, 0, len(gcloud.Subcommands))
	for _, sub := range gcloud.Subcommands {
		commands = append(commands, bin+" "+strings.Join(sub, " ")+" --format=json")
	}

	plan := DryRunPlan{
		GcloudBin: bin,
		Commands:  commands,
		OutputDir: reportFlags.outputDir,
		Format:    reportFlags.format,
		Timeout:   reportFlags.timeout.String(),
	}

	w := cmd.OutOrStdout()
	if reportFlags.format == "json" {
		return printDryRunJSON(w, plan)
	}
	return printDryRunText(w, plan)
}

func printDryRunJSON(w io.Writer, plan DryRunPlan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

func printDryRunText(w io.Writer, plan DryRunPlan) error {
	fmt.Fprintf(w, "Report Plan (dry-run)\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, c := range plan.Commands {
		fmt.Fprintf(w, "  - %s\n", c)
	}
	fmt.Fprintf(w, "\nSettings:\n")
	fmt.Fprintf(w, "  output-dir: %s\n", plan.OutputDir)
	fmt.Fprintf(w, "  format:     %s\n", plan.Format)
	fmt.Fprintf(w, "  timeout:    %s\n", plan.Timeout)
	return nil
}
