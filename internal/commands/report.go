package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudopt/gcpcost/internal/analyzer"
	"github.com/cloudopt/gcpcost/internal/gcloud"
	"github.com/cloudopt/gcpcost/internal/report"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var reportFlags struct {
	outputDir string
	format    string
	timeout   time.Duration
	dryRun    bool
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a cost optimization report",
	Long: `Inventory the active GCP project through gcloud and write a dated report of
cost-optimization recommendations.

The report covers compute instances, persistent disks, Cloud Storage buckets,
static IP addresses, and load balancer forwarding rules, followed by billing
and general guidance. A failed or empty listing degrades to a "none found"
line; only a missing project identity aborts the run.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFlags.outputDir, "output-dir", "o", "reports", "Directory for generated reports")
	reportCmd.Flags().StringVar(&reportFlags.format, "format", "text", "Output format: text, json")
	reportCmd.Flags().DurationVar(&reportFlags.timeout, "timeout", 5*time.Minute, "Overall run timeout")
	reportCmd.Flags().BoolVar(&reportFlags.dryRun, "dry-run", false, "Print the gcloud commands a run would execute")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if reportFlags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, reportFlags.timeout)
		defer cancel()
	}

	applyConfigDefaults()

	if reportFlags.dryRun {
		return printDryRun(cmd)
	}

	client := gcloud.NewClient(gcloud.ExecRunner{}, cfg.GcloudBin)
	progress := func(msg string) {
		color.New(color.FgCyan).Fprintln(cmd.OutOrStdout(), msg)
	}

	progress("Getting project information...")
	info, err := client.ProjectInfo(ctx)
	if err != nil {
		return enhanceError("get project information", err)
	}
	project := info.Core.Project
	if project == "" {
		return fmt.Errorf("no active project configured\n  hint: %s", authHint)
	}

	catalog := analyzer.DefaultCatalog()
	catalog.MarkLarge(cfg.LargeMachineTypes)

	sections := report.Assemble(ctx, client, catalog, progress)

	data := report.Data{
		Tool:     "gcpcost",
		Version:  version,
		Project:  project,
		Date:     time.Now(),
		Sections: sections,
	}

	if reportFlags.format == "json" {
		r := &report.JSONReporter{Writer: cmd.OutOrStdout()}
		return r.Generate(data)
	}

	if err := os.MkdirAll(reportFlags.outputDir, 0o755); err != nil {
		return fmt.Errorf("create reports directory %s: %w", reportFlags.outputDir, err)
	}
	outPath := report.OutputPath(reportFlags.outputDir, data.Date)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create report file %s: %w", outPath, err)
	}
	defer f.Close()

	r := &report.TextReporter{Writer: f}
	if err := r.Generate(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Report generated: %s\n", outPath)
	fmt.Fprintln(cmd.OutOrStdout(), "To view the report, open it in a text editor.")
	return nil
}

func applyConfigDefaults() {
	if reportFlags.outputDir == "reports" && cfg.ReportsDir != "" {
		reportFlags.outputDir = cfg.ReportsDir
	}
	if reportFlags.format == "text" && cfg.Format != "" {
		reportFlags.format = cfg.Format
	}
	if reportFlags.timeout == 5*time.Minute && cfg.TimeoutDuration() > 0 {
		reportFlags.timeout = cfg.TimeoutDuration()
	}
}
