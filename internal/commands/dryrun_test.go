package commands

import (
	"encoding/json"
	"strings"
	"testing"
)

func samplePlan() DryRunPlan {
	return DryRunPlan{
		GcloudBin: "gcloud",
		Commands: []string{
			"gcloud config list --format=json",
			"gcloud compute instances list --format=json",
		},
		OutputDir: "reports",
		Format:    "text",
		Timeout:   "5m0s",
	}
}

func TestPrintDryRunText(t *testing.T) {
	var buf strings.Builder
	if err := printDryRunText(&buf, samplePlan()); err != nil {
		t.Fatalf("printDryRunText: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "dry-run") {
		t.Error("missing dry-run header")
	}
	if !strings.Contains(output, "gcloud compute instances list --format=json") {
		t.Error("missing planned command")
	}
	if !strings.Contains(output, "output-dir: reports") {
		t.Error("missing output-dir setting")
	}
}

func TestPrintDryRunJSON(t *testing.T) {
	var buf strings.Builder
	if err := printDryRunJSON(&buf, samplePlan()); err != nil {
		t.Fatalf("printDryRunJSON: %v", err)
	}

	var parsed DryRunPlan
	if err := json.Unmarshal([]byte(buf.String()), &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(parsed.Commands) != 2 {
		t.Errorf("commands = %d, want 2", len(parsed.Commands))
	}
	if parsed.GcloudBin != "gcloud" {
		t.Errorf("gcloud_bin = %q, want gcloud", parsed.GcloudBin)
	}
}

func TestReportDryRunPlansAllSubcommands(t *testing.T) {
	rootCmd.SetArgs([]string{"report", "--dry-run"})
	var buf strings.Builder
	rootCmd.SetOut(&buf)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	output := buf.String()
	for _, sub := range []string{
		"config list",
		"compute instances list",
		"storage ls",
		"compute disks list",
		"compute addresses list",
		"compute forwarding-rules list",
	} {
		if !strings.Contains(output, "gcloud "+sub+" --format=json") {
			t.Errorf("plan missing %q", sub)
		}
	}
}
