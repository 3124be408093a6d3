package commands

import (
	"log/slog"

	"github.com/cloudopt/gcpcost/internal/config"
	"github.com/cloudopt/gcpcost/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string
	commit  string
	date    string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gcpcost",
	Short: "gcpcost — GCP cost optimization reporter",
	Long: `gcpcost inventories a GCP project through the gcloud CLI and writes a dated
text report of cost-optimization recommendations. It covers compute instances,
persistent disks, Cloud Storage buckets, static IP addresses, and load
balancer forwarding rules.

Requires an authenticated gcloud: run 'gcloud auth login' first.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)
		loaded, err := config.Load(".")
		if err != nil {
			slog.Warn("Failed to load config file", "error", err)
		} else {
			cfg = loaded
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with injected build info.
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.AddCommand(versionCmd)
}
