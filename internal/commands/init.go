package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initFlags struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate sample configuration file",
	Long:  `Creates a sample .gcpcost.yaml configuration file with default settings.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initFlags.force, "force", false, "Overwrite existing files")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	configPath := ".gcpcost.yaml"

	if err := writeIfNotExists(configPath, sampleConfig, initFlags.force); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", configPath)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Authenticate: gcloud auth login")
	fmt.Fprintln(out, "  2. Select a project: gcloud config set project PROJECT_ID")
	fmt.Fprintln(out, "  3. Run: gcpcost report")
	return nil
}

func writeIfNotExists(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

const sampleConfig = `# gcpcost configuration

# gcloud executable (default: first "gcloud" on PATH)
gcloud_bin: gcloud

# Directory for generated reports
reports_dir: reports

# Output format: text or json
format: text

# Overall run timeout
timeout: 5m

# Extra machine types to flag as large in the rightsizing check
# large_machine_types:
#   - c2-standard-16
#   - n2-highmem-8
`
