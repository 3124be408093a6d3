package commands

import (
	"fmt"
	"strings"
)

const authHint = "Make sure you're authenticated with GCP. Run 'gcloud auth login' to authenticate."

// enhanceError wraps an error with context and suggestions for common gcloud
// CLI failures.
func enhanceError(action string, err error) error {
	msg := err.Error()

	var hint string
	switch {
	case strings.Contains(msg, "executable file not found"):
		hint = "gcloud CLI not found on PATH. Install the Google Cloud SDK: https://cloud.google.com/sdk/docs/install"
	case strings.Contains(msg, "do not currently have an active account"),
		strings.Contains(msg, "does not have any valid credentials"),
		strings.Contains(msg, "Reauthentication required"):
		hint = authHint
	case strings.Contains(msg, "403") || strings.Contains(msg, "Permission"):
		hint = "Insufficient permissions. Ensure your account has the Viewer role on the project"
	case strings.Contains(msg, "context deadline exceeded"):
		hint = "gcloud took too long. Retry with a larger --timeout"
	default:
		hint = authHint
	}

	return fmt.Errorf("%s: %w\n  hint: %s", action, err, hint)
}
