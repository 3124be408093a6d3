package gcloud

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its captured stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands through os/exec. Calls are synchronous and
// blocking; there are no retries.
type ExecRunner struct{}

// Run executes the command and returns captured stdout. A non-zero exit or
// a spawn failure is returned as a *FetchError carrying captured stderr.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &FetchError{
			Command: commandLine(name, args),
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}
	return stdout.Bytes(), nil
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
