package gcloud

import "fmt"

// FetchError indicates the external command exited non-zero or could not be
// started. Stderr holds whatever the command wrote before failing.
type FetchError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("run %q: %v: %s", e.Command, e.Err, e.Stderr)
	}
	return fmt.Sprintf("run %q: %v", e.Command, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError indicates the command succeeded but its output was not the
// expected JSON shape.
type ParseError struct {
	Command string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse output of %q: %v", e.Command, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
