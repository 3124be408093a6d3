package gcloud

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeRunner is a test double for Runner that records the invocation.
type fakeRunner struct {
	out     []byte
	err     error
	gotName string
	gotArgs []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.gotName = name
	f.gotArgs = args
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func TestClientProjectInfo(t *testing.T) {
	runner := &fakeRunner{out: []byte(`{"core": {"project": "demo"}}`)}
	c := NewClient(runner, "")

	info, err := c.ProjectInfo(context.Background())
	if err != nil {
		t.Fatalf("ProjectInfo: %v", err)
	}
	if info.Core.Project != "demo" {
		t.Errorf("project = %q, want %q", info.Core.Project, "demo")
	}
	if runner.gotName != DefaultBinary {
		t.Errorf("binary = %q, want %q", runner.gotName, DefaultBinary)
	}
	want := "config list --format=json"
	if got := strings.Join(runner.gotArgs, " "); got != want {
		t.Errorf("args = %q, want %q", got, want)
	}
}

func TestClientListInstances(t *testing.T) {
	runner := &fakeRunner{out: []byte(`[
		{
			"name": "vm-1",
			"machineType": "https://compute.googleapis.com/compute/v1/projects/p/zones/us-central1-a/machineTypes/n1-standard-1",
			"status": "RUNNING",
			"zone": "https://compute.googleapis.com/compute/v1/projects/p/zones/us-central1-a"
		}
	]`)}
	c := NewClient(runner, "gcloud")

	instances, err := c.ListInstances(context.Background())
	if err != nil {
		t.Fatalf("ListInstances: %v", err)
	}
	if len(instances) != 1 {
		t.Fatalf("instances = %d, want 1", len(instances))
	}
	if instances[0].MachineTypeName() != "n1-standard-1" {
		t.Errorf("MachineTypeName = %q, want %q", instances[0].MachineTypeName(), "n1-standard-1")
	}
	if instances[0].ZoneName() != "us-central1-a" {
		t.Errorf("ZoneName = %q, want %q", instances[0].ZoneName(), "us-central1-a")
	}
	if got := strings.Join(runner.gotArgs, " "); got != "compute instances list --format=json" {
		t.Errorf("args = %q", got)
	}
}

func TestClientListDisksDetached(t *testing.T) {
	runner := &fakeRunner{out: []byte(`[
		{"name": "orphan", "sizeGb": "100", "type": ".../diskTypes/pd-ssd"},
		{"name": "attached", "sizeGb": "50", "type": ".../diskTypes/pd-standard",
		 "users": [".../instances/vm-1"]}
	]`)}
	c := NewClient(runner, "gcloud")

	disks, err := c.ListDisks(context.Background())
	if err != nil {
		t.Fatalf("ListDisks: %v", err)
	}
	if disks[0].Attached() {
		t.Error("disk without users should be detached")
	}
	if !disks[1].Attached() {
		t.Error("disk with users should be attached")
	}
	if disks[0].SizeGiB() != 100 {
		t.Errorf("SizeGiB = %d, want 100", disks[0].SizeGiB())
	}
	if disks[0].TypeName() != "pd-ssd" {
		t.Errorf("TypeName = %q, want %q", disks[0].TypeName(), "pd-ssd")
	}
}

func TestClientEmptyOutputIsEmptyListing(t *testing.T) {
	// gcloud can exit zero with no output; that means no resources, not a
	// malformed payload.
	runner := &fakeRunner{out: []byte("\n")}
	c := NewClient(runner, "gcloud")

	instances, err := c.ListInstances(context.Background())
	if err != nil {
		t.Fatalf("ListInstances: %v", err)
	}
	if len(instances) != 0 {
		t.Errorf("instances = %d, want 0", len(instances))
	}
}

func TestClientParseError(t *testing.T) {
	runner := &fakeRunner{out: []byte("ERROR: not json")}
	c := NewClient(runner, "gcloud")

	_, err := c.ListInstances(context.Background())
	if err == nil {
		t.Fatal("expected parse error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if !strings.Contains(parseErr.Command, "compute instances list") {
		t.Errorf("Command = %q, want the failing command line", parseErr.Command)
	}
}

func TestClientFetchErrorPassthrough(t *testing.T) {
	fetchErr := &FetchError{Command: "gcloud storage ls", Stderr: "auth required"}
	runner := &fakeRunner{err: fetchErr}
	c := NewClient(runner, "gcloud")

	_, err := c.ListBuckets(context.Background())
	var got *FetchError
	if !errors.As(err, &got) {
		t.Fatalf("error type = %T, want *FetchError", err)
	}
	if got.Stderr != "auth required" {
		t.Errorf("Stderr = %q, want %q", got.Stderr, "auth required")
	}
}

func TestForwardingRuleTargetName(t *testing.T) {
	withTarget := ForwardingRule{Target: ".../targetPools/web-pool"}
	if withTarget.TargetName() != "web-pool" {
		t.Errorf("TargetName = %q, want %q", withTarget.TargetName(), "web-pool")
	}
	noTarget := ForwardingRule{}
	if noTarget.TargetName() != "N/A" {
		t.Errorf("TargetName = %q, want %q", noTarget.TargetName(), "N/A")
	}
}
