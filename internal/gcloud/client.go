package gcloud

import (
	"bytes"
	"context"
	"encoding/json"
)

// DefaultBinary is the gcloud executable looked up on PATH.
const DefaultBinary = "gcloud"

// InventoryAPI abstracts the gcloud inventory listings the report consumes.
type InventoryAPI interface {
	ProjectInfo(ctx context.Context) (*ConfigInfo, error)
	ListInstances(ctx context.Context) ([]Instance, error)
	ListBuckets(ctx context.Context) ([]Bucket, error)
	ListDisks(ctx context.Context) ([]Disk, error)
	ListAddresses(ctx context.Context) ([]Address, error)
	ListForwardingRules(ctx context.Context) ([]ForwardingRule, error)
}

// Client fetches inventory listings by shelling out to the gcloud CLI with
// --format=json. It holds no connection state.
type Client struct {
	runner Runner
	bin    string
}

// NewClient creates a Client using the given gcloud binary. An empty bin
// falls back to DefaultBinary.
func NewClient(runner Runner, bin string) *Client {
	if bin == "" {
		bin = DefaultBinary
	}
	return &Client{runner: runner, bin: bin}
}

// Subcommands run by the client, exported for dry-run plan output.
var Subcommands = [][]string{
	{"config", "list"},
	{"compute", "instances", "list"},
	{"storage", "ls"},
	{"compute", "disks", "list"},
	{"compute", "addresses", "list"},
	{"compute", "forwarding-rules", "list"},
}

// ProjectInfo returns the active gcloud configuration.
func (c *Client) ProjectInfo(ctx context.Context) (*ConfigInfo, error) {
	var info ConfigInfo
	if err := c.fetch(ctx, &info, "config", "list"); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListInstances returns all compute instances in the active project.
func (c *Client) ListInstances(ctx context.Context) ([]Instance, error) {
	var instances []Instance
	err := c.fetch(ctx, &instances, "compute", "instances", "list")
	return instances, err
}

// ListBuckets returns all Cloud Storage buckets in the active project.
func (c *Client) ListBuckets(ctx context.Context) ([]Bucket, error) {
	var buckets []Bucket
	err := c.fetch(ctx, &buckets, "storage", "ls")
	return buckets, err
}

// ListDisks returns all persistent disks in the active project.
func (c *Client) ListDisks(ctx context.Context) ([]Disk, error) {
	var disks []Disk
	err := c.fetch(ctx, &disks, "compute", "disks", "list")
	return disks, err
}

// ListAddresses returns all reserved IP addresses in the active project.
func (c *Client) ListAddresses(ctx context.Context) ([]Address, error) {
	var addresses []Address
	err := c.fetch(ctx, &addresses, "compute", "addresses", "list")
	return addresses, err
}

// ListForwardingRules returns all forwarding rules in the active project.
func (c *Client) ListForwardingRules(ctx context.Context) ([]ForwardingRule, error) {
	var rules []ForwardingRule
	err := c.fetch(ctx, &rules, "compute", "forwarding-rules", "list")
	return rules, err
}

// fetch runs the subcommand with --format=json and decodes stdout into dst.
// Empty stdout from a successful command means no resources; dst is left at
// its zero value.
func (c *Client) fetch(ctx context.Context, dst any, args ...string) error {
	args = append(args, "--format=json")
	out, err := c.runner.Run(ctx, c.bin, args...)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(out)) == 0 {
		return nil
	}
	if err := json.Unmarshal(out, dst); err != nil {
		return &ParseError{Command: commandLine(c.bin, args), Err: err}
	}
	return nil
}
