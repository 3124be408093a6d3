package gcloud

import (
	"strconv"
	"strings"
)

// ConfigInfo is the output of `gcloud config list --format=json`.
type ConfigInfo struct {
	Core struct {
		Project string `json:"project"`
	} `json:"core"`
}

// Instance is one entry from `gcloud compute instances list --format=json`.
// MachineType and Zone are full resource URLs; the short names are derived.
type Instance struct {
	Name        string `json:"name"`
	MachineType string `json:"machineType"`
	Status      string `json:"status"`
	Zone        string `json:"zone"`
}

// MachineTypeName returns the short machine type, e.g. "e2-medium".
func (i Instance) MachineTypeName() string {
	return finalSegment(i.MachineType)
}

// ZoneName returns the short zone name, e.g. "us-central1-a".
func (i Instance) ZoneName() string {
	return finalSegment(i.Zone)
}

// Bucket is one entry from `gcloud storage ls --format=json`. Only identity
// fields are captured; the storage analyzer needs the count.
type Bucket struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Disk is one entry from `gcloud compute disks list --format=json`.
// SizeGB arrives as a decimal string; Users is absent for detached disks.
type Disk struct {
	Name   string   `json:"name"`
	SizeGB string   `json:"sizeGb"`
	Type   string   `json:"type"`
	Users  []string `json:"users"`
}

// TypeName returns the short disk type, e.g. "pd-ssd".
func (d Disk) TypeName() string {
	return finalSegment(d.Type)
}

// SizeGiB returns the disk size as an integer, 0 if unparseable.
func (d Disk) SizeGiB() int {
	n, err := strconv.Atoi(d.SizeGB)
	if err != nil {
		return 0
	}
	return n
}

// Attached reports whether any instance currently uses the disk.
func (d Disk) Attached() bool {
	return len(d.Users) > 0
}

// Address is one entry from `gcloud compute addresses list --format=json`.
type Address struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Status  string   `json:"status"`
	Users   []string `json:"users"`
}

// InUse reports whether the address is associated with any resource.
func (a Address) InUse() bool {
	return len(a.Users) > 0
}

// ForwardingRule is one entry from
// `gcloud compute forwarding-rules list --format=json`.
type ForwardingRule struct {
	Name      string `json:"name"`
	IPAddress string `json:"IPAddress"`
	Target    string `json:"target"`
}

// TargetName returns the final path segment of the rule's target, or "N/A"
// when no target is set.
func (r ForwardingRule) TargetName() string {
	if r.Target == "" {
		return "N/A"
	}
	return finalSegment(r.Target)
}

func finalSegment(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
