package analyzer

import (
	"fmt"

	"github.com/cloudopt/gcpcost/internal/gcloud"
)

// Label gcloud reports for an instance that is stopped.
const statusTerminated = "TERMINATED"

const computeTitle = "COMPUTE ENGINE OPTIMIZATION RECOMMENDATIONS"

// AnalyzeCompute builds the compute section: a machine type tally ordered by
// first appearance, the stopped and oversized instance checks, and the
// always-present discount advisories. The err argument is the outcome of the
// instances fetch.
func AnalyzeCompute(catalog Catalog, instances []gcloud.Instance, err error) Section {
	part := Part{Name: "instances", Status: listingStatus(len(instances), err)}

	switch part.Status {
	case StatusFetchError:
		part.Lines = []string{"No Compute Engine instances found or error retrieving data."}
	case StatusParseError:
		part.Lines = []string{"Error parsing Compute Engine data."}
	case StatusEmpty:
		part.Lines = []string{"No Compute Engine instances found."}
	default:
		part.Lines = computeLines(catalog, instances)
	}

	return Section{Title: computeTitle, Parts: []Part{part}}
}

func computeLines(catalog Catalog, instances []gcloud.Instance) []string {
	lines := []string{"Instance Types Summary:"}

	// Tally per machine type, preserving first-seen order.
	counts := make(map[string]int)
	var order []string
	for _, inst := range instances {
		mt := inst.MachineTypeName()
		if _, seen := counts[mt]; !seen {
			order = append(order, mt)
		}
		counts[mt]++
	}
	for _, mt := range order {
		lines = append(lines, fmt.Sprintf("  - %s: %d instances", mt, counts[mt]))
	}

	lines = append(lines, "", "Optimization Opportunities:")

	var stopped []gcloud.Instance
	for _, inst := range instances {
		if inst.Status == statusTerminated {
			stopped = append(stopped, inst)
		}
	}
	if len(stopped) > 0 {
		lines = append(lines, "",
			fmt.Sprintf("1. You have %d stopped instances that are still incurring storage costs:", len(stopped)))
		for _, inst := range stopped {
			lines = append(lines, fmt.Sprintf("   - %s (Zone: %s)", inst.Name, inst.ZoneName()))
		}
		lines = append(lines, "   Recommendation: Delete unused instances to avoid storage charges.")
	}

	var large []gcloud.Instance
	for _, inst := range instances {
		if catalog.Class(inst.MachineTypeName()) == SizeLarge {
			large = append(large, inst)
		}
	}
	if len(large) > 0 {
		lines = append(lines, "",
			fmt.Sprintf("2. You have %d large instances that might be oversized:", len(large)))
		for _, inst := range large {
			lines = append(lines, fmt.Sprintf("   - %s (Type: %s, Zone: %s)",
				inst.Name, inst.MachineTypeName(), inst.ZoneName()))
		}
		lines = append(lines, "   Recommendation: Monitor CPU and memory usage and consider downsizing if utilization is low.")
	}

	lines = append(lines, "",
		"3. Sustained Use Discount Opportunities:",
		"   - Instances running continuously for a month automatically receive sustained use discounts.",
		"   - Consider converting eligible workloads to committed use contracts for 1-3 year terms to save 20-60%.",
		"",
		"4. Preemptible VM Opportunities:",
		"   - For fault-tolerant, batch processing workloads, consider using preemptible VMs to save up to 80%.",
	)
	return lines
}
