package analyzer

import (
	"fmt"

	"github.com/cloudopt/gcpcost/internal/gcloud"
)

// Label gcloud reports for a static address that is reserved but idle.
const statusReserved = "RESERVED"

const networkTitle = "NETWORKING OPTIMIZATION RECOMMENDATIONS"

// AnalyzeNetwork builds the networking section from the address and
// forwarding-rule listings. Both parts degrade independently.
func AnalyzeNetwork(addresses []gcloud.Address, addressesErr error, rules []gcloud.ForwardingRule, rulesErr error) Section {
	return Section{
		Title: networkTitle,
		Parts: []Part{
			addressPart(addresses, addressesErr),
			forwardingRulePart(rules, rulesErr),
		},
	}
}

func addressPart(addresses []gcloud.Address, err error) Part {
	part := Part{Name: "addresses", Status: listingStatus(len(addresses), err)}
	part.Lines = []string{"External IP Address Optimization:"}

	switch part.Status {
	case StatusFetchError, StatusEmpty:
		part.Lines = append(part.Lines, "No external IP addresses found or error retrieving data.")
		return part
	case StatusParseError:
		part.Lines = append(part.Lines, "Error parsing IP address data.")
		return part
	}

	var reserved []gcloud.Address
	for _, a := range addresses {
		if a.Status == statusReserved {
			reserved = append(reserved, a)
		}
	}
	if len(reserved) == 0 {
		part.Lines = append(part.Lines, "No reserved static external IP addresses found.")
		return part
	}

	part.Lines = append(part.Lines,
		fmt.Sprintf("1. You have %d reserved static external IP addresses:", len(reserved)))
	for _, a := range reserved {
		use := "Not in use"
		if a.InUse() {
			use = "In use"
		}
		part.Lines = append(part.Lines,
			fmt.Sprintf("   - %s (Name: %s, Status: %s)", a.Address, a.Name, use))
	}
	part.Lines = append(part.Lines,
		"   Recommendation: Delete unused static IPs as they incur charges even when not attached to resources.")
	return part
}

func forwardingRulePart(rules []gcloud.ForwardingRule, err error) Part {
	part := Part{Name: "forwarding_rules", Status: listingStatus(len(rules), err)}
	part.Lines = []string{"Load Balancer Optimization:"}

	switch part.Status {
	case StatusFetchError, StatusEmpty:
		part.Lines = append(part.Lines, "No load balancers found or error retrieving data.")
		return part
	case StatusParseError:
		part.Lines = append(part.Lines, "Error parsing forwarding rules data.")
		return part
	}

	part.Lines = append(part.Lines,
		fmt.Sprintf("1. You have %d load balancer forwarding rules:", len(rules)))
	for _, r := range rules {
		ip := r.IPAddress
		if ip == "" {
			ip = "N/A"
		}
		part.Lines = append(part.Lines,
			fmt.Sprintf("   - %s (IP: %s, Target: %s)", r.Name, ip, r.TargetName()))
	}
	part.Lines = append(part.Lines,
		"   Recommendation: Load balancers incur hourly charges. Consider consolidating load balancers where possible.")
	return part
}
