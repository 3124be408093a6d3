package analyzer

import "strings"

// SizeClass buckets machine types by capacity for rightsizing checks.
type SizeClass string

const (
	SizeSmall   SizeClass = "small"
	SizeMedium  SizeClass = "medium"
	SizeLarge   SizeClass = "large"
	SizeUnknown SizeClass = "unknown"
)

// Catalog maps short machine type names to size classes. The policy is data,
// not code: tests and config extend it without touching the analyzers.
type Catalog map[string]SizeClass

// DefaultCatalog returns the built-in machine type classification.
func DefaultCatalog() Catalog {
	return Catalog{
		"f1-micro":       SizeSmall,
		"g1-small":       SizeSmall,
		"e2-micro":       SizeSmall,
		"e2-small":       SizeSmall,
		"e2-medium":      SizeMedium,
		"n1-standard-1":  SizeSmall,
		"n1-standard-2":  SizeMedium,
		"n1-standard-4":  SizeMedium,
		"n1-standard-8":  SizeLarge,
		"n1-standard-16": SizeLarge,
		"n2-standard-2":  SizeMedium,
		"n2-standard-4":  SizeMedium,
		"n2-standard-8":  SizeLarge,
		"n2-standard-16": SizeLarge,
		"e2-standard-2":  SizeMedium,
		"e2-standard-4":  SizeMedium,
		"e2-standard-8":  SizeLarge,
		"e2-standard-16": SizeLarge,
	}
}

// Class returns the size class for a short machine type name.
func (c Catalog) Class(machineType string) SizeClass {
	if class, ok := c[machineType]; ok {
		return class
	}
	return SizeUnknown
}

// MarkLarge adds the given machine types to the catalog as large.
func (c Catalog) MarkLarge(machineTypes []string) {
	for _, mt := range machineTypes {
		c[mt] = SizeLarge
	}
}

// DiskTier labels persistent disk types by performance tier.
type DiskTier string

const (
	TierStandard DiskTier = "standard"
	TierBalanced DiskTier = "balanced"
	TierSSD      DiskTier = "ssd"
	TierUnknown  DiskTier = "unknown"
)

var diskTiers = map[string]DiskTier{
	"pd-standard": TierStandard,
	"pd-balanced": TierBalanced,
	"pd-ssd":      TierSSD,
	"pd-extreme":  TierSSD,
}

// DiskTierOf returns the performance tier of a short disk type name.
// Unlisted types containing "ssd" are treated as SSD-backed.
func DiskTierOf(diskType string) DiskTier {
	if tier, ok := diskTiers[diskType]; ok {
		return tier
	}
	if strings.Contains(strings.ToLower(diskType), "ssd") {
		return TierSSD
	}
	return TierUnknown
}
