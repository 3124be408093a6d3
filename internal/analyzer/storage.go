package analyzer

import (
	"fmt"

	"github.com/cloudopt/gcpcost/internal/gcloud"
)

const storageTitle = "STORAGE OPTIMIZATION RECOMMENDATIONS"

// AnalyzeStorage builds the storage section from two independent listings:
// Cloud Storage buckets and persistent disks. Each part degrades on its own;
// a failure in one never suppresses the other.
func AnalyzeStorage(buckets []gcloud.Bucket, bucketsErr error, disks []gcloud.Disk, disksErr error) Section {
	return Section{
		Title: storageTitle,
		Parts: []Part{
			bucketPart(buckets, bucketsErr),
			diskPart(disks, disksErr),
		},
	}
}

func bucketPart(buckets []gcloud.Bucket, err error) Part {
	part := Part{Name: "buckets", Status: listingStatus(len(buckets), err)}
	part.Lines = []string{"Cloud Storage Optimization:"}

	switch part.Status {
	case StatusFetchError, StatusEmpty:
		part.Lines = append(part.Lines, "No Cloud Storage buckets found or error retrieving data.")
	case StatusParseError:
		part.Lines = append(part.Lines, "You have Cloud Storage buckets, but couldn't parse the data.")
	default:
		part.Lines = append(part.Lines,
			fmt.Sprintf("1. You have %d Cloud Storage buckets.", len(buckets)),
			"   Storage Class Recommendations:",
			"   - Standard Storage: Use for frequently accessed data (multiple times a month)",
			"   - Nearline Storage: Use for data accessed less than once a month (20% cheaper)",
			"   - Coldline Storage: Use for data accessed less than once a quarter (50% cheaper)",
			"   - Archive Storage: Use for data accessed less than once a year (90% cheaper)",
			"   Recommendation: Set up Object Lifecycle Management to automatically transition objects to cheaper storage classes.",
		)
	}
	return part
}

func diskPart(disks []gcloud.Disk, err error) Part {
	part := Part{Name: "disks", Status: listingStatus(len(disks), err)}
	part.Lines = []string{"Persistent Disk Optimization:"}

	switch part.Status {
	case StatusFetchError, StatusEmpty:
		part.Lines = append(part.Lines, "No persistent disks found or error retrieving data.")
		return part
	case StatusParseError:
		part.Lines = append(part.Lines, "Error parsing disk data.")
		return part
	}

	// Unattached and SSD selections are independent; a disk may hit both.
	var unattached []gcloud.Disk
	ssdCount := 0
	for _, d := range disks {
		if !d.Attached() {
			unattached = append(unattached, d)
		}
		if DiskTierOf(d.TypeName()) == TierSSD {
			ssdCount++
		}
	}

	if len(unattached) > 0 {
		part.Lines = append(part.Lines,
			fmt.Sprintf("1. You have %d unattached persistent disks that are incurring costs:", len(unattached)))
		totalGiB := 0
		for _, d := range unattached {
			totalGiB += d.SizeGiB()
			part.Lines = append(part.Lines,
				fmt.Sprintf("   - %s (Size: %s GB, Type: %s)", d.Name, d.SizeGB, d.TypeName()))
		}
		part.Lines = append(part.Lines,
			fmt.Sprintf("   Total unattached disk space: %d GB", totalGiB),
			"   Recommendation: Delete unattached disks or create snapshots before deletion if the data is needed.",
		)
	}

	if ssdCount > 0 {
		part.Lines = append(part.Lines, "",
			fmt.Sprintf("2. You have %d SSD persistent disks:", ssdCount),
			"   Recommendation: For non-performance-critical workloads, consider using Standard persistent disks to reduce costs.",
		)
	}
	return part
}
