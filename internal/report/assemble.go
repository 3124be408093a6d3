package report

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cloudopt/gcpcost/internal/analyzer"
	"github.com/cloudopt/gcpcost/internal/gcloud"
)

// Assemble runs the five inventory fetches strictly one after another and
// returns the analyzed sections in report order: compute, storage, network,
// billing, general. Fetch and parse failures never abort assembly; each
// analyzer folds them into its own section. The progress callback, if
// non-nil, is invoked before each fetch.
func Assemble(ctx context.Context, api gcloud.InventoryAPI, catalog analyzer.Catalog, progress func(string)) []analyzer.Section {
	announce := func(msg string) {
		if progress != nil {
			progress(msg)
		}
	}

	announce("Analyzing Compute Engine instances...")
	instances, instancesErr := api.ListInstances(ctx)
	warnListing("instances", instancesErr)

	announce("Analyzing storage resources...")
	buckets, bucketsErr := api.ListBuckets(ctx)
	warnListing("buckets", bucketsErr)
	disks, disksErr := api.ListDisks(ctx)
	warnListing("disks", disksErr)

	announce("Analyzing networking resources...")
	addresses, addressesErr := api.ListAddresses(ctx)
	warnListing("addresses", addressesErr)
	rules, rulesErr := api.ListForwardingRules(ctx)
	warnListing("forwarding rules", rulesErr)

	announce("Analyzing billing data...")

	return []analyzer.Section{
		analyzer.AnalyzeCompute(catalog, instances, instancesErr),
		analyzer.AnalyzeStorage(buckets, bucketsErr, disks, disksErr),
		analyzer.AnalyzeNetwork(addresses, addressesErr, rules, rulesErr),
		analyzer.BillingAdvice(),
		analyzer.GeneralRecommendations(),
	}
}

// warnListing logs a failed listing so the operator can see why a section
// degraded. FetchError and ParseError render the command line and any
// captured stderr.
func warnListing(resource string, err error) {
	if err == nil {
		return
	}
	var fetchErr *gcloud.FetchError
	if errors.As(err, &fetchErr) {
		slog.Warn("Inventory listing failed", "resource", resource,
			"command", fetchErr.Command, "stderr", fetchErr.Stderr)
		return
	}
	slog.Warn("Inventory listing failed", "resource", resource, "error", err)
}
