package analyzer

import "testing"

func TestCatalogClass(t *testing.T) {
	catalog := DefaultCatalog()

	cases := []struct {
		machineType string
		want        SizeClass
	}{
		{"f1-micro", SizeSmall},
		{"n1-standard-1", SizeSmall},
		{"e2-medium", SizeMedium},
		{"n1-standard-8", SizeLarge},
		{"n1-standard-16", SizeLarge},
		{"n2-standard-16", SizeLarge},
		{"e2-standard-8", SizeLarge},
		{"c2-standard-60", SizeUnknown},
	}
	for _, tc := range cases {
		if got := catalog.Class(tc.machineType); got != tc.want {
			t.Errorf("Class(%q) = %q, want %q", tc.machineType, got, tc.want)
		}
	}
}

func TestCatalogMarkLarge(t *testing.T) {
	catalog := DefaultCatalog()
	catalog.MarkLarge([]string{"c2-standard-60", "n2-highmem-8"})

	if catalog.Class("c2-standard-60") != SizeLarge {
		t.Error("MarkLarge should add c2-standard-60")
	}
	if catalog.Class("n2-highmem-8") != SizeLarge {
		t.Error("MarkLarge should add n2-highmem-8")
	}
	if catalog.Class("n1-standard-1") != SizeSmall {
		t.Error("MarkLarge should not disturb existing entries")
	}
}

func TestDiskTierOf(t *testing.T) {
	cases := []struct {
		diskType string
		want     DiskTier
	}{
		{"pd-standard", TierStandard},
		{"pd-balanced", TierBalanced},
		{"pd-ssd", TierSSD},
		{"pd-extreme", TierSSD},
		{"hyperdisk-ssd", TierSSD}, // unlisted, falls back to substring match
		{"hyperdisk-throughput", TierUnknown},
	}
	for _, tc := range cases {
		if got := DiskTierOf(tc.diskType); got != tc.want {
			t.Errorf("DiskTierOf(%q) = %q, want %q", tc.diskType, got, tc.want)
		}
	}
}
