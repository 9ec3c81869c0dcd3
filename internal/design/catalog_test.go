package design

import "testing"

func TestAllStylesOrder(t *testing.T) {
	want := []Style{
		StyleModern,
		StyleFarmhouse,
		StyleContemporary,
		StyleTraditional,
		StyleCoastal,
		StyleCraftsman,
	}
	got := AllStyles()
	if len(got) != len(want) {
		t.Fatalf("expected %d styles, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("style %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestLookupPackageKnownStyles(t *testing.T) {
	for _, style := range AllStyles() {
		pkg, ok := LookupPackage(style)
		if !ok {
			t.Fatalf("expected package for %q", style)
		}
		if len(pkg.Exterior) != 3 || len(pkg.Interior) != 3 || len(pkg.Features) != 3 {
			t.Fatalf("style %q: expected three entries per list", style)
		}
	}
}

func TestLookupPackageModernFixture(t *testing.T) {
	pkg, ok := LookupPackage(StyleModern)
	if !ok {
		t.Fatal("expected modern package")
	}
	wantExterior := []string{
		"Standing seam metal roof in charcoal",
		"Smooth stucco with dark fiber-cement accent panels",
		"Black anodized aluminum windows",
	}
	for i, want := range wantExterior {
		if pkg.Exterior[i] != want {
			t.Fatalf("exterior %d: expected %q, got %q", i, want, pkg.Exterior[i])
		}
	}
	if pkg.Features[1] != "Hidden pantry wall" {
		t.Fatalf("unexpected modern feature: %q", pkg.Features[1])
	}
}

func TestLookupPackageUnknownStyle(t *testing.T) {
	if _, ok := LookupPackage(Style("brutalist")); ok {
		t.Fatal("expected no package for unknown style")
	}
}

func TestCatalogCoversEveryStyle(t *testing.T) {
	entries := Catalog()
	if len(entries) != len(AllStyles()) {
		t.Fatalf("expected %d entries, got %d", len(AllStyles()), len(entries))
	}
	for i, style := range AllStyles() {
		if entries[i].Style != style {
			t.Fatalf("entry %d: expected %q, got %q", i, style, entries[i].Style)
		}
		if len(entries[i].Keywords) == 0 {
			t.Fatalf("entry %q: expected keywords", style)
		}
	}
}

func TestKeywordsReturnsCopy(t *testing.T) {
	kw := Keywords(StyleModern)
	kw[0] = "mutated"
	if Keywords(StyleModern)[0] != "modern" {
		t.Fatal("keyword table must not be mutable through Keywords")
	}
}
