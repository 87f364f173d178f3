package rates

import "testing"

func TestRouteKeyLowercasesOnly(t *testing.T) {
	got := RouteKey("GDC", "Caloocan")
	if got != "gdc - caloocan" {
		t.Fatalf("route key = %q, want %q", got, "gdc - caloocan")
	}
	// no trimming on purpose
	if RouteKey(" GDC", "Caloocan ") != " gdc - caloocan " {
		t.Fatalf("resolver must not trim whitespace")
	}
}

func TestLookupKnownRoute(t *testing.T) {
	entries := Lookup(RouteKey("GDC", "Caloocan"))
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.AreaLocationCode != "1" {
			t.Fatalf("area code = %q, want %q", e.AreaLocationCode, "1")
		}
		if e.RateCost != 200 {
			t.Fatalf("rate = %v, want 200", e.RateCost)
		}
	}
}

func TestAllowedVehicleTypesKnownRoute(t *testing.T) {
	types := AllowedVehicleTypes("GDC", "Caloocan")
	if len(types) != 2 {
		t.Fatalf("expected {Car, Truck}, got %v", types)
	}
	if _, ok := types["Car"]; !ok {
		t.Fatalf("Car missing from %v", types)
	}
	if _, ok := types["Truck"]; !ok {
		t.Fatalf("Truck missing from %v", types)
	}
}

func TestAllowedVehicleTypesDeduplicates(t *testing.T) {
	// "gdc - manila" carries Truck twice in the raw table.
	raw := Lookup("gdc - manila")
	trucks := 0
	for _, e := range raw {
		if e.VehicleType == "Truck" {
			trucks++
		}
	}
	if trucks < 2 {
		t.Fatalf("fixture changed: expected duplicate Truck entries, got %d", trucks)
	}

	types := AllowedVehicleTypes("gdc", "manila")
	if len(types) != 2 {
		t.Fatalf("expected deduplicated {Truck, Van}, got %v", types)
	}
}

// An absent key yields an empty set, which callers must read as "no
// restriction" rather than "reject all vehicles".
func TestUnknownRouteMeansNoRestriction(t *testing.T) {
	types := AllowedVehicleTypes("nowhere", "elsewhere")
	if len(types) != 0 {
		t.Fatalf("expected empty set for unknown route, got %v", types)
	}
	if entries := Lookup("nowhere - elsewhere"); entries != nil {
		t.Fatalf("expected nil entries for unknown route, got %v", entries)
	}
}
