package rates

import "strings"

// RouteKey builds the lookup key from freeform origin/destination address
// strings. Only case is folded: no trimming, no punctuation or diacritic
// normalization. Addresses must match the table's stored spelling exactly
// aside from case, which is a deliberate limitation of the table format.
func RouteKey(origin, destination string) string {
	return strings.ToLower(origin) + " - " + strings.ToLower(destination)
}

// AllowedVehicleTypes returns the deduplicated set of vehicle types
// permitted on the route between origin and destination.
//
// An empty set means "impose no restriction", NOT "no vehicles allowed":
// when the route has no table entry, every otherwise-available vehicle
// remains selectable. Callers must not invert this.
func AllowedVehicleTypes(origin, destination string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, e := range Lookup(RouteKey(origin, destination)) {
		out[e.VehicleType] = struct{}{}
	}
	return out
}
