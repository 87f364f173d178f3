// Package rates holds the static route rate table and the route key
// resolver used to constrain vehicle choices per booking.
package rates

// RouteRateEntry is one allowed vehicle option on a specific route.
type RouteRateEntry struct {
	VehicleType      string  `json:"vehicleType"`
	AreaLocationCode string  `json:"areaLocationCode"`
	RateCost         float64 `json:"rateCost"`
}

// routeRates maps "<origin> - <destination>" (both lowercased) to the raw
// list of allowed vehicle options. The list is source data, not a set:
// duplicate vehicle types for the same key are kept as-is.
var routeRates = map[string][]RouteRateEntry{
	"gdc - caloocan": {
		{VehicleType: "Car", AreaLocationCode: "1", RateCost: 200},
		{VehicleType: "Truck", AreaLocationCode: "1", RateCost: 200},
	},
	"gdc - manila": {
		{VehicleType: "Truck", AreaLocationCode: "1", RateCost: 250},
		{VehicleType: "Truck", AreaLocationCode: "1", RateCost: 250},
		{VehicleType: "Van", AreaLocationCode: "1", RateCost: 220},
	},
	"gdc - quezon city": {
		{VehicleType: "Car", AreaLocationCode: "1", RateCost: 230},
		{VehicleType: "Van", AreaLocationCode: "1", RateCost: 230},
		{VehicleType: "Truck", AreaLocationCode: "1", RateCost: 260},
	},
	"gdc - makati": {
		{VehicleType: "Van", AreaLocationCode: "2", RateCost: 280},
		{VehicleType: "Truck", AreaLocationCode: "2", RateCost: 300},
	},
	"gdc - pasig": {
		{VehicleType: "Truck", AreaLocationCode: "2", RateCost: 280},
	},
	"gdc - taguig": {
		{VehicleType: "Van", AreaLocationCode: "2", RateCost: 300},
		{VehicleType: "Truck", AreaLocationCode: "2", RateCost: 320},
	},
	"gdc - valenzuela": {
		{VehicleType: "Car", AreaLocationCode: "1", RateCost: 180},
		{VehicleType: "Truck", AreaLocationCode: "1", RateCost: 210},
	},
	"gdc - paranaque": {
		{VehicleType: "Truck", AreaLocationCode: "3", RateCost: 350},
	},
	"gdc - antipolo": {
		{VehicleType: "Truck", AreaLocationCode: "3", RateCost: 380},
		{VehicleType: "Van", AreaLocationCode: "3", RateCost: 350},
	},
	"gdc - cavite": {
		{VehicleType: "Truck", AreaLocationCode: "4", RateCost: 450},
	},
	"gdc - laguna": {
		{VehicleType: "Truck", AreaLocationCode: "4", RateCost: 480},
	},
	"gdc - bulacan": {
		{VehicleType: "Truck", AreaLocationCode: "4", RateCost: 420},
		{VehicleType: "Van", AreaLocationCode: "4", RateCost: 400},
	},
}

// Lookup returns the raw rate entries for a route key, or nil when the key
// has no entry. Absence of a key is not an error: callers must treat it as
// "no vehicle restriction" for that route.
func Lookup(routeKey string) []RouteRateEntry {
	return routeRates[routeKey]
}
