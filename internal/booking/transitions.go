package booking

import (
	"strconv"
	"strings"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
)

// WithProductName updates the product name.
func (d Draft) WithProductName(name string) Draft {
	d.ProductName = name
	return d
}

// WithPackaging records package count and units per package and recomputes
// the derived quantity. Non-numeric input counts as 0; quantity is never
// edited directly.
func (d Draft) WithPackaging(packages, units string) Draft {
	d.NumberOfPackages = packages
	d.UnitPerPackage = units
	d.Quantity = atoiOrZero(packages) * atoiOrZero(units)
	return d
}

// WithGrossWeight updates the gross weight input.
func (d Draft) WithGrossWeight(w string) Draft {
	d.GrossWeight = w
	return d
}

// WithDeliveryFee updates the delivery fee input.
func (d Draft) WithDeliveryFee(fee string) Draft {
	d.DeliveryFee = fee
	return d
}

// WithCompany selects the client company. A company change invalidates all
// downstream routing state: shipper, origin and every destination choice.
func (d Draft) WithCompany(name string) Draft {
	d.CompanyName = name
	d.ShipperConsignorName = ""
	d.OriginAddress = ""
	d.Stops = nil
	d.CustomerEstablishmentName = ""
	d.DestinationAddress = ""
	return d
}

// WithShipper updates the shipper/consignor name.
func (d Draft) WithShipper(name string) Draft {
	d.ShipperConsignorName = name
	return d
}

// WithOriginAddress updates the origin address.
func (d Draft) WithOriginAddress(addr string) Draft {
	d.OriginAddress = addr
	return d
}

// WithBranch selects the destination branch in single-trip mode: the
// establishment takes the branch name and the destination address is
// derived from the branch's structured address.
func (d Draft) WithBranch(b models.ClientBranch) Draft {
	d.CustomerEstablishmentName = b.BranchName
	d.DestinationAddress = BranchAddress(b)
	return d
}

// WithStop sets the branch for stop i in multiple-trip mode, growing the
// stop list when i is one past the end.
func (d Draft) WithStop(i int, b models.ClientBranch) Draft {
	if i < 0 || i > len(d.Stops) {
		return d
	}
	stops := make([]Stop, len(d.Stops), len(d.Stops)+1)
	copy(stops, d.Stops)
	s := Stop{BranchName: b.BranchName, Address: BranchAddress(b)}
	if i == len(stops) {
		stops = append(stops, s)
	} else {
		stops[i] = s
	}
	d.Stops = stops
	return d
}

// WithTripType switches between single and multiple destination modes.
// Multiple -> single collapses the stop list to its first entry and
// re-derives the single-destination fields from it. Single -> multiple
// carries the current selection over as stop 0 and fabricates nothing else.
func (d Draft) WithTripType(t string) Draft {
	if t != models.TripSingle && t != models.TripMultiple {
		return d
	}
	if t == d.TripType {
		return d
	}
	d.TripType = t

	if t == models.TripSingle {
		if len(d.Stops) > 0 {
			first := d.Stops[0]
			d.Stops = []Stop{first}
			d.CustomerEstablishmentName = first.BranchName
			d.DestinationAddress = first.Address
		}
		return d
	}

	if len(d.Stops) == 0 && (d.CustomerEstablishmentName != "" || d.DestinationAddress != "") {
		d.Stops = []Stop{{BranchName: d.CustomerEstablishmentName, Address: d.DestinationAddress}}
	}
	return d
}

// WithVehicle fixes vehicle id, type and plate number together from one
// vehicle record. The three fields are never set independently.
func (d Draft) WithVehicle(v models.Vehicle) Draft {
	d.VehicleID = strconv.FormatInt(v.ID, 10)
	d.VehicleType = v.VehicleType
	d.PlateNumber = v.PlateNumber
	return d
}

// WithoutVehicle clears the vehicle selection as a unit.
func (d Draft) WithoutVehicle() Draft {
	d.VehicleID = ""
	d.VehicleType = ""
	d.PlateNumber = ""
	return d
}

// WithSchedule updates the requested date and time.
func (d Draft) WithSchedule(date, timeNeeded string) Draft {
	d.DateNeeded = date
	d.TimeNeeded = timeNeeded
	return d
}

// WithCrewAssignment assigns employeeID at crew slot i, deriving the role
// from the employee list. An unknown id keeps the assignment but clears the
// role to empty. Slot 0 is the driver slot by convention; candidate lists
// are expected to be pre-filtered via Candidates.
func (d Draft) WithCrewAssignment(i int, employeeID string, employees []models.Employee) Draft {
	if i < 0 || i > len(d.Crew) {
		return d
	}
	crew := make([]CrewMember, len(d.Crew), len(d.Crew)+1)
	copy(crew, d.Crew)

	role := ""
	for _, e := range employees {
		if e.EmployeeID == employeeID {
			role = e.Role
			break
		}
	}

	m := CrewMember{EmployeeID: employeeID, Role: role}
	if i == len(crew) {
		crew = append(crew, m)
	} else {
		crew[i] = m
	}
	d.Crew = crew
	return d
}

// BranchAddress joins the non-empty structured address parts with ", " in
// street, barangay, city, province, region order. When the city is the
// only part on record the raw value alone is not a usable address, so it
// falls back to the cleaned city name instead: a leading "City of " prefix
// stripped (case-insensitive) and the result lowercased, so
// {City: "City of Manila"} with nothing else resolves to "manila".
func BranchAddress(b models.ClientBranch) string {
	others := 0
	for _, p := range []string{b.Street, b.Barangay, b.Province, b.Region} {
		if strings.TrimSpace(p) != "" {
			others++
		}
	}
	if others == 0 {
		return cleanCityName(b.City)
	}

	parts := []string{}
	for _, p := range []string{b.Street, b.Barangay, b.City, b.Province, b.Region} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func cleanCityName(city string) string {
	c := city
	if len(c) >= len("city of ") && strings.EqualFold(c[:len("city of ")], "city of ") {
		c = c[len("city of "):]
	}
	return strings.ToLower(c)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseFloatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func splitEstablishments(label string, n int) []string {
	out := make([]string, n)
	parts := strings.Split(label, " | ")
	for i := 0; i < n; i++ {
		if i < len(parts) {
			out[i] = parts[i]
		}
	}
	return out
}
