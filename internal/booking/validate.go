package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
)

// requireDetails gates Step 1 -> Step 2: presence only, no numeric checks.
func (d Draft) requireDetails() error {
	type req struct{ field, value, label string }
	checks := []req{
		{"productName", d.ProductName, "Product name"},
		{"numberOfPackages", d.NumberOfPackages, "Number of packages"},
		{"unitPerPackage", d.UnitPerPackage, "Unit per package"},
		{"grossWeight", d.GrossWeight, "Gross weight"},
		{"deliveryFee", d.DeliveryFee, "Delivery fee"},
		{"companyName", d.CompanyName, "Company name"},
		{"shipperConsignorName", d.ShipperConsignorName, "Shipper/consignor"},
		{"originAddress", d.OriginAddress, "Origin address"},
	}
	for _, c := range checks {
		if strings.TrimSpace(c.value) == "" {
			return domain.ValidationError{Field: c.field, Msg: c.label + " is required."}
		}
	}
	if err := d.checkDestinations(); err != nil {
		return err
	}
	return nil
}

// Validate is the full submission contract. The checks run in a fixed
// order and short-circuit on the first failure; later checks assume the
// earlier ones passed. today is the current calendar day.
func (d Draft) Validate(today time.Time) error {
	// 1. trip-type-specific destination check
	if err := d.checkDestinations(); err != nil {
		return err
	}

	// 2. vehicle selected
	if strings.TrimSpace(d.VehicleID) == "" {
		return domain.ValidationError{Field: "vehicleId", Msg: "Please select a vehicle."}
	}

	// 3. plate populated with the vehicle; an empty plate here means the
	// vehicle record itself is broken, not that the operator skipped a field
	if strings.TrimSpace(d.PlateNumber) == "" {
		return domain.InconsistencyError{Msg: "Selected vehicle has no plate number. Please reselect the vehicle."}
	}

	// 4. required-field set
	type req struct{ field, value, label string }
	required := []req{
		{"productName", d.ProductName, "Product name"},
		{"numberOfPackages", d.NumberOfPackages, "Number of packages"},
		{"unitPerPackage", d.UnitPerPackage, "Unit per package"},
		{"grossWeight", d.GrossWeight, "Gross weight"},
		{"deliveryFee", d.DeliveryFee, "Delivery fee"},
		{"companyName", d.CompanyName, "Company name"},
		{"shipperConsignorName", d.ShipperConsignorName, "Shipper/consignor"},
		{"originAddress", d.OriginAddress, "Origin address"},
		{"vehicleId", d.VehicleID, "Vehicle"},
		{"vehicleType", d.VehicleType, "Vehicle type"},
		{"dateNeeded", d.DateNeeded, "Date needed"},
		{"timeNeeded", d.TimeNeeded, "Time needed"},
	}
	for _, c := range required {
		if strings.TrimSpace(c.value) == "" {
			return domain.ValidationError{Field: c.field, Msg: c.label + " is required."}
		}
	}

	// 5. at least one crew assignment
	assigned := 0
	for _, m := range d.Crew {
		if strings.TrimSpace(m.EmployeeID) != "" {
			assigned++
		}
	}
	if assigned == 0 {
		return domain.ValidationError{Field: "employeeAssigned", Msg: "Assign at least one employee to the booking."}
	}

	// 6. every assignment carries a role
	for i, m := range d.Crew {
		if strings.TrimSpace(m.EmployeeID) != "" && strings.TrimSpace(m.Role) == "" {
			return domain.ValidationError{
				Field: "roleOfEmployee",
				Msg:   fmt.Sprintf("Employee assignment %d has no role.", i+1),
			}
		}
	}

	// 7-8. packaging numbers are positive integers
	if n, err := strconv.Atoi(strings.TrimSpace(d.NumberOfPackages)); err != nil || n <= 0 {
		return domain.ValidationError{Field: "numberOfPackages", Msg: "Number of packages must be a positive whole number."}
	}
	if n, err := strconv.Atoi(strings.TrimSpace(d.UnitPerPackage)); err != nil || n <= 0 {
		return domain.ValidationError{Field: "unitPerPackage", Msg: "Unit per package must be a positive whole number."}
	}

	// 9-10. weight and fee are positive numbers
	if f, err := strconv.ParseFloat(strings.TrimSpace(d.GrossWeight), 64); err != nil || f <= 0 {
		return domain.ValidationError{Field: "grossWeight", Msg: "Gross weight must be a positive number."}
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(d.DeliveryFee), 64); err != nil || f <= 0 {
		return domain.ValidationError{Field: "deliveryFee", Msg: "Delivery fee must be a positive number."}
	}

	// 11. date needed is not before today (time of day ignored)
	needed, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(d.DateNeeded), today.Location())
	if err != nil {
		return domain.ValidationError{Field: "dateNeeded", Msg: "Date needed must be a valid date (YYYY-MM-DD)."}
	}
	y, m, day := today.Date()
	startOfToday := time.Date(y, m, day, 0, 0, 0, 0, today.Location())
	if needed.Before(startOfToday) {
		return domain.ValidationError{Field: "dateNeeded", Msg: "Date needed cannot be earlier than today."}
	}

	return nil
}

func (d Draft) checkDestinations() error {
	if d.TripType == models.TripMultiple {
		if len(d.Stops) == 0 {
			return domain.ValidationError{Field: "destination", Msg: "Please select a branch for every destination stop."}
		}
		for _, s := range d.Stops {
			if strings.TrimSpace(s.BranchName) == "" {
				return domain.ValidationError{Field: "destination", Msg: "Please select a branch for every destination stop."}
			}
		}
		for _, s := range d.Stops {
			if strings.TrimSpace(s.Address) == "" {
				return domain.ValidationError{Field: "destination", Msg: "A destination address could not be resolved for one of the stops."}
			}
		}
		return nil
	}
	if strings.TrimSpace(d.CustomerEstablishmentName) == "" || strings.TrimSpace(d.DestinationAddress) == "" {
		return domain.ValidationError{Field: "destination", Msg: "Please select a destination branch."}
	}
	return nil
}
