package booking

import (
	"testing"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
)

func TestBuildSubmissionCoercesAndFilters(t *testing.T) {
	d := validDraft()
	d.Crew = []CrewMember{
		{EmployeeID: "EMP-01", Role: models.RoleDriver},
		{},
		{EmployeeID: "EMP-02", Role: models.RoleHelper},
	}

	s, err := BuildSubmission(d)
	if err != nil {
		t.Fatalf("BuildSubmission: %v", err)
	}

	if s.NumberOfPackages != 10 || s.UnitPerPackage != 24 || s.Quantity != 240 {
		t.Fatalf("packaging coercion wrong: %+v", s)
	}
	if s.GrossWeight != 500.5 || s.DeliveryFee != 1500 {
		t.Fatalf("float coercion wrong: %+v", s)
	}

	if len(s.EmployeeAssigned) != 2 || len(s.RoleOfEmployee) != 2 {
		t.Fatalf("blank crew entry not dropped: %v / %v", s.EmployeeAssigned, s.RoleOfEmployee)
	}
	if s.EmployeeAssigned[1] != "EMP-02" || s.RoleOfEmployee[1] != models.RoleHelper {
		t.Fatalf("crew pairing broken: %v / %v", s.EmployeeAssigned, s.RoleOfEmployee)
	}

	if s.TripType != models.TripSingle || s.NumberOfStops != 1 {
		t.Fatalf("destination payload wrong: %+v", s)
	}
	if len(s.DestinationAddresses) != 1 || s.DestinationAddresses[0] != "caloocan" {
		t.Fatalf("destination list = %v", s.DestinationAddresses)
	}
}

func TestBuildSubmissionMultiStopLabel(t *testing.T) {
	d := validDraft().WithTripType(models.TripMultiple).
		WithStop(1, models.ClientBranch{BranchName: "Branch B", City: "City of Manila"})

	s, err := BuildSubmission(d)
	if err != nil {
		t.Fatalf("BuildSubmission: %v", err)
	}
	if s.NumberOfStops != 2 {
		t.Fatalf("stop count = %d, want 2", s.NumberOfStops)
	}
	if s.CustomerEstablishmentName != "Branch A | Branch B" {
		t.Fatalf("establishment label = %q", s.CustomerEstablishmentName)
	}
	if s.DestinationAddresses[1] != "manila" {
		t.Fatalf("stop 1 address = %q", s.DestinationAddresses[1])
	}
}

func TestBuildSubmissionRejectsDriverlessCrew(t *testing.T) {
	d := validDraft()
	d.Crew = []CrewMember{{EmployeeID: "EMP-02", Role: models.RoleHelper}}
	if _, err := BuildSubmission(d); err == nil {
		t.Fatalf("expected crew constructor error")
	}
}

func TestFromBookingRoundTrip(t *testing.T) {
	b := models.Booking{
		ID:                        42,
		ProductName:               "Canned Goods",
		Quantity:                  240,
		NumberOfPackages:          10,
		UnitPerPackage:            24,
		GrossWeight:               500.5,
		DeliveryFee:               1500,
		CompanyName:               "Acme Foods",
		ShipperConsignorName:      "Juan Dela Cruz",
		CustomerEstablishmentName: "Branch A | Branch B",
		OriginAddress:             "GDC",
		TripType:                  models.TripMultiple,
		NumberOfStops:             2,
		DestinationAddresses:      []string{"caloocan", "manila"},
		VehicleID:                 "3",
		VehicleType:               "Truck",
		PlateNumber:               "NBC-1234",
		DateNeeded:                "2026-03-20",
		TimeNeeded:                "08:00",
		EmployeeAssigned:          []string{"EMP-01", "EMP-02"},
		RoleOfEmployee:            []string{models.RoleDriver, models.RoleHelper},
	}

	d := FromBooking(b)
	if !d.IsEditing() || d.EditingID != 42 {
		t.Fatalf("edit flow not flagged: %+v", d)
	}
	if d.Step != StepDetails {
		t.Fatalf("edit flow must start at step 1")
	}
	if len(d.Stops) != 2 || d.Stops[0].BranchName != "Branch A" || d.Stops[1].Address != "manila" {
		t.Fatalf("stops not rebuilt: %+v", d.Stops)
	}
	if len(d.Crew) != 2 || d.Crew[0].Role != models.RoleDriver {
		t.Fatalf("crew not rebuilt: %+v", d.Crew)
	}

	s, err := BuildSubmission(d)
	if err != nil {
		t.Fatalf("BuildSubmission: %v", err)
	}
	if s.Quantity != 240 || s.CustomerEstablishmentName != "Branch A | Branch B" {
		t.Fatalf("round trip lost data: %+v", s)
	}
}
