package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
)

var testToday = time.Date(2026, 3, 14, 15, 30, 0, 0, time.Local)

func validDraft() Draft {
	return NewDraft().
		WithProductName("Canned Goods").
		WithPackaging("10", "24").
		WithGrossWeight("500.5").
		WithDeliveryFee("1500").
		WithCompany("Acme Foods").
		WithShipper("Juan Dela Cruz").
		WithOriginAddress("GDC").
		WithBranch(models.ClientBranch{BranchName: "Branch A", City: "Caloocan"}).
		WithVehicle(models.Vehicle{ID: 3, VehicleType: "Truck", PlateNumber: "NBC-1234"}).
		WithSchedule("2026-03-14", "08:00").
		WithCrewAssignment(0, "EMP-01", crewRoster()).
		WithCrewAssignment(1, "EMP-02", crewRoster())
}

func crewRoster() []models.Employee {
	return []models.Employee{
		{EmployeeID: "EMP-01", Role: models.RoleDriver, Status: models.StatusAvailable},
		{EmployeeID: "EMP-02", Role: models.RoleHelper, Status: models.StatusAvailable},
	}
}

func TestValidateAcceptsCompleteDraft(t *testing.T) {
	if err := validDraft().Validate(testToday); err != nil {
		t.Fatalf("expected valid draft, got %v", err)
	}
}

// A draft missing both vehicle id and plate must report the vehicle error:
// the vehicle check precedes the plate check and short-circuits.
func TestValidateVehicleBeforePlate(t *testing.T) {
	d := validDraft().WithoutVehicle()
	err := d.Validate(testToday)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "select a vehicle") {
		t.Fatalf("expected vehicle error, got %v", err)
	}
	if domain.IsInconsistency(err) {
		t.Fatalf("missing vehicle must not be reported as a plate inconsistency")
	}
}

func TestValidatePlateInconsistencyIsDistinct(t *testing.T) {
	d := validDraft()
	d.PlateNumber = "" // simulate a vehicle record whose plate never populated
	err := d.Validate(testToday)
	if !domain.IsInconsistency(err) {
		t.Fatalf("expected inconsistency error, got %v", err)
	}
}

func TestValidateDestinationFirst(t *testing.T) {
	d := validDraft().WithoutVehicle()
	d.CustomerEstablishmentName = ""
	err := d.Validate(testToday)
	if err == nil || !strings.Contains(err.Error(), "destination branch") {
		t.Fatalf("destination check must run before the vehicle check, got %v", err)
	}
}

func TestValidateMultipleStops(t *testing.T) {
	d := validDraft().WithTripType(models.TripMultiple)
	d.Stops = append(d.Stops, Stop{BranchName: "Branch B", Address: ""})
	err := d.Validate(testToday)
	if err == nil || !strings.Contains(err.Error(), "could not be resolved") {
		t.Fatalf("expected unresolved address error, got %v", err)
	}

	d.Stops[1].BranchName = ""
	err = d.Validate(testToday)
	if err == nil || !strings.Contains(err.Error(), "every destination stop") {
		t.Fatalf("expected missing branch error, got %v", err)
	}
}

func TestValidateCrewChecks(t *testing.T) {
	// one valid assignment plus a fully blank slot passes checks 5-6
	d := validDraft()
	d.Crew = []CrewMember{{EmployeeID: "EMP-01", Role: models.RoleDriver}, {}}
	if err := d.Validate(testToday); err != nil {
		t.Fatalf("blank trailing slot should be allowed, got %v", err)
	}

	// an assignment without a role fails check 6
	d.Crew = []CrewMember{{EmployeeID: "EMP-01", Role: ""}}
	err := d.Validate(testToday)
	if err == nil || !strings.Contains(err.Error(), "no role") {
		t.Fatalf("expected missing-role error, got %v", err)
	}

	// no assignments at all fails check 5
	d.Crew = []CrewMember{{}, {}}
	err = d.Validate(testToday)
	if err == nil || !strings.Contains(err.Error(), "at least one employee") {
		t.Fatalf("expected no-assignment error, got %v", err)
	}
}

func TestValidatePositiveNumbers(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(Draft) Draft
		want   string
	}{
		{"zero packages", func(d Draft) Draft { return d.WithPackaging("0", "24") }, "Number of packages"},
		{"negative units", func(d Draft) Draft { return d.WithPackaging("10", "-1") }, "Unit per package"},
		{"zero weight", func(d Draft) Draft { return d.WithGrossWeight("0") }, "Gross weight"},
		{"bad fee", func(d Draft) Draft { return d.WithDeliveryFee("free") }, "Delivery fee"},
	}
	for _, tc := range cases {
		err := tc.mutate(validDraft()).Validate(testToday)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected %q error, got %v", tc.name, tc.want, err)
		}
	}
}

func TestValidateDateNeededCalendarDay(t *testing.T) {
	// same calendar date passes regardless of time of day
	d := validDraft().WithSchedule(testToday.Format("2006-01-02"), "23:59")
	if err := d.Validate(testToday); err != nil {
		t.Fatalf("today should pass, got %v", err)
	}

	yesterday := testToday.AddDate(0, 0, -1).Format("2006-01-02")
	err := validDraft().WithSchedule(yesterday, "08:00").Validate(testToday)
	if err == nil || !strings.Contains(err.Error(), "earlier than today") {
		t.Fatalf("yesterday should fail, got %v", err)
	}

	tomorrow := testToday.AddDate(0, 0, 1).Format("2006-01-02")
	if err := validDraft().WithSchedule(tomorrow, "08:00").Validate(testToday); err != nil {
		t.Fatalf("tomorrow should pass, got %v", err)
	}
}
