package booking

import (
	"testing"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
)

func TestWithPackagingDerivesQuantity(t *testing.T) {
	d := NewDraft().WithPackaging("5", "12")
	if d.Quantity != 60 {
		t.Fatalf("quantity = %d, want 60", d.Quantity)
	}
}

func TestWithPackagingNonNumericCountsAsZero(t *testing.T) {
	d := NewDraft().WithPackaging("abc", "12")
	if d.Quantity != 0 {
		t.Fatalf("quantity = %d, want 0 for non-numeric packages", d.Quantity)
	}
	d = d.WithPackaging("5", "")
	if d.Quantity != 0 {
		t.Fatalf("quantity = %d, want 0 for empty units", d.Quantity)
	}
}

func TestWithCompanyResetsDownstreamChoices(t *testing.T) {
	branch := models.ClientBranch{BranchName: "Caloocan Hub", City: "Caloocan"}
	d := NewDraft().
		WithShipper("Juan Dela Cruz").
		WithOriginAddress("GDC").
		WithBranch(branch).
		WithCompany("New Company Inc.")

	if d.CompanyName != "New Company Inc." {
		t.Fatalf("company not set: %q", d.CompanyName)
	}
	if d.ShipperConsignorName != "" || d.OriginAddress != "" {
		t.Fatalf("shipper/origin not reset: %q / %q", d.ShipperConsignorName, d.OriginAddress)
	}
	if d.CustomerEstablishmentName != "" || d.DestinationAddress != "" || len(d.Stops) != 0 {
		t.Fatalf("destination state not reset")
	}
}

func TestWithBranchDerivesDestination(t *testing.T) {
	b := models.ClientBranch{
		BranchName: "SM Valenzuela",
		Street:     "123 MacArthur Hwy",
		Barangay:   "Karuhatan",
		City:       "Valenzuela",
		Province:   "Metro Manila",
		Region:     "NCR",
	}
	d := NewDraft().WithBranch(b)
	if d.CustomerEstablishmentName != "SM Valenzuela" {
		t.Fatalf("establishment = %q", d.CustomerEstablishmentName)
	}
	want := "123 MacArthur Hwy, Karuhatan, Valenzuela, Metro Manila, NCR"
	if d.DestinationAddress != want {
		t.Fatalf("destination = %q, want %q", d.DestinationAddress, want)
	}
}

func TestBranchAddressKeepsCityInMixedJoins(t *testing.T) {
	b := models.ClientBranch{Street: "88 Rizal Ave", City: "City of Manila"}
	if got := BranchAddress(b); got != "88 Rizal Ave, City of Manila" {
		t.Fatalf("address = %q", got)
	}
}

func TestBranchAddressFallsBackToCleanedCity(t *testing.T) {
	b := models.ClientBranch{BranchName: "Main", City: "City of Manila"}
	if got := BranchAddress(b); got != "manila" {
		t.Fatalf("fallback address = %q, want %q", got, "manila")
	}
	if got := BranchAddress(models.ClientBranch{City: "Caloocan"}); got != "caloocan" {
		t.Fatalf("fallback address = %q, want %q", got, "caloocan")
	}
}

func TestTripTypeMultipleToSingleCollapsesToFirstStop(t *testing.T) {
	b1 := models.ClientBranch{BranchName: "Branch A", City: "City of Manila"}
	b2 := models.ClientBranch{BranchName: "Branch B", City: "Caloocan"}

	d := NewDraft().
		WithTripType(models.TripMultiple).
		WithStop(0, b1).
		WithStop(1, b2)
	if len(d.Stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(d.Stops))
	}

	d = d.WithTripType(models.TripSingle)
	if len(d.Stops) != 1 {
		t.Fatalf("expected collapse to 1 stop, got %d", len(d.Stops))
	}
	if d.CustomerEstablishmentName != "Branch A" || d.DestinationAddress != "manila" {
		t.Fatalf("single fields not re-derived from stop 0: %q / %q",
			d.CustomerEstablishmentName, d.DestinationAddress)
	}
}

func TestTripTypeSingleToMultipleFabricatesNothing(t *testing.T) {
	b := models.ClientBranch{BranchName: "Branch A", City: "Caloocan"}
	d := NewDraft().WithBranch(b).WithTripType(models.TripMultiple)
	if len(d.Stops) != 1 {
		t.Fatalf("expected exactly the carried-over stop, got %d", len(d.Stops))
	}
	if d.Stops[0].BranchName != "Branch A" {
		t.Fatalf("stop 0 = %+v", d.Stops[0])
	}
}

func TestVehicleFieldsMoveTogether(t *testing.T) {
	v := models.Vehicle{ID: 7, VehicleType: "Truck", PlateNumber: "NBC-1234"}
	d := NewDraft().WithVehicle(v)
	if d.VehicleID != "7" || d.VehicleType != "Truck" || d.PlateNumber != "NBC-1234" {
		t.Fatalf("vehicle trio not set together: %+v", d)
	}
	d = d.WithoutVehicle()
	if d.VehicleID != "" || d.VehicleType != "" || d.PlateNumber != "" {
		t.Fatalf("vehicle trio not cleared together: %+v", d)
	}
}

func TestWithCrewAssignmentDerivesRole(t *testing.T) {
	employees := []models.Employee{
		{EmployeeID: "EMP-01", Role: models.RoleDriver, Status: models.StatusAvailable},
		{EmployeeID: "EMP-02", Role: models.RoleHelper, Status: models.StatusAvailable},
	}

	d := NewDraft().WithCrewAssignment(0, "EMP-01", employees)
	if d.Crew[0].Role != models.RoleDriver {
		t.Fatalf("role = %q, want Driver", d.Crew[0].Role)
	}

	// unknown employee keeps the assignment but clears the role
	d = d.WithCrewAssignment(1, "EMP-99", employees)
	if d.Crew[1].EmployeeID != "EMP-99" || d.Crew[1].Role != "" {
		t.Fatalf("unknown employee assignment = %+v", d.Crew[1])
	}
}

func TestUpdatesDoNotMutateReceiver(t *testing.T) {
	base := NewDraft().WithTripType(models.TripMultiple).
		WithStop(0, models.ClientBranch{BranchName: "A", City: "Caloocan"})

	_ = base.WithStop(0, models.ClientBranch{BranchName: "B", City: "Manila"})
	if base.Stops[0].BranchName != "A" {
		t.Fatalf("WithStop mutated its receiver")
	}

	_ = base.WithCrewAssignment(0, "EMP-01", nil)
	if len(base.Crew) != 0 {
		t.Fatalf("WithCrewAssignment mutated its receiver")
	}
}

func TestWizardStepTransitions(t *testing.T) {
	d := NewDraft()
	if _, err := d.Next(); err == nil {
		t.Fatalf("Next should fail on an empty draft")
	}

	d = d.WithProductName("Canned Goods").
		WithPackaging("10", "24").
		WithGrossWeight("500").
		WithDeliveryFee("1500").
		WithCompany("Acme Foods").
		WithShipper("Juan Dela Cruz").
		WithOriginAddress("GDC").
		WithBranch(models.ClientBranch{BranchName: "Branch A", City: "Caloocan"})

	d2, err := d.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if d2.Step != StepSchedule {
		t.Fatalf("step = %v, want StepSchedule", d2.Step)
	}
	if back := d2.Back(); back.Step != StepDetails {
		t.Fatalf("Back should be unconditional")
	}
	if cancelled := d2.Cancel(); cancelled.Step != StepCancelled {
		t.Fatalf("Cancel should work from any state")
	}
}
