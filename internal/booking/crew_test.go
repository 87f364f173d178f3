package booking

import (
	"testing"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
)

func TestNewCrewDriverFirstInvariant(t *testing.T) {
	crew, err := NewCrew([]CrewMember{
		{EmployeeID: "EMP-01", Role: models.RoleDriver},
		{EmployeeID: "EMP-02", Role: models.RoleHelper},
	})
	if err != nil {
		t.Fatalf("valid crew rejected: %v", err)
	}
	if len(crew) != 2 {
		t.Fatalf("crew length = %d", len(crew))
	}

	if _, err := NewCrew([]CrewMember{{EmployeeID: "EMP-02", Role: models.RoleHelper}}); err == nil {
		t.Fatalf("helper in the driver slot must be rejected")
	}
	if _, err := NewCrew([]CrewMember{
		{EmployeeID: "EMP-01", Role: models.RoleDriver},
		{EmployeeID: "EMP-03", Role: models.RoleDriver},
	}); err == nil {
		t.Fatalf("driver in a helper slot must be rejected")
	}
}

func TestNewCrewDropsBlanks(t *testing.T) {
	crew, err := NewCrew([]CrewMember{
		{},
		{EmployeeID: "EMP-01", Role: models.RoleDriver},
		{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(crew) != 1 || crew[0].EmployeeID != "EMP-01" {
		t.Fatalf("blanks not dropped: %+v", crew)
	}
}

func TestCandidatesFiltering(t *testing.T) {
	roster := []models.Employee{
		{EmployeeID: "EMP-01", Role: models.RoleDriver, Status: models.StatusAvailable},
		{EmployeeID: "EMP-02", Role: models.RoleDriver, Status: "On Trip"},
		{EmployeeID: "EMP-03", Role: models.RoleHelper, Status: models.StatusAvailable},
		{EmployeeID: "EMP-04", Role: models.RoleHelper, Status: models.StatusAvailable},
		{EmployeeID: "EMP-05", Role: models.RoleHelper, Status: models.StatusAvailable, Archived: true},
	}

	drivers := Candidates(roster, 0, nil)
	if len(drivers) != 1 || drivers[0].EmployeeID != "EMP-01" {
		t.Fatalf("driver slot candidates = %+v", drivers)
	}

	helpers := Candidates(roster, 1, []string{"EMP-01", "EMP-03"})
	if len(helpers) != 1 || helpers[0].EmployeeID != "EMP-04" {
		t.Fatalf("helper slot candidates = %+v", helpers)
	}
}
