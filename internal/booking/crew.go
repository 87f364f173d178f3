package booking

import (
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
)

// CrewMember pairs an employee id with its role explicitly instead of the
// old parallel-array encoding, so alignment can never drift.
type CrewMember struct {
	EmployeeID string `json:"employeeId"`
	Role       string `json:"role"`
}

// Crew is a validated crew list: the first member drives, the rest help.
type Crew []CrewMember

// NewCrew builds a Crew from non-blank members, enforcing the driver-first
// invariant at construction instead of by index convention.
func NewCrew(members []CrewMember) (Crew, error) {
	out := make(Crew, 0, len(members))
	for _, m := range members {
		if m.EmployeeID == "" {
			continue
		}
		out = append(out, m)
	}
	for i, m := range out {
		if i == 0 && m.Role != models.RoleDriver {
			return nil, domain.ValidationError{Field: "crew", Msg: "The first crew member must be a driver."}
		}
		if i > 0 && m.Role != models.RoleHelper {
			return nil, domain.ValidationError{Field: "crew", Msg: "Crew members after the driver must be helpers."}
		}
	}
	return out, nil
}

// Candidates filters employees offered for crew slot i: slot 0 takes
// available drivers, later slots take available helpers. Employees already
// assigned elsewhere on the draft are excluded so nobody is booked twice.
func Candidates(employees []models.Employee, slot int, assigned []string) []models.Employee {
	wantRole := models.RoleHelper
	if slot == 0 {
		wantRole = models.RoleDriver
	}

	taken := map[string]bool{}
	for _, id := range assigned {
		if id != "" {
			taken[id] = true
		}
	}

	out := []models.Employee{}
	for _, e := range employees {
		if e.Archived || e.Role != wantRole || e.Status != models.StatusAvailable {
			continue
		}
		if taken[e.EmployeeID] {
			continue
		}
		out = append(out, e)
	}
	return out
}
