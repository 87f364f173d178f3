// Package booking implements the booking draft: an immutable value moved
// through a two-step wizard (details, then scheduling and crew assignment)
// by pure update functions, validated as a whole on submission.
package booking

import (
	"strconv"
	"time"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
)

// Step is the wizard state of a draft.
type Step int

const (
	StepDetails Step = iota + 1
	StepSchedule
	StepSubmitted
	StepCancelled
)

// Stop is one selected destination on a multi-stop trip.
type Stop struct {
	BranchName string `json:"branchName"`
	Address    string `json:"address"`
}

// Draft is the in-progress booking being edited. Numeric inputs stay as the
// operator typed them until submission; only Quantity is derived eagerly.
// All update functions return a new value, never mutate the receiver.
type Draft struct {
	Step      Step
	EditingID int64 // >0 when editing a persisted booking

	ProductName      string
	NumberOfPackages string
	UnitPerPackage   string
	Quantity         int
	GrossWeight      string
	DeliveryFee      string

	CompanyName          string
	ShipperConsignorName string
	OriginAddress        string

	TripType                  string
	Stops                     []Stop
	CustomerEstablishmentName string
	DestinationAddress        string

	VehicleID   string
	VehicleType string
	PlateNumber string

	DateNeeded string
	TimeNeeded string

	Crew []CrewMember
}

// NewDraft opens the creation flow: empty draft, single trip, step 1.
func NewDraft() Draft {
	return Draft{
		Step:     StepDetails,
		TripType: models.TripSingle,
	}
}

// FromBooking opens the edit flow pre-populated from a persisted record.
func FromBooking(b models.Booking) Draft {
	d := Draft{
		Step:                      StepDetails,
		EditingID:                 b.ID,
		ProductName:               b.ProductName,
		NumberOfPackages:          strconv.Itoa(b.NumberOfPackages),
		UnitPerPackage:            strconv.Itoa(b.UnitPerPackage),
		Quantity:                  b.Quantity,
		GrossWeight:               strconv.FormatFloat(b.GrossWeight, 'f', -1, 64),
		DeliveryFee:               strconv.FormatFloat(b.DeliveryFee, 'f', -1, 64),
		CompanyName:               b.CompanyName,
		ShipperConsignorName:      b.ShipperConsignorName,
		OriginAddress:             b.OriginAddress,
		TripType:                  b.TripType,
		CustomerEstablishmentName: b.CustomerEstablishmentName,
		VehicleID:                 b.VehicleID,
		VehicleType:               b.VehicleType,
		PlateNumber:               b.PlateNumber,
		DateNeeded:                b.DateNeeded,
		TimeNeeded:                b.TimeNeeded,
	}

	if len(b.DestinationAddresses) > 0 {
		d.DestinationAddress = b.DestinationAddresses[0]
	}
	if b.TripType == models.TripMultiple {
		names := splitEstablishments(b.CustomerEstablishmentName, len(b.DestinationAddresses))
		for i, addr := range b.DestinationAddresses {
			d.Stops = append(d.Stops, Stop{BranchName: names[i], Address: addr})
		}
	}

	for i, id := range b.EmployeeAssigned {
		role := ""
		if i < len(b.RoleOfEmployee) {
			role = b.RoleOfEmployee[i]
		}
		d.Crew = append(d.Crew, CrewMember{EmployeeID: id, Role: role})
	}

	return d
}

// Next moves Step 1 -> Step 2 after a presence check on the Step 1 inputs.
// Deeper numeric/date validation waits for submission.
func (d Draft) Next() (Draft, error) {
	if err := d.requireDetails(); err != nil {
		return d, err
	}
	d.Step = StepSchedule
	return d, nil
}

// Back moves Step 2 -> Step 1 unconditionally.
func (d Draft) Back() Draft {
	d.Step = StepDetails
	return d
}

// Cancel discards the draft from any state.
func (d Draft) Cancel() Draft {
	d.Step = StepCancelled
	return d
}

// Submit runs the full validation contract and marks the draft submitted.
// today is the current calendar day used by the date-needed check.
func (d Draft) Submit(today time.Time) (Draft, error) {
	if err := d.Validate(today); err != nil {
		return d, err
	}
	d.Step = StepSubmitted
	return d, nil
}

// IsEditing reports whether submission should emit an update request
// instead of a create request.
func (d Draft) IsEditing() bool { return d.EditingID > 0 }
