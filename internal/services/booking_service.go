package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/booking"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/rates"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/repositories"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/utils"
)

// Trip statuses a booking can move through after submission.
var tripStatuses = map[string]bool{
	"Pending":   true,
	"Ongoing":   true,
	"Completed": true,
	"Cancelled": true,
}

// BookingService runs the submission pipeline: draft validation, the
// route-rate vehicle restriction, payload serialization and persistence.
type BookingService struct {
	BookingRepo  repositories.BookingRepository
	EmployeeRepo repositories.EmployeeRepository
	RequestID    string

	// test hooks
	Now           func() time.Time
	ListEmployees func(role string, availableOnly bool) ([]models.Employee, error)
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s BookingService) employees(role string, availableOnly bool) ([]models.Employee, error) {
	if s.ListEmployees != nil {
		return s.ListEmployees(role, availableOnly)
	}
	return s.EmployeeRepo.List(role, availableOnly)
}

// Create submits a creation draft and returns the persisted record.
func (s BookingService) Create(d booking.Draft) (models.Booking, error) {
	sub, err := s.submit(d)
	if err != nil {
		return models.Booking{}, err
	}

	id, err := s.BookingRepo.Create(sub)
	if err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "create", "booking_id="+strconv.FormatInt(id, 10))
	return s.BookingRepo.GetByID(id)
}

// Update submits an edit draft against an existing booking.
func (s BookingService) Update(id int64, d booking.Draft) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	sub, err := s.submit(d)
	if err != nil {
		return models.Booking{}, err
	}

	if err := s.BookingRepo.Update(id, sub); err != nil {
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "update", "booking_id="+strconv.FormatInt(id, 10))
	return s.BookingRepo.GetByID(id)
}

func (s BookingService) submit(d booking.Draft) (booking.Submission, error) {
	submitted, err := d.Submit(s.now())
	if err != nil {
		return booking.Submission{}, err
	}
	if err := s.checkRouteRestriction(submitted); err != nil {
		return booking.Submission{}, err
	}
	return booking.BuildSubmission(submitted)
}

// checkRouteRestriction rejects a vehicle type that the rate table
// excludes for any leg of the trip. A route with no table entry imposes
// no restriction at all.
func (s BookingService) checkRouteRestriction(d booking.Draft) error {
	destinations := []string{d.DestinationAddress}
	if d.TripType == models.TripMultiple {
		destinations = destinations[:0]
		for _, stop := range d.Stops {
			destinations = append(destinations, stop.Address)
		}
	}

	for _, dest := range destinations {
		allowed := rates.AllowedVehicleTypes(d.OriginAddress, dest)
		if len(allowed) == 0 {
			continue // no entry means no restriction, never "reject all"
		}
		if _, ok := allowed[d.VehicleType]; !ok {
			return domain.ValidationError{
				Field: "vehicleType",
				Msg:   fmt.Sprintf("Vehicle type %s is not allowed on the route to %s.", d.VehicleType, dest),
			}
		}
	}
	return nil
}

// Archive toggles the archive flag instead of deleting the record.
func (s BookingService) Archive(id int64, archived bool) error {
	if err := s.BookingRepo.SetArchived(id, archived); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "archive", fmt.Sprintf("booking_id=%d archived=%v", id, archived))
	return nil
}

// SetTripStatus moves a booking through its trip lifecycle.
func (s BookingService) SetTripStatus(id int64, status string) error {
	status = strings.TrimSpace(status)
	if !tripStatuses[status] {
		return domain.ValidationError{Field: "tripStatus", Msg: "Unknown trip status: " + status}
	}
	if err := s.BookingRepo.SetTripStatus(id, status); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "trip_status", fmt.Sprintf("booking_id=%d status=%s", id, status))
	return nil
}

// CrewCandidates lists the employees offered for a crew slot, excluding
// ids already assigned elsewhere on the draft.
func (s BookingService) CrewCandidates(slot int, assigned []string) ([]models.Employee, error) {
	role := models.RoleHelper
	if slot == 0 {
		role = models.RoleDriver
	}
	employees, err := s.employees(role, true)
	if err != nil {
		return nil, err
	}
	return booking.Candidates(employees, slot, assigned), nil
}
