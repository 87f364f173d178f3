package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/booking"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/http/middleware"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/repositories"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/services"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/utils"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		BookingRepo:  repositories.BookingRepository{},
		EmployeeRepo: repositories.EmployeeRepository{},
		RequestID:    middleware.GetRequestID(c),
	}
}

// bookingRequest carries the completed booking form. Numeric fields arrive
// as the operator typed them; coercion happens in the submission pipeline.
type bookingRequest struct {
	ProductName      string `json:"productName"`
	NumberOfPackages string `json:"numberOfPackages"`
	UnitPerPackage   string `json:"unitPerPackage"`
	GrossWeight      string `json:"grossWeight"`
	DeliveryFee      string `json:"deliveryFee"`

	CompanyName          string `json:"companyName"`
	ShipperConsignorName string `json:"shipperConsignorName"`
	OriginAddress        string `json:"originAddress"`

	TripType                  string         `json:"tripType"`
	Stops                     []booking.Stop `json:"stops"`
	CustomerEstablishmentName string         `json:"customerEstablishmentName"`
	DestinationAddress        string         `json:"destinationAddress"`

	VehicleID   string `json:"vehicleId"`
	VehicleType string `json:"vehicleType"`
	PlateNumber string `json:"plateNumber"`

	DateNeeded string `json:"dateNeeded"`
	TimeNeeded string `json:"timeNeeded"`

	Crew []booking.CrewMember `json:"crew"`
}

func (r bookingRequest) draft() booking.Draft {
	return booking.Draft{
		Step:                      booking.StepSchedule,
		ProductName:               r.ProductName,
		NumberOfPackages:          r.NumberOfPackages,
		UnitPerPackage:            r.UnitPerPackage,
		GrossWeight:               r.GrossWeight,
		DeliveryFee:               r.DeliveryFee,
		CompanyName:               r.CompanyName,
		ShipperConsignorName:      r.ShipperConsignorName,
		OriginAddress:             r.OriginAddress,
		TripType:                  r.TripType,
		Stops:                     r.Stops,
		CustomerEstablishmentName: r.CustomerEstablishmentName,
		DestinationAddress:        r.DestinationAddress,
		VehicleID:                 r.VehicleID,
		VehicleType:               r.VehicleType,
		PlateNumber:               r.PlateNumber,
		DateNeeded:                r.DateNeeded,
		TimeNeeded:                r.TimeNeeded,
		Crew:                      r.Crew,
	}
}

// GET /api/bookings
func GetBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	f := repositories.ListFilter{
		Query:    utils.TrimOrEmpty(c.Query("q")),
		Status:   c.Query("status"),
		Archived: c.Query("archived") == "true",
		Page:     page,
		Limit:    limit,
	}

	repo := repositories.BookingRepository{}
	list, err := repo.List(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/bookings/:id
func GetBooking(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}
	repo := repositories.BookingRepository{}
	b, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	b, err := bookingService(c).Create(req.draft())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// PUT /api/bookings/:id
func UpdateBooking(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	b, err := bookingService(c).Update(id, req.draft())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

type archiveRequest struct {
	Archived *bool `json:"archived" binding:"required"`
}

// PUT /api/bookings/:id/archive
func ArchiveBooking(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}
	var req archiveRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := bookingService(c).Archive(id, *req.Archived); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "archived": *req.Archived})
}

type tripStatusRequest struct {
	TripStatus string `json:"tripStatus" binding:"required"`
}

// PUT /api/bookings/:id/status
func SetBookingTripStatus(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}
	var req tripStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := bookingService(c).SetTripStatus(id, req.TripStatus); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "tripStatus": req.TripStatus})
}

// GET /api/bookings/:id/invoice
func GetBookingInvoicePDF(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	svc := services.InvoiceService{
		BookingRepo: repositories.BookingRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateInvoice(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/bookings/crew-candidates?slot=0&assigned=EMP-01,EMP-02
//
// Slot 0 is the driver seat; later slots list available helpers. Employees
// already assigned elsewhere on the draft are excluded.
func GetCrewCandidates(c *gin.Context) {
	slot, err := strconv.Atoi(c.DefaultQuery("slot", "0"))
	if err != nil || slot < 0 {
		respondError(c, http.StatusBadRequest, "invalid_slot", "invalid slot parameter", nil)
		return
	}

	assigned := []string{}
	if raw := strings.TrimSpace(c.Query("assigned")); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				assigned = append(assigned, id)
			}
		}
	}

	candidates, err := bookingService(c).CrewCandidates(slot, assigned)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}
