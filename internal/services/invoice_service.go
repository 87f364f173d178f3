package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/repositories"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/utils"
)

// InvoiceService renders the delivery invoice PDF for a booking.
type InvoiceService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
	Loader      func(int64) (models.Booking, error)
}

func (s InvoiceService) GenerateInvoice(bookingID int64) ([]byte, string, error) {
	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "invoice", "generate", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(b)
}

func (s InvoiceService) loadBooking(bookingID int64) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	return s.BookingRepo.GetByID(bookingID)
}

func buildInvoicePDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BESTACCORD TRANSPORTATION")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "DELIVERY INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%d-%s", b.ID, strings.ReplaceAll(b.DateNeeded, "-", ""))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+utils.FormatDateTime(time.Now()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Company   : %s", safe(b.CompanyName, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Shipper   : %s", safe(b.ShipperConsignorName, "-")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Trip details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	dateNeeded := b.DateNeeded
	if t, err := utils.ParseDate(b.DateNeeded); err == nil {
		dateNeeded = utils.FormatDate(t)
	}
	lines := []string{
		fmt.Sprintf("Origin      : %s", safe(b.OriginAddress, "-")),
		fmt.Sprintf("Schedule    : %s %s", safe(dateNeeded, "-"), safe(b.TimeNeeded, "-")),
		fmt.Sprintf("Vehicle     : %s (%s)", safe(b.VehicleType, "-"), safe(b.PlateNumber, "-")),
		fmt.Sprintf("Trip type   : %s (%d stop/s)", safe(b.TripType, "-"), b.NumberOfStops),
	}
	for _, l := range lines {
		pdf.Cell(0, 6, l)
		pdf.Ln(6)
	}

	for i, dest := range b.DestinationAddresses {
		pdf.Cell(0, 6, fmt.Sprintf("Stop %d      : %s", i+1, safe(dest, "-")))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Cargo:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	desc := fmt.Sprintf("%s - %d package/s x %d unit/s (%d total), %.2f kg",
		safe(b.ProductName, "-"), b.NumberOfPackages, b.UnitPerPackage, b.Quantity, b.GrossWeight)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Delivery fee: "+utils.FormatPeso(b.DeliveryFee))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This invoice covers one booking. Please present it on delivery.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%d_%s.pdf", b.ID, safeFilenamePart(b.CompanyName))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	return utils.FirstNonEmpty(v, fallback)
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
