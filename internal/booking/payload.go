package booking

import (
	"strings"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
)

// Submission is the persistence request emitted for a validated draft.
// Numeric inputs are coerced here (bad input becomes 0, which validation
// has already ruled out for required fields).
type Submission struct {
	ProductName               string   `json:"productName"`
	Quantity                  int      `json:"quantity"`
	NumberOfPackages          int      `json:"numberOfPackages"`
	UnitPerPackage            int      `json:"unitPerPackage"`
	GrossWeight               float64  `json:"grossWeight"`
	DeliveryFee               float64  `json:"deliveryFee"`
	CompanyName               string   `json:"companyName"`
	ShipperConsignorName      string   `json:"shipperConsignorName"`
	CustomerEstablishmentName string   `json:"customerEstablishmentName"`
	OriginAddress             string   `json:"originAddress"`
	TripType                  string   `json:"tripType"`
	NumberOfStops             int      `json:"numberOfStops"`
	DestinationAddresses      []string `json:"destinationAddresses"`
	VehicleID                 string   `json:"vehicleId"`
	VehicleType               string   `json:"vehicleType"`
	PlateNumber               string   `json:"plateNumber"`
	DateNeeded                string   `json:"dateNeeded"`
	TimeNeeded                string   `json:"timeNeeded"`
	EmployeeAssigned          []string `json:"employeeAssigned"`
	RoleOfEmployee            []string `json:"roleOfEmployee"`
}

// BuildSubmission serializes a validated draft. Crew blanks are dropped
// while the pairing of employee and role is preserved; for multi-stop trips
// the establishment label joins the branch names with " | ".
func BuildSubmission(d Draft) (Submission, error) {
	crew, err := NewCrew(d.Crew)
	if err != nil {
		return Submission{}, err
	}

	s := Submission{
		ProductName:          strings.TrimSpace(d.ProductName),
		NumberOfPackages:     atoiOrZero(d.NumberOfPackages),
		UnitPerPackage:       atoiOrZero(d.UnitPerPackage),
		GrossWeight:          parseFloatOrZero(d.GrossWeight),
		DeliveryFee:          parseFloatOrZero(d.DeliveryFee),
		CompanyName:          strings.TrimSpace(d.CompanyName),
		ShipperConsignorName: strings.TrimSpace(d.ShipperConsignorName),
		OriginAddress:        strings.TrimSpace(d.OriginAddress),
		TripType:             d.TripType,
		VehicleID:            strings.TrimSpace(d.VehicleID),
		VehicleType:          strings.TrimSpace(d.VehicleType),
		PlateNumber:          strings.TrimSpace(d.PlateNumber),
		DateNeeded:           strings.TrimSpace(d.DateNeeded),
		TimeNeeded:           strings.TrimSpace(d.TimeNeeded),
	}
	s.Quantity = s.NumberOfPackages * s.UnitPerPackage

	if d.TripType == models.TripMultiple {
		names := make([]string, 0, len(d.Stops))
		for _, stop := range d.Stops {
			names = append(names, stop.BranchName)
			s.DestinationAddresses = append(s.DestinationAddresses, stop.Address)
		}
		s.CustomerEstablishmentName = strings.Join(names, " | ")
	} else {
		s.CustomerEstablishmentName = strings.TrimSpace(d.CustomerEstablishmentName)
		s.DestinationAddresses = []string{strings.TrimSpace(d.DestinationAddress)}
	}
	s.NumberOfStops = len(s.DestinationAddresses)

	for _, m := range crew {
		s.EmployeeAssigned = append(s.EmployeeAssigned, m.EmployeeID)
		s.RoleOfEmployee = append(s.RoleOfEmployee, m.Role)
	}

	return s, nil
}
