package models

// TripType values accepted on a booking.
const (
	TripSingle   = "single"
	TripMultiple = "multiple"
)

// Booking is the persisted cargo booking record.
type Booking struct {
	ID                        int64    `json:"id"`
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
	DateNeeded                string   `json:"dateNeeded"` // YYYY-MM-DD
	TimeNeeded                string   `json:"timeNeeded"` // HH:MM
	EmployeeAssigned          []string `json:"employeeAssigned"`
	RoleOfEmployee            []string `json:"roleOfEmployee"`
	TripStatus                string   `json:"tripStatus"`
	Archived                  bool     `json:"archived"`
	CreatedAt                 string   `json:"createdAt,omitempty"`
}
