package models

type Vehicle struct {
	ID          int64  `json:"id"`
	VehicleType string `json:"vehicleType"`
	PlateNumber string `json:"plateNumber"`
	Status      string `json:"status"` // Available / On Trip / Maintenance
	Archived    bool   `json:"archived"`
}

type VehiclePayload struct {
	VehicleType string `json:"vehicleType" binding:"required"`
	PlateNumber string `json:"plateNumber" binding:"required"`
	Status      string `json:"status"`
}
