package models

// Employee roles recognized by crew assignment.
const (
	RoleDriver = "Driver"
	RoleHelper = "Helper"
)

const StatusAvailable = "Available"

type Employee struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employeeId"` // business code, e.g. EMP-0001
	FullName   string `json:"fullName"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	Archived   bool   `json:"archived"`
}

type EmployeePayload struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	FullName   string `json:"fullName" binding:"required"`
	Role       string `json:"role" binding:"required"`
	Status     string `json:"status"`
}
