package handlers

import (
	"net/http"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/employees
func GetEmployees(c *gin.Context) {
	repo := repositories.EmployeeRepository{}
	list, err := repo.List(c.Query("role"), c.Query("available") == "true")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/employees/:employeeId
func GetEmployeeByEmployeeID(c *gin.Context) {
	employeeID := c.Param("employeeId")
	repo := repositories.EmployeeRepository{}
	e, err := repo.GetByEmployeeID(employeeID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// POST /api/employees
func CreateEmployee(c *gin.Context) {
	var p models.EmployeePayload
	if !BindJSONOrError(c, &p) {
		return
	}
	repo := repositories.EmployeeRepository{}
	id, err := repo.Create(p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/employees/:id
func UpdateEmployee(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}
	var p models.EmployeePayload
	if !BindJSONOrError(c, &p) {
		return
	}
	repo := repositories.EmployeeRepository{}
	if err := repo.Update(id, p); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "employee updated"})
}

// PUT /api/employees/:id/archive
func ArchiveEmployee(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}
	var req archiveRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.EmployeeRepository{}
	if err := repo.SetArchived(id, *req.Archived); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "archived": *req.Archived})
}
