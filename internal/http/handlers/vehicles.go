package handlers

import (
	"net/http"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/vehicles
func GetVehicles(c *gin.Context) {
	repo := repositories.VehicleRepository{}
	list, err := repo.List(c.Query("q"), c.Query("available") == "true")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/vehicles/:id
func GetVehicleByID(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}
	repo := repositories.VehicleRepository{}
	v, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/vehicles
func CreateVehicle(c *gin.Context) {
	var p models.VehiclePayload
	if !BindJSONOrError(c, &p) {
		return
	}
	repo := repositories.VehicleRepository{}
	id, err := repo.Create(p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}
	var p models.VehiclePayload
	if !BindJSONOrError(c, &p) {
		return
	}
	repo := repositories.VehicleRepository{}
	if err := repo.Update(id, p); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle updated"})
}

// PUT /api/vehicles/:id/archive
func ArchiveVehicle(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}
	var req archiveRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.VehicleRepository{}
	if err := repo.SetArchived(id, *req.Archived); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "archived": *req.Archived})
}
