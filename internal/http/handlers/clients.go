package handlers

import (
	"net/http"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/booking"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/repositories"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/clients
func GetClients(c *gin.Context) {
	repo := repositories.ClientRepository{}
	list, err := repo.List(c.Query("q"), c.Query("archived") == "true")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/clients/companies
func GetClientCompanies(c *gin.Context) {
	repo := repositories.ClientRepository{}
	companies, err := repo.Companies()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GET /api/clients/branches?company=Acme%20Foods
//
// Each branch is returned with the delivery address the booking form
// would derive for it.
func GetClientBranches(c *gin.Context) {
	company := utils.NormalizeSpace(c.Query("company"))
	if company == "" {
		respondError(c, http.StatusBadRequest, "missing_company", "company query parameter is required", nil)
		return
	}

	repo := repositories.ClientRepository{}
	branches, err := repo.BranchesByCompany(company)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]gin.H, 0, len(branches))
	for _, b := range branches {
		out = append(out, gin.H{
			"branch":  b,
			"address": booking.BranchAddress(b),
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/clients/:id
func GetClientByID(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}
	repo := repositories.ClientRepository{}
	b, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /api/clients
func CreateClient(c *gin.Context) {
	var p models.ClientBranchPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	repo := repositories.ClientRepository{}
	id, err := repo.Create(p)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/clients/:id
func UpdateClient(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}
	var p models.ClientBranchPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	repo := repositories.ClientRepository{}
	if err := repo.Update(id, p); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client branch updated"})
}

// PUT /api/clients/:id/archive
func ArchiveClient(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}
	var req archiveRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.ClientRepository{}
	if err := repo.SetArchived(id, *req.Archived); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "archived": *req.Archived})
}
