package handlers

import (
	"net/http"
	"strings"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/rates"

	"github.com/gin-gonic/gin"
)

// GET /api/rates/vehicle-types?origin=GDC&destination=Caloocan
//
// Returns the vehicle types the rate table allows for the route. A route
// with no entries is unrestricted: every vehicle type may be offered.
func GetRouteVehicleTypes(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		respondError(c, http.StatusBadRequest, "missing_route", "origin and destination query parameters are required", nil)
		return
	}

	key := rates.RouteKey(origin, destination)
	allowed := rates.AllowedVehicleTypes(origin, destination)

	types := make([]string, 0, len(allowed))
	for t := range allowed {
		types = append(types, t)
	}

	c.JSON(http.StatusOK, gin.H{
		"routeKey":     key,
		"restricted":   len(allowed) > 0,
		"vehicleTypes": types,
		"entries":      rates.Lookup(key),
	})
}
