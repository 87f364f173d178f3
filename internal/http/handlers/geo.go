package handlers

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	intconfig "github.com/jpcunanan716/bestaccord-transportation-sub001/internal/config"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/geo"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/http/middleware"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/utils"

	"github.com/gin-gonic/gin"
)

var (
	geoMu         sync.RWMutex
	psgcClient    geo.PSGCClient
	geocodeClient geo.GeocodeClient
	divisionCache = geo.NewDivisionCache(6 * time.Hour)
)

// ConfigureGeo wires the upstream lookup clients. Called once at router setup.
func ConfigureGeo(env intconfig.Env) {
	geoMu.Lock()
	defer geoMu.Unlock()
	psgcClient = geo.NewPSGCClient(env.PSGCBaseURL)
	geocodeClient = geo.NewGeocodeClient(env.GeocodeBaseURL)
}

func geoClients() (geo.PSGCClient, geo.GeocodeClient) {
	geoMu.RLock()
	defer geoMu.RUnlock()
	return psgcClient, geocodeClient
}

// respondDivisions degrades to an empty list when the upstream directory is
// unreachable so the address form stays usable.
func respondDivisions(c *gin.Context, list []geo.Division, err error) {
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "geo", "lookup_failed", err.Error())
		c.JSON(http.StatusOK, []geo.Division{})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/geo/regions
func GetRegions(c *gin.Context) {
	psgc, _ := geoClients()
	list, err := divisionCache.Get(c.Request.Context(), "regions", psgc.Regions)
	respondDivisions(c, list, err)
}

// GET /api/geo/regions/:code/provinces
func GetProvinces(c *gin.Context) {
	code := c.Param("code")
	psgc, _ := geoClients()
	list, err := divisionCache.Get(c.Request.Context(), "provinces:"+code, func(ctx context.Context) ([]geo.Division, error) {
		return psgc.Provinces(ctx, code)
	})
	respondDivisions(c, list, err)
}

// GET /api/geo/provinces/:code/cities
func GetCitiesMunicipalities(c *gin.Context) {
	code := c.Param("code")
	psgc, _ := geoClients()
	list, err := divisionCache.Get(c.Request.Context(), "cities:"+code, func(ctx context.Context) ([]geo.Division, error) {
		return psgc.CitiesMunicipalities(ctx, code)
	})
	respondDivisions(c, list, err)
}

// GET /api/geo/cities/:code/barangays
func GetBarangays(c *gin.Context) {
	code := c.Param("code")
	psgc, _ := geoClients()
	list, err := divisionCache.Get(c.Request.Context(), "barangays:"+code, func(ctx context.Context) ([]geo.Division, error) {
		return psgc.Barangays(ctx, code)
	})
	respondDivisions(c, list, err)
}

// GET /api/geo/search?q=GDC+Compound+Caloocan
func Geocode(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		respondError(c, http.StatusBadRequest, "missing_query", "q query parameter is required", nil)
		return
	}

	_, geocoder := geoClients()
	pt, err := geocoder.Search(c.Request.Context(), q)
	if err != nil {
		respondError(c, http.StatusNotFound, "geocode_failed", "address could not be geocoded", err)
		return
	}
	c.JSON(http.StatusOK, pt)
}
