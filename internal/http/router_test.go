package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	intconfig "github.com/jpcunanan716/bestaccord-transportation-sub001/internal/config"

	"github.com/gin-gonic/gin"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(intconfig.Env{
		JWTSecret:   "test-secret",
		CORSOrigins: []string{"http://localhost:5173"},
	})
}

func TestRouteVehicleTypesEndpoint(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rates/vehicle-types?origin=GDC&destination=Caloocan", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		RouteKey     string   `json:"routeKey"`
		Restricted   bool     `json:"restricted"`
		VehicleTypes []string `json:"vehicleTypes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RouteKey != "gdc - caloocan" {
		t.Fatalf("routeKey = %q", resp.RouteKey)
	}
	if !resp.Restricted {
		t.Fatal("route should be restricted")
	}
	types := map[string]bool{}
	for _, vt := range resp.VehicleTypes {
		types[vt] = true
	}
	if !types["Car"] || !types["Truck"] {
		t.Fatalf("vehicleTypes = %v", resp.VehicleTypes)
	}
}

func TestRouteVehicleTypesUnknownRouteUnrestricted(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rates/vehicle-types?origin=Davao&destination=Cebu", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Restricted bool `json:"restricted"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Restricted {
		t.Fatal("unknown route must not be restricted")
	}
}

func TestRouteVehicleTypesRequiresRoute(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rates/vehicle-types?origin=GDC", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestBookingsRequireAuth(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
