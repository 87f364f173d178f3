package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "github.com/jpcunanan716/bestaccord-transportation-sub001/internal/config"
	h "github.com/jpcunanan716/bestaccord-transportation-sub001/internal/http/handlers"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)
	h.ConfigureGeo(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.Auth([]byte(env.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)

		// Users (admin only)
		users := api.Group("/users", auth, middleware.RequireRoles("admin"))
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUserByID)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)

		// Bookings
		bookings := api.Group("/bookings", auth)
		bookings.GET("", h.GetBookings)
		bookings.GET("/crew-candidates", h.GetCrewCandidates)
		bookings.GET("/:id", h.GetBooking)
		bookings.POST("", h.CreateBooking)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.PUT("/:id/archive", h.ArchiveBooking)
		bookings.PUT("/:id/status", middleware.RequireRoles("admin", "dispatcher"), h.SetBookingTripStatus)
		bookings.GET("/:id/invoice", h.GetBookingInvoicePDF)

		// Rate table
		api.GET("/rates/vehicle-types", h.GetRouteVehicleTypes)

		// Clients
		clients := api.Group("/clients", auth)
		clients.GET("", h.GetClients)
		clients.GET("/companies", h.GetClientCompanies)
		clients.GET("/branches", h.GetClientBranches)
		clients.GET("/:id", h.GetClientByID)
		clients.POST("", h.CreateClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.PUT("/:id/archive", h.ArchiveClient)

		// Vehicles
		vehicles := api.Group("/vehicles", auth)
		vehicles.GET("", h.GetVehicles)
		vehicles.GET("/:id", h.GetVehicleByID)
		vehicles.POST("", h.CreateVehicle)
		vehicles.PUT("/:id", h.UpdateVehicle)
		vehicles.PUT("/:id/archive", h.ArchiveVehicle)

		// Employees
		employees := api.Group("/employees", auth)
		employees.GET("", h.GetEmployees)
		employees.GET("/by-code/:employeeId", h.GetEmployeeByEmployeeID)
		employees.POST("", h.CreateEmployee)
		employees.PUT("/:id", h.UpdateEmployee)
		employees.PUT("/:id/archive", h.ArchiveEmployee)

		// Address lookups
		geoGroup := api.Group("/geo")
		geoGroup.GET("/regions", h.GetRegions)
		geoGroup.GET("/regions/:code/provinces", h.GetProvinces)
		geoGroup.GET("/provinces/:code/cities", h.GetCitiesMunicipalities)
		geoGroup.GET("/cities/:code/barangays", h.GetBarangays)
		geoGroup.GET("/search", h.Geocode)
	}

	return r
}
