package http

import (
	"net/http"

	"github.com/technicaltest/vehicle-inventory-service/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	brandHandler *BrandHandler,
	vehicleHandler *VehicleHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS: a single designated origin may call this API.
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{cfg.AllowedOrigins},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "PATCH"},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{"*"},
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// Brand routes
	brand := api.Group("/brand")
	{
		brand.GET("/get-brands", brandHandler.GetBrands)
		brand.POST("/add-brand", brandHandler.AddBrand)
		brand.GET("/get-brand/:id", brandHandler.GetBrand)
		brand.PUT("/update-brand/:id", brandHandler.UpdateBrand)
		brand.DELETE("/delete-brand/:id", brandHandler.DeleteBrand)
	}

	// Vehicle routes
	vehicle := api.Group("/vehicle")
	{
		vehicle.GET("/get-vehicles/:sortField/:sortDirection/:page", vehicleHandler.GetVehicles)
		vehicle.GET("/search-vehicles/:term/:page", vehicleHandler.SearchVehicles)
		vehicle.GET("/get-vehicle/:id", vehicleHandler.GetVehicle)
		vehicle.POST("/add-vehicle", vehicleHandler.AddVehicle)
		vehicle.PUT("/update-vehicle/:id", vehicleHandler.UpdateVehicle)
		vehicle.DELETE("/delete-vehicle/:id", vehicleHandler.DeleteVehicle)
	}

	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
