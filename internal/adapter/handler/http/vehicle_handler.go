package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/technicaltest/vehicle-inventory-service/internal/core/domain"
	"github.com/technicaltest/vehicle-inventory-service/internal/core/ports"
	"github.com/technicaltest/vehicle-inventory-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

// Paged vehicle endpoints always serve pages of ten.
const vehiclePageSize = 10

type VehicleHandler struct {
	vehicleService *services.VehicleService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type VehicleRequest struct {
	Model        string `json:"model" binding:"required" example:"Corolla"`
	LicensePlate string `json:"licensePlate" binding:"required" example:"ABC12"`
	Color        string `json:"color" binding:"required" example:"Red"`
	Year         string `json:"year" binding:"required" example:"2020"`
	BrandID      string `json:"brandId" binding:"required" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
}

func NewVehicleHandler(
	vehicleService *services.VehicleService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary List vehicles
// @Description Returns one page of vehicles sorted by the given field
// @Tags vehicles
// @Produce json
// @Param sortField path string true "Sort field: model, year, brand or licensePlate"
// @Param sortDirection path string true "asc or desc"
// @Param page path int true "Page index, negative values read page 0"
// @Success 200 {object} envelope "Page of vehicles plus totalPages"
// @Failure 400 {object} envelope "Unrecognized sort field"
// @Router /vehicle/get-vehicles/{sortField}/{sortDirection}/{page} [get]
func (h *VehicleHandler) GetVehicles(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		newErrorResponse(c, domain.InvalidArgument("page must be a number"))
		return
	}
	if page < 0 {
		page = 0
	}

	// The public field name is "brand"; storage sorts on the joined
	// brand name column.
	sortField := c.Param("sortField")
	if sortField == "brand" {
		sortField = domain.SortBrandName
	}

	result, err := h.vehicleService.ListVehicles(c.Request.Context(), page, vehiclePageSize, sortField, c.Param("sortDirection"))
	if err != nil {
		newErrorResponse(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, result)
}

// @Summary Search vehicles
// @Description Returns one page of vehicles whose brand name, model or license plate contains the term
// @Tags vehicles
// @Produce json
// @Param term path string true "Search term"
// @Param page path int true "Page index, negative values read page 0"
// @Success 200 {object} envelope "Page of vehicles plus totalPages"
// @Router /vehicle/search-vehicles/{term}/{page} [get]
func (h *VehicleHandler) SearchVehicles(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		newErrorResponse(c, domain.InvalidArgument("page must be a number"))
		return
	}
	if page < 0 {
		page = 0
	}

	result, err := h.vehicleService.SearchVehicles(c.Request.Context(), c.Param("term"), page, vehiclePageSize)
	if err != nil {
		newErrorResponse(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, result)
}

// @Summary Get vehicle
// @Description Returns one vehicle with its brand nested
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle id"
// @Success 200 {object} envelope "Vehicle found"
// @Failure 404 {object} envelope "Vehicle not found"
// @Router /vehicle/get-vehicle/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		newErrorResponse(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, vehicle)
}

// @Summary Create vehicle
// @Description Creates a vehicle referencing an existing brand
// @Tags vehicles
// @Accept json
// @Produce json
// @Param request body VehicleRequest true "Vehicle data"
// @Success 201 {object} envelope "Vehicle created"
// @Failure 400 {object} envelope "Invalid request"
// @Failure 404 {object} envelope "Brand does not exist"
// @Failure 409 {object} envelope "License plate already taken"
// @Router /vehicle/add-vehicle [post]
func (h *VehicleHandler) AddVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in add vehicle", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, bindError(err))
		return
	}

	if err := h.vehicleService.CreateVehicle(c.Request.Context(), vehicleInput(req)); err != nil {
		newErrorResponse(c, err)
		return
	}

	newSuccessResponse(c, http.StatusCreated, statusSuccess)
}

// @Summary Update vehicle
// @Description Overwrites every mutable field of an existing vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle id"
// @Param request body VehicleRequest true "Vehicle data"
// @Success 200 {object} envelope "Vehicle updated"
// @Failure 400 {object} envelope "Invalid request"
// @Failure 404 {object} envelope "Vehicle or brand not found"
// @Failure 409 {object} envelope "License plate already taken"
// @Router /vehicle/update-vehicle/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update vehicle", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, bindError(err))
		return
	}

	if err := h.vehicleService.UpdateVehicle(c.Request.Context(), c.Param("id"), vehicleInput(req)); err != nil {
		newErrorResponse(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, statusSuccess)
}

// @Summary Delete vehicle
// @Description Deletes one vehicle
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle id"
// @Success 200 {object} envelope "Vehicle deleted"
// @Failure 404 {object} envelope "Vehicle not found"
// @Router /vehicle/delete-vehicle/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		newErrorResponse(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, statusSuccess)
}

func vehicleInput(req VehicleRequest) domain.VehicleInput {
	return domain.VehicleInput{
		Model:        req.Model,
		LicensePlate: req.LicensePlate,
		Color:        req.Color,
		Year:         req.Year,
		BrandID:      req.BrandID,
	}
}
