package http

import (
	"net/http"
	"time"

	"github.com/technicaltest/vehicle-inventory-service/internal/core/domain"
	"github.com/technicaltest/vehicle-inventory-service/internal/core/ports"
	"github.com/technicaltest/vehicle-inventory-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type BrandHandler struct {
	brandService *services.BrandService
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

type BrandRequest struct {
	Name string `json:"name" binding:"required" example:"Toyota"`
}

func NewBrandHandler(
	brandService *services.BrandService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *BrandHandler {
	return &BrandHandler{
		brandService: brandService,
		logger:       logger,
		metrics:      metrics,
	}
}

// @Summary List brands
// @Description Returns every brand as an {id, name} projection
// @Tags brands
// @Produce json
// @Success 200 {object} envelope "Brand list"
// @Failure 500 {object} envelope "Storage failure"
// @Router /brand/get-brands [get]
func (h *BrandHandler) GetBrands(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	brands, err := h.brandService.ListBrands(c.Request.Context())
	if err != nil {
		newErrorResponse(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, brands)
}

// @Summary Create brand
// @Description Creates a brand with a unique name
// @Tags brands
// @Accept json
// @Produce json
// @Param request body BrandRequest true "Brand data"
// @Success 201 {object} envelope "Brand created"
// @Failure 400 {object} envelope "Invalid request"
// @Failure 409 {object} envelope "Name already taken"
// @Router /brand/add-brand [post]
func (h *BrandHandler) AddBrand(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in add brand", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, bindError(err))
		return
	}

	if err := h.brandService.CreateBrand(c.Request.Context(), domain.BrandInput{Name: req.Name}); err != nil {
		newErrorResponse(c, err)
		return
	}

	newSuccessResponse(c, http.StatusCreated, statusSuccess)
}

// @Summary Get brand
// @Description Returns one brand by id
// @Tags brands
// @Produce json
// @Param id path string true "Brand id"
// @Success 200 {object} envelope "Brand found"
// @Failure 404 {object} envelope "Brand not found"
// @Router /brand/get-brand/{id} [get]
func (h *BrandHandler) GetBrand(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	brand, err := h.brandService.GetBrand(c.Request.Context(), c.Param("id"))
	if err != nil {
		newErrorResponse(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, brand)
}

// @Summary Update brand
// @Description Overwrites the name of an existing brand
// @Tags brands
// @Accept json
// @Produce json
// @Param id path string true "Brand id"
// @Param request body BrandRequest true "Brand data"
// @Success 200 {object} envelope "Brand updated"
// @Failure 400 {object} envelope "Invalid request"
// @Failure 404 {object} envelope "Brand not found"
// @Failure 409 {object} envelope "Name already taken"
// @Router /brand/update-brand/{id} [put]
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update brand", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, bindError(err))
		return
	}

	if err := h.brandService.UpdateBrand(c.Request.Context(), c.Param("id"), domain.BrandInput{Name: req.Name}); err != nil {
		newErrorResponse(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, statusSuccess)
}

// @Summary Delete brand
// @Description Deletes a brand and, by cascade, every vehicle of that brand
// @Tags brands
// @Produce json
// @Param id path string true "Brand id"
// @Success 200 {object} envelope "Brand deleted"
// @Failure 404 {object} envelope "Brand not found"
// @Router /brand/delete-brand/{id} [delete]
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if err := h.brandService.DeleteBrand(c.Request.Context(), c.Param("id")); err != nil {
		newErrorResponse(c, err)
		return
	}

	newSuccessResponse(c, http.StatusOK, statusSuccess)
}
