package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chillstudy/backend/internal/app/models/dto"
	"github.com/chillstudy/backend/internal/app/services"
	"github.com/chillstudy/backend/internal/middleware"
)

// LocationController handles location-related operations
type LocationController struct {
	locationService services.LocationService
}

// NewLocationController creates a new LocationController
func NewLocationController(locationService services.LocationService) *LocationController {
	return &LocationController{
		locationService: locationService,
	}
}

// ListLocations lists locations, optionally filtered
// @Summary List locations
// @Description Lists locations. An optional query filters by a case-insensitive substring match against address or room number.
// @Tags locations
// @Accept json
// @Produce json
// @Param q query string false "Filter query"
// @Success 200 {object} dto.APIResponse{data=[]models.Location} "Locations retrieved successfully"
// @Router /locations [get]
func (c *LocationController) ListLocations(ctx *gin.Context) {
	locations, err := c.locationService.ListLocations(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(locations))
}

// CreateLocation handles location creation
// @Summary Create a new location
// @Description Creates a location. Address and room number are required; duplicates of (address, room number) are rejected.
// @Tags locations
// @Accept json
// @Produce json
// @Param request body dto.CreateLocationRequest true "Location information"
// @Success 201 {object} dto.APIResponse{data=models.Location} "Location created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid location data"
// @Failure 409 {object} dto.ErrorResponse "Location already exists"
// @Router /locations [post]
func (c *LocationController) CreateLocation(ctx *gin.Context) {
	var req dto.CreateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid location data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	location, err := c.locationService.CreateLocation(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(location))
}
