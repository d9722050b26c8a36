package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chillstudy/backend/internal/app/models/dto"
	"github.com/chillstudy/backend/internal/app/services"
	"github.com/chillstudy/backend/internal/middleware"
)

// ReferenceController serves the read-only reference data lists.
type ReferenceController struct {
	referenceService services.ReferenceService
}

// NewReferenceController creates a new ReferenceController
func NewReferenceController(referenceService services.ReferenceService) *ReferenceController {
	return &ReferenceController{
		referenceService: referenceService,
	}
}

// ListRoomTypes lists the available room types
// @Summary List room types
// @Description Lists the room type options available when creating a session.
// @Tags reference
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.RoomType} "Room types retrieved successfully"
// @Router /room-types [get]
func (c *ReferenceController) ListRoomTypes(ctx *gin.Context) {
	roomTypes, err := c.referenceService.ListRoomTypes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(roomTypes))
}

// ListTags lists the available tags
// @Summary List tags
// @Description Lists the tag options available when creating a session.
// @Tags reference
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Tag} "Tags retrieved successfully"
// @Router /tags [get]
func (c *ReferenceController) ListTags(ctx *gin.Context) {
	tags, err := c.referenceService.ListTags(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(tags))
}
