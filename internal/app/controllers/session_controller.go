package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chillstudy/backend/internal/app/models/dto"
	"github.com/chillstudy/backend/internal/app/services"
	"github.com/chillstudy/backend/internal/middleware"
	"github.com/chillstudy/backend/internal/pkg/apperrors"
)

// SessionController handles study session operations
type SessionController struct {
	sessionService services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService services.SessionService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// Dashboard returns the home-page aggregate
// @Summary Dashboard
// @Description Returns both session buckets together with the courses, locations and distinct filter option lists.
// @Tags sessions
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard retrieved successfully"
// @Router /dashboard [get]
func (c *SessionController) Dashboard(ctx *gin.Context) {
	dashboard, err := c.sessionService.Dashboard(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}

// CreateSession handles session creation from a multipart form
// @Summary Create a study session
// @Description Creates a study session from the submitted form fields. Accepts either a stored course/location selection or free-text values, optional tags, an optional reminder time and an optional txt/pdf resource file.
// @Tags sessions
// @Accept multipart/form-data
// @Produce json
// @Param course_id formData string false "Stored course id"
// @Param location_id formData string false "Stored location id"
// @Param course formData string false "Free-text course name"
// @Param location formData string false "Free-text location"
// @Param max_attendees formData string false "Capacity, defaults to 1"
// @Param description formData string false "Description"
// @Param start_time formData string false "Start timestamp"
// @Param end_time formData string false "End timestamp"
// @Param chill_level formData string false "Chill level emoji"
// @Param room_type_id formData string false "Room type id"
// @Param tag_ids formData []string false "Tag ids" collectionFormat(multi)
// @Param reminder_time formData string false "Reminder timestamp"
// @Param file formData file false "Resource file (txt or pdf)"
// @Success 201 {object} dto.APIResponse{data=dto.SessionViewResponse} "Session created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid session data"
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	req := dto.CreateSessionRequest{
		CourseID:     ctx.PostForm("course_id"),
		LocationID:   ctx.PostForm("location_id"),
		Course:       ctx.PostForm("course"),
		Location:     ctx.PostForm("location"),
		MaxAttendees: ctx.PostForm("max_attendees"),
		Description:  ctx.PostForm("description"),
		StartTime:    ctx.PostForm("start_time"),
		EndTime:      ctx.PostForm("end_time"),
		ChillLevel:   ctx.PostForm("chill_level"),
		RoomTypeID:   ctx.PostForm("room_type_id"),
		TagIDs:       ctx.PostFormArray("tag_ids"),
		ReminderTime: ctx.PostForm("reminder_time"),
	}

	file, err := optionalFormFile(ctx, "file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid file upload"))
		return
	}

	view, err := c.sessionService.CreateSession(ctx, req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(view))
}

// GetSession returns the detail view for one session
// @Summary Get session details
// @Description Returns the denormalized detail view for a session from either bucket, with resolved course, location, room type, tags, resources and reminders.
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.SessionViewResponse} "Session retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	id, err := parsePathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	view, err := c.sessionService.GetSessionView(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(view))
}

// LeaveSession removes a session from the caller's list
// @Summary Leave a session
// @Description Removes the session from the caller's own list. Joinable sessions organized by others cannot be left.
// @Tags sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Session left successfully"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/leave [post]
func (c *SessionController) LeaveSession(ctx *gin.Context) {
	id, err := parsePathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.sessionService.LeaveSession(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Left session"}))
}

// UploadResource attaches a file to an existing session
// @Summary Upload a session resource
// @Description Attaches a txt or pdf file to an existing session. Only the organizer may upload.
// @Tags sessions
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Session ID"
// @Param file formData file true "Resource file (txt or pdf)"
// @Success 201 {object} dto.APIResponse{data=models.Resource} "Resource uploaded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid resource file"
// @Failure 403 {object} dto.ErrorResponse "Not the organizer"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id}/resources [post]
func (c *SessionController) UploadResource(ctx *gin.Context) {
	id, err := parsePathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	file, err := optionalFormFile(ctx, "file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid file upload"))
		return
	}

	resource, err := c.sessionService.UploadResource(ctx, id, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resource))
}

// parsePathID parses a numeric :id path parameter.
func parsePathID(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("Invalid " + name + " parameter")
	}
	return id, nil
}

// optionalFormFile returns the named upload, or nil when the request simply
// does not carry one.
func optionalFormFile(ctx *gin.Context, name string) (*multipart.FileHeader, error) {
	file, err := ctx.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return file, nil
}
