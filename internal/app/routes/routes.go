package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chillstudy/backend/internal/app/controllers"
	"github.com/chillstudy/backend/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	locationController *controllers.LocationController,
	referenceController *controllers.ReferenceController,
	sessionController *controllers.SessionController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.POST("", courseController.CreateCourse)
	}

	// Location routes
	locations := v1.Group("/locations")
	{
		locations.GET("", locationController.ListLocations)
		locations.POST("", locationController.CreateLocation)
	}

	// Reference data routes
	v1.GET("/room-types", referenceController.ListRoomTypes)
	v1.GET("/tags", referenceController.ListTags)

	// Session routes
	v1.GET("/dashboard", sessionController.Dashboard)
	sessions := v1.Group("/sessions")
	{
		sessions.POST("", sessionController.CreateSession)
		sessions.GET("/:id", sessionController.GetSession)
		sessions.POST("/:id/leave", sessionController.LeaveSession)
		sessions.POST("/:id/resources", sessionController.UploadResource)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
