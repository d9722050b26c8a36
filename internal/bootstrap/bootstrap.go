package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/chillstudy/backend/docs" // Import generated swagger docs
	appControllers "github.com/chillstudy/backend/internal/app/controllers"
	appRepos "github.com/chillstudy/backend/internal/app/repositories"
	appRoutes "github.com/chillstudy/backend/internal/app/routes"
	appServices "github.com/chillstudy/backend/internal/app/services"
	"github.com/chillstudy/backend/internal/config"
	appMiddleware "github.com/chillstudy/backend/internal/middleware"
	"github.com/chillstudy/backend/internal/pkg/filestorage"
	"github.com/chillstudy/backend/internal/pkg/logger"
	"github.com/chillstudy/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService       appServices.CourseService    // Interface type
	LocationService     appServices.LocationService  // Interface type
	ReferenceService    appServices.ReferenceService // Interface type
	SessionService      appServices.SessionService   // Interface type
	CourseController    *appControllers.CourseController
	LocationController  *appControllers.LocationController
	ReferenceController *appControllers.ReferenceController
	SessionController   *appControllers.SessionController
	Repos               *appRepos.Repositories // Include the main repo container
	Logger              zerolog.Logger
	FileStorage         *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CHILLSTUDY_CONFIG", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories()

	// Initialize File Storage
	// The baseURL must match the static file serving endpoint
	var err error
	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	// Seed the in-memory stores before any service touches them.
	if cfg.Seed.DemoData {
		if err := seed.CreateDefaultData(context.Background(), deps.Repos, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	// Initialize services
	viewBuilder := appServices.NewSessionViewBuilder(deps.Repos)

	deps.CourseService = appServices.NewCourseService(deps.Repos.Courses, cfg.Validation.Strict)
	deps.LocationService = appServices.NewLocationService(deps.Repos.Locations, cfg.Validation.Strict)
	deps.ReferenceService = appServices.NewReferenceService(deps.Repos.RoomTypes, deps.Repos.Tags)
	deps.SessionService = appServices.NewSessionService(deps.Repos, deps.FileStorage, viewBuilder, lgr)

	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.LocationController = appControllers.NewLocationController(deps.LocationService)
	deps.ReferenceController = appControllers.NewReferenceController(deps.ReferenceService)
	deps.SessionController = appControllers.NewSessionController(deps.SessionService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), gin.Recovery())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.LocationController,
		deps.ReferenceController,
		deps.SessionController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
