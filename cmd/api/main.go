package main

import (
	"os"

	"github.com/chillstudy/backend/internal/pkg/logger" // Still needed for initial error logging
	"github.com/chillstudy/backend/internal/server"
)

// @title ChillStudy API
// @version 1.0
// @description API for the ChillStudy campus study session coordinator
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@chillstudy.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	// NewServer orchestrates LoadConfigAndSetupLogger, BuildDependencies and
	// SetupRouter
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	// If Run completes without error, graceful shutdown was successful.
	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
