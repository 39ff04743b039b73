package main

import (
	"os"

	"github.com/jobhubs/backoffice/internal/pkg/logger"
	"github.com/jobhubs/backoffice/internal/server"
)

// @title JobHubs Backoffice API
// @version 1.0
// @description Administrative backoffice API for the JobHubs platform

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
