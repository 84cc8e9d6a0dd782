package main

import (
	"context"
	"os"

	"github.com/yigit/hrdirectory/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/hrdirectory/internal/server"
)

// @title ACME HR Directory API
// @version 1.0
// @description Departments and employees of ACME, backed by PostgreSQL

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

func main() {
	// Config, logger, database bootstrap and router are set up here; any failure is fatal.
	srv, err := server.NewServer(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until SIGINT/SIGTERM or a listen error.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
