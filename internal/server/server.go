// Package server defines the core Server struct that composes the app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - database pool
//
// New opens everything at startup; Shutdown releases it in reverse order.
package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/database"
	loggerPkg "github.com/deppfellow/lightbnb/internal/logger"
	"github.com/rs/zerolog"
)

// Server is the application container that holds shared resources.
type Server struct {
	Config *config.Config

	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application.
	LoggerService *loggerPkg.LoggerService

	DB *database.Database
}

// New constructs a Server and opens the database pool.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(ctx, cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
	}, nil
}

// Shutdown closes the database pool and flushes the APM agent.
//
// It is safe to call on a partially built Server.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database connection: %w", err))
		}
	}

	if err := ctx.Err(); err != nil {
		errs = append(errs, fmt.Errorf("shutdown deadline: %w", err))
	}

	s.LoggerService.Shutdown()

	return errors.Join(errs...)
}
