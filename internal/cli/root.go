// Package cli implements the lightbnb command line.
//
// Each invocation loads config, opens the database handle, runs one
// data-access operation, prints the result as JSON and shuts down.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/lib/utils"
	"github.com/deppfellow/lightbnb/internal/logger"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// app carries what a subcommand needs once PersistentPreRunE has run.
type app struct {
	out io.Writer

	logger        zerolog.Logger
	loggerService *logger.LoggerService
	server        *server.Server
	services      *service.Services
	txn           *newrelic.Transaction
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lightbnb",
		Short: "LightBnB data access",
		Long: `Query and update the LightBnB rental database.

Connection settings come from LIGHTBNB_* environment variables
or a .env file in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd)
		},
	}

	rootCmd.AddCommand(newPropertiesCmd(a))
	rootCmd.AddCommand(newUsersCmd(a))
	rootCmd.AddCommand(newReservationsCmd(a))
	rootCmd.AddCommand(newPingCmd(a))

	return rootCmd
}

// open builds the dependency graph: config, logging, APM, database, services.
func (a *app) open(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a.loggerService, err = logger.NewLoggerService(cfg.Observability)
	if err != nil {
		return err
	}

	a.logger = logger.NewLoggerWithService(cfg.Observability, a.loggerService)

	ctx := cmd.Context()
	if nrApp := a.loggerService.GetApplication(); nrApp != nil {
		a.txn = nrApp.StartTransaction(cmd.CommandPath())
		ctx = newrelic.NewContext(ctx, a.txn)
		a.logger = logger.WithTraceContext(a.logger, a.txn)
		cmd.SetContext(ctx)
	}

	a.server, err = server.New(ctx, cfg, &a.logger, a.loggerService)
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(a.server)
	a.services = service.NewService(a.server, repos)

	return nil
}

// close releases whatever open managed to build.
func (a *app) close() error {
	if a.txn != nil {
		a.txn.End()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.server != nil {
		return a.server.Shutdown(ctx)
	}

	a.loggerService.Shutdown()
	return nil
}

func (a *app) print(v any) error {
	return utils.WriteJSON(a.out, v)
}

// noticeError reports err on the APM transaction, if any.
func (a *app) noticeError(err error) error {
	if err != nil && a.txn != nil {
		a.txn.NoticeError(err)
	}
	return err
}

func newPingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check database connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()
			if err := a.server.DB.Ping(cmd.Context()); err != nil {
				return a.noticeError(fmt.Errorf("database unreachable: %w", err))
			}
			return a.print(map[string]string{
				"status":        "healthy",
				"response_time": time.Since(start).String(),
			})
		},
	}
}

// Execute runs the root command and shuts down afterwards, also when the
// command failed.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{out: os.Stdout}
	err := newRootCmd(a).ExecuteContext(ctx)

	if closeErr := a.close(); closeErr != nil && err == nil {
		err = closeErr
	}

	return err
}
