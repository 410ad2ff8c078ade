package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/api"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/api/handlers"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/pipeline"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/salesdb"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/scheduler"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/scheduler/jobs"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/pkg/config"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/pkg/database"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/pkg/logger"
)

// serveCmd runs the status API and, when enabled, the cron scheduler.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the status API and scheduler",
	Long: `Starts the HTTP status server and, when SCHEDULER_ENABLED is
set, a cron job that runs the pipeline on the configured schedule.

Example:
  go run ./cmd/retail serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	repo := salesdb.NewRepository(db.Pool, cfg.Pipeline.SalesTable)
	runner := pipeline.NewRunner(repo, cfg.Pipeline, log)

	pipelineHandler := handlers.NewPipelineHandler(runner, log)
	router := api.NewRouter(pipelineHandler, log)
	server := api.New(cfg, log, router)

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched = scheduler.New(log)
		if err := sched.AddJob(jobs.NewPipelineRun(runner, cfg.Scheduler.Schedule)); err != nil {
			return err
		}
		sched.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if sched != nil {
			sched.Stop()
		}
		return err
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	if sched != nil {
		sched.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
