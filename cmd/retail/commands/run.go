package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/pipeline"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/salesdb"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/pkg/config"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/pkg/database"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/pkg/logger"
)

var (
	// Run flags; empty means "use the configured value".
	runSupplementPath string
	runCleanDataPath  string
	runAggDataPath    string
)

// runCmd executes the pipeline once.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the ETL pipeline once",
	Long: `Runs extract, transform, aggregate, load, and validate in sequence.

Example:
  go run ./cmd/retail run
  go run ./cmd/retail run --clean-path out/clean.csv --agg-path out/agg.csv`,
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runSupplementPath, "supplement", "", "supplement parquet file (default from config)")
	runCmd.Flags().StringVar(&runCleanDataPath, "clean-path", "", "cleaned data output path (default from config)")
	runCmd.Flags().StringVar(&runAggDataPath, "agg-path", "", "aggregate output path (default from config)")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if runSupplementPath != "" {
		cfg.Pipeline.SupplementPath = runSupplementPath
	}
	if runCleanDataPath != "" {
		cfg.Pipeline.CleanDataPath = runCleanDataPath
	}
	if runAggDataPath != "" {
		cfg.Pipeline.AggDataPath = runAggDataPath
	}

	log := logger.New(cfg)

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	repo := salesdb.NewRepository(db.Pool, cfg.Pipeline.SalesTable)
	runner := pipeline.NewRunner(repo, cfg.Pipeline, log)

	report, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Pipeline completed in %s\n", report.Duration)
	fmt.Printf("  sales rows     : %d\n", report.SalesRows)
	fmt.Printf("  merged rows    : %d\n", report.MergedRows)
	fmt.Printf("  cleaned rows   : %d\n", report.CleanedRows)
	fmt.Printf("  aggregate rows : %d\n", report.AggregateRows)
	fmt.Printf("  clean data     : %s\n", report.CleanDataPath)
	fmt.Printf("  aggregate data : %s\n", report.AggDataPath)

	return nil
}
