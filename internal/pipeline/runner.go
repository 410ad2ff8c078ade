package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/aggregate"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/contracts"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/extract"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/load"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/transform"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/validate"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/pkg/config"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/pkg/logger"
)

// SalesSource loads the primary sales table. The warehouse repository
// implements it; tests substitute an in-memory source.
type SalesSource interface {
	LoadSales(ctx context.Context) ([]contracts.SalesRecord, error)
}

// Runner executes the ETL stages strictly in sequence:
// extract → transform → (aggregate, load) → validate.
// A stage error aborts the run; there are no retries within a run.
type Runner struct {
	sales  SalesSource
	cfg    config.PipelineConfig
	logger *logger.Logger
}

// NewRunner creates a new pipeline runner.
func NewRunner(sales SalesSource, cfg config.PipelineConfig, log *logger.Logger) *Runner {
	return &Runner{
		sales:  sales,
		cfg:    cfg,
		logger: log.WithField("module", "pipeline"),
	}
}

// Run executes one full pipeline pass and returns its report. The
// returned report is also populated on failure, with Error set and the
// counts reached so far.
func (r *Runner) Run(ctx context.Context) (*contracts.RunReport, error) {
	report := &contracts.RunReport{
		StartedAt:     time.Now(),
		CleanDataPath: r.cfg.CleanDataPath,
		AggDataPath:   r.cfg.AggDataPath,
		Validated:     make(map[string]bool),
	}

	fail := func(err error) (*contracts.RunReport, error) {
		report.Duration = time.Since(report.StartedAt)
		report.Error = err.Error()
		return report, err
	}

	sales, err := r.sales.LoadSales(ctx)
	if err != nil {
		return fail(fmt.Errorf("load sales: %w", err))
	}
	report.SalesRows = len(sales)

	r.logger.WithFields(map[string]interface{}{
		"sales_rows": len(sales),
		"supplement": r.cfg.SupplementPath,
	}).Info("Starting pipeline run")

	merged, err := extract.Extract(sales, r.cfg.SupplementPath)
	if err != nil {
		return fail(fmt.Errorf("extract: %w", err))
	}
	report.MergedRows = len(merged)

	cleaned := transform.Transform(merged)
	report.CleanedRows = len(cleaned)

	aggregates := aggregate.MonthlyAverage(cleaned)
	report.AggregateRows = len(aggregates)

	if err := load.Load(cleaned, aggregates, r.cfg.CleanDataPath, r.cfg.AggDataPath); err != nil {
		return fail(fmt.Errorf("load outputs: %w", err))
	}

	report.Validated[r.cfg.CleanDataPath] = validate.Exists(r.cfg.CleanDataPath)
	report.Validated[r.cfg.AggDataPath] = validate.Exists(r.cfg.AggDataPath)
	for path, ok := range report.Validated {
		if !ok {
			return fail(fmt.Errorf("validate: output %s not present", path))
		}
	}

	report.Duration = time.Since(report.StartedAt)
	report.Success = true

	r.logger.WithFields(map[string]interface{}{
		"merged_rows":    report.MergedRows,
		"cleaned_rows":   report.CleanedRows,
		"aggregate_rows": report.AggregateRows,
		"duration":       report.Duration,
	}).Info("Pipeline run completed")

	return report, nil
}
