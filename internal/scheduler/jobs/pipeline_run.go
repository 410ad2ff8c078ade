package jobs

import (
	"context"

	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/pipeline"
)

// PipelineRun executes the full ETL pipeline on a cron schedule.
type PipelineRun struct {
	runner   *pipeline.Runner
	schedule string
}

// NewPipelineRun creates the scheduled pipeline job.
func NewPipelineRun(runner *pipeline.Runner, schedule string) *PipelineRun {
	return &PipelineRun{runner: runner, schedule: schedule}
}

// Name returns the job name.
func (j *PipelineRun) Name() string { return "pipeline-run" }

// Schedule returns the cron expression.
func (j *PipelineRun) Schedule() string { return j.schedule }

// Run executes one pipeline pass.
func (j *PipelineRun) Run(ctx context.Context) error {
	_, err := j.runner.Run(ctx)
	return err
}
