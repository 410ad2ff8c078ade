package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/contracts"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/pkg/config"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/pkg/logger"
)

func fp(v float64) *float64 { return &v }
func ip(v int64) *int64     { return &v }
func bp(v bool) *bool       { return &v }

type memorySalesSource struct {
	sales []contracts.SalesRecord
	err   error
}

func (s *memorySalesSource) LoadSales(ctx context.Context) ([]contracts.SalesRecord, error) {
	return s.sales, s.err
}

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
}

func writeSupplement(t *testing.T, dir string, rows []contracts.SupplementRecord) string {
	t.Helper()
	path := filepath.Join(dir, "extra_data.parquet")
	require.NoError(t, parquet.WriteFile(path, rows))
	return path
}

func TestRunner_FullRun(t *testing.T) {
	dir := t.TempDir()
	supplementPath := writeSupplement(t, dir, []contracts.SupplementRecord{
		{Index: 1, IsHoliday: bp(true), CPI: fp(130.5), Unemployment: fp(7.2), Dept: ip(3)},
		{Index: 2, CPI: fp(131.1), Unemployment: fp(6.9), Dept: ip(4)},
	})

	source := &memorySalesSource{sales: []contracts.SalesRecord{
		{Index: 1, StoreID: 5, Date: "2012-11-23", WeeklySales: 25000},
		{Index: 2, StoreID: 6, Date: "2012-11-30", WeeklySales: 9000}, // filtered
		{Index: 3, StoreID: 7, Date: "2012-12-07", WeeklySales: 30000}, // unmatched
	}}

	cfg := config.PipelineConfig{
		SupplementPath: supplementPath,
		CleanDataPath:  filepath.Join(dir, "clean_data.csv"),
		AggDataPath:    filepath.Join(dir, "agg_data.csv"),
	}

	runner := NewRunner(source, cfg, testLogger())
	report, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Success)
	assert.Equal(t, 3, report.SalesRows)
	assert.Equal(t, 2, report.MergedRows)
	assert.Equal(t, 1, report.CleanedRows)
	assert.Equal(t, 1, report.AggregateRows)
	assert.True(t, report.Validated[cfg.CleanDataPath])
	assert.True(t, report.Validated[cfg.AggDataPath])

	cleanData, err := os.ReadFile(cfg.CleanDataPath)
	require.NoError(t, err)
	assert.Equal(t,
		"Store_ID,Month,Dept,IsHoliday,Weekly_Sales,CPI,Unemployment\n"+
			"5,11,3,1,25000,130.5,7.2\n",
		string(cleanData))

	aggData, err := os.ReadFile(cfg.AggDataPath)
	require.NoError(t, err)
	assert.Equal(t, "Month,Weekly_Sales\n11,25000.00\n", string(aggData))
}

func TestRunner_Rerun_ProducesIdenticalBytes(t *testing.T) {
	dir := t.TempDir()
	supplementPath := writeSupplement(t, dir, []contracts.SupplementRecord{
		{Index: 1, CPI: fp(130.5), Unemployment: fp(7.2), Dept: ip(3)},
	})

	source := &memorySalesSource{sales: []contracts.SalesRecord{
		{Index: 1, StoreID: 5, Date: "2012-11-23", WeeklySales: 25000},
	}}

	cfg := config.PipelineConfig{
		SupplementPath: supplementPath,
		CleanDataPath:  filepath.Join(dir, "clean_data.csv"),
		AggDataPath:    filepath.Join(dir, "agg_data.csv"),
	}
	runner := NewRunner(source, cfg, testLogger())

	_, err := runner.Run(context.Background())
	require.NoError(t, err)
	first, err := os.ReadFile(cfg.CleanDataPath)
	require.NoError(t, err)

	_, err = runner.Run(context.Background())
	require.NoError(t, err)
	second, err := os.ReadFile(cfg.CleanDataPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunner_EmptyCleanedTable(t *testing.T) {
	dir := t.TempDir()
	supplementPath := writeSupplement(t, dir, []contracts.SupplementRecord{
		{Index: 1, Dept: ip(3)},
	})

	// Every row falls below the sales threshold.
	source := &memorySalesSource{sales: []contracts.SalesRecord{
		{Index: 1, StoreID: 5, Date: "2012-11-23", WeeklySales: 9000},
	}}

	cfg := config.PipelineConfig{
		SupplementPath: supplementPath,
		CleanDataPath:  filepath.Join(dir, "clean_data.csv"),
		AggDataPath:    filepath.Join(dir, "agg_data.csv"),
	}

	report, err := NewRunner(source, cfg, testLogger()).Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.CleanedRows)
	assert.Zero(t, report.AggregateRows)

	cleanData, err := os.ReadFile(cfg.CleanDataPath)
	require.NoError(t, err)
	assert.Equal(t, "Store_ID,Month,Dept,IsHoliday,Weekly_Sales,CPI,Unemployment\n", string(cleanData))

	aggData, err := os.ReadFile(cfg.AggDataPath)
	require.NoError(t, err)
	assert.Equal(t, "Month,Weekly_Sales\n", string(aggData))
}

func TestRunner_AbortsOnSourceError(t *testing.T) {
	source := &memorySalesSource{err: errors.New("connection refused")}

	cfg := config.PipelineConfig{SupplementPath: "unused.parquet"}
	report, err := NewRunner(source, cfg, testLogger()).Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load sales")
	assert.False(t, report.Success)
	assert.NotEmpty(t, report.Error)
}

func TestRunner_AbortsOnMissingSupplement(t *testing.T) {
	dir := t.TempDir()
	source := &memorySalesSource{sales: []contracts.SalesRecord{
		{Index: 1, StoreID: 5, Date: "2012-11-23", WeeklySales: 25000},
	}}

	cfg := config.PipelineConfig{
		SupplementPath: filepath.Join(dir, "absent.parquet"),
		CleanDataPath:  filepath.Join(dir, "clean_data.csv"),
		AggDataPath:    filepath.Join(dir, "agg_data.csv"),
	}

	report, err := NewRunner(source, cfg, testLogger()).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract")
	assert.False(t, report.Success)

	// Nothing was written; the run aborted before the load stage.
	_, statErr := os.Stat(cfg.CleanDataPath)
	assert.True(t, os.IsNotExist(statErr))
}
