package load

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/contracts"
)

// Default output locations when the caller does not configure paths.
const (
	DefaultCleanDataPath = "clean_data.csv"
	DefaultAggDataPath   = "agg_data.csv"
)

var (
	cleanHeader = []string{"Store_ID", "Month", "Dept", "IsHoliday", "Weekly_Sales", "CPI", "Unemployment"}
	aggHeader   = []string{"Month", "Weekly_Sales"}
)

// Load writes the cleaned table and the monthly aggregate to CSV files,
// overwriting existing files. There is no atomicity across the two
// writes: a failure on the second leaves the first already committed.
// Output is byte-deterministic for identical input.
func Load(cleaned []contracts.CleanedRecord, aggregate []contracts.MonthlyAggregate, cleanPath, aggPath string) error {
	if err := WriteCleanData(cleaned, cleanPath); err != nil {
		return err
	}
	return WriteMonthlyAggregate(aggregate, aggPath)
}

// WriteCleanData serializes the cleaned table without a row-index
// column. A null month becomes an empty field.
func WriteCleanData(cleaned []contracts.CleanedRecord, path string) error {
	rows := make([][]string, 0, len(cleaned)+1)
	rows = append(rows, cleanHeader)
	for _, r := range cleaned {
		rows = append(rows, []string{
			strconv.Itoa(r.StoreID),
			formatMonth(r.Month),
			strconv.FormatInt(r.Dept, 10),
			formatFlag(r.IsHoliday),
			formatFloat(r.WeeklySales),
			formatFloat(r.CPI),
			formatFloat(r.Unemployment),
		})
	}
	return writeCSV(path, rows)
}

// WriteMonthlyAggregate serializes the aggregate table, means at
// 2-decimal precision.
func WriteMonthlyAggregate(aggregate []contracts.MonthlyAggregate, path string) error {
	rows := make([][]string, 0, len(aggregate)+1)
	rows = append(rows, aggHeader)
	for _, a := range aggregate {
		rows = append(rows, []string{
			formatMonth(a.Month),
			a.MeanWeeklySales.StringFixed(2),
		})
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func formatMonth(m *int) string {
	if m == nil {
		return ""
	}
	return strconv.Itoa(*m)
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
