package contracts

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is one row of the primary grocery_sales table:
// one row per store-week, keyed by a unique index.
type SalesRecord struct {
	Index       int
	StoreID     int
	Date        string
	WeeklySales float64
}

// SupplementRecord is one row of the columnar supplement file,
// keyed by the same index as the sales table. The feature columns
// are nullable in the source file, so they are pointers here; the
// transformer later substitutes each column's zero-equivalent.
type SupplementRecord struct {
	Index        int      `parquet:"index"`
	IsHoliday    *bool    `parquet:"IsHoliday,optional"`
	Temperature  *float64 `parquet:"Temperature,optional"`
	FuelPrice    *float64 `parquet:"Fuel_Price,optional"`
	CPI          *float64 `parquet:"CPI,optional"`
	Unemployment *float64 `parquet:"Unemployment,optional"`
	MarkDown1    *float64 `parquet:"MarkDown1,optional"`
	MarkDown2    *float64 `parquet:"MarkDown2,optional"`
	MarkDown3    *float64 `parquet:"MarkDown3,optional"`
	MarkDown4    *float64 `parquet:"MarkDown4,optional"`
	Dept         *int64   `parquet:"Dept,optional"`
	Size         *int64   `parquet:"Size,optional"`
	Type         *string  `parquet:"Type,optional"`
}

// MergedRecord is the inner join of SalesRecord and SupplementRecord
// on the shared index, carrying the union of both column sets.
type MergedRecord struct {
	Index        int
	StoreID      int
	Date         string
	WeeklySales  float64
	IsHoliday    *bool
	Temperature  *float64
	FuelPrice    *float64
	CPI          *float64
	Unemployment *float64
	MarkDown1    *float64
	MarkDown2    *float64
	MarkDown3    *float64
	MarkDown4    *float64
	Dept         *int64
	Size         *int64
	Type         *string
}

// CleanedRecord is the projection that survives cleaning: weekly sales
// above the threshold, missing values filled, month derived from the
// parsed date. Month is nil when the source date did not parse.
type CleanedRecord struct {
	StoreID      int
	Month        *int
	Dept         int64
	IsHoliday    bool
	WeeklySales  float64
	CPI          float64
	Unemployment float64
}

// MonthlyAggregate holds the mean weekly sales for one month bucket,
// rounded to 2 decimal places. Month is nil for the unparsed-date bucket.
type MonthlyAggregate struct {
	Month           *int
	MeanWeeklySales decimal.Decimal
}

// RunReport summarizes a single pipeline run.
type RunReport struct {
	StartedAt     time.Time       `json:"started_at"`
	Duration      time.Duration   `json:"duration"`
	SalesRows     int             `json:"sales_rows"`
	MergedRows    int             `json:"merged_rows"`
	CleanedRows   int             `json:"cleaned_rows"`
	AggregateRows int             `json:"aggregate_rows"`
	CleanDataPath string          `json:"clean_data_path"`
	AggDataPath   string          `json:"agg_data_path"`
	Validated     map[string]bool `json:"validated"`
	Success       bool            `json:"success"`
	Error         string          `json:"error,omitempty"`
}
