package transform

import (
	"time"

	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/contracts"
)

// salesThreshold is the strict lower bound on weekly sales; rows at or
// below it are dropped.
const salesThreshold = 10000.0

// dateLayout matches the week-ending dates in the sales table.
const dateLayout = "2006-01-02"

// Transform cleans the merged table. The steps run in a fixed order
// because it affects the result:
//
//  1. substitute each nullable column's zero-equivalent for missing values
//  2. parse the date column; failures degrade to a null date, not an error
//  3. derive the month number; a null date yields a null month
//  4. keep only rows with weekly sales strictly above the threshold
//  5. project down to the seven cleaned columns
//
// Malformed dates and missing values never raise; they are normalized.
// The input slice is not modified.
func Transform(merged []contracts.MergedRecord) []contracts.CleanedRecord {
	cleaned := make([]contracts.CleanedRecord, 0, len(merged))

	for _, row := range merged {
		filled := fillMissing(row)

		month := deriveMonth(parseDate(filled.Date))

		if filled.WeeklySales <= salesThreshold {
			continue
		}

		cleaned = append(cleaned, contracts.CleanedRecord{
			StoreID:      filled.StoreID,
			Month:        month,
			Dept:         *filled.Dept,
			IsHoliday:    *filled.IsHoliday,
			WeeklySales:  filled.WeeklySales,
			CPI:          *filled.CPI,
			Unemployment: *filled.Unemployment,
		})
	}

	return cleaned
}

// fillMissing returns a copy of the row with every nil column replaced by
// its type's zero value: 0 for numbers, false for the holiday flag, ""
// for the store type. This reproduces the source policy of blanket
// zero-filling ahead of any type-aware handling.
func fillMissing(row contracts.MergedRecord) contracts.MergedRecord {
	row.IsHoliday = fillBool(row.IsHoliday)
	row.Temperature = fillFloat(row.Temperature)
	row.FuelPrice = fillFloat(row.FuelPrice)
	row.CPI = fillFloat(row.CPI)
	row.Unemployment = fillFloat(row.Unemployment)
	row.MarkDown1 = fillFloat(row.MarkDown1)
	row.MarkDown2 = fillFloat(row.MarkDown2)
	row.MarkDown3 = fillFloat(row.MarkDown3)
	row.MarkDown4 = fillFloat(row.MarkDown4)
	row.Dept = fillInt(row.Dept)
	row.Size = fillInt(row.Size)
	row.Type = fillString(row.Type)
	return row
}

func fillFloat(v *float64) *float64 {
	if v == nil {
		zero := 0.0
		return &zero
	}
	return v
}

func fillInt(v *int64) *int64 {
	if v == nil {
		zero := int64(0)
		return &zero
	}
	return v
}

func fillBool(v *bool) *bool {
	if v == nil {
		f := false
		return &f
	}
	return v
}

func fillString(v *string) *string {
	if v == nil {
		empty := ""
		return &empty
	}
	return v
}

// parseDate returns nil for dates that do not parse; the row is kept and
// flows into the null-month bucket downstream.
func parseDate(raw string) *time.Time {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}

func deriveMonth(date *time.Time) *int {
	if date == nil {
		return nil
	}
	m := int(date.Month())
	return &m
}
