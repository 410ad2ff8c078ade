package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/contracts"
)

// MonthlyAverage groups the cleaned rows by month and computes the
// arithmetic mean of weekly sales per group, rounded to 2 decimal
// places. Rows with a null month (unparsed dates) form their own group.
// Output is sorted by month ascending with the null group last. Empty
// input yields an empty result.
func MonthlyAverage(cleaned []contracts.CleanedRecord) []contracts.MonthlyAggregate {
	type bucket struct {
		sum   decimal.Decimal
		count int64
	}

	byMonth := make(map[int]*bucket)
	var nullBucket *bucket

	for _, row := range cleaned {
		sales := decimal.NewFromFloat(row.WeeklySales)
		if row.Month == nil {
			if nullBucket == nil {
				nullBucket = &bucket{}
			}
			nullBucket.sum = nullBucket.sum.Add(sales)
			nullBucket.count++
			continue
		}
		b, ok := byMonth[*row.Month]
		if !ok {
			b = &bucket{}
			byMonth[*row.Month] = b
		}
		b.sum = b.sum.Add(sales)
		b.count++
	}

	months := make([]int, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Ints(months)

	aggregates := make([]contracts.MonthlyAggregate, 0, len(months)+1)
	for _, m := range months {
		month := m
		b := byMonth[m]
		aggregates = append(aggregates, contracts.MonthlyAggregate{
			Month:           &month,
			MeanWeeklySales: mean(b.sum, b.count),
		})
	}
	if nullBucket != nil {
		aggregates = append(aggregates, contracts.MonthlyAggregate{
			Month:           nil,
			MeanWeeklySales: mean(nullBucket.sum, nullBucket.count),
		})
	}

	return aggregates
}

func mean(sum decimal.Decimal, count int64) decimal.Decimal {
	return sum.Div(decimal.NewFromInt(count)).Round(2)
}
