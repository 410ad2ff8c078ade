package extract

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/contracts"
)

// joinColumn is the row identifier shared by the sales table and the
// supplement file.
const joinColumn = "index"

// ReadSupplement loads the parquet supplement file fully into memory.
// The file must carry the join column; everything else is allowed to be
// null and is handled downstream.
func ReadSupplement(path string) ([]contracts.SupplementRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open supplement file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat supplement file: %w", err)
	}

	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("read supplement file %s: %w", path, err)
	}

	if _, ok := pf.Schema().Lookup(joinColumn); !ok {
		return nil, fmt.Errorf("supplement file %s: join column %q not found", path, joinColumn)
	}

	rows, err := parquet.Read[contracts.SupplementRecord](f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("decode supplement rows: %w", err)
	}

	return rows, nil
}

// Merge performs the inner join of the sales table and the supplement
// rows on the shared index. Rows without a counterpart on the other side
// are dropped. Duplicate identifiers fan out into a cross-product of the
// matching rows, mirroring the source systems' lack of a uniqueness
// contract. Output order is sales-table order, supplement matches in
// file order.
func Merge(sales []contracts.SalesRecord, supplement []contracts.SupplementRecord) []contracts.MergedRecord {
	byIndex := make(map[int][]contracts.SupplementRecord, len(supplement))
	for _, s := range supplement {
		byIndex[s.Index] = append(byIndex[s.Index], s)
	}

	merged := make([]contracts.MergedRecord, 0, len(sales))
	for _, row := range sales {
		for _, s := range byIndex[row.Index] {
			merged = append(merged, contracts.MergedRecord{
				Index:        row.Index,
				StoreID:      row.StoreID,
				Date:         row.Date,
				WeeklySales:  row.WeeklySales,
				IsHoliday:    s.IsHoliday,
				Temperature:  s.Temperature,
				FuelPrice:    s.FuelPrice,
				CPI:          s.CPI,
				Unemployment: s.Unemployment,
				MarkDown1:    s.MarkDown1,
				MarkDown2:    s.MarkDown2,
				MarkDown3:    s.MarkDown3,
				MarkDown4:    s.MarkDown4,
				Dept:         s.Dept,
				Size:         s.Size,
				Type:         s.Type,
			})
		}
	}

	return merged
}

// Extract reads the supplement file and joins it against the in-memory
// sales table. The only side effect is the file read.
func Extract(sales []contracts.SalesRecord, supplementPath string) ([]contracts.MergedRecord, error) {
	supplement, err := ReadSupplement(supplementPath)
	if err != nil {
		return nil, err
	}

	return Merge(sales, supplement), nil
}
