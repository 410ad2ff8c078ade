package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/contracts"
)

func fp(v float64) *float64 { return &v }
func ip(v int64) *int64     { return &v }
func bp(v bool) *bool       { return &v }

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestMerge_InnerJoinCardinality(t *testing.T) {
	sales := []contracts.SalesRecord{
		{Index: 1, StoreID: 5, Date: "2012-11-23", WeeklySales: 25000},
		{Index: 2, StoreID: 6, Date: "2012-11-30", WeeklySales: 18000},
		{Index: 3, StoreID: 7, Date: "2012-12-07", WeeklySales: 30000}, // no supplement
	}
	supplement := []contracts.SupplementRecord{
		{Index: 1, Dept: ip(3), CPI: fp(130.5)},
		{Index: 2, Dept: ip(4), CPI: fp(131.1)},
		{Index: 9, Dept: ip(5)}, // no sales row
	}

	merged := Merge(sales, supplement)
	require.Len(t, merged, 2)

	assert.Equal(t, 1, merged[0].Index)
	assert.Equal(t, 5, merged[0].StoreID)
	assert.Equal(t, "2012-11-23", merged[0].Date)
	require.NotNil(t, merged[0].Dept)
	assert.Equal(t, int64(3), *merged[0].Dept)

	assert.Equal(t, 2, merged[1].Index)
}

func TestMerge_DuplicateIdentifiersFanOut(t *testing.T) {
	sales := []contracts.SalesRecord{
		{Index: 1, StoreID: 5, WeeklySales: 25000},
		{Index: 1, StoreID: 5, WeeklySales: 26000},
	}
	supplement := []contracts.SupplementRecord{
		{Index: 1, Dept: ip(3)},
		{Index: 1, Dept: ip(4)},
	}

	// 2 sales rows x 2 supplement rows, no deduplication.
	merged := Merge(sales, supplement)
	assert.Len(t, merged, 4)
}

func TestMerge_EmptyInputs(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))
	assert.Empty(t, Merge([]contracts.SalesRecord{{Index: 1}}, nil))
	assert.Empty(t, Merge(nil, []contracts.SupplementRecord{{Index: 1}}))
}

func TestReadSupplement_MissingFile(t *testing.T) {
	_, err := ReadSupplement(filepath.Join(t.TempDir(), "nope.parquet"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open supplement file")
}

func TestReadSupplement_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.parquet")
	writeFile(t, path, []byte("this is not parquet"))

	_, err := ReadSupplement(path)
	require.Error(t, err)
}

func TestReadSupplement_MissingJoinColumn(t *testing.T) {
	type noIndex struct {
		Dept int64   `parquet:"Dept"`
		CPI  float64 `parquet:"CPI"`
	}

	path := filepath.Join(t.TempDir(), "no_index.parquet")
	require.NoError(t, parquet.WriteFile(path, []noIndex{{Dept: 3, CPI: 130.5}}))

	_, err := ReadSupplement(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `join column "index" not found`)
}

func TestExtract_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra_data.parquet")
	supplement := []contracts.SupplementRecord{
		{Index: 1, IsHoliday: bp(true), CPI: fp(130.5), Unemployment: fp(7.2), Dept: ip(3)},
		{Index: 2, CPI: fp(131.1), Dept: ip(4), MarkDown1: fp(250.75)},
	}
	require.NoError(t, parquet.WriteFile(path, supplement))

	sales := []contracts.SalesRecord{
		{Index: 1, StoreID: 5, Date: "2012-11-23", WeeklySales: 25000},
		{Index: 2, StoreID: 6, Date: "2012-11-30", WeeklySales: 9000},
	}

	merged, err := Extract(sales, path)
	require.NoError(t, err)
	require.Len(t, merged, 2)

	require.NotNil(t, merged[0].IsHoliday)
	assert.True(t, *merged[0].IsHoliday)
	require.NotNil(t, merged[0].CPI)
	assert.Equal(t, 130.5, *merged[0].CPI)

	assert.Nil(t, merged[1].IsHoliday)
	require.NotNil(t, merged[1].MarkDown1)
	assert.Equal(t, 250.75, *merged[1].MarkDown1)
}
