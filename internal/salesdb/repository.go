package salesdb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/contracts"
)

// Repository loads the primary sales table from the warehouse. It is
// read-only; the pipeline never writes back to the source.
type Repository struct {
	pool  *pgxpool.Pool
	table string
}

// NewRepository creates a new sales repository reading from the given
// table.
func NewRepository(pool *pgxpool.Pool, table string) *Repository {
	return &Repository{pool: pool, table: table}
}

// LoadSales reads the full sales table into memory, ordered by the row
// identifier. Dates are read as text; parsing happens in the
// transformer where failures degrade instead of erroring.
func (r *Repository) LoadSales(ctx context.Context) ([]contracts.SalesRecord, error) {
	query := fmt.Sprintf(`
		SELECT "index", "Store_ID", "Date"::text, "Weekly_Sales"
		FROM %s
		ORDER BY "index"
	`, pgx.Identifier{r.table}.Sanitize())

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query sales table %s: %w", r.table, err)
	}
	defer rows.Close()

	var sales []contracts.SalesRecord
	for rows.Next() {
		var s contracts.SalesRecord
		if err := rows.Scan(&s.Index, &s.StoreID, &s.Date, &s.WeeklySales); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read sales rows: %w", err)
	}

	return sales, nil
}
