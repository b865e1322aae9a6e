package reader

import (
	"context"
	"database/sql"
	"fmt"
)

// QueryRows materializes a query result set as a RowSet. Column names
// become the header and every value is rendered back to its string
// form; NULLs surface as the nodata token so the profiler counts them
// as missing.
func QueryRows(ctx context.Context, db *sql.DB, query, nodata string) (*RowSet, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	rs := &RowSet{Header: cols}

	vals := make([]sql.NullString, len(cols))
	ptrs := make([]interface{}, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		row := make([]string, len(cols))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = nodata
			}
		}

		rs.Rows = append(rs.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}

	return rs, nil
}
