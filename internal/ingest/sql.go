package ingest

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // mysql driver
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	_ "modernc.org/sqlite"             // sqlite driver

	"github.com/trustgate/trustgate/frame"
	"github.com/trustgate/trustgate/internal/contract"
	"github.com/trustgate/trustgate/schema"
)

// driverNames maps a configured backend to its database/sql driver name.
var driverNames = map[schema.DatabaseBackend]string{
	schema.SQLiteBackend:     "sqlite",
	schema.MySQLBackend:      "mysql",
	schema.PostgreSQLBackend: "pgx",
}

// loadSQL reads an entire table from the configured backend. The table
// name was validated against an identifier pattern during config
// processing, so interpolating it here is safe.
func loadSQL(ctx context.Context, cfg *contract.Config) (*frame.Table, error) {
	driver, ok := driverNames[cfg.Backend]
	if !ok {
		return nil, fmt.Errorf("no SQL driver for backend %q", cfg.Backend)
	}

	db, err := sql.Open(driver, cfg.DBConnect)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", cfg.Backend, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to reach %s database: %w", cfg.Backend, err)
	}

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+cfg.TableName)
	if err != nil {
		return nil, fmt.Errorf("failed to query table %s: %w", cfg.TableName, err)
	}
	defer func() { _ = rows.Close() }()

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	cells := make([][]any, len(names))
	holders := make([]any, len(names))
	for rows.Next() {
		row := make([]any, len(names))
		for j := range row {
			holders[j] = &row[j]
		}
		if err := rows.Scan(holders...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for j, v := range row {
			cells[j] = append(cells[j], normalizeSQLValue(v))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	cols := make([]*frame.Column, len(names))
	for j, name := range names {
		cols[j] = buildSQLColumn(name, cells[j])
	}
	return frame.New(cols...), nil
}

// buildSQLColumn types a column of scanned values. When every value came
// back as text, which the MySQL driver does for most column types, the
// cells go through the same inference as a delimited file.
func buildSQLColumn(name string, vals []any) *frame.Column {
	raw := make([]string, len(vals))
	allText := true
	for i, v := range vals {
		switch x := v.(type) {
		case nil:
			raw[i] = ""
		case string:
			raw[i] = x
		default:
			allText = false
		}
		if !allText {
			break
		}
	}
	if allText && len(vals) > 0 {
		return inferStringColumn(name, raw)
	}
	return buildColumnFromAny(name, vals)
}

// normalizeSQLValue converts driver-specific raw values into the small set
// of Go types the column builder understands. Text arriving as []byte is
// re-inferred so numeric columns stored loosely still count as numeric.
func normalizeSQLValue(v any) any {
	b, ok := v.([]byte)
	if !ok {
		return v
	}
	return string(b)
}
