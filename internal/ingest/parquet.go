package ingest

import (
	"fmt"
	"io"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/trustgate/trustgate/frame"
)

// loadParquet reads a flat Parquet file. Each leaf column maps to one
// table column; nested schemas are rejected up front.
func loadParquet(path string) (*frame.Table, error) {
	f, err := openSourceFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	fields := pf.Schema().Fields()
	names := make([]string, len(fields))
	for i, field := range fields {
		if !field.Leaf() {
			return nil, fmt.Errorf("nested parquet column %q is not supported", field.Name())
		}
		names[i] = field.Name()
	}

	cells := make([][]any, len(fields))
	buf := make([]parquet.Row, 256)
	for _, rowGroup := range pf.RowGroups() {
		rows := rowGroup.Rows()
		for {
			n, err := rows.ReadRows(buf)
			for _, row := range buf[:n] {
				for _, value := range row {
					col := value.Column()
					cells[col] = append(cells[col], parquetValue(value, fields[col]))
				}
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				_ = rows.Close()
				return nil, fmt.Errorf("failed to read parquet rows: %w", err)
			}
		}
		if err := rows.Close(); err != nil {
			return nil, err
		}
	}

	cols := make([]*frame.Column, len(fields))
	for j, name := range names {
		cols[j] = buildColumnFromAny(name, cells[j])
	}
	return frame.New(cols...), nil
}

// parquetValue converts a parquet leaf value to the Go type the column
// builder understands, honoring the timestamp logical type.
func parquetValue(v parquet.Value, field parquet.Field) any {
	if v.IsNull() {
		return nil
	}
	if lt := field.Type().LogicalType(); lt != nil && lt.Timestamp != nil {
		ts := v.Int64()
		switch {
		case lt.Timestamp.Unit.Millis != nil:
			return time.UnixMilli(ts).UTC()
		case lt.Timestamp.Unit.Micros != nil:
			return time.UnixMicro(ts).UTC()
		default:
			return time.Unix(0, ts).UTC()
		}
	}
	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean()
	case parquet.Int32:
		return int64(v.Int32())
	case parquet.Int64:
		return v.Int64()
	case parquet.Float:
		return float64(v.Float())
	case parquet.Double:
		return v.Double()
	default:
		return v.String()
	}
}
