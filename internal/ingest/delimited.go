package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/trustgate/trustgate/frame"
)

// loadDelimited reads a header-first delimited file. Rows whose field
// count differs from the header are skipped rather than failing the whole
// load; ragged exports are common enough that a hard error helps nobody.
func loadDelimited(path string, comma rune) (*frame.Table, error) {
	f, err := openSourceFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cells := make([][]string, len(header))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if len(record) != len(header) {
			continue
		}
		for j, cell := range record {
			cells[j] = append(cells[j], cell)
		}
	}

	cols := make([]*frame.Column, len(header))
	for j, name := range header {
		cols[j] = inferStringColumn(name, cells[j])
	}
	return frame.New(cols...), nil
}
