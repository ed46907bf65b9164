package core

import (
	"github.com/trustgate/trustgate/frame"
	"github.com/trustgate/trustgate/schema"
)

// BuildProfile turns a raw table into the immutable DatasetProfile every
// evaluator consumes. It never fails: an empty table (0 rows or 0 columns)
// yields zero counts and false capability flags.
func BuildProfile(table *frame.Table, fileType schema.SourceType) *schema.DatasetProfile {
	return &schema.DatasetProfile{
		Raw:      table,
		Metadata: buildInputMetadata(table, fileType),
	}
}

func buildInputMetadata(table *frame.Table, fileType schema.SourceType) schema.InputMetadata {
	nCols := table.NumCols()
	dataTypes := make(map[string]string, nCols)
	for _, c := range table.Columns() {
		dataTypes[c.Name()] = c.Kind().String()
	}

	density := 0.0
	if nCols > 0 {
		density = float64(len(table.NumericColumns())) / float64(nCols)
	}

	return schema.InputMetadata{
		FileType:       fileType,
		RecordCount:    table.NumRows(),
		ColumnCount:    nCols,
		DataTypes:      dataTypes,
		HasTimestamp:   hasTimestampColumn(table),
		HasText:        hasTextColumn(table),
		NumericDensity: density,
		ColumnNames:    table.Names(),
	}
}

// hasTimestampColumn reports whether any column is a native timestamp or a
// text column whose values include an ISO-date prefix.
func hasTimestampColumn(table *frame.Table) bool {
	for _, c := range table.Columns() {
		if c.Kind() == frame.TimeKind {
			return true
		}
		if !c.IsText() {
			continue
		}
		for i := 0; i < c.Len(); i++ {
			if !c.IsNull(i) && frame.LooksISODate(c.ValueString(i)) {
				return true
			}
		}
	}
	return false
}

func hasTextColumn(table *frame.Table) bool {
	for _, c := range table.Columns() {
		if c.IsText() {
			return true
		}
	}
	return false
}
