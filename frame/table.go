package frame

import (
	"fmt"
	"strings"
)

// Table is an immutable, column-oriented view of a tabular dataset.
// All columns have the same length.
type Table struct {
	cols  []*Column
	index map[string]int
}

// New builds a table from columns. It panics when column lengths differ,
// which indicates a construction bug in the ingestion layer, not bad data.
func New(cols ...*Column) *Table {
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		if c.Len() != cols[0].Len() {
			panic(fmt.Sprintf("frame: column %q has %d rows, want %d", c.Name(), c.Len(), cols[0].Len()))
		}
		index[c.Name()] = i
	}
	return &Table{cols: cols, index: index}
}

// NumRows returns the row count (0 for a table with no columns).
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.cols) }

// Columns returns the columns in declaration order.
func (t *Table) Columns() []*Column { return t.cols }

// Column returns the named column, or nil if absent.
func (t *Table) Column(name string) *Column {
	if i, ok := t.index[name]; ok {
		return t.cols[i]
	}
	return nil
}

// Names returns the ordered column names.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name()
	}
	return names
}

// NumericColumns returns the integer and float columns in order.
func (t *Table) NumericColumns() []*Column {
	var out []*Column
	for _, c := range t.cols {
		if c.IsNumeric() {
			out = append(out, c)
		}
	}
	return out
}

// TotalNulls returns the number of null cells across the whole table.
func (t *Table) TotalNulls() int {
	n := 0
	for _, c := range t.cols {
		n += c.NullCount()
	}
	return n
}

// rowKey renders row i as a collision-safe string for exact-equality checks.
func (t *Table) rowKey(i int) string {
	var b strings.Builder
	for _, c := range t.cols {
		if c.IsNull(i) {
			b.WriteString(nullKey)
		} else {
			b.WriteString(c.ValueString(i))
		}
		b.WriteByte(0x1f)
	}
	return b.String()
}

// DuplicateRowCount returns the number of rows that exactly repeat an
// earlier row (pandas duplicated() semantics: first occurrence not counted).
func (t *Table) DuplicateRowCount() int {
	if t.NumCols() == 0 {
		return 0
	}
	seen := make(map[string]struct{}, t.NumRows())
	dups := 0
	for i := 0; i < t.NumRows(); i++ {
		key := t.rowKey(i)
		if _, ok := seen[key]; ok {
			dups++
		} else {
			seen[key] = struct{}{}
		}
	}
	return dups
}
