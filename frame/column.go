// Package frame provides the in-memory columnar table that backs every
// dataset evaluation. It exposes exactly the primitives the evaluators
// need: counts, declared types, null detection, distinct values, value
// frequencies, numeric selection and pairwise correlation.
package frame

import (
	"math"
	"strconv"
	"time"
)

// Kind is the declared type of a column.
type Kind int

// All column kinds supported.
const (
	StringKind Kind = iota
	IntKind
	FloatKind
	BoolKind
	TimeKind
)

// String returns the dtype label used in metadata and reports.
func (k Kind) String() string {
	switch k {
	case IntKind:
		return "integer"
	case FloatKind:
		return "float"
	case BoolKind:
		return "bool"
	case TimeKind:
		return "timestamp"
	default:
		return "string"
	}
}

// Column is a single named, typed column with an optional null mask.
// Columns are immutable after construction.
type Column struct {
	name  string
	kind  Kind
	null  []bool
	ints  []int64
	flts  []float64
	strs  []string
	bools []bool
	times []time.Time
}

func newColumn(name string, kind Kind, length int, null []bool) Column {
	if null == nil {
		null = make([]bool, length)
	}
	return Column{name: name, kind: kind, null: null}
}

// NewStringColumn builds a string column. A nil null mask means no nulls.
func NewStringColumn(name string, values []string, null []bool) *Column {
	c := newColumn(name, StringKind, len(values), null)
	c.strs = values
	return &c
}

// NewIntColumn builds an integer column. A nil null mask means no nulls.
func NewIntColumn(name string, values []int64, null []bool) *Column {
	c := newColumn(name, IntKind, len(values), null)
	c.ints = values
	return &c
}

// NewFloatColumn builds a float column. A nil null mask means no nulls;
// NaN values are additionally treated as null.
func NewFloatColumn(name string, values []float64, null []bool) *Column {
	c := newColumn(name, FloatKind, len(values), null)
	c.flts = values
	for i, v := range values {
		if math.IsNaN(v) {
			c.null[i] = true
		}
	}
	return &c
}

// NewBoolColumn builds a boolean column. A nil null mask means no nulls.
func NewBoolColumn(name string, values []bool, null []bool) *Column {
	c := newColumn(name, BoolKind, len(values), null)
	c.bools = values
	return &c
}

// NewTimeColumn builds a timestamp column. A nil null mask means no nulls.
func NewTimeColumn(name string, values []time.Time, null []bool) *Column {
	c := newColumn(name, TimeKind, len(values), null)
	c.times = values
	return &c
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the declared column type.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of rows.
func (c *Column) Len() int { return len(c.null) }

// IsNull reports whether row i holds a null value.
func (c *Column) IsNull(i int) bool { return c.null[i] }

// NullCount returns the number of null rows.
func (c *Column) NullCount() int {
	n := 0
	for _, isNull := range c.null {
		if isNull {
			n++
		}
	}
	return n
}

// NonNullCount returns the number of non-null rows.
func (c *Column) NonNullCount() int { return c.Len() - c.NullCount() }

// IsNumeric reports whether the column holds integers or floats.
func (c *Column) IsNumeric() bool { return c.kind == IntKind || c.kind == FloatKind }

// IsText reports whether the column holds free-form strings.
func (c *Column) IsText() bool { return c.kind == StringKind }

// ValueString renders the value at row i as its canonical string form.
// Callers must check IsNull first; nulls render as the empty string.
func (c *Column) ValueString(i int) string {
	if c.null[i] {
		return ""
	}
	switch c.kind {
	case IntKind:
		return strconv.FormatInt(c.ints[i], 10)
	case FloatKind:
		return strconv.FormatFloat(c.flts[i], 'g', -1, 64)
	case BoolKind:
		return strconv.FormatBool(c.bools[i])
	case TimeKind:
		return c.times[i].Format(time.RFC3339)
	default:
		return c.strs[i]
	}
}

// TimeAt returns the timestamp at row i. Only valid for TimeKind columns.
func (c *Column) TimeAt(i int) time.Time { return c.times[i] }

// Float64s returns the non-null numeric values of the column in row order.
// It returns nil for non-numeric columns.
func (c *Column) Float64s() []float64 {
	if !c.IsNumeric() {
		return nil
	}
	out := make([]float64, 0, c.Len())
	for i := range c.null {
		if c.null[i] {
			continue
		}
		if c.kind == IntKind {
			out = append(out, float64(c.ints[i]))
		} else {
			out = append(out, c.flts[i])
		}
	}
	return out
}

// FloatAt returns the numeric value at row i and whether it is present.
// Only valid for numeric columns.
func (c *Column) FloatAt(i int) (float64, bool) {
	if c.null[i] {
		return 0, false
	}
	if c.kind == IntKind {
		return float64(c.ints[i]), true
	}
	return c.flts[i], true
}

// DistinctNonNull returns the number of distinct non-null values.
func (c *Column) DistinctNonNull() int {
	seen := make(map[string]struct{})
	for i := range c.null {
		if c.null[i] {
			continue
		}
		seen[c.ValueString(i)] = struct{}{}
	}
	return len(seen)
}

// IsFullRowUnique reports whether every row holds a distinct non-null
// value: the candidate primary key test, shared by the structural and
// governance layers.
func (c *Column) IsFullRowUnique() bool {
	n := c.Len()
	if n == 0 {
		return false
	}
	seen := make(map[string]struct{}, n)
	for i := range c.null {
		if c.null[i] {
			return false
		}
		key := c.ValueString(i)
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}

// nullKey labels null slots in frequency maps without colliding with data.
const nullKey = "\x00<null>"

// TopValue returns the most frequent value (nulls included, labeled
// "<null>") and its count. Ties resolve to the first value seen.
func (c *Column) TopValue() (string, int) {
	counts := make(map[string]int)
	order := make([]string, 0)
	for i := range c.null {
		key := nullKey
		if !c.null[i] {
			key = c.ValueString(i)
		}
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}
	best, bestCount := "", 0
	for _, key := range order {
		if counts[key] > bestCount {
			best, bestCount = key, counts[key]
		}
	}
	if best == nullKey {
		best = "<null>"
	}
	return best, bestCount
}

// Frequencies returns the relative frequency of each distinct non-null
// value. The order of entries is unspecified; only the distribution matters.
func (c *Column) Frequencies() []float64 {
	counts := make(map[string]int)
	total := 0
	for i := range c.null {
		if c.null[i] {
			continue
		}
		counts[c.ValueString(i)]++
		total++
	}
	if total == 0 {
		return nil
	}
	out := make([]float64, 0, len(counts))
	for _, n := range counts {
		out = append(out, float64(n)/float64(total))
	}
	return out
}
