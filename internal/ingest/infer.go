package ingest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/trustgate/trustgate/frame"
)

// inferStringColumn promotes a column of raw text cells to the narrowest
// kind every non-null cell fits: integer, float, bool, timestamp, then
// string. Empty cells are null.
func inferStringColumn(name string, raw []string) *frame.Column {
	n := len(raw)
	null := make([]bool, n)
	nonNull := 0
	for i, cell := range raw {
		if strings.TrimSpace(cell) == "" {
			null[i] = true
		} else {
			nonNull++
		}
	}
	if nonNull == 0 {
		return frame.NewStringColumn(name, raw, null)
	}

	if ints, ok := tryInts(raw, null); ok {
		return frame.NewIntColumn(name, ints, null)
	}
	if floats, ok := tryFloats(raw, null); ok {
		return frame.NewFloatColumn(name, floats, null)
	}
	if bools, ok := tryBools(raw, null); ok {
		return frame.NewBoolColumn(name, bools, null)
	}
	if times, ok := tryTimes(raw, null); ok {
		return frame.NewTimeColumn(name, times, null)
	}
	return frame.NewStringColumn(name, raw, null)
}

func tryInts(raw []string, null []bool) ([]int64, bool) {
	out := make([]int64, len(raw))
	for i, cell := range raw {
		if null[i] {
			continue
		}
		v, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func tryFloats(raw []string, null []bool) ([]float64, bool) {
	out := make([]float64, len(raw))
	for i, cell := range raw {
		if null[i] {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func tryBools(raw []string, null []bool) ([]bool, bool) {
	out := make([]bool, len(raw))
	for i, cell := range raw {
		if null[i] {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "true":
			out[i] = true
		case "false":
			out[i] = false
		default:
			return nil, false
		}
	}
	return out, true
}

func tryTimes(raw []string, null []bool) ([]time.Time, bool) {
	out := make([]time.Time, len(raw))
	for i, cell := range raw {
		if null[i] {
			continue
		}
		trimmed := strings.TrimSpace(cell)
		if !frame.LooksISODate(trimmed) {
			return nil, false
		}
		t, ok := frame.ParseTemporal(trimmed)
		if !ok {
			return nil, false
		}
		out[i] = t
	}
	return out, true
}

// buildColumnFromAny builds a typed column out of already-typed values, as
// produced by the JSON, Parquet and SQL loaders. Nil values are null. A
// column whose non-null values are all integers becomes IntKind; mixed
// integer and float becomes FloatKind; uniform bool or time keep their
// kind; anything else renders to string.
func buildColumnFromAny(name string, vals []any) *frame.Column {
	n := len(vals)
	null := make([]bool, n)
	allInt, allFloat, allBool, allTime := true, true, true, true
	nonNull := 0
	for i, v := range vals {
		if v == nil {
			null[i] = true
			continue
		}
		nonNull++
		switch v.(type) {
		case int, int32, int64:
			allBool, allTime = false, false
		case float32, float64:
			allInt, allBool, allTime = false, false, false
		case bool:
			allInt, allFloat, allTime = false, false, false
		case time.Time:
			allInt, allFloat, allBool = false, false, false
		default:
			allInt, allFloat, allBool, allTime = false, false, false, false
		}
	}
	if nonNull == 0 {
		return frame.NewStringColumn(name, make([]string, n), null)
	}

	switch {
	case allInt:
		out := make([]int64, n)
		for i, v := range vals {
			if null[i] {
				continue
			}
			out[i] = toInt64(v)
		}
		return frame.NewIntColumn(name, out, null)
	case allFloat:
		out := make([]float64, n)
		for i, v := range vals {
			if null[i] {
				continue
			}
			out[i] = toFloat64(v)
		}
		return frame.NewFloatColumn(name, out, null)
	case allBool:
		out := make([]bool, n)
		for i, v := range vals {
			if null[i] {
				continue
			}
			out[i] = v.(bool)
		}
		return frame.NewBoolColumn(name, out, null)
	case allTime:
		out := make([]time.Time, n)
		for i, v := range vals {
			if null[i] {
				continue
			}
			out[i] = v.(time.Time)
		}
		return frame.NewTimeColumn(name, out, null)
	default:
		out := make([]string, n)
		for i, v := range vals {
			if null[i] {
				continue
			}
			out[i] = renderAny(v)
		}
		return frame.NewStringColumn(name, out, null)
	}
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	default:
		return 0
	}
}

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}

func renderAny(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339)
	case map[string]any, []any:
		// Nested JSON values are kept as their compact encoding.
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	default:
		return fmt.Sprint(x)
	}
}
