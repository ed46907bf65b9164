package ingest

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/trustgate/trustgate/frame"
)

// loadJSON reads an array of flat JSON objects. Column order follows the
// first appearance of each key; objects missing a key contribute a null.
func loadJSON(path string) (*frame.Table, error) {
	f, err := openSourceFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	decoder := json.NewDecoder(f)
	decoder.UseNumber()

	var records []map[string]any
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode JSON array of objects: %w", err)
	}

	var names []string
	seen := make(map[string]bool)
	for _, rec := range records {
		// Decoded maps lose the document's key order, so fall back to a
		// sorted per-record order for deterministic columns.
		for _, key := range sortedKeys(rec) {
			if !seen[key] {
				seen[key] = true
				names = append(names, key)
			}
		}
	}

	cols := make([]*frame.Column, 0, len(names))
	for _, name := range names {
		vals := make([]any, len(records))
		for i, rec := range records {
			vals[i] = normalizeJSONValue(rec[name])
		}
		cols = append(cols, buildColumnFromAny(name, vals))
	}
	return frame.New(cols...), nil
}

func sortedKeys(rec map[string]any) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// normalizeJSONValue narrows json.Number to int64 when it is integral.
func normalizeJSONValue(v any) any {
	num, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := num.Int64(); err == nil {
		return i
	}
	if f, err := num.Float64(); err == nil {
		return f
	}
	return num.String()
}
