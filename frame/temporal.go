package frame

import (
	"regexp"
	"time"
)

// isoDatePrefix matches values that start like an ISO calendar date.
var isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// LooksISODate reports whether s starts with a YYYY-MM-DD prefix.
func LooksISODate(s string) bool {
	return isoDatePrefix.MatchString(s)
}

// temporalLayouts are the formats ParseTemporal attempts, most specific first.
var temporalLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTemporal parses a timestamp string in one of the supported layouts.
func ParseTemporal(s string) (time.Time, bool) {
	for _, layout := range temporalLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// TemporalValues extracts the non-null timestamps of a column. Native
// timestamp columns convert directly; text columns are detected by the
// ISO-date prefix on any value and then parsed leniently, dropping values
// that fail to parse. The second return reports whether the column is
// temporal at all.
func TemporalValues(c *Column) ([]time.Time, bool) {
	switch {
	case c.Kind() == TimeKind:
		out := make([]time.Time, 0, c.Len())
		for i := 0; i < c.Len(); i++ {
			if !c.IsNull(i) {
				out = append(out, c.TimeAt(i))
			}
		}
		return out, true
	case c.IsText():
		matched := false
		for i := 0; i < c.Len(); i++ {
			if !c.IsNull(i) && LooksISODate(c.ValueString(i)) {
				matched = true
				break
			}
		}
		if !matched {
			return nil, false
		}
		var out []time.Time
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			if ts, ok := ParseTemporal(c.ValueString(i)); ok {
				out = append(out, ts)
			}
		}
		return out, true
	default:
		return nil, false
	}
}
