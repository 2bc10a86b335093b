// Package normalize converts the loosely typed values sent by the REST backend
// into Go values. Dates arrive either as ISO-8601 strings or as
// [year, month, day(, hour, minute, second, nanosecond)] arrays, and numbers
// arrive either as JSON numbers or as strings.
package normalize

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// output layouts for normalized dates
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// layouts of zoneless date strings, tried in order
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	DateLayout,
}

// Date converts a backend date value to a time.Time.
//
// A tuple [y, m, d] yields time.Date(y, m, d, 0, 0, 0, 0, time.Local), which is
// the same instant as new Date(y, m-1, d) in a browser. Years 0 to 99 mean
// 1900 to 1999 as they do there. Out of range parts roll over into the next unit
// instead of failing.
func Date(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case string:
		return parseDateString(v)
	case []interface{}:
		return dateFromTuple(v)
	case []int:
		parts := make([]interface{}, len(v))
		for i, part := range v {
			parts[i] = part
		}
		return dateFromTuple(parts)
	}
	return time.Time{}, false
}

func parseDateString(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) == 0 {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, true
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func dateFromTuple(tuple []interface{}) (time.Time, bool) {
	if len(tuple) < 3 || len(tuple) > 7 {
		return time.Time{}, false
	}

	// year, month, day, hour, minute, second, nanosecond
	var parts [7]int
	for i, raw := range tuple {
		part, ok := tuplePart(raw)
		if !ok {
			return time.Time{}, false
		}
		parts[i] = part
	}
	if parts[0] >= 0 && parts[0] <= 99 {
		parts[0] += 1900
	}

	return time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], parts[6], time.Local), true
}

// tuplePart truncates a numeric tuple element towards zero the way Date arguments are truncated in a browser
func tuplePart(raw interface{}) (int, bool) {
	var f float64
	switch v := raw.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return clampInt(float64(i)), true
		}
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return clampInt(float64(v)), true
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return clampInt(math.Trunc(f)), true
}

// maxTuplePart keeps rolled over dates within the range time.Date computes without overflowing
const maxTuplePart = 1 << 40

func clampInt(f float64) int {
	if f > maxTuplePart {
		return maxTuplePart
	}
	if f < -maxTuplePart {
		return -maxTuplePart
	}
	return int(f)
}
