package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number converts a backend numeric value to a float64.
// Strings may carry surrounding spaces and ',' thousands separators.
func Number(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, !math.IsNaN(v)
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		cleaned := strings.Replace(strings.TrimSpace(v), ",", "", -1)
		if len(cleaned) == 0 {
			return 0, false
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
