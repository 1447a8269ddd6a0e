package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseWeight coerces a caller-supplied weight value to a float64. JSON
// numbers pass through, numeric strings are parsed, and anything else yields
// NaN, which is stored as-is rather than rejected. A parcel stored with a NaN
// weight will not survive JSON re-serialization; clients sending numeric
// weights never hit this.
func ParseWeight(v interface{}) float64 {
	switch w := v.(type) {
	case float64:
		return w
	case float32:
		return float64(w)
	case int:
		return float64(w)
	case int32:
		return float64(w)
	case int64:
		return float64(w)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
