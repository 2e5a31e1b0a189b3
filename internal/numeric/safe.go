// Package numeric holds the bounded parsing and division primitives every
// KPI calculation routes uncertain inputs through. Both functions are total:
// malformed telemetry degrades to a clamped fallback instead of propagating
// NaN or Infinity into an aggregate.
package numeric

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// SafeParseNumber parses v (string, number, json.Number or absent) and clamps
// the result to [min, max]. Null, empty, unparseable and non-finite inputs
// yield fallback, itself clamped to the same range. Never panics.
func SafeParseNumber(v any, fallback, min, max float64, context string) float64 {
	parsed, ok := toFloat(v)
	if !ok || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		if v != nil {
			log.Debug().Str("context", context).Interface("value", v).Msg("unparseable value, using fallback")
		}
		return Clamp(fallback, min, max)
	}
	if parsed < min || parsed > max {
		log.Debug().Str("context", context).Float64("value", parsed).
			Float64("min", min).Float64("max", max).Msg("value clamped to range")
	}
	return Clamp(parsed, min, max)
}

// SafeDivide returns numerator/denominator, or fallback when the denominator
// is zero or non-finite or the quotient would be non-finite. Never panics.
func SafeDivide(numerator, denominator, fallback float64, context string) float64 {
	if denominator == 0 || math.IsNaN(denominator) || math.IsInf(denominator, 0) {
		log.Debug().Str("context", context).Msg("division guarded, using fallback")
		return fallback
	}
	q := numerator / denominator
	if math.IsNaN(q) || math.IsInf(q, 0) {
		log.Debug().Str("context", context).Msg("non-finite quotient, using fallback")
		return fallback
	}
	return q
}

// Clamp bounds v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
