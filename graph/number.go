package graph

import "encoding/json"

// Int64 reports v as an int64. ok is false when v is not an integral
// number; floats are truncated only when they carry no fraction.
func Int64(v any) (int64, bool) {
	i, f, isInt := toNumber(v)
	if isInt {
		return i, true
	}
	switch v.(type) {
	case float32, float64, json.Number:
		if f == float64(int64(f)) {
			return int64(f), true
		}
	}
	return 0, false
}

// Float64 reports v as a float64. ok is false when v is not a number.
func Float64(v any) (float64, bool) {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32,
		uint64, float32, float64, json.Number:
		_, f, _ := toNumber(v)
		return f, true
	}
	return 0, false
}

// toNumber normalizes a numeric value. isInt reports whether the value
// is integral; f is always populated for cross-representation compares.
func toNumber(v any) (i int64, f float64, isInt bool) {
	switch n := v.(type) {
	case int:
		return int64(n), float64(n), true
	case int8:
		return int64(n), float64(n), true
	case int16:
		return int64(n), float64(n), true
	case int32:
		return int64(n), float64(n), true
	case int64:
		return n, float64(n), true
	case uint:
		return int64(n), float64(n), true
	case uint8:
		return int64(n), float64(n), true
	case uint16:
		return int64(n), float64(n), true
	case uint32:
		return int64(n), float64(n), true
	case uint64:
		return int64(n), float64(n), true
	case float32:
		return 0, float64(n), false
	case float64:
		return 0, float64(n), false
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, float64(i), true
		}
		f, _ := n.Float64()
		return 0, f, false
	}
	return 0, 0, false
}
