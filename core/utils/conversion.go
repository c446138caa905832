package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt64 converts various types to int64 using explicit type switching.
// It handles json.Number, standard numeric types, strings and byte slices.
// The second result is false when the value is nil or cannot be parsed.
func ToInt64(val any) (int64, bool) {
	switch v := val.(type) {
	case nil:
		return 0, false
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return int64(f), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case uint32:
		return int64(v), true
	case float64:
		return int64(v), true
	case float32:
		return int64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		return parseInt(v)
	case []byte:
		return parseInt(string(v))
	default:
		return parseInt(fmt.Sprintf("%v", v))
	}
}

func parseInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}

// ToFloat converts various types to float64.
// The second result is false when the value is nil or cannot be parsed.
func ToFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case nil:
		return 0, false
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		f, err := strconv.ParseFloat(fmt.Sprintf("%v", v), 64)
		return f, err == nil
	}
}

// ToString converts various types to string. nil becomes the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
// The second result is false when the value is nil.
func ToBool(val any) (bool, bool) {
	switch v := val.(type) {
	case nil:
		return false, false
	case bool:
		return v, true
	case string:
		return v == "1" || strings.ToLower(v) == "true", true
	case []byte:
		s := string(v)
		return s == "1" || strings.ToLower(s) == "true", true
	default:
		i, ok := ToInt64(v)
		return ok && i == 1, ok
	}
}

// Int64Ptr returns a pointer to the converted value, or nil when absent.
func Int64Ptr(val any) *int64 {
	if i, ok := ToInt64(val); ok {
		return &i
	}
	return nil
}

// IntPtr returns a pointer to the converted value, or nil when absent.
func IntPtr(val any) *int {
	if i, ok := ToInt64(val); ok {
		n := int(i)
		return &n
	}
	return nil
}

// FloatPtr returns a pointer to the converted value, or nil when absent.
func FloatPtr(val any) *float64 {
	if f, ok := ToFloat(val); ok {
		return &f
	}
	return nil
}

// StringPtr returns a pointer to the converted value, or nil when absent.
func StringPtr(val any) *string {
	if val == nil {
		return nil
	}
	s := ToString(val)
	return &s
}

// BoolPtr returns a pointer to the converted value, or nil when absent.
func BoolPtr(val any) *bool {
	if b, ok := ToBool(val); ok {
		return &b
	}
	return nil
}
