// SPDX-License-Identifier: MIT

package header

import (
	"strconv"
	"strings"
)

// toUint converts a raw decoded value to an unsigned integer. Signed and
// unsigned integers, integral floats, and decimal digit strings are accepted;
// negatives, fractional floats, booleans, and everything else are not.
// The second return is false on failure, never a panic.
func toUint(v any) (uint64, bool) {
	switch x := v.(type) {
	case int:
		return fromInt64(int64(x))
	case int8:
		return fromInt64(int64(x))
	case int16:
		return fromInt64(int64(x))
	case int32:
		return fromInt64(int64(x))
	case int64:
		return fromInt64(x)
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	case float32:
		return fromFloat64(float64(x))
	case float64:
		return fromFloat64(x)
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func fromInt64(v int64) (uint64, bool) {
	if v < 0 {
		return 0, false
	}
	return uint64(v), true
}

func fromFloat64(v float64) (uint64, bool) {
	if v < 0 || v >= 1<<64 || v != float64(uint64(v)) {
		return 0, false
	}
	return uint64(v), true
}

// truthy applies the schema's loose boolean coercion for the enabled field:
// any present value counts, with false, zero, empty string, and empty
// collections mapping to false.
func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case uint64:
		return x != 0
	case float64:
		return x != 0
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return v != nil
	}
}
