package utils

import (
	"strconv"
	"strings"
)

// AnyToString converts a log argument to text without fmt, which keeps
// wasm binaries small. Unknown types render as "<?>".
func AnyToString(v any) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint8:
		return strconv.Itoa(int(val))
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	case error:
		return val.Error()
	case interface{ String() string }:
		return val.String()
	case []string:
		return "[" + strings.Join(val, ", ") + "]"
	case []float64:
		parts := make([]string, len(val))
		for i, f := range val {
			parts[i] = strconv.FormatFloat(f, 'f', -1, 64)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "<?>"
	}
}
