package resolve

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/randalmurphal/formatter/pkg/formatter/value"
)

// IsNil reports whether v is nil or a typed nil pointer, map, slice,
// interface, func or chan.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// IsEmpty is the loose emptiness test used by the alternative-on-empty
// operator. Absent and Null are empty, and so is a Value holding false,
// "", numeric zero, or an empty mapping, slice or array. Text such as "0"
// is not empty, and neither is any other object, whatever its methods.
//
// This differs from Outcome.IsNull, which only accepts Null.
func IsEmpty(o Outcome) bool {
	if !o.IsValue() {
		return true
	}
	return isFalsy(o.Value())
}

func isFalsy(v any) bool {
	switch val := v.(type) {
	case bool:
		return !val
	case string:
		return val == ""
	case int:
		return val == 0
	case int64:
		return val == 0
	case float64:
		return val == 0
	case *value.OrderedMap:
		return val.Len() == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() == 0
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	default:
		return false
	}
}

// Stringify converts a resolved value to substitution text.
//
//   - nil: ""
//   - string, []byte: verbatim
//   - integers: base 10
//   - floats: shortest representation that round-trips, never exponent form
//   - bool: "true" or "false"
//   - error, fmt.Stringer: their own text
//   - anything else: fmt.Sprint
func Stringify(v any) string {
	if IsNil(v) {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		return fmt.Sprint(v)
	}
}

// Text stringifies an outcome: Null is "", Value uses Stringify.
// The second result is false for Absent.
func Text(o Outcome) (string, bool) {
	switch o.Kind() {
	case KindNull:
		return "", true
	case KindValue:
		return Stringify(o.Value()), true
	default:
		return "", false
	}
}
