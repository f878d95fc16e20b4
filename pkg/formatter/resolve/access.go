package resolve

import (
	"reflect"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Mapping is a keyed mapping. Get reports key presence independently of
// the stored value, so a present key may hold nil.
// *value.OrderedMap implements Mapping.
type Mapping interface {
	Get(key string) (any, bool)
}

// FieldGetter is implemented by object-like values that expose named
// fields without relying on reflection.
type FieldGetter interface {
	Field(name string) (any, bool)
}

// MethodCaller is implemented by object-like values that expose named
// zero-argument operations without relying on reflection. Call invokes
// the operation and returns its result.
type MethodCaller interface {
	Call(name string) (any, bool)
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Step applies one path segment to current.
//
// Lookup order:
//  1. Mapping: key presence.
//  2. FieldGetter, then MethodCaller.
//  3. Reflection: Go maps by key, slices and arrays by index, struct
//     fields, then zero-argument methods.
//
// Field and method names match exactly first, then with the first letter
// upper-cased so that "name" reaches an exported Name.
func Step(current any, seg string) (any, bool) {
	if IsNil(current) {
		return nil, false
	}

	if m, ok := current.(Mapping); ok {
		return m.Get(seg)
	}

	if fg, ok := current.(FieldGetter); ok {
		if v, ok := fg.Field(seg); ok {
			return v, true
		}
	}
	if mc, ok := current.(MethodCaller); ok {
		if v, ok := mc.Call(seg); ok {
			return v, true
		}
	}

	return reflectStep(reflect.ValueOf(current), seg)
}

func reflectStep(rv reflect.Value, seg string) (any, bool) {
	// receiver keeps the outermost pointer so pointer-receiver methods
	// stay reachable after dereferencing for field access.
	receiver := rv
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
		if rv.Kind() == reflect.Pointer {
			receiver = rv
		}
	}

	switch rv.Kind() {
	case reflect.Map:
		return mapIndex(rv, seg)
	case reflect.Slice, reflect.Array:
		return sliceIndex(rv, seg)
	case reflect.Struct:
		if v, ok := structField(rv, seg); ok {
			return v, true
		}
	}

	return callMethod(receiver, rv, seg)
}

func mapIndex(rv reflect.Value, seg string) (any, bool) {
	keyType := rv.Type().Key()
	var key reflect.Value

	switch keyType.Kind() {
	case reflect.String:
		key = reflect.ValueOf(seg).Convert(keyType)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(seg, 10, keyType.Bits())
		if err != nil {
			return nil, false
		}
		key = reflect.ValueOf(n).Convert(keyType)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(seg, 10, keyType.Bits())
		if err != nil {
			return nil, false
		}
		key = reflect.ValueOf(n).Convert(keyType)
	case reflect.Interface:
		if !reflect.TypeOf(seg).Implements(keyType) {
			return nil, false
		}
		key = reflect.ValueOf(seg)
	default:
		return nil, false
	}

	v := rv.MapIndex(key)
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

func sliceIndex(rv reflect.Value, seg string) (any, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= rv.Len() {
		return nil, false
	}
	return rv.Index(i).Interface(), true
}

func structField(rv reflect.Value, seg string) (any, bool) {
	for _, name := range candidateNames(seg) {
		sf, ok := rv.Type().FieldByName(name)
		if !ok || !sf.IsExported() {
			continue
		}
		fv, err := rv.FieldByIndexErr(sf.Index)
		if err != nil {
			// nil embedded pointer on the way to a promoted field
			return nil, false
		}
		return fv.Interface(), true
	}
	return nil, false
}

func callMethod(receiver, rv reflect.Value, seg string) (any, bool) {
	// Methods with pointer receivers need an addressable value.
	if receiver.Kind() != reflect.Pointer {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		receiver = ptr
	}

	for _, name := range candidateNames(seg) {
		m := receiver.MethodByName(name)
		if !m.IsValid() {
			continue
		}
		return invoke(m)
	}
	return nil, false
}

// invoke calls a zero-argument method returning T or (T, error).
// A non-nil error fails the step.
func invoke(m reflect.Value) (any, bool) {
	mt := m.Type()
	if mt.NumIn() != 0 {
		return nil, false
	}
	switch mt.NumOut() {
	case 1:
		return m.Call(nil)[0].Interface(), true
	case 2:
		if !mt.Out(1).Implements(errorType) {
			return nil, false
		}
		out := m.Call(nil)
		if !out[1].IsNil() {
			return nil, false
		}
		return out[0].Interface(), true
	default:
		return nil, false
	}
}

// candidateNames returns seg and, when it differs, seg with an upper-cased
// first rune.
func candidateNames(seg string) []string {
	r, size := utf8.DecodeRuneInString(seg)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return []string{seg}
	}
	upper := string(unicode.ToUpper(r)) + seg[size:]
	if upper == seg {
		return []string{seg}
	}
	return []string{seg, upper}
}
