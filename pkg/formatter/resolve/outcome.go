package resolve

import "fmt"

// Kind classifies a resolution outcome.
type Kind int

const (
	// KindAbsent means some path segment could not be found.
	KindAbsent Kind = iota

	// KindNull means the path resolved fully to a nil value.
	KindNull

	// KindValue means the path resolved fully to a non-nil value.
	KindValue
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindValue:
		return "value"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is the tri-state result of resolving a path.
// The zero Outcome is Absent.
type Outcome struct {
	kind  Kind
	value any
}

// Absent returns the outcome of a path that could not be followed.
func Absent() Outcome {
	return Outcome{kind: KindAbsent}
}

// Null returns the outcome of a path that ended on a nil value.
func Null() Outcome {
	return Outcome{kind: KindNull}
}

// Value returns the outcome of a path that ended on v.
// A nil v (including typed nil pointers, maps and slices) yields Null.
func Value(v any) Outcome {
	if IsNil(v) {
		return Null()
	}
	return Outcome{kind: KindValue, value: v}
}

// Kind returns the outcome's classification.
func (o Outcome) Kind() Kind { return o.kind }

// IsAbsent reports whether resolution failed at some segment.
func (o Outcome) IsAbsent() bool { return o.kind == KindAbsent }

// IsNull reports whether the path resolved to nil. This is the strict
// null test; see IsEmpty for the loose one.
func (o Outcome) IsNull() bool { return o.kind == KindNull }

// IsValue reports whether the path resolved to a non-nil value.
func (o Outcome) IsValue() bool { return o.kind == KindValue }

// Value returns the resolved value, or nil unless the kind is KindValue.
func (o Outcome) Value() any { return o.value }

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o.kind == KindValue {
		return fmt.Sprintf("value(%v)", o.value)
	}
	return o.kind.String()
}
