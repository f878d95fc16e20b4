package resolve

import (
	"errors"
	"testing"
	"time"

	"github.com/randalmurphal/formatter/pkg/formatter/value"
	"github.com/stretchr/testify/assert"
)

func TestValue_NormalizesNil(t *testing.T) {
	var p *address
	var m map[string]any
	var s []int

	assert.True(t, Value(nil).IsNull())
	assert.True(t, Value(p).IsNull())
	assert.True(t, Value(m).IsNull())
	assert.True(t, Value(s).IsNull())
	assert.True(t, Value(0).IsValue())
	assert.True(t, Value("").IsValue())
}

func TestOutcome_ZeroIsAbsent(t *testing.T) {
	var o Outcome
	assert.True(t, o.IsAbsent())
	assert.Equal(t, "absent", o.String())
	assert.Equal(t, "null", Null().String())
	assert.Equal(t, "value(7)", Value(7).String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}

func TestIsEmpty(t *testing.T) {
	type flag bool
	type count uint16

	tests := []struct {
		name string
		out  Outcome
		want bool
	}{
		{"absent", Absent(), true},
		{"null", Null(), true},
		{"false", Value(false), true},
		{"true", Value(true), false},
		{"empty string", Value(""), true},
		{"zero string", Value("0"), false},
		{"space", Value(" "), false},
		{"int zero", Value(0), true},
		{"int64 zero", Value(int64(0)), true},
		{"int8 zero", Value(int8(0)), true},
		{"uint zero", Value(uint(0)), true},
		{"float zero", Value(0.0), true},
		{"float32 zero", Value(float32(0)), true},
		{"negative", Value(-1), false},
		{"fraction", Value(0.5), false},
		{"named bool", Value(flag(false)), true},
		{"named uint", Value(count(0)), true},
		{"named uint nonzero", Value(count(3)), false},
		{"empty ordered map", Value(value.NewOrderedMap()), true},
		{"ordered map", Value(value.OrderedMapOf("a", 1)), false},
		{"empty map", Value(map[string]any{}), true},
		{"empty slice", Value([]any{}), true},
		{"slice", Value([]int{0}), false},
		{"struct", Value(address{}), false},
		{"struct with zero Len", Value(sized{}), false},
		{"pointer with zero Len", Value(&sized{}), false},
		{"duration zero", Value(time.Duration(0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmpty(tt.out))
		})
	}
}

type sized struct{ n int }

func (s sized) Len() int { return s.n }

func TestIsEmpty_DiffersFromIsNull(t *testing.T) {
	out := Value(0)
	assert.True(t, IsEmpty(out))
	assert.False(t, out.IsNull())
}

type shout string

func (s shout) String() string { return string(s) + "!" }

func TestStringify(t *testing.T) {
	type name string
	type small int8

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"typed nil", (*address)(nil), ""},
		{"string", "Ann", "Ann"},
		{"bytes", []byte("raw"), "raw"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"uint", uint32(9), "9"},
		{"float", 3.14, "3.14"},
		{"whole float", 100.0, "100"},
		{"large float", 1e21, "1000000000000000000000"},
		{"float32", float32(0.25), "0.25"},
		{"error", errors.New("bad"), "bad"},
		{"stringer", shout("hey"), "hey!"},
		{"duration", 2 * time.Second, "2s"},
		{"named string", name("x"), "x"},
		{"named int", small(-3), "-3"},
		{"slice", []int{1, 2}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stringify(tt.in))
		})
	}
}

func TestText(t *testing.T) {
	s, ok := Text(Absent())
	assert.False(t, ok)
	assert.Empty(t, s)

	s, ok = Text(Null())
	assert.True(t, ok)
	assert.Empty(t, s)

	s, ok = Text(Value(12))
	assert.True(t, ok)
	assert.Equal(t, "12", s)
}
