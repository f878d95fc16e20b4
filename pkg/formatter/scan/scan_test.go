package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{"no placeholders", "plain text", nil},
		{"single", "Hi {user.name}!", []string{"user.name"}},
		{"multiple", "{a} and {b.c}", []string{"a", "b.c"}},
		{"duplicates kept", "{a}{a} {a}", []string{"a", "a", "a"}},
		{"operators", "{x|y} {p?+q}", []string{"x|y", "p?+q"}},
		{"empty braces", "{}", []string{""}},
		{"non greedy", "{a}b}", []string{"a"}},
		{"nested open", "{a{b}", []string{"a{b"}},
		{"lone open", "a { b", nil},
		{"lone close", "a } b", nil},
		{"close before open", "} {a", nil},
		{"spans no newline", "{a\nb} {c}", []string{"c"}},
		{"adjacent", "{a}{b}{c}", []string{"a", "b", "c"}},
		{"unicode", "{naïve.ключ}", []string{"naïve.ключ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, All(tt.message))
		})
	}
}

func TestPlaceholders_Restartable(t *testing.T) {
	seq := Placeholders("{a} {b}")

	var first, second []string
	for expr := range seq {
		first = append(first, expr)
	}
	for expr := range seq {
		second = append(second, expr)
	}
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a", "b"}, first)
}

func TestPlaceholders_EarlyStop(t *testing.T) {
	var got []string
	for expr := range Placeholders("{a} {b} {c}") {
		got = append(got, expr)
		if expr == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"b", "a"}, Distinct("{b}{a}{b}{a}"))
	assert.Nil(t, Distinct("none"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("x {y}"))
	assert.True(t, Contains("{}"))
	assert.False(t, Contains("x { y"))
	assert.False(t, Contains(""))
}

func TestReplace(t *testing.T) {
	assert.Equal(t, "Hi Ann and Ann", Replace("Hi {n} and {n}", map[string]string{"n": "Ann"}))
	assert.Equal(t, "{m} stays", Replace("{m} stays", map[string]string{"n": "x"}))
	assert.Equal(t, "x", Replace("{a|b}", map[string]string{"a|b": "x"}))
	assert.Equal(t, "same {n}", Replace("same {n}", nil))
}

func TestReplace_InsertedTextIsNotRescanned(t *testing.T) {
	texts := map[string]string{"a": "{b}", "b": "{a}"}
	assert.Equal(t, "{b}{a}{b}", Replace("{a}{b}{a}", texts))
}
