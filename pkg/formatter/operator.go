package formatter

import (
	"strings"

	"github.com/randalmurphal/formatter/pkg/formatter/resolve"
)

const (
	// EmptyAlternative separates a path from the operand used when the path
	// is absent, null, or a falsy value: {user.name|Guest}
	EmptyAlternative = "|"

	// NullAlternative separates a path from the operand used when the path
	// resolves to null: {user.name?Anonymous}
	NullAlternative = "?"

	// PathMarker prefixes a fallback operand that should be resolved as a
	// path instead of inserted literally: {user.name?+admin.name}
	PathMarker = "+"
)

// operator evaluates a placeholder expression. ok is false when the
// operator does not apply and the next one should be tried.
type operator func(f *Formatter, expr string) (text string, ok bool)

// operators in priority order.
var operators = []operator{
	(*Formatter).alternativeOnEmpty,
	(*Formatter).alternativeOnNull,
	(*Formatter).plainPath,
}

// evaluate returns the substitution text for expr, or false when the
// placeholder must stay verbatim.
func (f *Formatter) evaluate(expr string) (string, bool) {
	for _, op := range operators {
		if text, ok := op(f, expr); ok {
			return text, true
		}
	}
	return "", false
}

// alternativeOnEmpty implements {primary|fallback}.
func (f *Formatter) alternativeOnEmpty(expr string) (string, bool) {
	primary, fallback, ok := splitOperands(expr, EmptyAlternative)
	if !ok {
		return "", false
	}
	out := f.resolvePrimary(primary)
	if resolve.IsEmpty(out) {
		out = f.resolveFallback(fallback)
	}
	return resolve.Text(out)
}

// alternativeOnNull implements {primary?fallback}.
func (f *Formatter) alternativeOnNull(expr string) (string, bool) {
	primary, fallback, ok := splitOperands(expr, NullAlternative)
	if !ok {
		return "", false
	}
	out := f.resolvePrimary(primary)
	if out.IsNull() {
		out = f.resolveFallback(fallback)
	}
	return resolve.Text(out)
}

// plainPath implements {path}.
func (f *Formatter) plainPath(expr string) (string, bool) {
	return resolve.Text(f.resolvePrimary(expr))
}

// resolvePrimary resolves operand as a path. A leading PathMarker is not
// special here and stays part of the root name.
func (f *Formatter) resolvePrimary(operand string) resolve.Outcome {
	return resolve.Expr(operand, f.bindings)
}

// resolveFallback returns operand as literal text unless it starts with
// PathMarker, in which case the rest is resolved as a path.
func (f *Formatter) resolveFallback(operand string) resolve.Outcome {
	if path, ok := strings.CutPrefix(operand, PathMarker); ok {
		return resolve.Expr(path, f.bindings)
	}
	return resolve.Value(operand)
}

// splitOperands splits expr at the first sep. Both sides must be non-empty.
func splitOperands(expr, sep string) (primary, fallback string, ok bool) {
	primary, fallback, found := strings.Cut(expr, sep)
	if !found || primary == "" || fallback == "" {
		return "", "", false
	}
	return primary, fallback, true
}
