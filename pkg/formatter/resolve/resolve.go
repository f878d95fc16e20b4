package resolve

import "strings"

// PathSeparator separates the segments of a path expression.
const PathSeparator = "."

// Root supplies the values that the first path segment names.
// binding.Registry implements Root.
type Root interface {
	Lookup(name string) (any, bool)
}

// Expr splits expr on PathSeparator and resolves it against root.
//
// Example:
//
//	out := resolve.Expr("user.name", registry)
//	if out.IsValue() {
//	    fmt.Println(resolve.Stringify(out.Value()))
//	}
func Expr(expr string, root Root) Outcome {
	return Path(strings.Split(expr, PathSeparator), root)
}

// Path resolves segments against root.
//
// The first segment must name a registered binding. Every further segment
// must be a present key of a keyed mapping, or a field or zero-argument
// method of an object-like value. Resolution is all-or-nothing: the first
// segment that cannot be followed makes the whole outcome Absent.
func Path(segments []string, root Root) Outcome {
	if len(segments) == 0 || root == nil {
		return Absent()
	}

	current, ok := root.Lookup(segments[0])
	if !ok {
		return Absent()
	}

	for _, seg := range segments[1:] {
		current, ok = Step(current, seg)
		if !ok {
			return Absent()
		}
	}
	return Value(current)
}
