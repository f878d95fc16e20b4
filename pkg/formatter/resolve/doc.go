/*
Package resolve walks dotted paths through bound values.

# Overview

A path such as user.address.city names a root binding followed by keys,
fields or zero-argument methods applied one after another. Resolution
produces a tri-state Outcome:

	Absent   some segment could not be followed
	Null     every segment was followed and the final value is nil
	Value    every segment was followed and the final value is non-nil

The formatter's fallback operators are built on this distinction, so it
must never collapse: a present key holding nil is Null, a missing key is
Absent.

# Value Shapes

Each segment is applied according to the shape of the current value:

  - Keyed mappings (Mapping, such as *value.OrderedMap, and Go maps):
    the key must be present; its stored value may be nil.
  - Object-like values (FieldGetter / MethodCaller implementations, Go
    structs and any type with methods): a field of that name first,
    otherwise a zero-argument method, which is invoked.
  - Slices and arrays: a decimal index.
  - Anything else, including nil: the segment fails.

Methods may return T or (T, error); a non-nil error fails the segment.

# Emptiness

IsEmpty is deliberately looser than Outcome.IsNull: besides Absent and
Null it treats false, "", numeric zero and empty collections as empty.

	resolve.IsEmpty(resolve.Value(0))   // true
	resolve.Value(0).IsNull()           // false
*/
package resolve
