package domain

import (
	"slices"
	"strings"
)

// RawValue is an untyped parameter value as it appears in a task id:
// either one raw string or an ordered list of raw strings.
type RawValue struct {
	scalar string
	list   []string
	isList bool
}

// RawParams maps parameter names to their raw values.
type RawParams map[string]RawValue

// RawScalar returns a single raw string value.
func RawScalar(s string) RawValue {
	return RawValue{scalar: s}
}

// RawList returns a list raw value. An empty call yields an empty list, not a scalar.
func RawList(elems ...string) RawValue {
	list := make([]string, len(elems))
	copy(list, elems)
	return RawValue{list: list, isList: true}
}

// IsList reports whether the raw value is a list.
func (r RawValue) IsList() bool {
	return r.isList
}

// Scalar returns the raw string of a scalar value.
func (r RawValue) Scalar() string {
	return r.scalar
}

// List returns a copy of the elements of a list value.
func (r RawValue) List() []string {
	return slices.Clone(r.list)
}

// String renders the raw value the way it appears inside a task id.
func (r RawValue) String() string {
	if !r.isList {
		return r.scalar
	}
	return "[" + strings.Join(r.list, ",") + "]"
}

// Equal reports whether two raw values have the same shape and content.
func (r RawValue) Equal(other RawValue) bool {
	if r.isList != other.isList {
		return false
	}
	if r.isList {
		return slices.Equal(r.list, other.list)
	}
	return r.scalar == other.scalar
}
