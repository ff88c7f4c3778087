package domain

import (
	"math"
	"slices"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Value is an immutable typed parameter value.
// It holds either a single scalar of its kind or, for repeated parameters,
// an ordered list of scalars of that kind.
type Value struct {
	kind  ParameterKind
	list  bool
	text  string
	num   int64
	float float64
	at    time.Time
	elems []Value
}

// TextValue returns a KindText value.
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// BoolValue returns a KindBoolean value.
func BoolValue(b bool) Value {
	v := Value{kind: KindBoolean}
	if b {
		v.num = 1
	}
	return v
}

// IntValue returns a KindInteger value.
func IntValue(i int64) Value {
	return Value{kind: KindInteger, num: i}
}

// FloatValue returns a KindFloat value.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, float: f}
}

// DateValue returns a KindDate value for the calendar day of t in t's location.
// Years outside 0000-9999 do not survive a render and parse; see DateLayout.
func DateValue(t time.Time) Value {
	return Value{kind: KindDate, at: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// DateHourValue returns a KindDateHour value for the calendar day and hour of t in t's location.
// The year range of DateValue applies.
func DateHourValue(t time.Time) Value {
	return Value{kind: KindDateHour, at: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC)}
}

// IntervalValue returns a KindTimeInterval value.
// Only whole days survive rendering; see ParameterKind.Render.
func IntervalValue(d time.Duration) Value {
	return Value{kind: KindTimeInterval, num: int64(d)}
}

// ListValue returns a repeated value of the given kind.
// Every element must be a scalar of that kind.
func ListValue(kind ParameterKind, elems ...Value) (Value, error) {
	if !kind.Valid() {
		return Value{}, zerr.With(ErrUnknownKind, "kind", kind.String())
	}
	for i, e := range elems {
		if e.list || e.kind != kind {
			return Value{}, zerr.With(zerr.With(ErrKindMismatch, "expected", kind.String()), "index", i)
		}
	}
	return Value{kind: kind, list: true, elems: slices.Clone(elems)}, nil
}

// Kind returns the kind of the value, or of its elements for a list.
func (v Value) Kind() ParameterKind {
	return v.kind
}

// IsList reports whether the value is a repeated value.
func (v Value) IsList() bool {
	return v.list
}

// IsZero reports whether v is the zero Value, which holds no kind.
func (v Value) IsZero() bool {
	return v.kind == KindInvalid
}

// Text returns the string held by a KindText value.
func (v Value) Text() string {
	return v.text
}

// Bool returns the bool held by a KindBoolean value.
func (v Value) Bool() bool {
	return v.num != 0
}

// Int returns the integer held by a KindInteger value.
func (v Value) Int() int64 {
	return v.num
}

// Float returns the float held by a KindFloat value.
func (v Value) Float() float64 {
	return v.float
}

// Time returns the instant held by a KindDate or KindDateHour value, in UTC.
func (v Value) Time() time.Time {
	return v.at
}

// Interval returns the duration held by a KindTimeInterval value.
func (v Value) Interval() time.Duration {
	return time.Duration(v.num)
}

// Elems returns a copy of the elements of a list value.
func (v Value) Elems() []Value {
	return slices.Clone(v.elems)
}

// Equal reports whether two values have the same kind, shape and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind || v.list != other.list {
		return false
	}
	if v.list {
		return slices.EqualFunc(v.elems, other.elems, Value.Equal)
	}
	switch v.kind {
	case KindText:
		return v.text == other.text
	case KindBoolean, KindInteger, KindTimeInterval:
		return v.num == other.num
	case KindFloat:
		// NaN is treated as equal to itself so instance equality stays reflexive.
		return v.float == other.float || (math.IsNaN(v.float) && math.IsNaN(other.float))
	case KindDate, KindDateHour:
		return v.at.Equal(other.at)
	case KindInvalid:
		return true
	}
	return false
}

// Render returns the canonical string form of the value.
// Lists render as "[e1,e2,...]".
func (v Value) Render() string {
	if !v.list {
		s, _ := v.kind.Render(v)
		return s
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range v.elems {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(e.Render())
	}
	b.WriteByte(']')
	return b.String()
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return v.Render()
}

// Interface returns the value as a plain Go value, mostly for display.
func (v Value) Interface() any {
	if v.list {
		out := make([]any, len(v.elems))
		for i, e := range v.elems {
			out[i] = e.Interface()
		}
		return out
	}
	switch v.kind {
	case KindText:
		return v.text
	case KindBoolean:
		return v.Bool()
	case KindInteger:
		return v.num
	case KindFloat:
		return v.float
	case KindDate, KindDateHour:
		return v.at
	case KindTimeInterval:
		return v.Interval()
	case KindInvalid:
		return nil
	}
	return nil
}
