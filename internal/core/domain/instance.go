package domain

import (
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// TaskInstance is a task descriptor bound to one typed value per declared parameter.
// Instances are immutable, so Equal and Key stay stable for their whole lifetime.
type TaskInstance struct {
	desc   *TaskDescriptor
	values map[string]Value
}

// NewTaskInstance binds values to desc. Every declared parameter must be present
// with the declared kind and shape; defaults are not applied here.
func NewTaskInstance(desc *TaskDescriptor, values map[string]Value) (*TaskInstance, error) {
	bound := make(map[string]Value, len(desc.params))
	for _, p := range desc.params {
		v, ok := values[p.Name]
		if !ok {
			return nil, NewMissingParameterError(desc.Name(), p.Name)
		}
		if !p.Accepts(v) {
			return nil, zerr.With(zerr.With(ErrKindMismatch, "parameter", p.Name), "expected", p.Kind.String())
		}
		bound[p.Name] = v
	}
	for name := range values {
		if _, ok := desc.index[name]; !ok {
			return nil, zerr.With(zerr.With(ErrUnknownParameter, "task_name", desc.Name()), "parameter", name)
		}
	}
	return &TaskInstance{desc: desc, values: bound}, nil
}

// Descriptor returns the descriptor the instance was built from.
func (t *TaskInstance) Descriptor() *TaskDescriptor {
	return t.desc
}

// Name returns the task name.
func (t *TaskInstance) Name() string {
	return t.desc.Name()
}

// Value returns the value bound to the named parameter.
func (t *TaskInstance) Value(name string) (Value, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Values yields every parameter and its value, sorted by parameter name.
func (t *TaskInstance) Values() iter.Seq2[string, Value] {
	names := make([]string, 0, len(t.values))
	for name := range t.values {
		names = append(names, name)
	}
	slices.Sort(names)

	return func(yield func(string, Value) bool) {
		for _, name := range names {
			if !yield(name, t.values[name]) {
				return
			}
		}
	}
}

// Equal reports whether both instances have the same task name and equal values
// for every declared parameter, significant or not.
func (t *TaskInstance) Equal(other *TaskInstance) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.desc.name != other.desc.name || len(t.values) != len(other.values) {
		return false
	}
	for name, v := range t.values {
		ov, ok := other.values[name]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Key returns a string that is equal for two instances exactly when Equal holds,
// suitable as a map key for deduplication. Unlike a task id it covers all parameters.
func (t *TaskInstance) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Quote(t.Name()))
	b.WriteByte(0)
	for name, v := range t.Values() {
		b.WriteString(strconv.Quote(name))
		b.WriteByte(0)
		b.WriteString(v.Kind().String())
		if v.IsList() {
			b.WriteString("[]")
		}
		b.WriteByte(0)
		writeKeyValue(&b, v)
		b.WriteByte(0)
	}
	return b.String()
}

func writeKeyValue(b *strings.Builder, v Value) {
	if v.IsList() {
		for _, e := range v.elems {
			writeKeyValue(b, e)
			b.WriteByte(1)
		}
		return
	}
	switch v.kind {
	case KindFloat:
		// Equal treats 0 and -0 alike, and all NaNs alike.
		switch {
		case v.float == 0:
			b.WriteString("0")
		case math.IsNaN(v.float):
			b.WriteString("NaN")
		default:
			b.WriteString(v.Render())
		}
	case KindText:
		// Quoted so separator bytes inside a value cannot fake a field boundary.
		b.WriteString(strconv.Quote(v.text))
	case KindTimeInterval:
		// Render drops sub-day precision.
		b.WriteString(strconv.FormatInt(v.num, 10))
	default:
		b.WriteString(v.Render())
	}
}
