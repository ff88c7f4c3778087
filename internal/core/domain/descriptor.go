package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// TaskDescriptor is a task's declared name plus its ordered parameters.
// It is immutable once built and safe to share between goroutines.
type TaskDescriptor struct {
	name   InternedString
	params []ParameterDescriptor
	index  map[string]int
}

// NewTaskDescriptor validates and builds a TaskDescriptor.
// Parameters keep their declaration order.
func NewTaskDescriptor(name string, params ...ParameterDescriptor) (*TaskDescriptor, error) {
	if name == "" || strings.ContainsAny(name, "()") {
		return nil, zerr.With(ErrInvalidTaskName, "task_name", name)
	}

	d := &TaskDescriptor{
		name:   NewInternedString(name),
		params: make([]ParameterDescriptor, 0, len(params)),
		index:  make(map[string]int, len(params)),
	}

	for _, p := range params {
		if _, exists := d.index[p.Name]; exists {
			return nil, zerr.With(zerr.With(ErrDuplicateParameter, "task_name", name), "parameter", p.Name)
		}
		if p.Name == "" || strings.ContainsAny(p.Name, "=,[]()") {
			return nil, zerr.With(zerr.With(ErrInvalidParameterName, "task_name", name), "parameter", p.Name)
		}
		if !p.Kind.Valid() {
			return nil, zerr.With(zerr.With(ErrUnknownKind, "task_name", name), "parameter", p.Name)
		}
		if p.HasDefault && !p.Accepts(p.Default) {
			return nil, zerr.With(zerr.With(ErrKindMismatch, "task_name", name), "parameter", p.Name)
		}
		d.index[p.Name] = len(d.params)
		d.params = append(d.params, p)
	}

	return d, nil
}

// Name returns the task name.
func (d *TaskDescriptor) Name() string {
	return d.name.String()
}

// Params returns the parameters in declaration order.
func (d *TaskDescriptor) Params() []ParameterDescriptor {
	return slices.Clone(d.params)
}

// Param looks up a parameter by name.
func (d *TaskDescriptor) Param(name string) (ParameterDescriptor, bool) {
	i, ok := d.index[name]
	if !ok {
		return ParameterDescriptor{}, false
	}
	return d.params[i], true
}

// SignificantParams returns the significant parameters sorted by name.
func (d *TaskDescriptor) SignificantParams() []ParameterDescriptor {
	out := make([]ParameterDescriptor, 0, len(d.params))
	for _, p := range d.params {
		if p.Significant {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b ParameterDescriptor) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
