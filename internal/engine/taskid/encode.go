// Package taskid encodes task instances into canonical task ids, parses task ids
// back into raw parameters, and reconstructs typed instances from raw parameters.
//
// A task id has the form
//
//	Name(key1=val1,key2=val2)
//
// with keys sorted by code point, list values rendered as [e1,e2] and no
// whitespace inserted anywhere. Only significant parameters appear in it.
// Values are not escaped, and a list holding one empty string renders as []
// and so parses back as an empty list.
package taskid

import (
	"slices"
	"strings"

	"go.trai.ch/taskid/internal/core/domain"
)

// Encode renders a task id from a task name and its significant parameter values.
func Encode(name string, significant map[string]domain.Value) string {
	keys := make([]string, 0, len(significant))
	for k := range significant {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(significant[k].Render())
	}
	b.WriteByte(')')
	return b.String()
}

// EncodeInstance renders the task id of an instance.
// Two instances that differ only in insignificant parameters share a task id.
func EncodeInstance(t *domain.TaskInstance) string {
	sig := t.Descriptor().SignificantParams()
	values := make(map[string]domain.Value, len(sig))
	for _, p := range sig {
		v, _ := t.Value(p.Name)
		values[p.Name] = v
	}
	return Encode(t.Name(), values)
}
