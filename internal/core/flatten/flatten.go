// Package flatten linearizes nested containers into an ordered list of leaves.
//
// Inputs are classified by a closed capability check: mappings, sequences and
// everything else. Strings and byte slices are leaves even though they could be
// iterated. One-shot sequences are drained exactly once and errors raised while
// producing an element are returned unchanged.
package flatten

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Seq is a one-shot, pull-based sequence whose production may fail.
type Seq iter.Seq2[any, error]

// Mapping adapts a container whose values should be flattened with keys discarded.
type Mapping interface {
	MappingValues() iter.Seq[any]
}

// Lazy returns a Seq that applies fn to each element of src as it is pulled,
// the way a generator expression would. An error from fn stops the sequence.
func Lazy[T any](src iter.Seq[T], fn func(T) (any, error)) Seq {
	return func(yield func(any, error) bool) {
		for elem := range src {
			v, err := fn(elem)
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Flatten returns the leaves of v in traversal order: mapping values, sequence
// elements, depth first. A leaf input yields a one-element result.
func Flatten(v any) ([]any, error) {
	var out []any
	if err := walk(v, func(leaf any) { out = append(out, leaf) }); err != nil {
		return nil, err
	}
	if out == nil {
		out = []any{}
	}
	return out, nil
}

// Strings flattens v and formats every leaf with fmt.Sprint.
func Strings(v any) ([]string, error) {
	leaves, err := Flatten(v)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(leaves))
	for i, leaf := range leaves {
		out[i] = fmt.Sprint(leaf)
	}
	return out, nil
}

func walk(v any, emit func(any)) error {
	switch x := v.(type) {
	case nil, string, []byte:
		emit(x)
		return nil
	case Seq:
		return walkSeq(x, emit)
	case iter.Seq2[any, error]:
		return walkSeq(Seq(x), emit)
	case func(func(any, error) bool):
		return walkSeq(Seq(x), emit)
	case iter.Seq[any]:
		if x == nil {
			return nil
		}
		return walkSeq(plain(x), emit)
	case func(func(any) bool):
		if x == nil {
			return nil
		}
		return walkSeq(plain(x), emit)
	case Mapping:
		for elem := range x.MappingValues() {
			if err := walk(elem, emit); err != nil {
				return err
			}
		}
		return nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		for _, key := range sortedKeys(rv) {
			if err := walk(rv.MapIndex(key).Interface(), emit); err != nil {
				return err
			}
		}
		return nil
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			if err := walk(rv.Index(i).Interface(), emit); err != nil {
				return err
			}
		}
		return nil
	case reflect.Func:
		if seq, ok := reflectSeq(rv); ok {
			return walkSeq(seq, emit)
		}
		emit(v)
		return nil
	default:
		emit(v)
		return nil
	}
}

// walkSeq treats a nil sequence as empty.
func walkSeq(seq Seq, emit func(any)) error {
	if seq == nil {
		return nil
	}
	var failure error
	seq(func(elem any, err error) bool {
		if err != nil {
			failure = err
			return false
		}
		failure = walk(elem, emit)
		return failure == nil
	})
	return failure
}

func plain(src func(func(any) bool)) Seq {
	return func(yield func(any, error) bool) {
		src(func(elem any) bool {
			return yield(elem, nil)
		})
	}
}

var errorType = reflect.TypeFor[error]()

// reflectSeq adapts typed iterators, iter.Seq[T] and iter.Seq2[T, error], to Seq.
// A nil iterator yields a nil Seq.
func reflectSeq(rv reflect.Value) (Seq, bool) {
	t := rv.Type()
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return nil, false
	}
	yt := t.In(0)
	if yt.Kind() != reflect.Func || yt.NumOut() != 1 || yt.Out(0).Kind() != reflect.Bool {
		return nil, false
	}
	withErr := yt.NumIn() == 2 && yt.In(1) == errorType
	if yt.NumIn() != 1 && !withErr {
		return nil, false
	}
	if rv.IsNil() {
		return nil, true
	}

	return func(yield func(any, error) bool) {
		fn := reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
			var err error
			if withErr && !args[1].IsNil() {
				err, _ = args[1].Interface().(error)
			}
			return []reflect.Value{reflect.ValueOf(yield(args[0].Interface(), err))}
		})
		rv.Call([]reflect.Value{fn})
	}, true
}

// sortedKeys orders native map keys so traversal does not depend on Go's
// randomized map iteration.
func sortedKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	slices.SortFunc(keys, compareKeys)
	return keys
}

func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if a.Kind() != b.Kind() {
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
	switch a.Kind() {
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	default:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}
