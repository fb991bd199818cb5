package collection

import "reflect"

// equality compares elements with == unless T can carry an interface value.
// Then maps, slices and funcs stored in it compare by identity instead of
// panicking, and any other uncomparable value equals nothing.
type equality[T comparable] struct {
	dynamic bool
}

func newEquality[T comparable]() equality[T] {
	return equality[T]{dynamic: holdsInterface(reflect.TypeFor[T]())}
}

// hashable reports whether v can be used as a map key and compared with ==.
func (e equality[T]) hashable(v T) bool {
	if !e.dynamic {
		return true
	}
	rv := reflect.ValueOf(any(v))
	return !rv.IsValid() || rv.Comparable()
}

func (e equality[T]) equal(a, b T) bool {
	ha, hb := e.hashable(a), e.hashable(b)
	switch {
	case ha && hb:
		return a == b
	case ha != hb:
		return false
	}
	return sameReference(reflect.ValueOf(any(a)), reflect.ValueOf(any(b)))
}

func (e equality[T]) isNaN(v T) bool {
	return e.hashable(v) && v != v
}

// sameValueZero is equal with NaN equal to itself.
func (e equality[T]) sameValueZero(a, b T) bool {
	return e.equal(a, b) || (e.isNaN(a) && e.isNaN(b))
}

func sameReference(a, b reflect.Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Map, reflect.Func:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len()
	}
	return false
}

func holdsInterface(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return holdsInterface(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if holdsInterface(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
