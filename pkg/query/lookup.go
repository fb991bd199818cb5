package query

import "reflect"

// Lookup returns records[i][resultKey] for the first record whose key field
// strictly equals keyValue. A missing record and a record without resultKey
// are both reported as absent.
//
//	records := []map[string]any{{"key": 1, "value": "haha"}, {"key": 2, "value": "hehe"}}
//	v, ok := query.Lookup(records, "key", 1, "value") // "haha", true
func Lookup(records []map[string]any, key string, keyValue any, resultKey string) (any, bool) {
	for _, rec := range records {
		if rec == nil {
			continue
		}
		field, ok := rec[key]
		if !ok {
			continue
		}
		if StrictEqual(field, keyValue) {
			v, ok := rec[resultKey]
			return v, ok
		}
	}
	return nil, false
}

// StrictEqual compares without type coercion between strings, numbers and
// booleans. All Go numeric kinds compare by value, NaN equals nothing and
// slices, maps, funcs and pointers compare by identity.
func StrictEqual(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}

	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
