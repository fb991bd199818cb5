package query

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
)

// Filter returns a new Params without private keys (prefixed with "_") and
// without empty values. A value is empty when it is falsy (nil, false, 0,
// NaN, "") or when its JSON form is {} or []. Nil or empty input is reported
// as absent by returning nil.
func Filter(p *Params) *Params {
	if p.Len() == 0 {
		return nil
	}

	result := NewParams()
	for k, v := range p.All() {
		if strings.HasPrefix(k, "_") {
			continue
		}
		if !Truthy(v) || isEmptyJSON(v) {
			continue
		}
		result.Set(k, v)
	}
	return result
}

// Truthy reports whether v counts as a present value: not nil, not false,
// not a zero number or NaN, not an empty string and not a nil reference.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case float64:
		return x != 0 && !math.IsNaN(x)
	}

	if f, ok := toFloat(v); ok {
		return f != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// isEmptyJSON reports whether v serialises to an empty object or array.
// Values that cannot be serialised are not considered empty.
func isEmptyJSON(v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		return false
	}
	s := string(data)
	return s == "{}" || s == "[]"
}
