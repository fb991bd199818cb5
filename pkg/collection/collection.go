package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// Dedupe keeps the first occurrence of every distinct element.
// NaN values collapse into a single element. Maps, slices and funcs held in
// an interface are distinct unless they are the same reference.
func Dedupe[T comparable](seq []T) []T {
	eq := newEquality[T]()
	seen := make(map[T]struct{}, len(seq))
	result := make([]T, 0, len(seq))
	var refs []T
	sawNaN := false

	for _, item := range seq {
		switch {
		case !eq.hashable(item):
			if slices.ContainsFunc(refs, func(r T) bool { return eq.equal(r, item) }) {
				continue
			}
			refs = append(refs, item)
		case item != item:
			if sawNaN {
				continue
			}
			sawNaN = true
		default:
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
		}
		result = append(result, item)
	}

	return result
}

// DedupeByIndex keeps an element when its index is the first index of its value.
// Same result as Dedupe, quadratic time, no map allocation.
func DedupeByIndex[T comparable](seq []T) []T {
	eq := newEquality[T]()
	result := make([]T, 0, len(seq))
	for i, item := range seq {
		if slices.IndexFunc(seq, func(v T) bool { return eq.sameValueZero(v, item) }) == i {
			result = append(result, item)
		}
	}
	return result
}

// SymmetricDifference returns the elements that occur exactly once across a and b.
func SymmetricDifference[T comparable](a, b []T) []T {
	eq := newEquality[T]()
	all := make([]T, 0, len(a)+len(b))
	all = append(all, a...)
	all = append(all, b...)

	result := make([]T, 0)
	for _, item := range all {
		match := func(v T) bool { return eq.equal(v, item) }
		if slices.IndexFunc(all, match) == lastIndexFunc(all, match) {
			result = append(result, item)
		}
	}
	return result
}

// Intersection appends a[j] for every pair where a[j] == b[i], iterating b first.
// The result is not deduplicated.
func Intersection[T comparable](a, b []T) []T {
	eq := newEquality[T]()
	result := make([]T, 0)
	for _, want := range b {
		for _, item := range a {
			if eq.equal(item, want) {
				result = append(result, item)
			}
		}
	}
	return result
}

// CloneJSON copies every element through json.Marshal and json.Unmarshal.
// Anything JSON cannot carry (unexported fields, concrete types behind any,
// nil-vs-empty distinctions) is lost.
func CloneJSON[T any](seq []T) ([]T, error) {
	result := make([]T, 0, len(seq))
	for i, item := range seq {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, errors.Join(ErrNotSerializable, fmt.Errorf("element %d: %w", i, err))
		}

		var clone T
		if err := json.Unmarshal(data, &clone); err != nil {
			return nil, errors.Join(ErrNotSerializable, fmt.Errorf("element %d: %w", i, err))
		}
		result = append(result, clone)
	}
	return result, nil
}

// MustCloneJSON is like CloneJSON but panics on error.
func MustCloneJSON[T any](seq []T) []T {
	result, err := CloneJSON(seq)
	if err != nil {
		panic(err)
	}
	return result
}

func lastIndexFunc[T any](seq []T, match func(T) bool) int {
	for i := len(seq) - 1; i >= 0; i-- {
		if match(seq[i]) {
			return i
		}
	}
	return -1
}
