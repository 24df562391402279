package bsearch

import (
	"golang.org/x/exp/constraints"

	"go.llib.dev/frameless/pkg/compare"
)

// LowerBound returns the index of the first element in the sorted slice
// that is greater than or equal to the given value.
//
// The slice must be sorted in ascending order; LowerBound assumes but does
// not verify the ordering.
//
// When every element is smaller than the value, LowerBound returns
// ErrNoMatch together with len(s), the index where the value would be
// inserted to keep the slice sorted.
func LowerBound[S ~[]E, E constraints.Ordered](s S, value E) (int, error) {
	return boundSearch(len(s), func(i int) bool { return value <= s[i] })
}

// UpperBound returns the index of the first element in the sorted slice
// that is strictly greater than the given value.
//
// It follows the same not-found convention as LowerBound:
// ErrNoMatch with len(s) when no element qualifies.
func UpperBound[S ~[]E, E constraints.Ordered](s S, value E) (int, error) {
	return boundSearch(len(s), func(i int) bool { return value < s[i] })
}

// LowerBoundFunc is LowerBound for element types without a natural ordering.
//
// The slice must be sorted in ascending order according to cmp,
// where cmp(element, value) follows the usual comparison convention:
// negative when the element orders before the value, zero when they are
// equal, positive when the element orders after the value.
func LowerBoundFunc[S ~[]E, E, V any](s S, value V, cmp func(E, V) int) (int, error) {
	return boundSearch(len(s), func(i int) bool { return 0 <= cmp(s[i], value) })
}

// UpperBoundFunc is UpperBound for element types without a natural ordering.
func UpperBoundFunc[S ~[]E, E, V any](s S, value V, cmp func(E, V) int) (int, error) {
	return boundSearch(len(s), func(i int) bool { return 0 < cmp(s[i], value) })
}

// LowerBoundBy is LowerBound for element types that implement their own
// comparison through compare.Interface.
func LowerBoundBy[S ~[]E, E compare.Interface[E]](s S, value E) (int, error) {
	return LowerBoundFunc(s, value, func(e, v E) int { return e.Compare(v) })
}

// UpperBoundBy is UpperBound for element types that implement their own
// comparison through compare.Interface.
func UpperBoundBy[S ~[]E, E compare.Interface[E]](s S, value E) (int, error) {
	return UpperBoundFunc(s, value, func(e, v E) int { return e.Compare(v) })
}

func boundSearch(length int, match func(int) bool) (int, error) {
	if length == 0 {
		return 0, ErrNoMatch
	}
	index, err := FindMinMatch(0, length, match)
	if err != nil {
		return length, err
	}
	return index, nil
}
