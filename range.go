package bsearch

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Bound describes one endpoint of a value based range.
// The zero Bound is unbounded.
type Bound[T any] struct {
	value T
	kind  boundKind
}

type boundKind int

const (
	boundUnbounded boundKind = iota
	boundIncluded
	boundExcluded
)

// Included returns a Bound whose endpoint value belongs to the range.
func Included[T any](value T) Bound[T] {
	return Bound[T]{value: value, kind: boundIncluded}
}

// Excluded returns a Bound whose endpoint value is left out of the range.
func Excluded[T any](value T) Bound[T] {
	return Bound[T]{value: value, kind: boundExcluded}
}

// Unbounded returns a Bound without an endpoint,
// the range extends to the edge of the sequence on that side.
func Unbounded[T any]() Bound[T] {
	return Bound[T]{}
}

func (b Bound[T]) String() string {
	switch b.kind {
	case boundIncluded:
		return fmt.Sprintf("Included(%v)", b.value)
	case boundExcluded:
		return fmt.Sprintf("Excluded(%v)", b.value)
	default:
		return "Unbounded"
	}
}

// Range returns the contiguous sub-slice of the sorted slice whose elements
// fall between the start and end bounds.
//
// The result is a zero-copy view into the backing array of s, it shares the
// storage and must not outlive it. Callers that need an independent copy
// should clone the result. When no element falls between the bounds, or the
// bounds cross each other, Range returns an empty slice.
func Range[S ~[]E, E constraints.Ordered](s S, start, end Bound[E]) S {
	low, high := rangeIndexes(s, start, end)
	return s[low:high:high]
}

// RangeMut is Range for writing through the view.
//
// Go cannot statically enforce exclusive access the way a borrow checker
// would: the caller must guarantee that no other goroutine or live view
// reads or writes the covered region while the returned slice is in use.
// Writes through the view land in the original slice. The view's capacity
// is pinned to its length, so appending to it cannot spill past the region.
func RangeMut[S ~[]E, E constraints.Ordered](s S, start, end Bound[E]) S {
	low, high := rangeIndexes(s, start, end)
	return s[low:high:high]
}

func rangeIndexes[S ~[]E, E constraints.Ordered](s S, start, end Bound[E]) (int, int) {
	// A failed bound search reports len(s) as its insertion point,
	// which is exactly the empty-region fallback on either side.
	var low int
	switch start.kind {
	case boundIncluded:
		low, _ = LowerBound(s, start.value)
	case boundExcluded:
		low, _ = UpperBound(s, start.value)
	case boundUnbounded:
		low = 0
	}
	high := len(s)
	switch end.kind {
	case boundIncluded:
		high, _ = UpperBound(s, end.value)
	case boundExcluded:
		high, _ = LowerBound(s, end.value)
	case boundUnbounded:
		high = len(s)
	}
	if high < low { // crossed bounds
		high = low
	}
	return low, high
}
