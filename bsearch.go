// Package bsearch provides generic binary search over sorted, randomly
// indexable domains.
//
// The core of the package is the pair of monotonic-predicate searches,
// FindMinMatch and FindMaxMatch, which work over any integer-like ordered
// domain. LowerBound, UpperBound and the value based Range slicing are thin
// specialisations of them for sorted slices.
package bsearch

import (
	"golang.org/x/exp/constraints"

	"go.llib.dev/frameless/pkg/errorkit"
)

// ErrNoMatch is returned when a search exhausted its range
// without finding a value that satisfies the match function.
const ErrNoMatch errorkit.Error = "ErrNoMatch"

// FindMinMatch returns the smallest value in the half-open range [start, end)
// for which match reports true.
//
// The match function must be monotonically non-decreasing over the range:
// false for every value below some threshold and true for the threshold and
// everything above it. FindMinMatch cannot verify this contract; when it is
// violated, the returned value is unspecified.
//
// When match reports false for the whole range, FindMinMatch returns
// ErrNoMatch together with the last value of the range (end-1),
// the boundary value it examined.
//
// The range must not be empty, an empty or inverted range panics.
// FindMinMatch evaluates match at most ⌈log2(end-start)⌉+1 times.
func FindMinMatch[T constraints.Integer](start, end T, match func(T) bool) (T, error) {
	if end <= start {
		panic("bsearch.FindMinMatch: empty search range")
	}
	left, right := start, end-1
	for left < right {
		mid := left + (right-left)/2 // floor biased, stays below right
		if match(mid) {
			right = mid
		} else {
			left = mid + 1
		}
	}
	if match(right) {
		return right, nil
	}
	return right, ErrNoMatch
}

// FindMaxMatch returns the largest value in the half-open range [start, end)
// for which match reports true.
//
// It is the mirror image of FindMinMatch: the match function must be
// monotonically non-increasing over the range, true up to some threshold and
// false for everything above it.
//
// When match reports false for the whole range, FindMaxMatch returns
// ErrNoMatch together with the first value of the range (start).
//
// The range must not be empty, an empty or inverted range panics.
func FindMaxMatch[T constraints.Integer](start, end T, match func(T) bool) (T, error) {
	if end <= start {
		panic("bsearch.FindMaxMatch: empty search range")
	}
	left, right := start, end-1
	for left < right {
		mid := left + (right-left+1)/2 // ceil biased, stays above left
		if match(mid) {
			left = mid
		} else {
			right = mid - 1
		}
	}
	if match(left) {
		return left, nil
	}
	return left, ErrNoMatch
}
