package bsearch_test

import (
	"fmt"

	"go.llib.dev/bsearch"
)

func ExampleFindMinMatch() {
	arr := []bool{false, false, true, true, true}

	index, _ := bsearch.FindMinMatch(0, len(arr), func(i int) bool { return arr[i] })

	fmt.Println(index)
	// Output: 2
}

func ExampleFindMinMatch_arbitraryDomain() {
	index, _ := bsearch.FindMinMatch(-100, 100, func(v int) bool { return 10 <= 3*v })

	fmt.Println(index)
	// Output: 4
}

func ExampleFindMaxMatch() {
	index, _ := bsearch.FindMaxMatch(-100, 100, func(v int) bool { return 3*v <= 10 })

	fmt.Println(index)
	// Output: 3
}

func ExampleLowerBound() {
	arr := []int{1, 3, 4, 4, 4, 5, 7, 9}

	index, _ := bsearch.LowerBound(arr, 4)

	fmt.Println(index)
	// Output: 2
}

func ExampleUpperBound() {
	arr := []int{1, 3, 4, 4, 4, 5, 7, 9}

	index, _ := bsearch.UpperBound(arr, 4)

	fmt.Println(index)
	// Output: 5
}

func ExampleRange() {
	arr := []int{1, 3, 4, 4, 4, 5, 5, 7, 9}

	fmt.Println(bsearch.Range(arr, bsearch.Included(5), bsearch.Excluded(9)))
	// Output: [5 5 7]
}

func ExampleRangeMut() {
	arr := []int{1, 3, 4, 4, 4, 5, 5, 7, 9}

	view := bsearch.RangeMut(arr, bsearch.Included(4), bsearch.Included(4))
	view[0] = 0

	fmt.Println(arr)
	// Output: [1 3 0 4 4 5 5 7 9]
}
