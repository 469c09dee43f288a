// Package iters contains helpers for enumerating and zipping sequences.
//
// Zipped elements are [repr] tuples, so they render like any other tuple:
//
//	seq, _ := iters.Zip2([]int{1, 2}, []string{"a", "b"})
//	for t := range seq {
//		console.Print(t) // Tuple<int, string> (1, "a") ...
//	}
package iters

import (
	"iter"
	"slices"
)

// Counter describes the indices produced when enumerating: the first index is
// Start, and each following index is Step more than the previous one.
type Counter struct {
	Start int
	Step  int
}

// DefaultCounter counts 0, 1, 2, ...
var DefaultCounter = Counter{Start: 0, Step: 1}

// Enumerate pairs each element of seq with its index, starting from 0.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return EnumerateStep(seq, DefaultCounter.Start, DefaultCounter.Step)
}

// EnumerateFrom is like Enumerate, but starts from the given index.
func EnumerateFrom[T any](seq iter.Seq[T], start int) iter.Seq2[int, T] {
	return EnumerateStep(seq, start, DefaultCounter.Step)
}

// EnumerateStep is like Enumerate, but starts from the given index and
// advances it by step.
func EnumerateStep[T any](seq iter.Seq[T], start, step int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := start
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i += step
		}
	}
}

// EnumerateSlice enumerates the elements of s.
func EnumerateSlice[S ~[]T, T any](s S) iter.Seq2[int, T] {
	return Enumerate(slices.Values(s))
}

// ForEach calls f with each element of seq.
func ForEach[T any](seq iter.Seq[T], f func(T)) {
	for v := range seq {
		f(v)
	}
}

// ForEachIndexed calls f with each element of seq and its index.
func ForEachIndexed[T any](seq iter.Seq[T], f func(T, int)) {
	for i, v := range Enumerate(seq) {
		f(v, i)
	}
}
