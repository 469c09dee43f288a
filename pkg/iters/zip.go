package iters

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"src.echolib.dev/pkg/repr"
)

// LengthError is returned when lists to zip have different lengths.
type LengthError struct {
	Lengths []int
}

func (e *LengthError) Error() string {
	n := len(e.Lengths)
	var sb strings.Builder
	for i, l := range e.Lengths {
		switch {
		case i == 0:
		case i == n-1:
			sb.WriteString(" and ")
		default:
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(l))
	}
	return fmt.Sprintf(
		"all lists must have the same length, but got %d lists with lengths of %s",
		n, sb.String())
}

// ValidateLengths returns the common length of the lists with the given
// lengths. It returns an error if there are fewer than two lists, or if the
// lengths are not all the same.
func ValidateLengths(lens ...int) (int, error) {
	if len(lens) < 2 {
		return 0, fmt.Errorf("need at least 2 lists, got %d", len(lens))
	}
	for _, l := range lens[1:] {
		if l != lens[0] {
			return 0, &LengthError{lens}
		}
	}
	return lens[0], nil
}

// Zip2 returns a sequence of tuples made of the elements of a and b at the
// same index. The lists must have the same length.
func Zip2[T1, T2 any](a []T1, b []T2) (iter.Seq[repr.Tuple2[T1, T2]], error) {
	n, err := ValidateLengths(len(a), len(b))
	if err != nil {
		return nil, err
	}
	return func(yield func(repr.Tuple2[T1, T2]) bool) {
		for i := range n {
			if !yield(repr.NewTuple2(a[i], b[i])) {
				return
			}
		}
	}, nil
}

// Zip3 is like Zip2, but for three lists.
func Zip3[T1, T2, T3 any](a []T1, b []T2, c []T3) (iter.Seq[repr.Tuple3[T1, T2, T3]], error) {
	n, err := ValidateLengths(len(a), len(b), len(c))
	if err != nil {
		return nil, err
	}
	return func(yield func(repr.Tuple3[T1, T2, T3]) bool) {
		for i := range n {
			if !yield(repr.NewTuple3(a[i], b[i], c[i])) {
				return
			}
		}
	}, nil
}

// Zip4 is like Zip2, but for four lists.
func Zip4[T1, T2, T3, T4 any](a []T1, b []T2, c []T3, d []T4) (iter.Seq[repr.Tuple4[T1, T2, T3, T4]], error) {
	n, err := ValidateLengths(len(a), len(b), len(c), len(d))
	if err != nil {
		return nil, err
	}
	return func(yield func(repr.Tuple4[T1, T2, T3, T4]) bool) {
		for i := range n {
			if !yield(repr.NewTuple4(a[i], b[i], c[i], d[i])) {
				return
			}
		}
	}, nil
}

// Zip5 is like Zip2, but for five lists.
func Zip5[T1, T2, T3, T4, T5 any](a []T1, b []T2, c []T3, d []T4, e []T5) (iter.Seq[repr.Tuple5[T1, T2, T3, T4, T5]], error) {
	n, err := ValidateLengths(len(a), len(b), len(c), len(d), len(e))
	if err != nil {
		return nil, err
	}
	return func(yield func(repr.Tuple5[T1, T2, T3, T4, T5]) bool) {
		for i := range n {
			if !yield(repr.NewTuple5(a[i], b[i], c[i], d[i], e[i])) {
				return
			}
		}
	}, nil
}

// Zip6 is like Zip2, but for six lists.
func Zip6[T1, T2, T3, T4, T5, T6 any](a []T1, b []T2, c []T3, d []T4, e []T5, f []T6) (iter.Seq[repr.Tuple6[T1, T2, T3, T4, T5, T6]], error) {
	n, err := ValidateLengths(len(a), len(b), len(c), len(d), len(e), len(f))
	if err != nil {
		return nil, err
	}
	return func(yield func(repr.Tuple6[T1, T2, T3, T4, T5, T6]) bool) {
		for i := range n {
			if !yield(repr.NewTuple6(a[i], b[i], c[i], d[i], e[i], f[i])) {
				return
			}
		}
	}, nil
}

// ZipEnumerate2 is like Zip2, but each tuple is led by an index produced by c.
func ZipEnumerate2[T1, T2 any](c Counter, a []T1, b []T2) (iter.Seq[repr.Tuple3[int, T1, T2]], error) {
	n, err := ValidateLengths(len(a), len(b))
	if err != nil {
		return nil, err
	}
	return func(yield func(repr.Tuple3[int, T1, T2]) bool) {
		for i := range n {
			if !yield(repr.NewTuple3(c.Start+i*c.Step, a[i], b[i])) {
				return
			}
		}
	}, nil
}

// ZipEnumerate3 is like ZipEnumerate2, but for three lists.
func ZipEnumerate3[T1, T2, T3 any](c Counter, a []T1, b []T2, d []T3) (iter.Seq[repr.Tuple4[int, T1, T2, T3]], error) {
	n, err := ValidateLengths(len(a), len(b), len(d))
	if err != nil {
		return nil, err
	}
	return func(yield func(repr.Tuple4[int, T1, T2, T3]) bool) {
		for i := range n {
			if !yield(repr.NewTuple4(c.Start+i*c.Step, a[i], b[i], d[i])) {
				return
			}
		}
	}, nil
}

// ZipEnumerate4 is like ZipEnumerate2, but for four lists.
func ZipEnumerate4[T1, T2, T3, T4 any](c Counter, a []T1, b []T2, d []T3, e []T4) (iter.Seq[repr.Tuple5[int, T1, T2, T3, T4]], error) {
	n, err := ValidateLengths(len(a), len(b), len(d), len(e))
	if err != nil {
		return nil, err
	}
	return func(yield func(repr.Tuple5[int, T1, T2, T3, T4]) bool) {
		for i := range n {
			if !yield(repr.NewTuple5(c.Start+i*c.Step, a[i], b[i], d[i], e[i])) {
				return
			}
		}
	}, nil
}

// ZipEnumerate5 is like ZipEnumerate2, but for five lists.
func ZipEnumerate5[T1, T2, T3, T4, T5 any](c Counter, a []T1, b []T2, d []T3, e []T4, f []T5) (iter.Seq[repr.Tuple6[int, T1, T2, T3, T4, T5]], error) {
	n, err := ValidateLengths(len(a), len(b), len(d), len(e), len(f))
	if err != nil {
		return nil, err
	}
	return func(yield func(repr.Tuple6[int, T1, T2, T3, T4, T5]) bool) {
		for i := range n {
			if !yield(repr.NewTuple6(c.Start+i*c.Step, a[i], b[i], d[i], e[i], f[i])) {
				return
			}
		}
	}, nil
}

// ZipEnumerate6 is like ZipEnumerate2, but for six lists.
func ZipEnumerate6[T1, T2, T3, T4, T5, T6 any](c Counter, a []T1, b []T2, d []T3, e []T4, f []T5, g []T6) (iter.Seq[repr.Tuple7[int, T1, T2, T3, T4, T5, T6]], error) {
	n, err := ValidateLengths(len(a), len(b), len(d), len(e), len(f), len(g))
	if err != nil {
		return nil, err
	}
	return func(yield func(repr.Tuple7[int, T1, T2, T3, T4, T5, T6]) bool) {
		for i := range n {
			if !yield(repr.NewTuple7(c.Start+i*c.Step, a[i], b[i], d[i], e[i], f[i], g[i])) {
				return
			}
		}
	}, nil
}
