package repr

import "strconv"

// Tuple0 is the empty tuple.
type Tuple0 struct{}

// Tuple2 is a tuple with two elements.
type Tuple2[T1, T2 any] struct {
	Item1 T1
	Item2 T2
}

// Tuple3 is a tuple with three elements.
type Tuple3[T1, T2, T3 any] struct {
	Item1 T1
	Item2 T2
	Item3 T3
}

// Tuple4 is a tuple with four elements.
type Tuple4[T1, T2, T3, T4 any] struct {
	Item1 T1
	Item2 T2
	Item3 T3
	Item4 T4
}

// Tuple5 is a tuple with five elements.
type Tuple5[T1, T2, T3, T4, T5 any] struct {
	Item1 T1
	Item2 T2
	Item3 T3
	Item4 T4
	Item5 T5
}

// Tuple6 is a tuple with six elements.
type Tuple6[T1, T2, T3, T4, T5, T6 any] struct {
	Item1 T1
	Item2 T2
	Item3 T3
	Item4 T4
	Item5 T5
	Item6 T6
}

// Tuple7 is a tuple with seven elements.
type Tuple7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	Item1 T1
	Item2 T2
	Item3 T3
	Item4 T4
	Item5 T5
	Item6 T6
	Item7 T7
}

// NewTuple2 returns a Tuple2.
func NewTuple2[T1, T2 any](a T1, b T2) Tuple2[T1, T2] {
	return Tuple2[T1, T2]{a, b}
}

// NewTuple3 returns a Tuple3.
func NewTuple3[T1, T2, T3 any](a T1, b T2, c T3) Tuple3[T1, T2, T3] {
	return Tuple3[T1, T2, T3]{a, b, c}
}

// NewTuple4 returns a Tuple4.
func NewTuple4[T1, T2, T3, T4 any](a T1, b T2, c T3, d T4) Tuple4[T1, T2, T3, T4] {
	return Tuple4[T1, T2, T3, T4]{a, b, c, d}
}

// NewTuple5 returns a Tuple5.
func NewTuple5[T1, T2, T3, T4, T5 any](a T1, b T2, c T3, d T4, e T5) Tuple5[T1, T2, T3, T4, T5] {
	return Tuple5[T1, T2, T3, T4, T5]{a, b, c, d, e}
}

// NewTuple6 returns a Tuple6.
func NewTuple6[T1, T2, T3, T4, T5, T6 any](a T1, b T2, c T3, d T4, e T5, f T6) Tuple6[T1, T2, T3, T4, T5, T6] {
	return Tuple6[T1, T2, T3, T4, T5, T6]{a, b, c, d, e, f}
}

// NewTuple7 returns a Tuple7.
func NewTuple7[T1, T2, T3, T4, T5, T6, T7 any](a T1, b T2, c T3, d T4, e T5, f T6, g T7) Tuple7[T1, T2, T3, T4, T5, T6, T7] {
	return Tuple7[T1, T2, T3, T4, T5, T6, T7]{a, b, c, d, e, f, g}
}

type itemIndexError struct{ i, n int }

func (e itemIndexError) Error() string {
	return "tuple item index " + strconv.Itoa(e.i) + " out of range [0, " + strconv.Itoa(e.n) + ")"
}

func (Tuple0) Arity() int { return 0 }

func (Tuple0) Item(i int) any { panic(itemIndexError{i, 0}) }

func (Tuple2[T1, T2]) Arity() int { return 2 }

func (t Tuple2[T1, T2]) Item(i int) any {
	switch i {
	case 0:
		return t.Item1
	case 1:
		return t.Item2
	}
	panic(itemIndexError{i, 2})
}

func (Tuple3[T1, T2, T3]) Arity() int { return 3 }

func (t Tuple3[T1, T2, T3]) Item(i int) any {
	switch i {
	case 0:
		return t.Item1
	case 1:
		return t.Item2
	case 2:
		return t.Item3
	}
	panic(itemIndexError{i, 3})
}

func (Tuple4[T1, T2, T3, T4]) Arity() int { return 4 }

func (t Tuple4[T1, T2, T3, T4]) Item(i int) any {
	switch i {
	case 0:
		return t.Item1
	case 1:
		return t.Item2
	case 2:
		return t.Item3
	case 3:
		return t.Item4
	}
	panic(itemIndexError{i, 4})
}

func (Tuple5[T1, T2, T3, T4, T5]) Arity() int { return 5 }

func (t Tuple5[T1, T2, T3, T4, T5]) Item(i int) any {
	switch i {
	case 0:
		return t.Item1
	case 1:
		return t.Item2
	case 2:
		return t.Item3
	case 3:
		return t.Item4
	case 4:
		return t.Item5
	}
	panic(itemIndexError{i, 5})
}

func (Tuple6[T1, T2, T3, T4, T5, T6]) Arity() int { return 6 }

func (t Tuple6[T1, T2, T3, T4, T5, T6]) Item(i int) any {
	switch i {
	case 0:
		return t.Item1
	case 1:
		return t.Item2
	case 2:
		return t.Item3
	case 3:
		return t.Item4
	case 4:
		return t.Item5
	case 5:
		return t.Item6
	}
	panic(itemIndexError{i, 6})
}

func (Tuple7[T1, T2, T3, T4, T5, T6, T7]) Arity() int { return 7 }

func (t Tuple7[T1, T2, T3, T4, T5, T6, T7]) Item(i int) any {
	switch i {
	case 0:
		return t.Item1
	case 1:
		return t.Item2
	case 2:
		return t.Item3
	case 3:
		return t.Item4
	case 4:
		return t.Item5
	case 5:
		return t.Item6
	case 6:
		return t.Item7
	}
	panic(itemIndexError{i, 7})
}

// Items returns the elements of a tuple as a slice.
func Items(t Tupler) []any {
	items := make([]any, t.Arity())
	for i := range items {
		items[i] = t.Item(i)
	}
	return items
}
