package repr

import (
	"reflect"

	"github.com/xiaq/persistent/hashmap"
	"github.com/xiaq/persistent/vector"
)

// Char is a single character. Go's rune is an alias of int32, so characters
// need their own type to be told apart from numbers.
type Char rune

// String returns the character itself.
func (c Char) String() string { return string(rune(c)) }

// Texter wraps the Text method. It is implemented by string wrappers that
// want to be treated like strings.
type Texter interface {
	// Text returns the text the wrapper displays as.
	Text() string
}

// Tupler is implemented by fixed-arity product types whose elements may have
// different types.
type Tupler interface {
	// Arity returns the number of elements.
	Arity() int
	// Item returns the i-th element. It panics if i is out of range.
	Item(i int) any
}

// Iterator wraps the Iterate method.
type Iterator interface {
	// Iterate calls the passed function with each value within the receiver.
	// The iteration is aborted if the function returns false.
	Iterate(func(v any) bool)
}

// Shape is the category a value falls into for the purpose of rendering.
type Shape int

// Possible values of Shape, in the order in which they are tested.
const (
	// Absent is nil, including typed nil pointers, functions, channels and
	// interfaces.
	Absent Shape = iota
	// Character is a Char.
	Character
	// TextLike is a string, a type whose underlying type is string, or a
	// Texter.
	TextLike
	// HeteroTuple is a Tupler.
	HeteroTuple
	// MultiArray is an array of arrays, of rank 2 or higher.
	MultiArray
	// Sequence is any other iterable value, including slices, 1-D arrays,
	// maps, persistent vectors and maps, Iterator implementations and
	// range-over-func iterators.
	Sequence
	// Scalar is everything else.
	Scalar
)

var shapeNames = [...]string{
	Absent:      "absent",
	Character:   "character",
	TextLike:    "text",
	HeteroTuple: "tuple",
	MultiArray:  "array",
	Sequence:    "sequence",
	Scalar:      "scalar",
}

func (s Shape) String() string {
	if 0 <= s && int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// Classify returns the Shape of v.
func Classify(v any) Shape {
	if isAbsent(v) {
		return Absent
	}
	switch v.(type) {
	case Char:
		return Character
	case string, Texter:
		return TextLike
	case Tupler:
		return HeteroTuple
	case vector.Vector, hashmap.Map, Iterator:
		return Sequence
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.String:
		return TextLike
	case reflect.Array:
		if t.Elem().Kind() == reflect.Array {
			return MultiArray
		}
		return Sequence
	case reflect.Slice, reflect.Map:
		return Sequence
	case reflect.Func:
		if t.CanSeq() || t.CanSeq2() {
			return Sequence
		}
	}
	return Scalar
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Rank returns the number of dimensions of v: 0 for values that are not
// arrays, 1 for slices and arrays of non-arrays, and the number of nested
// array levels for arrays of arrays.
func Rank(v any) int {
	if v == nil {
		return 0
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Slice:
		return 1
	case reflect.Array:
		rank, _ := arrayRank(t)
		return rank
	}
	return 0
}

// arrayRank returns the rank of an array type and the element type after all
// array levels have been removed.
func arrayRank(t reflect.Type) (int, reflect.Type) {
	rank := 0
	for t.Kind() == reflect.Array {
		rank++
		t = t.Elem()
	}
	return rank, t
}
