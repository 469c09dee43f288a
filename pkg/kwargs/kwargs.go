// Package kwargs implements an immutable, ordered container of keyword
// arguments.
//
// Kwargs is typically passed as the last argument to functions that take
// options, such as [console.Print]:
//
//	console.Print("a", "b", kwargs.New(kwargs.P("sep", ", ")))
package kwargs

import (
	"errors"
	"iter"
	"strings"

	"github.com/xiaq/persistent/hash"
	"github.com/xiaq/persistent/hashmap"
	"github.com/xiaq/persistent/vector"

	"src.echolib.dev/pkg/repr"
	"src.echolib.dev/pkg/str"
)

// ErrNullValue is returned by [Nullable.Value] when the value is null.
var ErrNullValue = errors.New("keyword argument must have a value")

// Pair is a single keyword argument.
type Pair struct {
	Key   string
	Value any
}

// P returns a Pair.
func P(key string, value any) Pair { return Pair{key, value} }

// Kwargs is an immutable ordered collection of keyword arguments. Keys are
// unique; a nil *Kwargs is empty.
type Kwargs struct {
	// Pairs in insertion order.
	pairs vector.Vector
	// Key to index in pairs.
	index hashmap.Map
}

var emptyIndex = hashmap.New(equalKey, hashKey)

func equalKey(k1, k2 any) bool { return k1 == k2 }

func hashKey(k any) uint32 { return hash.String(k.(string)) }

// New returns a Kwargs with the given pairs. A later pair replaces the value of
// an earlier one with the same key, keeping the earlier position.
func New(pairs ...Pair) *Kwargs {
	kw := &Kwargs{vector.Empty, emptyIndex}
	for _, p := range pairs {
		kw = kw.With(p.Key, p.Value)
	}
	return kw
}

// With returns a Kwargs with key associated with value. If key already
// exists, its value is replaced in place; otherwise the pair is appended.
func (kw *Kwargs) With(key string, value any) *Kwargs {
	if kw == nil {
		kw = New()
	}
	if i, ok := kw.index.Index(key); ok {
		return &Kwargs{kw.pairs.Assoc(i.(int), Pair{key, value}), kw.index}
	}
	return &Kwargs{
		kw.pairs.Cons(Pair{key, value}),
		kw.index.Assoc(key, kw.pairs.Len()),
	}
}

// Len returns the number of pairs.
func (kw *Kwargs) Len() int {
	if kw == nil {
		return 0
	}
	return kw.pairs.Len()
}

// Lookup returns the value associated with key, and whether it exists.
func (kw *Kwargs) Lookup(key string) (any, bool) {
	if kw == nil {
		return nil, false
	}
	i, ok := kw.index.Index(key)
	if !ok {
		return nil, false
	}
	p, _ := kw.pairs.Index(i.(int))
	return p.(Pair).Value, true
}

// Keys returns the keys in insertion order.
func (kw *Kwargs) Keys() []string {
	keys := make([]string, 0, kw.Len())
	for k := range kw.All() {
		keys = append(keys, k)
	}
	return keys
}

// All returns an iterator over the pairs in insertion order.
func (kw *Kwargs) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if kw == nil {
			return
		}
		for it := kw.pairs.Iterator(); it.HasElem(); it.Next() {
			p := it.Elem().(Pair)
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// String returns a dump of all the pairs, each written as the type of the
// value, the key and the nested representation of the value.
func (kw *Kwargs) String() string {
	n := kw.Len()
	if n == 0 {
		return "Kwargs[]"
	}
	var sb strings.Builder
	i := 0
	for k, v := range kw.All() {
		if i > 0 {
			sb.WriteString(", \n\t")
		}
		writePair(&sb, k, v)
		i++
	}
	if n == 1 {
		return "Kwargs[" + sb.String() + "]"
	}
	return "Kwargs\n[\n\t" + sb.String() + "\n]"
}

func writePair(sb *strings.Builder, key string, value any) {
	if value == nil {
		sb.WriteString("any?")
	} else {
		sb.WriteString(repr.TypeNameOf(value))
	}
	sb.WriteByte(' ')
	if str.IsValidIdentifier(key) {
		sb.WriteString(key)
	} else {
		sb.WriteString("(" + repr.FormatStringLiteral(key) + ")")
	}
	sb.WriteString(" = ")
	sb.WriteString(repr.RenderNested(value))
}

// Get returns the value associated with key if it exists and has type T.
func Get[T any](kw *Kwargs, key string) (T, bool) {
	v, ok := kw.Lookup(key)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Nullable is a keyword argument value that may be null.
type Nullable[T any] struct {
	value T
	null  bool
}

// IsNull reports whether the value is null.
func (n Nullable[T]) IsNull() bool { return n.null }

// Value returns the value, or ErrNullValue if it is null.
func (n Nullable[T]) Value() (T, error) {
	if n.null {
		var zero T
		return zero, ErrNullValue
	}
	return n.value, nil
}

// GetNullable is like Get, but also accepts a nil value, which results in a
// null Nullable.
func GetNullable[T any](kw *Kwargs, key string) (Nullable[T], bool) {
	v, ok := kw.Lookup(key)
	if !ok {
		return Nullable[T]{}, false
	}
	if v == nil {
		return Nullable[T]{null: true}, true
	}
	if t, ok := v.(T); ok {
		return Nullable[T]{value: t}, true
	}
	return Nullable[T]{}, false
}
