// Package repr renders arbitrary Go values as human-readable debug strings.
//
// A value is rendered either at the top level, as it would appear when
// printed on its own, or nested, as it would appear inside another value.
// The two modes differ in how strings and characters are written (raw at the
// top level, as quoted literals when nested) and in whether sequences and
// tuples are prefixed with their type name (only at the top level):
//
//	RenderTopLevel([]string{"a", "b"}) // string[] { "a", "b" }
//	RenderNested([]string{"a", "b"})   // {"a", "b"}
//	RenderTopLevel("a\tb")             // a	b
//	RenderNested("a\tb")               // "a\tb"
//
// The output is meant for people; it cannot be parsed back into a value.
package repr

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/xiaq/persistent/hashmap"
	"github.com/xiaq/persistent/vector"
)

// NilRepr is the representation of an absent value, at any depth.
const NilRepr = "nil"

// MaxDepth is the nesting depth beyond which values are rendered as "...".
const MaxDepth = 256

const (
	cycleRepr    = "{...}"
	tooDeepRepr  = "..."
	scalarNilOut = "<nil>"
)

// Mode selects how a value is rendered.
type Mode int

// Possible values for Mode.
const (
	// TopLevel is used for the outermost value.
	TopLevel Mode = iota
	// Nested is used for values inside other values.
	Nested
)

func (m Mode) String() string {
	if m == TopLevel {
		return "top-level"
	}
	return "nested"
}

// RenderTopLevel returns the representation of v as the outermost value.
func RenderTopLevel(v any) string { return Render(v, TopLevel) }

// RenderNested returns the representation of v as an element of another
// value.
func RenderNested(v any) string { return Render(v, Nested) }

// Render returns the representation of v in the given mode.
func Render(v any, mode Mode) string {
	var p printer
	return p.render(v, mode, 0)
}

// printer holds the state of one Render call.
type printer struct {
	// Containers on the path from the root to the value being rendered.
	visiting map[visitKey]struct{}
}

type visitKey struct {
	ptr uintptr
	typ reflect.Type
	len int
}

func (p *printer) render(v any, mode Mode, depth int) string {
	if depth > MaxDepth {
		return tooDeepRepr
	}
	switch Classify(v) {
	case Absent:
		return NilRepr
	case Character:
		c := v.(Char)
		if mode == Nested {
			return FormatCharLiteral(rune(c))
		}
		return c.String()
	case TextLike:
		s := rawText(v)
		if mode == Nested {
			return FormatStringLiteral(s)
		}
		return s
	case HeteroTuple:
		return p.tuple(v.(Tupler), mode, depth)
	case MultiArray:
		rv := reflect.ValueOf(v)
		typeName := ""
		if mode == TopLevel {
			typeName = FormatTypeName(rv.Type())
		}
		return p.axis(rv, mode, typeName, depth)
	case Sequence:
		return p.sequence(v, mode, depth)
	default:
		return scalarText(v)
	}
}

func rawText(v any) string {
	if t, ok := v.(Texter); ok {
		return t.Text()
	}
	return reflect.ValueOf(v).String()
}

func scalarText(v any) string {
	if fmtLoops(reflect.ValueOf(v)) {
		return cycleRepr
	}
	s := fmt.Sprint(v)
	if s == scalarNilOut {
		return NilRepr
	}
	return s
}

var (
	stringerType  = typeOf[fmt.Stringer]()
	errorType     = typeOf[error]()
	formatterType = typeOf[fmt.Formatter]()
)

// fmtLoops reports whether formatting v with %v would never finish, because a
// map or slice that fmt walks into contains itself.
func fmtLoops(v reflect.Value) bool {
	return (&loopFinder{}).find(v, 0)
}

// loopFinder walks a value the way fmt does: values with String, Error or
// Format methods are not entered, and pointers are only followed at the top.
type loopFinder struct {
	path map[visitKey]struct{}
}

func (f *loopFinder) find(v reflect.Value, depth int) bool {
	if !v.IsValid() || depth > MaxDepth {
		return false
	}
	if v.CanInterface() {
		t := v.Type()
		if t.Implements(stringerType) || t.Implements(errorType) || t.Implements(formatterType) {
			return false
		}
	}
	switch v.Kind() {
	case reflect.Pointer:
		if depth > 0 || v.IsNil() {
			return false
		}
		return f.find(v.Elem(), depth+1)
	case reflect.Interface:
		return f.find(v.Elem(), depth+1)
	case reflect.Struct:
		for i := range v.NumField() {
			if f.find(v.Field(i), depth+1) {
				return true
			}
		}
	case reflect.Array:
		for i := range v.Len() {
			if f.find(v.Index(i), depth+1) {
				return true
			}
		}
	case reflect.Slice, reflect.Map:
		if v.IsNil() {
			return false
		}
		key := visitKey{v.Pointer(), v.Type(), 0}
		if v.Kind() == reflect.Slice {
			key.len = v.Len()
		}
		if _, seen := f.path[key]; seen {
			return true
		}
		if f.path == nil {
			f.path = make(map[visitKey]struct{})
		}
		f.path[key] = struct{}{}
		defer delete(f.path, key)
		if v.Kind() == reflect.Slice {
			for i := range v.Len() {
				if f.find(v.Index(i), depth+1) {
					return true
				}
			}
		} else {
			for it := v.MapRange(); it.Next(); {
				if f.find(it.Key(), depth+1) || f.find(it.Value(), depth+1) {
					return true
				}
			}
		}
	}
	return false
}

func (p *printer) tuple(t Tupler, mode Mode, depth int) string {
	typeName := ""
	if mode == TopLevel {
		typeName = TypeNameOf(t)
	}
	b := newTupleBuilder(mode, typeName)
	for i := 0; i < t.Arity(); i++ {
		b.WriteElem(p.render(t.Item(i), Nested, depth+1))
	}
	return b.String()
}

// axis renders one axis of a multi-dimensional array. Only the outermost axis
// of a top-level array carries the type name; all inner axes are nested.
func (p *printer) axis(rv reflect.Value, mode Mode, typeName string, depth int) string {
	b := newSeqBuilder(mode, typeName)
	last := rv.Type().Elem().Kind() != reflect.Array
	for i := 0; i < rv.Len(); i++ {
		if last {
			b.WriteElem(p.render(rv.Index(i).Interface(), Nested, depth+1))
		} else {
			b.WriteElem(p.axis(rv.Index(i), Nested, "", depth+1))
		}
	}
	return b.String()
}

func (p *printer) sequence(v any, mode Mode, depth int) string {
	key, ok := p.enter(v)
	if !ok {
		return cycleRepr
	}
	defer p.leave(key)

	typeName := ""
	if mode == TopLevel {
		typeName = TypeNameOf(v)
	}
	b := newSeqBuilder(mode, typeName)
	elem := func(e any) { b.WriteElem(p.render(e, Nested, depth+1)) }
	entry := func(k, v any) { b.WriteElem(p.entry(k, v, depth+1)) }

	switch v := v.(type) {
	case vector.Vector:
		for it := v.Iterator(); it.HasElem(); it.Next() {
			elem(it.Elem())
		}
	case hashmap.Map:
		for it := v.Iterator(); it.HasElem(); it.Next() {
			entry(it.Elem())
		}
	case Iterator:
		v.Iterate(func(e any) bool {
			elem(e)
			return true
		})
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				elem(rv.Index(i).Interface())
			}
		case reflect.Map:
			set := rv.Type().Elem() == emptyStructType
			for _, e := range sortedEntries(rv) {
				if set {
					elem(e.key.Interface())
				} else {
					entry(e.key.Interface(), e.value.Interface())
				}
			}
		case reflect.Func:
			if rv.Type().CanSeq2() {
				for k, v := range rv.Seq2() {
					entry(k.Interface(), v.Interface())
				}
			} else {
				for e := range rv.Seq() {
					elem(e.Interface())
				}
			}
		}
	}
	return b.String()
}

// entry renders a key-value pair of a map as "[k, v]".
func (p *printer) entry(k, v any, depth int) string {
	return "[" + p.render(k, Nested, depth+1) + ", " + p.render(v, Nested, depth+1) + "]"
}

// enter records v as being rendered. It returns false if v is already on the
// current path, which means that v contains itself.
func (p *printer) enter(v any) (visitKey, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer:
	default:
		return visitKey{}, true
	}
	key := visitKey{rv.Pointer(), rv.Type(), 0}
	if key.ptr == 0 {
		return visitKey{}, true
	}
	if rv.Kind() == reflect.Slice {
		// Subslices share the pointer of the array they start at.
		key.len = rv.Len()
	}
	if _, seen := p.visiting[key]; seen {
		return key, false
	}
	if p.visiting == nil {
		p.visiting = make(map[visitKey]struct{})
	}
	p.visiting[key] = struct{}{}
	return key, true
}

func (p *printer) leave(key visitKey) {
	if key.ptr != 0 {
		delete(p.visiting, key)
	}
}

type mapEntry struct{ key, value reflect.Value }

// sortedEntries returns the entries of a map in a deterministic order of
// their keys: numbers by value, strings lexically, false before true, and
// everything else by its nested representation. Entries are read with a map
// iterator since keys such as NaN cannot be looked up.
func sortedEntries(rv reflect.Value) []mapEntry {
	entries := make([]mapEntry, 0, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		entries = append(entries, mapEntry{it.Key(), it.Value()})
	}
	slices.SortStableFunc(entries, func(a, b mapEntry) int {
		return compareKeys(a.key, b.key)
	})
	return entries
}

func compareKeys(a, b reflect.Value) int {
	a, b = unwrapInterface(a), unwrapInterface(b)
	if !a.IsValid() || !b.IsValid() {
		return cmp.Compare(validRank(a), validRank(b))
	}
	if a.Kind() != b.Kind() {
		return cmp.Compare(a.Kind(), b.Kind())
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.String:
		return strings.Compare(a.String(), b.String())
	case reflect.Bool:
		return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool()))
	}
	return strings.Compare(RenderNested(a.Interface()), RenderNested(b.Interface()))
}

func unwrapInterface(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	return v
}

func validRank(v reflect.Value) int {
	if v.IsValid() {
		return 1
	}
	return 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
