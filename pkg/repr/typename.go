package repr

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/xiaq/persistent/hashmap"
	"github.com/xiaq/persistent/vector"
)

func typeOf[T any]() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

var (
	emptyStructType = typeOf[struct{}]()
	tuplerType      = typeOf[Tupler]()
	vectorType      = typeOf[vector.Vector]()
	hashmapType     = typeOf[hashmap.Map]()
)

// Short names of builtin types. The table must not be modified.
var typeAliases = map[reflect.Type]string{
	typeOf[bool]():       "bool",
	typeOf[string]():     "string",
	typeOf[int]():        "int",
	typeOf[int8]():       "int8",
	typeOf[int16]():      "int16",
	typeOf[int32]():      "int32",
	typeOf[int64]():      "int64",
	typeOf[uint]():       "uint",
	typeOf[uint8]():      "uint8",
	typeOf[uint16]():     "uint16",
	typeOf[uint32]():     "uint32",
	typeOf[uint64]():     "uint64",
	typeOf[uintptr]():    "uintptr",
	typeOf[float32]():    "float32",
	typeOf[float64]():    "float64",
	typeOf[complex64]():  "complex64",
	typeOf[complex128](): "complex128",
	typeOf[any]():        "any",
	typeOf[error]():      "error",
	typeOf[Char]():       "char",
}

// FormatTypeName returns a short display name for a type:
//
//   - "?" for a nil type;
//   - a fixed short name for builtin types, such as "int" and "any";
//   - "T?" for a pointer to T, pointers being Go's nullable types;
//   - "T[]" for slices and arrays of T, with one comma per extra dimension
//     for arrays of arrays, like "int[,]" for [2][3]int;
//   - "Dictionary<K, V>" for maps, "HashSet<K>" for map[K]struct{},
//     "List<any>" for persistent vectors, "Channel<T>" for channels and
//     "Tuple<T1, T2>" for tuple types;
//   - "Name<A, B>" for other instances of generic types, with package
//     qualifiers removed from the type arguments;
//   - the bare name for other named types, and the Go spelling for unnamed
//     ones.
func FormatTypeName(t reflect.Type) string {
	if t == nil {
		return "?"
	}
	if alias, ok := typeAliases[t]; ok {
		return alias
	}
	switch {
	case t.Implements(vectorType):
		return "List<any>"
	case t.Implements(hashmapType):
		return "Dictionary<any, any>"
	case t.Kind() == reflect.Struct && t.Implements(tuplerType):
		return tupleTypeName(t)
	}

	switch t.Kind() {
	case reflect.Pointer:
		return FormatTypeName(t.Elem()) + "?"
	case reflect.Array:
		rank, elem := arrayRank(t)
		return FormatTypeName(elem) + "[" + strings.Repeat(",", rank-1) + "]"
	case reflect.Slice:
		return FormatTypeName(t.Elem()) + "[]"
	case reflect.Map:
		if t.Elem() == emptyStructType {
			return "HashSet<" + FormatTypeName(t.Key()) + ">"
		}
		return "Dictionary<" + FormatTypeName(t.Key()) + ", " + FormatTypeName(t.Elem()) + ">"
	case reflect.Chan:
		return "Channel<" + FormatTypeName(t.Elem()) + ">"
	}

	name := t.Name()
	if name == "" {
		return shortenTypeString(t.String())
	}
	return shortenTypeString(name)
}

// TypeNameOf returns the FormatTypeName of the dynamic type of v, or NilRepr
// if v is nil.
func TypeNameOf(v any) string {
	if v == nil {
		return NilRepr
	}
	return FormatTypeName(reflect.TypeOf(v))
}

func tupleTypeName(t reflect.Type) string {
	var sb strings.Builder
	sb.WriteString("Tuple<")
	n := 0
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(FormatTypeName(f.Type))
		n++
	}
	sb.WriteByte('>')
	return sb.String()
}

// Matches a package path and name qualifying an identifier, like
// "example.com/pkg." in "example.com/pkg.Type".
var qualifierPattern = regexp.MustCompile(`(?:[\w.-]+/)*(?:[\w-]+\.)+(\w)`)

// shortenTypeString rewrites a type as spelled by the reflect package. Package
// qualifiers are removed, "interface {}" becomes "any", and instances of
// generic types are written with angle brackets.
func shortenTypeString(s string) string {
	s = strings.ReplaceAll(s, "interface {}", "any")
	s = qualifierPattern.ReplaceAllString(s, "$1")
	return angleGenerics(s)
}

// angleGenerics turns "Name[A,B]" into "Name<A, B>", recursing into the type
// arguments. Other types are returned unchanged.
func angleGenerics(s string) string {
	i := strings.IndexByte(s, '[')
	if i <= 0 || !strings.HasSuffix(s, "]") || !isIdent(s[:i]) || s[:i] == "map" {
		return s
	}
	args := splitTypeArgs(s[i+1 : len(s)-1])
	for j, arg := range args {
		args[j] = angleGenerics(arg)
	}
	return s[:i] + "<" + strings.Join(args, ", ") + ">"
}

// splitTypeArgs splits a type argument list on the commas that are not inside
// brackets or parentheses.
func splitTypeArgs(s string) []string {
	var args []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(', '{':
			depth++
		case ']', ')', '}':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(args, strings.TrimSpace(s[start:]))
}

func isIdent(s string) bool {
	for i, r := range s {
		if !(r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || i > 0 && '0' <= r && r <= '9') {
			return false
		}
	}
	return s != ""
}
