// Package str provides string wrappers that carry both their raw text and
// the text they display as.
//
// There are two variants. A plain String displays as its raw text. A literal
// String displays as the quoted literal of its raw text, computed once when
// it is constructed:
//
//	New("a\tb").Text()        // a	b
//	NewLiteral("a\tb").Text() // "a\tb"
//
// Both implement [repr.Texter], so the representation engine treats them like
// strings, using the display text.
package str

import (
	"errors"
	"fmt"
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"

	"src.echolib.dev/pkg/repr"
)

// ErrNilArgument is returned when nil is passed where a value is required.
var ErrNilArgument = errors.New("argument must not be nil")

// String is an immutable string wrapper. The zero value is an empty plain
// String.
type String struct {
	display string
	raw     string
	literal bool
}

var _ repr.Texter = String{}

// Empty is the empty literal String.
var Empty = NewLiteral("")

// New returns a plain String, whose display text is s itself.
func New(s string) String {
	return String{display: s, raw: s}
}

// NewLiteral returns a literal String, whose display text is the quoted
// literal of s.
func NewLiteral(s string) String {
	return String{display: repr.FormatStringLiteral(s), raw: s, literal: true}
}

// Literal returns a literal String built from the display text of s. If s
// is already literal, it is returned unchanged.
func Literal(s String) String {
	if s.literal {
		return s
	}
	return NewLiteral(s.display)
}

// FromValue returns a literal String of the default textual form of v, as
// produced by fmt.Sprint. It returns an error wrapping ErrNilArgument if v is
// nil.
func FromValue(v any) (String, error) {
	if v == nil {
		return String{}, fmt.Errorf("str.FromValue: %w", ErrNilArgument)
	}
	switch v := v.(type) {
	case String:
		return Literal(v), nil
	case string:
		return NewLiteral(v), nil
	}
	return NewLiteral(fmt.Sprint(v)), nil
}

// Text returns the display text.
func (s String) Text() string { return s.display }

// String returns the display text.
func (s String) String() string { return s.display }

// Raw returns the raw text.
func (s String) Raw() string { return s.raw }

// IsLiteral reports whether s is a literal String.
func (s String) IsLiteral() bool { return s.literal }

// Len returns the number of characters in the raw text.
func (s String) Len() int { return utf8.RuneCountInString(s.raw) }

// At returns the i-th character of the raw text. It panics if i is out of
// range; negative indices count from the end.
func (s String) At(i int) repr.Char {
	runes := []rune(s.raw)
	if i < 0 {
		i += len(runes)
	}
	return repr.Char(runes[i])
}

// Runes returns an iterator over the characters of the raw text.
func (s String) Runes() iter.Seq[repr.Char] {
	return func(yield func(repr.Char) bool) {
		for _, r := range s.raw {
			if !yield(repr.Char(r)) {
				return
			}
		}
	}
}

// Equal reports whether s and t have the same raw text.
func (s String) Equal(t String) bool { return s.raw == t.raw }

// EqualString reports whether the raw text of s is t.
func (s String) EqualString(t string) bool { return s.raw == t }

// EqualFold is like Equal, but uses Unicode case-folding.
func (s String) EqualFold(t String) bool { return strings.EqualFold(s.raw, t.raw) }

// Compare compares the raw text of s and t lexically.
func (s String) Compare(t String) int { return strings.Compare(s.raw, t.raw) }

// CompareString compares the raw text of s with t lexically.
func (s String) CompareString(t string) int { return strings.Compare(s.raw, t) }

// Concat returns the concatenation of the raw texts of s and others. The
// result is literal if s or any of others is literal.
func (s String) Concat(others ...String) String {
	var sb strings.Builder
	sb.WriteString(s.raw)
	literal := s.literal
	for _, o := range others {
		sb.WriteString(o.raw)
		literal = literal || o.literal
	}
	if literal {
		return NewLiteral(sb.String())
	}
	return New(sb.String())
}

// ConcatString is like Concat, but takes plain strings.
func (s String) ConcatString(others ...string) String {
	ss := make([]String, len(others))
	for i, o := range others {
		ss[i] = New(o)
	}
	return s.Concat(ss...)
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// IsValidIdentifier reports whether s starts with an ASCII letter and
// contains only ASCII letters and digits.
func IsValidIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}
