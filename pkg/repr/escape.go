package repr

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// EscapeTable maps the characters that have a two-character escape sequence to
// that sequence. It must not be modified.
var EscapeTable = map[rune]string{
	'\a': `\a`,
	'\b': `\b`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'\v': `\v`,
	'\\': `\\`,
	'\'': `\'`,
	'"':  `\"`,
	0:    `\0`,
}

// The containment set is built from the keys of EscapeTable so that the two
// can never disagree.
var escapeChars = func() map[rune]struct{} {
	m := make(map[rune]struct{}, len(EscapeTable))
	for r := range EscapeTable {
		m[r] = struct{}{}
	}
	return m
}()

// IsEscapeChar reports whether r has an entry in EscapeTable.
func IsEscapeChar(r rune) bool {
	_, ok := escapeChars[r]
	return ok
}

func isPrintable(r rune) bool { return 0x20 <= r && r <= 0x7e }

// rtohex writes the w lowest hex digits of r in uppercase.
func rtohex(r rune, w int) []byte {
	bytes := make([]byte, w)
	for i := w - 1; i >= 0; i-- {
		d := byte(r % 16)
		r /= 16
		if d <= 9 {
			bytes[i] = '0' + d
		} else {
			bytes[i] = 'A' + d - 10
		}
	}
	return bytes
}

func writeEscaped(sb *strings.Builder, r rune) {
	if r < 0 || r > utf8.MaxRune {
		r = unicode.ReplacementChar
	}
	if IsEscapeChar(r) {
		sb.WriteString(EscapeTable[r])
		return
	}
	if isPrintable(r) {
		sb.WriteRune(r)
		return
	}
	if r > 0xffff {
		// Outside the BMP; use a surrogate pair so that every \u escape has
		// exactly four digits.
		r1, r2 := utf16.EncodeRune(r)
		writeUnicodeEscape(sb, r1)
		writeUnicodeEscape(sb, r2)
		return
	}
	writeUnicodeEscape(sb, r)
}

func writeUnicodeEscape(sb *strings.Builder, r rune) {
	sb.WriteString(`\u`)
	sb.Write(rtohex(r, 4))
}

// EscapeChar returns the escaped form of a single character, without quotes.
// Characters in EscapeTable use their table entry; other characters outside
// the printable ASCII range use the form \uXXXX; everything else is returned
// as is.
func EscapeChar(r rune) string {
	var sb strings.Builder
	writeEscaped(&sb, r)
	return sb.String()
}

// FormatCharLiteral returns the character literal of r, such as 'a' or '\n'.
func FormatCharLiteral(r rune) string {
	var sb strings.Builder
	sb.WriteByte('\'')
	writeEscaped(&sb, r)
	sb.WriteByte('\'')
	return sb.String()
}

// FormatStringLiteral returns the double-quoted literal of s, with each
// character escaped as by EscapeChar. Invalid UTF-8 sequences are treated as
// U+FFFD.
func FormatStringLiteral(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		writeEscaped(&sb, r)
	}
	sb.WriteByte('"')
	return sb.String()
}

// CharRepr returns the character literal of *r, or NilRepr if r is nil.
func CharRepr(r *rune) string {
	if r == nil {
		return NilRepr
	}
	return FormatCharLiteral(*r)
}
