package repr

import "strings"

// seqBuilder builds the representation of sequence-like values, one element
// at a time.
//
// At the top level the output is prefixed with the type name and padded
// inside the braces, like "int[] { 1, 2 }"; an empty top-level sequence is
// "int[] { }", never "{  }". Nested sequences have no prefix and no padding,
// like "{1, 2}" and "{}".
type seqBuilder struct {
	top bool
	n   int
	buf strings.Builder
}

func newSeqBuilder(mode Mode, typeName string) *seqBuilder {
	b := &seqBuilder{top: mode == TopLevel}
	if b.top {
		b.buf.WriteString(typeName)
		b.buf.WriteString(" { ")
	} else {
		b.buf.WriteByte('{')
	}
	return b
}

// WriteElem writes a new element.
func (b *seqBuilder) WriteElem(v string) {
	if b.n > 0 {
		b.buf.WriteString(", ")
	}
	b.buf.WriteString(v)
	b.n++
}

// String returns the representation that has been built. After it is called,
// the seqBuilder may no longer be used.
func (b *seqBuilder) String() string {
	if b.top && b.n > 0 {
		b.buf.WriteString(" }")
	} else {
		b.buf.WriteByte('}')
	}
	return b.buf.String()
}

// tupleBuilder is like seqBuilder, but uses parentheses and never pads.
type tupleBuilder struct {
	n   int
	buf strings.Builder
}

func newTupleBuilder(mode Mode, typeName string) *tupleBuilder {
	b := &tupleBuilder{}
	if mode == TopLevel {
		b.buf.WriteString(typeName)
		b.buf.WriteByte(' ')
	}
	b.buf.WriteByte('(')
	return b
}

func (b *tupleBuilder) WriteElem(v string) {
	if b.n > 0 {
		b.buf.WriteString(", ")
	}
	b.buf.WriteString(v)
	b.n++
}

func (b *tupleBuilder) String() string {
	b.buf.WriteByte(')')
	return b.buf.String()
}
