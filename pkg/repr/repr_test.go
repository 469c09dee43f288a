package repr

import (
	"errors"
	"iter"
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/xiaq/persistent/vector"
	"src.echolib.dev/pkg/tt"
)

type text string

type wrapper struct{ s string }

func (w wrapper) Text() string { return w.s }

type counter int

func (c counter) Iterate(f func(any) bool) {
	for i := 0; i < int(c); i++ {
		if !f(i) {
			return
		}
	}
}

type point struct{ X, Y int }

type stringer struct{}

func (stringer) String() string { return "<stringer>" }

type nilStringer struct{}

func (nilStringer) String() string { return "<nil>" }

// tupler with a user-defined arity.
type triple [3]any

func (t triple) Arity() int     { return len(t) }
func (t triple) Item(i int) any { return t[i] }

func TestRenderTopLevel(t *testing.T) {
	tt.Test(t, RenderTopLevel,
		// Absent.
		Args(nil).Rets("nil"),
		Args((*int)(nil)).Rets("nil"),
		Args((func())(nil)).Rets("nil"),
		Args((chan int)(nil)).Rets("nil"),

		// Characters are written as is at the top level.
		Args(Char('a')).Rets("a"),
		Args(Char('\n')).Rets("\n"),

		// Text is written raw.
		Args("a\tb").Rets("a\tb"),
		Args(text("named")).Rets("named"),
		Args(wrapper{`"quoted"`}).Rets(`"quoted"`),

		// Tuples.
		Args(NewTuple2(1, "x")).Rets(`Tuple<int, string> (1, "x")`),
		Args(Tuple0{}).Rets(`Tuple<> ()`),
		Args(NewTuple3(Char('c'), 1.5, []int{1})).Rets(`Tuple<char, float64, int[]> ('c', 1.5, {1})`),

		// Multi-dimensional arrays.
		Args([2][2]int{{1, 2}, {3, 4}}).Rets("int[,] { {1, 2}, {3, 4} }"),
		Args([2][0]int{}).Rets("int[,] { {}, {} }"),
		Args([0][2]int{}).Rets("int[,] { }"),
		Args([1][2][2]string{{{"a", "b"}, {"c", "d"}}}).
			Rets(`string[,,] { {{"a", "b"}, {"c", "d"}} }`),

		// Sequences.
		Args([]int{1, 2, 3}).Rets("int[] { 1, 2, 3 }"),
		Args([]int{}).Rets("int[] { }"),
		Args([]int(nil)).Rets("int[] { }"),
		Args([3]string{"a", "b", "c"}).Rets(`string[] { "a", "b", "c" }`),
		Args([][]int{{1}, {}}).Rets("int[][] { {1}, {} }"),
		Args([]any{nil, "x", Char('y')}).Rets(`any[] { nil, "x", 'y' }`),
		Args(map[string]int{"b": 2, "a": 1}).Rets(`Dictionary<string, int> { ["a", 1], ["b", 2] }`),
		Args(map[int]struct{}{3: {}, 1: {}, 2: {}}).Rets("HashSet<int> { 1, 2, 3 }"),
		Args(counter(3)).Rets("counter { 0, 1, 2 }"),

		// Scalars.
		Args(42).Rets("42"),
		Args(1.5).Rets("1.5"),
		Args(true).Rets("true"),
		Args(point{1, 2}).Rets("{1 2}"),
		Args(stringer{}).Rets("<stringer>"),
		Args(nilStringer{}).Rets("nil"),
		Args(errors.New("oops")).Rets("oops"),
	)
}

func TestRenderNested(t *testing.T) {
	tt.Test(t, RenderNested,
		Args(nil).Rets("nil"),
		Args(Char('\'')).Rets(`'\''`),
		Args("a\nb").Rets(`"a\nb"`),
		Args(wrapper{`"q"`}).Rets(`"\"q\""`),
		Args(NewTuple2(1, "x")).Rets(`(1, "x")`),
		Args(Tuple0{}).Rets(`()`),
		Args(triple{1, nil, "z"}).Rets(`(1, nil, "z")`),
		Args([2][2]int{{1, 2}, {3, 4}}).Rets("{{1, 2}, {3, 4}}"),
		Args([]int{1, 2, 3}).Rets("{1, 2, 3}"),
		Args([]int{}).Rets("{}"),
		Args([]any{nil}).Rets("{nil}"),
		Args(42).Rets("42"),
	)
}

func TestRender_NotIdempotentOnText(t *testing.T) {
	once := RenderNested("a")
	twice := RenderNested(once)
	if once != `"a"` || twice != `"\"a\""` {
		t.Errorf("RenderNested twice = %q, %q", once, twice)
	}
}

func TestRender_AbsentIsSameAtAnyDepth(t *testing.T) {
	top := RenderTopLevel(nil)
	if nested := RenderNested([]any{nil}); nested != "{"+top+"}" {
		t.Errorf("nested nil = %q, top-level nil = %q", nested, top)
	}
}

func TestRender_PersistentVector(t *testing.T) {
	v := vector.Empty.Cons(1).Cons("two").Cons(vector.Empty)
	tt.Test(t, Render,
		Args(v, TopLevel).Rets(`List<any> { 1, "two", {} }`),
		Args(v, Nested).Rets(`{1, "two", {}}`),
	)
}

func TestRender_RangeOverFunc(t *testing.T) {
	var seq iter.Seq[int] = slices.Values([]int{3, 1})
	var seq2 iter.Seq2[string, int] = maps.All(map[string]int{"k": 1})
	tt.Test(t, RenderNested,
		Args(seq).Rets("{3, 1}"),
		Args(seq2).Rets(`{["k", 1]}`),
	)
}

func TestRender_MapKeyOrder(t *testing.T) {
	tt.Test(t, RenderNested,
		Args(map[int]string{10: "x", 9: "y", -1: "z"}).Rets(`{[-1, "z"], [9, "y"], [10, "x"]}`),
		Args(map[bool]int{true: 1, false: 0}).Rets(`{[false, 0], [true, 1]}`),
		Args(map[any]int{"b": 1, 2: 2, "a": 3}).Rets(`{[2, 2], ["a", 3], ["b", 1]}`),
		// NaN keys cannot be looked up, but are still rendered.
		Args(map[float64]int{math.NaN(): 1}).Rets("{[NaN, 1]}"),
		Args(map[float64]int{2.5: 2, math.NaN(): 1}).Rets("{[NaN, 1], [2.5, 2]}"),
		Args(map[float64]struct{}{math.NaN(): {}}).Rets("{NaN}"),
	)
}

func TestRender_Cycles(t *testing.T) {
	s := []any{1, nil}
	s[1] = s
	m := map[string]any{}
	m["self"] = m

	tt.Test(t, RenderNested,
		Args(s).Rets("{1, {...}}"),
		Args(m).Rets(`{["self", {...}]}`),
	)

	// Structs are Scalars formatted by fmt, which walks into their maps and
	// slices.
	tt.Test(t, RenderNested,
		Args(holder{m}).Rets("{...}"),
		Args(holder{map[string]any{"a": 1}}).Rets("{map[a:1]}"),
		Args(&holder{m}).Rets("{...}"),
		Args(selfStringer{m}).Rets("<self>"),
	)
	// fmt prints a pointer below the top level as an address.
	n := &node{}
	n.Next = n
	if got := RenderNested(n); got == "{...}" {
		t.Errorf("pointer cycle in a struct rendered as %q", got)
	}

	// The same container appearing twice side by side is not a cycle.
	shared := []int{1}
	if got := RenderNested([]any{shared, shared}); got != "{{1}, {1}}" {
		t.Errorf("got %q", got)
	}
}

type holder struct{ M map[string]any }

type selfStringer struct{ M map[string]any }

func (selfStringer) String() string { return "<self>" }

type node struct{ Next *node }

type deep struct{}

func (deep) Iterate(f func(any) bool) { f(deep{}) }

func TestRender_MaxDepth(t *testing.T) {
	got := RenderNested(deep{})
	want := ""
	for i := 0; i <= MaxDepth; i++ {
		want += "{"
	}
	want += "..."
	for i := 0; i <= MaxDepth; i++ {
		want += "}"
	}
	if got != want {
		t.Errorf("RenderNested(deep{}) has length %d, want %d", len(got), len(want))
	}
}

func TestClassify(t *testing.T) {
	tt.Test(t, Classify,
		Args(nil).Rets(Absent),
		Args((*point)(nil)).Rets(Absent),
		Args(Char('a')).Rets(Character),
		Args('a').Rets(Scalar),
		Args("s").Rets(TextLike),
		Args(text("s")).Rets(TextLike),
		Args(wrapper{}).Rets(TextLike),
		Args(NewTuple2(1, 2)).Rets(HeteroTuple),
		Args([2][2]int{}).Rets(MultiArray),
		Args([2]int{}).Rets(Sequence),
		Args([][]int{}).Rets(Sequence),
		Args(map[int]int{}).Rets(Sequence),
		Args(counter(0)).Rets(Sequence),
		Args(vector.Empty).Rets(Sequence),
		Args(func() {}).Rets(Scalar),
		Args(point{}).Rets(Scalar),
	)
}

func TestShapeString(t *testing.T) {
	tt.Test(t, Shape.String,
		Args(Absent).Rets("absent"),
		Args(HeteroTuple).Rets("tuple"),
		Args(Scalar).Rets("scalar"),
		Args(Shape(100)).Rets("unknown"),
	)
}

func TestRank(t *testing.T) {
	tt.Test(t, Rank,
		Args(nil).Rets(0),
		Args(1).Rets(0),
		Args([]int{}).Rets(1),
		Args([2]int{}).Rets(1),
		Args([2][3]int{}).Rets(2),
		Args([1][1][1]int{}).Rets(3),
	)
}

func TestItems(t *testing.T) {
	tt.Test(t, Items,
		Args(NewTuple3(1, "a", true)).Rets([]any{1, "a", true}),
		Args(Tuple0{}).Rets([]any{}),
	)
}

func TestTupleItem_PanicsOutOfRange(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Item(2) did not panic")
		}
	}()
	NewTuple2(1, 2).Item(2)
}
