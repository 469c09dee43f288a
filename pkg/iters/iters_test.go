package iters

import (
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.echolib.dev/pkg/repr"
	"src.echolib.dev/pkg/tt"
)

var Args = tt.Args

func collect2[K comparable, V any](seq func(func(K, V) bool)) map[K]V {
	return maps.Collect(seq)
}

func TestEnumerate(t *testing.T) {
	letters := slices.Values([]string{"a", "b", "c"})

	tests := []struct {
		name string
		seq  func(func(int, string) bool)
		want map[int]string
	}{
		{"default", Enumerate(letters), map[int]string{0: "a", 1: "b", 2: "c"}},
		{"from", EnumerateFrom(letters, 1), map[int]string{1: "a", 2: "b", 3: "c"}},
		{"step", EnumerateStep(letters, 10, -5), map[int]string{10: "a", 5: "b", 0: "c"}},
		{"slice", EnumerateSlice([]string{"a", "b", "c"}), map[int]string{0: "a", 1: "b", 2: "c"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if diff := cmp.Diff(test.want, collect2(test.seq)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEnumerate_StopsEarly(t *testing.T) {
	var got []int
	for i := range Enumerate(slices.Values([]int{5, 6, 7})) {
		if i == 1 {
			break
		}
		got = append(got, i)
	}
	if !slices.Equal(got, []int{0}) {
		t.Errorf("got %v", got)
	}
}

func TestForEach(t *testing.T) {
	var got []string
	ForEach(slices.Values([]string{"x", "y"}), func(s string) { got = append(got, s) })
	if !slices.Equal(got, []string{"x", "y"}) {
		t.Errorf("ForEach visited %v", got)
	}

	var indices []int
	ForEachIndexed(slices.Values([]string{"x", "y"}), func(_ string, i int) { indices = append(indices, i) })
	if !slices.Equal(indices, []int{0, 1}) {
		t.Errorf("ForEachIndexed visited %v", indices)
	}
}

func TestValidateLengths(t *testing.T) {
	tt.Test(t, ValidateLengths,
		Args(2, 2).Rets(2, nil),
		Args(0, 0, 0).Rets(0, nil),
		Args(1, 2).Rets(0, &LengthError{[]int{1, 2}}),
	)

	if _, err := ValidateLengths(3); err == nil {
		t.Errorf("ValidateLengths with one list returned no error")
	}
}

func TestLengthError(t *testing.T) {
	tt.Test(t, (*LengthError).Error,
		Args(&LengthError{[]int{1, 2}}).
			Rets("all lists must have the same length, but got 2 lists with lengths of 1 and 2"),
		Args(&LengthError{[]int{1, 2, 3}}).
			Rets("all lists must have the same length, but got 3 lists with lengths of 1, 2 and 3"),
	)
}

func TestZip2(t *testing.T) {
	seq, err := Zip2([]int{1, 2}, []string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	want := []repr.Tuple2[int, string]{{Item1: 1, Item2: "a"}, {Item1: 2, Item2: "b"}}
	if diff := cmp.Diff(want, slices.Collect(seq)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := repr.RenderTopLevel(slices.Collect(seq)); got != `Tuple<int, string>[] { (1, "a"), (2, "b") }` {
		t.Errorf("rendered as %q", got)
	}
}

func TestZip_MismatchedLengths(t *testing.T) {
	_, err := Zip3([]int{1}, []int{1, 2}, []int{})
	var lengthErr *LengthError
	if !errors.As(err, &lengthErr) {
		t.Fatalf("got error %v, want *LengthError", err)
	}
	if !slices.Equal(lengthErr.Lengths, []int{1, 2, 0}) {
		t.Errorf("Lengths = %v", lengthErr.Lengths)
	}
}

func TestZipHigherArities(t *testing.T) {
	one := []int{1}
	s4, _ := Zip4(one, one, one, one)
	s5, _ := Zip5(one, one, one, one, one)
	s6, _ := Zip6(one, []string{"s"}, one, one, one, []bool{true})
	tt.Test(t, repr.RenderNested,
		Args(slices.Collect(s4)).Rets("{(1, 1, 1, 1)}"),
		Args(slices.Collect(s5)).Rets("{(1, 1, 1, 1, 1)}"),
		Args(slices.Collect(s6)).Rets(`{(1, "s", 1, 1, 1, true)}`),
	)
}

func TestZipEnumerate(t *testing.T) {
	seq, err := ZipEnumerate2(Counter{Start: 1, Step: 2}, []string{"a", "b", "c"}, []bool{true, false, true})
	if err != nil {
		t.Fatal(err)
	}
	want := []repr.Tuple3[int, string, bool]{{Item1: 1, Item2: "a", Item3: true}, {Item1: 3, Item2: "b", Item3: false}, {Item1: 5, Item2: "c", Item3: true}}
	if diff := cmp.Diff(want, slices.Collect(seq)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	xs := []int{7, 8}
	s3, _ := ZipEnumerate3(DefaultCounter, xs, xs, xs)
	s4, _ := ZipEnumerate4(DefaultCounter, xs, xs, xs, xs)
	s5, _ := ZipEnumerate5(DefaultCounter, xs, xs, xs, xs, xs)
	s6, _ := ZipEnumerate6(DefaultCounter, xs, xs, xs, xs, xs, xs)
	tt.Test(t, repr.RenderNested,
		Args(slices.Collect(s3)).Rets("{(0, 7, 7, 7), (1, 8, 8, 8)}"),
		Args(slices.Collect(s4)).Rets("{(0, 7, 7, 7, 7), (1, 8, 8, 8, 8)}"),
		Args(slices.Collect(s5)).Rets("{(0, 7, 7, 7, 7, 7), (1, 8, 8, 8, 8, 8)}"),
		Args(slices.Collect(s6)).Rets("{(0, 7, 7, 7, 7, 7, 7), (1, 8, 8, 8, 8, 8, 8)}"),
	)

	if _, err := ZipEnumerate2(DefaultCounter, xs, []int{}); err == nil {
		t.Errorf("ZipEnumerate2 with mismatched lengths returned no error")
	}
}
