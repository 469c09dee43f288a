// Package tt supports table-driven tests with little boilerplate.
//
// A typical use of this package looks like this:
//
//	// Function being tested
//	func neg(i int) int { return -i }
//
//	func TestNeg(t *testing.T) {
//		tt.Test(t, neg,
//			// Unnamed test case
//			tt.Args(1).Rets(-1),
//			// Named test case
//			tt.Args(2).Rets(-2).Named("two"),
//		)
//	}
//
// Mismatches are reported with a diff produced by [cmp.Diff].
package tt

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Case represents a test case. It is created by the Args function, and
// offers setters that augment and return itself, so that calls can be
// chained like Args(...).Rets(...).
type Case struct {
	args         []any
	name         string
	retsMatchers [][]any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Named sets the name of the test case. It is used in error messages instead
// of the formatted arguments. It returns the receiver.
func (c *Case) Named(name string) *Case {
	c.name = name
	return c
}

// Rets modifies the test case so that it requires the return values to match
// the given values. It returns the receiver. The arguments may implement the
// Matcher interface, in which case its Match method is called with the actual
// return value. Otherwise, cmp.Equal is used to determine matches.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// Table is a list of test cases, kept for callers that build tables up front.
type Table []*Case

// FnDescriptor describes a function to test, with a name and the formats used
// in error messages.
type FnDescriptor struct {
	name    string
	body    any
	argsFmt string
}

// Fn makes a new FnDescriptor from the function to test. The name is derived
// from the function's own name.
func Fn(body any) *FnDescriptor {
	name := runtime.FuncForPC(reflect.ValueOf(body).Pointer()).Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return &FnDescriptor{name: name, body: body}
}

// Named sets the name used in error messages, and returns the receiver.
func (fn *FnDescriptor) Named(name string) *FnDescriptor {
	fn.name = name
	return fn
}

// ArgsFmt sets the string for formatting arguments in test error messages,
// and returns the receiver.
func (fn *FnDescriptor) ArgsFmt(s string) *FnDescriptor {
	fn.argsFmt = s
	return fn
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases. The function can be given
// directly or wrapped in an FnDescriptor.
func Test(t T, fn any, tests ...*Case) {
	t.Helper()
	var desc *FnDescriptor
	switch fn := fn.(type) {
	case *FnDescriptor:
		desc = fn
	default:
		desc = Fn(fn)
	}
	for _, test := range tests {
		rets := call(desc.body, test.args)
		for _, retsMatcher := range test.retsMatchers {
			if !match(retsMatcher, rets) {
				var args string
				switch {
				case test.name != "":
					args = test.name
				case desc.argsFmt != "":
					args = fmt.Sprintf(desc.argsFmt, test.args...)
				default:
					args = sprintArgs(test.args...)
				}
				t.Errorf("%s(%s) returns (-Wanted +Actual):\n%s",
					desc.name, args, cmp.Diff(retsMatcher, rets, cmpOpts...))
			}
		}
	}
}

var cmpOpts = []cmp.Option{cmp.Exporter(func(reflect.Type) bool { return true })}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

func match(matchers, actual []any) bool {
	for i, matcher := range matchers {
		if !matchOne(matcher, actual[i]) {
			return false
		}
	}
	return true
}

func matchOne(m, a any) bool {
	if m, ok := m.(Matcher); ok {
		return m.Match(a)
	}
	return cmp.Equal(m, a, cmpOpts...)
}

func sprintArgs(args ...any) string {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%#v", arg)
	}
	return sb.String()
}

func call(fn any, args []any) []any {
	argsReflect := make([]reflect.Value, len(args))
	fnType := reflect.TypeOf(fn)
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) returns a zero Value, which cannot be
			// passed to Call. Use the zero value of the parameter type
			// instead.
			var t reflect.Type
			if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
				t = fnType.In(fnType.NumIn() - 1).Elem()
			} else {
				t = fnType.In(i)
			}
			argsReflect[i] = reflect.Zero(t)
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := reflect.ValueOf(fn).Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}
