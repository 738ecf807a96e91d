/*
File    : olisp/object/object.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object defines OLisp's runtime value domain: the closed set of
// kinds a program can ever produce, plus the structural equality and
// truthiness rules the evaluator applies to them.
//
// Callable is an interface rather than a concrete struct on purpose. It
// lets package interpreter own the one concrete kind of callable that
// needs an AST body and a captured environment (a user-declared function)
// without this package importing ast or environment and creating a cycle.
package object

import (
	"fmt"
	"math"
)

// Value is implemented by every kind of runtime value: Integer, Float,
// String, Boolean, Nil, and Callable.
type Value interface {
	// Type names the value's kind for error messages ("Int", "Float", ...).
	Type() string
	// String renders the value's display form, as written by the print
	// statement: no quotes around strings, lowercase true/false/nil.
	String() string
}

// Callable is a value that can be invoked with a fixed number of
// arguments. Both the clock builtin and user-declared functions satisfy
// it; user functions live in package interpreter since invoking one
// means executing an ast.Stmt body against an environment.Environment,
// neither of which this package may import.
type Callable interface {
	Value
	// Name identifies the callable for display and for equality. Two
	// Callables are equal iff their Name and Arity match.
	Name() string
	Arity() int
	Call(args []Value) (Value, error)
}

// Integer is a signed 64-bit whole number.
type Integer struct{ Value int64 }

func (i *Integer) Type() string   { return "Int" }
func (i *Integer) String() string { return fmt.Sprintf("%d", i.Value) }

// Float is a 64-bit floating point number.
type Float struct{ Value float64 }

func (f *Float) Type() string { return "Float" }
func (f *Float) String() string {
	return fmt.Sprintf("%s", formatFloat(f.Value))
}

// formatFloat renders a float without padding trailing zeros beyond what
// Go's shortest round-trippable representation already produces.
func formatFloat(v float64) string {
	return fmt.Sprintf("%v", v)
}

// String is a text value. OLisp string literals carry no escapes, so the
// Go string here is exactly the bytes between the source quotes.
type String struct{ Value string }

func (s *String) Type() string   { return "Str" }
func (s *String) String() string { return s.Value }

// Boolean is one of the two truth values. Use the True/False singletons
// rather than constructing new Boolean instances.
type Boolean struct{ Value bool }

func (b *Boolean) Type() string { return "Bool" }
func (b *Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Nil is OLisp's absence-of-value. Use the None singleton.
type Nil struct{}

func (n *Nil) Type() string   { return "Nil" }
func (n *Nil) String() string { return "nil" }

// Singleton instances. The evaluator never allocates a fresh Boolean or
// Nil, it reuses these.
var (
	True  = &Boolean{Value: true}
	False = &Boolean{Value: false}
	None  = &Nil{}
)

// Bool returns the canonical True/False singleton for a Go bool.
func Bool(b bool) *Boolean {
	if b {
		return True
	}
	return False
}

// Truthy reports whether v counts as true in a condition. Int(0),
// Float(0.0), Str(""), False, and Nil are falsy; everything else is
// truthy.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case *Integer:
		return val.Value != 0
	case *Float:
		return val.Value != 0
	case *String:
		return val.Value != ""
	case *Boolean:
		return val.Value
	case *Nil:
		return false
	default:
		return true
	}
}

// floatEpsilon is the absolute tolerance used for floating point
// equality, an explicit departure from exact bit comparison (see
// DESIGN.md for the reasoning).
const floatEpsilon = 1e-9

// Equal implements structural equality over the full value domain:
// exact comparison for Int and Str, epsilon comparison for Float (and
// for an Int compared against a Float, after promoting the Int), and
// Callable equality by (Name, Arity) alone.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case *Integer:
		switch y := b.(type) {
		case *Integer:
			return x.Value == y.Value
		case *Float:
			return floatsEqual(float64(x.Value), y.Value)
		}
		return false
	case *Float:
		switch y := b.(type) {
		case *Float:
			return floatsEqual(x.Value, y.Value)
		case *Integer:
			return floatsEqual(x.Value, float64(y.Value))
		}
		return false
	case *String:
		y, ok := b.(*String)
		return ok && x.Value == y.Value
	case *Boolean:
		y, ok := b.(*Boolean)
		return ok && x.Value == y.Value
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case Callable:
		y, ok := b.(Callable)
		return ok && x.Name() == y.Name() && x.Arity() == y.Arity()
	default:
		return false
	}
}

func floatsEqual(a, b float64) bool {
	diff := math.Abs(a - b)
	if diff <= floatEpsilon {
		return true
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff <= largest*floatEpsilon
}
