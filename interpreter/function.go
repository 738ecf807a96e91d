/*
File    : olisp/interpreter/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package interpreter

import (
	"fmt"

	"github.com/akashmaji946/olisp/ast"
	"github.com/akashmaji946/olisp/environment"
	"github.com/akashmaji946/olisp/object"
)

// returnSignal carries a return statement's value up through the chain
// of execute calls between the return and its enclosing function call.
// It implements error so it can travel the same path as a genuine
// runtime error, but Function.Call intercepts it before it ever reaches
// the caller as a real failure. Session.Run treats a returnSignal that
// escapes every function call as the "return outside function" error.
type returnSignal struct {
	value object.Value
}

func (r *returnSignal) Error() string { return "return outside function" }

// Function is a user-declared callable: an AST body paired with the
// environment live at the point of its "fun" declaration. Calling it
// opens a fresh scope enclosed by that captured environment, not by
// whatever scope happens to be active at the call site, which is what
// gives closures access to variables from their defining scope after
// that scope has otherwise returned.
type Function struct {
	decl    *ast.FunDecl
	closure *environment.Environment
	session *Session
}

func (f *Function) Type() string   { return "Callable" }
func (f *Function) Name() string   { return f.decl.Name.Lexeme }
func (f *Function) Arity() int     { return len(f.decl.Params) }
func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.decl.Name.Lexeme) }

func (f *Function) Call(args []object.Value) (object.Value, error) {
	env := environment.New(f.closure)
	for i, param := range f.decl.Params {
		env.Define(param.Lexeme, args[i])
	}
	err := f.session.executeBlock(f.decl.Body, env)
	if err != nil {
		if rs, ok := err.(*returnSignal); ok {
			return rs.value, nil
		}
		return nil, err
	}
	return object.None, nil
}

// Builtin is a callable implemented in Go rather than OLisp, such as
// clock. It holds no environment of its own; its fn closes over
// whatever state it needs directly (the Session, for clock).
type Builtin struct {
	name  string
	arity int
	fn    func(args []object.Value) (object.Value, error)
}

func (b *Builtin) Type() string   { return "Callable" }
func (b *Builtin) Name() string   { return b.name }
func (b *Builtin) Arity() int     { return b.arity }
func (b *Builtin) String() string { return fmt.Sprintf("<native fn %s>", b.name) }

func (b *Builtin) Call(args []object.Value) (object.Value, error) {
	return b.fn(args)
}
