/*
File    : olisp/interpreter/session.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interpreter walks OLisp's AST against a lexical environment
// chain, producing side effects (print output) and surfacing the first
// error encountered.
//
// Session plays the role of go-mix's eval.Evaluator: it owns the
// current scope, the output writer (SetWriter, the same injection point
// go-mix's Evaluator exposes), and an injectable Clock so tests can make
// the clock builtin deterministic.
package interpreter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/akashmaji946/olisp/ast"
	"github.com/akashmaji946/olisp/environment"
	"github.com/akashmaji946/olisp/lexer"
	"github.com/akashmaji946/olisp/object"
	"github.com/akashmaji946/olisp/parser"
	"github.com/akashmaji946/olisp/token"
)

// Session is one OLisp program: a persistent global environment reused
// across every Run call, so declarations and assignments accumulate the
// way a REPL session expects.
type Session struct {
	globals *environment.Environment
	env     *environment.Environment
	Writer  io.Writer
	Clock   func() int64
}

// NewSession creates a Session with a fresh global environment, stdout
// as its writer, and the wall clock as its Clock source.
func NewSession() *Session {
	s := &Session{
		globals: environment.New(nil),
		Writer:  os.Stdout,
		Clock:   func() int64 { return time.Now().Unix() },
	}
	s.env = s.globals
	s.defineBuiltins()
	return s
}

// SetWriter redirects print output, the same injection point go-mix's
// Evaluator.SetWriter offers. Tests use this to capture output into a
// buffer instead of stdout.
func (s *Session) SetWriter(w io.Writer) {
	s.Writer = w
}

func (s *Session) defineBuiltins() {
	s.globals.Define("clock", &Builtin{
		name:  "clock",
		arity: 0,
		fn: func(args []object.Value) (object.Value, error) {
			return &object.Integer{Value: s.Clock()}, nil
		},
	})
}

// Run lexes, parses, and executes source against this session's
// persistent environment, returning the first error encountered at any
// stage. A lexical or syntax error reports every problem found (joined
// by newline); a runtime error aborts at the first one.
func (s *Session) Run(source string) error {
	tokens, err := lexer.Scan(source)
	if err != nil {
		return err
	}
	stmts, err := parser.Parse(tokens)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if err := s.execute(stmt); err != nil {
			if _, ok := err.(*returnSignal); ok {
				return fmt.Errorf("Return outside function")
			}
			return err
		}
	}
	return nil
}

func (s *Session) evaluate(e ast.Expr) (object.Value, error) { return e.Accept(s) }

func (s *Session) execute(st ast.Stmt) error { return st.Accept(s) }

func (s *Session) executeBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := s.env
	s.env = env
	defer func() { s.env = previous }()
	for _, stmt := range stmts {
		if err := s.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- expressions ---

func (s *Session) VisitLiteral(n *ast.Literal) (object.Value, error) {
	return n.Value, nil
}

func (s *Session) VisitVariable(n *ast.Variable) (object.Value, error) {
	return s.env.Get(n.Name.Lexeme)
}

func (s *Session) VisitGrouping(n *ast.Grouping) (object.Value, error) {
	return s.evaluate(n.Inner)
}

func (s *Session) VisitUnary(n *ast.Unary) (object.Value, error) {
	val, err := s.evaluate(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Operator.Type {
	case token.Minus:
		switch v := val.(type) {
		case *object.Integer:
			return &object.Integer{Value: -v.Value}, nil
		case *object.Float:
			return &object.Float{Value: -v.Value}, nil
		}
		return nil, fmt.Errorf("Minus not implemented for %s", val.Type())
	case token.Bang:
		return object.Bool(!object.Truthy(val)), nil
	}
	return nil, fmt.Errorf("Unknown unary operator %s", n.Operator.Lexeme)
}

func (s *Session) VisitBinary(n *ast.Binary) (object.Value, error) {
	left, err := s.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := s.evaluate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Type {
	case token.EqualEqual:
		return object.Bool(object.Equal(left, right)), nil
	case token.BangEqual:
		return object.Bool(!object.Equal(left, right)), nil
	case token.Plus:
		if ls, ok := left.(*object.String); ok {
			return &object.String{Value: ls.Value + right.String()}, nil
		}
		if rs, ok := right.(*object.String); ok {
			return &object.String{Value: left.String() + rs.Value}, nil
		}
		return arithmetic(left, right, n.Operator,
			func(a, b int64) int64 { return a + b },
			func(a, b float64) float64 { return a + b })
	case token.Minus:
		return arithmetic(left, right, n.Operator,
			func(a, b int64) int64 { return a - b },
			func(a, b float64) float64 { return a - b })
	case token.Star:
		return arithmetic(left, right, n.Operator,
			func(a, b int64) int64 { return a * b },
			func(a, b float64) float64 { return a * b })
	case token.Slash:
		return divide(left, right, n.Operator)
	case token.Less, token.LessEqual, token.Greater, token.GreaterEqual:
		return compare(left, right, n.Operator)
	}
	return nil, fmt.Errorf("%s operation is not implemented for: %s and %s", n.Operator.Lexeme, left.Type(), right.Type())
}

func (s *Session) VisitLogical(n *ast.Logical) (object.Value, error) {
	left, err := s.evaluate(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Operator.Type == token.Or {
		if object.Truthy(left) {
			return left, nil
		}
		return s.evaluate(n.Right)
	}
	// "and"
	if !object.Truthy(left) {
		return left, nil
	}
	return s.evaluate(n.Right)
}

func (s *Session) VisitAssign(n *ast.Assign) (object.Value, error) {
	val, err := s.evaluate(n.Value)
	if err != nil {
		return nil, err
	}
	if err := s.env.Assign(n.Name.Lexeme, val); err != nil {
		return nil, err
	}
	return val, nil
}

func (s *Session) VisitCall(n *ast.Call) (object.Value, error) {
	callee, err := s.evaluate(n.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]object.Value, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		v, err := s.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	callable, ok := callee.(object.Callable)
	if !ok {
		return nil, fmt.Errorf("Can only call functions")
	}
	if len(args) != callable.Arity() {
		return nil, fmt.Errorf("Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(args)
}

// --- statements ---

func (s *Session) VisitExprStmt(st *ast.ExprStmt) error {
	_, err := s.evaluate(st.Expr)
	return err
}

func (s *Session) VisitPrint(st *ast.Print) error {
	val, err := s.evaluate(st.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.Writer, val.String())
	return nil
}

func (s *Session) VisitVarDecl(st *ast.VarDecl) error {
	var val object.Value = object.None
	if st.Initializer != nil {
		v, err := s.evaluate(st.Initializer)
		if err != nil {
			return err
		}
		val = v
	}
	s.env.Define(st.Name.Lexeme, val)
	return nil
}

func (s *Session) VisitBlock(st *ast.Block) error {
	return s.executeBlock(st.Statements, environment.New(s.env))
}

func (s *Session) VisitIf(st *ast.If) error {
	cond, err := s.evaluate(st.Condition)
	if err != nil {
		return err
	}
	if object.Truthy(cond) {
		return s.execute(st.Then)
	} else if st.Else != nil {
		return s.execute(st.Else)
	}
	return nil
}

func (s *Session) VisitWhile(st *ast.While) error {
	for {
		cond, err := s.evaluate(st.Condition)
		if err != nil {
			return err
		}
		if !object.Truthy(cond) {
			break
		}
		if err := s.execute(st.Body); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) VisitFunDecl(st *ast.FunDecl) error {
	fn := &Function{decl: st, closure: s.env, session: s}
	s.env.Define(st.Name.Lexeme, fn)
	return nil
}

func (s *Session) VisitReturn(st *ast.Return) error {
	var val object.Value = object.None
	if st.Value != nil {
		v, err := s.evaluate(st.Value)
		if err != nil {
			return err
		}
		val = v
	}
	return &returnSignal{value: val}
}

// --- operator algebra ---
//
// Arithmetic and comparison are a flat pattern match over operand kinds
// and the originating operator token, not per-type methods: Int/Int
// stays Int, any mix involving Float promotes both operands to Float.

func numericFloat(v object.Value) (float64, bool) {
	switch val := v.(type) {
	case *object.Integer:
		return float64(val.Value), true
	case *object.Float:
		return val.Value, true
	}
	return 0, false
}

func arithmetic(left, right object.Value, op token.Token, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (object.Value, error) {
	if li, ok := left.(*object.Integer); ok {
		if ri, ok := right.(*object.Integer); ok {
			return &object.Integer{Value: intOp(li.Value, ri.Value)}, nil
		}
	}
	lf, lok := numericFloat(left)
	rf, rok := numericFloat(right)
	if lok && rok {
		return &object.Float{Value: floatOp(lf, rf)}, nil
	}
	return nil, fmt.Errorf("%s operation is not implemented for: %s and %s", op.Lexeme, left.Type(), right.Type())
}

func divide(left, right object.Value, op token.Token) (object.Value, error) {
	if li, ok := left.(*object.Integer); ok {
		if ri, ok := right.(*object.Integer); ok {
			if ri.Value == 0 {
				return nil, fmt.Errorf("Division by 0")
			}
			return &object.Integer{Value: li.Value / ri.Value}, nil
		}
	}
	lf, lok := numericFloat(left)
	rf, rok := numericFloat(right)
	if lok && rok {
		if rf == 0 {
			return nil, fmt.Errorf("Division by 0")
		}
		return &object.Float{Value: lf / rf}, nil
	}
	return nil, fmt.Errorf("%s operation is not implemented for: %s and %s", op.Lexeme, left.Type(), right.Type())
}

func compare(left, right object.Value, op token.Token) (object.Value, error) {
	if ls, ok := left.(*object.String); ok {
		if rs, ok := right.(*object.String); ok {
			switch op.Type {
			case token.Less:
				return object.Bool(ls.Value < rs.Value), nil
			case token.LessEqual:
				return object.Bool(ls.Value <= rs.Value), nil
			case token.Greater:
				return object.Bool(ls.Value > rs.Value), nil
			case token.GreaterEqual:
				return object.Bool(ls.Value >= rs.Value), nil
			}
		}
	}
	lf, lok := numericFloat(left)
	rf, rok := numericFloat(right)
	if lok && rok {
		switch op.Type {
		case token.Less:
			return object.Bool(lf < rf), nil
		case token.LessEqual:
			return object.Bool(lf <= rf), nil
		case token.Greater:
			return object.Bool(lf > rf), nil
		case token.GreaterEqual:
			return object.Bool(lf >= rf), nil
		}
	}
	return nil, fmt.Errorf("%s operation is not implemented for: %s and %s", op.Lexeme, left.Type(), right.Type())
}
