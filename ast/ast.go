/*
File    : olisp/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines OLisp's abstract syntax tree: the eight expression
// kinds and eight statement kinds produced by package parser and walked
// by package interpreter and package printer.
//
// Traversal uses the visitor pattern: every node has an Accept method
// that double-dispatches to the matching ExprVisitor/StmtVisitor method,
// so adding a new kind of walk (evaluation, printing) never touches the
// node types themselves.
package ast

import (
	"github.com/akashmaji946/olisp/object"
	"github.com/akashmaji946/olisp/token"
)

// Expr is any expression node. Evaluating one yields a value or an error.
type Expr interface {
	Accept(v ExprVisitor) (object.Value, error)
}

// Stmt is any statement node. Executing one produces side effects only.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// ExprVisitor implements one operation over every expression kind.
type ExprVisitor interface {
	VisitLiteral(*Literal) (object.Value, error)
	VisitVariable(*Variable) (object.Value, error)
	VisitGrouping(*Grouping) (object.Value, error)
	VisitUnary(*Unary) (object.Value, error)
	VisitBinary(*Binary) (object.Value, error)
	VisitLogical(*Logical) (object.Value, error)
	VisitAssign(*Assign) (object.Value, error)
	VisitCall(*Call) (object.Value, error)
}

// StmtVisitor implements one operation over every statement kind.
type StmtVisitor interface {
	VisitExprStmt(*ExprStmt) error
	VisitPrint(*Print) error
	VisitVarDecl(*VarDecl) error
	VisitBlock(*Block) error
	VisitIf(*If) error
	VisitWhile(*While) error
	VisitFunDecl(*FunDecl) error
	VisitReturn(*Return) error
}

// Literal is a constant value baked in at parse time: a number, string,
// boolean, or nil.
type Literal struct {
	Value object.Value
}

func (e *Literal) Accept(v ExprVisitor) (object.Value, error) { return v.VisitLiteral(e) }

// Variable reads the current binding of Name from the environment chain.
type Variable struct {
	Name token.Token
}

func (e *Variable) Accept(v ExprVisitor) (object.Value, error) { return v.VisitVariable(e) }

// Grouping is a parenthesized expression, kept distinct from its inner
// expression only to preserve source structure for the printer.
type Grouping struct {
	Inner Expr
}

func (e *Grouping) Accept(v ExprVisitor) (object.Value, error) { return v.VisitGrouping(e) }

// Unary applies a prefix operator (- or !) to a single operand.
type Unary struct {
	Operator token.Token
	Operand  Expr
}

func (e *Unary) Accept(v ExprVisitor) (object.Value, error) { return v.VisitUnary(e) }

// Binary applies an infix arithmetic, equality, or comparison operator.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Binary) Accept(v ExprVisitor) (object.Value, error) { return v.VisitBinary(e) }

// Logical applies "and"/"or", which short-circuit and so cannot share
// Binary's always-evaluate-both-sides semantics.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Logical) Accept(v ExprVisitor) (object.Value, error) { return v.VisitLogical(e) }

// Assign evaluates Value and stores it into the nearest existing binding
// of Name, failing if no such binding exists anywhere in the chain.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) Accept(v ExprVisitor) (object.Value, error) { return v.VisitAssign(e) }

// Call invokes Callee with Arguments. Paren is the closing ')' token.
// The evaluator's call errors (arity mismatch, non-callable) do not
// include its line.
type Call struct {
	Callee    Expr
	Arguments []Expr
	Paren     token.Token
}

func (e *Call) Accept(v ExprVisitor) (object.Value, error) { return v.VisitCall(e) }

// ExprStmt evaluates Expr and discards the result.
type ExprStmt struct {
	Expr Expr
}

func (s *ExprStmt) Accept(v StmtVisitor) error { return v.VisitExprStmt(s) }

// Print evaluates Expr and writes its display form followed by a newline.
type Print struct {
	Expr Expr
}

func (s *Print) Accept(v StmtVisitor) error { return v.VisitPrint(s) }

// VarDecl declares Name in the current (innermost) scope, bound to
// Initializer's value, or to Nil if Initializer is nil.
type VarDecl struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarDecl) Accept(v StmtVisitor) error { return v.VisitVarDecl(s) }

// Block executes Statements in a fresh scope enclosed by the current one.
type Block struct {
	Statements []Stmt
}

func (s *Block) Accept(v StmtVisitor) error { return v.VisitBlock(s) }

// If executes Then when Condition is truthy, otherwise Else (nil if the
// source had no else clause).
type If struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *If) Accept(v StmtVisitor) error { return v.VisitIf(s) }

// While re-executes Body for as long as Condition evaluates truthy.
type While struct {
	Condition Expr
	Body      Stmt
}

func (s *While) Accept(v StmtVisitor) error { return v.VisitWhile(s) }

// FunDecl declares a function named Name, binding it in the current scope
// as a callable that captures the environment live at this declaration.
type FunDecl struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunDecl) Accept(v StmtVisitor) error { return v.VisitFunDecl(s) }

// Return unwinds to the nearest enclosing call frame carrying Value's
// result, or Nil if Value is nil (a bare "return;").
type Return struct {
	Keyword token.Token
	Value   Expr
}

func (s *Return) Accept(v StmtVisitor) error { return v.VisitReturn(s) }
