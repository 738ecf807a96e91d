/*
File    : olisp/ast/ast_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"testing"

	"github.com/akashmaji946/olisp/object"
	"github.com/akashmaji946/olisp/token"
	"github.com/stretchr/testify/assert"
)

// recordingVisitor is a minimal ExprVisitor/StmtVisitor that records which
// method was called, proving Accept dispatches to the matching Visit
// method for every node kind rather than some generic fallback.
type recordingVisitor struct {
	lastExpr string
	lastStmt string
}

func (r *recordingVisitor) VisitLiteral(*Literal) (object.Value, error) {
	r.lastExpr = "Literal"
	return object.None, nil
}
func (r *recordingVisitor) VisitVariable(*Variable) (object.Value, error) {
	r.lastExpr = "Variable"
	return object.None, nil
}
func (r *recordingVisitor) VisitGrouping(*Grouping) (object.Value, error) {
	r.lastExpr = "Grouping"
	return object.None, nil
}
func (r *recordingVisitor) VisitUnary(*Unary) (object.Value, error) {
	r.lastExpr = "Unary"
	return object.None, nil
}
func (r *recordingVisitor) VisitBinary(*Binary) (object.Value, error) {
	r.lastExpr = "Binary"
	return object.None, nil
}
func (r *recordingVisitor) VisitLogical(*Logical) (object.Value, error) {
	r.lastExpr = "Logical"
	return object.None, nil
}
func (r *recordingVisitor) VisitAssign(*Assign) (object.Value, error) {
	r.lastExpr = "Assign"
	return object.None, nil
}
func (r *recordingVisitor) VisitCall(*Call) (object.Value, error) {
	r.lastExpr = "Call"
	return object.None, nil
}

func (r *recordingVisitor) VisitExprStmt(*ExprStmt) error { r.lastStmt = "ExprStmt"; return nil }
func (r *recordingVisitor) VisitPrint(*Print) error       { r.lastStmt = "Print"; return nil }
func (r *recordingVisitor) VisitVarDecl(*VarDecl) error   { r.lastStmt = "VarDecl"; return nil }
func (r *recordingVisitor) VisitBlock(*Block) error       { r.lastStmt = "Block"; return nil }
func (r *recordingVisitor) VisitIf(*If) error             { r.lastStmt = "If"; return nil }
func (r *recordingVisitor) VisitWhile(*While) error       { r.lastStmt = "While"; return nil }
func (r *recordingVisitor) VisitFunDecl(*FunDecl) error   { r.lastStmt = "FunDecl"; return nil }
func (r *recordingVisitor) VisitReturn(*Return) error     { r.lastStmt = "Return"; return nil }

func TestExprAcceptDispatchesToMatchingVisitMethod(t *testing.T) {
	v := &recordingVisitor{}
	name := token.New(token.Identifier, "x", 1)

	exprs := []struct {
		node Expr
		want string
	}{
		{&Literal{Value: object.True}, "Literal"},
		{&Variable{Name: name}, "Variable"},
		{&Grouping{Inner: &Literal{Value: object.True}}, "Grouping"},
		{&Unary{Operator: token.New(token.Minus, "-", 1), Operand: &Literal{Value: object.True}}, "Unary"},
		{&Binary{Left: &Literal{Value: object.True}, Operator: token.New(token.Plus, "+", 1), Right: &Literal{Value: object.True}}, "Binary"},
		{&Logical{Left: &Literal{Value: object.True}, Operator: token.New(token.And, "and", 1), Right: &Literal{Value: object.True}}, "Logical"},
		{&Assign{Name: name, Value: &Literal{Value: object.True}}, "Assign"},
		{&Call{Callee: &Variable{Name: name}}, "Call"},
	}

	for _, tt := range exprs {
		_, err := tt.node.Accept(v)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, v.lastExpr)
	}
}

func TestStmtAcceptDispatchesToMatchingVisitMethod(t *testing.T) {
	v := &recordingVisitor{}
	name := token.New(token.Identifier, "x", 1)
	expr := &Literal{Value: object.True}

	stmts := []struct {
		node Stmt
		want string
	}{
		{&ExprStmt{Expr: expr}, "ExprStmt"},
		{&Print{Expr: expr}, "Print"},
		{&VarDecl{Name: name, Initializer: expr}, "VarDecl"},
		{&Block{Statements: nil}, "Block"},
		{&If{Condition: expr, Then: &Print{Expr: expr}}, "If"},
		{&While{Condition: expr, Body: &Print{Expr: expr}}, "While"},
		{&FunDecl{Name: name, Params: nil, Body: nil}, "FunDecl"},
		{&Return{Keyword: token.New(token.Return, "return", 1)}, "Return"},
	}

	for _, tt := range stmts {
		assert.NoError(t, tt.node.Accept(v))
		assert.Equal(t, tt.want, v.lastStmt)
	}
}
