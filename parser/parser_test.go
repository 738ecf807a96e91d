/*
File    : olisp/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"
	"testing"

	"github.com/akashmaji946/olisp/ast"
	"github.com/akashmaji946/olisp/lexer"
	"github.com/akashmaji946/olisp/object"
	"github.com/stretchr/testify/assert"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, err := lexer.Scan(src)
	assert.NoError(t, err)
	stmts, err := Parse(toks)
	assert.NoError(t, err)
	return stmts
}

func TestParse_VarDeclaration(t *testing.T) {
	stmts := parse(t, "var x = 1;")
	assert.Len(t, stmts, 1)
	decl, ok := stmts[0].(*ast.VarDecl)
	assert.True(t, ok)
	assert.Equal(t, "x", decl.Name.Lexeme)
	lit, ok := decl.Initializer.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, &object.Integer{Value: 1}, lit.Value)
}

func TestParse_VarDeclarationWithoutInitializer(t *testing.T) {
	stmts := parse(t, "var x;")
	decl := stmts[0].(*ast.VarDecl)
	assert.Nil(t, decl.Initializer)
}

func TestParse_PrecedenceClimbing(t *testing.T) {
	stmts := parse(t, "1 + 2 * 3;")
	exprStmt := stmts[0].(*ast.ExprStmt)
	binary := exprStmt.Expr.(*ast.Binary)
	assert.Equal(t, "+", binary.Operator.Lexeme)

	// the right operand of the top-level + must be the * subexpression,
	// proving * binds tighter than +
	right, ok := binary.Right.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "*", right.Operator.Lexeme)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	stmts := parse(t, "a = b = 1;")
	exprStmt := stmts[0].(*ast.ExprStmt)
	outer := exprStmt.Expr.(*ast.Assign)
	assert.Equal(t, "a", outer.Name.Lexeme)
	inner, ok := outer.Value.(*ast.Assign)
	assert.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetFails(t *testing.T) {
	toks, err := lexer.Scan("1 = 2;")
	assert.NoError(t, err)
	_, err = Parse(toks)
	assert.Error(t, err)
}

func TestParse_IfElse(t *testing.T) {
	stmts := parse(t, "if (true) print 1; else print 2;")
	ifStmt := stmts[0].(*ast.If)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	// the initializer gets its own wrapping block since there's an
	// initializer to scope
	block := stmts[0].(*ast.Block)
	assert.Len(t, block.Statements, 2)
	_, isVarDecl := block.Statements[0].(*ast.VarDecl)
	assert.True(t, isVarDecl)
	whileStmt, isWhile := block.Statements[1].(*ast.While)
	assert.True(t, isWhile)
	assert.NotNil(t, whileStmt.Condition)
}

func TestParse_BareForLoopHasNoWrappingBlock(t *testing.T) {
	stmts := parse(t, "for (;;) print 1;")
	_, isWhile := stmts[0].(*ast.While)
	assert.True(t, isWhile, "for(;;) with no initializer should not be wrapped in an extra block")
}

func TestParse_FunctionDeclarationAndCall(t *testing.T) {
	stmts := parse(t, "fun add(a, b) { return a + b; } add(1, 2);")
	fn := stmts[0].(*ast.FunDecl)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
	assert.Len(t, fn.Body, 1)

	call := stmts[1].(*ast.ExprStmt).Expr.(*ast.Call)
	assert.Len(t, call.Arguments, 2)
}

func TestParse_TrailingDotFailsAsStatement(t *testing.T) {
	toks, err := lexer.Scan("123.;")
	assert.NoError(t, err)
	_, err = Parse(toks)
	assert.Error(t, err)
}

func TestParse_AccumulatesMultipleErrors(t *testing.T) {
	toks, err := lexer.Scan("var ;\nvar ;")
	assert.NoError(t, err)
	_, err = Parse(toks)
	assert.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), "\n"), "expected two accumulated errors joined by one newline")
}
