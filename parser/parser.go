/*
File    : olisp/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a token stream into OLisp's statement tree via
// recursive descent.
//
// The Parser keeps a cursor into the token slice, looking at the next
// unconsumed token (peek) and the one just consumed (previous), and
// accumulates every error it hits into Errors
// rather than stopping at the first one. Where go-mix dispatches
// through Pratt-style prefix/infix function maps, this parser has one
// method per grammar production, since the grammar here is small and
// fixed rather than user-extensible.
package parser

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/olisp/ast"
	"github.com/akashmaji946/olisp/object"
	"github.com/akashmaji946/olisp/token"
)

// Parser holds the state for one parse of a token stream.
type Parser struct {
	tokens  []token.Token
	current int
	Errors  []string
}

// New creates a Parser over tokens (normally the output of lexer.Scan,
// which always ends in an Eof token).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses tokens into a program (a slice of
// statements) and, if any syntax errors were found, a single error
// joining every message with a newline. Parsing never stops at the
// first error: each failing declaration is skipped via synchronize and
// parsing resumes at the next statement boundary.
func Parse(tokens []token.Token) ([]ast.Stmt, error) {
	p := New(tokens)
	stmts := p.parseProgram()
	if len(p.Errors) > 0 {
		return stmts, fmt.Errorf("%s", strings.Join(p.Errors, "\n"))
	}
	return stmts, nil
}

func (p *Parser) parseProgram() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// --- token cursor helpers ---

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Type == token.Eof }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t token.Type) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(t token.Type, message string) (token.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorAt(p.peek(), message)
}

func (p *Parser) errorAt(tok token.Token, message string) error {
	if tok.Type == token.Eof {
		return fmt.Errorf("%s at end at line %d", message, tok.Line)
	}
	return fmt.Errorf("%s near '%s' at line %d", message, tok.Lexeme, tok.Line)
}

// synchronize discards tokens until it's at a likely statement boundary,
// so one syntax error doesn't cascade into a flood of spurious ones.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == token.Semicolon {
			return
		}
		switch p.peek().Type {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}

// --- declarations & statements ---

func (p *Parser) declaration() ast.Stmt {
	stmt, err := p.declarationOrError()
	if err != nil {
		p.Errors = append(p.Errors, err.Error())
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) declarationOrError() (ast.Stmt, error) {
	if p.match(token.Var) {
		return p.varDeclaration()
	}
	if p.match(token.Fun) {
		return p.funDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "Expected variable name")
	if err != nil {
		return nil, err
	}
	var init ast.Expr
	if p.match(token.Equal) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "Expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Name: name, Initializer: init}, nil
}

func (p *Parser) funDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "Expected function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftParen, "Expected '(' after function name"); err != nil {
		return nil, err
	}
	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			param, err := p.consume(token.Identifier, "Expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RightParen, "Expected ')' after parameters"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftBrace, "Expected '{' before function body"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.FunDecl{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.LeftBrace):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.Block{Statements: stmts}, nil
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.Return):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if _, err := p.consume(token.RightBrace, "Expected '}' after block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expected ';' after value"); err != nil {
		return nil, err
	}
	return &ast.Print{Expr: expr}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr}, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expected '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "Expected ')' after if condition"); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Condition: cond, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expected '(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "Expected ')' after condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Condition: cond, Body: body}, nil
}

// forStatement desugars the C-style for loop into a while loop wrapped
// in a block, per spec: missing condition defaults to true, a missing
// step is simply omitted, and a missing initializer drops the outer
// block entirely since there's nothing left to scope.
func (p *Parser) forStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expected '(' after 'for'"); err != nil {
		return nil, err
	}

	var init ast.Stmt
	var err error
	switch {
	case p.match(token.Semicolon):
		init = nil
	case p.match(token.Var):
		init, err = p.varDeclaration()
	default:
		init, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "Expected ';' after loop condition"); err != nil {
		return nil, err
	}

	var step ast.Expr
	if !p.check(token.RightParen) {
		step, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RightParen, "Expected ')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if step != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.ExprStmt{Expr: step}}}
	}
	if cond == nil {
		cond = &ast.Literal{Value: object.True}
	}
	body = &ast.While{Condition: cond, Body: body}

	if init != nil {
		body = &ast.Block{Statements: []ast.Stmt{init, body}}
	}
	return body, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	keyword := p.previous()
	var value ast.Expr
	var err error
	if !p.check(token.Semicolon) {
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "Expected ';' after return value"); err != nil {
		return nil, err
	}
	return &ast.Return{Keyword: keyword, Value: value}, nil
}

// --- expressions, in ascending precedence order ---

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.logicOr()
	if err != nil {
		return nil, err
	}
	if p.match(token.Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}, nil
		}
		return nil, p.errorAt(equals, "Invalid assignment target")
	}
	return expr, nil
}

func (p *Parser) logicOr() (ast.Expr, error) {
	expr, err := p.logicAnd()
	if err != nil {
		return nil, err
	}
	for p.match(token.Or) {
		op := p.previous()
		right, err := p.logicAnd()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) logicAnd() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.And) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(token.BangEqual, token.EqualEqual) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(token.Minus, token.Plus) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.Slash, token.Star) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: op, Operand: operand}, nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(token.LeftParen) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren, err := p.consume(token.RightParen, "Expected ')' after arguments")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Arguments: args, Paren: paren}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: object.False}, nil
	case p.match(token.True):
		return &ast.Literal{Value: object.True}, nil
	case p.match(token.Nil):
		return &ast.Literal{Value: object.None}, nil
	case p.match(token.Number):
		return &ast.Literal{Value: numberValue(p.previous().Literal)}, nil
	case p.match(token.String):
		return &ast.Literal{Value: &object.String{Value: p.previous().Literal.(string)}}, nil
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "Expected ')' after expression"); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: expr}, nil
	}
	return nil, p.errorAt(p.peek(), "Expected expression")
}

func numberValue(literal any) object.Value {
	switch v := literal.(type) {
	case int64:
		return &object.Integer{Value: v}
	case float64:
		return &object.Float{Value: v}
	default:
		return object.None
	}
}
