/*
File    : olisp/printer/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package printer renders an ast.Expr as a fully-parenthesized Lisp-style
// prefix form, and reads that same form back into an ast.Expr. Together
// Print and ReadSExpr give the AST a round-trippable canonical text
// form independent of OLisp's own infix surface syntax. The printer
// visitor half mirrors go-mix's PrintingVisitor, applied to expressions
// rather than an indented statement tree.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/olisp/ast"
	"github.com/akashmaji946/olisp/object"
	"github.com/akashmaji946/olisp/token"
)

// printer implements ast.ExprVisitor, each Visit method writing one
// fully-parenthesized form to a strings.Builder.
type printer struct {
	buf strings.Builder
}

// Print renders e as "(op operand operand)" for every operator node.
// Leaves print as their name (variables) or as literalText (literals,
// with strings quoted).
func Print(e ast.Expr) string {
	p := &printer{}
	// VisitXxx never returns an error for a well-formed tree; Print
	// discards it rather than propagating a signature no caller needs.
	_, _ = e.Accept(p)
	return p.buf.String()
}

func (p *printer) parenthesize(name string, exprs ...ast.Expr) (object.Value, error) {
	p.buf.WriteString("(")
	p.buf.WriteString(name)
	for _, e := range exprs {
		p.buf.WriteString(" ")
		_, _ = e.Accept(p)
	}
	p.buf.WriteString(")")
	return nil, nil
}

func (p *printer) VisitLiteral(e *ast.Literal) (object.Value, error) {
	p.buf.WriteString(literalText(e.Value))
	return nil, nil
}

func (p *printer) VisitVariable(e *ast.Variable) (object.Value, error) {
	p.buf.WriteString(e.Name.Lexeme)
	return nil, nil
}

func (p *printer) VisitGrouping(e *ast.Grouping) (object.Value, error) {
	return p.parenthesize("group", e.Inner)
}

func (p *printer) VisitUnary(e *ast.Unary) (object.Value, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Operand)
}

func (p *printer) VisitBinary(e *ast.Binary) (object.Value, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p *printer) VisitLogical(e *ast.Logical) (object.Value, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p *printer) VisitAssign(e *ast.Assign) (object.Value, error) {
	return p.parenthesize("set!", &ast.Variable{Name: e.Name}, e.Value)
}

func (p *printer) VisitCall(e *ast.Call) (object.Value, error) {
	return p.parenthesize("call", append([]ast.Expr{e.Callee}, e.Arguments...)...)
}

// literalText renders a Literal node's baked-in value the way the
// reader expects to find it: numbers and booleans bare, strings
// quoted so ReadSExpr can tell a string token from an identifier.
func literalText(v object.Value) string {
	switch val := v.(type) {
	case *object.String:
		return strconv.Quote(val.Value)
	case *object.Nil:
		return "nil"
	default:
		return val.String()
	}
}

// ReadSExpr parses the canonical prefix form Print produces back into
// an ast.Expr. It recognizes only what Print emits: parenthesized
// operator forms, quoted strings, bare numbers/booleans/nil, and bare
// identifiers. It is not a second OLisp parser.
func ReadSExpr(src string) (ast.Expr, error) {
	toks := tokenizeSExpr(src)
	r := &sexprReader{toks: toks}
	e, err := r.readExpr()
	if err != nil {
		return nil, err
	}
	if r.pos != len(r.toks) {
		return nil, fmt.Errorf("trailing input after expression: %q", strings.Join(r.toks[r.pos:], " "))
	}
	return e, nil
}

// tokenizeSExpr splits src into parens, quoted strings (kept as one
// token including the quotes), and whitespace-delimited atoms.
func tokenizeSExpr(src string) []string {
	var toks []string
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(' || c == ')':
			toks = append(toks, string(c))
			i++
		case c == '"':
			j := i + 1
			for j < len(src) && src[j] != '"' {
				j++
			}
			toks = append(toks, src[i:j+1])
			i = j + 1
		default:
			j := i
			for j < len(src) && !strings.ContainsRune(" \t\n\r()", rune(src[j])) {
				j++
			}
			toks = append(toks, src[i:j])
			i = j
		}
	}
	return toks
}

type sexprReader struct {
	toks []string
	pos  int
}

func (r *sexprReader) readExpr() (ast.Expr, error) {
	if r.pos >= len(r.toks) {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	tok := r.toks[r.pos]
	if tok == "(" {
		return r.readForm()
	}
	r.pos++
	return r.readAtom(tok)
}

func (r *sexprReader) readForm() (ast.Expr, error) {
	r.pos++ // consume "("
	if r.pos >= len(r.toks) {
		return nil, fmt.Errorf("unterminated form")
	}
	head := r.toks[r.pos]
	r.pos++

	var operands []ast.Expr
	for r.pos < len(r.toks) && r.toks[r.pos] != ")" {
		operand, err := r.readExpr()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	if r.pos >= len(r.toks) {
		return nil, fmt.Errorf("unterminated form starting with %q", head)
	}
	r.pos++ // consume ")"

	return formFromHead(head, operands)
}

func formFromHead(head string, operands []ast.Expr) (ast.Expr, error) {
	switch head {
	case "group":
		if len(operands) != 1 {
			return nil, fmt.Errorf("group takes exactly one operand, got %d", len(operands))
		}
		return &ast.Grouping{Inner: operands[0]}, nil
	case "call":
		if len(operands) == 0 {
			return nil, fmt.Errorf("call requires a callee")
		}
		return &ast.Call{Callee: operands[0], Arguments: operands[1:]}, nil
	case "!":
		if len(operands) != 1 {
			return nil, fmt.Errorf("%s takes exactly one operand, got %d", head, len(operands))
		}
		return &ast.Unary{Operator: operatorToken(head), Operand: operands[0]}, nil
	case "-":
		// "-" is both unary negation and binary subtraction; operand
		// count is the only thing that disambiguates which form Print
		// originally emitted.
		if len(operands) == 1 {
			return &ast.Unary{Operator: operatorToken(head), Operand: operands[0]}, nil
		}
		if len(operands) != 2 {
			return nil, fmt.Errorf("%s takes one or two operands, got %d", head, len(operands))
		}
		return &ast.Binary{Left: operands[0], Operator: operatorToken(head), Right: operands[1]}, nil
	case "and", "or":
		if len(operands) != 2 {
			return nil, fmt.Errorf("%s takes exactly two operands, got %d", head, len(operands))
		}
		return &ast.Logical{Left: operands[0], Operator: operatorToken(head), Right: operands[1]}, nil
	case "set!":
		if len(operands) != 2 {
			return nil, fmt.Errorf("set! takes exactly two operands, got %d", len(operands))
		}
		target, ok := operands[0].(*ast.Variable)
		if !ok {
			return nil, fmt.Errorf("set! target must be a variable atom")
		}
		return &ast.Assign{Name: target.Name, Value: operands[1]}, nil
	default:
		if len(operands) != 2 {
			return nil, fmt.Errorf("unknown or malformed form %q with %d operands", head, len(operands))
		}
		return &ast.Binary{Left: operands[0], Operator: operatorToken(head), Right: operands[1]}, nil
	}
}

// operatorToken reconstructs the token that a Print of a Binary/Unary/
// Logical node would have consumed its Lexeme from. Line is always 0;
// ReadSExpr exists for structural round-tripping, not for reporting
// positions back to an original source.
func operatorToken(lexeme string) token.Token {
	t, ok := operatorTypes[lexeme]
	if !ok {
		t = token.Identifier
	}
	return token.NewLiteral(t, lexeme, nil, 0)
}

var operatorTypes = map[string]token.Type{
	"+": token.Plus, "-": token.Minus, "*": token.Star, "/": token.Slash,
	"==": token.EqualEqual, "!=": token.BangEqual,
	"<": token.Less, "<=": token.LessEqual, ">": token.Greater, ">=": token.GreaterEqual,
	"!": token.Bang, "and": token.And, "or": token.Or,
}

func (r *sexprReader) readAtom(tok string) (ast.Expr, error) {
	switch {
	case strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) && len(tok) >= 2:
		s, err := strconv.Unquote(tok)
		if err != nil {
			return nil, fmt.Errorf("malformed string literal %q: %w", tok, err)
		}
		return &ast.Literal{Value: &object.String{Value: s}}, nil
	case tok == "true":
		return &ast.Literal{Value: object.True}, nil
	case tok == "false":
		return &ast.Literal{Value: object.False}, nil
	case tok == "nil":
		return &ast.Literal{Value: object.None}, nil
	}
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return &ast.Literal{Value: &object.Integer{Value: i}}, nil
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return &ast.Literal{Value: &object.Float{Value: f}}, nil
	}
	return &ast.Variable{Name: token.NewLiteral(token.Identifier, tok, nil, 0)}, nil
}
