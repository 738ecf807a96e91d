/*
File    : olisp/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer turns OLisp source text into a flat token stream.
//
// It scans the source byte by byte, tracking a (start, current, line)
// window the way go-mix's lexer does, but it accumulates every error it
// finds across the whole input instead of stopping (or silently
// emitting an INVALID token) at the first one, so a single Scan call
// can report every lexical problem in the source at once.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/akashmaji946/olisp/token"
)

// Lexer holds the scanning state for one source buffer.
type Lexer struct {
	src     string
	start   int
	current int
	line    int
	tokens  []token.Token
	errors  []string
}

// New creates a Lexer ready to scan src.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Scan tokenizes the entire source, returning every recognized token
// (terminated by a single Eof token carrying the final line number) and,
// if any lexical errors were found, a single error joining every message
// with a newline.
func Scan(src string) ([]token.Token, error) {
	lx := New(src)
	return lx.scanAll()
}

func (lx *Lexer) scanAll() ([]token.Token, error) {
	for !lx.atEnd() {
		lx.start = lx.current
		lx.scanToken()
	}
	lx.tokens = append(lx.tokens, token.New(token.Eof, "", lx.line))
	if len(lx.errors) > 0 {
		return lx.tokens, fmt.Errorf("%s", strings.Join(lx.errors, "\n"))
	}
	return lx.tokens, nil
}

func (lx *Lexer) atEnd() bool {
	return lx.current >= len(lx.src)
}

// advance consumes and returns the current byte.
func (lx *Lexer) advance() byte {
	c := lx.src[lx.current]
	lx.current++
	return c
}

// peek returns the current unconsumed byte without advancing, or 0 at EOF.
func (lx *Lexer) peek() byte {
	if lx.atEnd() {
		return 0
	}
	return lx.src[lx.current]
}

// peekNext returns the byte after the current one, or 0 past EOF.
func (lx *Lexer) peekNext() byte {
	if lx.current+1 >= len(lx.src) {
		return 0
	}
	return lx.src[lx.current+1]
}

// match consumes the current byte only if it equals want, and reports
// whether it did.
func (lx *Lexer) match(want byte) bool {
	if lx.atEnd() || lx.src[lx.current] != want {
		return false
	}
	lx.current++
	return true
}

func (lx *Lexer) addToken(typ token.Type) {
	lx.tokens = append(lx.tokens, token.New(typ, lx.src[lx.start:lx.current], lx.line))
}

func (lx *Lexer) addLiteral(typ token.Type, literal any) {
	lx.tokens = append(lx.tokens, token.NewLiteral(typ, lx.src[lx.start:lx.current], literal, lx.line))
}

func (lx *Lexer) fail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	lx.errors = append(lx.errors, fmt.Sprintf("%s at line %d", msg, lx.line))
}

func (lx *Lexer) scanToken() {
	c := lx.advance()
	switch c {
	case '(':
		lx.addToken(token.LeftParen)
	case ')':
		lx.addToken(token.RightParen)
	case '{':
		lx.addToken(token.LeftBrace)
	case '}':
		lx.addToken(token.RightBrace)
	case ',':
		lx.addToken(token.Comma)
	case '.':
		lx.addToken(token.Dot)
	case '-':
		lx.addToken(token.Minus)
	case '+':
		lx.addToken(token.Plus)
	case ';':
		lx.addToken(token.Semicolon)
	case '*':
		if lx.match('/') {
			lx.fail("Extra multiline ending comment")
		} else {
			lx.addToken(token.Star)
		}
	case '!':
		if lx.match('=') {
			lx.addToken(token.BangEqual)
		} else {
			lx.addToken(token.Bang)
		}
	case '=':
		if lx.match('=') {
			lx.addToken(token.EqualEqual)
		} else {
			lx.addToken(token.Equal)
		}
	case '<':
		if lx.match('=') {
			lx.addToken(token.LessEqual)
		} else {
			lx.addToken(token.Less)
		}
	case '>':
		if lx.match('=') {
			lx.addToken(token.GreaterEqual)
		} else {
			lx.addToken(token.Greater)
		}
	case '/':
		switch {
		case lx.match('/'):
			lx.skipLineComment()
		case lx.match('*'):
			lx.skipBlockComment()
		default:
			lx.addToken(token.Slash)
		}
	case ' ', '\r', '\t':
		// whitespace, ignored
	case '\n':
		lx.line++
	case '"':
		lx.scanString()
	default:
		switch {
		case isDigit(c):
			lx.scanNumber()
		case isAlpha(c):
			lx.scanIdentifier()
		default:
			lx.fail("Unexpected character %c", c)
		}
	}
}

func (lx *Lexer) skipLineComment() {
	for lx.peek() != '\n' && !lx.atEnd() {
		lx.advance()
	}
}

// skipBlockComment consumes a /* ... */ comment, counting embedded
// newlines. A bare */ with no matching /* is caught separately by
// scanToken's '*' case.
func (lx *Lexer) skipBlockComment() {
	for {
		if lx.atEnd() {
			lx.fail("Unterminated multiline comment")
			return
		}
		if lx.peek() == '*' && lx.peekNext() == '/' {
			lx.advance()
			lx.advance()
			return
		}
		if lx.peek() == '\n' {
			lx.line++
		}
		lx.advance()
	}
}

func (lx *Lexer) scanString() {
	startLine := lx.line
	for lx.peek() != '"' && !lx.atEnd() {
		if lx.peek() == '\n' {
			lx.line++
		}
		lx.advance()
	}
	if lx.atEnd() {
		lx.errors = append(lx.errors, fmt.Sprintf("Unterminated string at line %d", startLine))
		return
	}
	// the interior text, verbatim, no escape processing
	value := lx.src[lx.start+1 : lx.current]
	lx.advance() // closing quote
	lx.addLiteral(token.String, value)
}

func (lx *Lexer) scanNumber() {
	for isDigit(lx.peek()) {
		lx.advance()
	}
	isFloat := false
	if lx.peek() == '.' && isDigit(lx.peekNext()) {
		isFloat = true
		lx.advance() // consume '.'
		for isDigit(lx.peek()) {
			lx.advance()
		}
	}
	text := lx.src[lx.start:lx.current]
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			lx.fail("Failed to parse the float")
			return
		}
		lx.addLiteral(token.Number, v)
		return
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		lx.fail("Failed to parse the int")
		return
	}
	lx.addLiteral(token.Number, v)
}

func (lx *Lexer) scanIdentifier() {
	for isAlphaNumeric(lx.peek()) {
		lx.advance()
	}
	text := lx.src[lx.start:lx.current]
	lx.addToken(token.LookupIdentifier(text))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
