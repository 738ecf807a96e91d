/*
File    : olisp/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/akashmaji946/olisp/token"
	"github.com/stretchr/testify/assert"
)

type expectedToken struct {
	Type    token.Type
	Lexeme  string
	Literal any
}

func TestScan_Punctuation(t *testing.T) {
	toks, err := Scan("( ) { } , . - + ; * ! != = == < <= > >= /")
	assert.NoError(t, err)

	want := []token.Type{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Star, token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Less, token.LessEqual, token.Greater, token.GreaterEqual, token.Slash,
		token.Eof,
	}
	assert.Len(t, toks, len(want))
	for i, w := range want {
		assert.Equal(t, w, toks[i].Type, "token %d", i)
	}
}

func TestScan_NumbersAndTrailingDot(t *testing.T) {
	toks, err := Scan("12 12.5 123.")
	assert.NoError(t, err)

	assert.Equal(t, int64(12), toks[0].Literal)
	assert.Equal(t, 12.5, toks[1].Literal)
	// a trailing '.' with no fractional digit leaves the '.' unconsumed,
	// so 123. lexes as Int(123) followed by a separate Dot token.
	assert.Equal(t, int64(123), toks[2].Literal)
	assert.Equal(t, token.Dot, toks[3].Type)
}

func TestScan_String(t *testing.T) {
	toks, err := Scan(`"hello world"`)
	assert.NoError(t, err)
	assert.Equal(t, token.String, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestScan_UnterminatedString(t *testing.T) {
	_, err := Scan(`"unterminated`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated string")
}

func TestScan_Comments(t *testing.T) {
	toks, err := Scan("1 // a comment\n2 /* block\ncomment */ 3")
	assert.NoError(t, err)

	var nums []int64
	for _, tk := range toks {
		if tk.Type == token.Number {
			nums = append(nums, tk.Literal.(int64))
		}
	}
	assert.Equal(t, []int64{1, 2, 3}, nums)
}

func TestScan_UnterminatedBlockComment(t *testing.T) {
	_, err := Scan("/* never closed")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated multiline comment")
}

func TestScan_ExtraBlockCommentEnd(t *testing.T) {
	_, err := Scan("1 */ 2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Extra multiline ending comment")
}

func TestScan_KeywordsAndIdentifiers(t *testing.T) {
	toks, err := Scan("var x = 1; if (x) { print x; } else { return; }")
	assert.NoError(t, err)

	want := []token.Type{
		token.Var, token.Identifier, token.Equal, token.Number, token.Semicolon,
		token.If, token.LeftParen, token.Identifier, token.RightParen,
		token.LeftBrace, token.Print, token.Identifier, token.Semicolon,
		token.RightBrace, token.Else, token.LeftBrace, token.Return,
		token.Semicolon, token.RightBrace, token.Eof,
	}
	assert.Len(t, toks, len(want))
	for i, w := range want {
		assert.Equal(t, w, toks[i].Type, "token %d", i)
	}
}

func TestScan_AccumulatesMultipleErrors(t *testing.T) {
	_, err := Scan("@ # $")
	assert.Error(t, err)
	lines := 0
	for _, r := range err.Error() {
		if r == '\n' {
			lines++
		}
	}
	assert.Equal(t, 2, lines, "expected three accumulated errors joined by two newlines")
}

func TestScan_TracksLineNumbers(t *testing.T) {
	toks, err := Scan("1\n2\n3")
	assert.NoError(t, err)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 3, toks[2].Line)
}
