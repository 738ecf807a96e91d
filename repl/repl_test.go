/*
File    : olisp/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// a strings.Reader is not a terminal, so Start falls back to startPlain,
// the same path the networked server driver exercises over a net.Conn.
func TestStart_EmptyLineExits(t *testing.T) {
	var out bytes.Buffer
	New().Start(strings.NewReader("\n"), &out)
	assert.Contains(t, out.String(), "Good bye!")
}

func TestStart_EOFExits(t *testing.T) {
	var out bytes.Buffer
	New().Start(strings.NewReader(""), &out)
	assert.Contains(t, out.String(), "Good bye!")
}

func TestStart_RunsLinesAgainstASharedSession(t *testing.T) {
	var out bytes.Buffer
	New().Start(strings.NewReader("var x = 1;\nprint x + 1;\n\n"), &out)
	assert.Contains(t, out.String(), "2")
}

func TestStart_PrintsBannerOnce(t *testing.T) {
	var out bytes.Buffer
	New().Start(strings.NewReader("\n"), &out)
	assert.Equal(t, 1, strings.Count(out.String(), Version))
}

func TestStart_RuntimeErrorDoesNotEndTheLoop(t *testing.T) {
	var out bytes.Buffer
	New().Start(strings.NewReader("1 / 0;\nprint 1 + 1;\n\n"), &out)
	assert.Contains(t, out.String(), "2")
}
