/*
File    : olisp/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package repl implements OLisp's interactive Read-Eval-Print Loop,
// shared between the local terminal driver and the networked server
// driver in package main. Each gets its own Repl.Start call over a
// different io.Reader/io.Writer pair, but both lex, parse, and execute
// the same way, against one persistent interpreter.Session.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/olisp/interpreter"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	blueColor   = color.New(color.FgBlue)
)

// Repl holds the cosmetic configuration of an interactive session.
// Nothing here is stateful across lines; that all lives in the
// interpreter.Session Start creates.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// New builds a Repl with OLisp's own banner, version, and prompt.
func New() *Repl {
	return &Repl{
		Banner:  banner,
		Version: Version,
		Author:  "akashmaji(@iisc.ac.in)",
		Line:    strings.Repeat("-", 66),
		Prompt:  "> ",
	}
}

const banner = `
   ____  _      _
  / __ \| |    (_)
 | |  | | |     _ ___ _ __
 | |  | | |    | / __| '_ \
 | |__| | |____| \__ \ |_) |
  \____/|______|_|___/ .__/
                      | |
                      |_|
`

// Version is OLisp's release string, reported by --version and the
// REPL banner.
const Version = "v0.1.0"

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintf(w, "OLisp %s | %s\n", r.Version, r.Author)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type OLisp source and press enter. An empty line exits.")
}

// Start runs the REPL loop against reader/writer until an empty line,
// EOF, or a readline error ends it. An empty line exits with status 0;
// Start signals that by simply returning, and package main is the one
// that actually calls os.Exit.
//
// A single interpreter.Session persists for the whole loop, so
// declarations from one line are visible to the next, exactly like
// running the same lines as one file.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	session := interpreter.NewSession()
	session.SetWriter(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		Stdin:       io.NopCloser(reader),
		Stdout:      writer,
		HistoryFile: "",
	})
	if err != nil {
		// readline requires a real terminal for some features; fall back
		// to a plain line reader against whatever reader/writer were given
		// (this is the path the networked server driver exercises, since
		// a net.Conn is not a terminal).
		r.startPlain(reader, writer, session)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "Good bye!")
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			fmt.Fprintln(writer, "Good bye!")
			return
		}
		if err := session.Run(line); err != nil {
			redColor.Fprintf(writer, "%s\n", err)
		}
	}
}

// startPlain is the readline-unavailable fallback, driven by a plain
// bufio.Scanner. Same contract (empty line or EOF exits 0, each line
// runs against the shared Session), just without line editing or
// history.
func (r *Repl) startPlain(reader io.Reader, writer io.Writer, session *interpreter.Session) {
	scanner := bufio.NewScanner(reader)
	for {
		fmt.Fprint(writer, r.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(writer, "Good bye!")
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprintln(writer, "Good bye!")
			return
		}
		if err := session.Run(line); err != nil {
			redColor.Fprintf(writer, "%s\n", err)
		}
	}
}
