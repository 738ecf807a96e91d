/*
File    : olisp/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package main is the olisp binary's entry point: argument parsing and
// the three drivers (file, REPL, networked server) it dispatches to.
package main

import (
	"net"
	"os"

	"github.com/akashmaji946/olisp/interpreter"
	"github.com/akashmaji946/olisp/repl"
	"github.com/fatih/color"
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// Usage:
//
//	olisp                  start the REPL, reading stdin
//	olisp <path>            run a source file
//	olisp serve <port>      start the networked REPL server
//	olisp --help, -h       print usage
//	olisp --version, -v    print the version string
//
// Plain file mode takes exactly one argument; anything else in that
// position exits 64. serve/--help/--version are additions this
// repository layers on top of the base file/REPL contract.
func main() {
	if len(os.Args) == 1 {
		repl.New().Start(os.Stdin, os.Stdout)
		return
	}

	switch arg := os.Args[1]; arg {
	case "--help", "-h":
		showHelp()
		os.Exit(0)
	case "--version", "-v":
		showVersion()
		os.Exit(0)
	case "serve":
		if len(os.Args) != 3 {
			redColor.Fprintln(os.Stderr, "usage: olisp serve <port>")
			os.Exit(64)
		}
		serve(os.Args[2])
	default:
		if len(os.Args) != 2 {
			redColor.Fprintln(os.Stderr, "usage: olisp <path>")
			os.Exit(64)
		}
		runFile(arg)
	}
}

func showHelp() {
	cyanColor.Println("olisp - a small tree-walking interpreter")
	cyanColor.Println()
	cyanColor.Println("USAGE:")
	cyanColor.Println("  olisp                 start the REPL")
	cyanColor.Println("  olisp <path>          run a source file")
	cyanColor.Println("  olisp serve <port>    start the networked REPL server")
	cyanColor.Println("  olisp --help, -h      print this message")
	cyanColor.Println("  olisp --version, -v   print the version")
}

func showVersion() {
	cyanColor.Printf("olisp %s\n", repl.Version)
}

// runFile executes a single source file against a fresh Session and
// exits 0 on success, 1 on any lex/parse/runtime error. An unreadable
// file is itself a runtime failure, not a usage error, so it also
// exits 1.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session := interpreter.NewSession()
	if err := session.Run(string(source)); err != nil {
		redColor.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// serve listens on port and hands each accepted connection its own
// interpreter.Session, isolated from every other connection, running
// repl.Repl.Start with the connection itself as both reader and writer.
func serve(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "olisp: %v\n", err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("olisp REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "olisp: accept: %v\n", err)
			continue
		}
		go handleConn(conn)
	}
}

func handleConn(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected: %s\n", conn.RemoteAddr())
	repl.New().Start(conn, conn)
	cyanColor.Printf("client disconnected: %s\n", conn.RemoteAddr())
}
