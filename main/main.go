/*
File    : monkey-lang/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Monkey interpreter. It provides
three modes of operation:
1. REPL Mode (default): interactive Read-Eval-Print Loop
2. File Mode: execute a Monkey source file given on the command line
3. Server Mode: host a REPL over a TCP socket, one session per connection

The interpreter is a lexer -> parser -> evaluator pipeline; this package
only wires that pipeline to process arguments and I/O.
*/
package main

import (
	"net"
	"os"

	"github.com/akashmaji946/monkey-lang/eval"
	"github.com/akashmaji946/monkey-lang/objects"
	"github.com/akashmaji946/monkey-lang/parser"
	"github.com/akashmaji946/monkey-lang/repl"
	"github.com/fatih/color"
)

// VERSION is the current version of the Monkey interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = repl.PROMPT

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
 888b     d888  .d88888b.  888b    888 888    d8P  8888888888Y88b   d88P
 8888b   d8888 d88P" "Y88b 8888b   888 888   d8P   888       Y88b d88P
 88888b.d88888 888     888 88888b  888 888  d8P    888        Y88o88P
 888Y88888P888 888     888 888Y88b 888 888d88K     8888888      Y888P
 888 Y888P 888 888     888 888 Y88b888 8888888b    888          d888b
 888  Y8P  888 888     888 888  Y88888 888  Y88b   888         d88888b
 888   "   888 Y88b. .d88P 888   Y8888 888   Y88b  888        d88P Y88b
 888       888  "Y88888P"  888    Y888 888    Y88b 8888888888d88P   Y88b
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main determines the operating mode based on command-line arguments:
//
//	monkey                  - start interactive REPL mode
//	monkey <file.monkey>    - execute the given source file
//	monkey server <port>    - start a REPL server on the given port
//	monkey --help           - display help information
//	monkey --version        - display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		switch arg {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port for server mode. Usage: monkey server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		default:
			runFile(arg)
			return
		}
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("Monkey - An Interpreted Programming Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  monkey                     Start interactive REPL mode")
	yellowColor.Println("  monkey <path-to-file>       Execute a Monkey source file")
	yellowColor.Println("  monkey server <port>        Start a REPL server on the given port")
	yellowColor.Println("  monkey --help                Display this help message")
	yellowColor.Println("  monkey --version              Display version information")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  monkey")
	yellowColor.Println("  monkey examples/fibonacci.monkey")
	yellowColor.Println("  monkey server 4000")
}

func showVersion() {
	cyanColor.Println("Monkey - An Interpreted Programming Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a Monkey source file. Parser errors are
// reported and the process exits non-zero; a successful run prints
// nothing beyond what puts() calls in the program itself produce.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	p := parser.NewParser(string(source))
	program := p.ParseProgram()

	if p.HasErrors() {
		redColor.Fprintln(os.Stderr, "ERRORS:")
		redColor.Fprintln(os.Stderr, "\tParser Errors:")
		for _, msg := range p.Errors {
			redColor.Fprintf(os.Stderr, "\t%s\n", msg)
		}
		os.Exit(1)
	}

	env := objects.NewEnvironment()
	evaluator := eval.NewEvaluator()

	result := evaluator.Eval(program, env)
	if result != nil && result.Type() == objects.ERROR_OBJ {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}
}

// startServer listens on port and hands each accepted connection its own
// REPL session, running concurrently in its own goroutine.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("Monkey REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("new client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
