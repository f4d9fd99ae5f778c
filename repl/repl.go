/*
File    : monkey-lang/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the Monkey
interpreter. The REPL provides an interactive environment where users can:
- Enter Monkey code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the parser and evaluator to execute user input. A
single root environment is shared across every line of one session, so
bindings made on one line stay visible on the next.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/monkey-lang/eval"
	"github.com/akashmaji946/monkey-lang/objects"
	"github.com/akashmaji946/monkey-lang/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// PROMPT is the prompt the external-interfaces section of the spec pins
// literally: a REPL "prints a prompt >> ".
const PROMPT = ">> "

// Repl represents the Read-Eval-Print Loop instance. It encapsulates all
// the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Monkey!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Press an empty line, or Ctrl+D, to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: print banner, read a line at a time
// through readline, evaluate it against a long-lived root environment,
// and print the result. The loop ends on an empty line, readline EOF
// (Ctrl+D), or a readline error — matching the spec's "empty input
// terminates the loop" driver contract. writer doubles as both the
// banner/result sink and the destination puts() is wired to for this
// session, so a TCP client passed in as writer sees puts() output too.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	env := objects.NewEnvironment()
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}

		line = strings.Trim(line, " \t\r\n")
		if line == "" {
			break
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, evaluator, env)
	}
}

// evalLine parses and evaluates a single line, printing the parser error
// block (per the driver's external-interface contract) or the evaluated
// value's inspect().
func (r *Repl) evalLine(writer io.Writer, line string, evaluator *eval.Evaluator, env *objects.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	p := parser.NewParser(line)
	program := p.ParseProgram()

	if p.HasErrors() {
		printParserErrors(writer, p.Errors)
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == objects.ERROR_OBJ {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
	} else {
		yellowColor.Fprintf(writer, "%s\n", result.Inspect())
	}
}

// printParserErrors renders the "ERRORS:\n\tParser Errors:" block the
// spec's driver contract pins, one tab-indented message per line.
func printParserErrors(writer io.Writer, errors []string) {
	redColor.Fprintln(writer, "ERRORS:")
	redColor.Fprintln(writer, "\tParser Errors:")
	for _, msg := range errors {
		redColor.Fprintf(writer, "\t%s\n", msg)
	}
}
