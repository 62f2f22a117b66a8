/*
File    : slayscript/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the interactive Read-Eval-Print Loop (SPEC_FULL.md
§6.2): readline-backed history/editing from the teacher, layered with a
brace-balanced multi-line buffering state machine so a `spell`/`prophecy`
body spanning several lines is accepted as one unit before being handed to
the evaluator.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/slayscript/eval"
	"github.com/akashmaji946/slayscript/objects"
	"github.com/akashmaji946/slayscript/std"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl builds a Repl with the given banner/prompt configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to SlayScript!")
	cyanColor.Fprintf(writer, "%s\n", "Type your incantations and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// buffer accumulates lines until the unit is complete (SPEC_FULL.md §6.2):
// only a first line whose trailing non-whitespace is "{" opens multi-line
// mode; the unit then ends once braces balance on a line starting with "}"
// at column zero, or when an empty line is entered while balanced.
type buffer struct {
	lines []string
	depth int
}

func (b *buffer) add(line string) {
	b.lines = append(b.lines, line)
	b.depth += strings.Count(line, "{") - strings.Count(line, "}")
}

func (b *buffer) open() bool { return len(b.lines) > 0 }

func (b *buffer) balanced() bool {
	if len(b.lines) <= 1 {
		first := ""
		if len(b.lines) == 1 {
			first = strings.TrimRight(b.lines[0], " \t\r")
		}
		return !strings.HasSuffix(first, "{")
	}
	last := b.lines[len(b.lines)-1]
	return b.depth <= 0 && (strings.HasPrefix(last, "}") || strings.TrimSpace(last) == "")
}

func (b *buffer) source() string { return strings.Join(b.lines, "\n") }

func (b *buffer) reset() {
	b.lines = nil
	b.depth = 0
}

// Start runs the REPL main loop against reader/writer until '.exit' or EOF.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.Out = writer
	std.Register(evaluator.Global)

	var buf buffer
	continuationPrompt := strings.Repeat(" ", len(r.Prompt))
	for {
		if buf.open() {
			rl.SetPrompt(continuationPrompt)
		} else {
			rl.SetPrompt(r.Prompt)
		}

		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		if !buf.open() {
			trimmed := strings.Trim(line, " \n\t\r")
			if trimmed == "" {
				continue
			}
			if trimmed == ".exit" {
				writer.Write([]byte("Good Bye!\n"))
				break
			}
			line = trimmed
		}

		rl.SaveHistory(line)
		buf.add(line)

		if !buf.balanced() {
			continue
		}

		r.executeWithRecovery(writer, buf.source(), evaluator)
		buf.reset()
	}
}

// executeWithRecovery runs src against evaluator, printing any error in red
// and a non-void result in yellow. Unlike file-mode execution, the REPL
// survives an error and returns to the prompt.
func (r *Repl) executeWithRecovery(writer io.Writer, src string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	result, err := evaluator.Run(src)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}
	if result != nil && result.GetType() != objects.VoidType {
		yellowColor.Fprintf(writer, "%s\n", result.ToString())
	}
}
