/*
File    : slayscript/cmd/slayscript/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Entry point (SPEC_FULL.md §6.1), grounded on the teacher's main/main.go but
rebuilt on github.com/spf13/cobra instead of a hand-rolled os.Args switch.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/slayscript/eval"
	"github.com/akashmaji946/slayscript/lexer"
	"github.com/akashmaji946/slayscript/parser"
	"github.com/akashmaji946/slayscript/printer"
	"github.com/akashmaji946/slayscript/repl"
	"github.com/akashmaji946/slayscript/std"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// VERSION is the current SlayScript interpreter version.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "SlayScript >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
  ____  _             ____            _       _
 / ___|| | __ _ _   _/ ___|  ___ _ __(_)_ __ | |_
 \___ \| |/ _  | | | \___ \ / __| '__| | '_ \| __|
  ___) | | (_| | |_| |___) | (__| |  | | |_) | |_
 |____/|_|\__,_|\__, |____/ \___|_|  |_| .__/ \__|
                |___/                  |_|
`

// LINE is a separator used for visual formatting.
var LINE = "----------------------------------------------------------------"

var redColor = color.New(color.FgRed)
var yellowColor = color.New(color.FgYellow)
var cyanColor = color.New(color.FgCyan)

var debug bool
var inlineSource string
var showVersion bool

func main() {
	root := &cobra.Command{
		Use:   "slayscript [path]",
		Short: "SlayScript interpreter",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
	root.Flags().BoolVarP(&debug, "debug", "d", false, "dump tokens and AST before executing")
	root.Flags().StringVarP(&inlineSource, "command", "c", "", "run the given source string, then exit")
	root.Flags().BoolVarP(&showVersion, "version", "v", false, "print interpreter version and exit")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		printVersion()
		return nil
	}

	switch {
	case inlineSource != "":
		return runSource(inlineSource, os.Stdout)
	case len(args) == 1:
		return runFile(args[0], os.Stdout)
	default:
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return nil
	}
}

func printVersion() {
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("Author : %s\n", AUTHOR)
	cyanColor.Printf("License: %s\n", LICENSE)
}

func runFile(path string, out *os.File) error {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(out, "cannot read %s: %v\n", path, err)
		os.Exit(1)
	}
	return runSource(string(source), out)
}

// runSource dumps tokens/AST when -d is set, then evaluates src, printing
// the surfaced error in red and exiting 1 on failure.
func runSource(src string, out *os.File) error {
	if debug {
		dumpTokens(src, out)
	}

	prog, err := parser.Parse(src)
	if err != nil {
		redColor.Fprintf(out, "%s\n", err.Error())
		os.Exit(1)
	}

	if debug {
		fmt.Fprintln(out, printer.Dump(prog))
	}

	evaluator := eval.NewEvaluator()
	evaluator.Out = out
	std.Register(evaluator.Global)

	if _, err := evaluator.EvalProgram(prog); err != nil {
		redColor.Fprintf(out, "%s\n", err.Error())
		os.Exit(1)
	}
	return nil
}

func dumpTokens(src string, out *os.File) {
	lex := lexer.NewLexer(src)
	fmt.Fprintln(out, "-- tokens --")
	for {
		tok, err := lex.NextToken()
		if err != nil {
			redColor.Fprintf(out, "%s\n", err.Error())
			return
		}
		yellowColor.Fprintf(out, "%s:%v\n", tok.Literal, tok.Type)
		if tok.Type == lexer.EOF_TYPE {
			break
		}
	}
	fmt.Fprintln(out, "-- ast --")
}
