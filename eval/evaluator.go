/*
File    : slayscript/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Evaluator walks the parser.Program/Stmt/Expr tree (spec.md §4.3), consulting
a scope.Scope chain and invoking registered natives. It implements
objects.Runtime so native handlers can write output, speak a value, and call
back into SlayScript functions without importing eval (which would cycle
back through objects).
*/
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/akashmaji946/slayscript/objects"
	"github.com/akashmaji946/slayscript/parser"
	"github.com/akashmaji946/slayscript/scope"
	"github.com/akashmaji946/slayscript/slayerr"
)

// SpeechCollaborator renders a value to wherever "auto-speak" output goes
// (spec.md §6): by default this is the same writer scribe/scribe_line use.
// Both incantation auto-speak and the `whisper` native go through it; an
// Evaluator's owner may swap in something richer (e.g. a colorized prefix).
type SpeechCollaborator func(w io.Writer, value objects.GoMixObject) error

// Evaluator is the tree-walking engine (spec.md §2's "Evaluator" stage).
type Evaluator struct {
	Global *scope.Scope
	Scp    *scope.Scope
	Out    io.Writer
	Reader *bufio.Reader
	Speech SpeechCollaborator
}

// defaultSpeech writes the value's ToString form followed by a newline.
func defaultSpeech(w io.Writer, value objects.GoMixObject) error {
	_, err := io.WriteString(w, value.ToString()+"\n")
	return err
}

// NewEvaluator builds an Evaluator with a fresh global scope, stdout/stdin,
// and the default speech collaborator. Native registration (std.Register)
// happens separately so eval never imports std (std imports eval's
// Runtime contract via objects, not eval itself).
func NewEvaluator() *Evaluator {
	global := scope.NewScope(nil)
	return &Evaluator{
		Global: global,
		Scp:    global,
		Out:    os.Stdout,
		Reader: bufio.NewReader(os.Stdin),
		Speech: defaultSpeech,
	}
}

// Writer implements objects.Runtime.
func (e *Evaluator) Writer() io.Writer { return e.Out }

// Speak implements objects.Runtime: hands value to the speech collaborator.
func (e *Evaluator) Speak(value objects.GoMixObject) error {
	return e.Speech(e.Out, value)
}

// Invoke implements objects.Runtime: calls a Callable with already
// evaluated arguments, for natives that need a callback (none currently
// in the SPEC_FULL.md catalog do, but the hook exists per spec.md §4.5's
// "handler receives the evaluator reference").
func (e *Evaluator) Invoke(fn objects.GoMixObject, args []objects.GoMixObject) (objects.GoMixObject, error) {
	return e.call(0, 0, fn, args)
}

var _ objects.Runtime = (*Evaluator)(nil)

// Run parses and evaluates a full program, returning the last statement's
// value (used by the REPL to echo a result) or Void.
func (e *Evaluator) Run(src string) (objects.GoMixObject, error) {
	prog, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return e.EvalProgram(prog)
}

// EvalProgram executes every top-level statement in the global scope. A
// return/break/continue signal reaching this level is an interpreter bug,
// not a user error, and panics.
func (e *Evaluator) EvalProgram(prog *parser.Program) (objects.GoMixObject, error) {
	var last objects.GoMixObject = objects.TheVoid
	for _, stmt := range prog.Statements {
		result, err := e.evalStmt(stmt)
		if err != nil {
			return nil, err
		}
		switch result.(type) {
		case *objects.ReturnValue, *objects.Break, *objects.Continue:
			panic("internal error: " + string(result.GetType()) + " escaped to the top level")
		}
		if result != nil {
			last = result
		}
	}
	return last, nil
}

func undefinedName(line, col int, name string) error {
	return slayerr.New(slayerr.UnknownIncantation, "undefined name '"+name+"'", line, col)
}
