/*
File    : slayscript/objects/native.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"fmt"
	"io"
)

// Arity is either an exact non-negative argument count or the "variadic"
// sentinel (spec.md §3: "arity_spec is either a non-negative integer ... or
// the sentinel 'variadic'").
type Arity struct {
	Exact    int
	Variadic bool
}

// ExactArity builds an Arity requiring precisely n arguments.
func ExactArity(n int) Arity { return Arity{Exact: n} }

// VariadicArity accepts any argument count.
var VariadicArity = Arity{Variadic: true}

// Accepts reports whether argc satisfies the arity spec.
func (a Arity) Accepts(argc int) bool {
	return a.Variadic || argc == a.Exact
}

func (a Arity) String() string {
	if a.Variadic {
		return "variadic"
	}
	return fmt.Sprintf("%d", a.Exact)
}

// Callable is implemented by both NativeFunction here and UserFunction in
// the function package, letting the evaluator dispatch a call expression
// without importing function (which would cycle back through scope).
type Callable interface {
	GoMixObject
	CallArity() Arity
	CallName() string
}

// Runtime is the evaluator-facing interface a native handler receives. It
// lives here, not in eval, so both objects and std can depend on it without
// either depending on eval (eval depends on both instead).
type Runtime interface {
	// Writer is where scribe/scribe_line write their output.
	Writer() io.Writer
	// Speak hands a value to the speech collaborator — the auto-speak path
	// for `incantation` return values and the `whisper` native alike.
	Speak(value GoMixObject) error
	// Invoke calls a Callable value (user spell/incantation or native) with
	// already-evaluated arguments, for natives that need a callback.
	Invoke(fn GoMixObject, args []GoMixObject) (GoMixObject, error)
}

// NativeHandler is the signature every registered native function
// implements (spec.md §4.5): the runtime plus the evaluated argument
// vector, returning the call's result or a taxonomy error.
type NativeHandler func(rt Runtime, args []GoMixObject) (GoMixObject, error)

// NativeFunction is the native half of the Callable sub-variant described
// in spec.md §3.
type NativeFunction struct {
	Name    string
	ArityOf Arity
	Handler NativeHandler
}

func (n *NativeFunction) GetType() GoMixType { return NativeFunctionType }
func (n *NativeFunction) ToString() string   { return fmt.Sprintf("<builtin %s>", n.Name) }
func (n *NativeFunction) ToObject() string   { return n.ToString() }
func (n *NativeFunction) CallArity() Arity   { return n.ArityOf }
func (n *NativeFunction) CallName() string   { return n.Name }

// Opaque wraps a resource handle (socket, file, realm connection) produced
// and consumed only by native functions (spec.md §3). Kind labels which
// native family owns it, purely for diagnostics.
type Opaque struct {
	Kind   string
	Handle interface{}
	Closed bool
}

func (o *Opaque) GetType() GoMixType { return OpaqueType }
func (o *Opaque) ToString() string   { return fmt.Sprintf("<%s handle>", o.Kind) }
func (o *Opaque) ToObject() string   { return o.ToString() }
