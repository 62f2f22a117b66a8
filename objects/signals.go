/*
File    : slayscript/objects/signals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Control-flow signals. spec.md §4.3/§9 calls for return/break/continue to be
threaded through Eval's ordinary return channel rather than raised as
exceptions; ReturnValue/Break/Continue are ordinary GoMixObjects so the
evaluator's ubiquitous (GoMixObject, error) contract carries them, and the
nearest function-call or loop frame unwraps them with a type switch. They
are never errors and never reach a diagnostic.
*/
package objects

// ReturnValue wraps the operand of a `cast` statement while it unwinds up
// to the enclosing function-call frame.
type ReturnValue struct{ Value GoMixObject }

func (r *ReturnValue) GetType() GoMixType { return ReturnType }
func (r *ReturnValue) ToString() string   { return r.Value.ToString() }
func (r *ReturnValue) ToObject() string   { return r.Value.ToObject() }

// Break signals a `break` statement, caught by the nearest enclosing loop.
type Break struct{}

func (b *Break) GetType() GoMixType { return BreakType }
func (b *Break) ToString() string   { return "break" }
func (b *Break) ToObject() string   { return "<break>" }

// Continue signals a `continue` statement, caught at the nearest enclosing
// loop's iteration boundary.
type Continue struct{}

func (c *Continue) GetType() GoMixType { return ContinueType }
func (c *Continue) ToString() string   { return "continue" }
func (c *Continue) ToObject() string   { return "<continue>" }
