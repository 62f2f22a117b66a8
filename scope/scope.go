/*
File    : slayscript/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Scope is SlayScript's Environment (spec.md §4.4): a mutable name→Value
mapping linked to an optional parent, with a separate flag set for
immutable ("constant") bindings. One root Scope is built at program start
and populated with natives; a child Scope is created per function
invocation, per block executed by a conditional/loop, and per loop
iteration, so a loop variable is fresh each time round.
*/
package scope

import "github.com/akashmaji946/slayscript/objects"

// Scope is a single node in the environment tree described by spec.md §4.4.
type Scope struct {
	Variables map[string]objects.GoMixObject
	Consts    map[string]bool
	Parent    *Scope
}

// NewScope builds a scope nested under parent (nil for the root/global scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.GoMixObject),
		Consts:    make(map[string]bool),
		Parent:    parent,
	}
}

// Get implements the "get" operation: traverse the parent chain looking for
// name, returning the nearest binding found.
func (s *Scope) Get(name string) (objects.GoMixObject, bool) {
	if v, ok := s.Variables[name]; ok {
		return v, true
	}
	if s.Parent != nil {
		return s.Parent.Get(name)
	}
	return nil, false
}

// Define implements "define": it writes only to the current scope, never to
// a parent — conjure/summon inside a block never reuses or shadows by
// mutating an outer binding.
func (s *Scope) Define(name string, value objects.GoMixObject, isConst bool) {
	s.Variables[name] = value
	if isConst {
		s.Consts[name] = true
	}
}

// Exists implements "exists": true if name is bound in this scope or any
// ancestor.
func (s *Scope) Exists(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// ExistsLocal implements "exists_local": true only if name is bound in this
// exact scope, ignoring ancestors.
func (s *Scope) ExistsLocal(name string) bool {
	_, ok := s.Variables[name]
	return ok
}

// IsConst implements "is_const", traversing the chain the same way Get does.
func (s *Scope) IsConst(name string) bool {
	if s.Consts[name] {
		return true
	}
	if s.Parent != nil {
		return s.Parent.IsConst(name)
	}
	return false
}

// Assign implements "assign": find the scope owning name along the chain and
// overwrite its binding there. Reports ok=false if name is unbound anywhere;
// the caller is responsible for raising the constant-protection error before
// calling Assign, since Assign itself does not know the call site's
// line/column.
func (s *Scope) Assign(name string, value objects.GoMixObject) (owner *Scope, ok bool) {
	if _, present := s.Variables[name]; present {
		s.Variables[name] = value
		return s, true
	}
	if s.Parent != nil {
		return s.Parent.Assign(name, value)
	}
	return nil, false
}

// Delete implements "delete", removing the binding from the scope that owns
// it. Reports ok=false if name is unbound anywhere.
func (s *Scope) Delete(name string) (ok bool) {
	if _, present := s.Variables[name]; present {
		delete(s.Variables, name)
		delete(s.Consts, name)
		return true
	}
	if s.Parent != nil {
		return s.Parent.Delete(name)
	}
	return false
}
