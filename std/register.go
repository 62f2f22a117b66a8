/*
File    : slayscript/std/register.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package std is the native function catalog (spec.md §4.5, SPEC_FULL.md
§6.4): a small table of objects.NativeFunction values bound into the root
scope by Register before a program runs. Kept the teacher's
Builtin{Name, Callback}-as-a-registered-table shape, generalized from a
package-keyed registry to a single flat table since SlayScript has no
import/package syntax of its own.
*/
package std

import (
	"github.com/akashmaji946/slayscript/objects"
	"github.com/akashmaji946/slayscript/scope"
)

// entry pairs a native's name and arity with its handler, mirroring the
// teacher's Builtin{Name, Callback} record.
type entry struct {
	name  string
	arity objects.Arity
	fn    objects.NativeHandler
}

// catalog is the full SPEC_FULL.md §6.4 table. Built up by each concern's
// file via its own init-time append, the way the teacher split builtins
// across one file per domain and registered them all into one slice.
var catalog []entry

func add(name string, arity objects.Arity, fn objects.NativeHandler) {
	catalog = append(catalog, entry{name: name, arity: arity, fn: fn})
}

// Register binds every native in the catalog into env as a
// *objects.NativeFunction, the root-environment registration spec.md §2
// item 6 calls for. Register takes no runtime: each handler receives the
// objects.Runtime at call time, from the evaluator making the call.
func Register(env *scope.Scope) {
	for _, e := range catalog {
		handler := e.fn
		env.Define(e.name, &objects.NativeFunction{
			Name:    e.name,
			ArityOf: e.arity,
			Handler: handler,
		}, true)
	}
}
