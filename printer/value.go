/*
File    : slayscript/printer/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

ValuePrinter renders a runtime value the way spec.md §6's pretty-printer
table wants: scalars via their natural textual form, tome/grimoire
recursively, with cycle detection (DESIGN NOTES §9) so a self-referential
list or dict prints "...cycle..." instead of looping forever — the one
thing objects.List/Dict.ToString() does not attempt on its own.
*/
package printer

import (
	"reflect"
	"strings"

	"github.com/akashmaji946/slayscript/objects"
)

// ValuePrinter tracks which List/Dict pointers are currently being printed,
// so a value reachable from itself prints as a cycle marker instead of
// recursing forever.
type ValuePrinter struct {
	visiting map[uintptr]bool
}

// NewValuePrinter builds a fresh printer with no values in progress.
func NewValuePrinter() *ValuePrinter {
	return &ValuePrinter{visiting: make(map[uintptr]bool)}
}

// Sprint renders v, eliding any cyclic tome/grimoire reference.
func (p *ValuePrinter) Sprint(v objects.GoMixObject) string {
	var b strings.Builder
	p.write(&b, v)
	return b.String()
}

// Sprint is the package-level convenience form for a one-shot render.
func Sprint(v objects.GoMixObject) string {
	return NewValuePrinter().Sprint(v)
}

func (p *ValuePrinter) write(b *strings.Builder, v objects.GoMixObject) {
	switch val := v.(type) {
	case *objects.List:
		addr := reflect.ValueOf(val).Pointer()
		if p.visiting[addr] {
			b.WriteString("...cycle...")
			return
		}
		p.visiting[addr] = true
		defer delete(p.visiting, addr)

		b.WriteString("tome [")
		for i, el := range val.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			p.write(b, el)
		}
		b.WriteString("]")
	case *objects.Dict:
		addr := reflect.ValueOf(val).Pointer()
		if p.visiting[addr] {
			b.WriteString("...cycle...")
			return
		}
		p.visiting[addr] = true
		defer delete(p.visiting, addr)

		b.WriteString("grimoire {")
		for i, key := range val.Keys {
			if i > 0 {
				b.WriteString(", ")
			}
			value, _, _ := val.Get(key)
			b.WriteString(key.ToString())
			b.WriteString(": ")
			p.write(b, value)
		}
		b.WriteString("}")
	default:
		b.WriteString(v.ToString())
	}
}
