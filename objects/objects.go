/*
File    : slayscript/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package objects defines the tagged Value variant that is SlayScript's
runtime universe (spec.md §3): Integer, Float, String, Boolean, Void, List,
Dict, plus the Callable/Opaque and control-signal kinds defined in
native.go and signals.go. Every concrete type implements GoMixObject, kept
from the teacher's naming for the interface itself.
*/
package objects

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/slayscript/slayerr"
)

// GoMixType tags the runtime variant of a GoMixObject.
type GoMixType string

const (
	IntegerType        GoMixType = "rune"
	FloatType          GoMixType = "potion"
	StringType         GoMixType = "scroll"
	BooleanType        GoMixType = "charm"
	VoidType           GoMixType = "void"
	ListType           GoMixType = "tome"
	DictType           GoMixType = "grimoire"
	NativeFunctionType GoMixType = "builtin"
	OpaqueType         GoMixType = "opaque"
	ReturnType         GoMixType = "return-signal"
	BreakType          GoMixType = "break-signal"
	ContinueType       GoMixType = "continue-signal"
)

// GoMixObject is the interface every runtime value implements.
type GoMixObject interface {
	GetType() GoMixType
	ToString() string
	ToObject() string
}

// Integer is a signed 64-bit "rune" value.
type Integer struct{ Value int64 }

func (i *Integer) GetType() GoMixType { return IntegerType }
func (i *Integer) ToString() string   { return fmt.Sprintf("%d", i.Value) }
func (i *Integer) ToObject() string   { return fmt.Sprintf("<rune(%d)>", i.Value) }

// Float is an IEEE-754 double "potion" value.
type Float struct{ Value float64 }

func (f *Float) GetType() GoMixType { return FloatType }
func (f *Float) ToString() string   { return formatFloat(f.Value) }
func (f *Float) ToObject() string   { return fmt.Sprintf("<potion(%s)>", formatFloat(f.Value)) }

// formatFloat renders the shortest "%g" form, without the trailing zeros
// fmt.Sprintf("%f", ...) would leave, and appends ".0" to a whole value so
// a potion stays distinguishable from a rune: 2.5 prints as "2.5", 2.0 as
// "2.0".
func formatFloat(v float64) string {
	s := fmt.Sprintf("%g", v)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// String is an immutable-when-shared "scroll" value.
type String struct{ Value string }

func (s *String) GetType() GoMixType { return StringType }
func (s *String) ToString() string   { return s.Value }
func (s *String) ToObject() string   { return fmt.Sprintf("<scroll(%q)>", s.Value) }

// Boolean is a "charm" value.
type Boolean struct{ Value bool }

func (b *Boolean) GetType() GoMixType { return BooleanType }
func (b *Boolean) ToString() string   { return fmt.Sprintf("%t", b.Value) }
func (b *Boolean) ToObject() string   { return fmt.Sprintf("<charm(%t)>", b.Value) }

// Void is the single null/unit value.
type Void struct{}

func (v *Void) GetType() GoMixType { return VoidType }
func (v *Void) ToString() string   { return "void" }
func (v *Void) ToObject() string   { return "<void>" }

// TheVoid is the shared Void instance; Void carries no state so every
// evaluator result that needs "no value" can point at the same one.
var TheVoid = &Void{}

// List is a mutable ordered "tome". It is always held behind a pointer so
// that assigning a List to another binding aliases the same backing slice —
// spec.md §3's "mutation through any alias is observable through all
// aliases" invariant falls out of normal Go pointer semantics.
type List struct{ Elements []GoMixObject }

func (l *List) GetType() GoMixType { return ListType }
func (l *List) ToString() string {
	var b strings.Builder
	b.WriteString("tome [")
	for i, el := range l.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(el.ToString())
	}
	b.WriteString("]")
	return b.String()
}
func (l *List) ToObject() string { return "<" + l.ToString() + ">" }

// Dict is a mutable "grimoire". Keys are, in practice, strings (spec.md §3)
// but the model admits any hashable scalar (Integer, Float, Boolean,
// String); normalizeKey canonicalizes those into the internal string map
// key while Keys preserves the original key Values for pretty-printing and
// insertion order.
type Dict struct {
	Keys   []GoMixObject
	Values map[string]GoMixObject
	index  map[string]int
}

// NewDict builds an empty grimoire.
func NewDict() *Dict {
	return &Dict{Values: map[string]GoMixObject{}, index: map[string]int{}}
}

func (d *Dict) GetType() GoMixType { return DictType }
func (d *Dict) ToString() string {
	var b strings.Builder
	b.WriteString("grimoire {")
	for i, key := range d.Keys {
		if i > 0 {
			b.WriteString(", ")
		}
		nk, _ := normalizeKey(key)
		b.WriteString(key.ToString())
		b.WriteString(": ")
		b.WriteString(d.Values[nk].ToString())
	}
	b.WriteString("}")
	return b.String()
}
func (d *Dict) ToObject() string { return "<" + d.ToString() + ">" }

// normalizeKey canonicalizes a scalar Value into the string used as the
// backing Go map key. Non-scalar (List, Dict, Callable, Opaque) keys are
// unhashable and raise ForbiddenMagic.
func normalizeKey(key GoMixObject) (string, error) {
	switch k := key.(type) {
	case *String:
		return "s:" + k.Value, nil
	case *Integer:
		return fmt.Sprintf("i:%d", k.Value), nil
	case *Float:
		return fmt.Sprintf("f:%s", formatFloat(k.Value)), nil
	case *Boolean:
		return fmt.Sprintf("b:%t", k.Value), nil
	default:
		return "", slayerr.New(slayerr.ForbiddenMagic, fmt.Sprintf("cannot use %s as a grimoire key", key.GetType()), 0, 0)
	}
}

// Set records value under key, preserving first-insertion order on repeated
// keys (a later Set of an existing key overwrites the value in place).
func (d *Dict) Set(key, value GoMixObject) error {
	nk, err := normalizeKey(key)
	if err != nil {
		return err
	}
	if _, exists := d.index[nk]; !exists {
		d.index[nk] = len(d.Keys)
		d.Keys = append(d.Keys, key)
	}
	d.Values[nk] = value
	return nil
}

// Get returns the value stored under key and whether it was present.
func (d *Dict) Get(key GoMixObject) (GoMixObject, bool, error) {
	nk, err := normalizeKey(key)
	if err != nil {
		return nil, false, err
	}
	v, ok := d.Values[nk]
	return v, ok, nil
}

// Delete removes key from the grimoire, if present.
func (d *Dict) Delete(key GoMixObject) error {
	nk, err := normalizeKey(key)
	if err != nil {
		return err
	}
	pos, ok := d.index[nk]
	if !ok {
		return nil
	}
	d.Keys = append(d.Keys[:pos], d.Keys[pos+1:]...)
	delete(d.Values, nk)
	delete(d.index, nk)
	for k, i := range d.index {
		if i > pos {
			d.index[k] = i - 1
		}
	}
	return nil
}

// Truthy implements spec.md §4.3's truthiness table: Void is false; Bool is
// itself; numbers are true iff non-zero; strings/lists/dicts are true iff
// non-empty; everything else (callables, opaques) is true.
func Truthy(v GoMixObject) bool {
	switch val := v.(type) {
	case *Void:
		return false
	case *Boolean:
		return val.Value
	case *Integer:
		return val.Value != 0
	case *Float:
		return val.Value != 0
	case *String:
		return val.Value != ""
	case *List:
		return len(val.Elements) > 0
	case *Dict:
		return len(val.Keys) > 0
	default:
		return true
	}
}

// Equals implements structural equality for `is`/`isnt` (DESIGN NOTES open
// question: structural, not identity, per spec.md §9).
func Equals(a, b GoMixObject) bool {
	switch av := a.(type) {
	case *Integer:
		switch bv := b.(type) {
		case *Integer:
			return av.Value == bv.Value
		case *Float:
			return float64(av.Value) == bv.Value
		}
		return false
	case *Float:
		switch bv := b.(type) {
		case *Integer:
			return av.Value == float64(bv.Value)
		case *Float:
			return av.Value == bv.Value
		}
		return false
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *Void:
		_, ok := b.(*Void)
		return ok
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equals(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *Dict:
		bv, ok := b.(*Dict)
		if !ok || len(av.Keys) != len(bv.Keys) {
			return false
		}
		for _, key := range av.Keys {
			aval, _, _ := av.Get(key)
			bval, present, _ := bv.Get(key)
			if !present || !Equals(aval, bval) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// Compare orders two scalars for `exceeds`/`under`/`atleast`/`atmost`:
// numeric comparison for numbers, lexicographic for strings. Returns
// ForbiddenMagic for any other operand pairing.
func Compare(a, b GoMixObject) (int, error) {
	an, aIsNum := numericValue(a)
	bn, bIsNum := numericValue(b)
	if aIsNum && bIsNum {
		switch {
		case an < bn:
			return -1, nil
		case an > bn:
			return 1, nil
		default:
			return 0, nil
		}
	}
	as, aIsStr := a.(*String)
	bs, bIsStr := b.(*String)
	if aIsStr && bIsStr {
		return strings.Compare(as.Value, bs.Value), nil
	}
	return 0, slayerr.New(slayerr.ForbiddenMagic,
		fmt.Sprintf("cannot compare %s and %s", a.GetType(), b.GetType()), 0, 0)
}

func numericValue(v GoMixObject) (float64, bool) {
	switch n := v.(type) {
	case *Integer:
		return float64(n.Value), true
	case *Float:
		return n.Value, true
	default:
		return 0, false
	}
}
