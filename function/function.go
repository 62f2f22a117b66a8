/*
File    : slayscript/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

UserFunction is the user-defined half of the Callable sub-variant spec.md
§3 describes (the other half, NativeFunction, lives in objects). It
references the current scope directly, not a copy, at declaration time —
closures must observe later mutations of captured variables (spec.md §8
scenario 3: repeated calls to a returned `bump` observe `c`'s mutation each
time), which a snapshot copy would break.
*/
package function

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/slayscript/objects"
	"github.com/akashmaji946/slayscript/parser"
	"github.com/akashmaji946/slayscript/scope"
)

// UserFunction is a `spell` (AutoSpeak false) or `incantation` (AutoSpeak
// true) value, capturing its declaration environment for closures.
type UserFunction struct {
	Name        string
	Params      []string
	Body        *parser.BlockStmt
	CapturedEnv *scope.Scope
	AutoSpeak   bool
}

func (f *UserFunction) GetType() objects.GoMixType {
	if f.AutoSpeak {
		return "incantation"
	}
	return "spell"
}

func (f *UserFunction) ToString() string {
	if f.AutoSpeak {
		return fmt.Sprintf("<incantation %s>", f.Name)
	}
	return fmt.Sprintf("<spell %s>", f.Name)
}

func (f *UserFunction) ToObject() string {
	return fmt.Sprintf("<%s %s(%s)>", f.GetType(), f.Name, strings.Join(f.Params, ", "))
}

// CallArity implements objects.Callable: a UserFunction always requires
// exactly len(Params) arguments (spec.md has no variadic user functions).
func (f *UserFunction) CallArity() objects.Arity { return objects.ExactArity(len(f.Params)) }

func (f *UserFunction) CallName() string { return f.Name }

var _ objects.Callable = (*UserFunction)(nil)
