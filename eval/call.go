/*
File    : slayscript/eval/call.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

call implements spec.md §4.3's "Calls" rule: the callee must be a Callable,
arity must match, and a user function runs in a new scope parented on its
captured environment.
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/slayscript/function"
	"github.com/akashmaji946/slayscript/objects"
	"github.com/akashmaji946/slayscript/scope"
	"github.com/akashmaji946/slayscript/slayerr"
)

func (e *Evaluator) call(line, col int, callee objects.GoMixObject, args []objects.GoMixObject) (objects.GoMixObject, error) {
	callable, ok := callee.(objects.Callable)
	if !ok {
		return nil, slayerr.New(slayerr.ForbiddenMagic, fmt.Sprintf("%s is not callable", callee.GetType()), line, col)
	}
	if !callable.CallArity().Accepts(len(args)) {
		return nil, slayerr.New(slayerr.ForbiddenMagic,
			fmt.Sprintf("%s expects %s argument(s), got %d", callable.CallName(), callable.CallArity(), len(args)), line, col)
	}

	switch fn := callable.(type) {
	case *objects.NativeFunction:
		result, err := fn.Handler(e, args)
		if err != nil {
			return nil, err
		}
		return result, nil
	case *function.UserFunction:
		return e.callUserFunction(fn, args)
	default:
		return nil, slayerr.New(slayerr.ForbiddenMagic, fmt.Sprintf("%s is not callable", callee.GetType()), line, col)
	}
}

func (e *Evaluator) callUserFunction(fn *function.UserFunction, args []objects.GoMixObject) (objects.GoMixObject, error) {
	callScope := scope.NewScope(fn.CapturedEnv)
	for i, param := range fn.Params {
		callScope.Define(param, args[i], false)
	}

	savedScope := e.Scp
	e.Scp = callScope
	result, err := e.evalBlock(fn.Body)
	e.Scp = savedScope
	if err != nil {
		return nil, err
	}

	var retValue objects.GoMixObject = objects.TheVoid
	if rv, ok := result.(*objects.ReturnValue); ok {
		retValue = rv.Value
	}

	if fn.AutoSpeak && !isVoid(retValue) {
		if err := e.Speak(retValue); err != nil {
			return nil, err
		}
	}
	return retValue, nil
}

func isVoid(v objects.GoMixObject) bool {
	_, ok := v.(*objects.Void)
	return ok
}
