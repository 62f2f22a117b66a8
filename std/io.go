/*
File    : slayscript/std/io.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

scribe_line/scribe/measure: the three natives with no fallible OS
resource behind them, grounded on original_source/slayscript/builtins.py's
scribe_line/scribe/measure.
*/
package std

import (
	"fmt"

	"github.com/akashmaji946/slayscript/objects"
	"github.com/akashmaji946/slayscript/printer"
	"github.com/akashmaji946/slayscript/slayerr"
)

func init() {
	add("scribe_line", objects.ExactArity(1), scribeLine)
	add("scribe", objects.ExactArity(1), scribe)
	add("measure", objects.ExactArity(1), measure)
}

func scribeLine(rt objects.Runtime, args []objects.GoMixObject) (objects.GoMixObject, error) {
	if _, err := fmt.Fprintln(rt.Writer(), printer.Sprint(args[0])); err != nil {
		return nil, err
	}
	return objects.TheVoid, nil
}

func scribe(rt objects.Runtime, args []objects.GoMixObject) (objects.GoMixObject, error) {
	if _, err := fmt.Fprint(rt.Writer(), printer.Sprint(args[0])); err != nil {
		return nil, err
	}
	return objects.TheVoid, nil
}

func measure(rt objects.Runtime, args []objects.GoMixObject) (objects.GoMixObject, error) {
	switch v := args[0].(type) {
	case *objects.String:
		return &objects.Integer{Value: int64(len([]rune(v.Value)))}, nil
	case *objects.List:
		return &objects.Integer{Value: int64(len(v.Elements))}, nil
	case *objects.Dict:
		return &objects.Integer{Value: int64(len(v.Keys))}, nil
	default:
		return nil, slayerr.New(slayerr.ForbiddenMagic,
			fmt.Sprintf("measure: cannot measure %s", args[0].GetType()), 0, 0)
	}
}
