/*
File    : slayscript/std/template.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

render_rune: renders html/template against a grimoire, grounded on the
teacher's std/format.go string-formatting concern, generalized to a real
templating engine since the SPEC_FULL.md table calls for one.
*/
package std

import (
	"html/template"
	"strings"

	"github.com/akashmaji946/slayscript/objects"
	"github.com/akashmaji946/slayscript/slayerr"
)

func init() {
	add("render_rune", objects.ExactArity(2), renderRune)
}

func renderRune(rt objects.Runtime, args []objects.GoMixObject) (objects.GoMixObject, error) {
	tmplSrc, ok := args[0].(*objects.String)
	if !ok {
		return nil, slayerr.New(slayerr.OracleSilent, "render_rune expects a scroll template", 0, 0)
	}
	data, ok := args[1].(*objects.Dict)
	if !ok {
		return nil, slayerr.New(slayerr.OracleSilent, "render_rune expects a grimoire of data", 0, 0)
	}

	tmpl, err := template.New("rune").Parse(tmplSrc.Value)
	if err != nil {
		return nil, slayerr.New(slayerr.OracleSilent, err.Error(), 0, 0)
	}

	fields := make(map[string]interface{}, len(data.Keys))
	for _, key := range data.Keys {
		val, _, _ := data.Get(key)
		fields[key.ToString()] = val.ToString()
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, fields); err != nil {
		return nil, slayerr.New(slayerr.OracleSilent, err.Error(), 0, 0)
	}
	return &objects.String{Value: out.String()}, nil
}
