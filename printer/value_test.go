/*
File    : slayscript/printer/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package printer

import (
	"testing"

	"github.com/akashmaji946/slayscript/objects"
	"github.com/stretchr/testify/assert"
)

func TestSprint_ScalarsUseNaturalForm(t *testing.T) {
	assert.Equal(t, "42", Sprint(&objects.Integer{Value: 42}))
	assert.Equal(t, "hi", Sprint(&objects.String{Value: "hi"}))
	assert.Equal(t, "true", Sprint(&objects.Boolean{Value: true}))
}

func TestSprint_NestedTomeAndGrimoire(t *testing.T) {
	dict := objects.NewDict()
	_ = dict.Set(&objects.String{Value: "k"}, &objects.Integer{Value: 1})
	list := &objects.List{Elements: []objects.GoMixObject{&objects.Integer{Value: 1}, dict}}

	assert.Equal(t, `tome [1, grimoire {k: 1}]`, Sprint(list))
}

func TestSprint_SelfReferentialListElidesAsCycle(t *testing.T) {
	list := &objects.List{Elements: []objects.GoMixObject{&objects.Integer{Value: 1}}}
	list.Elements = append(list.Elements, list)

	assert.Equal(t, "tome [1, ...cycle...]", Sprint(list))
}

func TestSprint_SelfReferentialGrimoireElidesAsCycle(t *testing.T) {
	dict := objects.NewDict()
	_ = dict.Set(&objects.String{Value: "self"}, dict)

	assert.Equal(t, "grimoire {self: ...cycle...}", Sprint(dict))
}
