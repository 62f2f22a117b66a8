/*
File    : slayscript/function/function_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/slayscript/objects"
	"github.com/akashmaji946/slayscript/parser"
	"github.com/akashmaji946/slayscript/scope"
)

func TestUserFunction_TypeNameMatchesAutoSpeak(t *testing.T) {
	env := scope.NewScope(nil)
	spell := &UserFunction{Name: "bump", Params: []string{"c"}, Body: &parser.BlockStmt{}, CapturedEnv: env}
	incant := &UserFunction{Name: "greet", Params: []string{"name"}, Body: &parser.BlockStmt{}, CapturedEnv: env, AutoSpeak: true}

	assert.Equal(t, objects.GoMixType("spell"), spell.GetType())
	assert.Equal(t, objects.GoMixType("incantation"), incant.GetType())
	assert.Equal(t, "<spell bump>", spell.ToString())
	assert.Equal(t, "<incantation greet>", incant.ToString())
}

func TestUserFunction_CapturesEnvironmentByReference(t *testing.T) {
	env := scope.NewScope(nil)
	env.Define("c", &objects.Integer{Value: 0}, false)
	fn := &UserFunction{Name: "bump", Params: nil, Body: &parser.BlockStmt{}, CapturedEnv: env}

	env.Assign("c", &objects.Integer{Value: 1})
	v, _ := fn.CapturedEnv.Get("c")
	assert.Equal(t, int64(1), v.(*objects.Integer).Value)
}

func TestUserFunction_CallArityIsExact(t *testing.T) {
	fn := &UserFunction{Name: "add", Params: []string{"a", "b"}}
	assert.Equal(t, objects.ExactArity(2), fn.CallArity())
	assert.True(t, fn.CallArity().Accepts(2))
	assert.False(t, fn.CallArity().Accepts(1))
}
