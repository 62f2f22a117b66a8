/*
File    : slayscript/scope/scope_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/slayscript/objects"
)

func TestScope_DefineIsLocalOnly(t *testing.T) {
	parent := NewScope(nil)
	child := NewScope(parent)

	child.Define("x", &objects.Integer{Value: 1}, false)

	assert.True(t, child.ExistsLocal("x"))
	assert.False(t, parent.ExistsLocal("x"))
	assert.True(t, parent.Exists("x") == false)
}

func TestScope_GetTraversesParentChain(t *testing.T) {
	parent := NewScope(nil)
	parent.Define("x", &objects.Integer{Value: 42}, false)
	child := NewScope(parent)

	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(42), v.(*objects.Integer).Value)
}

func TestScope_AssignUpdatesOwningScope(t *testing.T) {
	parent := NewScope(nil)
	parent.Define("x", &objects.Integer{Value: 1}, false)
	child := NewScope(parent)

	owner, ok := child.Assign("x", &objects.Integer{Value: 2})
	assert.True(t, ok)
	assert.Same(t, parent, owner)

	v, _ := parent.Get("x")
	assert.Equal(t, int64(2), v.(*objects.Integer).Value)
}

func TestScope_AssignUnboundNameFails(t *testing.T) {
	s := NewScope(nil)
	_, ok := s.Assign("nope", &objects.Integer{Value: 1})
	assert.False(t, ok)
}

func TestScope_IsConstTraversesChain(t *testing.T) {
	parent := NewScope(nil)
	parent.Define("PI", &objects.Integer{Value: 3}, true)
	child := NewScope(parent)

	assert.True(t, child.IsConst("PI"))
	assert.False(t, child.IsConst("other"))
}

func TestScope_DeleteRemovesFromOwner(t *testing.T) {
	parent := NewScope(nil)
	parent.Define("x", &objects.Integer{Value: 1}, false)
	child := NewScope(parent)

	ok := child.Delete("x")
	assert.True(t, ok)
	assert.False(t, parent.Exists("x"))
}

func TestScope_FreshPerBlockNeverShadowsByMutation(t *testing.T) {
	outer := NewScope(nil)
	outer.Define("x", &objects.Integer{Value: 1}, false)

	block := NewScope(outer)
	block.Define("x", &objects.Integer{Value: 99}, false)

	v, _ := outer.Get("x")
	assert.Equal(t, int64(1), v.(*objects.Integer).Value)
	v, _ = block.Get("x")
	assert.Equal(t, int64(99), v.(*objects.Integer).Value)
}
