/*
File    : slayscript/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/slayscript/std"
	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	e := NewEvaluator()
	std.Register(e.Global)
	var buf bytes.Buffer
	e.Out = &buf
	_, err := e.Run(src)
	return buf.String(), err
}

func TestEval_PowerAndScribeLine(t *testing.T) {
	out, err := run(t, "conjure x as 2 ** 10\nscribe_line(x)")
	assert.NoError(t, err)
	assert.Equal(t, "1024\n", out)
}

func TestEval_BlockScopeHygiene(t *testing.T) {
	src := "conjure x as 1\nprophecy reveals x is 1 { conjure x as 99 }\nscribe_line(x)"
	out, err := run(t, src)
	assert.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestEval_ClosureObservesMutation(t *testing.T) {
	src := "spell make() { conjure c as 0\n  spell bump() { transmute c as c + 1\n    cast c }\n  cast bump }\n" +
		"conjure b as make()\nscribe_line(b())\nscribe_line(b())"
	out, err := run(t, src)
	assert.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestEval_PatrolUntilLoopsWhileFalsy(t *testing.T) {
	src := "conjure n as 0\npatrol until n atleast 3 { transmute n as n + 1 }\nscribe_line(n)"
	out, err := run(t, src)
	assert.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestEval_ConstantReassignIsProphecyViolation(t *testing.T) {
	_, err := run(t, "const prophecy PI as 3\ntransmute PI as 4")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Prophecy Violation!")
}

func TestEval_ListAliasingSharesMutation(t *testing.T) {
	src := "conjure a as tome [1,2,3]\nconjure b as a\ntransmute b[0] as 99\nscribe_line(a[0])"
	out, err := run(t, src)
	assert.NoError(t, err)
	assert.Equal(t, "99\n", out)
}

func TestEval_UnaryMinusBindsLooserThanPower(t *testing.T) {
	out, err := run(t, "scribe_line(-2 ** 2)")
	assert.NoError(t, err)
	assert.Equal(t, "-4\n", out)
}

func TestEval_HuntEachOverTome(t *testing.T) {
	out, err := run(t, "conjure total as 0\nhunt each item in tome [1, 2, 3] { transmute total as total + item }\nscribe_line(total)")
	assert.NoError(t, err)
	assert.Equal(t, "6\n", out)
}

func TestEval_MemberAccessIsDictSugar(t *testing.T) {
	out, err := run(t, `conjure d as grimoire {"name": "Gandalf"}` + "\nscribe_line(d.name)")
	assert.NoError(t, err)
	assert.Equal(t, "Gandalf\n", out)
}

func TestEval_UndefinedNameIsUnknownIncantation(t *testing.T) {
	_, err := run(t, "scribe_line(nope)")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown Incantation!")
}

func TestEval_CallingNonCallableIsForbiddenMagic(t *testing.T) {
	_, err := run(t, "conjure x as 1\nscribe_line(x())")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Forbidden Magic!")
}

func TestEval_IncantationAutoSpeaksReturnValue(t *testing.T) {
	out, err := run(t, `incantation greet() { cast "hi" }` + "\ngreet()")
	assert.NoError(t, err)
	assert.Equal(t, "hi\n", out)
}

func TestEval_BreakAndContinue(t *testing.T) {
	src := "conjure seen as tome []\nhunt each item in tome [1,2,3,4] { prophecy reveals item is 2 { continue }\n  prophecy reveals item is 4 { break }\n  transmute seen as seen + tome [item] }\nscribe_line(seen)"
	out, err := run(t, src)
	assert.NoError(t, err)
	assert.Equal(t, "tome [1, 3]\n", out)
}

func TestEval_AndOrReturnBooleanNotOperand(t *testing.T) {
	out, err := run(t, "scribe_line(1 and 2)")
	assert.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "scribe_line(0 and 2)")
	assert.NoError(t, err)
	assert.Equal(t, "false\n", out)

	out, err = run(t, "scribe_line(0 or 2)")
	assert.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "scribe_line((1 and 1) is true)")
	assert.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestEval_NegativeListIndexIsForbiddenMagic(t *testing.T) {
	_, err := run(t, "conjure a as tome [1,2,3]\nscribe_line(a[-1])")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Forbidden Magic!")
}

func TestEval_NegativeStringIndexIsForbiddenMagic(t *testing.T) {
	_, err := run(t, `conjure s as "hello"` + "\nscribe_line(s[-1])")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Forbidden Magic!")
}

func TestEval_NegativeIndexAssignIsForbiddenMagic(t *testing.T) {
	_, err := run(t, "conjure a as tome [1,2,3]\ntransmute a[-1] as 9")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Forbidden Magic!")
}
