/*
File    : slayscript/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_SingleLineIsImmediatelyBalanced(t *testing.T) {
	var b buffer
	b.add("conjure x as 1")
	assert.True(t, b.balanced())
	assert.Equal(t, "conjure x as 1", b.source())
}

func TestBuffer_OpenBraceWaitsForClose(t *testing.T) {
	var b buffer
	b.add("incantation greet() {")
	assert.False(t, b.balanced())
	assert.True(t, b.open())

	b.add(`  cast "hi"`)
	assert.False(t, b.balanced())

	b.add("}")
	assert.True(t, b.balanced())
	assert.Equal(t, "incantation greet() {\n  cast \"hi\"\n}", b.source())
}

func TestBuffer_NestedBlocksTrackDepth(t *testing.T) {
	var b buffer
	b.add("prophecy reveals true {")
	b.add("  patrol until false {")
	assert.False(t, b.balanced())
	b.add("  }")
	assert.False(t, b.balanced())
	b.add("}")
	assert.True(t, b.balanced())
}

func TestBuffer_ResetClearsLinesAndDepth(t *testing.T) {
	var b buffer
	b.add("spell f() {")
	b.reset()
	assert.False(t, b.open())
	assert.True(t, b.balanced())
	assert.Equal(t, "", b.source())
}
