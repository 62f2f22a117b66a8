/*
File    : slayscript/printer/tree_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package printer

import (
	"testing"

	"github.com/akashmaji946/slayscript/parser"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

func TestDump_MatchesGoldenTree(t *testing.T) {
	prog, err := parser.Parse("conjure x as 2 ** 10\nprophecy reveals x exceeds 5 { scribe_line(x) } fate decrees { scribe_line(0) }")
	require.NoError(t, err)

	snaps.MatchSnapshot(t, Dump(prog))
}

func TestDump_FuncDeclShowsParamsAndAutoSpeak(t *testing.T) {
	prog, err := parser.Parse("incantation greet(name) { cast name }")
	require.NoError(t, err)

	snaps.MatchSnapshot(t, Dump(prog))
}
