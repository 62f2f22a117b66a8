/*
File    : slayscript/parser/helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/slayscript/objects"
	"github.com/akashmaji946/slayscript/slayerr"
)

func stringValue(s string) objects.GoMixObject { return &objects.String{Value: s} }

// intValue/floatValue convert an already-lexed numeric literal. The lexer
// guarantees these parse cleanly, so a conversion error here would mean a
// lexer bug, not a user mistake — it is not worth a taxonomy error.
func intValue(lit string) objects.GoMixObject {
	n, _ := strconv.ParseInt(lit, 10, 64)
	return &objects.Integer{Value: n}
}

func floatValue(lit string) objects.GoMixObject {
	f, _ := strconv.ParseFloat(lit, 64)
	return &objects.Float{Value: f}
}

// positionedMiscastErr builds a SpellMiscast error from an already-known
// line/column, for cases where the mistake belongs to a node parsed a
// token or two earlier than the parser's current position.
func positionedMiscastErr(line, col int, message string) error {
	return slayerr.New(slayerr.SpellMiscast, message, line, col)
}
