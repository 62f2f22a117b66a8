/*
File    : slayscript/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConsumeToken is a table-test case: source in, expected token kinds and
// literals out (position fields are asserted separately).
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func stripPositions(toks []Token) []Token {
	out := make([]Token, len(toks))
	for i, tok := range toks {
		out[i] = Token{Type: tok.Type, Literal: tok.Literal}
	}
	return out
}

func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `conjure x as 2 ** 10`,
			ExpectedTokens: []Token{
				{Type: CONJURE_KEY, Literal: "conjure"},
				{Type: IDENT_TYPE, Literal: "x"},
				{Type: AS_KEY, Literal: "as"},
				{Type: INT_LIT, Literal: "2"},
				{Type: POW_OP, Literal: "**"},
				{Type: INT_LIT, Literal: "10"},
				{Type: EOF_TYPE, Literal: "EOF"},
			},
		},
		{
			Input: `3.14 * 2`,
			ExpectedTokens: []Token{
				{Type: FLOAT_LIT, Literal: "3.14"},
				{Type: MUL_OP, Literal: "*"},
				{Type: INT_LIT, Literal: "2"},
				{Type: EOF_TYPE, Literal: "EOF"},
			},
		},
		{
			Input: `n atleast 3 and not isnt`,
			ExpectedTokens: []Token{
				{Type: IDENT_TYPE, Literal: "n"},
				{Type: ATLEAST_KEY, Literal: "atleast"},
				{Type: INT_LIT, Literal: "3"},
				{Type: AND_KEY, Literal: "and"},
				{Type: NOT_KEY, Literal: "not"},
				{Type: ISNT_KEY, Literal: "isnt"},
				{Type: EOF_TYPE, Literal: "EOF"},
			},
		},
	}

	for _, tc := range tests {
		lex := NewLexer(tc.Input)
		toks, err := lex.ConsumeTokens()
		assert.NoError(t, err)
		assert.Equal(t, tc.ExpectedTokens, stripPositions(toks))
	}
}

// Newlines are tokenized when and only when bracket-nesting depth is zero at
// the linefeed (spec.md §8).
func TestLexer_NewlineSuppressedInsideBrackets(t *testing.T) {
	lex := NewLexer("tome [\n1,\n2\n]\nconjure")
	toks, err := lex.ConsumeTokens()
	assert.NoError(t, err)

	var kinds []TokenType
	for _, tok := range toks {
		kinds = append(kinds, tok.Type)
	}
	assert.Equal(t, []TokenType{
		TOME_KEY, LEFT_BRACKET, INT_LIT, COMMA_DELIM, INT_LIT,
		RIGHT_BRACKET, NEWLINE_TYPE, CONJURE_KEY, EOF_TYPE,
	}, kinds)
}

// For every emitted token, (line, column) points at the first character of
// its lexeme in the source (spec.md §8).
func TestLexer_TokenPositions(t *testing.T) {
	lex := NewLexer("conjure x as 1")
	toks, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 1, toks[0].Column)
	assert.Equal(t, 9, toks[1].Column) // "x" starts at column 9
}

func TestLexer_StringEscapes(t *testing.T) {
	lex := NewLexer(`"line1\nline2\t\\end"`)
	tok, err := lex.NextToken()
	assert.NoError(t, err)
	assert.Equal(t, STRING_LIT, tok.Type)
	assert.Equal(t, "line1\nline2\t\\end", tok.Literal)
}

func TestLexer_LineCommentAndBlockComment(t *testing.T) {
	lex := NewLexer("conjure x as 1 ~ trailing comment\n~~ a block\ncomment ~~\nconjure y as 2")
	toks, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	var kinds []TokenType
	for _, tok := range toks {
		kinds = append(kinds, tok.Type)
	}
	assert.Equal(t, []TokenType{
		CONJURE_KEY, IDENT_TYPE, AS_KEY, INT_LIT, NEWLINE_TYPE,
		NEWLINE_TYPE,
		CONJURE_KEY, IDENT_TYPE, AS_KEY, INT_LIT, EOF_TYPE,
	}, kinds)
}

func TestLexer_UnterminatedStringIsDarkMagic(t *testing.T) {
	lex := NewLexer(`"never closed`)
	_, err := lex.NextToken()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Dark Magic Detected!")
}

func TestLexer_UnterminatedBlockCommentIsDarkMagic(t *testing.T) {
	lex := NewLexer("~~ never closed")
	_, err := lex.NextToken()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Dark Magic Detected!")
}

func TestLexer_UnexpectedCharacterIsDarkMagic(t *testing.T) {
	lex := NewLexer("@")
	_, err := lex.NextToken()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Dark Magic Detected!")
}
