/*
File    : slayscript/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"fmt"

	"github.com/akashmaji946/slayscript/slayerr"
)

// Lexer scans SlayScript source text into a token stream. It tracks a
// cursor, line/column, and the bracket-nesting depth used to decide when a
// linefeed is a statement boundary versus just whitespace inside a
// multi-line list/dict/call literal.
type Lexer struct {
	Src          string
	Current      byte
	Position     int
	SrcLength    int
	Line         int
	Column       int
	BracketDepth int
}

// NewLexer initializes a Lexer positioned at line 1, column 1.
func NewLexer(src string) Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
}

// Peek looks at the next byte without consuming it.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance moves one byte forward, updating Position, Column, and Current.
// Callers handle '\n' specially (see consumeNewline) since a linefeed resets
// Column and bumps Line rather than merely incrementing Column.
func (lex *Lexer) Advance() {
	lex.Position++
	lex.Column++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// consumeNewline swallows the linefeed at the cursor and returns a NEWLINE
// token stamped with the position the linefeed itself occupied.
func (lex *Lexer) consumeNewline() Token {
	line, col := lex.Line, lex.Column
	lex.Position++
	lex.Line++
	lex.Column = 1
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
	return NewTokenWithMetadata(NEWLINE_TYPE, "\n", line, col)
}

// skipSpacesTabsAndComments consumes space/tab runs, `~` line comments, and
// `~~ ... ~~` block comments. It does not consume linefeeds — those are
// meaningful tokens handled by NextToken. Returns a DarkMagicDetected error
// for an unterminated block comment.
func (lex *Lexer) skipSpacesTabsAndComments() error {
	for {
		switch {
		case lex.Current == ' ' || lex.Current == '\t' || lex.Current == '\r':
			lex.Advance()
		case lex.Current == '~' && lex.Peek() == '~':
			if err := lex.skipBlockComment(); err != nil {
				return err
			}
		case lex.Current == '~':
			lex.skipLineComment()
		default:
			return nil
		}
	}
}

// skipLineComment consumes a `~ ...` comment up to (not including) the
// terminating linefeed or EOF.
func (lex *Lexer) skipLineComment() {
	for lex.Current != '\n' && lex.Current != 0 {
		lex.Advance()
	}
}

// skipBlockComment consumes a `~~ ... ~~` comment, which does not nest.
func (lex *Lexer) skipBlockComment() error {
	line, col := lex.Line, lex.Column
	lex.Advance() // first '~'
	lex.Advance() // second '~'
	for {
		if lex.Current == 0 {
			return slayerr.New(slayerr.DarkMagicDetected, "unterminated block comment", line, col)
		}
		if lex.Current == '~' && lex.Peek() == '~' {
			lex.Advance()
			lex.Advance()
			return nil
		}
		if lex.Current == '\n' {
			lex.Position++
			lex.Line++
			lex.Column = 1
			if lex.Position >= lex.SrcLength {
				lex.Current = 0
				lex.Position = lex.SrcLength
			} else {
				lex.Current = lex.Src[lex.Position]
			}
			continue
		}
		lex.Advance()
	}
}

// NextToken returns the next token in the source, or a *slayerr.Error of
// kind DarkMagicDetected on an unexpected character, unterminated string, or
// unterminated block comment.
func (lex *Lexer) NextToken() (Token, error) {
	if err := lex.skipSpacesTabsAndComments(); err != nil {
		return Token{}, err
	}

	if lex.Current == '\n' {
		tok := lex.consumeNewline()
		if lex.BracketDepth > 0 {
			return lex.NextToken()
		}
		return tok, nil
	}

	line, col := lex.Line, lex.Column
	var tok Token

	switch {
	case lex.Current == 0:
		return NewTokenWithMetadata(EOF_TYPE, "EOF", line, col), nil

	case lex.Current == '"' || lex.Current == '\'':
		return lex.readString()

	case isDigit(lex.Current):
		return lex.readNumber(), nil

	case isAlpha(lex.Current) || lex.Current == '_':
		return lex.readIdentifier(), nil

	case lex.Current == '*':
		if lex.Peek() == '*' {
			lex.Advance()
			tok = NewTokenWithMetadata(POW_OP, "**", line, col)
		} else {
			tok = NewTokenWithMetadata(MUL_OP, "*", line, col)
		}

	case lex.Current == '+':
		tok = NewTokenWithMetadata(PLUS_OP, "+", line, col)
	case lex.Current == '-':
		tok = NewTokenWithMetadata(MINUS_OP, "-", line, col)
	case lex.Current == '/':
		tok = NewTokenWithMetadata(DIV_OP, "/", line, col)
	case lex.Current == '%':
		tok = NewTokenWithMetadata(MOD_OP, "%", line, col)

	case lex.Current == '(':
		lex.BracketDepth++
		tok = NewTokenWithMetadata(LEFT_PAREN, "(", line, col)
	case lex.Current == ')':
		lex.saturatingDecrement()
		tok = NewTokenWithMetadata(RIGHT_PAREN, ")", line, col)
	case lex.Current == '[':
		lex.BracketDepth++
		tok = NewTokenWithMetadata(LEFT_BRACKET, "[", line, col)
	case lex.Current == ']':
		lex.saturatingDecrement()
		tok = NewTokenWithMetadata(RIGHT_BRACKET, "]", line, col)
	case lex.Current == '{':
		lex.BracketDepth++
		tok = NewTokenWithMetadata(LEFT_BRACE, "{", line, col)
	case lex.Current == '}':
		lex.saturatingDecrement()
		tok = NewTokenWithMetadata(RIGHT_BRACE, "}", line, col)

	case lex.Current == ',':
		tok = NewTokenWithMetadata(COMMA_DELIM, ",", line, col)
	case lex.Current == ':':
		tok = NewTokenWithMetadata(COLON_DELIM, ":", line, col)
	case lex.Current == '.':
		tok = NewTokenWithMetadata(DOT_OP, ".", line, col)

	default:
		return Token{}, slayerr.New(slayerr.DarkMagicDetected,
			fmt.Sprintf("unexpected character %q", lex.Current), line, col)
	}

	lex.Advance()
	return tok, nil
}

// saturatingDecrement lowers BracketDepth by one, floored at zero (a stray
// closing bracket never drives the counter negative).
func (lex *Lexer) saturatingDecrement() {
	if lex.BracketDepth > 0 {
		lex.BracketDepth--
	}
}

// ConsumeTokens tokenizes the entire source, returning every token up to and
// including EOF, or the first lexing error encountered.
func (lex *Lexer) ConsumeTokens() ([]Token, error) {
	tokens := make([]Token, 0)
	for {
		tok, err := lex.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF_TYPE {
			break
		}
	}
	return tokens, nil
}
