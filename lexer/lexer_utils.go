/*
File    : slayscript/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strings"

	"github.com/akashmaji946/slayscript/slayerr"
)

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c is an ASCII letter.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isAlnum reports whether c may continue an identifier.
func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

// readNumber scans a numeric literal: one or more digits, optionally
// followed by `.` and one or more digits. No exponent syntax, no hex/oct/bin
// prefixes — spec.md §4.1 deliberately omits them.
func (lex *Lexer) readNumber() Token {
	line, col := lex.Line, lex.Column
	start := lex.Position

	for isDigit(lex.Current) {
		lex.Advance()
	}

	isFloat := false
	if lex.Current == '.' && isDigit(lex.Peek()) {
		isFloat = true
		lex.Advance() // consume '.'
		for isDigit(lex.Current) {
			lex.Advance()
		}
	}

	lexeme := lex.Src[start:lex.Position]
	tokenType := INT_LIT
	if isFloat {
		tokenType = FLOAT_LIT
	}
	return NewTokenWithMetadata(tokenType, lexeme, line, col)
}

// readIdentifier scans an identifier and re-tags it as a keyword token when
// the lexeme matches a reserved word.
func (lex *Lexer) readIdentifier() Token {
	line, col := lex.Line, lex.Column
	start := lex.Position

	lex.Advance() // first char already known to be alpha or '_'
	for isAlnum(lex.Current) {
		lex.Advance()
	}

	lexeme := lex.Src[start:lex.Position]
	return NewTokenWithMetadata(lookupIdent(lexeme), lexeme, line, col)
}

// readString scans a string literal bounded by the matching quote that
// opened it (`"` or `'`). Recognized escapes: \n \t \r \\, and a backslash
// followed by the opening quote character; any other backslash sequence
// yields the literal character that follows it. A raw newline inside the
// string is permitted and counted, matching spec.md §4.1.
func (lex *Lexer) readString() (Token, error) {
	line, col := lex.Line, lex.Column
	quote := lex.Current
	lex.Advance() // consume opening quote

	var builder strings.Builder
	for lex.Current != quote {
		if lex.Current == 0 {
			return Token{}, slayerr.New(slayerr.DarkMagicDetected, "unterminated string literal", line, col)
		}

		if lex.Current == '\n' {
			builder.WriteByte('\n')
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

		if lex.Current == '\\' {
			lex.Advance()
			if lex.Current == 0 {
				return Token{}, slayerr.New(slayerr.DarkMagicDetected, "unterminated string literal", line, col)
			}
			switch lex.Current {
			case 'n':
				builder.WriteByte('\n')
			case 't':
				builder.WriteByte('\t')
			case 'r':
				builder.WriteByte('\r')
			case '\\':
				builder.WriteByte('\\')
			case quote:
				builder.WriteByte(quote)
			default:
				builder.WriteByte(lex.Current)
			}
			lex.Advance()
			continue
		}

		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	lex.Advance() // consume closing quote
	return NewTokenWithMetadata(STRING_LIT, builder.String(), line, col), nil
}
