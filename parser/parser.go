/*
File    : slayscript/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Parser converts the token stream into a Program AST (spec.md §4.2). It
fails fast: the first grammar violation returns a *slayerr.Error (kind
SpellMiscast) tagged with the offending token's position, rather than
collecting multiple errors the way the teacher's parser does — a script
either parses or it doesn't, and the first mistake is the one that
matters to the author.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/slayscript/lexer"
	"github.com/akashmaji946/slayscript/slayerr"
)

// Parser holds two-token lookahead over a Lexer, in the teacher's
// Curr/Next-plus-advance() shape.
type Parser struct {
	lex  *lexer.Lexer
	curr lexer.Token
	next lexer.Token
}

// NewParser builds a parser over src and primes its two-token lookahead.
func NewParser(src string) (*Parser, error) {
	lex := lexer.NewLexer(src)
	p := &Parser{lex: &lex}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	p.curr = p.next
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.next = tok
	return nil
}

func (p *Parser) miscast(format string, args ...interface{}) error {
	return slayerr.New(slayerr.SpellMiscast, fmt.Sprintf(format, args...), p.curr.Line, p.curr.Column)
}

// expect verifies curr is of type tt, advances past it, and returns an
// error naming what was actually found otherwise.
func (p *Parser) expect(tt lexer.TokenType) error {
	if p.curr.Type != tt {
		return p.miscast("expected %s, got %s %q", tt, p.curr.Type, p.curr.Literal)
	}
	return p.advance()
}

func (p *Parser) at(tt lexer.TokenType) bool { return p.curr.Type == tt }

// skipNewlines consumes zero or more NEWLINE tokens, used wherever a
// statement or block boundary is expected (spec.md §4.2).
func (p *Parser) skipNewlines() error {
	for p.at(lexer.NEWLINE_TYPE) {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

// Parse runs the full program grammar: program := (NEWLINE* statement)* EOF.
func Parse(src string) (*Program, error) {
	p, err := NewParser(src)
	if err != nil {
		return nil, err
	}
	prog := &Program{pos: pos{p.curr.Line, p.curr.Column}}
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	for !p.at(lexer.EOF_TYPE) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
	}
	return prog, nil
}
