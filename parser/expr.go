/*
File    : slayscript/parser/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Expression parsing by named precedence level, low to high, per spec.md
§4.2's grammar: or_expr, and_expr, not_expr, comparison, term, factor,
power, unary, call, primary.
*/
package parser

import (
	"github.com/akashmaji946/slayscript/lexer"
	"github.com/akashmaji946/slayscript/objects"
)

func (p *Parser) parseExpression() (Expr, error) { return p.parseOr() }

func (p *Parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.OR_KEY) {
		line, col := p.curr.Line, p.curr.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{pos{line, col}, left, string(lexer.OR_KEY), right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.AND_KEY) {
		line, col := p.curr.Line, p.curr.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{pos{line, col}, left, string(lexer.AND_KEY), right}
	}
	return left, nil
}

// parseNot: `"not" not_expr | comparison` — right-recursive so `not not x`
// parses sensibly.
func (p *Parser) parseNot() (Expr, error) {
	if p.at(lexer.NOT_KEY) {
		line, col := p.curr.Line, p.curr.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{pos{line, col}, string(lexer.NOT_KEY), operand}, nil
	}
	return p.parseComparison()
}

var cmpOps = map[lexer.TokenType]bool{
	lexer.IS_KEY: true, lexer.ISNT_KEY: true, lexer.EXCEEDS_KEY: true,
	lexer.UNDER_KEY: true, lexer.ATLEAST_KEY: true, lexer.ATMOST_KEY: true,
}

// parseComparison: left-associative, chainable (`a is b is c` = `(a is b) is c`).
func (p *Parser) parseComparison() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for cmpOps[p.curr.Type] {
		op := p.curr.Type
		line, col := p.curr.Line, p.curr.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{pos{line, col}, left, string(op), right}
	}
	return left, nil
}

func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.PLUS_OP) || p.at(lexer.MINUS_OP) {
		op := p.curr.Type
		line, col := p.curr.Line, p.curr.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{pos{line, col}, left, string(op), right}
	}
	return left, nil
}

func (p *Parser) parseFactor() (Expr, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for p.at(lexer.MUL_OP) || p.at(lexer.DIV_OP) || p.at(lexer.MOD_OP) {
		op := p.curr.Type
		line, col := p.curr.Line, p.curr.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{pos{line, col}, left, string(op), right}
	}
	return left, nil
}

// parsePower and parseUnary are mutually recursive to get `-2 ** 2` ==
// `-(2 ** 2)` (spec.md §4.2's tie-break): a leading "-" takes an entire
// power expression as its operand, so "**" binds before the negation does,
// while power's own base is parsed through unary so a later "-" inside the
// right-hand side of "**" (e.g. `2 ** -3`) still works.
func (p *Parser) parsePower() (Expr, error) {
	base, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.at(lexer.POW_OP) {
		line, col := p.curr.Line, p.curr.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return &BinaryOp{pos{line, col}, base, string(lexer.POW_OP), right}, nil
	}
	return base, nil
}

func (p *Parser) parseUnary() (Expr, error) {
	if p.at(lexer.MINUS_OP) {
		line, col := p.curr.Line, p.curr.Column
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{pos{line, col}, string(lexer.MINUS_OP), operand}, nil
	}
	return p.parseCall()
}

// parseCall: `primary ( "(" args? ")" | "[" expression "]" | "." IDENT )*`.
func (p *Parser) parseCall() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.curr.Type {
		case lexer.LEFT_PAREN:
			line, col := p.curr.Line, p.curr.Column
			if err := p.advance(); err != nil {
				return nil, err
			}
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if err := p.expect(lexer.RIGHT_PAREN); err != nil {
				return nil, err
			}
			expr = &CallExpr{pos{line, col}, expr, args}
		case lexer.LEFT_BRACKET:
			line, col := p.curr.Line, p.curr.Column
			if err := p.advance(); err != nil {
				return nil, err
			}
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.expect(lexer.RIGHT_BRACKET); err != nil {
				return nil, err
			}
			expr = &IndexExpr{pos{line, col}, expr, index}
		case lexer.DOT_OP:
			line, col := p.curr.Line, p.curr.Column
			if err := p.advance(); err != nil {
				return nil, err
			}
			if !p.at(lexer.IDENT_TYPE) {
				return nil, p.miscast("expected field name after '.', got %s %q", p.curr.Type, p.curr.Literal)
			}
			field := p.curr.Literal
			if err := p.advance(); err != nil {
				return nil, err
			}
			expr = &MemberExpr{pos{line, col}, expr, field}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseArgs() ([]Expr, error) {
	var args []Expr
	for !p.at(lexer.RIGHT_PAREN) {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.at(lexer.COMMA_DELIM) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}
	return args, nil
}

// parsePrimary: `literal | list_lit | dict_lit | IDENT | "(" expression ")"`.
// The `tome`/`grimoire` prefix keywords before `[`/`{` are no-op sugar
// (spec.md §4.2) and are simply skipped when present.
func (p *Parser) parsePrimary() (Expr, error) {
	line, col := p.curr.Line, p.curr.Column
	switch p.curr.Type {
	case lexer.INT_LIT:
		lit := p.curr.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{pos{line, col}, intValue(lit)}, nil
	case lexer.FLOAT_LIT:
		lit := p.curr.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{pos{line, col}, floatValue(lit)}, nil
	case lexer.STRING_LIT:
		lit := p.curr.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{pos{line, col}, stringValue(lit)}, nil
	case lexer.TRUE_KEY, lexer.FALSE_KEY:
		val := p.curr.Type == lexer.TRUE_KEY
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{pos{line, col}, &objects.Boolean{Value: val}}, nil
	case lexer.IDENT_TYPE:
		name := p.curr.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Identifier{pos{line, col}, name}, nil
	case lexer.LEFT_PAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.TOME_KEY:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseListLiteral()
	case lexer.GRIMOIRE_KEY:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseDictLiteral()
	case lexer.LEFT_BRACKET:
		return p.parseListLiteral()
	case lexer.LEFT_BRACE:
		return p.parseDictLiteral()
	default:
		return nil, p.miscast("unexpected token %s %q", p.curr.Type, p.curr.Literal)
	}
}

// parseListLiteral: `"[" (expression ("," expression)* ","?)? "]"`.
func (p *Parser) parseListLiteral() (Expr, error) {
	line, col := p.curr.Line, p.curr.Column
	if err := p.expect(lexer.LEFT_BRACKET); err != nil {
		return nil, err
	}
	lit := &ListExpr{pos: pos{line, col}}
	for !p.at(lexer.RIGHT_BRACKET) {
		el, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		lit.Elements = append(lit.Elements, el)
		if p.at(lexer.COMMA_DELIM) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return lit, p.expect(lexer.RIGHT_BRACKET)
}

// parseDictLiteral: `"{" (expression ":" expression ("," ...)* ","?)? "}"`.
func (p *Parser) parseDictLiteral() (Expr, error) {
	line, col := p.curr.Line, p.curr.Column
	if err := p.expect(lexer.LEFT_BRACE); err != nil {
		return nil, err
	}
	lit := &DictExpr{pos: pos{line, col}}
	for !p.at(lexer.RIGHT_BRACE) {
		key, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.COLON_DELIM); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		lit.Pairs = append(lit.Pairs, DictPair{key, value})
		if p.at(lexer.COMMA_DELIM) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return lit, p.expect(lexer.RIGHT_BRACE)
}
