/*
File    : slayscript/parser/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/slayscript/lexer"

// parseStatement dispatches on curr per spec.md §4.2's statement rule.
func (p *Parser) parseStatement() (Stmt, error) {
	switch p.curr.Type {
	case lexer.CONJURE_KEY, lexer.SUMMON_KEY:
		return p.parseVarDecl()
	case lexer.CONST_KEY:
		return p.parseConstDecl()
	case lexer.TRANSMUTE_KEY:
		return p.parseAssign()
	case lexer.VANQUISH_KEY:
		return p.parseDelete()
	case lexer.SPELL_KEY, lexer.INCANTATION_KEY:
		return p.parseFuncDecl()
	case lexer.CAST_KEY:
		return p.parseReturn()
	case lexer.PROPHECY_KEY:
		return p.parseIf()
	case lexer.PATROL_KEY:
		return p.parseWhile()
	case lexer.HUNT_KEY:
		return p.parseFor()
	case lexer.BREAK_KEY:
		st := &BreakStmt{pos{p.curr.Line, p.curr.Column}}
		return st, p.advance()
	case lexer.CONTINUE_KEY:
		st := &ContinueStmt{pos{p.curr.Line, p.curr.Column}}
		return st, p.advance()
	default:
		return p.parseExprStmt()
	}
}

// parseBlock parses `"{" (NEWLINE* statement)* NEWLINE* "}"`.
func (p *Parser) parseBlock() (*BlockStmt, error) {
	line, col := p.curr.Line, p.curr.Column
	if err := p.expect(lexer.LEFT_BRACE); err != nil {
		return nil, err
	}
	block := &BlockStmt{pos: pos{line, col}}
	if err := p.skipNewlines(); err != nil {
		return nil, err
	}
	for !p.at(lexer.RIGHT_BRACE) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		if err := p.skipNewlines(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(lexer.RIGHT_BRACE); err != nil {
		return nil, err
	}
	return block, nil
}

// parseVarDecl parses `("conjure"|"summon") IDENT "as" type_hint? expression`.
func (p *Parser) parseVarDecl() (Stmt, error) {
	line, col := p.curr.Line, p.curr.Column
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.finishVarDecl(line, col, false)
}

// parseConstDecl parses `"const" "prophecy" IDENT "as" expression`.
func (p *Parser) parseConstDecl() (Stmt, error) {
	line, col := p.curr.Line, p.curr.Column
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.PROPHECY_KEY); err != nil {
		return nil, err
	}
	return p.finishVarDecl(line, col, true)
}

func (p *Parser) finishVarDecl(line, col int, isConst bool) (Stmt, error) {
	if !p.at(lexer.IDENT_TYPE) {
		return nil, p.miscast("expected identifier, got %s %q", p.curr.Type, p.curr.Literal)
	}
	name := p.curr.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.AS_KEY); err != nil {
		return nil, err
	}
	typeHint := ""
	if lexer.TypeHintKeywords[p.curr.Type] {
		typeHint = string(p.curr.Type)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &VarDecl{pos{line, col}, name, value, isConst, typeHint}, nil
}

// parseAssign parses `"transmute" lvalue "as" expression`. The lvalue is
// either a bare identifier (VarAssign) or a call-chain ending in an index or
// dot-member access (IndexAssign); anything else is SpellMiscast.
func (p *Parser) parseAssign() (Stmt, error) {
	line, col := p.curr.Line, p.curr.Column
	if err := p.advance(); err != nil {
		return nil, err
	}
	target, err := p.parseCall()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.AS_KEY); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	switch t := target.(type) {
	case *Identifier:
		return &VarAssign{pos{line, col}, t.Name, value}, nil
	case *IndexExpr:
		return &IndexAssign{pos{line, col}, t.Collection, t.Index, value}, nil
	case *MemberExpr:
		field := &Literal{pos{line, col}, stringValue(t.Field)}
		return &IndexAssign{pos{line, col}, t.Target, field, value}, nil
	default:
		return nil, positionedMiscastErr(line, col, "assignment target must be a name, index, or member access")
	}
}

// parseDelete parses `"vanquish" IDENT`.
func (p *Parser) parseDelete() (Stmt, error) {
	line, col := p.curr.Line, p.curr.Column
	if err := p.advance(); err != nil {
		return nil, err
	}
	if !p.at(lexer.IDENT_TYPE) {
		return nil, p.miscast("expected identifier after vanquish, got %s %q", p.curr.Type, p.curr.Literal)
	}
	name := p.curr.Literal
	return &VarDelete{pos{line, col}, name}, p.advance()
}

// parseFuncDecl parses `("spell"|"incantation") IDENT "(" params? ")" block`.
func (p *Parser) parseFuncDecl() (Stmt, error) {
	line, col := p.curr.Line, p.curr.Column
	autoSpeak := p.at(lexer.INCANTATION_KEY)
	if err := p.advance(); err != nil {
		return nil, err
	}
	if !p.at(lexer.IDENT_TYPE) {
		return nil, p.miscast("expected function name, got %s %q", p.curr.Type, p.curr.Literal)
	}
	name := p.curr.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	var params []string
	for !p.at(lexer.RIGHT_PAREN) {
		if !p.at(lexer.IDENT_TYPE) {
			return nil, p.miscast("expected parameter name, got %s %q", p.curr.Type, p.curr.Literal)
		}
		params = append(params, p.curr.Literal)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.at(lexer.COMMA_DELIM) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else {
			break
		}
	}
	if err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &FuncDecl{pos{line, col}, name, params, body, autoSpeak}, nil
}

// parseReturn parses `"cast" expression?`: a bare `cast` (followed by a
// statement/block boundary) returns Void.
func (p *Parser) parseReturn() (Stmt, error) {
	line, col := p.curr.Line, p.curr.Column
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.at(lexer.NEWLINE_TYPE) || p.at(lexer.RIGHT_BRACE) || p.at(lexer.EOF_TYPE) {
		return &ReturnStmt{pos{line, col}, nil}, nil
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ReturnStmt{pos{line, col}, value}, nil
}

// parseIf parses the prophecy/otherwise/fate chain.
func (p *Parser) parseIf() (Stmt, error) {
	line, col := p.curr.Line, p.curr.Column
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.REVEALS_KEY); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &IfStmt{pos: pos{line, col}, Cond: cond, Then: then}
	for p.at(lexer.OTHERWISE_KEY) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(lexer.PROPHECY_KEY); err != nil {
			return nil, err
		}
		elifCond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elifBlock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.ElifPairs = append(stmt.ElifPairs, ElifBranch{elifCond, elifBlock})
	}
	if p.at(lexer.FATE_KEY) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(lexer.DECREES_KEY); err != nil {
			return nil, err
		}
		elseBlock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBlock
	}
	return stmt, nil
}

// parseWhile parses `"patrol" "until" expression block`.
func (p *Parser) parseWhile() (Stmt, error) {
	line, col := p.curr.Line, p.curr.Column
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.UNTIL_KEY); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{pos{line, col}, cond, body}, nil
}

// parseFor parses `"hunt" "each" IDENT "in" expression block`.
func (p *Parser) parseFor() (Stmt, error) {
	line, col := p.curr.Line, p.curr.Column
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.EACH_KEY); err != nil {
		return nil, err
	}
	if !p.at(lexer.IDENT_TYPE) {
		return nil, p.miscast("expected loop variable name, got %s %q", p.curr.Type, p.curr.Literal)
	}
	varName := p.curr.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.IN_KEY); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ForStmt{pos{line, col}, varName, iterable, body}, nil
}

// parseExprStmt parses a bare expression statement (typically a call).
func (p *Parser) parseExprStmt() (Stmt, error) {
	line, col := p.curr.Line, p.curr.Column
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ExprStmt{pos{line, col}, expr}, nil
}
