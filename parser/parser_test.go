/*
File    : slayscript/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/slayscript/objects"
)

func TestParse_VarDeclAndExprStmt(t *testing.T) {
	prog, err := Parse("conjure x as 2 ** 10")
	assert.NoError(t, err)
	assert.Len(t, prog.Statements, 1)
	decl := prog.Statements[0].(*VarDecl)
	assert.Equal(t, "x", decl.Name)
	assert.False(t, decl.IsConst)
	pow := decl.Value.(*BinaryOp)
	assert.Equal(t, "**", pow.Op)
}

func TestParse_PowerRightAssociative(t *testing.T) {
	prog, err := Parse("conjure x as 2 ** 3 ** 2")
	assert.NoError(t, err)
	decl := prog.Statements[0].(*VarDecl)
	top := decl.Value.(*BinaryOp)
	assert.Equal(t, int64(2), top.Left.(*Literal).Value.(*objects.Integer).Value)
	right := top.Right.(*BinaryOp)
	assert.Equal(t, int64(3), right.Left.(*Literal).Value.(*objects.Integer).Value)
	assert.Equal(t, int64(2), right.Right.(*Literal).Value.(*objects.Integer).Value)
}

// spec.md §4.2's tie-break: -2 ** 2 parses as -(2 ** 2).
func TestParse_UnaryMinusBindsLooserThanPower(t *testing.T) {
	prog, err := Parse("conjure x as -2 ** 2")
	assert.NoError(t, err)
	decl := prog.Statements[0].(*VarDecl)
	neg := decl.Value.(*UnaryOp)
	assert.Equal(t, "-", neg.Op)
	pow := neg.Operand.(*BinaryOp)
	assert.Equal(t, "**", pow.Op)
}

func TestParse_ComparisonChainsLeftAssociative(t *testing.T) {
	prog, err := Parse("conjure x as a is b is c")
	assert.NoError(t, err)
	decl := prog.Statements[0].(*VarDecl)
	outer := decl.Value.(*BinaryOp)
	assert.Equal(t, "is", outer.Op)
	_, leftIsBinary := outer.Left.(*BinaryOp)
	assert.True(t, leftIsBinary)
	_, rightIsIdent := outer.Right.(*Identifier)
	assert.True(t, rightIsIdent)
}

func TestParse_ConstDecl(t *testing.T) {
	prog, err := Parse("const prophecy PI as 3")
	assert.NoError(t, err)
	decl := prog.Statements[0].(*VarDecl)
	assert.True(t, decl.IsConst)
	assert.Equal(t, "PI", decl.Name)
}

func TestParse_IfElifElse(t *testing.T) {
	src := `prophecy reveals a exceeds 1 { cast 1 } otherwise prophecy a is 1 { cast 2 } fate decrees { cast 3 }`
	prog, err := Parse(src)
	assert.NoError(t, err)
	stmt := prog.Statements[0].(*IfStmt)
	assert.Len(t, stmt.ElifPairs, 1)
	assert.NotNil(t, stmt.Else)
}

func TestParse_WhileAndForEach(t *testing.T) {
	prog, err := Parse("patrol until n atleast 3 { transmute n as n + 1 }\nhunt each item in tome [1, 2] { scribe(item) }")
	assert.NoError(t, err)
	assert.Len(t, prog.Statements, 2)
	_, ok := prog.Statements[0].(*WhileStmt)
	assert.True(t, ok)
	forStmt := prog.Statements[1].(*ForStmt)
	assert.Equal(t, "item", forStmt.Var)
}

func TestParse_FuncDeclAutoSpeakFlag(t *testing.T) {
	prog, err := Parse("incantation greet(name) { cast name }\nspell silent(x) { cast x }")
	assert.NoError(t, err)
	incant := prog.Statements[0].(*FuncDecl)
	assert.True(t, incant.AutoSpeak)
	spell := prog.Statements[1].(*FuncDecl)
	assert.False(t, spell.AutoSpeak)
}

func TestParse_IndexAssignAndMemberSugar(t *testing.T) {
	prog, err := Parse("transmute b[0] as 99\ntransmute obj.key as 1")
	assert.NoError(t, err)
	idx := prog.Statements[0].(*IndexAssign)
	_, ok := idx.Index.(*Literal)
	assert.True(t, ok)
	member := prog.Statements[1].(*IndexAssign)
	lit := member.Index.(*Literal).Value.(*objects.String)
	assert.Equal(t, "key", lit.Value)
}

func TestParse_CallChainAndIndexing(t *testing.T) {
	prog, err := Parse("scribe_line(a[0].b(1, 2))")
	assert.NoError(t, err)
	stmt := prog.Statements[0].(*ExprStmt)
	outer := stmt.Expr.(*CallExpr)
	assert.Len(t, outer.Args, 1)
}

func TestParse_DictLiteralWithGrimoirePrefix(t *testing.T) {
	prog, err := Parse(`conjure d as grimoire {"a": 1, "b": 2,}`)
	assert.NoError(t, err)
	decl := prog.Statements[0].(*VarDecl)
	dict := decl.Value.(*DictExpr)
	assert.Len(t, dict.Pairs, 2)
}

func TestParse_BadAssignTargetIsSpellMiscast(t *testing.T) {
	_, err := Parse("transmute 1 as 2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Spell Miscast!")
}

func TestParse_UnexpectedTokenIsSpellMiscast(t *testing.T) {
	_, err := Parse("conjure x as )")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Spell Miscast!")
}
