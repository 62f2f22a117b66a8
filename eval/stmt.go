/*
File    : slayscript/eval/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Statement evaluation (spec.md §4.3). evalStmt returns a non-nil
ReturnValue/Break/Continue signal when the statement is one of those three
or propagates one up from a nested block; every other statement returns nil
(no value) except ExprStmt, whose value is handed back so the REPL/program
runner can echo the last statement's result.
*/
package eval

import (
	"github.com/akashmaji946/slayscript/function"
	"github.com/akashmaji946/slayscript/objects"
	"github.com/akashmaji946/slayscript/parser"
	"github.com/akashmaji946/slayscript/scope"
	"github.com/akashmaji946/slayscript/slayerr"
)

func (e *Evaluator) evalStmt(stmt parser.Stmt) (objects.GoMixObject, error) {
	switch s := stmt.(type) {
	case *parser.VarDecl:
		return nil, e.evalVarDecl(s)
	case *parser.VarAssign:
		return nil, e.evalVarAssign(s)
	case *parser.IndexAssign:
		return nil, e.evalIndexAssign(s)
	case *parser.VarDelete:
		return nil, e.evalVarDelete(s)
	case *parser.FuncDecl:
		return nil, e.evalFuncDecl(s)
	case *parser.ReturnStmt:
		return e.evalReturn(s)
	case *parser.IfStmt:
		return e.evalIf(s)
	case *parser.WhileStmt:
		return e.evalWhile(s)
	case *parser.ForStmt:
		return e.evalFor(s)
	case *parser.BreakStmt:
		return &objects.Break{}, nil
	case *parser.ContinueStmt:
		return &objects.Continue{}, nil
	case *parser.ExprStmt:
		return e.evalExpr(s.Expr)
	default:
		return nil, slayerr.New(slayerr.ForbiddenMagic, "unhandled statement", 0, 0)
	}
}

// evalBlock runs a block in a fresh child scope (spec.md §4.4: "a new
// child environment is created for ... each block executed by
// conditional/loop statements"), stopping early and propagating a
// return/break/continue signal the instant one appears.
func (e *Evaluator) evalBlock(block *parser.BlockStmt) (objects.GoMixObject, error) {
	savedScope := e.Scp
	e.Scp = scope.NewScope(savedScope)
	defer func() { e.Scp = savedScope }()

	for _, stmt := range block.Statements {
		result, err := e.evalStmt(stmt)
		if err != nil {
			return nil, err
		}
		switch result.(type) {
		case *objects.ReturnValue, *objects.Break, *objects.Continue:
			return result, nil
		}
	}
	return nil, nil
}

func (e *Evaluator) evalVarDecl(s *parser.VarDecl) error {
	value, err := e.evalExpr(s.Value)
	if err != nil {
		return err
	}
	e.Scp.Define(s.Name, value, s.IsConst)
	return nil
}

func (e *Evaluator) evalVarAssign(s *parser.VarAssign) error {
	line, col := s.Pos()
	if e.Scp.IsConst(s.Name) {
		return slayerr.New(slayerr.ProphecyViolation, "cannot reassign constant '"+s.Name+"'", line, col)
	}
	value, err := e.evalExpr(s.Value)
	if err != nil {
		return err
	}
	if _, ok := e.Scp.Assign(s.Name, value); !ok {
		return undefinedName(line, col, s.Name)
	}
	return nil
}

func (e *Evaluator) evalIndexAssign(s *parser.IndexAssign) error {
	line, col := s.Pos()
	coll, err := e.evalExpr(s.Collection)
	if err != nil {
		return err
	}
	idx, err := e.evalExpr(s.Index)
	if err != nil {
		return err
	}
	value, err := e.evalExpr(s.Value)
	if err != nil {
		return err
	}
	switch c := coll.(type) {
	case *objects.List:
		i, ok := idx.(*objects.Integer)
		if !ok {
			return slayerr.New(slayerr.ForbiddenMagic, "list index must be a rune", line, col)
		}
		pos := int(i.Value)
		if pos < 0 || pos >= len(c.Elements) {
			return slayerr.New(slayerr.ForbiddenMagic, "list index out of range", line, col)
		}
		c.Elements[pos] = value
		return nil
	case *objects.Dict:
		return c.Set(idx, value)
	default:
		return slayerr.New(slayerr.ForbiddenMagic, "cannot index-assign into "+string(coll.GetType()), line, col)
	}
}

func (e *Evaluator) evalVarDelete(s *parser.VarDelete) error {
	line, col := s.Pos()
	if e.Scp.IsConst(s.Name) {
		return slayerr.New(slayerr.ProphecyViolation, "cannot delete constant '"+s.Name+"'", line, col)
	}
	if !e.Scp.Delete(s.Name) {
		return undefinedName(line, col, s.Name)
	}
	return nil
}

func (e *Evaluator) evalFuncDecl(s *parser.FuncDecl) error {
	fn := &function.UserFunction{
		Name:        s.Name,
		Params:      s.Params,
		Body:        s.Body,
		CapturedEnv: e.Scp,
		AutoSpeak:   s.AutoSpeak,
	}
	e.Scp.Define(s.Name, fn, false)
	return nil
}

func (e *Evaluator) evalReturn(s *parser.ReturnStmt) (objects.GoMixObject, error) {
	if s.Value == nil {
		return &objects.ReturnValue{Value: objects.TheVoid}, nil
	}
	value, err := e.evalExpr(s.Value)
	if err != nil {
		return nil, err
	}
	return &objects.ReturnValue{Value: value}, nil
}

func (e *Evaluator) evalIf(s *parser.IfStmt) (objects.GoMixObject, error) {
	cond, err := e.evalExpr(s.Cond)
	if err != nil {
		return nil, err
	}
	if objects.Truthy(cond) {
		return e.evalBlock(s.Then)
	}
	for _, elif := range s.ElifPairs {
		elifCond, err := e.evalExpr(elif.Cond)
		if err != nil {
			return nil, err
		}
		if objects.Truthy(elifCond) {
			return e.evalBlock(elif.Block)
		}
	}
	if s.Else != nil {
		return e.evalBlock(s.Else)
	}
	return nil, nil
}

// evalWhile implements `patrol until cond { body }`: loops while cond is
// falsy, stopping once it becomes truthy (spec.md §4.3's "patrol" rule —
// this is loop-while-falsy, not loop-while-truthy).
func (e *Evaluator) evalWhile(s *parser.WhileStmt) (objects.GoMixObject, error) {
	for {
		cond, err := e.evalExpr(s.Cond)
		if err != nil {
			return nil, err
		}
		if objects.Truthy(cond) {
			return nil, nil
		}
		result, err := e.evalBlock(s.Body)
		if err != nil {
			return nil, err
		}
		switch result.(type) {
		case *objects.ReturnValue:
			return result, nil
		case *objects.Break:
			return nil, nil
		case *objects.Continue:
			continue
		}
	}
}

// evalFor implements `hunt each IDENT in iterable { body }` over a tome or
// a grimoire's keys (spec.md §4.3).
func (e *Evaluator) evalFor(s *parser.ForStmt) (objects.GoMixObject, error) {
	line, col := s.Pos()
	iterable, err := e.evalExpr(s.Iterable)
	if err != nil {
		return nil, err
	}

	var items []objects.GoMixObject
	switch v := iterable.(type) {
	case *objects.List:
		items = v.Elements
	case *objects.Dict:
		items = v.Keys
	case *objects.String:
		for _, r := range v.Value {
			items = append(items, &objects.String{Value: string(r)})
		}
	default:
		return nil, slayerr.New(slayerr.ForbiddenMagic, "cannot iterate over "+string(iterable.GetType()), line, col)
	}

	for _, item := range items {
		savedScope := e.Scp
		e.Scp = scope.NewScope(savedScope)
		e.Scp.Define(s.Var, item, false)
		result, err := e.evalBlock(s.Body)
		e.Scp = savedScope
		if err != nil {
			return nil, err
		}
		switch result.(type) {
		case *objects.ReturnValue:
			return result, nil
		case *objects.Break:
			return nil, nil
		case *objects.Continue:
			continue
		}
	}
	return nil, nil
}
