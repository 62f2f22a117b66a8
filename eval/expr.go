/*
File    : slayscript/eval/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/slayscript/objects"
	"github.com/akashmaji946/slayscript/parser"
	"github.com/akashmaji946/slayscript/slayerr"
)

// evalExpr implements spec.md §4.3's expression-semantics table.
func (e *Evaluator) evalExpr(node parser.Expr) (objects.GoMixObject, error) {
	switch n := node.(type) {
	case *parser.Literal:
		return n.Value, nil
	case *parser.Identifier:
		if v, ok := e.Scp.Get(n.Name); ok {
			return v, nil
		}
		line, col := n.Pos()
		return nil, undefinedName(line, col, n.Name)
	case *parser.ListExpr:
		return e.evalListExpr(n)
	case *parser.DictExpr:
		return e.evalDictExpr(n)
	case *parser.UnaryOp:
		return e.evalUnary(n)
	case *parser.BinaryOp:
		return e.evalBinary(n)
	case *parser.IndexExpr:
		return e.evalIndex(n)
	case *parser.MemberExpr:
		return e.evalMember(n)
	case *parser.CallExpr:
		return e.evalCall(n)
	default:
		return nil, fmt.Errorf("eval: unhandled expression node %T", node)
	}
}

func (e *Evaluator) evalListExpr(n *parser.ListExpr) (objects.GoMixObject, error) {
	elems := make([]objects.GoMixObject, 0, len(n.Elements))
	for _, elExpr := range n.Elements {
		v, err := e.evalExpr(elExpr)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return &objects.List{Elements: elems}, nil
}

func (e *Evaluator) evalDictExpr(n *parser.DictExpr) (objects.GoMixObject, error) {
	dict := objects.NewDict()
	for _, pair := range n.Pairs {
		key, err := e.evalExpr(pair.Key)
		if err != nil {
			return nil, err
		}
		val, err := e.evalExpr(pair.Value)
		if err != nil {
			return nil, err
		}
		if err := dict.Set(key, val); err != nil {
			return nil, err
		}
	}
	return dict, nil
}

func (e *Evaluator) evalUnary(n *parser.UnaryOp) (objects.GoMixObject, error) {
	line, col := n.Pos()
	operand, err := e.evalExpr(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case "not":
		return &objects.Boolean{Value: !objects.Truthy(operand)}, nil
	case "-":
		switch v := operand.(type) {
		case *objects.Integer:
			return &objects.Integer{Value: -v.Value}, nil
		case *objects.Float:
			return &objects.Float{Value: -v.Value}, nil
		default:
			return nil, slayerr.New(slayerr.ForbiddenMagic,
				fmt.Sprintf("cannot negate %s", operand.GetType()), line, col)
		}
	default:
		return nil, fmt.Errorf("eval: unknown unary operator %q", n.Op)
	}
}

// evalBinary implements "and"/"or" short-circuit, the comparison operators,
// and dispatches the rest to objects.Arith.
func (e *Evaluator) evalBinary(n *parser.BinaryOp) (objects.GoMixObject, error) {
	line, col := n.Pos()

	if n.Op == "and" {
		left, err := e.evalExpr(n.Left)
		if err != nil {
			return nil, err
		}
		if !objects.Truthy(left) {
			return &objects.Boolean{Value: false}, nil
		}
		right, err := e.evalExpr(n.Right)
		if err != nil {
			return nil, err
		}
		return &objects.Boolean{Value: objects.Truthy(right)}, nil
	}
	if n.Op == "or" {
		left, err := e.evalExpr(n.Left)
		if err != nil {
			return nil, err
		}
		if objects.Truthy(left) {
			return &objects.Boolean{Value: true}, nil
		}
		right, err := e.evalExpr(n.Right)
		if err != nil {
			return nil, err
		}
		return &objects.Boolean{Value: objects.Truthy(right)}, nil
	}

	left, err := e.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "is", "isnt":
		eq := objects.Equals(left, right)
		if n.Op == "isnt" {
			eq = !eq
		}
		return &objects.Boolean{Value: eq}, nil
	case "exceeds", "under", "atleast", "atmost":
		cmp, err := objects.Compare(left, right)
		if err != nil {
			if se, ok := err.(*slayerr.Error); ok {
				se.Line, se.Column = line, col
			}
			return nil, err
		}
		var result bool
		switch n.Op {
		case "exceeds":
			result = cmp > 0
		case "under":
			result = cmp < 0
		case "atleast":
			result = cmp >= 0
		case "atmost":
			result = cmp <= 0
		}
		return &objects.Boolean{Value: result}, nil
	default:
		return objects.Arith(objects.BinOp(n.Op), line, col, left, right)
	}
}

func (e *Evaluator) evalIndex(n *parser.IndexExpr) (objects.GoMixObject, error) {
	line, col := n.Pos()
	coll, err := e.evalExpr(n.Collection)
	if err != nil {
		return nil, err
	}
	idx, err := e.evalExpr(n.Index)
	if err != nil {
		return nil, err
	}
	return indexInto(line, col, coll, idx)
}

func indexInto(line, col int, coll, idx objects.GoMixObject) (objects.GoMixObject, error) {
	switch c := coll.(type) {
	case *objects.List:
		i, ok := idx.(*objects.Integer)
		if !ok {
			return nil, slayerr.New(slayerr.ForbiddenMagic, "list index must be a rune", line, col)
		}
		pos := int(i.Value)
		if pos < 0 || pos >= len(c.Elements) {
			return nil, slayerr.New(slayerr.ForbiddenMagic, fmt.Sprintf("list index %d out of range", i.Value), line, col)
		}
		return c.Elements[pos], nil
	case *objects.Dict:
		val, ok, err := c.Get(idx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, slayerr.New(slayerr.ForbiddenMagic, fmt.Sprintf("key %s not found in grimoire", idx.ToString()), line, col)
		}
		return val, nil
	case *objects.String:
		i, ok := idx.(*objects.Integer)
		if !ok {
			return nil, slayerr.New(slayerr.ForbiddenMagic, "string index must be a rune", line, col)
		}
		runes := []rune(c.Value)
		pos := int(i.Value)
		if pos < 0 || pos >= len(runes) {
			return nil, slayerr.New(slayerr.ForbiddenMagic, fmt.Sprintf("string index %d out of range", i.Value), line, col)
		}
		return &objects.String{Value: string(runes[pos])}, nil
	default:
		return nil, slayerr.New(slayerr.ForbiddenMagic, fmt.Sprintf("cannot index %s", coll.GetType()), line, col)
	}
}

// evalMember implements dict-access sugar: `obj.field` reads `obj["field"]`
// (spec.md §4.3).
func (e *Evaluator) evalMember(n *parser.MemberExpr) (objects.GoMixObject, error) {
	line, col := n.Pos()
	target, err := e.evalExpr(n.Target)
	if err != nil {
		return nil, err
	}
	return indexInto(line, col, target, &objects.String{Value: n.Field})
}

func (e *Evaluator) evalCall(n *parser.CallExpr) (objects.GoMixObject, error) {
	line, col := n.Pos()
	callee, err := e.evalExpr(n.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]objects.GoMixObject, 0, len(n.Args))
	for _, argExpr := range n.Args {
		v, err := e.evalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return e.call(line, col, callee, args)
}
