/*
File    : slayscript/objects/arith.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"fmt"
	"math"
	"strings"

	"github.com/akashmaji946/slayscript/slayerr"
)

// BinOp names the arithmetic operators dispatched by Arith.
type BinOp string

const (
	OpAdd BinOp = "+"
	OpSub BinOp = "-"
	OpMul BinOp = "*"
	OpDiv BinOp = "/"
	OpMod BinOp = "%"
	OpPow BinOp = "**"
)

// Arith centralizes spec.md §4.3's arithmetic table and the int+float→float
// numeric coercion DESIGN NOTES §9 asks for in one place, mirroring the
// teacher's centralized binary-op dispatch.
func Arith(op BinOp, line, col int, left, right GoMixObject) (GoMixObject, error) {
	switch op {
	case OpAdd:
		return arithAdd(line, col, left, right)
	case OpMul:
		if rep, ok, err := tryRepeat(line, col, left, right); ok || err != nil {
			return rep, err
		}
	}

	ln, lIsNum := numericValue(left)
	rn, rIsNum := numericValue(right)
	if !lIsNum || !rIsNum {
		return nil, forbiddenOperands(line, col, op, left, right)
	}

	_, lFloat := left.(*Float)
	_, rFloat := right.(*Float)
	bothInt := !lFloat && !rFloat

	switch op {
	case OpSub:
		if bothInt {
			return &Integer{Value: left.(*Integer).Value - right.(*Integer).Value}, nil
		}
		return &Float{Value: ln - rn}, nil
	case OpMul:
		if bothInt {
			return &Integer{Value: left.(*Integer).Value * right.(*Integer).Value}, nil
		}
		return &Float{Value: ln * rn}, nil
	case OpDiv:
		if rn == 0 {
			return nil, slayerr.New(slayerr.ForbiddenMagic, "division by zero", line, col)
		}
		if bothInt {
			li, ri := left.(*Integer).Value, right.(*Integer).Value
			if li%ri == 0 {
				return &Integer{Value: li / ri}, nil
			}
		}
		return &Float{Value: ln / rn}, nil
	case OpMod:
		if rn == 0 {
			return nil, slayerr.New(slayerr.ForbiddenMagic, "division by zero", line, col)
		}
		if bothInt {
			li, ri := left.(*Integer).Value, right.(*Integer).Value
			return &Integer{Value: li % ri}, nil
		}
		return &Float{Value: modFloat(ln, rn)}, nil
	case OpPow:
		if bothInt && right.(*Integer).Value >= 0 {
			return &Integer{Value: intPow(left.(*Integer).Value, right.(*Integer).Value)}, nil
		}
		return &Float{Value: floatPow(ln, rn)}, nil
	}

	return nil, forbiddenOperands(line, col, op, left, right)
}

// arithAdd handles the four shapes "+" accepts: num+num, str+str (and
// any+str / str+any, which stringify the non-string operand), and
// list+list concatenation.
func arithAdd(line, col int, left, right GoMixObject) (GoMixObject, error) {
	if ln, lok := numericValue(left); lok {
		if rn, rok := numericValue(right); rok {
			_, lFloat := left.(*Float)
			_, rFloat := right.(*Float)
			if !lFloat && !rFloat {
				return &Integer{Value: left.(*Integer).Value + right.(*Integer).Value}, nil
			}
			return &Float{Value: ln + rn}, nil
		}
	}

	_, lStr := left.(*String)
	_, rStr := right.(*String)
	if lStr || rStr {
		return &String{Value: left.ToString() + right.ToString()}, nil
	}

	lList, lIsList := left.(*List)
	rList, rIsList := right.(*List)
	if lIsList && rIsList {
		combined := make([]GoMixObject, 0, len(lList.Elements)+len(rList.Elements))
		combined = append(combined, lList.Elements...)
		combined = append(combined, rList.Elements...)
		return &List{Elements: combined}, nil
	}

	return nil, forbiddenOperands(line, col, OpAdd, left, right)
}

// tryRepeat handles "*"'s string/list-repetition overload: str×int, int×str,
// list×int, int×list. A negative count clamps to empty (DESIGN NOTES §9
// open question, resolved toward "prefer empty"). Returns ok=false when
// neither operand shape matches, so the caller falls through to numeric "*".
func tryRepeat(line, col int, left, right GoMixObject) (GoMixObject, bool, error) {
	if s, ok := left.(*String); ok {
		if n, ok := right.(*Integer); ok {
			return &String{Value: repeatString(s.Value, n.Value)}, true, nil
		}
	}
	if n, ok := left.(*Integer); ok {
		if s, ok := right.(*String); ok {
			return &String{Value: repeatString(s.Value, n.Value)}, true, nil
		}
	}
	if l, ok := left.(*List); ok {
		if n, ok := right.(*Integer); ok {
			return &List{Elements: repeatList(l.Elements, n.Value)}, true, nil
		}
	}
	if n, ok := left.(*Integer); ok {
		if l, ok := right.(*List); ok {
			return &List{Elements: repeatList(l.Elements, n.Value)}, true, nil
		}
	}
	return nil, false, nil
}

func repeatString(s string, n int64) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, int(n))
}

func repeatList(elems []GoMixObject, n int64) []GoMixObject {
	if n <= 0 {
		return []GoMixObject{}
	}
	out := make([]GoMixObject, 0, int64(len(elems))*n)
	for i := int64(0); i < n; i++ {
		out = append(out, elems...)
	}
	return out
}

func forbiddenOperands(line, col int, op BinOp, left, right GoMixObject) error {
	return slayerr.New(slayerr.ForbiddenMagic,
		fmt.Sprintf("cannot apply %s to %s and %s", op, left.GetType(), right.GetType()), line, col)
}

func modFloat(a, b float64) float64 {
	return math.Mod(a, b)
}

func intPow(base, exp int64) int64 {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

func floatPow(base, exp float64) float64 {
	return math.Pow(base, exp)
}
