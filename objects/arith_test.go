/*
File    : slayscript/objects/arith_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"testing"

	"github.com/akashmaji946/slayscript/slayerr"
	"github.com/stretchr/testify/assert"
)

func TestArith_IntPlusIntStaysInteger(t *testing.T) {
	result, err := Arith(OpAdd, 0, 0, &Integer{Value: 2}, &Integer{Value: 3})
	assert.NoError(t, err)
	assert.Equal(t, &Integer{Value: 5}, result)
}

func TestArith_IntPlusFloatPromotesToFloat(t *testing.T) {
	result, err := Arith(OpAdd, 0, 0, &Integer{Value: 2}, &Float{Value: 0.5})
	assert.NoError(t, err)
	assert.Equal(t, &Float{Value: 2.5}, result)
}

func TestArith_StringConcatenationStringifiesNonString(t *testing.T) {
	result, err := Arith(OpAdd, 0, 0, &String{Value: "n="}, &Integer{Value: 7})
	assert.NoError(t, err)
	assert.Equal(t, &String{Value: "n=7"}, result)
}

func TestArith_ListConcatenation(t *testing.T) {
	left := &List{Elements: []GoMixObject{&Integer{Value: 1}}}
	right := &List{Elements: []GoMixObject{&Integer{Value: 2}}}
	result, err := Arith(OpAdd, 0, 0, left, right)
	assert.NoError(t, err)
	assert.Equal(t, []GoMixObject{&Integer{Value: 1}, &Integer{Value: 2}}, result.(*List).Elements)
}

func TestArith_StringTimesIntRepeats(t *testing.T) {
	result, err := Arith(OpMul, 0, 0, &String{Value: "ab"}, &Integer{Value: 3})
	assert.NoError(t, err)
	assert.Equal(t, &String{Value: "ababab"}, result)
}

func TestArith_ListTimesNegativeIntClampsToEmpty(t *testing.T) {
	list := &List{Elements: []GoMixObject{&Integer{Value: 1}}}
	result, err := Arith(OpMul, 0, 0, list, &Integer{Value: -1})
	assert.NoError(t, err)
	assert.Empty(t, result.(*List).Elements)
}

func TestArith_DivisionByZeroRaisesForbiddenMagic(t *testing.T) {
	_, err := Arith(OpDiv, 3, 4, &Integer{Value: 1}, &Integer{Value: 0})
	var slayErr *slayerr.Error
	assert.ErrorAs(t, err, &slayErr)
	assert.Equal(t, slayerr.ForbiddenMagic, slayErr.Kind)
}

func TestArith_IntDivisionWithoutRemainderStaysInteger(t *testing.T) {
	result, err := Arith(OpDiv, 0, 0, &Integer{Value: 9}, &Integer{Value: 3})
	assert.NoError(t, err)
	assert.Equal(t, &Integer{Value: 3}, result)
}

func TestArith_IntDivisionWithRemainderPromotesToFloat(t *testing.T) {
	result, err := Arith(OpDiv, 0, 0, &Integer{Value: 7}, &Integer{Value: 2})
	assert.NoError(t, err)
	assert.Equal(t, &Float{Value: 3.5}, result)
}

func TestArith_ModWithZeroDivisorRaisesForbiddenMagic(t *testing.T) {
	_, err := Arith(OpMod, 0, 0, &Integer{Value: 5}, &Integer{Value: 0})
	var slayErr *slayerr.Error
	assert.ErrorAs(t, err, &slayErr)
	assert.Equal(t, slayerr.ForbiddenMagic, slayErr.Kind)
}

func TestArith_NegativeIntPowerFallsBackToFloat(t *testing.T) {
	result, err := Arith(OpPow, 0, 0, &Integer{Value: 2}, &Integer{Value: -1})
	assert.NoError(t, err)
	assert.Equal(t, &Float{Value: 0.5}, result)
}

func TestArith_MismatchedOperandsRaiseForbiddenMagic(t *testing.T) {
	_, err := Arith(OpSub, 1, 2, &String{Value: "x"}, &Boolean{Value: true})
	var slayErr *slayerr.Error
	assert.ErrorAs(t, err, &slayErr)
	assert.Equal(t, slayerr.ForbiddenMagic, slayErr.Kind)
}
