/*
File : lox/objects/objects_test.go
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_ToString_TrimsTrailingZero(t *testing.T) {
	assert.Equal(t, "4", Number{Value: 4}.ToString())
	assert.Equal(t, "4.5", Number{Value: 4.5}.ToString())
	assert.Equal(t, "-3", Number{Value: -3}.ToString())
}

func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(NilValue))
	assert.False(t, IsTruthy(False))
	assert.True(t, IsTruthy(True))
	assert.True(t, IsTruthy(Number{Value: 0}))
	assert.True(t, IsTruthy(String{Value: ""}))
}

func TestIsEqual_NilOnlyEqualsNil(t *testing.T) {
	assert.True(t, IsEqual(NilValue, NilValue))
	assert.False(t, IsEqual(NilValue, False))
	assert.False(t, IsEqual(False, NilValue))
}

func TestIsEqual_ByValue(t *testing.T) {
	assert.True(t, IsEqual(Number{Value: 1}, Number{Value: 1}))
	assert.False(t, IsEqual(Number{Value: 1}, Number{Value: 2}))
	assert.True(t, IsEqual(String{Value: "a"}, String{Value: "a"}))
	assert.False(t, IsEqual(Number{Value: 1}, String{Value: "1"}))
}

func TestBoolOf(t *testing.T) {
	assert.Equal(t, True, BoolOf(true))
	assert.Equal(t, False, BoolOf(false))
}
