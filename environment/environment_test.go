/*
File : lox/environment/environment_test.go
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lox/objects"
)

func TestDefineAndGetAt(t *testing.T) {
	env := NewGlobal()
	slot := env.Define(objects.Number{Value: 1})
	assert.Equal(t, 0, slot)
	assert.Equal(t, objects.Number{Value: 1}, env.GetAt(0, slot))
}

func TestChildFrameReadsThroughAncestor(t *testing.T) {
	outer := NewGlobal()
	outer.Define(objects.String{Value: "outer"})

	inner := NewChild(outer)
	inner.Define(objects.String{Value: "inner"})

	assert.Equal(t, objects.String{Value: "inner"}, inner.GetAt(0, 0))
	assert.Equal(t, objects.String{Value: "outer"}, inner.GetAt(1, 0))
}

func TestAssignAtMutatesSharedFrame(t *testing.T) {
	outer := NewGlobal()
	outer.Define(objects.Number{Value: 0})

	alias1 := NewChild(outer)
	alias2 := NewChild(outer)

	alias1.AssignAt(1, 0, objects.Number{Value: 42})
	assert.Equal(t, objects.Number{Value: 42}, alias2.GetAt(1, 0))
}

func TestGlobalByName(t *testing.T) {
	globals := NewGlobal()
	globals.DefineGlobal("clock", &objects.NativeFn{Name: "clock"})

	v, ok := globals.GetGlobal("clock")
	assert.True(t, ok)
	assert.Equal(t, "clock", v.(*objects.NativeFn).Name)

	_, ok = globals.GetGlobal("missing")
	assert.False(t, ok)
}

func TestAssignGlobalRequiresExistingBinding(t *testing.T) {
	globals := NewGlobal()
	assert.False(t, globals.AssignGlobal("x", objects.NilValue))

	globals.DefineGlobal("x", objects.Number{Value: 1})
	assert.True(t, globals.AssignGlobal("x", objects.Number{Value: 2}))
	v, _ := globals.GetGlobal("x")
	assert.Equal(t, objects.Number{Value: 2}, v)
}
