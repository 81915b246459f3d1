/*
File : lox/function/function_test.go
*/
package function

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lox/environment"
	"lox/lexer"
)

func TestToString_NamedVsLambda(t *testing.T) {
	named := &Function{Name: "add"}
	lambda := &Function{Name: ""}
	assert.Equal(t, "<fn add>", named.ToString())
	assert.Equal(t, "<lambda fn>", lambda.ToString())
}

func TestArity(t *testing.T) {
	fn := &Function{Params: []lexer.Token{{Kind: lexer.IDENTIFIER, Lexeme: "a"}, {Kind: lexer.IDENTIFIER, Lexeme: "b"}}}
	assert.Equal(t, 2, fn.Arity())
}

func TestBind_DefinesThisAtSlotZero(t *testing.T) {
	closure := environment.NewGlobal()
	fn := &Function{Name: "speak", Closure: closure}
	class := newClass("Dog")
	instance := NewInstance(class)

	bound := fn.Bind(instance)
	require.NotSame(t, fn.Closure, bound.Closure)
	assert.Same(t, instance, bound.Closure.GetAt(0, 0).(*Instance))
}

func TestInstance_ToString(t *testing.T) {
	class := newClass("Dog")
	instance := NewInstance(class)
	assert.Equal(t, "Dog instance", instance.ToString())
}

func TestClass_ArityMatchesInit(t *testing.T) {
	class := newClass("Point")
	class.Methods["init"] = &Function{Params: []lexer.Token{{Lexeme: "x"}, {Lexeme: "y"}}}
	assert.Equal(t, 2, class.Arity())
}

func TestClass_ArityZeroWithoutInit(t *testing.T) {
	class := newClass("Empty")
	assert.Equal(t, 0, class.Arity())
}
