/*
File    : lox/eval/call.go

Call dispatch: the arity-check-then-invoke shape is grounded on the
teacher's evaluator.go CallFunction (swap the current environment in,
run the body, restore it on the way out), generalized to the three
callable kinds Lox has (Function, Class, NativeFn) instead of GoMix's
single function kind.
*/
package eval

import (
	"lox/environment"
	"lox/function"
	"lox/lexer"
	"lox/objects"
)

func (it *Interpreter) callValue(callee objects.Value, args []objects.Value, paren lexer.Token) (objects.Value, error) {
	switch fn := callee.(type) {
	case *function.Function:
		if len(args) != fn.Arity() {
			return nil, arityError(paren, fn.Arity(), len(args))
		}
		return it.callFunction(fn, args)
	case *function.Class:
		if len(args) != fn.Arity() {
			return nil, arityError(paren, fn.Arity(), len(args))
		}
		return it.callClass(fn, args)
	case *objects.NativeFn:
		if len(args) != fn.Arity() {
			return nil, arityError(paren, fn.Arity(), len(args))
		}
		return fn.Fn(args)
	default:
		return nil, objects.NewRuntimeError(paren, "Can only call functions and classes.")
	}
}

func arityError(paren lexer.Token, want, got int) error {
	return objects.NewRuntimeError(paren, "Expected %d arguments but got %d.", want, got)
}

// callFunction runs fn's body under a fresh frame binding its parameters
// positionally, matching the slot order the resolver assigned them.
func (it *Interpreter) callFunction(fn *function.Function, args []objects.Value) (objects.Value, error) {
	env := environment.NewChild(fn.Closure)
	for _, arg := range args {
		env.Define(arg)
	}

	sig, err := it.executeBlock(fn.Body, env)
	if err != nil {
		return nil, err
	}

	if fn.IsInitializer {
		// "this" lives at slot 0 of the bound closure itself (Bind
		// defines it there), so depth 0 from that closure finds it.
		return fn.Closure.GetAt(0, 0), nil
	}
	if sig.kind == signalReturn {
		return sig.value, nil
	}
	return objects.NilValue, nil
}

func (it *Interpreter) callClass(class *function.Class, args []objects.Value) (objects.Value, error) {
	instance := function.NewInstance(class)
	if init, ok := class.FindMethod("init"); ok {
		if _, err := it.callFunction(init.Bind(instance), args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
