/*
File    : lox/eval/expr.go

Expression evaluation. One type switch drives every expression variant,
the same shape as resolver.resolveExpr, deliberately, since both walk
the same closed parser.Expr sum (spec §9 "one match site per traversal").
*/
package eval

import (
	"lox/function"
	"lox/lexer"
	"lox/objects"
	"lox/parser"
)

func (it *Interpreter) evalExpr(expr parser.Expr) (objects.Value, error) {
	if expr == nil {
		// A BinaryExpr with a nil Left is a parser recovery placeholder
		// (spec Data Model invariant): it is never reached in a run that
		// got past the had_error gate, but returning Nil here rather than
		// panicking keeps that guarantee from being load-bearing.
		return objects.NilValue, nil
	}

	switch e := expr.(type) {
	case *parser.LiteralExpr:
		return literalValue(e), nil
	case *parser.GroupingExpr:
		return it.evalExpr(e.Inner)
	case *parser.UnaryExpr:
		return it.evalUnary(e)
	case *parser.BinaryExpr:
		return it.evalBinary(e)
	case *parser.TernaryExpr:
		return it.evalTernary(e)
	case *parser.LogicalExpr:
		return it.evalLogical(e)
	case *parser.VariableExpr:
		return it.lookupVariable(e.Name, e)
	case *parser.AssignExpr:
		return it.evalAssign(e)
	case *parser.CallExpr:
		return it.evalCall(e)
	case *parser.GetExpr:
		return it.evalGet(e)
	case *parser.SetExpr:
		return it.evalSet(e)
	case *parser.ThisExpr:
		return it.lookupVariable(e.Keyword, e)
	case *parser.SuperExpr:
		return it.evalSuper(e)
	case *parser.LambdaExpr:
		return it.evalLambda(e), nil
	}
	return objects.NilValue, nil
}

func literalValue(e *parser.LiteralExpr) objects.Value {
	switch v := e.Value.(type) {
	case bool:
		return objects.BoolOf(v)
	case float64:
		return objects.Number{Value: v}
	case string:
		return objects.String{Value: v}
	default:
		return objects.NilValue
	}
}

func (it *Interpreter) evalUnary(e *parser.UnaryExpr) (objects.Value, error) {
	right, err := it.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case lexer.MINUS:
		n, ok := right.(objects.Number)
		if !ok {
			return nil, objects.NewRuntimeError(e.Op, "Operand must be a number.")
		}
		return objects.Number{Value: -n.Value}, nil
	case lexer.BANG:
		return objects.BoolOf(!objects.IsTruthy(right)), nil
	}
	return objects.NilValue, nil
}

func (it *Interpreter) evalBinary(e *parser.BinaryExpr) (objects.Value, error) {
	left, err := it.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case lexer.PLUS:
		return it.evalAdd(e, left, right)
	case lexer.MINUS, lexer.STAR, lexer.SLASH,
		lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL:
		return it.evalArithmeticOrCompare(e, left, right)
	case lexer.BANG_EQUAL:
		return objects.BoolOf(!objects.IsEqual(left, right)), nil
	case lexer.EQUAL_EQUAL:
		return objects.BoolOf(objects.IsEqual(left, right)), nil
	}
	return objects.NilValue, nil
}

// evalAdd implements "+ adds two numbers, or concatenates if either
// operand is a string (the non-string side is stringified, with trailing
// .0 trimmed)": Number.ToString already trims the trailing .0, so
// stringifying either side for the string branch gets that for free.
func (it *Interpreter) evalAdd(e *parser.BinaryExpr, left, right objects.Value) (objects.Value, error) {
	if ln, ok := left.(objects.Number); ok {
		if rn, ok := right.(objects.Number); ok {
			return objects.Number{Value: ln.Value + rn.Value}, nil
		}
	}
	_, lIsString := left.(objects.String)
	_, rIsString := right.(objects.String)
	if lIsString || rIsString {
		return objects.String{Value: left.ToString() + right.ToString()}, nil
	}
	return nil, objects.NewRuntimeError(e.Op, "Operands must be two numbers or two strings.")
}

func (it *Interpreter) evalArithmeticOrCompare(e *parser.BinaryExpr, left, right objects.Value) (objects.Value, error) {
	ln, lok := left.(objects.Number)
	rn, rok := right.(objects.Number)
	if !lok || !rok {
		return nil, objects.NewRuntimeError(e.Op, "Operands must be numbers.")
	}
	switch e.Op.Kind {
	case lexer.MINUS:
		return objects.Number{Value: ln.Value - rn.Value}, nil
	case lexer.STAR:
		return objects.Number{Value: ln.Value * rn.Value}, nil
	case lexer.SLASH:
		if rn.Value == 0 {
			return nil, objects.NewRuntimeError(e.Op, "Cannot divide by zero.")
		}
		return objects.Number{Value: ln.Value / rn.Value}, nil
	case lexer.GREATER:
		return objects.BoolOf(ln.Value > rn.Value), nil
	case lexer.GREATER_EQUAL:
		return objects.BoolOf(ln.Value >= rn.Value), nil
	case lexer.LESS:
		return objects.BoolOf(ln.Value < rn.Value), nil
	case lexer.LESS_EQUAL:
		return objects.BoolOf(ln.Value <= rn.Value), nil
	}
	return objects.NilValue, nil
}

func (it *Interpreter) evalTernary(e *parser.TernaryExpr) (objects.Value, error) {
	cond, err := it.evalExpr(e.Cond)
	if err != nil {
		return nil, err
	}
	if objects.IsTruthy(cond) {
		return it.evalExpr(e.Then)
	}
	return it.evalExpr(e.Else)
}

func (it *Interpreter) evalLogical(e *parser.LogicalExpr) (objects.Value, error) {
	left, err := it.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	truthy := objects.IsTruthy(left)
	if e.Op.Kind == lexer.OR && truthy {
		return left, nil
	}
	if e.Op.Kind == lexer.AND && !truthy {
		return left, nil
	}
	return it.evalExpr(e.Right)
}

func (it *Interpreter) evalLambda(e *parser.LambdaExpr) objects.Value {
	return &function.Function{Params: e.Params, Body: e.Body, Closure: it.env}
}

func (it *Interpreter) evalAssign(e *parser.AssignExpr) (objects.Value, error) {
	value, err := it.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	if b, ok := it.bindings[e]; ok {
		it.env.AssignAt(b.Depth, b.Slot, value)
		return value, nil
	}
	if !it.globals.AssignGlobal(e.Name.Lexeme, value) {
		return nil, objects.NewRuntimeError(e.Name, "Undefined variable '%s'.", e.Name.Lexeme)
	}
	return value, nil
}

// lookupVariable services both VariableExpr and ThisExpr: both are
// resolved identically (spec §4.3 "this... resolved like a local" /
// §4.5 "This: resolved like a local").
func (it *Interpreter) lookupVariable(name lexer.Token, expr parser.Expr) (objects.Value, error) {
	if b, ok := it.bindings[expr]; ok {
		v := it.env.GetAt(b.Depth, b.Slot)
		if _, uninit := v.(objects.Uninitialized); uninit {
			return nil, objects.NewRuntimeError(name, "Variable '%s' accessed before its initialized or assigned.", name.Lexeme)
		}
		return v, nil
	}
	v, ok := it.globals.GetGlobal(name.Lexeme)
	if !ok {
		return nil, objects.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
	}
	if _, uninit := v.(objects.Uninitialized); uninit {
		return nil, objects.NewRuntimeError(name, "Variable '%s' accessed before its initialized or assigned.", name.Lexeme)
	}
	return v, nil
}

func (it *Interpreter) evalSuper(e *parser.SuperExpr) (objects.Value, error) {
	b, ok := it.bindings[e]
	if !ok {
		return nil, objects.NewRuntimeError(e.Keyword, "Undefined variable 'super'.")
	}
	raw := it.env.GetAt(b.Depth, b.Slot)
	sb, ok := raw.(superBinding)
	if !ok {
		return nil, objects.NewRuntimeError(e.Keyword, "Undefined variable 'super'.")
	}
	// "this" sits one frame closer than "super": resolveClass always
	// opens the "this" scope immediately inside the "super" scope.
	thisRaw := it.env.GetAt(b.Depth-1, 0)
	instance, ok := thisRaw.(*function.Instance)
	if !ok {
		return nil, objects.NewRuntimeError(e.Keyword, "Undefined variable 'this'.")
	}
	for _, super := range sb.classes {
		for _, ancestor := range super.MRO {
			if m, ok := ancestor.Methods[e.Method.Lexeme]; ok {
				return m.Bind(instance), nil
			}
		}
	}
	return nil, objects.NewRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
}

func (it *Interpreter) evalGet(e *parser.GetExpr) (objects.Value, error) {
	obj, err := it.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}

	// A class method is read off the Class value itself, unbound; it
	// never receives "this" (pylox's visit_Get_Expr treats LoxClass as a
	// LoxInstance whose fields are exactly its class-method table).
	if class, ok := obj.(*function.Class); ok {
		if m, ok := class.FindClassMethod(e.Name.Lexeme); ok {
			return m, nil
		}
		return nil, objects.NewRuntimeError(e.Name, "Undefined property '%s'.", e.Name.Lexeme)
	}

	instance, ok := obj.(*function.Instance)
	if !ok {
		return nil, objects.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	if v, ok := instance.Fields[e.Name.Lexeme]; ok {
		return v, nil
	}
	if m, ok := instance.Class.FindMethod(e.Name.Lexeme); ok {
		bound := m.Bind(instance)
		if bound.IsGetter {
			return it.callFunction(bound, nil)
		}
		return bound, nil
	}
	return nil, objects.NewRuntimeError(e.Name, "Undefined property '%s'.", e.Name.Lexeme)
}

func (it *Interpreter) evalSet(e *parser.SetExpr) (objects.Value, error) {
	obj, err := it.evalExpr(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*function.Instance)
	if !ok {
		return nil, objects.NewRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := it.evalExpr(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Fields[e.Name.Lexeme] = value
	return value, nil
}

func (it *Interpreter) evalCall(e *parser.CallExpr) (objects.Value, error) {
	callee, err := it.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]objects.Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := it.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return it.callValue(callee, args, e.Paren)
}
