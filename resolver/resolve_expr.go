/*
File : lox/resolver/resolve_expr.go
*/
package resolver

import "lox/parser"

func (r *Resolver) resolveExpr(expr parser.Expr) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		// no bindings
	case *parser.GroupingExpr:
		r.resolveExpr(e.Inner)
	case *parser.UnaryExpr:
		r.resolveExpr(e.Right)
	case *parser.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *parser.TernaryExpr:
		r.resolveExpr(e.Cond)
		r.resolveExpr(e.Then)
		r.resolveExpr(e.Else)
	case *parser.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *parser.VariableExpr:
		r.resolveVariableExpr(e)
	case *parser.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *parser.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}
	case *parser.GetExpr:
		r.resolveExpr(e.Object)
	case *parser.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *parser.ThisExpr:
		r.resolveThis(e)
	case *parser.SuperExpr:
		r.resolveSuper(e)
	case *parser.LambdaExpr:
		r.resolveFunctionBody(e.Params, e.Body, FuncFunction)
	}
}

func (r *Resolver) resolveVariableExpr(e *parser.VariableExpr) {
	if len(r.scopes) > 0 {
		if entry, ok := r.scopes[len(r.scopes)-1].vars[e.Name.Lexeme]; ok && entry.declared && !entry.defined {
			r.error(e.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name)
}

func (r *Resolver) resolveThis(e *parser.ThisExpr) {
	if r.currentClass == ClassNone {
		r.error(e.Keyword, "Can't use 'this' outside of a class.")
		return
	}
	r.resolveLocal(e, e.Keyword)
}

func (r *Resolver) resolveSuper(e *parser.SuperExpr) {
	switch r.currentClass {
	case ClassNone:
		r.error(e.Keyword, "Can't use 'super' outside of a class.")
		return
	case ClassClass:
		r.error(e.Keyword, "Can't use 'super' in a class with no superclass.")
		return
	}
	r.resolveLocal(e, e.Keyword)
}
