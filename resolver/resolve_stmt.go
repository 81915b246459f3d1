/*
File : lox/resolver/resolve_stmt.go
*/
package resolver

import "lox/parser"

func (r *Resolver) resolveStmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		r.resolveExpr(s.Expr)
	case *parser.PrintStmt:
		r.resolveExpr(s.Expr)
	case *parser.VarStmt:
		r.resolveVar(s)
	case *parser.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()
	case *parser.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *parser.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)
	case *parser.BreakStmt:
		// no static constraint in this language: a break with no
		// enclosing loop is not diagnosed. At runtime it ends the
		// enclosing function call, or the rest of the top-level program.
	case *parser.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunctionBody(s.Params, s.Body, FuncFunction)
	case *parser.ReturnStmt:
		r.resolveReturn(s)
	case *parser.ClassStmt:
		r.resolveClass(s)
	}
}

func (r *Resolver) resolveVar(s *parser.VarStmt) {
	r.declare(s.Name)
	if s.Init != nil {
		r.resolveExpr(s.Init)
	}
	r.define(s.Name)
}

func (r *Resolver) resolveReturn(s *parser.ReturnStmt) {
	if r.currentFunction == FuncNone {
		r.error(s.Keyword, "Can't return from top-level code.")
	}
	if s.Value != nil {
		if r.currentFunction == FuncInitializer {
			r.error(s.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(s.Value)
	}
}

func (r *Resolver) resolveClass(s *parser.ClassStmt) {
	enclosingClass := r.currentClass
	r.declare(s.Name)
	r.define(s.Name)

	for _, super := range s.Superclasses {
		if super.Name.Lexeme == s.Name.Lexeme {
			r.error(super.Name, "A class can't inherit from itself.")
			continue
		}
		r.resolveExpr(super)
	}

	if len(s.Superclasses) > 0 {
		r.currentClass = ClassSubclass
		r.beginScope()
		r.declareSynthetic("super")
	} else {
		r.currentClass = ClassClass
	}

	r.beginScope()
	r.declareSynthetic("this")

	for _, method := range s.Methods {
		kind := FuncMethod
		if method.Name.Lexeme == "init" {
			kind = FuncInitializer
		}
		r.resolveFunctionBody(method.Params, method.Body, kind)
	}
	for _, method := range s.ClassMethods {
		if method.Name.Lexeme == "init" {
			r.error(method.Name, "A class method can't be named 'init'.")
		}
		r.resolveFunctionBody(method.Params, method.Body, FuncMethod)
	}

	r.endScope() // this

	if len(s.Superclasses) > 0 {
		r.endScope() // super
	}

	r.currentClass = enclosingClass
}
