/*
File    : lox/parser/ast.go

The AST is a closed tagged sum, not an open Visitor hierarchy: each Expr
or Stmt variant is a distinct pointer type satisfying a marker interface,
and every consumer (resolver, evaluator) dispatches with a single
type switch. A systems language doesn't need double dispatch to get
exhaustiveness: a switch with no default case does the same job and the
compiler can flag a missing case directly. Deliberately diverges from the
teacher's parser/node.go Visitor pattern for this reason.

Nodes carry identity: they are always referred to through their pointer,
never copied or structurally compared, so the resolver can key its
depth/slot side table on the pointer itself.
*/
package parser

import "lox/lexer"

// Expr is satisfied by every expression node.
type Expr interface {
	exprNode()
}

// Stmt is satisfied by every statement node.
type Stmt interface {
	stmtNode()
}

// LiteralExpr holds a constant value produced directly by the scanner:
// a number, a string, true, false, or nil.
type LiteralExpr struct {
	Value interface{} // nil, bool, float64, or string
}

// GroupingExpr is a parenthesized sub-expression, kept as its own node so
// printers can re-insert the parens.
type GroupingExpr struct {
	Inner Expr
}

// UnaryExpr is `-x` or `!x`. Op is BANG or MINUS.
type UnaryExpr struct {
	Op    lexer.Token
	Right Expr
}

// BinaryExpr is any two-operand infix expression. Left or Right may be
// nil (a recovery placeholder left by the binary-missing-left rule), and
// must never be evaluated without a prior diagnostic having been raised.
type BinaryExpr struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

// TernaryExpr is `cond ? then : else`.
type TernaryExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

// LogicalExpr is `and`/`or`, kept distinct from BinaryExpr because it
// short-circuits.
type LogicalExpr struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

// VariableExpr reads a name. Name is the identifier token itself, since
// the resolver's side table is keyed on the *VariableExpr pointer, not on
// the name text.
type VariableExpr struct {
	Name lexer.Token
}

// AssignExpr writes Value into the variable Name.
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

// CallExpr is `callee(args...)`. Paren is the closing `)`, recorded so
// runtime errors can point at the call site.
type CallExpr struct {
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

// GetExpr is `obj.name`, a property or method read.
type GetExpr struct {
	Object Expr
	Name   lexer.Token
}

// SetExpr is `obj.name = value`, a field write.
type SetExpr struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

// ThisExpr is the `this` keyword used as an expression.
type ThisExpr struct {
	Keyword lexer.Token
}

// SuperExpr is `super.method`.
type SuperExpr struct {
	Keyword lexer.Token
	Method  lexer.Token
}

// LambdaExpr is an anonymous `fun(params) { body }` expression.
type LambdaExpr struct {
	Keyword lexer.Token
	Params  []lexer.Token
	Body    []Stmt
}

func (*LiteralExpr) exprNode()  {}
func (*GroupingExpr) exprNode() {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*TernaryExpr) exprNode()  {}
func (*LogicalExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*CallExpr) exprNode()     {}
func (*GetExpr) exprNode()      {}
func (*SetExpr) exprNode()      {}
func (*ThisExpr) exprNode()     {}
func (*SuperExpr) exprNode()    {}
func (*LambdaExpr) exprNode()   {}

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates Expr, stringifies it, and writes a line.
type PrintStmt struct {
	Expr Expr
}

// VarStmt declares Name, optionally initialized. Init is nil when the
// declaration has no initializer, in which case the evaluator stores
// objects.Uninitialized rather than Nil: the two are distinct (spec Data
// Model invariant).
type VarStmt struct {
	Name lexer.Token
	Init Expr
}

// BlockStmt introduces a new lexical scope around Stmts.
type BlockStmt struct {
	Stmts []Stmt
}

// IfStmt's Else is nil when there is no else-branch.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt loops Body while Cond is truthy.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// BreakStmt exits the nearest enclosing WhileStmt.
type BreakStmt struct {
	Keyword lexer.Token
}

// FunctionStmt is a named function declaration. It also represents a
// class's instance and class methods, and is a getter when IsGetter is
// set (declared with no parameter list at all, not merely an empty one).
type FunctionStmt struct {
	Name     lexer.Token
	Params   []lexer.Token
	Body     []Stmt
	IsGetter bool
}

// ReturnStmt's Value is nil for a bare `return;`.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

// ClassStmt declares a class with zero or more direct superclasses
// (multiple inheritance is first-class), instance methods, and class
// (static) methods.
type ClassStmt struct {
	Name         lexer.Token
	Superclasses []*VariableExpr
	Methods      []*FunctionStmt
	ClassMethods []*FunctionStmt
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*BreakStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
func (*ClassStmt) stmtNode()      {}
