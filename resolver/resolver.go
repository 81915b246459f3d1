/*
File    : lox/resolver/resolver.go

Resolver performs the static pass described by spec §4.3: a single walk
over the statement list that assigns every non-global Variable, Assign,
This, and Super node a (depth, slot) pair, keyed by the node's own
pointer identity rather than by name or position: two textually
identical references resolve independently, exactly as the Data Model
invariant requires.

Grounded operationally on pylox/resolver.py (scope-stack-of-maps,
declare/define, current_function/current_class tracking) but rebuilt
around Go's closed parser.Expr/parser.Stmt sum instead of Python's
visitor methods, and producing a (depth, slot) side table rather than
pylox's (depth, name) table: the slot component is what lets
environment.Environment avoid name lookups at runtime.
*/
package resolver

import (
	"lox/lexer"
	"lox/parser"
)

// Sink is the subset of diagnostics.Sink the resolver needs.
type Sink interface {
	Error(line int, where, message string)
	Warning(tok lexer.Token, message string)
}

// FunctionKind tracks what kind of function body is currently being
// resolved, used to validate `return`.
type FunctionKind int

const (
	FuncNone FunctionKind = iota
	FuncFunction
	FuncMethod
	FuncInitializer
)

// ClassKind tracks whether resolution is currently inside a class body,
// and whether that class has a superclass, used to validate `this` and
// `super`.
type ClassKind int

const (
	ClassNone ClassKind = iota
	ClassClass
	ClassSubclass
)

// Binding is what the resolver records for a name-use node: how many
// enclosing frames to walk, and which slot in that frame.
type Binding struct {
	Depth int
	Slot  int
}

type scopeEntry struct {
	declared bool
	defined  bool
	token    lexer.Token
	slot     int
	used     bool
}

// scope pairs a scope's name table with a monotonic slot counter: slots
// are assigned in declaration order and never reused, so the count stays
// correct even when a name is declared twice in the same scope (the map
// itself would only grow once for such a name).
type scope struct {
	vars     map[string]*scopeEntry
	nextSlot int
}

func newScope() *scope {
	return &scope{vars: make(map[string]*scopeEntry)}
}

// Resolver walks an AST once, producing a side table of Bindings.
type Resolver struct {
	sink            Sink
	scopes          []*scope
	bindings        map[parser.Expr]Binding
	currentFunction FunctionKind
	currentClass    ClassKind
}

// New creates a Resolver reporting diagnostics to sink.
func New(sink Sink) *Resolver {
	return &Resolver{sink: sink, bindings: make(map[parser.Expr]Binding)}
}

// Resolve walks stmts and returns the completed side table. It never
// stops early on a diagnostic (spec §4.3/§7: "Resolving does not stop on
// diagnostic").
func (r *Resolver) Resolve(stmts []parser.Stmt) map[parser.Expr]Binding {
	r.resolveStmts(stmts)
	return r.bindings
}

func (r *Resolver) resolveStmts(stmts []parser.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) error(tok lexer.Token, message string) {
	r.sink.Error(tok.Line, " at '"+tok.Lexeme+"'", message)
}

// --- scopes -------------------------------------------------------------

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, newScope())
}

// endScope pops the top scope, warning on every binding that was never
// read (spec §4.3 "Unused-local warning").
func (r *Resolver) endScope() {
	top := r.scopes[len(r.scopes)-1]
	for _, entry := range top.vars {
		if !entry.used {
			r.sink.Warning(entry.token, "Local variable '"+entry.token.Lexeme+"' is never used.")
		}
	}
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare registers name in the current scope, reporting an error if the
// scope already has a variable with that name (pylox/resolver.py's own
// declare(), "Already a variable with this name in this scope."). Slots
// are handed out from a monotonic counter rather than the scope's current
// size, so a rejected redeclaration can never shift a later declaration's
// slot out from under the runtime's own Environment.Define count.
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	top := r.scopes[len(r.scopes)-1]
	if _, ok := top.vars[name.Lexeme]; ok {
		r.error(name, "Already a variable with this name in this scope.")
	}
	slot := top.nextSlot
	top.nextSlot++
	top.vars[name.Lexeme] = &scopeEntry{declared: true, token: name, slot: slot}
}

func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	top := r.scopes[len(r.scopes)-1]
	if entry, ok := top.vars[name.Lexeme]; ok {
		entry.defined = true
	}
}

// declareSynthetic binds a compiler-introduced name ("this", "super") at
// slot 0 of the current (just-opened) scope.
func (r *Resolver) declareSynthetic(name string) {
	top := r.scopes[len(r.scopes)-1]
	slot := top.nextSlot
	top.nextSlot++
	top.vars[name] = &scopeEntry{declared: true, defined: true, used: true, slot: slot}
}

// resolveLocal walks the scope stack outward from the top, recording a
// Binding on the first match. A name never found in any local scope is
// left unresolved; the evaluator treats it as a global.
func (r *Resolver) resolveLocal(expr parser.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if entry, ok := r.scopes[i].vars[name.Lexeme]; ok {
			entry.used = true
			r.bindings[expr] = Binding{Depth: len(r.scopes) - 1 - i, Slot: entry.slot}
			return
		}
	}
}

// resolveFunctionBody opens a scope, binds params, resolves the body,
// and restores the enclosing function kind on exit.
func (r *Resolver) resolveFunctionBody(params []lexer.Token, body []parser.Stmt, kind FunctionKind) {
	enclosing := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, p := range params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(body)
	r.endScope()

	r.currentFunction = enclosing
}
