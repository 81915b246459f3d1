/*
File    : lox/eval/exec.go

Statement execution. return/break propagate as an out-of-band signal
carried by ordinary Go return values rather than panic/recover: spec §9
explicitly prefers "a result variant carrying a Signal discriminant...
only call/loop frames inspect it" over language-level exceptions, and a
second Go return value is the idiomatic way to carry that discriminant
alongside the error channel runtime faults already use.
*/
package eval

import (
	"fmt"

	"lox/environment"
	"lox/function"
	"lox/objects"
	"lox/parser"
)

type signalKind int

const (
	signalNone signalKind = iota
	signalReturn
	signalBreak
)

// signal is the Return/Break discriminant bubbled up through execStmt.
// Block exits (normal, signaled, or erroring) all restore the enclosing
// environment via executeBlock's deferred restore, satisfying spec
// §4.6's "a Block frame that is unwound by either signal must still
// restore the previous environment."
type signal struct {
	kind  signalKind
	value objects.Value
}

func (it *Interpreter) execStmts(stmts []parser.Stmt) (signal, error) {
	for _, s := range stmts {
		sig, err := it.execStmt(s)
		if err != nil {
			return signal{}, err
		}
		if sig.kind != signalNone {
			return sig, nil
		}
	}
	return signal{}, nil
}

func (it *Interpreter) execStmt(stmt parser.Stmt) (signal, error) {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := it.evalExpr(s.Expr)
		return signal{}, err

	case *parser.PrintStmt:
		v, err := it.evalExpr(s.Expr)
		if err != nil {
			return signal{}, err
		}
		fmt.Fprintln(it.out, Stringify(v))
		return signal{}, nil

	case *parser.VarStmt:
		return signal{}, it.execVar(s)

	case *parser.BlockStmt:
		return it.executeBlock(s.Stmts, environment.NewChild(it.env))

	case *parser.IfStmt:
		cond, err := it.evalExpr(s.Cond)
		if err != nil {
			return signal{}, err
		}
		if objects.IsTruthy(cond) {
			return it.execStmt(s.Then)
		}
		if s.Else != nil {
			return it.execStmt(s.Else)
		}
		return signal{}, nil

	case *parser.WhileStmt:
		return it.execWhile(s)

	case *parser.BreakStmt:
		return signal{kind: signalBreak}, nil

	case *parser.FunctionStmt:
		return signal{}, it.execFunctionDecl(s)

	case *parser.ReturnStmt:
		return it.execReturn(s)

	case *parser.ClassStmt:
		return signal{}, it.execClass(s)
	}
	return signal{}, nil
}

// executeBlock runs stmts under env, always restoring the caller's
// environment on the way out regardless of how execStmts returned.
func (it *Interpreter) executeBlock(stmts []parser.Stmt, env *environment.Environment) (signal, error) {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()
	return it.execStmts(stmts)
}

func (it *Interpreter) execVar(s *parser.VarStmt) error {
	var value objects.Value = objects.UninitializedValue
	if s.Init != nil {
		v, err := it.evalExpr(s.Init)
		if err != nil {
			return err
		}
		value = v
	}
	it.defineInCurrentScope(s.Name.Lexeme, value)
	return nil
}

func (it *Interpreter) execWhile(s *parser.WhileStmt) (signal, error) {
	for {
		cond, err := it.evalExpr(s.Cond)
		if err != nil {
			return signal{}, err
		}
		if !objects.IsTruthy(cond) {
			return signal{}, nil
		}
		sig, err := it.execStmt(s.Body)
		if err != nil {
			return signal{}, err
		}
		switch sig.kind {
		case signalBreak:
			return signal{}, nil
		case signalReturn:
			return sig, nil
		}
	}
}

func (it *Interpreter) execFunctionDecl(s *parser.FunctionStmt) error {
	fn := &function.Function{
		Name:     s.Name.Lexeme,
		Params:   s.Params,
		Body:     s.Body,
		Closure:  it.env,
		IsGetter: s.IsGetter,
	}
	it.defineInCurrentScope(s.Name.Lexeme, fn)
	return nil
}

func (it *Interpreter) execReturn(s *parser.ReturnStmt) (signal, error) {
	value := objects.Value(objects.NilValue)
	if s.Value != nil {
		v, err := it.evalExpr(s.Value)
		if err != nil {
			return signal{}, err
		}
		value = v
	}
	return signal{kind: signalReturn, value: value}, nil
}

// defineInCurrentScope appends value as a new slot in the current frame,
// additionally recording it by name when the current frame is globals
// (spec §4.5 "if at global scope, record name -> slot").
func (it *Interpreter) defineInCurrentScope(name string, value objects.Value) {
	if it.env == it.globals {
		it.globals.DefineGlobal(name, value)
		return
	}
	it.env.Define(value)
}
