/*
File    : lox/eval/interpreter.go

Interpreter is the tree-walking evaluator: it owns the globals frame, the
current environment, and the resolver's (depth, slot) side table, the way
the teacher's Evaluator (akashmaji946-go-mix/eval/evaluator.go) owns its
Scp/Builtins/Par fields. It also implements lexer.Sink, parser.Sink, and
resolver.Sink itself, delegating to the injected diagnostics.Sink while
tracking had_error/had_runtime_error the way evaluator.go's CreateError
tracked position from the live parser state, here tracked directly on
the Interpreter instead, since diagnostics arrive from three independent
passes rather than one.
*/
package eval

import (
	"io"

	"lox/diagnostics"
	"lox/environment"
	"lox/lexer"
	"lox/objects"
	"lox/parser"
	"lox/resolver"
	"lox/std"
)

// Interpreter runs Lox source end to end: lex, parse, resolve, walk. One
// Interpreter persists across an entire REPL session (spec §5 "one global
// process-wide evaluator state... that persists across REPL lines").
type Interpreter struct {
	sink     diagnostics.Sink
	out      io.Writer
	globals  *environment.Environment
	env      *environment.Environment
	bindings map[parser.Expr]resolver.Binding

	hadError        bool
	hadRuntimeError bool
}

// New creates an Interpreter reporting to sink and printing to out, with
// the native globals (clock) already installed.
func New(sink diagnostics.Sink, out io.Writer) *Interpreter {
	globals := environment.NewGlobal()
	for name, fn := range std.Globals() {
		globals.DefineGlobal(name, fn)
	}
	return &Interpreter{sink: sink, out: out, globals: globals, env: globals}
}

// Error implements lexer.Sink, parser.Sink, and resolver.Sink: the
// Interpreter is handed to each pass as their diagnostic sink so it can
// observe had_error without the passes knowing anything about evaluation.
func (it *Interpreter) Error(line int, where, message string) {
	it.hadError = true
	it.sink.Error(line, where, message)
}

// Warning implements resolver.Sink.
func (it *Interpreter) Warning(tok lexer.Token, message string) {
	it.sink.Warning(tok, message)
}

// RuntimeError reports a runtime fault and latches had_runtime_error.
func (it *Interpreter) RuntimeError(tok lexer.Token, message string) {
	it.hadRuntimeError = true
	it.sink.RuntimeError(tok, message)
}

// HadRuntimeError reports whether any run on this Interpreter has raised a
// runtime error; the REPL contract (spec §6) never clears it.
func (it *Interpreter) HadRuntimeError() bool { return it.hadRuntimeError }

// RunStatus is the result of one Run call (spec §6 entry contract).
type RunStatus int

const (
	StatusOK RunStatus = iota
	StatusHadError
	StatusHadRuntimeError
)

// Run lexes, parses, resolves, and, if no static diagnostic fired,
// walks source. had_error is reset at the start of every call so a clean
// line after a bad one doesn't inherit its failure (spec §6 REPL
// contract); had_runtime_error is never reset here.
func (it *Interpreter) Run(source string) RunStatus {
	it.hadError = false

	scanner := lexer.NewScanner(source, it)
	tokens := scanner.ScanTokens()

	p := parser.NewParser(tokens, it)
	stmts := p.Parse()
	if it.hadError {
		return StatusHadError
	}

	r := resolver.New(it)
	it.bindings = r.Resolve(stmts)
	if it.hadError {
		return StatusHadError
	}

	if _, err := it.execStmts(stmts); err != nil {
		it.reportRuntimeError(err)
		return StatusHadRuntimeError
	}
	return StatusOK
}

func (it *Interpreter) reportRuntimeError(err error) {
	if rt, ok := err.(*objects.RuntimeError); ok {
		it.RuntimeError(rt.Token, rt.Message)
		return
	}
	it.RuntimeError(lexer.Token{}, err.Error())
}
