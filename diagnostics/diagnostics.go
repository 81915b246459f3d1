/*
File    : lox/diagnostics/diagnostics.go

Package diagnostics defines the Sink contract (spec §6): the core never
formats a message for a human, it only reports facts to an injected
collaborator. Grounded on CWBudde-go-dws's internal/errors/errors.go,
which keeps the same separation between "what went wrong" and "how it's
displayed".
*/
package diagnostics

import "lox/lexer"

// Sink receives every diagnostic the core ever produces: lex/parse/
// resolve errors, resolver warnings, and runtime errors. Implementations
// decide formatting and destination; the core only calls these methods.
type Sink interface {
	// Error reports a lex/parse/resolve diagnostic at a source line.
	// where is a short location hint (" at end", " at 'foo'", or "").
	Error(line int, where, message string)
	// Warning reports a non-fatal diagnostic, currently only "unused
	// local variable", at the declaration token.
	Warning(tok lexer.Token, message string)
	// RuntimeError reports an unrecoverable runtime fault at the
	// offending token.
	RuntimeError(tok lexer.Token, message string)
}
