/*
File : lox/diagnostics/diagnostics_test.go
*/
package diagnostics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"lox/lexer"
)

func TestCollectingSink_RecordsAll(t *testing.T) {
	sink := NewCollectingSink()
	sink.Error(3, " at 'x'", "Expect ';' after value.")
	sink.Warning(lexer.Token{Line: 4, Lexeme: "y"}, "Local variable 'y' is never used.")
	sink.RuntimeError(lexer.Token{Line: 5}, "Undefined variable 'z'.")

	assert.True(t, sink.HadError())
	assert.True(t, sink.HadRuntimeError())
	assert.Len(t, sink.Warnings, 1)
}

func TestConsoleSink_SetsErrorFlags(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, false)

	sink.Error(1, "", "Unexpected character.")
	assert.True(t, sink.HadError)
	assert.Contains(t, buf.String(), "[line 1] Error: Unexpected character.")

	sink.ClearError()
	assert.False(t, sink.HadError)

	sink.RuntimeError(lexer.Token{Line: 2}, "Undefined variable 'a'.")
	assert.True(t, sink.HadRuntimeError)

	sink.ClearError()
	assert.True(t, sink.HadRuntimeError, "ClearError must not clear the runtime-error flag")
}

func TestConsoleSink_PrintsSourceLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, false)
	sink.SetSource("var a = 1\nvar b =")
	sink.Error(2, " at end", "Expect ';' after variable declaration.")
	assert.Contains(t, buf.String(), "var b =")
}
