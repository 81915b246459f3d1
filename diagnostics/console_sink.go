/*
File : lox/diagnostics/console_sink.go

ConsoleSink is the default Sink: a line-and-caret display grounded on
CWBudde-go-dws's internal/errors/errors.go Format(color bool), colorized
with github.com/fatih/color the way the teacher's repl and main packages
already colorize banners and prompts.
*/
package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"lox/lexer"
)

// ConsoleSink writes diagnostics to Out as they arrive, tracking whether
// a static error or a runtime error has been seen; the REPL and CLI
// consult these flags to decide exit codes and whether to clear state
// between lines.
type ConsoleSink struct {
	Out             io.Writer
	Source          string
	Color           bool
	HadError        bool
	HadRuntimeError bool
}

// NewConsoleSink creates a sink that writes to out, optionally showing
// source for the error line when Source is set later via SetSource.
func NewConsoleSink(out io.Writer, useColor bool) *ConsoleSink {
	return &ConsoleSink{Out: out, Color: useColor}
}

// SetSource updates the source text used to render caret context; the
// REPL calls this once per line before running it.
func (s *ConsoleSink) SetSource(source string) {
	s.Source = source
}

// ClearError resets HadError but not HadRuntimeError, matching the REPL
// contract in spec §6 (a runtime error from an earlier line should keep
// the process's exit code a runtime-error exit even if later lines are
// clean).
func (s *ConsoleSink) ClearError() {
	s.HadError = false
}

func (s *ConsoleSink) paint(c *color.Color, text string) string {
	if !s.Color {
		return text
	}
	return c.Sprint(text)
}

func (s *ConsoleSink) Error(line int, where, message string) {
	s.HadError = true
	header := fmt.Sprintf("[line %d] Error%s: %s", line, where, message)
	fmt.Fprintln(s.Out, s.paint(redBold, header))
	s.printSourceLine(line)
}

func (s *ConsoleSink) Warning(tok lexer.Token, message string) {
	header := fmt.Sprintf("[line %d] Warning at '%s': %s", tok.Line, tok.Lexeme, message)
	fmt.Fprintln(s.Out, s.paint(yellow, header))
}

func (s *ConsoleSink) RuntimeError(tok lexer.Token, message string) {
	s.HadRuntimeError = true
	fmt.Fprintf(s.Out, "%s\n[line %d]\n", s.paint(redBold, message), tok.Line)
}

func (s *ConsoleSink) printSourceLine(line int) {
	if s.Source == "" {
		return
	}
	lines := strings.Split(s.Source, "\n")
	if line < 1 || line > len(lines) {
		return
	}
	prefix := fmt.Sprintf("%4d | ", line)
	fmt.Fprintln(s.Out, prefix+lines[line-1])
}

var (
	redBold = color.New(color.FgRed, color.Bold)
	yellow  = color.New(color.FgYellow)
)
