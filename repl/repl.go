/*
File    : lox/repl/repl.go

Package repl implements the interactive Read-Eval-Print Loop. It keeps the
teacher's repl.go shape (a Repl value holding banner/prompt/version text,
chzyer/readline for history and line editing, fatih/color for feedback),
but the expression-vs-statement detection and error-state handling follow
the Lox REPL contract instead of the teacher's always-print-a-result mode.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"lox/config"
	"lox/diagnostics"
	"lox/eval"
	"lox/lexer"
)

var (
	blueColor   = color.New(color.FgBlue)
	greenColor  = color.New(color.FgGreen)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of an interactive session. The
// interpreter state that persists across lines is created by Start and
// lives for the whole session.
type Repl struct {
	cfg *config.Config
}

// New creates a Repl from cfg. A nil cfg falls back to config.Default().
func New(cfg *config.Config) *Repl {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Repl{cfg: cfg}
}

// PrintBanner writes the startup banner, version/author/license line, and
// usage hints to writer.
func (r *Repl) PrintBanner(writer io.Writer) {
	line := strings.Repeat("-", 60)
	blueColor.Fprintln(writer, line)
	greenColor.Fprintln(writer, r.cfg.Banner)
	blueColor.Fprintln(writer, line)
	yellowColor.Fprintf(writer, "Version: %s | Author: %s | License: %s\n", r.cfg.Version, r.cfg.Author, r.cfg.License)
	blueColor.Fprintln(writer, line)
	cyanColor.Fprintln(writer, "Type an expression or statement and press enter.")
	cyanColor.Fprintln(writer, "Type '.exit' to quit.")
	blueColor.Fprintln(writer, line)
}

// Start runs the main loop, reading lines from a readline instance and
// evaluating them against a single long-lived Interpreter. It returns
// true if any runtime error occurred during the session (for the CLI's
// exit code), matching the exit-code table in spec §6.
func (r *Repl) Start(writer io.Writer) bool {
	r.PrintBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.cfg.Prompt,
		HistoryFile:     r.cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	sink := diagnostics.NewConsoleSink(writer, r.cfg.Color)
	interp := eval.New(sink, writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			break
		}
		rl.SaveHistory(line)

		source := prepareLine(line)
		sink.SetSource(source)
		interp.Run(source)
		sink.ClearError()
	}

	return sink.HadRuntimeError
}

// prepareLine implements the REPL mode-detection rule of spec §6: "If the
// input is a single expression (the last non-EOF token is not ';'),
// evaluate the expression and print its stringified value; otherwise run
// as statements." A bare expression is wrapped in a print statement so
// the rest of the pipeline only ever sees complete statements.
func prepareLine(line string) string {
	scanner := lexer.NewScanner(line, nil)
	tokens := scanner.ScanTokens()

	lastNonEOF := -1
	for i, tok := range tokens {
		if tok.Kind != lexer.EOF {
			lastNonEOF = i
		}
	}
	if lastNonEOF == -1 || tokens[lastNonEOF].Kind == lexer.SEMICOLON {
		return line
	}
	// Cut the line just after its last token when only a comment follows,
	// so the comment cannot swallow the closing ");".
	end := len(line)
	for i := 1; i < len(line); i++ {
		prefix := lexer.NewScanner(line[:i], nil).ScanTokens()
		rest := strings.TrimSpace(line[i:])
		if len(prefix) == len(tokens) && prefix[len(prefix)-2].Lexeme == tokens[lastNonEOF].Lexeme && strings.HasPrefix(rest, "/") {
			end = i
			break
		}
	}
	return "print (" + line[:end] + ");"
}
