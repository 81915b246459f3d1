/*
File    : lox/cmd/lox/root.go

Root command wiring, grounded on CWBudde-go-dws's cmd/dwscript/cmd/root.go
(a cobra.Command tree with Execute() as the package's sole public entry
point) but shaped around the exact CLI contract of spec §6: zero args
start the REPL, one arg runs a file, more than one is a usage error,
rather than dwscript's subcommand-per-action layout.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lox/config"
	"lox/diagnostics"
	"lox/eval"
	"lox/repl"
)

const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
)

// exitError carries a specific process exit code through cobra's error
// return path without printing a redundant message (cobra would otherwise
// print err.Error() and re-show command usage for every non-nil error).
type exitError struct{ code int }

func (e *exitError) Error() string { return "" }

var cfgPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lox [script]",
		Short:         "lox is a tree-walking interpreter for the Lox language",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			switch len(args) {
			case 0:
				return runREPL(cfg)
			case 1:
				return runFile(cfg, args[0])
			default:
				fmt.Fprintln(os.Stderr, "Usage: lox [script]")
				return &exitError{exitUsage}
			}
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", ".loxrc.yaml", "path to REPL/CLI config file")
	root.AddCommand(newRunCmd())
	return root
}

// runREPL starts an interactive session; spec §6's exit table has no REPL
// entry, so a session is reported as a runtime-error exit only if a
// runtime error occurred on its way out (mirroring "had runtime error" not
// being cleared between lines).
func runREPL(cfg *config.Config) error {
	session := repl.New(cfg)
	if session.Start(os.Stdout) {
		return &exitError{exitSoftware}
	}
	return nil
}

func runFile(cfg *config.Config, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lox: could not read %q: %v\n", path, err)
		return &exitError{exitUsage}
	}
	return runSource(cfg, string(source))
}

// runSource drives one interpreter run end to end and maps its status to
// the exit-code table in spec §6.
func runSource(cfg *config.Config, source string) error {
	sink := diagnostics.NewConsoleSink(os.Stdout, cfg.Color)
	sink.SetSource(source)
	interp := eval.New(sink, os.Stdout)

	switch interp.Run(source) {
	case eval.StatusHadError:
		return &exitError{exitDataErr}
	case eval.StatusHadRuntimeError:
		return &exitError{exitSoftware}
	default:
		return nil
	}
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	err := newRootCmd().Execute()
	if err == nil {
		return exitOK
	}
	if ee, ok := err.(*exitError); ok {
		return ee.code
	}
	fmt.Fprintln(os.Stderr, err)
	return exitUsage
}
