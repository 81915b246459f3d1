/*
File    : lox/cmd/lox/run.go

The "run" subcommand is the domain-stack addition: a --watch mode that
re-interprets a file whenever it changes on disk, giving
github.com/fsnotify/fsnotify (otherwise unused by a Lox interpreter) a
concrete home, grounded on opal-lang-opal's watch-and-reload CLI.
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"lox/config"
)

var watch bool

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a Lox script, optionally re-running it on every save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if watch {
				return watchAndRun(cfg, args[0])
			}
			return runFile(cfg, args[0])
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "re-run the script whenever it changes on disk")
	return cmd
}

// watchAndRun runs path once, then re-runs it every time the file is
// written, until interrupted. It never returns a non-nil exit-code error
// for a failing run: a --watch session keeps going after a
// script fails, printing the diagnostic and waiting for the next save.
func watchAndRun(cfg *config.Config, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	// runFile already reports diagnostics through the console sink; its
	// exit-code error is irrelevant to a --watch session, which always
	// keeps going and waits for the next save.
	runOnce := func() { _ = runFile(cfg, path) }
	runOnce()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			changed, err := filepath.Abs(event.Name)
			if err != nil || changed != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Fprintf(os.Stdout, "--- %s changed, re-running ---\n", path)
			runOnce()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "lox: watch error: %v\n", err)
		case <-interrupt:
			return nil
		}
	}
}
