/*
File    : lox/eval/stringify.go

Stringify renders a value the way print and the REPL's expression-echo
mode do (spec §6). Every Value kind's own ToString already implements
that table (objects.go, function.go); this wrapper exists so callers
outside eval (the REPL, the CLI driver) have an evaluator-owned name
for the rule rather than reaching into objects directly.
*/
package eval

import "lox/objects"

func Stringify(v objects.Value) string {
	return v.ToString()
}
