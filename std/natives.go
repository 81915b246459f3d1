/*
File    : lox/std/natives.go

Package std provides the interpreter's native function table. The
teacher's std package registers dozens of builtins across arrays, maps,
sets, I/O, crypto, and HTTP (std/time.go, std/math.go, std/os.go, ...);
Lox's native surface is exactly one function (spec §4.7), so this package
keeps the teacher's Builtin{Name, Callback}-table registration pattern
but shrinks the table itself to match.
*/
package std

import (
	"time"

	"lox/objects"
)

// Globals returns the native bindings installed into the global
// environment before any user code runs.
func Globals() map[string]*objects.NativeFn {
	return map[string]*objects.NativeFn{
		"clock": clock(),
	}
}

// clock returns the current wall-clock time in seconds, the one native
// spec §4.7 requires.
func clock() *objects.NativeFn {
	return &objects.NativeFn{
		Name: "clock",
		Arr:  0,
		Fn: func(args []objects.Value) (objects.Value, error) {
			return objects.Number{Value: float64(time.Now().UnixNano()) / 1e9}, nil
		},
	}
}
