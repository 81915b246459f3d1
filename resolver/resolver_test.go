/*
File : lox/resolver/resolver_test.go
*/
package resolver

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lox/diagnostics"
	"lox/lexer"
	"lox/parser"
)

// sortedDepthSlots flattens a bindings map into a depth/slot pair list,
// sorted for a deterministic go-cmp comparison: map iteration order is
// not otherwise stable across runs.
func sortedDepthSlots(bindings map[parser.Expr]Binding) []Binding {
	out := make([]Binding, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, Binding{Depth: b.Depth, Slot: b.Slot})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Depth != out[j].Depth {
			return out[i].Depth < out[j].Depth
		}
		return out[i].Slot < out[j].Slot
	})
	return out
}

func resolveSource(t *testing.T, src string) (map[parser.Expr]Binding, *diagnostics.CollectingSink) {
	t.Helper()
	scanner := lexer.NewScanner(src, nil)
	p := parser.NewParser(scanner.ScanTokens(), nil)
	stmts := p.Parse()
	sink := diagnostics.NewCollectingSink()
	r := New(sink)
	return r.Resolve(stmts), sink
}

func TestResolve_LocalVariableBinding(t *testing.T) {
	bindings, sink := resolveSource(t, `{ var a = 1; print a; }`)
	assert.Empty(t, sink.Errors)

	var found bool
	for _, b := range bindings {
		if b.Depth == 0 && b.Slot == 0 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestResolve_SelfReferencingInitializerIsError(t *testing.T) {
	_, sink := resolveSource(t, `{ var a = a; }`)
	require.Len(t, sink.Errors, 1)
	assert.Contains(t, sink.Errors[0].Message, "own initializer")
}

func TestResolve_UnusedLocalWarns(t *testing.T) {
	_, sink := resolveSource(t, `{ var a = 1; }`)
	require.Len(t, sink.Warnings, 1)
	assert.Contains(t, sink.Warnings[0].Message, "never used")
}

func TestResolve_ReturnOutsideFunctionIsError(t *testing.T) {
	_, sink := resolveSource(t, `return 1;`)
	require.Len(t, sink.Errors, 1)
	assert.Contains(t, sink.Errors[0].Message, "top-level")
}

func TestResolve_ReturnValueFromInitializerIsError(t *testing.T) {
	_, sink := resolveSource(t, `class A { init() { return 1; } }`)
	require.Len(t, sink.Errors, 1)
	assert.Contains(t, sink.Errors[0].Message, "initializer")
}

func TestResolve_ThisOutsideClassIsError(t *testing.T) {
	_, sink := resolveSource(t, `print this;`)
	require.Len(t, sink.Errors, 1)
	assert.Contains(t, sink.Errors[0].Message, "'this'")
}

func TestResolve_SuperWithoutSuperclassIsError(t *testing.T) {
	_, sink := resolveSource(t, `class A { m() { return super.m(); } }`)
	require.Len(t, sink.Errors, 1)
	assert.Contains(t, sink.Errors[0].Message, "no superclass")
}

func TestResolve_SuperOutsideClassIsError(t *testing.T) {
	_, sink := resolveSource(t, `print super.m;`)
	require.Len(t, sink.Errors, 1)
	assert.Contains(t, sink.Errors[0].Message, "'super'")
}

func TestResolve_ClassMethodNamedInitIsError(t *testing.T) {
	_, sink := resolveSource(t, `class A { class init() {} }`)
	require.Len(t, sink.Errors, 1)
	assert.Contains(t, sink.Errors[0].Message, "class method")
}

func TestResolve_DuplicateDeclarationInSameScopeIsError(t *testing.T) {
	_, sink := resolveSource(t, `{ var a = 1; var a = 2; }`)
	require.Len(t, sink.Errors, 1)
	assert.Contains(t, sink.Errors[0].Message, "Already a variable with this name in this scope.")
}

func TestResolve_DuplicateParameterNameIsError(t *testing.T) {
	_, sink := resolveSource(t, `fun f(a, a) {}`)
	require.Len(t, sink.Errors, 1)
	assert.Contains(t, sink.Errors[0].Message, "Already a variable with this name in this scope.")
}

func TestResolve_RedeclarationDoesNotAliasLaterSlot(t *testing.T) {
	bindings, sink := resolveSource(t, `fun f(a) { var a = 2; var b = 3; print b; }`)
	require.Len(t, sink.Errors, 1)

	var found bool
	for _, b := range bindings {
		if b.Depth == 0 && b.Slot == 2 {
			found = true
		}
	}
	assert.True(t, found, "b must resolve to slot 2, matching the runtime's third Define call in this frame (param a, redeclared a, b)")
}

func TestResolve_SuperBoundAtSlotZero(t *testing.T) {
	bindings, sink := resolveSource(t, `
		class A { greet() { return "a"; } }
		class B < A { greet() { return super.greet(); } }
	`)
	assert.Empty(t, sink.Errors)

	var sawSuperAtSlotZero bool
	for _, b := range bindings {
		if b.Slot == 0 {
			sawSuperAtSlotZero = true
		}
	}
	assert.True(t, sawSuperAtSlotZero)
}

func TestResolve_NestedClosureDepthsAreExact(t *testing.T) {
	bindings, sink := resolveSource(t, `
		fun outer() {
			var a = 1;
			fun inner() {
				var b = 2;
				return a + b;
			}
			return inner;
		}
	`)
	assert.Empty(t, sink.Errors)

	want := []Binding{
		{Depth: 0, Slot: 0}, // b, read inside inner's own scope
		{Depth: 0, Slot: 1}, // inner, read in outer's "return inner;"
		{Depth: 1, Slot: 0}, // a, read across one closure boundary
	}
	got := sortedDepthSlots(bindings)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("binding depths/slots mismatch (-want +got):\n%s", diff)
	}
}
