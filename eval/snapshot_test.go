/*
File : lox/eval/snapshot_test.go

End-to-end snapshot coverage: each case runs a complete Lox program and
snapshots its stdout, the "run this script, the printed output is the
spec" style of coverage grounded on CWBudde-go-dws's
internal/interp/fixture_test.go (which drives its interpreter the same
way and calls snaps.MatchSnapshot on the captured buffer), scaled down
from that harness's file-fixture directory walk to a handful of inline
programs since this interpreter has no fixture corpus of its own.
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"lox/diagnostics"
)

func runForSnapshot(t *testing.T, source string) string {
	t.Helper()
	sink := diagnostics.NewCollectingSink()
	var out bytes.Buffer
	New(sink, &out).Run(source)
	return out.String()
}

func TestSnapshot_ClosureCounter(t *testing.T) {
	out := runForSnapshot(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	snaps.MatchSnapshot(t, out)
}

func TestSnapshot_DiamondInheritanceDispatch(t *testing.T) {
	out := runForSnapshot(t, `
		class Base {
			describe() { print "base " + this.name(); }
		}
		class Left < Base { name() { return "left"; } }
		class Right < Base { name() { return "right"; } }
		class Both < Left < Right {}
		Both().describe();
	`)
	snaps.MatchSnapshot(t, out)
}

func TestSnapshot_ForLoopWithBreak(t *testing.T) {
	out := runForSnapshot(t, `
		for (var i = 0; i < 5; i = i + 1) {
			if (i == 3) break;
			print i;
		}
	`)
	snaps.MatchSnapshot(t, out)
}

func TestSnapshot_GettersAndInitializers(t *testing.T) {
	out := runForSnapshot(t, `
		class Rectangle {
			init(w, h) { this.w = w; this.h = h; }
			area { return this.w * this.h; }
		}
		var r = Rectangle(3, 4);
		print r.area;
	`)
	snaps.MatchSnapshot(t, out)
}
