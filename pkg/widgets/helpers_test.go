package widgets_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
	elementstest "github.com/go-drift/elements/pkg/testing"
)

func opColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func boundsOf(t *testing.T, tester *elementstest.ViewTester, e element.Element) graphics.Rect {
	t.Helper()
	r, ok := tester.BoundsOf(e)
	if !ok {
		t.Fatalf("%T not found in content", e)
	}
	return r
}

// opsNamed returns the recorded operations with the given name.
func opsNamed(ops []elementstest.DisplayOp, name string) []elementstest.DisplayOp {
	var out []elementstest.DisplayOp
	for _, op := range ops {
		if op.Op == name {
			out = append(out, op)
		}
	}
	return out
}

// trackingView is an element.View that records tracking notifications.
type trackingView struct {
	states []element.Tracking
}

func (v *trackingView) Refresh(*element.Context, int) {}
func (v *trackingView) RefreshRect(graphics.Rect)     {}
func (v *trackingView) RefreshAll()                   {}
func (v *trackingView) CursorPos() graphics.Point     { return graphics.Point{} }
func (v *trackingView) Bounds() graphics.Rect         { return graphics.Rect{} }

func (v *trackingView) ManageOnTracking(_ element.Element, state element.Tracking) {
	v.states = append(v.states, state)
}
