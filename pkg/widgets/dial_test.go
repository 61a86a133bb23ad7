package widgets_test

import (
	"testing"

	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
	"github.com/go-drift/elements/pkg/layout"
	elementstest "github.com/go-drift/elements/pkg/testing"
	"github.com/go-drift/elements/pkg/theme"
	"github.com/go-drift/elements/pkg/view"
	"github.com/go-drift/elements/pkg/widgets"
)

// dialTester places d at the top left, 100x100, centered on (50, 50).
func dialTester(t *testing.T, d *widgets.DialElement, mode theme.DialMode) *elementstest.ViewTester {
	th := theme.Default()
	th.DialMode = mode
	tester := elementstest.NewViewTesterWithT(t, view.WithTheme(th))
	tester.SetContent(layout.FixedSize(100, 100, d))
	return tester
}

func TestDial_LinearDrag(t *testing.T) {
	var last float64
	dial := widgets.Dial(0.5).WithOnChange(func(v float64) { last = v })
	tester := dialTester(t, dial, theme.DialLinear)

	// Pressing does not move a linear dial.
	tester.Press(graphics.Pt(50, 50))
	if dial.Value() != 0.5 {
		t.Fatalf("value after press = %v", dial.Value())
	}
	// Right and up both increase; the theme range is 200.
	tester.MoveTo(graphics.Pt(60, 40))
	if !near(dial.Value(), 0.6) || !near(last, 0.6) {
		t.Errorf("value = %v (OnChange %v), want 0.6", dial.Value(), last)
	}
	tester.MoveTo(graphics.Pt(20, 50))
	if !near(dial.Value(), 0.35) {
		t.Errorf("value = %v, want 0.35", dial.Value())
	}
	tester.Release(graphics.Pt(20, 50))
}

func TestDial_RadialFollowsAngle(t *testing.T) {
	tests := []struct {
		name string
		pos  graphics.Point
		want float64
	}{
		{"top", graphics.Pt(50, 10), 0.5},
		{"right", graphics.Pt(90, 50), 5.0 / 6},
		{"left", graphics.Pt(10, 50), 1.0 / 6},
		{"dead zone left of bottom", graphics.Pt(45, 90), 0},
		{"dead zone right of bottom", graphics.Pt(55, 90), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dial := widgets.Dial(0.3)
			tester := dialTester(t, dial, theme.DialRadial)

			tester.TapAt(tt.pos)
			if !near(dial.Value(), tt.want) {
				t.Errorf("value = %v, want %v", dial.Value(), tt.want)
			}
		})
	}
}

func TestDial_RadialDrag(t *testing.T) {
	dial := widgets.Dial(0)
	tester := dialTester(t, dial, theme.DialRadial)

	tester.Press(graphics.Pt(50, 10))
	tester.MoveTo(graphics.Pt(90, 50))
	if !near(dial.Value(), 5.0/6) {
		t.Errorf("value = %v, want 5/6", dial.Value())
	}
	tester.Release(graphics.Pt(90, 50))
}

func TestDial_Scroll(t *testing.T) {
	dial := widgets.Dial(1)
	tester := dialTester(t, dial, theme.DialLinear)

	tester.ScrollAt(graphics.Pt(50, 50), graphics.Pt(0, 3))
	if dial.Value() != 1 {
		t.Errorf("value = %v, want clamped at 1", dial.Value())
	}
	if len(tester.Refreshes()) != 0 {
		t.Errorf("unchanged dial refreshed %d times", len(tester.Refreshes()))
	}
}

func TestDial_ScrollContinuesTracking(t *testing.T) {
	dial := widgets.Dial(0.5)
	v := &trackingView{}
	ctx := element.NewContext(v, nil, dial, graphics.RectFromLTWH(0, 0, 100, 100))

	dial.Scroll(ctx, graphics.Pt(0, 1), graphics.Pt(50, 50))
	if len(v.states) != 1 || v.states[0] != element.WhileTracking {
		t.Errorf("tracking notifications = %v, want [WhileTracking]", v.states)
	}
}

func TestDial_SessionHoldsStartValue(t *testing.T) {
	dial := widgets.Dial(0.5)
	tester := dialTester(t, dial, theme.DialLinear)

	tester.Press(graphics.Pt(50, 50))
	info := dial.State()
	if info == nil || info.Data != 0.5 {
		t.Fatalf("session = %+v, want start value 0.5", info)
	}
	// Setting the value mid-drag does not move the session's origin.
	dial.SetValue(0.9)
	tester.MoveTo(graphics.Pt(60, 50))
	if !near(dial.Value(), 0.55) {
		t.Errorf("value = %v, want 0.55 measured from the press", dial.Value())
	}
	tester.Release(graphics.Pt(60, 50))
	if dial.State() != nil {
		t.Error("session state should be gone after release")
	}
}

func TestDial_MinimumSize(t *testing.T) {
	tester := elementstest.NewViewTesterWithT(t)
	dial := widgets.Dial(0)
	tester.SetContent(layout.HTile(dial, layout.HStretch(1000, widgets.Box(0))))

	r := boundsOf(t, tester, dial)
	if r.Width() < 32 {
		t.Errorf("dial width = %v, want at least 32", r.Width())
	}
}
