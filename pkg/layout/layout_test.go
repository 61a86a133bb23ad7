package layout

import (
	"testing"

	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
)

type fakeView struct {
	refreshes []graphics.Rect
}

func (v *fakeView) Refresh(ctx *element.Context, outward int) {
	v.refreshes = append(v.refreshes, ctx.Outward(outward).Bounds)
}
func (v *fakeView) RefreshRect(r graphics.Rect)                        { v.refreshes = append(v.refreshes, r) }
func (v *fakeView) RefreshAll()                                        {}
func (v *fakeView) ManageOnTracking(element.Element, element.Tracking) {}
func (v *fakeView) CursorPos() graphics.Point                          { return graphics.Point{} }
func (v *fakeView) Bounds() graphics.Rect                              { return graphics.Rect{} }

// probe records what the container delivers to it.
type probe struct {
	element.Base
	name    string
	limits  element.Limits
	stretch element.Stretch
	control bool

	draws   []graphics.Rect
	clicks  []element.MouseButton
	drags   int
	cursors []element.CursorTracking
	order   *[]string
}

func newProbe(name string) *probe {
	return &probe{name: name, limits: element.FullLimits, stretch: element.DefaultStretch}
}

func (p *probe) Limits(*element.Context) element.Limits { return p.limits }
func (p *probe) Stretch() element.Stretch               { return p.stretch }
func (p *probe) WantsControl() bool                     { return p.control }

func (p *probe) Draw(ctx *element.Context) {
	p.draws = append(p.draws, ctx.Bounds)
	if p.order != nil {
		*p.order = append(*p.order, p.name)
	}
}

func (p *probe) Click(_ *element.Context, btn element.MouseButton) bool {
	p.clicks = append(p.clicks, btn)
	return p.control
}

func (p *probe) Drag(*element.Context, element.MouseButton) { p.drags++ }

func (p *probe) Cursor(_ *element.Context, _ graphics.Point, status element.CursorTracking) bool {
	p.cursors = append(p.cursors, status)
	return true
}

var box100 = graphics.RectFromLTWH(0, 0, 100, 100)

func drawOnce(t *testing.T, e element.Element, bounds graphics.Rect) {
	t.Helper()
	e.Draw(element.NewContext(&fakeView{}, nil, e, bounds))
}

func TestMargin(t *testing.T) {
	p := newProbe("p")
	p.limits = element.FixedLimits(10, 20)
	m := Margin(graphics.Insets{Left: 1, Top: 2, Right: 3, Bottom: 4}, p)
	ctx := element.NewContext(nil, nil, m, box100)

	want := element.FixedLimits(14, 26)
	if got := m.Limits(ctx); got != want {
		t.Errorf("Limits = %v, want %v", got, want)
	}

	drawOnce(t, m, box100)
	if wantB := (graphics.Rect{Left: 1, Top: 2, Right: 97, Bottom: 96}); p.draws[0] != wantB {
		t.Errorf("subject bounds = %v, want %v", p.draws[0], wantB)
	}
}

func TestAlign(t *testing.T) {
	tests := []struct {
		name string
		make func(element.Element) element.Element
		want graphics.Rect
	}{
		{"center", func(e element.Element) element.Element { return Center(e) }, graphics.Rect{Left: 40, Top: 45, Right: 60, Bottom: 55}},
		{"top left", func(e element.Element) element.Element { return Align(0, 0, e) }, graphics.Rect{Left: 0, Top: 0, Right: 20, Bottom: 10}},
		{"right", func(e element.Element) element.Element { return HAlign(1, e) }, graphics.Rect{Left: 80, Top: 0, Right: 100, Bottom: 100}},
		{"bottom", func(e element.Element) element.Element { return VAlign(1, e) }, graphics.Rect{Left: 0, Top: 90, Right: 100, Bottom: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProbe("p")
			p.limits = element.Limits{Min: graphics.Pt(20, 10), Max: graphics.Pt(20, 10)}
			if tt.name == "right" {
				p.limits.Max.Y = element.FullExtent
			}
			if tt.name == "bottom" {
				p.limits.Max.X = element.FullExtent
			}
			drawOnce(t, tt.make(p), box100)
			if len(p.draws) != 1 || p.draws[0] != tt.want {
				t.Errorf("subject bounds = %v, want %v", p.draws, tt.want)
			}
		})
	}
}

func TestAlignLimitsOpenMaximum(t *testing.T) {
	p := newProbe("p")
	p.limits = element.FixedLimits(20, 10)
	a := Center(p)
	got := a.Limits(element.NewContext(nil, nil, a, box100))
	if got.Min != graphics.Pt(20, 10) || got.Max.X != element.FullExtent || got.Max.Y != element.FullExtent {
		t.Errorf("Limits = %v", got)
	}
}

func TestSizeElements(t *testing.T) {
	p := newProbe("p")
	p.limits = element.Limits{Min: graphics.Pt(10, 10), Max: graphics.Pt(200, 200)}
	ctx := element.NewContext(nil, nil, nil, box100)

	tests := []struct {
		name string
		e    element.Element
		want element.Limits
	}{
		{"fixed", FixedSize(30, 40, p), element.FixedLimits(30, 40)},
		{"min", MinSize(50, 5, p), element.Limits{Min: graphics.Pt(50, 10), Max: graphics.Pt(200, 200)}},
		{"max", MaxSize(100, 5, p), element.Limits{Min: graphics.Pt(10, 5), Max: graphics.Pt(100, 5)}},
		{"hsize", HSize(70, p), element.Limits{Min: graphics.Pt(70, 10), Max: graphics.Pt(70, 200)}},
		{"vsize", VSize(70, p), element.Limits{Min: graphics.Pt(10, 70), Max: graphics.Pt(200, 70)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Limits(ctx); got != tt.want {
				t.Errorf("Limits = %v, want %v", got, tt.want)
			}
		})
	}

	drawOnce(t, FixedSize(30, 40, p), graphics.RectFromLTWH(5, 5, 100, 100))
	if want := graphics.RectFromLTWH(5, 5, 30, 40); p.draws[0] != want {
		t.Errorf("fixed subject bounds = %v, want %v", p.draws[0], want)
	}
}

func TestStretchAndSpan(t *testing.T) {
	p := newProbe("p")
	if got := HStretch(3, p).Stretch(); got != (element.Stretch{X: 3, Y: 1}) {
		t.Errorf("HStretch = %v", got)
	}
	if got := VStretch(0, p).Stretch(); got != (element.Stretch{X: 1, Y: 0}) {
		t.Errorf("VStretch = %v", got)
	}
	if got := NoStretch(p).Stretch(); got != (element.Stretch{}) {
		t.Errorf("NoStretch = %v", got)
	}
	if got := Span(4, p).Span(); got != 4 {
		t.Errorf("Span = %d, want 4", got)
	}
}

func TestFloatingClampsToSubjectLimits(t *testing.T) {
	p := newProbe("p")
	p.limits = element.Limits{Min: graphics.Pt(10, 10), Max: graphics.Pt(50, 50)}
	f := Floating(graphics.RectFromLTWH(200, 300, 80, 5), p)

	drawOnce(t, f, box100)
	if want := graphics.RectFromLTWH(200, 300, 50, 10); p.draws[0] != want {
		t.Errorf("subject bounds = %v, want %v", p.draws[0], want)
	}
	ctx := element.NewContext(nil, nil, f, box100)
	if got := f.HitTest(ctx, graphics.Pt(210, 305)); got != element.Element(p) {
		t.Errorf("HitTest inside floating bounds = %v, want subject", got)
	}
	if got := f.HitTest(ctx, graphics.Pt(50, 50)); got != nil {
		t.Errorf("HitTest inside allotted bounds = %v, want nil", got)
	}
}

func TestLayerOrderAndLimits(t *testing.T) {
	var order []string
	back, front := newProbe("back"), newProbe("front")
	back.order, front.order = &order, &order
	back.limits = element.Limits{Min: graphics.Pt(10, 30), Max: graphics.Pt(100, 300)}
	front.limits = element.Limits{Min: graphics.Pt(20, 5), Max: graphics.Pt(200, 60)}
	l := Layer(back, front)
	ctx := element.NewContext(nil, nil, l, box100)

	drawOnce(t, l, box100)
	if len(order) != 2 || order[0] != "back" || order[1] != "front" {
		t.Errorf("draw order = %v, want [back front]", order)
	}
	if got := l.HitTest(ctx, graphics.Pt(50, 50)); got != element.Element(front) {
		t.Errorf("HitTest = %v, want front", got)
	}
	if got := l.HitTest(ctx, graphics.Pt(150, 50)); got != nil {
		t.Errorf("HitTest outside = %v, want nil", got)
	}
	want := element.Limits{Min: graphics.Pt(20, 30), Max: graphics.Pt(100, 60)}
	if got := l.Limits(ctx); got != want {
		t.Errorf("Limits = %v, want %v", got, want)
	}
}

func TestHTileDistributesByStretch(t *testing.T) {
	fixed, one, two := newProbe("fixed"), newProbe("one"), newProbe("two")
	fixed.limits = element.FixedLimits(20, 10)
	two.stretch = element.Stretch{X: 2, Y: 1}
	tile := HTile(fixed, one, two)

	drawOnce(t, tile, graphics.RectFromLTWH(0, 0, 320, 50))
	wants := map[*probe]graphics.Rect{
		fixed: {Left: 0, Top: 0, Right: 20, Bottom: 50},
		one:   {Left: 20, Top: 0, Right: 120, Bottom: 50},
		two:   {Left: 120, Top: 0, Right: 320, Bottom: 50},
	}
	for p, want := range wants {
		if len(p.draws) != 1 || !p.draws[0].Equal(want) {
			t.Errorf("%s bounds = %v, want %v", p.name, p.draws, want)
		}
	}
}

func TestVTileRedistributesPastMaximum(t *testing.T) {
	capped, free := newProbe("capped"), newProbe("free")
	capped.limits = element.Limits{Max: graphics.Pt(element.FullExtent, 30)}
	tile := VTile(capped, free)

	drawOnce(t, tile, graphics.RectFromLTWH(0, 0, 40, 100))
	if !capped.draws[0].Equal(graphics.Rect{Left: 0, Top: 0, Right: 40, Bottom: 30}) {
		t.Errorf("capped bounds = %v", capped.draws[0])
	}
	if !free.draws[0].Equal(graphics.Rect{Left: 0, Top: 30, Right: 40, Bottom: 100}) {
		t.Errorf("free bounds = %v", free.draws[0])
	}

	ctx := element.NewContext(nil, nil, tile, box100)
	l := tile.Limits(ctx)
	if l.Max.Y != element.FullExtent || l.Min.Y != 0 {
		t.Errorf("Limits = %v", l)
	}
}

func TestContainerCapturesClick(t *testing.T) {
	left, right := newProbe("left"), newProbe("right")
	left.control, right.control = true, true
	tile := HTile(left, right)
	ctx := element.NewContext(&fakeView{}, nil, tile, box100)

	if !tile.Click(ctx, element.MouseButton{Down: true, Pos: graphics.Pt(75, 50)}) {
		t.Fatal("click on right should be accepted")
	}
	// Drags and release go to the capturing child even outside its bounds.
	tile.Drag(ctx, element.MouseButton{Down: true, Pos: graphics.Pt(10, 50)})
	tile.Click(ctx, element.MouseButton{Down: false, Pos: graphics.Pt(10, 50)})

	if len(left.clicks) != 0 || left.drags != 0 {
		t.Errorf("left got %d clicks %d drags, want none", len(left.clicks), left.drags)
	}
	if len(right.clicks) != 2 || right.drags != 1 {
		t.Errorf("right got %d clicks %d drags, want 2 and 1", len(right.clicks), right.drags)
	}

	tile.Drag(ctx, element.MouseButton{Down: true, Pos: graphics.Pt(75, 50)})
	if right.drags != 1 {
		t.Error("drag after release should be dropped")
	}
}

func TestContainerClickFallsThroughDecliners(t *testing.T) {
	back, front := newProbe("back"), newProbe("front")
	back.control = true
	l := Layer(back, front)
	ctx := element.NewContext(&fakeView{}, nil, l, box100)

	if !l.Click(ctx, element.MouseButton{Down: true, Pos: graphics.Pt(50, 50)}) {
		t.Fatal("click should reach the back child")
	}
	if len(front.clicks) != 0 {
		t.Error("a child that does not want control should not be offered clicks")
	}
	if len(back.clicks) != 1 {
		t.Errorf("back clicks = %d, want 1", len(back.clicks))
	}
}

func TestContainerCursorTransitions(t *testing.T) {
	left, right := newProbe("left"), newProbe("right")
	tile := HTile(left, right)
	ctx := element.NewContext(&fakeView{}, nil, tile, box100)

	tile.Cursor(ctx, graphics.Pt(10, 10), element.CursorEntering)
	tile.Cursor(ctx, graphics.Pt(20, 10), element.CursorHovering)
	tile.Cursor(ctx, graphics.Pt(80, 10), element.CursorHovering)
	tile.Cursor(ctx, graphics.Pt(80, 10), element.CursorLeaving)

	wantLeft := []element.CursorTracking{element.CursorEntering, element.CursorHovering, element.CursorLeaving}
	wantRight := []element.CursorTracking{element.CursorEntering, element.CursorLeaving}
	check := func(name string, got, want []element.CursorTracking) {
		if len(got) != len(want) {
			t.Errorf("%s cursor = %v, want %v", name, got, want)
			return
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s cursor[%d] = %v, want %v", name, i, got[i], want[i])
			}
		}
	}
	check("left", left.cursors, wantLeft)
	check("right", right.cursors, wantRight)
}

func TestContainerRefreshFirstMatch(t *testing.T) {
	shared := newProbe("shared")
	view := &fakeView{}
	l := Layer(Margin(graphics.UniformInsets(10), shared), shared)
	ctx := element.NewContext(view, nil, l, box100)

	l.Refresh(ctx, shared, 0)
	if len(view.refreshes) != 1 {
		t.Fatalf("repaints = %v, want exactly one", view.refreshes)
	}
	if view.refreshes[0] != box100 {
		t.Errorf("repaint = %v, want frontmost placement %v", view.refreshes[0], box100)
	}

	view.refreshes = nil
	l.Refresh(ctx, newProbe("stranger"), 0)
	if len(view.refreshes) != 0 {
		t.Errorf("repaints for unreachable target = %v", view.refreshes)
	}
}
