package testing

import (
	"testing"

	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
	"github.com/go-drift/elements/pkg/theme"
	"github.com/go-drift/elements/pkg/view"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// ViewTester provides isolated element testing without a window. It uses
// the real view dispatch with a fake host and a recording canvas.
type ViewTester struct {
	host *fakeHost
	view *view.View
	prev *theme.Theme
}

// fakeHost records the repaints requested by the view.
type fakeHost struct {
	size       graphics.Extent
	cursor     graphics.Point
	refreshes  []graphics.Rect
	refreshAll int
}

func (h *fakeHost) Refresh(area graphics.Rect) { h.refreshes = append(h.refreshes, area) }
func (h *fakeHost) RefreshAll()                { h.refreshAll++ }
func (h *fakeHost) CursorPos() graphics.Point  { return h.cursor }
func (h *fakeHost) Size() graphics.Extent      { return h.size }

// NewViewTester creates a tester with the default surface size.
// Call Cleanup when done, or use NewViewTesterWithT instead.
func NewViewTester(opts ...view.Option) *ViewTester {
	host := &fakeHost{size: graphics.Extent{X: DefaultTestWidth, Y: DefaultTestHeight}}
	return &ViewTester{
		host: host,
		view: view.New(host, opts...),
		prev: theme.Get().Copy(),
	}
}

// NewViewTesterWithT creates a tester that cleans up via t.Cleanup.
// This is the recommended constructor for tests.
func NewViewTesterWithT(t testing.TB, opts ...view.Option) *ViewTester {
	tester := NewViewTester(opts...)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the process-wide theme as it was when the tester was
// created.
func (t *ViewTester) Cleanup() {
	theme.Set(t.prev)
}

// View returns the view under test.
func (t *ViewTester) View() *view.View { return t.view }

// SetSize changes the surface size. The view lays out again on the next
// draw.
func (t *ViewTester) SetSize(width, height float64) {
	t.host.size = graphics.Extent{X: width, Y: height}
}

// SetContent installs the content layers, back to front, and clears the
// repaint log.
func (t *ViewTester) SetContent(layers ...element.Element) {
	t.view.SetContent(layers...)
	t.ClearRefreshes()
}

// Draw lays out if needed and records a full repaint.
func (t *ViewTester) Draw() *graphics.DisplayList {
	recorder := graphics.NewPictureRecorder(nil)
	canvas := recorder.BeginRecording(t.host.size)
	t.view.Draw(canvas, t.view.Bounds())
	return recorder.EndRecording()
}

// Refreshes returns the areas repainted since the last clear.
func (t *ViewTester) Refreshes() []graphics.Rect { return t.host.refreshes }

// RefreshAllCount returns the number of full repaints since the last clear.
func (t *ViewTester) RefreshAllCount() int { return t.host.refreshAll }

// ClearRefreshes empties the repaint log.
func (t *ViewTester) ClearRefreshes() {
	t.host.refreshes = nil
	t.host.refreshAll = 0
}

// BoundsOf returns where e is placed in the view, or false if e is not in
// the content. The lookup goes through the refresh protocol and leaves the
// repaint log untouched.
func (t *ViewTester) BoundsOf(e element.Element) (graphics.Rect, bool) {
	n := len(t.host.refreshes)
	if !t.view.RefreshElement(e, 0) || len(t.host.refreshes) == n {
		return graphics.Rect{}, false
	}
	bounds := t.host.refreshes[n]
	t.host.refreshes = t.host.refreshes[:n]
	return bounds, true
}
