// Package view drives an element tree from a host window.
//
// A View owns a stack of content layers and turns the host's raw input into
// element operations: it builds the root contexts, hit-tests pointer
// events, keeps pointer capture between a button press and its release,
// tracks hover and keyboard focus, and forwards repaint requests from
// elements to the host.
package view

import (
	"log/slog"

	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
	"github.com/go-drift/elements/pkg/theme"
)

// Host is the windowing backend a View is attached to.
type Host interface {
	// Refresh schedules a repaint of area, in view coordinates.
	Refresh(area graphics.Rect)
	// RefreshAll schedules a repaint of the whole surface.
	RefreshAll()
	CursorPos() graphics.Point
	Size() graphics.Extent
}

// Option configures a View.
type Option func(*View)

// WithTheme makes the view's elements use t instead of the process-wide
// theme.
func WithTheme(t *theme.Theme) Option {
	return func(v *View) {
		v.theme = t
	}
}

// WithLogger sets the logger for dispatch tracing.
func WithLogger(l *slog.Logger) Option {
	return func(v *View) {
		v.logger = l
	}
}

// WithFonts sets the font manager used to measure text outside of drawing.
func WithFonts(f *graphics.FontManager) Option {
	return func(v *View) {
		v.fonts = f
	}
}

// View dispatches host events into a stack of element layers. The last
// layer is the frontmost.
//
// A View is not safe for concurrent use; all calls must come from the
// host's event loop.
type View struct {
	host   Host
	theme  *theme.Theme
	logger *slog.Logger
	fonts  *graphics.FontManager

	layers   []element.Element
	capture  int
	hover    int
	focus    int
	tracking element.Element
	laidOut  graphics.Extent
}

// New creates a view attached to host.
func New(host Host, opts ...Option) *View {
	v := &View{
		host:    host,
		logger:  slog.Default(),
		capture: -1,
		hover:   -1,
		focus:   -1,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetContent replaces the layers, back to front, and repaints everything.
// Capture, hover and focus are reset.
func (v *View) SetContent(layers ...element.Element) {
	v.layers = layers
	v.capture, v.hover, v.focus = -1, -1, -1
	v.tracking = nil
	v.laidOut = graphics.Extent{}
	v.host.RefreshAll()
}

// Content returns the layers, back to front.
func (v *View) Content() []element.Element { return v.layers }

// AddLayer pushes e in front of the existing layers.
func (v *View) AddLayer(e element.Element) {
	v.layers = append(v.layers, e)
	v.laidOut = graphics.Extent{}
	v.host.RefreshAll()
}

// RemoveLayer removes e from the layers. It reports whether e was present.
func (v *View) RemoveLayer(e element.Element) bool {
	for i, layer := range v.layers {
		if layer != e {
			continue
		}
		if v.capture == i {
			v.releaseCapture(v.measureCanvas())
		}
		if v.focus == i {
			layer.EndFocus()
		}
		v.layers = append(v.layers[:i], v.layers[i+1:]...)
		v.capture, v.hover, v.focus = shift(v.capture, i), shift(v.hover, i), shift(v.focus, i)
		v.host.RefreshAll()
		return true
	}
	return false
}

// shift adjusts a layer index after layer removed was deleted.
func shift(index, removed int) int {
	switch {
	case index == removed:
		return -1
	case index > removed:
		return index - 1
	default:
		return index
	}
}

// Theme returns the view's theme, or the process-wide one.
func (v *View) Theme() *theme.Theme {
	if v.theme != nil {
		return v.theme
	}
	return theme.Get()
}

// Bounds returns the view's surface in view coordinates.
func (v *View) Bounds() graphics.Rect {
	size := v.host.Size()
	return graphics.RectFromLTWH(0, 0, size.X, size.Y)
}

// CursorPos returns the pointer position reported by the host.
func (v *View) CursorPos() graphics.Point {
	return v.host.CursorPos()
}

// context builds the root context of layer i.
func (v *View) context(i int, canvas graphics.Canvas) *element.Context {
	ctx := element.NewContext(v, canvas, v.layers[i], v.Bounds())
	ctx.Theme = v.theme
	return ctx
}

// measureCanvas returns a canvas for contexts built outside of drawing.
// Elements only measure text with it.
func (v *View) measureCanvas() graphics.Canvas {
	return graphics.NewPictureRecorder(v.fonts).BeginRecording(v.host.Size())
}

// frontToBack calls fn for each layer from the frontmost until fn returns
// true. It returns the index that stopped the walk, or -1.
func (v *View) frontToBack(fn func(i int) bool) int {
	for i := len(v.layers) - 1; i >= 0; i-- {
		if fn(i) {
			return i
		}
	}
	return -1
}

// Layout lays out every layer for the current surface size.
func (v *View) Layout() {
	canvas := v.measureCanvas()
	for i, layer := range v.layers {
		layer.Layout(v.context(i, canvas))
	}
	v.laidOut = v.host.Size()
}

// Draw paints the layers that intersect area into canvas, back to front.
// The layers are laid out first if the surface size changed.
func (v *View) Draw(canvas graphics.Canvas, area graphics.Rect) {
	if v.host.Size() != v.laidOut {
		v.Layout()
	}
	canvas.Save()
	canvas.ClipRect(area)
	for i, layer := range v.layers {
		layer.Draw(v.context(i, canvas))
	}
	canvas.Restore()
}

// HitTest returns the frontmost element under p, or nil.
func (v *View) HitTest(p graphics.Point) element.Element {
	canvas := v.measureCanvas()
	var hit element.Element
	v.frontToBack(func(i int) bool {
		hit = v.layers[i].HitTest(v.context(i, canvas), p)
		return hit != nil
	})
	return hit
}

// Click delivers a button event. A press is offered to the layers front
// to back until one accepts it; that layer captures the pointer and gets
// the following drags and the release.
func (v *View) Click(btn element.MouseButton) bool {
	canvas := v.measureCanvas()
	if !btn.Down {
		i := v.capture
		if i < 0 {
			return false
		}
		v.capture = -1
		v.layers[i].Click(v.context(i, canvas), btn)
		v.tracking = nil
		v.logger.Debug("pointer released", "layer", i)
		return true
	}

	v.capture = v.frontToBack(func(i int) bool {
		layer := v.layers[i]
		ctx := v.context(i, canvas)
		if !layer.WantsControl() || layer.HitTest(ctx, btn.Pos) == nil {
			return false
		}
		return layer.Click(ctx, btn)
	})
	if v.capture < 0 {
		return false
	}
	v.logger.Debug("pointer captured", "layer", v.capture, "pos", btn.Pos)
	if v.capture != v.focus && v.layers[v.capture].WantsFocus() {
		v.moveFocus(v.capture)
	}
	return true
}

// releaseCapture ends the press held by the capturing layer with a release
// at the cursor, so a tracking session cannot outlive its layer.
func (v *View) releaseCapture(canvas graphics.Canvas) {
	i := v.capture
	if i < 0 {
		return
	}
	v.capture = -1
	v.layers[i].Click(v.context(i, canvas), element.MouseButton{Pos: v.CursorPos()})
	v.tracking = nil
	v.logger.Debug("capture released", "layer", i)
}

// Drag delivers pointer motion with a button held to the capturing layer.
// Motion without capture is dropped.
func (v *View) Drag(btn element.MouseButton) {
	i := v.capture
	if i < 0 {
		return
	}
	v.layers[i].Drag(v.context(i, v.measureCanvas()), btn)
}

// Cursor delivers pointer motion without a button held. The frontmost
// layer under the pointer gets Entering when it changes and Hovering
// otherwise; the previous one gets Leaving. Hover is suspended while an
// element is tracking.
func (v *View) Cursor(p graphics.Point, status element.CursorTracking) bool {
	if v.tracking != nil {
		return false
	}
	canvas := v.measureCanvas()
	if status == element.CursorLeaving {
		v.leave(canvas, p)
		return false
	}
	hit := v.frontToBack(func(i int) bool {
		return v.layers[i].HitTest(v.context(i, canvas), p) != nil
	})
	if hit != v.hover {
		v.leave(canvas, p)
		v.hover = hit
		if hit < 0 {
			return false
		}
		return v.layers[hit].Cursor(v.context(hit, canvas), p, element.CursorEntering)
	}
	if hit < 0 {
		return false
	}
	return v.layers[hit].Cursor(v.context(hit, canvas), p, element.CursorHovering)
}

func (v *View) leave(canvas graphics.Canvas, p graphics.Point) {
	if i := v.hover; i >= 0 {
		v.layers[i].Cursor(v.context(i, canvas), p, element.CursorLeaving)
	}
	v.hover = -1
}

// Scroll offers a scroll to the layers under p, front to back.
func (v *View) Scroll(dir, p graphics.Point) bool {
	canvas := v.measureCanvas()
	return v.frontToBack(func(i int) bool {
		ctx := v.context(i, canvas)
		return ctx.Bounds.Includes(p) && v.layers[i].Scroll(ctx, dir, p)
	}) >= 0
}

// Key delivers a key event to the focused layer, then to the others front
// to back.
func (v *View) Key(k element.KeyInfo) bool {
	canvas := v.measureCanvas()
	if i := v.focus; i >= 0 && v.layers[i].Key(v.context(i, canvas), k) {
		return true
	}
	return v.frontToBack(func(i int) bool {
		return i != v.focus && v.layers[i].Key(v.context(i, canvas), k)
	}) >= 0
}

// Text delivers a typed character like Key.
func (v *View) Text(info element.TextInfo) bool {
	canvas := v.measureCanvas()
	if i := v.focus; i >= 0 && v.layers[i].Text(v.context(i, canvas), info) {
		return true
	}
	return v.frontToBack(func(i int) bool {
		return i != v.focus && v.layers[i].Text(v.context(i, canvas), info)
	}) >= 0
}

// BeginFocus is called when the host window gains keyboard focus.
func (v *View) BeginFocus() {
	if v.focus < 0 {
		v.focus = v.frontToBack(func(i int) bool { return v.layers[i].WantsFocus() })
	}
	if v.focus >= 0 {
		v.layers[v.focus].BeginFocus()
	}
}

// EndFocus is called when the host window loses keyboard focus.
func (v *View) EndFocus() {
	if v.focus >= 0 {
		v.layers[v.focus].EndFocus()
	}
}

// Focus returns the element receiving keyboard input, or nil.
func (v *View) Focus() element.Element {
	if v.focus < 0 {
		return nil
	}
	return element.FocusOf(v.layers[v.focus])
}

func (v *View) moveFocus(i int) {
	if v.focus >= 0 {
		v.layers[v.focus].EndFocus()
	}
	v.focus = i
	v.layers[i].BeginFocus()
	v.logger.Debug("focus moved", "layer", i)
}

// Refresh repaints the bounds of ctx, or of the context outward levels up
// its parent chain.
func (v *View) Refresh(ctx *element.Context, outward int) {
	v.RefreshRect(ctx.Outward(outward).Bounds)
}

// RefreshRect repaints area.
func (v *View) RefreshRect(area graphics.Rect) {
	v.host.Refresh(area)
}

// RefreshAll repaints the whole view.
func (v *View) RefreshAll() {
	v.host.RefreshAll()
}

// RefreshElement repaints e wherever it is found first, searching the
// layers front to back. It reports whether e was found.
func (v *View) RefreshElement(e element.Element, outward int) bool {
	canvas := v.measureCanvas()
	bounds := v.Bounds()
	root := element.NewContext(v, canvas, nil, bounds)
	root.Theme = v.theme
	return v.frontToBack(func(i int) bool {
		return element.ForwardRefresh(root, v.layers[i], bounds, e, outward)
	}) >= 0
}

// ManageOnTracking records which element owns the pointer during a
// tracking session.
func (v *View) ManageOnTracking(e element.Element, state element.Tracking) {
	switch state {
	case element.BeginTracking:
		v.tracking = e
		v.logger.Debug("tracking started", "element", e)
	case element.EndTracking:
		if v.tracking == e {
			v.tracking = nil
		}
		v.logger.Debug("tracking ended", "element", e)
	}
}

// Tracking returns the element tracking the pointer, or nil.
func (v *View) Tracking() element.Element { return v.tracking }
