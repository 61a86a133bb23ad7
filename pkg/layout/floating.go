package layout

import (
	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
)

// FloatingElement places its subject at explicit bounds, ignoring the
// bounds its container allots. It is meant for layers: popups, tooltips
// and other content positioned by application code.
type FloatingElement struct {
	element.Proxy[element.Element]
	bounds graphics.Rect
}

// Floating places subject at bounds.
func Floating(bounds graphics.Rect, subject element.Element) *FloatingElement {
	return &FloatingElement{Proxy: element.NewProxy(subject), bounds: bounds}
}

// Bounds returns the placement of the subject.
func (f *FloatingElement) Bounds() graphics.Rect { return f.bounds }

// SetBounds moves the subject. The caller refreshes the view.
func (f *FloatingElement) SetBounds(r graphics.Rect) { f.bounds = r }

// Limits accepts any size at least as large as the subject's minimum.
func (f *FloatingElement) Limits(ctx *element.Context) element.Limits {
	l := f.Subject().Limits(ctx)
	return element.Limits{Min: l.Min, Max: graphics.Pt(element.FullExtent, element.FullExtent)}
}

// PrepareSubject replaces the allotted bounds with the floating bounds,
// clamped to the subject's limits.
func (f *FloatingElement) PrepareSubject(ctx *element.Context) {
	size := f.Subject().Limits(ctx).Clamp(f.bounds.Size())
	ctx.Bounds = graphics.RectFromLTWH(f.bounds.Left, f.bounds.Top, size.X, size.Y)
}
