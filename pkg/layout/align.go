package layout

import (
	"math"

	"github.com/go-drift/elements/pkg/element"
)

// AlignElement places its subject within the allotted bounds. The subject
// gets as much space as its limits allow; any remainder is split according
// to the alignment fractions, 0 meaning left or top and 1 right or bottom.
type AlignElement struct {
	element.Proxy[element.Element]
	H, V float64
	// Horizontal and Vertical select the axes being aligned. An axis that
	// is not aligned passes the bounds through.
	Horizontal, Vertical bool
}

// Align aligns subject on both axes.
func Align(h, v float64, subject element.Element) *AlignElement {
	return &AlignElement{Proxy: element.NewProxy(subject), H: h, V: v, Horizontal: true, Vertical: true}
}

// HAlign aligns subject horizontally.
func HAlign(h float64, subject element.Element) *AlignElement {
	return &AlignElement{Proxy: element.NewProxy(subject), H: h, Horizontal: true}
}

// VAlign aligns subject vertically.
func VAlign(v float64, subject element.Element) *AlignElement {
	return &AlignElement{Proxy: element.NewProxy(subject), V: v, Vertical: true}
}

// Center centers subject on both axes.
func Center(subject element.Element) *AlignElement {
	return Align(0.5, 0.5, subject)
}

// Limits keeps the subject's minimum but accepts any larger size on the
// aligned axes.
func (a *AlignElement) Limits(ctx *element.Context) element.Limits {
	l := a.Subject().Limits(ctx)
	if a.Horizontal {
		l.Max.X = element.FullExtent
	}
	if a.Vertical {
		l.Max.Y = element.FullExtent
	}
	return l
}

func (a *AlignElement) PrepareSubject(ctx *element.Context) {
	l := a.Subject().Limits(ctx)
	if a.Horizontal {
		avail := ctx.Bounds.Width()
		w := fit(avail, l.Min.X, l.Max.X)
		ctx.Bounds.Left += (avail - w) * a.H
		ctx.Bounds = ctx.Bounds.Widen(w)
	}
	if a.Vertical {
		avail := ctx.Bounds.Height()
		h := fit(avail, l.Min.Y, l.Max.Y)
		ctx.Bounds.Top += (avail - h) * a.V
		ctx.Bounds = ctx.Bounds.Heighten(h)
	}
}

// fit returns the extent an element with the given limits takes out of
// avail.
func fit(avail, min, max float64) float64 {
	if avail <= min {
		return min
	}
	return math.Min(avail, max)
}
