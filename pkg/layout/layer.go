package layout

import (
	"math"

	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
)

// LayerElement stacks its children on top of each other. Every child gets
// the full bounds. The last child is the frontmost: it is drawn last and
// hit-tested first.
type LayerElement struct {
	container
}

// Layer stacks children, back to front.
func Layer(children ...element.Element) *LayerElement {
	l := &LayerElement{container: newContainer(children)}
	l.arrange = l.arrangeChildren
	l.frontFirst = backToFront
	return l
}

// Limits is the intersection of the children's limits: the largest
// minimum and the smallest maximum, never below the minimum.
func (l *LayerElement) Limits(ctx *element.Context) element.Limits {
	if len(l.children) == 0 {
		return element.FullLimits
	}
	limits := element.Limits{Max: graphics.Pt(element.FullExtent, element.FullExtent)}
	for _, child := range l.children {
		cl := child.Limits(ctx.Sub(child, ctx.Bounds))
		limits.Min.X = math.Max(limits.Min.X, cl.Min.X)
		limits.Min.Y = math.Max(limits.Min.Y, cl.Min.Y)
		limits.Max.X = math.Min(limits.Max.X, cl.Max.X)
		limits.Max.Y = math.Min(limits.Max.Y, cl.Max.Y)
	}
	limits.Max.X = math.Max(limits.Max.X, limits.Min.X)
	limits.Max.Y = math.Max(limits.Max.Y, limits.Min.Y)
	return limits
}

func (l *LayerElement) arrangeChildren(ctx *element.Context) []graphics.Rect {
	bounds := make([]graphics.Rect, len(l.children))
	for i := range bounds {
		bounds[i] = ctx.Bounds
	}
	return bounds
}

func backToFront(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = n - 1 - i
	}
	return order
}
