package layout

import (
	"math"

	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
)

// TileElement lays its children out in a row or a column. Each child gets
// its minimum extent along the main axis; the remaining space is shared by
// stretch, never beyond a child's maximum. Across the main axis every child
// gets the full bounds.
type TileElement struct {
	container
	horizontal bool
}

// HTile lays children out left to right.
func HTile(children ...element.Element) *TileElement {
	return newTile(true, children)
}

// VTile lays children out top to bottom.
func VTile(children ...element.Element) *TileElement {
	return newTile(false, children)
}

func newTile(horizontal bool, children []element.Element) *TileElement {
	t := &TileElement{container: newContainer(children), horizontal: horizontal}
	t.arrange = t.arrangeChildren
	return t
}

// main and cross pick the main-axis and cross-axis components.
func (t *TileElement) main(p graphics.Point) float64 {
	if t.horizontal {
		return p.X
	}
	return p.Y
}

func (t *TileElement) cross(p graphics.Point) float64 {
	if t.horizontal {
		return p.Y
	}
	return p.X
}

func (t *TileElement) point(main, cross float64) graphics.Point {
	if t.horizontal {
		return graphics.Pt(main, cross)
	}
	return graphics.Pt(cross, main)
}

// Limits sums the children's limits along the main axis and intersects
// them across it.
func (t *TileElement) Limits(ctx *element.Context) element.Limits {
	var minMain, maxMain, minCross float64
	maxCross := element.FullExtent
	for _, child := range t.children {
		cl := child.Limits(ctx.Sub(child, ctx.Bounds))
		minMain += t.main(cl.Min)
		maxMain = saturatingAdd(maxMain, t.main(cl.Max))
		minCross = math.Max(minCross, t.cross(cl.Min))
		maxCross = math.Min(maxCross, t.cross(cl.Max))
	}
	maxMain = math.Max(maxMain, minMain)
	maxCross = math.Max(maxCross, minCross)
	if len(t.children) == 0 {
		maxMain = 0
	}
	return element.Limits{Min: t.point(minMain, minCross), Max: t.point(maxMain, maxCross)}
}

// Stretch is the largest stretch among the children on each axis.
func (t *TileElement) Stretch() element.Stretch {
	var s element.Stretch
	for _, child := range t.children {
		cs := child.Stretch()
		s.X = math.Max(s.X, cs.X)
		s.Y = math.Max(s.Y, cs.Y)
	}
	if len(t.children) == 0 {
		return element.DefaultStretch
	}
	return s
}

func (t *TileElement) arrangeChildren(ctx *element.Context) []graphics.Rect {
	n := len(t.children)
	sizes := make([]float64, n)
	maxes := make([]float64, n)
	weights := make([]float64, n)

	avail := t.main(graphics.Pt(ctx.Bounds.Width(), ctx.Bounds.Height()))
	for i, child := range t.children {
		cl := child.Limits(ctx.Sub(child, ctx.Bounds))
		sizes[i] = t.main(cl.Min)
		maxes[i] = t.main(cl.Max)
		weights[i] = t.main(graphics.Point(child.Stretch()))
		avail -= sizes[i]
	}
	distribute(avail, sizes, maxes, weights)

	bounds := make([]graphics.Rect, n)
	pos := t.main(ctx.Bounds.TopLeft())
	for i := range bounds {
		if t.horizontal {
			bounds[i] = graphics.Rect{Left: pos, Top: ctx.Bounds.Top, Right: pos + sizes[i], Bottom: ctx.Bounds.Bottom}
		} else {
			bounds[i] = graphics.Rect{Left: ctx.Bounds.Left, Top: pos, Right: ctx.Bounds.Right, Bottom: pos + sizes[i]}
		}
		pos += sizes[i]
	}
	return bounds
}

// distribute shares extra among sizes in proportion to weights, capping
// each at its maximum and handing what a capped entry cannot take to the
// others.
func distribute(extra float64, sizes, maxes, weights []float64) {
	open := make([]bool, len(sizes))
	for i := range open {
		open[i] = weights[i] > 0 && sizes[i] < maxes[i]
	}
	for extra > epsilon {
		var total float64
		for i, ok := range open {
			if ok {
				total += weights[i]
			}
		}
		if total == 0 {
			return
		}
		var used float64
		capped := false
		for i, ok := range open {
			if !ok {
				continue
			}
			share := extra * weights[i] / total
			if sizes[i]+share >= maxes[i] {
				share = maxes[i] - sizes[i]
				open[i] = false
				capped = true
			}
			sizes[i] += share
			used += share
		}
		extra -= used
		if !capped {
			return
		}
	}
}

const epsilon = 1e-9

func saturatingAdd(a, b float64) float64 {
	if a >= element.FullExtent-b {
		return element.FullExtent
	}
	return a + b
}
