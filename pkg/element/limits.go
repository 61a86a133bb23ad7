package element

import (
	"math"

	"github.com/go-drift/elements/pkg/graphics"
)

// FullExtent is the largest representable extent. It stands for
// "unbounded" in limits.
const FullExtent = math.MaxFloat64

// Limits is the acceptable size range of an element. Min must not exceed
// Max on either axis; this is not checked.
type Limits struct {
	Min graphics.Point
	Max graphics.Point
}

// FullLimits accepts any size.
var FullLimits = Limits{Max: graphics.Point{X: FullExtent, Y: FullExtent}}

// FixedLimits accepts exactly w by h.
func FixedLimits(w, h float64) Limits {
	return Limits{Min: graphics.Point{X: w, Y: h}, Max: graphics.Point{X: w, Y: h}}
}

// MinLimits accepts anything at least w by h.
func MinLimits(w, h float64) Limits {
	return Limits{Min: graphics.Point{X: w, Y: h}, Max: graphics.Point{X: FullExtent, Y: FullExtent}}
}

// MaxLimits accepts anything up to w by h.
func MaxLimits(w, h float64) Limits {
	return Limits{Max: graphics.Point{X: w, Y: h}}
}

// WidthLimits bounds the width and leaves the height free.
func WidthLimits(min, max float64) Limits {
	return Limits{Min: graphics.Point{X: min}, Max: graphics.Point{X: max, Y: FullExtent}}
}

// HeightLimits bounds the height and leaves the width free.
func HeightLimits(min, max float64) Limits {
	return Limits{Min: graphics.Point{Y: min}, Max: graphics.Point{X: FullExtent, Y: max}}
}

// Clamp fits e into the limits.
func (l Limits) Clamp(e graphics.Extent) graphics.Extent {
	return graphics.Extent{
		X: clampf(e.X, l.Min.X, l.Max.X),
		Y: clampf(e.Y, l.Min.Y, l.Max.Y),
	}
}

// Inflate grows both bounds by dx and dy, saturating at FullExtent.
func (l Limits) Inflate(dx, dy float64) Limits {
	return Limits{
		Min: graphics.Point{X: l.Min.X + dx, Y: l.Min.Y + dy},
		Max: graphics.Point{X: addExtent(l.Max.X, dx), Y: addExtent(l.Max.Y, dy)},
	}
}

// IsFixed reports whether both axes accept a single size.
func (l Limits) IsFixed() bool {
	return l.Min == l.Max
}

// Stretch is the relative weight an element claims when a container
// distributes extra space.
type Stretch struct {
	X, Y float64
}

// DefaultStretch shares space evenly.
var DefaultStretch = Stretch{X: 1, Y: 1}

func addExtent(v, d float64) float64 {
	if v >= FullExtent-d {
		return FullExtent
	}
	return v + d
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
