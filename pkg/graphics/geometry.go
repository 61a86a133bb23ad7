package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Point represents a 2D point or vector in logical coordinates.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Move returns the point offset by (dx, dy).
func (p Point) Move(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the point with both coordinates multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Extent represents width and height dimensions.
type Extent struct {
	X float64
	Y float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromPoints constructs a Rect spanning the two corner points.
func RectFromPoints(topLeft, bottomRight Point) Rect {
	return Rect{Left: topLeft.X, Top: topLeft.Y, Right: bottomRight.X, Bottom: bottomRight.Y}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Extent {
	return Extent{X: r.Width(), Y: r.Height()}
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.Left, Y: r.Top}
}

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point {
	return Point{X: r.Right, Y: r.Bottom}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Includes reports whether p lies inside r. Edges are inclusive.
func (r Rect) Includes(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// IncludesRect reports whether other lies entirely inside r.
func (r Rect) IncludesRect(other Rect) bool {
	return other.Left >= r.Left && other.Right <= r.Right &&
		other.Top >= r.Top && other.Bottom <= r.Bottom
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{} // Empty
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Move returns a new rect offset by (dx, dy).
func (r Rect) Move(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// MoveTo returns the rect with its top-left corner placed at (x, y),
// keeping its size.
func (r Rect) MoveTo(x, y float64) Rect {
	return RectFromLTWH(x, y, r.Width(), r.Height())
}

// Inset shrinks the rect by x on the left and right and y on the top and
// bottom. Negative values grow it.
func (r Rect) Inset(x, y float64) Rect {
	return Rect{
		Left:   r.Left + x,
		Top:    r.Top + y,
		Right:  r.Right - x,
		Bottom: r.Bottom - y,
	}
}

// Widen returns the rect with its width set to w, keeping Left.
func (r Rect) Widen(w float64) Rect {
	r.Right = r.Left + w
	return r
}

// Heighten returns the rect with its height set to h, keeping Top.
func (r Rect) Heighten(h float64) Rect {
	r.Bottom = r.Top + h
	return r
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Equal reports whether r and other match within floating-point tolerance.
func (r Rect) Equal(other Rect) bool {
	return floatEqual(r.Left, other.Left) && floatEqual(r.Top, other.Top) &&
		floatEqual(r.Right, other.Right) && floatEqual(r.Bottom, other.Bottom)
}

// Circle is a center point and radius.
type Circle struct {
	Center Point
	Radius float64
}

// InscribedCircle returns the circle centered in r whose diameter is the
// smaller of r's sides.
func InscribedCircle(r Rect) Circle {
	return Circle{Center: r.Center(), Radius: math.Min(r.Width(), r.Height()) / 2}
}

// CircumscribedCircle returns the circle through the corners of r.
func CircumscribedCircle(r Rect) Circle {
	c := r.Center()
	return Circle{Center: c, Radius: c.Distance(r.TopLeft())}
}

// InscribedRect returns the largest square inside the circle.
func (c Circle) InscribedRect() Rect {
	s := math.Sqrt2 / 2 * c.Radius
	return Rect{Left: c.Center.X - s, Top: c.Center.Y - s, Right: c.Center.X + s, Bottom: c.Center.Y + s}
}

// Bounds returns the square enclosing the circle.
func (c Circle) Bounds() Rect {
	r := c.Radius
	return Rect{Left: c.Center.X - r, Top: c.Center.Y - r, Right: c.Center.X + r, Bottom: c.Center.Y + r}
}

// Inset returns the circle with its radius reduced by d.
func (c Circle) Inset(d float64) Circle {
	c.Radius -= d
	return c
}

// Move returns the circle offset by (dx, dy).
func (c Circle) Move(dx, dy float64) Circle {
	c.Center = c.Center.Move(dx, dy)
	return c
}

// Includes reports whether p lies inside or on the circle.
func (c Circle) Includes(p Point) bool {
	return c.Center.Distance(p) <= c.Radius
}

// Insets are per-side distances, used for margins and padding.
type Insets struct {
	Left   float64 `yaml:"left" toml:"left"`
	Top    float64 `yaml:"top" toml:"top"`
	Right  float64 `yaml:"right" toml:"right"`
	Bottom float64 `yaml:"bottom" toml:"bottom"`
}

// UniformInsets returns insets of d on every side.
func UniformInsets(d float64) Insets {
	return Insets{Left: d, Top: d, Right: d, Bottom: d}
}

// Horizontal returns the sum of the left and right insets.
func (in Insets) Horizontal() float64 { return in.Left + in.Right }

// Vertical returns the sum of the top and bottom insets.
func (in Insets) Vertical() float64 { return in.Top + in.Bottom }

// Deflate shrinks r by the insets.
func (r Rect) Deflate(in Insets) Rect {
	return Rect{
		Left:   r.Left + in.Left,
		Top:    r.Top + in.Top,
		Right:  r.Right - in.Right,
		Bottom: r.Bottom - in.Bottom,
	}
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
