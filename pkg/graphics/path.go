package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close, or the
// AddRect and AddCircle shorthands. Draw with Canvas.DrawPath.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// AddRect appends a closed rectangle subpath.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// kappa is the cubic control distance for a quarter circle of radius 1.
const kappa = 4 * (math.Sqrt2 - 1) / 3

// AddCircle appends a closed circle subpath built from four cubics.
func (p *Path) AddCircle(c Circle) {
	cx, cy, r := c.Center.X, c.Center.Y, c.Radius
	k := kappa * r
	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	p.CubicTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	p.CubicTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	p.CubicTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	p.Close()
}

// AddRoundRect appends a closed rectangle subpath with circular corners.
// The radius is clamped to half the shorter side.
func (p *Path) AddRoundRect(r Rect, radius float64) {
	radius = math.Min(radius, math.Min(r.Width(), r.Height())/2)
	if radius <= 0 {
		p.AddRect(r)
		return
	}
	k := kappa * radius
	p.MoveTo(r.Left+radius, r.Top)
	p.LineTo(r.Right-radius, r.Top)
	p.CubicTo(r.Right-radius+k, r.Top, r.Right, r.Top+radius-k, r.Right, r.Top+radius)
	p.LineTo(r.Right, r.Bottom-radius)
	p.CubicTo(r.Right, r.Bottom-radius+k, r.Right-radius+k, r.Bottom, r.Right-radius, r.Bottom)
	p.LineTo(r.Left+radius, r.Bottom)
	p.CubicTo(r.Left+radius-k, r.Bottom, r.Left, r.Bottom-radius+k, r.Left, r.Bottom-radius)
	p.LineTo(r.Left, r.Top+radius)
	p.CubicTo(r.Left, r.Top+radius-k, r.Left+radius-k, r.Top, r.Left+radius, r.Top)
	p.Close()
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// clone returns a deep copy so recorded paths are immutable.
func (p *Path) clone() *Path {
	if p == nil {
		return nil
	}
	out := &Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: append([]float64(nil), cmd.Args...)}
	}
	return out
}
