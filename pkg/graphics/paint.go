package graphics

import "fmt"

// PaintStyle describes how shapes are drawn.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke

	// PaintStyleFillAndStroke fills and then strokes the outline.
	PaintStyleFillAndStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	case PaintStyleFillAndStroke:
		return "fill_and_stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape.
type Paint struct {
	Color Color
	// StrokeColor is used for the outline when Style is PaintStyleFillAndStroke.
	// Zero means Color.
	StrokeColor Color
	Style       PaintStyle
	StrokeWidth float64
}

// DefaultPaint returns an opaque black fill paint.
func DefaultPaint() Paint {
	return Paint{Color: ColorBlack, Style: PaintStyleFill, StrokeWidth: 1}
}

// FillPaint returns a fill paint of the given color.
func FillPaint(c Color) Paint {
	return Paint{Color: c, Style: PaintStyleFill}
}

// StrokePaint returns a stroke paint of the given color and width.
func StrokePaint(c Color, width float64) Paint {
	return Paint{Color: c, Style: PaintStyleStroke, StrokeWidth: width}
}

func (p Paint) strokeColor() Color {
	if p.Style == PaintStyleFillAndStroke && p.StrokeColor != 0 {
		return p.StrokeColor
	}
	return p.Color
}
