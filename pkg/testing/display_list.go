package testing

import (
	"fmt"
	"image"
	"math"

	"github.com/go-drift/elements/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Extent
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) Scale(sx, sy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "scale",
		Params: sortedMap("sx", round2(sx), "sy", round2(sy)),
	})
}

func (c *serializingCanvas) ClipRect(rect graphics.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: withPaint(paint, "rect", serializeRect(rect)),
	})
}

func (c *serializingCanvas) DrawRoundRect(rect graphics.Rect, radius float64, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRoundRect",
		Params: withPaint(paint, "rect", serializeRect(rect), "radius", round2(radius)),
	})
}

func (c *serializingCanvas) DrawCircle(circle graphics.Circle, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawCircle",
		Params: withPaint(paint,
			"cx", round2(circle.Center.X),
			"cy", round2(circle.Center.Y),
			"radius", round2(circle.Radius),
		),
	})
}

func (c *serializingCanvas) DrawLine(start, end graphics.Point, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawLine",
		Params: withPaint(paint,
			"x1", round2(start.X), "y1", round2(start.Y),
			"x2", round2(end.X), "y2", round2(end.Y),
		),
	})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawPath",
		Params: withPaint(paint, "commands", len(path.Commands)),
	})
}

func (c *serializingCanvas) DrawText(text string, pos graphics.Point, style graphics.TextStyle, align graphics.TextAlign) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawText",
		Params: sortedMap(
			"text", text,
			"x", round2(pos.X), "y", round2(pos.Y),
			"size", round2(style.FontSize),
			"color", serializeColor(style.Color),
			"align", int(align),
		),
	})
}

// MeasureText measures with the default font manager so that recorded
// layouts match the ones made while drawing.
func (c *serializingCanvas) MeasureText(text string, style graphics.TextStyle) graphics.TextMetrics {
	return graphics.MeasureText(text, style)
}

func (c *serializingCanvas) DrawImage(img image.Image, dst graphics.Rect) {
	b := img.Bounds()
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawImage",
		Params: sortedMap("dst", serializeRect(dst), "width", b.Dx(), "height", b.Dy()),
	})
}

func (c *serializingCanvas) Size() graphics.Extent {
	return c.size
}

// serializeDisplayList replays a DisplayList through the serializing canvas.
func serializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// DisplayOps draws the view and returns the recorded operations.
func (t *ViewTester) DisplayOps() []DisplayOp {
	return serializeDisplayList(t.Draw())
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

// withPaint adds the paint to the op parameters. Fills only record their
// color.
func withPaint(p graphics.Paint, kvs ...any) map[string]any {
	m := sortedMap(kvs...)
	m["color"] = serializeColor(p.Color)
	if p.Style != graphics.PaintStyleFill {
		m["style"] = p.Style.String()
		m["strokeWidth"] = round2(p.StrokeWidth)
	}
	return m
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs. The JSON
// encoder writes map keys in sorted order.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
