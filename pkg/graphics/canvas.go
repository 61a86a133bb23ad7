package graphics

import "image"

// Canvas records or renders drawing commands. Elements draw into the
// canvas carried by their context, within the context bounds.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRoundRect draws a rectangle with circular corners of the given radius.
	DrawRoundRect(rect Rect, radius float64, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(circle Circle, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Point, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawText draws a single line of text anchored at pos according to align.
	DrawText(text string, pos Point, style TextStyle, align TextAlign)

	// MeasureText returns the metrics of a single line of text.
	MeasureText(text string, style TextStyle) TextMetrics

	// DrawImage draws img scaled into dst.
	DrawImage(img image.Image, dst Rect)

	// Size returns the size of the canvas in logical units.
	Size() Extent
}
