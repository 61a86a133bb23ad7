package widgets

import (
	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
)

// LabelElement displays a single line of text. Its limits are fixed at the
// measured size of the text.
type LabelElement struct {
	element.Base
	text string

	// FontSize overrides the theme label size when positive.
	FontSize float64
	// Color overrides the theme label color when non-zero.
	Color graphics.Color
}

// Label creates a label showing text.
func Label(text string) *LabelElement {
	return &LabelElement{text: text}
}

// Text returns the displayed text.
func (l *LabelElement) Text() string { return l.text }

// SetText replaces the displayed text. The caller refreshes the view; the
// new text may change the label's limits.
func (l *LabelElement) SetText(text string) { l.text = text }

// WithFontSize returns the label with its font size overridden.
func (l *LabelElement) WithFontSize(size float64) *LabelElement {
	l.FontSize = size
	return l
}

// WithColor returns the label with its color overridden.
func (l *LabelElement) WithColor(c graphics.Color) *LabelElement {
	l.Color = c
	return l
}

func (l *LabelElement) style(ctx *element.Context) graphics.TextStyle {
	style := ctx.ThemeOrGlobal().LabelStyle()
	if l.FontSize > 0 {
		style.FontSize = l.FontSize
	}
	if l.Color != 0 {
		style.Color = l.Color
	}
	return style
}

func (l *LabelElement) Limits(ctx *element.Context) element.Limits {
	size := measure(ctx, l.text, l.style(ctx)).Extent()
	return element.FixedLimits(size.X, size.Y)
}

func (l *LabelElement) Draw(ctx *element.Context) {
	align := ctx.ThemeOrGlobal().LabelTextAlign
	ctx.Canvas.DrawText(l.text, anchor(ctx.Bounds, align), l.style(ctx), align)
}

// measure measures text with the context canvas, or with the default font
// manager when the context has none.
func measure(ctx *element.Context, text string, style graphics.TextStyle) graphics.TextMetrics {
	if ctx.Canvas != nil {
		return ctx.Canvas.MeasureText(text, style)
	}
	return graphics.MeasureText(text, style)
}

// anchor returns the point of bounds that text aligned with align is drawn
// from.
func anchor(bounds graphics.Rect, align graphics.TextAlign) graphics.Point {
	p := bounds.Center()
	switch align.Horizontal() {
	case graphics.TextAlignLeft:
		p.X = bounds.Left
	case graphics.TextAlignRight:
		p.X = bounds.Right
	}
	switch align.Vertical() {
	case graphics.TextAlignTop:
		p.Y = bounds.Top
	case graphics.TextAlignBottom:
		p.Y = bounds.Bottom
	}
	return p
}
