package widgets

import (
	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
)

// ButtonElement is a push button showing a label.
//
// The button tracks the pointer from press to release and calls OnClick
// when the pointer is released over it. Moving the pointer off the button
// while pressed cancels the click. The label is inset by the theme's
// ButtonMargin.
type ButtonElement struct {
	element.Tracker[*element.Proxy[*LabelElement]]
	label   *LabelElement
	pressed bool

	// Color is the body color. The theme's DefaultButtonColor is used when
	// zero.
	Color graphics.Color
	// OnClick is called when a press is released over the button.
	OnClick func()
}

// Button creates a button showing text.
func Button(text string) *ButtonElement {
	label := Label(text)
	proxy := element.NewProxy(label)
	return &ButtonElement{Tracker: element.NewTracker(&proxy), label: label}
}

// WithOnClick returns the button with its click callback set.
func (b *ButtonElement) WithOnClick(fn func()) *ButtonElement {
	b.OnClick = fn
	return b
}

// WithColor returns the button with its body color set.
func (b *ButtonElement) WithColor(c graphics.Color) *ButtonElement {
	b.Color = c
	return b
}

// Label returns the button's label.
func (b *ButtonElement) Label() *LabelElement { return b.label }

// Pressed reports whether the button is held down with the pointer over it.
func (b *ButtonElement) Pressed() bool { return b.pressed }

func (b *ButtonElement) Limits(ctx *element.Context) element.Limits {
	margin := ctx.ThemeOrGlobal().ButtonMargin
	return b.Tracker.Limits(ctx).Inflate(margin.Horizontal(), margin.Vertical())
}

// HitTest hits the whole button, margin included.
func (b *ButtonElement) HitTest(ctx *element.Context, p graphics.Point) element.Element {
	if ctx.Bounds.Includes(p) {
		return ctx.Element
	}
	return nil
}

func (b *ButtonElement) PrepareSubject(ctx *element.Context) {
	ctx.Bounds = ctx.Bounds.Deflate(ctx.ThemeOrGlobal().ButtonMargin)
}

func (b *ButtonElement) Draw(ctx *element.Context) {
	t := ctx.ThemeOrGlobal()
	body := b.Color
	if body == 0 {
		body = t.DefaultButtonColor
	}
	frame := t.FrameColor
	if b.pressed {
		body = t.IndicatorColor
		frame = t.FrameHiliteColor
	}
	ctx.Canvas.DrawRoundRect(ctx.Bounds, t.FrameCornerRadius, graphics.FillPaint(body))
	ctx.Canvas.DrawRoundRect(ctx.Bounds.Inset(t.FrameStrokeWidth/2, t.FrameStrokeWidth/2), t.FrameCornerRadius, graphics.StrokePaint(frame, t.FrameStrokeWidth))
	b.Tracker.Draw(ctx)
}

func (b *ButtonElement) BeginTracking(ctx *element.Context, _ *element.TrackerInfo) {
	b.pressed = true
	element.RefreshView(ctx, 0)
}

func (b *ButtonElement) KeepTracking(ctx *element.Context, info *element.TrackerInfo) {
	if inside := ctx.Bounds.Includes(info.Current); inside != b.pressed {
		b.pressed = inside
		element.RefreshView(ctx, 0)
	}
}

func (b *ButtonElement) EndTracking(ctx *element.Context, _ *element.TrackerInfo) {
	clicked := b.pressed
	b.pressed = false
	element.RefreshView(ctx, 0)
	if clicked && b.OnClick != nil {
		b.OnClick()
	}
}
