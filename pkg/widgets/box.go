package widgets

import (
	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
)

// BoxElement fills its bounds with a color.
type BoxElement struct {
	element.Base
	Color  graphics.Color
	Radius float64
}

// Box creates a box filled with color.
func Box(color graphics.Color) *BoxElement {
	return &BoxElement{Color: color}
}

// WithRadius returns the box with rounded corners.
func (b *BoxElement) WithRadius(r float64) *BoxElement {
	b.Radius = r
	return b
}

func (b *BoxElement) Draw(ctx *element.Context) {
	paint := graphics.FillPaint(b.Color)
	if b.Radius > 0 {
		ctx.Canvas.DrawRoundRect(ctx.Bounds, b.Radius, paint)
		return
	}
	ctx.Canvas.DrawRect(ctx.Bounds, paint)
}

// PanelElement draws the themed panel background: a rounded rectangle in
// the panel color.
type PanelElement struct {
	element.Base
}

// Panel creates a panel background.
func Panel() *PanelElement { return &PanelElement{} }

func (p *PanelElement) Draw(ctx *element.Context) {
	t := ctx.ThemeOrGlobal()
	ctx.Canvas.DrawRoundRect(ctx.Bounds, t.FrameCornerRadius*2, graphics.FillPaint(t.PanelColor))
}
