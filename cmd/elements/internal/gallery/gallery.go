// Package gallery builds the demo composition rendered by the CLI.
package gallery

import (
	"fmt"

	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
	"github.com/go-drift/elements/pkg/layout"
	"github.com/go-drift/elements/pkg/widgets"
)

// Gallery holds the controls of the demo so callers can drive them.
type Gallery struct {
	Root    element.Element
	Level   *widgets.LabelElement
	Dial    *widgets.DialElement
	Slider  *widgets.SliderElement
	VSlider *widgets.SliderElement
	Reset   *widgets.ButtonElement
}

// New builds the gallery at value init. The value controls are linked
// through r.
func New(r widgets.Refresher, init float64) *Gallery {
	g := &Gallery{
		Level:   widgets.Label(levelText(init)),
		Dial:    widgets.Dial(init),
		Slider:  widgets.Slider(init),
		VSlider: widgets.VSlider(init),
		Reset:   widgets.Button("Reset"),
	}

	widgets.LinkValues(r, func(v float64) {
		g.Level.SetText(levelText(v))
		r.RefreshElement(g.Level, 0)
	}, g.Dial, g.Slider, g.VSlider)

	g.Reset.OnClick = func() {
		g.set(r, init)
	}

	controls := layout.HTile(
		layout.FixedSize(96, 96, g.Dial),
		layout.Margin(graphics.Insets{Left: 20}, layout.VTile(
			layout.Margin(graphics.Insets{Bottom: 10}, g.Slider),
			layout.HAlign(0, g.Level),
		)),
		layout.Margin(graphics.Insets{Left: 20}, layout.VSize(160, g.VSlider)),
	)

	g.Root = layout.Layer(
		widgets.Panel(),
		layout.Margin(graphics.UniformInsets(20), layout.VTile(
			layout.Margin(graphics.Insets{Bottom: 16}, layout.HAlign(0, widgets.Label("Elements").WithFontSize(20))),
			controls,
			layout.Margin(graphics.Insets{Top: 16}, layout.HAlign(1, g.Reset)),
		)),
	)
	return g
}

// set moves every control to v and repaints them.
func (g *Gallery) set(r widgets.Refresher, v float64) {
	for _, c := range []widgets.ValueControl{g.Dial, g.Slider, g.VSlider} {
		c.SetValue(v)
		r.RefreshElement(c, 0)
	}
	g.Level.SetText(levelText(v))
	r.RefreshElement(g.Level, 0)
}

func levelText(v float64) string {
	return fmt.Sprintf("Level %3.0f%%", v*100)
}
