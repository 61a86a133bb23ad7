// Package layout provides composites that size and place elements: margins,
// alignment, size constraints, stretch overrides, floating placement, and
// the multi-child layer and tile containers.
package layout

import (
	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
)

// MarginElement surrounds its subject with empty space.
type MarginElement struct {
	element.Proxy[element.Element]
	Insets graphics.Insets
}

// Margin pads subject by insets.
func Margin(insets graphics.Insets, subject element.Element) *MarginElement {
	return &MarginElement{Proxy: element.NewProxy(subject), Insets: insets}
}

// Limits grows the subject's limits by the insets.
func (m *MarginElement) Limits(ctx *element.Context) element.Limits {
	return m.Subject().Limits(ctx).Inflate(m.Insets.Horizontal(), m.Insets.Vertical())
}

func (m *MarginElement) PrepareSubject(ctx *element.Context) {
	ctx.Bounds = ctx.Bounds.Deflate(m.Insets)
}
