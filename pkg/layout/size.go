package layout

import (
	"math"

	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
)

// SizeElement overrides its subject's limits.
type SizeElement struct {
	element.Proxy[element.Element]
	adjust func(element.Limits) element.Limits
	// fixed, when set, also forces the subject's bounds to that size.
	fixed *graphics.Extent
}

// FixedSize makes subject exactly w by h.
func FixedSize(w, h float64, subject element.Element) *SizeElement {
	return &SizeElement{
		Proxy:  element.NewProxy(subject),
		adjust: func(element.Limits) element.Limits { return element.FixedLimits(w, h) },
		fixed:  &graphics.Extent{X: w, Y: h},
	}
}

// MinSize raises subject's minimum size to at least w by h.
func MinSize(w, h float64, subject element.Element) *SizeElement {
	return &SizeElement{
		Proxy: element.NewProxy(subject),
		adjust: func(l element.Limits) element.Limits {
			l.Min.X, l.Min.Y = math.Max(l.Min.X, w), math.Max(l.Min.Y, h)
			l.Max.X, l.Max.Y = math.Max(l.Max.X, l.Min.X), math.Max(l.Max.Y, l.Min.Y)
			return l
		},
	}
}

// MaxSize caps subject's maximum size at w by h.
func MaxSize(w, h float64, subject element.Element) *SizeElement {
	return &SizeElement{
		Proxy: element.NewProxy(subject),
		adjust: func(l element.Limits) element.Limits {
			l.Max.X, l.Max.Y = math.Min(l.Max.X, w), math.Min(l.Max.Y, h)
			l.Min.X, l.Min.Y = math.Min(l.Min.X, l.Max.X), math.Min(l.Min.Y, l.Max.Y)
			return l
		},
	}
}

// HSize fixes subject's width and keeps its height limits.
func HSize(w float64, subject element.Element) *SizeElement {
	return &SizeElement{
		Proxy: element.NewProxy(subject),
		adjust: func(l element.Limits) element.Limits {
			l.Min.X, l.Max.X = w, w
			return l
		},
	}
}

// VSize fixes subject's height and keeps its width limits.
func VSize(h float64, subject element.Element) *SizeElement {
	return &SizeElement{
		Proxy: element.NewProxy(subject),
		adjust: func(l element.Limits) element.Limits {
			l.Min.Y, l.Max.Y = h, h
			return l
		},
	}
}

func (s *SizeElement) Limits(ctx *element.Context) element.Limits {
	return s.adjust(s.Subject().Limits(ctx))
}

func (s *SizeElement) PrepareSubject(ctx *element.Context) {
	if s.fixed != nil {
		ctx.Bounds = ctx.Bounds.Widen(s.fixed.X).Heighten(s.fixed.Y)
	}
}

// StretchElement overrides its subject's stretch.
type StretchElement struct {
	element.Proxy[element.Element]
	stretch func(element.Stretch) element.Stretch
}

// HStretch sets subject's horizontal stretch to s.
func HStretch(s float64, subject element.Element) *StretchElement {
	return &StretchElement{
		Proxy:   element.NewProxy(subject),
		stretch: func(st element.Stretch) element.Stretch { st.X = s; return st },
	}
}

// VStretch sets subject's vertical stretch to s.
func VStretch(s float64, subject element.Element) *StretchElement {
	return &StretchElement{
		Proxy:   element.NewProxy(subject),
		stretch: func(st element.Stretch) element.Stretch { st.Y = s; return st },
	}
}

// NoStretch stops subject from taking extra space on either axis.
func NoStretch(subject element.Element) *StretchElement {
	return &StretchElement{
		Proxy:   element.NewProxy(subject),
		stretch: func(element.Stretch) element.Stretch { return element.Stretch{} },
	}
}

func (s *StretchElement) Stretch() element.Stretch {
	return s.stretch(s.Subject().Stretch())
}

// SpanElement overrides its subject's span.
type SpanElement struct {
	element.Proxy[element.Element]
	span int
}

// Span makes subject occupy n grid cells.
func Span(n int, subject element.Element) *SpanElement {
	return &SpanElement{Proxy: element.NewProxy(subject), span: n}
}

func (s *SpanElement) Span() int { return s.span }
