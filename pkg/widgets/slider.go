package widgets

import (
	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
)

const (
	sliderThumbSize  = 16
	sliderTrackWidth = 4
	sliderMinLength  = 50

	// scrollStep is the value change per scroll unit for value controls.
	scrollStep = 0.01
)

// SliderElement lets the user pick a value in [0, 1] by dragging a thumb
// along a track. Pressing on the track jumps the thumb to the pointer;
// pressing on the thumb grabs it where it was hit.
type SliderElement struct {
	element.Tracker[element.Base]
	value    float64
	vertical bool

	// OnChange is called with the new value when the user moves the
	// slider. It is not called by SetValue.
	OnChange func(float64)
}

// Slider creates a horizontal slider at init.
func Slider(init float64) *SliderElement {
	return &SliderElement{Tracker: element.NewTracker(element.Base{}), value: clamp01(init)}
}

// VSlider creates a vertical slider at init. Its value grows upward.
func VSlider(init float64) *SliderElement {
	s := Slider(init)
	s.vertical = true
	return s
}

// WithOnChange returns the slider with its change callback set.
func (s *SliderElement) WithOnChange(fn func(float64)) *SliderElement {
	s.OnChange = fn
	return s
}

func (s *SliderElement) Value() float64 { return s.value }

// SetValue moves the slider without calling OnChange.
func (s *SliderElement) SetValue(v float64) { s.value = clamp01(v) }

func (s *SliderElement) SetOnChange(fn func(float64)) { s.OnChange = fn }

// Vertical reports whether the slider runs bottom to top.
func (s *SliderElement) Vertical() bool { return s.vertical }

func (s *SliderElement) Limits(*element.Context) element.Limits {
	if s.vertical {
		return element.Limits{
			Min: graphics.Pt(sliderThumbSize, sliderMinLength),
			Max: graphics.Pt(sliderThumbSize, element.FullExtent),
		}
	}
	return element.Limits{
		Min: graphics.Pt(sliderMinLength, sliderThumbSize),
		Max: graphics.Pt(element.FullExtent, sliderThumbSize),
	}
}

func (s *SliderElement) Draw(ctx *element.Context) {
	t := ctx.ThemeOrGlobal()
	b := ctx.Bounds
	thumb := s.thumbCenter(b)

	var track, filled graphics.Rect
	if s.vertical {
		x := b.Center().X - sliderTrackWidth/2
		track = graphics.Rect{Left: x, Top: b.Top, Right: x + sliderTrackWidth, Bottom: b.Bottom}
		filled = track
		filled.Top = thumb.Y
	} else {
		y := b.Center().Y - sliderTrackWidth/2
		track = graphics.Rect{Left: b.Left, Top: y, Right: b.Right, Bottom: y + sliderTrackWidth}
		filled = track
		filled.Right = thumb.X
	}

	canvas := ctx.Canvas
	canvas.DrawRoundRect(track, sliderTrackWidth/2, graphics.FillPaint(t.ControlsColor))
	canvas.DrawRoundRect(filled, sliderTrackWidth/2, graphics.FillPaint(t.IndicatorColor))

	knob := graphics.Circle{Center: thumb, Radius: sliderThumbSize / 2}
	canvas.DrawCircle(knob, graphics.FillPaint(t.IndicatorBrightColor))
	frame := t.FrameColor
	if s.IsTracking() {
		frame = t.FrameHiliteColor
	}
	canvas.DrawCircle(knob.Inset(t.FrameStrokeWidth/2), graphics.StrokePaint(frame, t.FrameStrokeWidth))
}

func (s *SliderElement) BeginTracking(ctx *element.Context, info *element.TrackerInfo) {
	thumb := s.thumbCenter(ctx.Bounds)
	if info.Start.Distance(thumb) <= sliderThumbSize/2 {
		info.Offset = info.Start.Sub(thumb)
		info.Current = thumb
	}
	s.moveTo(ctx, info.Current)
	element.RefreshView(ctx, 0)
}

func (s *SliderElement) KeepTracking(ctx *element.Context, info *element.TrackerInfo) {
	s.moveTo(ctx, info.Current)
}

func (s *SliderElement) EndTracking(ctx *element.Context, _ *element.TrackerInfo) {
	element.RefreshView(ctx, 0)
}

// Scroll nudges the value. Scrolling up or right increases it.
func (s *SliderElement) Scroll(ctx *element.Context, dir, p graphics.Point) bool {
	s.TrackScroll(ctx, dir, p)
	s.change(ctx, s.value+(dir.Y+dir.X)*scrollStep)
	return true
}

func (s *SliderElement) thumbCenter(b graphics.Rect) graphics.Point {
	c := b.Center()
	if s.vertical {
		travel := b.Height() - sliderThumbSize
		return graphics.Pt(c.X, b.Bottom-sliderThumbSize/2-s.value*travel)
	}
	travel := b.Width() - sliderThumbSize
	return graphics.Pt(b.Left+sliderThumbSize/2+s.value*travel, c.Y)
}

// valueAt maps a thumb center position to a value.
func (s *SliderElement) valueAt(b graphics.Rect, p graphics.Point) float64 {
	if s.vertical {
		travel := b.Height() - sliderThumbSize
		if travel <= 0 {
			return s.value
		}
		return clamp01((b.Bottom - sliderThumbSize/2 - p.Y) / travel)
	}
	travel := b.Width() - sliderThumbSize
	if travel <= 0 {
		return s.value
	}
	return clamp01((p.X - b.Left - sliderThumbSize/2) / travel)
}

func (s *SliderElement) moveTo(ctx *element.Context, p graphics.Point) {
	s.change(ctx, s.valueAt(ctx.Bounds, p))
}

func (s *SliderElement) change(ctx *element.Context, v float64) {
	v = clamp01(v)
	if v == s.value {
		return
	}
	s.value = v
	element.RefreshView(ctx, 0)
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
