package widgets

import (
	"math"

	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
	"github.com/go-drift/elements/pkg/theme"
)

const (
	dialMinSize = 32
	// dialStart is the angle of value 0, at the lower left. Angles grow
	// clockwise on screen.
	dialStart = 0.75 * math.Pi
	// dialSweep is the angle covered by values 0 to 1.
	dialSweep = 1.5 * math.Pi
)

// DialElement is a rotary control with a value in [0, 1].
//
// In the theme's linear mode, dragging right or up increases the value by
// the drag distance over DialLinearRange. In radial mode the value follows
// the pointer angle around the dial center.
type DialElement struct {
	element.Tracker[element.Base]
	value float64

	// OnChange is called with the new value when the user turns the dial.
	// It is not called by SetValue.
	OnChange func(float64)
}

// Dial creates a dial at init.
func Dial(init float64) *DialElement {
	return &DialElement{Tracker: element.NewTracker(element.Base{}), value: clamp01(init)}
}

// WithOnChange returns the dial with its change callback set.
func (d *DialElement) WithOnChange(fn func(float64)) *DialElement {
	d.OnChange = fn
	return d
}

func (d *DialElement) Value() float64 { return d.value }

// SetValue turns the dial without calling OnChange.
func (d *DialElement) SetValue(v float64) { d.value = clamp01(v) }

func (d *DialElement) SetOnChange(fn func(float64)) { d.OnChange = fn }

func (d *DialElement) Limits(*element.Context) element.Limits {
	return element.MinLimits(dialMinSize, dialMinSize)
}

func (d *DialElement) Draw(ctx *element.Context) {
	t := ctx.ThemeOrGlobal()
	body := graphics.InscribedCircle(ctx.Bounds).Inset(t.ControlsFrameStrokeWidth)
	canvas := ctx.Canvas

	canvas.DrawCircle(body, graphics.FillPaint(t.ControlsColor))
	frame := t.FrameColor
	if d.IsTracking() {
		frame = t.FrameHiliteColor
	}
	canvas.DrawCircle(body, graphics.StrokePaint(frame, t.ControlsFrameStrokeWidth))

	// Ticks at both ends of the range.
	for _, v := range []float64{0, 1} {
		outer := pointOnCircle(body.Center, body.Radius+t.ControlsFrameStrokeWidth*2, dialStart+v*dialSweep)
		inner := pointOnCircle(body.Center, body.Radius*(1-t.MajorTicksLevel/4), dialStart+v*dialSweep)
		canvas.DrawLine(inner, outer, graphics.StrokePaint(t.TicksColor, t.MajorTicksWidth))
	}

	angle := dialStart + d.value*dialSweep
	tip := pointOnCircle(body.Center, body.Radius*0.8, angle)
	canvas.DrawLine(body.Center, tip, graphics.StrokePaint(t.IndicatorBrightColor, 2))
	canvas.DrawCircle(graphics.Circle{Center: tip, Radius: 2}, graphics.FillPaint(t.IndicatorHiliteColor))
}

// NewState records the value at the press. Linear drags are measured from
// it.
func (d *DialElement) NewState(_ *element.Context, start graphics.Point, mods element.Modifiers) *element.TrackerInfo {
	info := element.NewTrackerInfo(start, mods)
	info.Data = d.value
	return info
}

func (d *DialElement) BeginTracking(ctx *element.Context, info *element.TrackerInfo) {
	if ctx.ThemeOrGlobal().DialMode == theme.DialRadial {
		d.change(ctx, radialValue(ctx.Bounds.Center(), info.Current, d.value))
	}
	element.RefreshView(ctx, 0)
}

func (d *DialElement) KeepTracking(ctx *element.Context, info *element.TrackerInfo) {
	t := ctx.ThemeOrGlobal()
	if t.DialMode == theme.DialRadial {
		d.change(ctx, radialValue(ctx.Bounds.Center(), info.Current, d.value))
		return
	}
	span := t.DialLinearRange
	if span <= 0 {
		return
	}
	start, _ := info.Data.(float64)
	delta := (info.Current.X - info.Start.X) + (info.Start.Y - info.Current.Y)
	d.change(ctx, start+delta/span)
}

func (d *DialElement) EndTracking(ctx *element.Context, _ *element.TrackerInfo) {
	element.RefreshView(ctx, 0)
}

// Scroll nudges the value. Scrolling up or right increases it.
func (d *DialElement) Scroll(ctx *element.Context, dir, p graphics.Point) bool {
	d.TrackScroll(ctx, dir, p)
	d.change(ctx, d.value+(dir.Y+dir.X)*scrollStep)
	return true
}

func (d *DialElement) change(ctx *element.Context, v float64) {
	v = clamp01(v)
	if v == d.value {
		return
	}
	d.value = v
	element.RefreshView(ctx, 0)
	if d.OnChange != nil {
		d.OnChange(v)
	}
}

// radialValue maps the angle of p around center to a value. Positions in
// the dead zone below the dial snap to the nearer end; the center itself
// keeps current.
func radialValue(center, p graphics.Point, current float64) float64 {
	if center.Distance(p) < 1 {
		return current
	}
	angle := math.Atan2(p.Y-center.Y, p.X-center.X) - dialStart
	angle = math.Mod(angle+4*math.Pi, 2*math.Pi)
	if angle > dialSweep {
		if angle > dialSweep+(2*math.Pi-dialSweep)/2 {
			return 0
		}
		return 1
	}
	return angle / dialSweep
}

func pointOnCircle(center graphics.Point, radius, angle float64) graphics.Point {
	return graphics.Pt(center.X+radius*math.Cos(angle), center.Y+radius*math.Sin(angle))
}
