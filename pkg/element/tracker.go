package element

import (
	"github.com/go-drift/elements/pkg/errors"
	"github.com/go-drift/elements/pkg/graphics"
)

// TrackerInfo is the state of one tracking session, from button down to
// button up.
type TrackerInfo struct {
	Start    graphics.Point
	Current  graphics.Point
	Previous graphics.Point
	// Offset is subtracted from every drag position. BeginTracking may set
	// it so that Current follows a grabbed handle instead of the pointer.
	Offset    graphics.Point
	Modifiers Modifiers
	// Data holds per-session state attached by a StateFactory.
	Data any
}

// NewTrackerInfo starts a session at start.
func NewTrackerInfo(start graphics.Point, mods Modifiers) *TrackerInfo {
	return &TrackerInfo{Start: start, Current: start, Previous: start, Modifiers: mods}
}

// TrackingHandler receives the phases of a tracking session. It is
// implemented by the element embedding a Tracker.
type TrackingHandler interface {
	BeginTracking(ctx *Context, info *TrackerInfo)
	KeepTracking(ctx *Context, info *TrackerInfo)
	EndTracking(ctx *Context, info *TrackerInfo)
}

// StateFactory lets an element create richer per-session state.
type StateFactory interface {
	NewState(ctx *Context, start graphics.Point, mods Modifiers) *TrackerInfo
}

// Tracker wraps an element and turns button down, drags and button up into
// a tracking session. It always wants control and consumes every click.
// All other operations are forwarded to Inner.
//
// A Tracker must not be copied while in use: a copy reports no session,
// whatever the state of the original.
type Tracker[E Element] struct {
	Inner E

	self  *Tracker[E]
	state *TrackerInfo
}

// NewTracker returns a tracker over inner, ready to embed.
func NewTracker[E Element](inner E) Tracker[E] {
	return Tracker[E]{Inner: inner}
}

// State returns the current session, or nil when idle.
func (t *Tracker[E]) State() *TrackerInfo {
	if t.self != t {
		return nil
	}
	return t.state
}

// IsTracking reports whether a session is in progress.
func (t *Tracker[E]) IsTracking() bool {
	return t.State() != nil
}

// Unwrap returns the inner element, for tree walkers.
func (t *Tracker[E]) Unwrap() Element { return t.Inner }

func (t *Tracker[E]) WantsControl() bool { return true }

// Click starts a session on button down and ends it on button up.
func (t *Tracker[E]) Click(ctx *Context, btn MouseButton) bool {
	if btn.Down {
		var info *TrackerInfo
		if f, ok := ctx.Element.(StateFactory); ok {
			info = f.NewState(ctx, btn.Pos, btn.Modifiers)
		}
		if info == nil {
			info = NewTrackerInfo(btn.Pos, btn.Modifiers)
		}
		t.self, t.state = t, info
		OnTracking(ctx, BeginTracking)
		if h, ok := ctx.Element.(TrackingHandler); ok {
			h.BeginTracking(ctx, info)
		}
		return true
	}
	if info := t.State(); info != nil {
		OnTracking(ctx, EndTracking)
		if h, ok := ctx.Element.(TrackingHandler); ok {
			h.EndTracking(ctx, info)
		}
		t.self, t.state = nil, nil
	}
	return true
}

// Drag updates the session and calls KeepTracking. A drag without a
// session is reported and dropped.
func (t *Tracker[E]) Drag(ctx *Context, btn MouseButton) {
	info := t.State()
	if info == nil {
		errors.ReportProtocol("Tracker.Drag", "drag", ctx.Element, "no tracking session in progress")
		return
	}
	OnTracking(ctx, WhileTracking)
	info.Previous = info.Current
	info.Current = btn.Pos.Move(-info.Offset.X, -info.Offset.Y)
	info.Modifiers = btn.Modifiers
	if h, ok := ctx.Element.(TrackingHandler); ok {
		h.KeepTracking(ctx, info)
	}
}

// TrackScroll tells the view that a scroll is continuing a session, for
// elements whose value also follows the scroll wheel.
func (t *Tracker[E]) TrackScroll(ctx *Context, dir, p graphics.Point) {
	OnTracking(ctx, WhileTracking)
}

func (t *Tracker[E]) Limits(ctx *Context) Limits { return t.Inner.Limits(ctx) }

func (t *Tracker[E]) Stretch() Stretch { return t.Inner.Stretch() }

func (t *Tracker[E]) Span() int { return t.Inner.Span() }

func (t *Tracker[E]) HitTest(ctx *Context, p graphics.Point) Element {
	return t.Inner.HitTest(ctx, p)
}

func (t *Tracker[E]) Draw(ctx *Context) { t.Inner.Draw(ctx) }

func (t *Tracker[E]) Layout(ctx *Context) { t.Inner.Layout(ctx) }

func (t *Tracker[E]) Refresh(ctx *Context, target Element, outward int) {
	t.Inner.Refresh(ctx, target, outward)
}

func (t *Tracker[E]) Key(ctx *Context, k KeyInfo) bool { return t.Inner.Key(ctx, k) }

func (t *Tracker[E]) Text(ctx *Context, info TextInfo) bool { return t.Inner.Text(ctx, info) }

func (t *Tracker[E]) Cursor(ctx *Context, p graphics.Point, status CursorTracking) bool {
	return t.Inner.Cursor(ctx, p, status)
}

func (t *Tracker[E]) Scroll(ctx *Context, dir, p graphics.Point) bool {
	return t.Inner.Scroll(ctx, dir, p)
}

func (t *Tracker[E]) WantsFocus() bool { return t.Inner.WantsFocus() }

func (t *Tracker[E]) BeginFocus() { t.Inner.BeginFocus() }

func (t *Tracker[E]) EndFocus() { t.Inner.EndFocus() }

func (t *Tracker[E]) Focus() Element { return t.Inner.Focus() }
