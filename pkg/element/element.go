// Package element defines the composition protocol shared by every node in
// an element tree.
//
// An Element reports its size preferences, draws itself into the canvas
// carried by a Context, and answers pointer, keyboard and focus events.
// Base supplies inert defaults so leaf elements only override what they use.
// Proxy forwards every operation to a single subject and Tracker turns
// click/drag/click sequences into a begin/keep/end tracking session.
//
// Go has no virtual self for embedded structs, so the element currently
// being visited travels in Context.Element. Operations that need identity
// (hit-testing, refresh, tracking notifications, proxy hooks) read it from
// there. Elements are therefore always used through pointers.
package element

import "github.com/go-drift/elements/pkg/graphics"

// Element is a node in the element tree.
type Element interface {
	// Limits reports the acceptable size range. It may consult canvas font
	// metrics but must not have visible side effects.
	Limits(ctx *Context) Limits
	// Stretch reports the weight used to share extra space.
	Stretch() Stretch
	// Span reports how many grid cells the element occupies.
	Span() int

	// HitTest returns the element (or a descendant) under p, or nil.
	HitTest(ctx *Context, p graphics.Point) Element
	// Draw renders into ctx.Canvas within ctx.Bounds.
	Draw(ctx *Context)
	// Layout recomputes cached geometry for ctx.Bounds. It is called
	// before Draw whenever the bounds change.
	Layout(ctx *Context)
	// Refresh requests a repaint of target. The element that is target
	// asks ctx.View to repaint; composites forward into their subjects.
	Refresh(ctx *Context, target Element, outward int)

	WantsControl() bool
	Click(ctx *Context, btn MouseButton) bool
	Drag(ctx *Context, btn MouseButton)
	Key(ctx *Context, k KeyInfo) bool
	Text(ctx *Context, info TextInfo) bool
	Cursor(ctx *Context, p graphics.Point, status CursorTracking) bool
	Scroll(ctx *Context, dir, p graphics.Point) bool

	WantsFocus() bool
	BeginFocus()
	EndFocus()
	// Focus returns the element that receives keyboard input on behalf of
	// this one. A nil result means the element itself.
	Focus() Element
}

// Tracking identifies a phase of a pointer tracking session.
type Tracking int

const (
	TrackingNone Tracking = iota
	BeginTracking
	WhileTracking
	EndTracking
)

func (t Tracking) String() string {
	switch t {
	case BeginTracking:
		return "begin"
	case WhileTracking:
		return "while"
	case EndTracking:
		return "end"
	default:
		return "none"
	}
}

// Base provides the default behavior of an element: unbounded limits,
// unit stretch and span, no drawing, and no interest in input. Embed it
// and override the operations the element needs.
type Base struct{}

func (Base) Limits(*Context) Limits { return FullLimits }
func (Base) Stretch() Stretch       { return DefaultStretch }
func (Base) Span() int              { return 1 }

// HitTest returns the visited element when p lies within ctx.Bounds.
func (Base) HitTest(ctx *Context, p graphics.Point) Element {
	if ctx.Bounds.Includes(p) {
		return ctx.Element
	}
	return nil
}

func (Base) Draw(*Context)   {}
func (Base) Layout(*Context) {}

// Refresh asks the view to repaint when target is the visited element.
func (Base) Refresh(ctx *Context, target Element, outward int) {
	if target != nil && target == ctx.Element {
		RefreshView(ctx, outward)
	}
}

func (Base) WantsControl() bool                                   { return false }
func (Base) Click(*Context, MouseButton) bool                     { return false }
func (Base) Drag(*Context, MouseButton)                           {}
func (Base) Key(*Context, KeyInfo) bool                           { return false }
func (Base) Text(*Context, TextInfo) bool                         { return false }
func (Base) Cursor(*Context, graphics.Point, CursorTracking) bool { return false }
func (Base) Scroll(*Context, graphics.Point, graphics.Point) bool { return false }
func (Base) WantsFocus() bool                                     { return false }
func (Base) BeginFocus()                                          {}
func (Base) EndFocus()                                            {}
func (Base) Focus() Element                                       { return nil }

// FocusOf resolves the focus of e, treating a nil Focus result as e.
func FocusOf(e Element) Element {
	if e == nil {
		return nil
	}
	if f := e.Focus(); f != nil {
		return f
	}
	return e
}

// OnTracking tells the view that the visited element started, continued
// or ended a tracking session.
func OnTracking(ctx *Context, state Tracking) {
	if ctx.View != nil {
		ctx.View.ManageOnTracking(ctx.Element, state)
	}
}

// RefreshView asks the view to repaint ctx.Bounds, or the bounds of the
// context outward levels up the parent chain.
func RefreshView(ctx *Context, outward int) {
	if ctx.View != nil {
		ctx.View.Refresh(ctx, outward)
	}
}

type empty struct{ Base }

// Empty returns an element that occupies no space and ignores everything.
func Empty() Element {
	return &empty{}
}

func (*empty) Limits(*Context) Limits { return Limits{} }

func (*empty) HitTest(*Context, graphics.Point) Element { return nil }
