package element

import (
	"github.com/go-drift/elements/pkg/graphics"
	"github.com/go-drift/elements/pkg/theme"
)

// View is the part of the root driver that elements talk back to.
type View interface {
	// Refresh repaints the bounds of ctx, or of the context outward levels
	// up its parent chain.
	Refresh(ctx *Context, outward int)
	// RefreshRect repaints an area in view coordinates.
	RefreshRect(area graphics.Rect)
	// RefreshAll repaints the whole view.
	RefreshAll()
	// ManageOnTracking is called when e begins, continues or ends a
	// tracking session.
	ManageOnTracking(e Element, state Tracking)
	CursorPos() graphics.Point
	Bounds() graphics.Rect
}

// Listener receives notifications raised with Context.Notify.
type Listener func(ctx *Context, e Element, what string)

// Context carries the state of one level of a tree traversal: the view and
// canvas, the element being visited, the enclosing context and the bounds
// allotted to the element.
//
// Contexts are created per traversal and must not be retained after the
// call they were passed to returns.
type Context struct {
	View    View
	Canvas  graphics.Canvas
	Theme   *theme.Theme
	Element Element
	Parent  *Context
	Bounds  graphics.Rect

	listener Listener
}

// NewContext creates a root context for e.
func NewContext(view View, canvas graphics.Canvas, e Element, bounds graphics.Rect) *Context {
	return &Context{View: view, Canvas: canvas, Element: e, Bounds: bounds}
}

// Sub creates the context for a child element e allotted bounds.
func (c *Context) Sub(e Element, bounds graphics.Rect) *Context {
	return &Context{
		View:    c.View,
		Canvas:  c.Canvas,
		Theme:   c.Theme,
		Element: e,
		Parent:  c,
		Bounds:  bounds,
	}
}

// WithBounds returns a copy of the context with different bounds. The
// element and parent are kept; the listener is not.
func (c *Context) WithBounds(bounds graphics.Rect) *Context {
	return &Context{
		View:    c.View,
		Canvas:  c.Canvas,
		Theme:   c.Theme,
		Element: c.Element,
		Parent:  c.Parent,
		Bounds:  bounds,
	}
}

// SubContext returns a child of c for the same element and bounds.
func (c *Context) SubContext() *Context {
	return c.Sub(c.Element, c.Bounds)
}

// ThemeOrGlobal returns the theme carried by the context, falling back to
// the process-wide theme.
func (c *Context) ThemeOrGlobal() *theme.Theme {
	if c.Theme != nil {
		return c.Theme
	}
	return theme.Get()
}

// ViewBounds returns the bounds of the whole view.
func (c *Context) ViewBounds() graphics.Rect {
	if c.View == nil {
		return graphics.Rect{}
	}
	return c.View.Bounds()
}

// CursorPos returns the current pointer position in view coordinates.
func (c *Context) CursorPos() graphics.Point {
	if c.View == nil {
		return graphics.Point{}
	}
	return c.View.CursorPos()
}

// Outward returns the context n levels up the parent chain, stopping at
// the root.
func (c *Context) Outward(n int) *Context {
	ctx := c
	for ; n > 0 && ctx.Parent != nil; n-- {
		ctx = ctx.Parent
	}
	return ctx
}

// Listen installs fn as the context's listener. Notifications about
// elements that are not a T are ignored.
func Listen[T Element](c *Context, fn func(ctx *Context, e T, what string)) {
	c.listener = func(ctx *Context, e Element, what string) {
		if te, ok := e.(T); ok {
			fn(ctx, te, what)
		}
	}
}

// Notify delivers what about e to the listener of this context and of
// every context up the parent chain.
func (c *Context) Notify(what string, e Element) {
	for ctx := c; ctx != nil; ctx = ctx.Parent {
		if ctx.listener != nil {
			ctx.listener(c, e, what)
		}
	}
}
