package layout

import (
	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
)

// container implements the Element operations shared by multi-child
// composites. The embedding type supplies Limits and the arrangement of
// children through arrange.
type container struct {
	element.Base
	children []element.Element
	arrange  func(ctx *element.Context) []graphics.Rect
	// frontFirst lists child indices from the frontmost to the backmost.
	frontFirst func(n int) []int

	clickTracking int
	hovering      int
	focused       int
}

func newContainer(children []element.Element) container {
	return container{children: children, clickTracking: -1, hovering: -1, focused: -1}
}

// Children returns the contained elements.
func (c *container) Children() []element.Element { return c.children }

// Len returns the number of children.
func (c *container) Len() int { return len(c.children) }

func (c *container) order() []int {
	if c.frontFirst != nil {
		return c.frontFirst(len(c.children))
	}
	order := make([]int, len(c.children))
	for i := range order {
		order[i] = i
	}
	return order
}

func (c *container) sub(ctx *element.Context, bounds []graphics.Rect, i int) *element.Context {
	return ctx.Sub(c.children[i], bounds[i])
}

func (c *container) HitTest(ctx *element.Context, p graphics.Point) element.Element {
	bounds := c.arrange(ctx)
	for _, i := range c.order() {
		if !bounds[i].Includes(p) {
			continue
		}
		if hit := c.children[i].HitTest(c.sub(ctx, bounds, i), p); hit != nil {
			return hit
		}
	}
	return nil
}

func (c *container) Draw(ctx *element.Context) {
	bounds := c.arrange(ctx)
	order := c.order()
	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		c.children[i].Draw(c.sub(ctx, bounds, i))
	}
}

func (c *container) Layout(ctx *element.Context) {
	bounds := c.arrange(ctx)
	for i, child := range c.children {
		child.Layout(ctx.Sub(child, bounds[i]))
	}
}

// Refresh repaints the first child holding target, searching front to
// back. A shared element placed in several children is repainted where
// it is found first.
func (c *container) Refresh(ctx *element.Context, target element.Element, outward int) {
	if target != nil && target == ctx.Element {
		element.RefreshView(ctx, outward)
		return
	}
	bounds := c.arrange(ctx)
	for _, i := range c.order() {
		if element.ForwardRefresh(ctx, c.children[i], bounds[i], target, outward) {
			return
		}
	}
}

func (c *container) WantsControl() bool {
	for _, child := range c.children {
		if child.WantsControl() {
			return true
		}
	}
	return false
}

// Click offers a button press to the children under the pointer, front to
// back, until one accepts it. The accepting child receives the drags and
// the release that follow.
func (c *container) Click(ctx *element.Context, btn element.MouseButton) bool {
	bounds := c.arrange(ctx)
	if !btn.Down {
		i := c.clickTracking
		if i < 0 || i >= len(c.children) {
			return false
		}
		c.clickTracking = -1
		c.children[i].Click(c.sub(ctx, bounds, i), btn)
		return true
	}

	c.clickTracking = -1
	for _, i := range c.order() {
		child := c.children[i]
		if !bounds[i].Includes(btn.Pos) || !child.WantsControl() {
			continue
		}
		if child.Click(c.sub(ctx, bounds, i), btn) {
			c.clickTracking = i
			if child.WantsFocus() && c.focused != i {
				c.moveFocus(i)
			}
			return true
		}
	}
	return false
}

func (c *container) Drag(ctx *element.Context, btn element.MouseButton) {
	i := c.clickTracking
	if i < 0 || i >= len(c.children) {
		return
	}
	bounds := c.arrange(ctx)
	c.children[i].Drag(c.sub(ctx, bounds, i), btn)
}

// Cursor tracks which child is under the pointer, sending it Entering and
// the previous one Leaving.
func (c *container) Cursor(ctx *element.Context, p graphics.Point, status element.CursorTracking) bool {
	bounds := c.arrange(ctx)
	if status == element.CursorLeaving {
		c.leaveHovered(ctx, bounds, p)
		return false
	}

	hit := -1
	for _, i := range c.order() {
		if bounds[i].Includes(p) {
			hit = i
			break
		}
	}
	if hit != c.hovering {
		c.leaveHovered(ctx, bounds, p)
		c.hovering = hit
		if hit >= 0 {
			return c.children[hit].Cursor(c.sub(ctx, bounds, hit), p, element.CursorEntering)
		}
		return false
	}
	if hit < 0 {
		return false
	}
	return c.children[hit].Cursor(c.sub(ctx, bounds, hit), p, status)
}

func (c *container) leaveHovered(ctx *element.Context, bounds []graphics.Rect, p graphics.Point) {
	if i := c.hovering; i >= 0 && i < len(c.children) {
		c.children[i].Cursor(c.sub(ctx, bounds, i), p, element.CursorLeaving)
	}
	c.hovering = -1
}

func (c *container) Scroll(ctx *element.Context, dir, p graphics.Point) bool {
	bounds := c.arrange(ctx)
	for _, i := range c.order() {
		if bounds[i].Includes(p) && c.children[i].Scroll(c.sub(ctx, bounds, i), dir, p) {
			return true
		}
	}
	return false
}

func (c *container) Key(ctx *element.Context, k element.KeyInfo) bool {
	i := c.focused
	if i < 0 || i >= len(c.children) {
		return false
	}
	return c.children[i].Key(c.sub(ctx, c.arrange(ctx), i), k)
}

func (c *container) Text(ctx *element.Context, info element.TextInfo) bool {
	i := c.focused
	if i < 0 || i >= len(c.children) {
		return false
	}
	return c.children[i].Text(c.sub(ctx, c.arrange(ctx), i), info)
}

func (c *container) WantsFocus() bool {
	for _, child := range c.children {
		if child.WantsFocus() {
			return true
		}
	}
	return false
}

// BeginFocus gives focus to the child that last had it, or the first
// child that wants it.
func (c *container) BeginFocus() {
	if c.focused < 0 {
		for i, child := range c.children {
			if child.WantsFocus() {
				c.focused = i
				break
			}
		}
	}
	if c.focused >= 0 {
		c.children[c.focused].BeginFocus()
	}
}

func (c *container) EndFocus() {
	if i := c.focused; i >= 0 && i < len(c.children) {
		c.children[i].EndFocus()
	}
}

// Focus returns the focus of the focused child, or nil when no child has
// focus.
func (c *container) Focus() element.Element {
	if i := c.focused; i >= 0 && i < len(c.children) {
		return element.FocusOf(c.children[i])
	}
	return nil
}

func (c *container) moveFocus(i int) {
	if c.focused >= 0 && c.focused < len(c.children) {
		c.children[c.focused].EndFocus()
	}
	c.focused = i
	c.children[i].BeginFocus()
}
