package element

import "github.com/go-drift/elements/pkg/graphics"

// SubjectPreparer is implemented by elements embedding a Proxy that adjust
// the subject's context, typically its bounds, before every forwarded call.
type SubjectPreparer interface {
	PrepareSubject(ctx *Context)
}

// PointPreparer is implemented by proxies that also transform the event
// position of pointer operations. Proxies that only implement
// SubjectPreparer get it called for pointer operations too.
type PointPreparer interface {
	PrepareSubjectAt(ctx *Context, p *graphics.Point)
}

// SubjectRestorer undoes bookkeeping done by PrepareSubject. It runs after
// every forwarded call, including ones where the subject declined.
type SubjectRestorer interface {
	RestoreSubject(ctx *Context)
}

// Proxy forwards every Element operation to a single subject.
//
// Each forwarded call gets a sub-context whose element is the subject and
// whose bounds equal the proxy's own. The hooks above, when implemented by
// the element that embeds the Proxy (found through ctx.Element), may adjust
// that context first. Limits, Stretch and Span are passed through
// unchanged; override them to change the subject's size preferences.
type Proxy[S Element] struct {
	subject S
}

// NewProxy returns a proxy over subject, ready to embed.
func NewProxy[S Element](subject S) Proxy[S] {
	return Proxy[S]{subject: subject}
}

// Subject returns the wrapped element.
func (p *Proxy[S]) Subject() S { return p.subject }

// SetSubject replaces the wrapped element.
func (p *Proxy[S]) SetSubject(s S) { p.subject = s }

// Unwrap returns the subject as an Element, for tree walkers.
func (p *Proxy[S]) Unwrap() Element { return p.subject }

func (p *Proxy[S]) enter(ctx *Context) *Context {
	sub := ctx.Sub(p.subject, ctx.Bounds)
	if h, ok := ctx.Element.(SubjectPreparer); ok {
		h.PrepareSubject(sub)
	}
	return sub
}

func (p *Proxy[S]) enterAt(ctx *Context, pos *graphics.Point) *Context {
	if h, ok := ctx.Element.(PointPreparer); ok {
		sub := ctx.Sub(p.subject, ctx.Bounds)
		h.PrepareSubjectAt(sub, pos)
		return sub
	}
	return p.enter(ctx)
}

func (p *Proxy[S]) leave(ctx, sub *Context) {
	if h, ok := ctx.Element.(SubjectRestorer); ok {
		h.RestoreSubject(sub)
	}
}

// Limits visits the subject in its own context without preparing bounds.
func (p *Proxy[S]) Limits(ctx *Context) Limits {
	return p.subject.Limits(ctx.Sub(p.subject, ctx.Bounds))
}

func (p *Proxy[S]) Stretch() Stretch { return p.subject.Stretch() }

func (p *Proxy[S]) Span() int { return p.subject.Span() }

func (p *Proxy[S]) HitTest(ctx *Context, pos graphics.Point) Element {
	sub := p.enterAt(ctx, &pos)
	defer p.leave(ctx, sub)
	return p.subject.HitTest(sub, pos)
}

func (p *Proxy[S]) Draw(ctx *Context) {
	sub := p.enter(ctx)
	p.subject.Draw(sub)
	p.leave(ctx, sub)
}

func (p *Proxy[S]) Layout(ctx *Context) {
	sub := p.enter(ctx)
	p.subject.Layout(sub)
	p.leave(ctx, sub)
}

// Refresh repaints the proxy when it is the target, and otherwise searches
// the subject.
func (p *Proxy[S]) Refresh(ctx *Context, target Element, outward int) {
	if target != nil && target == ctx.Element {
		RefreshView(ctx, outward)
		return
	}
	sub := p.enter(ctx)
	p.subject.Refresh(sub, target, outward)
	p.leave(ctx, sub)
}

func (p *Proxy[S]) WantsControl() bool { return p.subject.WantsControl() }

func (p *Proxy[S]) Click(ctx *Context, btn MouseButton) bool {
	sub := p.enterAt(ctx, &btn.Pos)
	defer p.leave(ctx, sub)
	return p.subject.Click(sub, btn)
}

func (p *Proxy[S]) Drag(ctx *Context, btn MouseButton) {
	sub := p.enterAt(ctx, &btn.Pos)
	p.subject.Drag(sub, btn)
	p.leave(ctx, sub)
}

func (p *Proxy[S]) Key(ctx *Context, k KeyInfo) bool {
	sub := p.enter(ctx)
	defer p.leave(ctx, sub)
	return p.subject.Key(sub, k)
}

func (p *Proxy[S]) Text(ctx *Context, info TextInfo) bool {
	sub := p.enter(ctx)
	defer p.leave(ctx, sub)
	return p.subject.Text(sub, info)
}

func (p *Proxy[S]) Cursor(ctx *Context, pos graphics.Point, status CursorTracking) bool {
	sub := p.enterAt(ctx, &pos)
	defer p.leave(ctx, sub)
	return p.subject.Cursor(sub, pos, status)
}

func (p *Proxy[S]) Scroll(ctx *Context, dir, pos graphics.Point) bool {
	sub := p.enterAt(ctx, &pos)
	defer p.leave(ctx, sub)
	return p.subject.Scroll(sub, dir, pos)
}

func (p *Proxy[S]) WantsFocus() bool { return p.subject.WantsFocus() }

func (p *Proxy[S]) BeginFocus() { p.subject.BeginFocus() }

func (p *Proxy[S]) EndFocus() { p.subject.EndFocus() }

// Focus returns the subject's focus.
func (p *Proxy[S]) Focus() Element {
	return FocusOf(p.subject)
}

// ForwardRefresh forwards a refresh request to child allotted bounds and
// reports whether it resulted in a repaint. Containers use it to stop at
// the first child that holds the target.
func ForwardRefresh(ctx *Context, child Element, bounds graphics.Rect, target Element, outward int) bool {
	probe := &refreshProbe{View: ctx.View}
	sub := ctx.Sub(child, bounds)
	sub.View = probe
	child.Refresh(sub, target, outward)
	return probe.hit
}

type refreshProbe struct {
	View
	hit bool
}

func (r *refreshProbe) Refresh(ctx *Context, outward int) {
	r.hit = true
	if r.View != nil {
		r.View.Refresh(ctx, outward)
	}
}
