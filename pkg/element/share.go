package element

import (
	"weak"

	"github.com/go-drift/elements/pkg/graphics"
)

// Share moves v into its own heap cell so that the tree and outside code
// (typically a callback on another element) can hold the same instance.
func Share[T any](v T) *T {
	p := new(T)
	*p = v
	return p
}

// Get returns a weak reference to a shared value. It does not keep the
// value alive.
func Get[T any](p *T) weak.Pointer[T] {
	return weak.Make(p)
}

// Receiver is implemented by elements holding a value that other elements
// or application code can read and set.
type Receiver[T any] interface {
	Value() T
	SetValue(v T)
}

// Ref places a shared element in the tree. The tree keeps the element
// alive for as long as the Ref is reachable.
type Ref[E Element] struct {
	Proxy[E]
}

// Hold wraps a shared element for insertion into the tree.
func Hold[E Element](e E) *Ref[E] {
	return &Ref[E]{Proxy: NewProxy(e)}
}

// Get returns the held element.
func (r *Ref[E]) Get() E { return r.Subject() }

// WeakRef places an element in the tree without owning it. Once the
// element has been collected the reference behaves like Empty.
type WeakRef[T any] struct {
	ref weak.Pointer[T]
}

// Link creates a non-owning reference element. *T must implement Element.
func Link[T any](ref weak.Pointer[T]) *WeakRef[T] {
	return &WeakRef[T]{ref: ref}
}

// Target returns the referenced element, or nil once it is gone.
func (w *WeakRef[T]) Target() Element {
	p := w.ref.Value()
	if p == nil {
		return nil
	}
	e, _ := any(p).(Element)
	return e
}

// Unwrap returns the referenced element, or nil once it is gone.
func (w *WeakRef[T]) Unwrap() Element { return w.Target() }

func (w *WeakRef[T]) proxy() *Proxy[Element] {
	target := w.Target()
	if target == nil {
		target = Empty()
	}
	return &Proxy[Element]{subject: target}
}

func (w *WeakRef[T]) Limits(ctx *Context) Limits { return w.proxy().Limits(ctx) }

func (w *WeakRef[T]) Stretch() Stretch { return w.proxy().Stretch() }

func (w *WeakRef[T]) Span() int { return w.proxy().Span() }

func (w *WeakRef[T]) HitTest(ctx *Context, p graphics.Point) Element {
	return w.proxy().HitTest(ctx, p)
}

func (w *WeakRef[T]) Draw(ctx *Context) { w.proxy().Draw(ctx) }

func (w *WeakRef[T]) Layout(ctx *Context) { w.proxy().Layout(ctx) }

func (w *WeakRef[T]) Refresh(ctx *Context, target Element, outward int) {
	w.proxy().Refresh(ctx, target, outward)
}

func (w *WeakRef[T]) WantsControl() bool { return w.proxy().WantsControl() }

func (w *WeakRef[T]) Click(ctx *Context, btn MouseButton) bool { return w.proxy().Click(ctx, btn) }

func (w *WeakRef[T]) Drag(ctx *Context, btn MouseButton) { w.proxy().Drag(ctx, btn) }

func (w *WeakRef[T]) Key(ctx *Context, k KeyInfo) bool { return w.proxy().Key(ctx, k) }

func (w *WeakRef[T]) Text(ctx *Context, info TextInfo) bool { return w.proxy().Text(ctx, info) }

func (w *WeakRef[T]) Cursor(ctx *Context, p graphics.Point, status CursorTracking) bool {
	return w.proxy().Cursor(ctx, p, status)
}

func (w *WeakRef[T]) Scroll(ctx *Context, dir, p graphics.Point) bool {
	return w.proxy().Scroll(ctx, dir, p)
}

func (w *WeakRef[T]) WantsFocus() bool { return w.proxy().WantsFocus() }

func (w *WeakRef[T]) BeginFocus() { w.proxy().BeginFocus() }

func (w *WeakRef[T]) EndFocus() { w.proxy().EndFocus() }

func (w *WeakRef[T]) Focus() Element { return w.proxy().Focus() }
