package testing

import (
	"fmt"

	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/graphics"
)

// Press sends a left button press at pos and reports whether an element
// accepted it.
func (t *ViewTester) Press(pos graphics.Point) bool {
	t.host.cursor = pos
	return t.view.Click(element.MouseButton{Down: true, NumClicks: 1, Which: element.ButtonLeft, Pos: pos})
}

// Release sends a left button release at pos.
func (t *ViewTester) Release(pos graphics.Point) bool {
	t.host.cursor = pos
	return t.view.Click(element.MouseButton{Which: element.ButtonLeft, Pos: pos})
}

// MoveTo sends a drag to pos with the left button held.
func (t *ViewTester) MoveTo(pos graphics.Point) {
	t.host.cursor = pos
	t.view.Drag(element.MouseButton{Down: true, Which: element.ButtonLeft, Pos: pos})
}

// TapAt presses and releases at pos.
func (t *ViewTester) TapAt(pos graphics.Point) bool {
	accepted := t.Press(pos)
	t.Release(pos)
	return accepted
}

// Tap taps the center of e. It fails if e is not in the content.
func (t *ViewTester) Tap(e element.Element) error {
	bounds, ok := t.BoundsOf(e)
	if !ok {
		return fmt.Errorf("Tap: element not in content: %T", e)
	}
	if !t.TapAt(bounds.Center()) {
		return fmt.Errorf("Tap: press at %v was not accepted", bounds.Center())
	}
	return nil
}

// DragFrom presses at start, moves by delta in steps drags, and releases.
func (t *ViewTester) DragFrom(start, delta graphics.Point, steps int) {
	if steps < 1 {
		steps = 1
	}
	t.Press(start)
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		t.MoveTo(start.Add(delta.Scale(frac)))
	}
	t.Release(start.Add(delta))
}

// Drag drags from the center of e by delta.
func (t *ViewTester) Drag(e element.Element, delta graphics.Point, steps int) error {
	bounds, ok := t.BoundsOf(e)
	if !ok {
		return fmt.Errorf("Drag: element not in content: %T", e)
	}
	t.DragFrom(bounds.Center(), delta, steps)
	return nil
}

// Hover moves the pointer to pos without a button held.
func (t *ViewTester) Hover(pos graphics.Point) bool {
	t.host.cursor = pos
	return t.view.Cursor(pos, element.CursorHovering)
}

// Leave tells the view the pointer left the window.
func (t *ViewTester) Leave() {
	t.view.Cursor(t.host.cursor, element.CursorLeaving)
}

// ScrollAt scrolls by dir at pos.
func (t *ViewTester) ScrollAt(pos, dir graphics.Point) bool {
	return t.view.Scroll(dir, pos)
}

// PressKey sends a key press followed by its release and reports whether
// the press was handled.
func (t *ViewTester) PressKey(key element.KeyCode, mods element.Modifiers) bool {
	handled := t.view.Key(element.KeyInfo{Key: key, Action: element.KeyPress, Modifiers: mods})
	t.view.Key(element.KeyInfo{Key: key, Action: element.KeyRelease, Modifiers: mods})
	return handled
}

// Type sends each rune of s as text input.
func (t *ViewTester) Type(s string) {
	for _, r := range s {
		t.view.Text(element.TextInfo{Codepoint: r})
	}
}
