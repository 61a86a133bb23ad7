package widgets

import "github.com/go-drift/elements/pkg/element"

// Refresher repaints an element wherever it sits in the tree.
// *view.View implements it.
type Refresher interface {
	RefreshElement(e element.Element, outward int) bool
}

// ValueControl is a widget holding a value the user can change.
type ValueControl interface {
	element.Element
	element.Receiver[float64]
	SetOnChange(fn func(float64))
}

// LinkValues keeps controls showing the same value. When the user changes
// one of them, every other control is set to the new value and repainted
// once through r. Setting a value does not call OnChange, so linked
// controls never echo changes back.
//
// LinkValues replaces the controls' OnChange callbacks. then, if not nil,
// is called after each propagated change.
func LinkValues(r Refresher, then func(float64), controls ...ValueControl) {
	for i, c := range controls {
		c.SetOnChange(func(v float64) {
			for j, other := range controls {
				if j == i {
					continue
				}
				other.SetValue(v)
				r.RefreshElement(other, 0)
			}
			if then != nil {
				then(v)
			}
		})
	}
}
