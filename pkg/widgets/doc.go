// Package widgets provides a small gallery of elements built on the
// element protocol.
//
// The gallery covers the pieces most applications start from: colored
// boxes, text labels, images, and the value controls Slider, Dial and
// Button. Value controls implement [element.Receiver] and report user
// changes through an OnChange callback; [LinkValues] keeps several of
// them in sync.
//
// # Construction
//
// Widgets are created through constructor functions and configured with
// chained WithX methods:
//
//	volume := widgets.Slider(0.5).WithOnChange(setVolume)
//	title := widgets.Label("Mixer").WithFontSize(18)
//
// Widgets are pointer types. To reach a widget from a callback while it
// sits in the tree, share it and place it with [element.Hold]:
//
//	dial := widgets.Dial(0.5)
//	content := layout.Center(element.Hold(dial))
//
// # Theming
//
// Colors, fonts and margins come from the context theme, falling back to
// the process-wide [theme.Get]. Fields set on a widget override the theme.
package widgets
