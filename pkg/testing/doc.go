// Package testing drives element trees headlessly.
//
// A ViewTester attaches a view.View to an in-memory host, records the
// repaints elements ask for, and draws into a recording canvas. Gesture
// helpers feed the view the same event sequences a window backend would.
//
// # Quick Start
//
//	func TestVolume(t *testing.T) {
//	    tester := elementstest.NewViewTesterWithT(t)
//	    slider := widgets.Slider(0)
//	    tester.SetContent(layout.VTile(slider, widgets.Label("Volume")))
//
//	    // Find elements
//	    label := tester.Find(elementstest.ByText("Volume")).First()
//
//	    // Simulate gestures
//	    tester.Drag(slider, graphics.Pt(100, 0), 4)
//
//	    // Assert state
//	    if slider.Value() == 0 {
//	        t.Error("expected the slider to move")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare the element tree and its drawing:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/mixer.snapshot.json")
//
// Update snapshots with:
//
//	ELEMENTS_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import elementstest "github.com/go-drift/elements/pkg/testing"
package testing
