package gallery

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/elements/pkg/graphics"
	elementstest "github.com/go-drift/elements/pkg/testing"
)

func TestGallery_LinkedControls(t *testing.T) {
	tester := elementstest.NewViewTesterWithT(t)
	g := New(tester.View(), 0.25)
	tester.SetContent(g.Root)

	if !tester.Find(elementstest.ByText("Level  25%")).Exists() {
		t.Fatalf("initial level label missing, got %q", g.Level.Text())
	}

	r, ok := tester.BoundsOf(g.Slider)
	if !ok {
		t.Fatal("slider not in content")
	}
	tester.TapAt(graphics.Pt(r.Left+8+0.75*(r.Width()-16), r.Center().Y))

	for name, v := range map[string]float64{
		"slider":  g.Slider.Value(),
		"dial":    g.Dial.Value(),
		"vslider": g.VSlider.Value(),
	} {
		if math.Abs(v-0.75) > 1e-9 {
			t.Errorf("%s = %v, want 0.75", name, v)
		}
	}
	if g.Level.Text() != "Level  75%" {
		t.Errorf("level = %q", g.Level.Text())
	}
}

func TestGallery_Reset(t *testing.T) {
	tester := elementstest.NewViewTesterWithT(t)
	g := New(tester.View(), 0.5)
	tester.SetContent(g.Root)

	g.Dial.SetValue(0.9)
	g.Slider.SetValue(0.1)
	if err := tester.Tap(g.Reset); err != nil {
		t.Fatal(err)
	}
	if g.Dial.Value() != 0.5 || g.Slider.Value() != 0.5 || g.VSlider.Value() != 0.5 {
		t.Errorf("values after reset: %v %v %v", g.Dial.Value(), g.Slider.Value(), g.VSlider.Value())
	}
	if g.Level.Text() != "Level  50%" {
		t.Errorf("level = %q", g.Level.Text())
	}
}

// failureLog collects snapshot failures instead of failing the test.
type failureLog struct {
	errors []string
}

func (f *failureLog) Helper()      {}
func (f *failureLog) Name() string { return "TestGallery_Snapshot" }

func (f *failureLog) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *failureLog) Fatalf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func gallerySnapshot(t *testing.T, init float64) (*elementstest.ViewTester, *Gallery, *elementstest.Snapshot) {
	t.Helper()
	tester := elementstest.NewViewTesterWithT(t)
	g := New(tester.View(), init)
	tester.SetContent(g.Root)
	return tester, g, tester.CaptureSnapshot()
}

func TestGallery_Snapshot(t *testing.T) {
	t.Setenv("ELEMENTS_UPDATE_SNAPSHOTS", "")
	_, _, golden := gallerySnapshot(t, 0.25)
	path := filepath.Join(t.TempDir(), "testdata", "gallery.snapshot.json")
	if err := golden.UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	tester, g, snap := gallerySnapshot(t, 0.25)
	snap.MatchesFile(t, path)

	props := map[string]map[string]any{}
	var walk func(n *elementstest.ElementNode)
	walk = func(n *elementstest.ElementNode) {
		props[n.ID] = n.Properties
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, root := range snap.Tree {
		walk(root)
	}
	if len(snap.Tree) != 1 || snap.Tree[0].Type != "LayerElement" {
		t.Fatalf("roots = %d, want one LayerElement", len(snap.Tree))
	}
	if v := props["DialElement#0"]["value"]; v != 0.25 {
		t.Errorf("dial value = %v", v)
	}
	if v := props["SliderElement#1"]["vertical"]; v != true {
		t.Errorf("second slider vertical = %v", v)
	}
	if len(snap.DisplayOps) == 0 {
		t.Error("gallery should draw")
	}

	r, ok := tester.BoundsOf(g.Slider)
	if !ok {
		t.Fatal("slider not in content")
	}
	tester.TapAt(graphics.Pt(r.Left+8+0.75*(r.Width()-16), r.Center().Y))

	log := &failureLog{}
	tester.CaptureSnapshot().MatchesFile(log, path)
	if len(log.errors) != 1 || !strings.Contains(log.errors[0], "snapshot mismatch") {
		t.Errorf("moved controls should change the snapshot, got %v", log.errors)
	}
}
