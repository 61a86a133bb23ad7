package widgets_test

import (
	stderrors "errors"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/elements/pkg/errors"
	"github.com/go-drift/elements/pkg/graphics"
	"github.com/go-drift/elements/pkg/layout"
	elementstest "github.com/go-drift/elements/pkg/testing"
	"github.com/go-drift/elements/pkg/widgets"
)

// testPixmap is 40x20 pixels at scale 2, so 20x10 logical.
func testPixmap() *graphics.Pixmap {
	return graphics.NewPixmap(image.NewRGBA(image.Rect(0, 0, 40, 20)), 2)
}

func TestImage_NoneFitUsesPixmapSize(t *testing.T) {
	tester := elementstest.NewViewTesterWithT(t)
	img := widgets.Image(testPixmap())
	tester.SetContent(layout.Center(img))

	r := boundsOf(t, tester, img)
	if r.Width() != 20 || r.Height() != 10 {
		t.Errorf("image size = %vx%v, want 20x10", r.Width(), r.Height())
	}
}

func TestImage_Fit(t *testing.T) {
	tests := []struct {
		fit  widgets.ImageFit
		want graphics.Rect
	}{
		{widgets.ImageFitContain, graphics.RectFromLTWH(0, 25, 100, 50)},
		{widgets.ImageFitCover, graphics.RectFromLTWH(-50, 0, 200, 100)},
		{widgets.ImageFitFill, graphics.RectFromLTWH(0, 0, 100, 100)},
		{widgets.ImageFitScaleDown, graphics.RectFromLTWH(40, 45, 20, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.fit.String(), func(t *testing.T) {
			tester := elementstest.NewViewTesterWithT(t)
			tester.SetContent(layout.FixedSize(100, 100, widgets.Image(testPixmap()).WithFit(tt.fit)))

			ops := opsNamed(tester.DisplayOps(), "drawImage")
			if len(ops) != 1 {
				t.Fatalf("drawImage ops = %d, want 1", len(ops))
			}
			dst := ops[0].Params["dst"].(map[string]any)
			got := graphics.Rect{
				Left: dst["left"].(float64), Top: dst["top"].(float64),
				Right: dst["right"].(float64), Bottom: dst["bottom"].(float64),
			}
			if got != tt.want {
				t.Errorf("dst = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImage_ClipsToBounds(t *testing.T) {
	tester := elementstest.NewViewTesterWithT(t)
	tester.SetContent(layout.FixedSize(100, 100, widgets.Image(testPixmap()).WithFit(widgets.ImageFitCover)))

	var names []string
	for _, op := range tester.DisplayOps() {
		names = append(names, op.Op)
	}
	want := []string{"save", "clipRect", "save", "clipRect", "drawImage", "restore", "restore"}
	if len(names) != len(want) {
		t.Fatalf("ops = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("op %d = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestLoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knob.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 64, 32))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := widgets.LoadImage(path, 2)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if size := img.Pixmap().Size(); size.X != 32 || size.Y != 16 {
		t.Errorf("size = %v, want 32x16", size)
	}
}

func TestLoadImage_Missing(t *testing.T) {
	_, err := widgets.LoadImage(filepath.Join(t.TempDir(), "missing.png"), 1)

	var ee *errors.ElementsError
	if !stderrors.As(err, &ee) {
		t.Fatalf("error = %v, want *ElementsError", err)
	}
	if ee.Kind != errors.KindResource {
		t.Errorf("kind = %v, want resource", ee.Kind)
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("underlying not-exist error should be preserved")
	}
}
