package graphics

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

var (
	red         = color.RGBA{R: 0xFF, A: 0xFF}
	transparent = color.RGBA{}
)

func pixel(c *RasterCanvas, x, y int) color.RGBA {
	return c.Image().RGBAAt(x, y)
}

func TestRasterFillRect(t *testing.T) {
	c := NewRasterCanvas(10, 10, 1, nil)
	c.DrawRect(RectFromLTWH(2, 2, 4, 4), FillPaint(RGB(0xFF, 0, 0)))

	if got := pixel(c, 3, 3); got != red {
		t.Errorf("inside = %v, want red", got)
	}
	if got := pixel(c, 0, 0); got != transparent {
		t.Errorf("outside = %v, want transparent", got)
	}
	if got := pixel(c, 6, 6); got != transparent {
		t.Errorf("past the right edge = %v, want transparent", got)
	}
}

func TestRasterClipAndRestore(t *testing.T) {
	c := NewRasterCanvas(10, 10, 1, nil)
	c.Save()
	c.ClipRect(RectFromLTWH(0, 0, 5, 10))
	c.DrawRect(RectFromLTWH(0, 0, 10, 10), FillPaint(RGB(0xFF, 0, 0)))
	c.Restore()

	if got := pixel(c, 2, 5); got != red {
		t.Errorf("inside clip = %v, want red", got)
	}
	if got := pixel(c, 7, 5); got != transparent {
		t.Errorf("outside clip = %v, want transparent", got)
	}

	c.DrawRect(RectFromLTWH(5, 0, 5, 10), FillPaint(RGB(0xFF, 0, 0)))
	if got := pixel(c, 7, 5); got != red {
		t.Errorf("after restore = %v, want red", got)
	}
}

func TestRasterScaleAndTranslate(t *testing.T) {
	c := NewRasterCanvas(20, 20, 2, nil)
	if got := c.Size(); got != (Extent{X: 10, Y: 10}) {
		t.Errorf("Size = %v, want 10x10 logical", got)
	}

	c.Save()
	c.Translate(2, 2)
	c.DrawRect(RectFromLTWH(0, 0, 3, 3), FillPaint(RGB(0xFF, 0, 0)))
	c.Restore()

	if got := pixel(c, 4, 4); got != red {
		t.Errorf("translated origin = %v, want red", got)
	}
	if got := pixel(c, 9, 9); got != red {
		t.Errorf("last covered pixel = %v, want red", got)
	}
	if got := pixel(c, 10, 10); got != transparent {
		t.Errorf("first uncovered pixel = %v, want transparent", got)
	}
	if got := pixel(c, 3, 3); got != transparent {
		t.Errorf("before origin = %v, want transparent", got)
	}
	if got := c.Size(); got != (Extent{X: 10, Y: 10}) {
		t.Errorf("Size after restore = %v", got)
	}
}

func TestRasterClear(t *testing.T) {
	c := NewRasterCanvas(4, 4, 1, nil)
	c.DrawRect(RectFromLTWH(0, 0, 4, 4), FillPaint(RGB(0xFF, 0, 0)))
	c.Clear(RGB(0, 0, 0xFF))
	if got := pixel(c, 1, 1); got != (color.RGBA{B: 0xFF, A: 0xFF}) {
		t.Errorf("after Clear = %v, want blue", got)
	}
}

func TestRasterDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.RGBA{G: 0xFF, A: 0xFF}), image.Point{}, draw.Src)

	c := NewRasterCanvas(10, 10, 1, nil)
	c.DrawImage(src, RectFromLTWH(2, 2, 6, 6))

	got := pixel(c, 5, 5)
	if got.G < 0xF0 || got.R != 0 || got.A < 0xF0 {
		t.Errorf("image pixel = %v, want green", got)
	}
	if got := pixel(c, 1, 1); got != transparent {
		t.Errorf("outside image = %v, want transparent", got)
	}
}

func TestRasterStrokeLine(t *testing.T) {
	c := NewRasterCanvas(10, 10, 1, nil)
	c.DrawLine(Pt(0, 5), Pt(10, 5), StrokePaint(RGB(0xFF, 0, 0), 2))

	if got := pixel(c, 5, 4); got != red {
		t.Errorf("on the line = %v, want red", got)
	}
	if got := pixel(c, 5, 1); got != transparent {
		t.Errorf("off the line = %v, want transparent", got)
	}
}
