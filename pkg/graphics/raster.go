package graphics

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// curveSegments is the number of line segments used to flatten a curve
// when stroking.
const curveSegments = 16

type rasterState struct {
	tx, ty float64
	sx, sy float64
	clip   image.Rectangle
}

// RasterCanvas is a software Canvas drawing into an *image.RGBA. It
// supports translate and scale transforms and rectangular clips.
type RasterCanvas struct {
	dst   *image.RGBA
	fonts *FontManager
	state rasterState
	stack []rasterState
	z     *vector.Rasterizer
}

// NewRasterCanvas creates a canvas of width x height pixels. scale maps
// logical units to pixels (the device pixel ratio).
func NewRasterCanvas(width, height int, scale float64, fonts *FontManager) *RasterCanvas {
	if scale <= 0 {
		scale = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	return &RasterCanvas{
		dst:   dst,
		fonts: fonts,
		state: rasterState{sx: scale, sy: scale, clip: dst.Bounds()},
		z:     vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.dst
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.state.tx += dx * c.state.sx
	c.state.ty += dy * c.state.sy
}

func (c *RasterCanvas) Scale(sx, sy float64) {
	c.state.sx *= sx
	c.state.sy *= sy
}

func (c *RasterCanvas) ClipRect(rect Rect) {
	tl := c.device(rect.TopLeft())
	br := c.device(rect.BottomRight())
	r := image.Rect(int(math.Floor(tl.X)), int(math.Floor(tl.Y)), int(math.Ceil(br.X)), int(math.Ceil(br.Y)))
	c.state.clip = c.state.clip.Intersect(r)
}

func (c *RasterCanvas) Clear(color Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	path := NewPath()
	path.AddRect(rect)
	c.DrawPath(path, paint)
}

func (c *RasterCanvas) DrawRoundRect(rect Rect, radius float64, paint Paint) {
	path := NewPath()
	path.AddRoundRect(rect, radius)
	c.DrawPath(path, paint)
}

func (c *RasterCanvas) DrawCircle(circle Circle, paint Paint) {
	path := NewPath()
	path.AddCircle(circle)
	c.DrawPath(path, paint)
}

func (c *RasterCanvas) DrawLine(start, end Point, paint Paint) {
	width := paint.StrokeWidth
	if width <= 0 {
		width = 1
	}
	c.strokeSegment(start, end, width, paint.Color)
}

func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	if path == nil || path.IsEmpty() || c.state.clip.Empty() {
		return
	}
	if paint.Style == PaintStyleFill || paint.Style == PaintStyleFillAndStroke {
		c.fill(path, paint.Color)
	}
	if paint.Style == PaintStyleStroke || paint.Style == PaintStyleFillAndStroke {
		width := paint.StrokeWidth
		if width <= 0 {
			width = 1
		}
		for _, poly := range flatten(path) {
			for i := 1; i < len(poly); i++ {
				c.strokeSegment(poly[i-1], poly[i], width, paint.strokeColor())
			}
		}
	}
}

func (c *RasterCanvas) DrawText(text string, pos Point, style TextStyle, align TextAlign) {
	if text == "" || c.state.clip.Empty() {
		return
	}
	fonts := c.fontManager()
	if fonts == nil {
		return
	}
	face, _, err := fonts.Face(style)
	if err != nil {
		return
	}
	metrics := c.MeasureText(text, style)
	origin := c.device(metrics.Baseline(pos, align))
	sub, ok := c.dst.SubImage(c.state.clip).(*image.RGBA)
	if !ok {
		return
	}
	d := &font.Drawer{
		Dst:  sub,
		Src:  image.NewUniform(style.Color.NRGBA()),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(origin.X), Y: floatToFixed(origin.Y)},
	}
	d.DrawString(text)
}

func (c *RasterCanvas) MeasureText(text string, style TextStyle) TextMetrics {
	return measureWith(c.fonts, "graphics.RasterCanvas.MeasureText", text, style)
}

func (c *RasterCanvas) DrawImage(img image.Image, dst Rect) {
	if img == nil {
		return
	}
	tl := c.device(dst.TopLeft())
	br := c.device(dst.BottomRight())
	target := image.Rect(int(math.Round(tl.X)), int(math.Round(tl.Y)), int(math.Round(br.X)), int(math.Round(br.Y)))
	sub, ok := c.dst.SubImage(c.state.clip).(*image.RGBA)
	if !ok {
		return
	}
	xdraw.CatmullRom.Scale(sub, target, img, img.Bounds(), xdraw.Over, nil)
}

func (c *RasterCanvas) Size() Extent {
	b := c.dst.Bounds()
	return Extent{X: float64(b.Dx()) / c.baseScale(), Y: float64(b.Dy()) / c.baseScale()}
}

func (c *RasterCanvas) baseScale() float64 {
	if len(c.stack) > 0 {
		return c.stack[0].sx
	}
	return c.state.sx
}

func (c *RasterCanvas) fontManager() *FontManager {
	if c.fonts != nil {
		return c.fonts
	}
	return DefaultFontManager()
}

// device maps a logical point to pixel space.
func (c *RasterCanvas) device(p Point) Point {
	return Point{X: p.X*c.state.sx + c.state.tx, Y: p.Y*c.state.sy + c.state.ty}
}

// fill rasterizes the path into a mask the size of the clip and composites
// the color through it.
func (c *RasterCanvas) fill(path *Path, color Color) {
	clip := c.state.clip
	if clip.Empty() {
		return
	}
	c.z.Reset(clip.Dx(), clip.Dy())
	ox, oy := float64(clip.Min.X), float64(clip.Min.Y)
	at := func(x, y float64) (float32, float32) {
		p := c.device(Point{X: x, Y: y})
		return float32(p.X - ox), float32(p.Y - oy)
	}
	open := false
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case PathOpMoveTo:
			if open {
				c.z.ClosePath()
			}
			c.z.MoveTo(at(a[0], a[1]))
			open = true
		case PathOpLineTo:
			c.z.LineTo(at(a[0], a[1]))
		case PathOpQuadTo:
			x1, y1 := at(a[0], a[1])
			x2, y2 := at(a[2], a[3])
			c.z.QuadTo(x1, y1, x2, y2)
		case PathOpCubicTo:
			x1, y1 := at(a[0], a[1])
			x2, y2 := at(a[2], a[3])
			x3, y3 := at(a[4], a[5])
			c.z.CubeTo(x1, y1, x2, y2, x3, y3)
		case PathOpClose:
			c.z.ClosePath()
			open = false
		}
	}
	if open {
		c.z.ClosePath()
	}
	c.z.DrawOp = draw.Over
	c.z.Draw(c.dst, clip, image.NewUniform(color.NRGBA()), clip.Min)
}

// strokeSegment fills the quad covering a line of the given width.
func (c *RasterCanvas) strokeSegment(a, b Point, width float64, color Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	quad := NewPath()
	quad.MoveTo(a.X+nx, a.Y+ny)
	quad.LineTo(b.X+nx, b.Y+ny)
	quad.LineTo(b.X-nx, b.Y-ny)
	quad.LineTo(a.X-nx, a.Y-ny)
	quad.Close()
	c.fill(quad, color)
}

// flatten converts a path into polylines, one per subpath.
func flatten(path *Path) [][]Point {
	var polys [][]Point
	var cur []Point
	var start, last Point
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case PathOpMoveTo:
			if len(cur) > 1 {
				polys = append(polys, cur)
			}
			start = Point{X: a[0], Y: a[1]}
			last = start
			cur = []Point{start}
		case PathOpLineTo:
			last = Point{X: a[0], Y: a[1]}
			cur = append(cur, last)
		case PathOpQuadTo:
			p1, p2 := Point{X: a[0], Y: a[1]}, Point{X: a[2], Y: a[3]}
			for i := 1; i <= curveSegments; i++ {
				t := float64(i) / curveSegments
				u := 1 - t
				cur = append(cur, Point{
					X: u*u*last.X + 2*u*t*p1.X + t*t*p2.X,
					Y: u*u*last.Y + 2*u*t*p1.Y + t*t*p2.Y,
				})
			}
			last = p2
		case PathOpCubicTo:
			p1, p2, p3 := Point{X: a[0], Y: a[1]}, Point{X: a[2], Y: a[3]}, Point{X: a[4], Y: a[5]}
			for i := 1; i <= curveSegments; i++ {
				t := float64(i) / curveSegments
				u := 1 - t
				cur = append(cur, Point{
					X: u*u*u*last.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
					Y: u*u*u*last.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
				})
			}
			last = p3
		case PathOpClose:
			cur = append(cur, start)
			last = start
		}
	}
	if len(cur) > 1 {
		polys = append(polys, cur)
	}
	return polys
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
