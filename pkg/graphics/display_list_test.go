package graphics

import (
	"image"
	"testing"
)

// opLog is a canvas that records the names of the calls it receives.
type opLog struct {
	Canvas
	ops []string
}

func (l *opLog) Save()                       { l.ops = append(l.ops, "save") }
func (l *opLog) Restore()                    { l.ops = append(l.ops, "restore") }
func (l *opLog) Translate(float64, float64)  { l.ops = append(l.ops, "translate") }
func (l *opLog) ClipRect(Rect)               { l.ops = append(l.ops, "clip") }
func (l *opLog) DrawRect(Rect, Paint)        { l.ops = append(l.ops, "rect") }
func (l *opLog) DrawCircle(Circle, Paint)    { l.ops = append(l.ops, "circle") }
func (l *opLog) DrawImage(image.Image, Rect) { l.ops = append(l.ops, "image") }
func (l *opLog) DrawText(string, Point, TextStyle, TextAlign) {
	l.ops = append(l.ops, "text")
}

func TestPictureRecorderReplay(t *testing.T) {
	rec := NewPictureRecorder(nil)
	c := rec.BeginRecording(Extent{X: 100, Y: 50})
	if got := c.Size(); got != (Extent{X: 100, Y: 50}) {
		t.Errorf("recording Size = %v", got)
	}
	c.Save()
	c.Translate(10, 10)
	c.ClipRect(RectFromLTWH(0, 0, 20, 20))
	c.DrawRect(RectFromLTWH(0, 0, 5, 5), FillPaint(ColorBlack))
	c.DrawCircle(Circle{Radius: 3}, FillPaint(ColorWhite))
	c.DrawText("hi", Pt(0, 0), TextStyle{}, TextAlignLeft)
	c.DrawImage(image.NewRGBA(image.Rect(0, 0, 1, 1)), RectFromLTWH(0, 0, 1, 1))
	c.Restore()
	dl := rec.EndRecording()

	if dl.Len() != 8 || dl.Size() != (Extent{X: 100, Y: 50}) {
		t.Fatalf("display list len %d size %v", dl.Len(), dl.Size())
	}

	log := &opLog{}
	dl.Paint(log)
	want := []string{"save", "translate", "clip", "rect", "circle", "text", "image", "restore"}
	if len(log.ops) != len(want) {
		t.Fatalf("replayed %v, want %v", log.ops, want)
	}
	for i := range want {
		if log.ops[i] != want[i] {
			t.Errorf("op %d = %s, want %s", i, log.ops[i], want[i])
		}
	}
}

func TestPictureRecorderIgnoresDrawsAfterEnd(t *testing.T) {
	rec := NewPictureRecorder(nil)
	c := rec.BeginRecording(Extent{X: 10, Y: 10})
	c.DrawRect(RectFromLTWH(0, 0, 1, 1), DefaultPaint())
	first := rec.EndRecording()
	c.DrawRect(RectFromLTWH(0, 0, 1, 1), DefaultPaint())

	if first.Len() != 1 {
		t.Errorf("first list len = %d, want 1", first.Len())
	}
	if got := rec.EndRecording().Len(); got != 0 {
		t.Errorf("list after end = %d ops, want 0", got)
	}
}

func TestRecordingCanvasMeasuresWithItsFonts(t *testing.T) {
	fonts, err := NewFontManager()
	if err != nil {
		t.Fatal(err)
	}
	c := NewPictureRecorder(fonts).BeginRecording(Extent{})
	if got := c.MeasureText("abcd", TextStyle{FontSize: 13}).Width; got != 28 {
		t.Errorf("MeasureText width = %v, want 28", got)
	}
}
