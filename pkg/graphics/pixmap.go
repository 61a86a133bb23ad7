package graphics

import (
	"fmt"
	"image"
	"os"

	// Decoders available to LoadPixmap.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Pixmap is a decoded image together with the scale it was authored at.
// A pixmap authored for a 2x display has Scale 2 and reports half its pixel
// size in logical units.
type Pixmap struct {
	Image image.Image
	Scale float64
}

// NewPixmap wraps an already decoded image.
func NewPixmap(img image.Image, scale float64) *Pixmap {
	if scale <= 0 {
		scale = 1
	}
	return &Pixmap{Image: img, Scale: scale}
}

// LoadPixmap decodes an image file. PNG, JPEG, GIF, BMP and WebP are
// supported.
func LoadPixmap(path string, scale float64) (*Pixmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load pixmap %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode pixmap %q: %w", path, err)
	}
	return NewPixmap(img, scale), nil
}

// Size returns the logical size of the pixmap.
func (p *Pixmap) Size() Extent {
	if p == nil || p.Image == nil {
		return Extent{}
	}
	b := p.Image.Bounds()
	return Extent{X: float64(b.Dx()) / p.Scale, Y: float64(b.Dy()) / p.Scale}
}
