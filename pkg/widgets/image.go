package widgets

import (
	"fmt"

	"github.com/go-drift/elements/pkg/element"
	"github.com/go-drift/elements/pkg/errors"
	"github.com/go-drift/elements/pkg/graphics"
)

// ImageElement draws a pixmap.
//
// With the default ImageFitNone the element's limits are fixed at the
// pixmap's logical size. The other fit modes accept any size and scale the
// pixmap into the bounds, centered:
//
//   - ImageFitContain: Scales to fit within the bounds while keeping the aspect ratio
//   - ImageFitFill: Stretches the pixmap to fill the bounds
//   - ImageFitCover: Scales to cover the bounds while keeping the aspect ratio (cropped)
//   - ImageFitScaleDown: Like Contain, but never scales up
type ImageElement struct {
	element.Base
	pixmap *graphics.Pixmap
	// Fit controls how the pixmap is scaled within its bounds.
	Fit ImageFit
}

// ImageFit controls how an image is scaled within its bounds.
type ImageFit int

const (
	// ImageFitNone keeps the pixmap at its logical size.
	ImageFitNone ImageFit = iota
	// ImageFitContain scales the pixmap to fit within its bounds.
	ImageFitContain
	// ImageFitFill stretches the pixmap to fill its bounds.
	ImageFitFill
	// ImageFitCover scales the pixmap to cover its bounds.
	ImageFitCover
	// ImageFitScaleDown fits the pixmap if needed, otherwise keeps its size.
	ImageFitScaleDown
)

func (f ImageFit) String() string {
	switch f {
	case ImageFitNone:
		return "none"
	case ImageFitContain:
		return "contain"
	case ImageFitFill:
		return "fill"
	case ImageFitCover:
		return "cover"
	case ImageFitScaleDown:
		return "scale_down"
	default:
		return fmt.Sprintf("ImageFit(%d)", int(f))
	}
}

// Image creates an element drawing pixmap.
func Image(pixmap *graphics.Pixmap) *ImageElement {
	return &ImageElement{pixmap: pixmap}
}

// LoadImage decodes the image file at path. scale is the display scale
// the image was authored for.
func LoadImage(path string, scale float64) (*ImageElement, error) {
	pixmap, err := graphics.LoadPixmap(path, scale)
	if err != nil {
		return nil, &errors.ElementsError{Op: "widgets.LoadImage", Kind: errors.KindResource, Err: err}
	}
	return Image(pixmap), nil
}

// WithFit returns the image with the specified fit mode.
func (i *ImageElement) WithFit(fit ImageFit) *ImageElement {
	i.Fit = fit
	return i
}

// Pixmap returns the drawn pixmap.
func (i *ImageElement) Pixmap() *graphics.Pixmap { return i.pixmap }

func (i *ImageElement) Limits(*element.Context) element.Limits {
	if i.Fit != ImageFitNone {
		return element.FullLimits
	}
	size := i.pixmap.Size()
	return element.FixedLimits(size.X, size.Y)
}

func (i *ImageElement) Draw(ctx *element.Context) {
	if i.pixmap == nil || i.pixmap.Image == nil {
		return
	}
	size := i.fitSize(ctx.Bounds.Size())
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	center := ctx.Bounds.Center()
	dst := graphics.RectFromLTWH(center.X-size.X/2, center.Y-size.Y/2, size.X, size.Y)

	ctx.Canvas.Save()
	ctx.Canvas.ClipRect(ctx.Bounds)
	ctx.Canvas.DrawImage(i.pixmap.Image, dst)
	ctx.Canvas.Restore()
}

func (i *ImageElement) fitSize(avail graphics.Extent) graphics.Extent {
	intrinsic := i.pixmap.Size()
	if intrinsic.X <= 0 || intrinsic.Y <= 0 {
		return graphics.Extent{}
	}
	scaled := func(scale float64) graphics.Extent {
		return graphics.Extent{X: intrinsic.X * scale, Y: intrinsic.Y * scale}
	}

	switch i.Fit {
	case ImageFitContain:
		return scaled(min(avail.X/intrinsic.X, avail.Y/intrinsic.Y))
	case ImageFitCover:
		return scaled(max(avail.X/intrinsic.X, avail.Y/intrinsic.Y))
	case ImageFitScaleDown:
		if intrinsic.X <= avail.X && intrinsic.Y <= avail.Y {
			return intrinsic
		}
		return scaled(min(avail.X/intrinsic.X, avail.Y/intrinsic.Y))
	case ImageFitFill:
		return avail
	default:
		return intrinsic
	}
}
