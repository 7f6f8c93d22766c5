package widgets

import (
	"fmt"
	"strings"

	"github.com/go-drift/freecorner/pkg/graphics"
	"github.com/go-drift/freecorner/pkg/layout"
)

// ImageFit controls how an image is scaled within its box.
type ImageFit int

const (
	// ImageFitCover scales the image to cover its bounds, cropping the
	// overflow. This is the zero value, making it the default for
	// [FreeCornerImage].
	ImageFitCover ImageFit = iota
	// ImageFitContain scales the image to fit within its bounds.
	ImageFitContain
	// ImageFitFill stretches the image to fill its bounds.
	ImageFitFill
	// ImageFitNone leaves the image at its intrinsic size.
	ImageFitNone
	// ImageFitScaleDown fits the image if needed, otherwise keeps intrinsic size.
	ImageFitScaleDown
)

// String returns a human-readable representation of the image fit mode.
func (f ImageFit) String() string {
	switch f {
	case ImageFitFill:
		return "fill"
	case ImageFitContain:
		return "contain"
	case ImageFitCover:
		return "cover"
	case ImageFitNone:
		return "none"
	case ImageFitScaleDown:
		return "scale_down"
	default:
		return fmt.Sprintf("ImageFit(%d)", int(f))
	}
}

// ParseImageFit converts a name returned by String back to an ImageFit.
// "scale-down" is accepted as well.
func ParseImageFit(s string) (ImageFit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cover":
		return ImageFitCover, nil
	case "contain":
		return ImageFitContain, nil
	case "fill":
		return ImageFitFill, nil
	case "none":
		return ImageFitNone, nil
	case "scale_down", "scale-down":
		return ImageFitScaleDown, nil
	default:
		return 0, fmt.Errorf("unknown image fit %q", s)
	}
}

// computeFitRects returns the source rectangle (in image coordinates) and
// destination rectangle (in box coordinates) for drawing an image of
// the given intrinsic size into box.
func computeFitRects(fit ImageFit, align layout.Alignment, intrinsic, box graphics.Size) (src, dst graphics.Rect) {
	fullSrc := graphics.RectFromLTWH(0, 0, intrinsic.Width, intrinsic.Height)
	boxRect := graphics.RectFromLTWH(0, 0, box.Width, box.Height)
	if intrinsic.IsEmpty() || box.IsEmpty() {
		return graphics.Rect{}, graphics.Rect{}
	}

	switch fit {
	case ImageFitFill:
		return fullSrc, boxRect

	case ImageFitContain, ImageFitScaleDown:
		scale := min(box.Width/intrinsic.Width, box.Height/intrinsic.Height)
		if fit == ImageFitScaleDown && scale > 1 {
			scale = 1
		}
		drawSize := graphics.Size{Width: intrinsic.Width * scale, Height: intrinsic.Height * scale}
		offset := align.WithinRect(boxRect, drawSize)
		return fullSrc, graphics.RectFromLTWH(offset.X, offset.Y, drawSize.Width, drawSize.Height)

	case ImageFitCover:
		scale := max(box.Width/intrinsic.Width, box.Height/intrinsic.Height)
		scaledSize := graphics.Size{Width: intrinsic.Width * scale, Height: intrinsic.Height * scale}
		offset := align.WithinRect(boxRect, scaledSize)
		// Convert back to source coordinates
		srcX, srcY := -offset.X/scale, -offset.Y/scale
		srcW, srcH := box.Width/scale, box.Height/scale
		return graphics.RectFromLTWH(srcX, srcY, srcW, srcH), boxRect

	case ImageFitNone:
		offset := align.WithinRect(boxRect, intrinsic)
		return fullSrc, graphics.RectFromLTWH(offset.X, offset.Y, intrinsic.Width, intrinsic.Height)
	}
	return fullSrc, boxRect
}
