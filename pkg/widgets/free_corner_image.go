package widgets

import (
	stderrors "errors"
	"image"
	"image/draw"

	"github.com/go-drift/freecorner/pkg/config"
	"github.com/go-drift/freecorner/pkg/corner"
	"github.com/go-drift/freecorner/pkg/errors"
	"github.com/go-drift/freecorner/pkg/graphics"
	"github.com/go-drift/freecorner/pkg/layout"
)

// FreeCornerImage renders an image clipped to a rectangle whose four
// corners have independent radii, with a background fill under the image
// and an outline stroke over it.
//
// # Creation Pattern
//
// Start from attributes so unset colors and widths get their defaults:
//
//	w := widgets.FromAttributes(config.Defaults())
//	w.Source = photo
//	w.Corners = corner.Radii{LeftTop: 24, RightBottom: 24}
//
// A bare struct literal has a transparent fill, a transparent hairline
// stroke and square corners.
type FreeCornerImage struct {
	// Source is the image drawn inside the corner clip. Nil draws only
	// the fill and stroke.
	Source image.Image
	// Fit controls how the image is scaled within the view. The zero
	// value is ImageFitCover, which fills the view and crops the overflow.
	// This differs from the usual platform image view default of
	// fit-center; use ImageFitContain for that behavior.
	Fit ImageFit
	// Alignment positions the image within the view. The zero value centers.
	Alignment layout.Alignment
	// FilterQuality selects the sampling used when scaling the image.
	FilterQuality graphics.FilterQuality
	// Corners are the per-corner radii in pixels.
	Corners corner.Radii
	// StrokeWidth is the outline width in pixels.
	StrokeWidth float64
	// StrokeColor paints the outline.
	StrokeColor graphics.Color
	// CenterBackgroundColor fills the corner path behind the image.
	CenterBackgroundColor graphics.Color
}

// FromAttributes returns a widget styled by attrs, with no image.
func FromAttributes(attrs config.Attributes) FreeCornerImage {
	return FreeCornerImage{
		FilterQuality:         graphics.FilterQualityMedium,
		Corners:               attrs.Corners,
		StrokeWidth:           attrs.StrokeWidth,
		StrokeColor:           attrs.StrokeColor,
		CenterBackgroundColor: attrs.CenterBackgroundColor,
	}
}

// WithSource returns a copy of the widget drawing img.
func (w FreeCornerImage) WithSource(img image.Image) FreeCornerImage {
	w.Source = img
	return w
}

// WithFit returns a copy of the widget with the specified fit mode.
func (w FreeCornerImage) WithFit(fit ImageFit) FreeCornerImage {
	w.Fit = fit
	return w
}

// CreateRenderObject returns a new render object configured by w.
func (w FreeCornerImage) CreateRenderObject() *RenderFreeCornerImage {
	box := NewRenderFreeCornerImage()
	w.apply(box)
	return box
}

// UpdateRenderObject reconfigures renderObject to match w.
func (w FreeCornerImage) UpdateRenderObject(renderObject layout.RenderObject) {
	if box, ok := renderObject.(*RenderFreeCornerImage); ok {
		w.apply(box)
	}
}

func (w FreeCornerImage) apply(box *RenderFreeCornerImage) {
	box.SetSource(w.Source)
	box.SetFit(w.Fit)
	box.SetAlignment(w.Alignment)
	box.SetFilterQuality(w.FilterQuality)
	box.SetCorners(w.Corners.LeftTop, w.Corners.RightTop, w.Corners.RightBottom, w.Corners.LeftBottom)
	box.SetStrokeWidth(w.StrokeWidth)
	box.SetStrokeColor(w.StrokeColor)
	box.SetCenterBackgroundColor(w.CenterBackgroundColor)
}

// RenderFreeCornerImage is the render object behind FreeCornerImage. Its
// size comes from Measure; its corner path is rebuilt only when the size
// or the radii change.
type RenderFreeCornerImage struct {
	layout.RenderBoxBase
	renderer  *corner.Renderer
	source    image.Image
	fit       ImageFit
	alignment layout.Alignment
	quality   graphics.FilterQuality

	// cachedRGBA holds the converted source; cachedSource tracks which
	// source was converted.
	cachedRGBA   *image.RGBA
	cachedSource image.Image
}

// NewRenderFreeCornerImage returns a render object with default style,
// square corners and no image.
func NewRenderFreeCornerImage() *RenderFreeCornerImage {
	box := &RenderFreeCornerImage{
		renderer: corner.NewRenderer(),
		quality:  graphics.FilterQualityMedium,
	}
	box.SetSelf(box)
	return box
}

// Measure realizes the view's size. Each axis takes the offered size only
// under layout.MeasureExactly; otherwise it keeps its current size.
func (r *RenderFreeCornerImage) Measure(width, height layout.MeasureSpec) {
	size := r.Size()
	r.SetSize(graphics.Size{
		Width:  width.Resolve(size.Width),
		Height: height.Resolve(size.Height),
	})
	r.ClearNeedsLayout()
}

// SetCorners sets the four corner radii in pixels. Negative values become 0.
func (r *RenderFreeCornerImage) SetCorners(leftTop, rightTop, rightBottom, leftBottom float64) {
	r.renderer.SetCorners(leftTop, rightTop, rightBottom, leftBottom)
	r.MarkNeedsPaint()
}

// SetStrokeWidth sets the outline width in pixels.
func (r *RenderFreeCornerImage) SetStrokeWidth(width float64) {
	r.renderer.SetStrokeWidth(width)
	r.MarkNeedsPaint()
}

// SetStrokeColor sets the outline color.
func (r *RenderFreeCornerImage) SetStrokeColor(color graphics.Color) {
	r.renderer.SetStrokeColor(color)
	r.MarkNeedsPaint()
}

// SetCenterBackgroundColor sets the fill painted behind the image.
func (r *RenderFreeCornerImage) SetCenterBackgroundColor(color graphics.Color) {
	r.renderer.SetCenterBackgroundColor(color)
	r.MarkNeedsPaint()
}

// SetSource replaces the image.
func (r *RenderFreeCornerImage) SetSource(img image.Image) {
	if img == r.source {
		return
	}
	r.source = img
	r.MarkNeedsPaint()
}

// SetFit changes how the image is scaled.
func (r *RenderFreeCornerImage) SetFit(fit ImageFit) {
	if fit == r.fit {
		return
	}
	r.fit = fit
	r.MarkNeedsPaint()
}

// SetAlignment changes where the image sits inside the view.
func (r *RenderFreeCornerImage) SetAlignment(alignment layout.Alignment) {
	if alignment == r.alignment {
		return
	}
	r.alignment = alignment
	r.MarkNeedsPaint()
}

// SetFilterQuality changes the image sampling.
func (r *RenderFreeCornerImage) SetFilterQuality(quality graphics.FilterQuality) {
	if quality == r.quality {
		return
	}
	r.quality = quality
	r.MarkNeedsPaint()
}

// Corners returns the configured radii.
func (r *RenderFreeCornerImage) Corners() corner.Radii {
	return r.renderer.Radii()
}

// Style returns the configured fill and stroke.
func (r *RenderFreeCornerImage) Style() corner.Style {
	return r.renderer.Style()
}

// PathBuilds returns how many times the corner path has been built.
func (r *RenderFreeCornerImage) PathBuilds() int {
	return r.renderer.PathBuilds()
}

// Paint draws the corner fill, the image and the outline at the current
// size. Nothing is drawn at zero size. Failures, including a negative size
// and panics while drawing, are reported through the errors package.
func (r *RenderFreeCornerImage) Paint(ctx *layout.PaintContext) {
	defer errors.Recover("widgets.RenderFreeCornerImage.Paint")

	if err := r.renderer.Draw(ctx.Canvas, r.Size(), r.paintImage); err != nil {
		var de *errors.DriftError
		if !stderrors.As(err, &de) {
			de = errors.New("widgets.RenderFreeCornerImage.Paint", errors.KindRender, err)
		}
		errors.Report(de)
	}
}

func (r *RenderFreeCornerImage) paintImage(canvas graphics.Canvas) {
	r.updateImageCache()
	if r.cachedRGBA == nil {
		return
	}
	bounds := r.cachedRGBA.Bounds()
	intrinsic := graphics.Size{Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}
	src, dst := computeFitRects(r.fit, r.alignment, intrinsic, r.Size())
	if src.IsEmpty() || dst.IsEmpty() {
		return
	}
	canvas.DrawImageRect(r.cachedRGBA, src, dst, r.quality)
}

func (r *RenderFreeCornerImage) updateImageCache() {
	if r.source == nil {
		r.cachedRGBA = nil
		r.cachedSource = nil
		return
	}

	// Cache hit: same source instance, assume data unchanged.
	if r.cachedSource == r.source && r.cachedRGBA != nil {
		return
	}
	r.cachedRGBA = toRGBAImage(r.source)
	r.cachedSource = r.source
}

func toRGBAImage(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	if bounds.Empty() {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok && bounds.Min == (image.Point{}) {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)
	return rgba
}
