package corner

import "github.com/go-drift/freecorner/pkg/graphics"

// Renderer holds the mutable corner and paint configuration of one view
// along with a cache of its path. Setters take effect on the next Draw.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	radii Radii
	style Style
	cache PathCache
}

// NewRenderer returns a renderer with square corners and DefaultStyle.
func NewRenderer() *Renderer {
	return &Renderer{style: DefaultStyle()}
}

// Radii returns the configured corner radii.
func (r *Renderer) Radii() Radii {
	return r.radii
}

// SetRadii replaces all four corner radii. Negative and non-finite values
// become 0.
func (r *Renderer) SetRadii(radii Radii) {
	radii = radii.Sanitized()
	if radii == r.radii {
		return
	}
	r.radii = radii
	r.cache.Invalidate()
}

// SetCorners is SetRadii with the corners in clockwise order from left-top.
func (r *Renderer) SetCorners(leftTop, rightTop, rightBottom, leftBottom float64) {
	r.SetRadii(Radii{LeftTop: leftTop, RightTop: rightTop, RightBottom: rightBottom, LeftBottom: leftBottom})
}

// Style returns the current paint configuration.
func (r *Renderer) Style() Style {
	return r.style
}

// SetStrokeWidth sets the outline width in pixels. Negative widths become 0.
func (r *Renderer) SetStrokeWidth(width float64) {
	r.style.StrokeWidth = max(width, 0)
}

// SetStrokeColor sets the outline color.
func (r *Renderer) SetStrokeColor(color graphics.Color) {
	r.style.StrokeColor = color
}

// SetCenterBackgroundColor sets the fill painted behind the content.
func (r *Renderer) SetCenterBackgroundColor(color graphics.Color) {
	r.style.FillColor = color
}

// Path returns the corner path for size, reusing the cached one when
// neither the size nor the radii changed since the last call.
func (r *Renderer) Path(size graphics.Size) (*graphics.Path, error) {
	return r.cache.Path(size.Width, size.Height, r.radii)
}

// PathBuilds returns how many times the path has been rebuilt.
func (r *Renderer) PathBuilds() int {
	return r.cache.Builds()
}

// Draw renders the view at size onto canvas. A zero-area size draws
// nothing; a negative or non-finite size fails with ErrInvalidDimension.
func (r *Renderer) Draw(canvas graphics.Canvas, size graphics.Size, drawContent func(graphics.Canvas)) error {
	path, err := r.Path(size)
	if err != nil {
		return err
	}
	if size.IsEmpty() {
		return nil
	}
	Render(canvas, path, r.style, drawContent)
	return nil
}
