package corner

import "github.com/go-drift/freecorner/pkg/graphics"

// Default colors and stroke width, matching an unconfigured view.
const (
	DefaultStrokeWidth           = 2.0
	DefaultStrokeColor           = graphics.Color(0x88000000)
	DefaultCenterBackgroundColor = graphics.Color(0x1A000000)
)

// Style is the paint configuration for one Render call.
type Style struct {
	// FillColor paints the path interior underneath the content.
	FillColor graphics.Color
	// StrokeColor paints the outline on top of the content.
	StrokeColor graphics.Color
	// StrokeWidth is the outline width in pixels; 0 draws a hairline.
	StrokeWidth float64
}

// DefaultStyle returns the style of an unconfigured view.
func DefaultStyle() Style {
	return Style{
		FillColor:   DefaultCenterBackgroundColor,
		StrokeColor: DefaultStrokeColor,
		StrokeWidth: DefaultStrokeWidth,
	}
}

// FillPaint returns the anti-aliased fill paint for the background.
func (s Style) FillPaint() graphics.Paint {
	return graphics.FillPaint(s.FillColor)
}

// StrokePaint returns the anti-aliased stroke paint for the outline.
func (s Style) StrokePaint() graphics.Paint {
	return graphics.StrokePaint(s.StrokeColor, s.StrokeWidth)
}

// Render paints path onto canvas in four steps:
//
//  1. clip to the path interior (anti-aliased, intersected with any
//     existing clip)
//  2. fill the path with the style's fill color
//  3. call drawContent, which draws inside the clip
//  4. stroke the path with the style's stroke color
//
// The stroke is centered on the path and stays clipped, so only its
// inner half is visible. The clip is confined to this call. drawContent
// may be nil; a nil or empty path draws nothing.
func Render(canvas graphics.Canvas, path *graphics.Path, style Style, drawContent func(graphics.Canvas)) {
	if canvas == nil || path.IsEmpty() {
		return
	}
	canvas.Save()
	defer canvas.Restore()

	canvas.ClipPath(path, graphics.ClipOpIntersect, true)

	canvas.Save()
	canvas.DrawPath(path, style.FillPaint())
	canvas.Restore()

	if drawContent != nil {
		canvas.Save()
		drawContent(canvas)
		canvas.Restore()
	}

	canvas.Save()
	canvas.DrawPath(path, style.StrokePaint())
	canvas.Restore()
}
