package graphics

import "image"

// FilterQuality controls image sampling quality during scaling.
type FilterQuality int

const (
	FilterQualityNone   FilterQuality = iota // Nearest neighbor (pixelated)
	FilterQualityLow                         // Bilinear (approximate)
	FilterQualityMedium                      // Bilinear
	FilterQualityHigh                        // Bicubic (Catmull-Rom)
)

// ClipOp combines a new clip shape with the current clip region.
type ClipOp int

const (
	// ClipOpIntersect keeps only the area inside both the current clip and the shape.
	ClipOpIntersect ClipOp = iota
	// ClipOpDifference removes the shape from the current clip.
	ClipOpDifference
)

// String returns a human-readable representation of the clip op.
func (o ClipOp) String() string {
	if o == ClipOpDifference {
		return "difference"
	}
	return "intersect"
}

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// ClipPath combines the current clip with the interior of path.
	// The clip stays in effect until the enclosing Restore.
	ClipPath(path *Path, op ClipOp, antialias bool)

	// Clear fills the entire canvas with the given color, ignoring the clip.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawImageRect draws an image from srcRect to dstRect with sampling quality.
	// srcRect selects the source region (zero rect = entire image).
	DrawImageRect(img image.Image, srcRect, dstRect Rect, quality FilterQuality)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
