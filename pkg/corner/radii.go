package corner

import (
	"fmt"
	"math"

	"github.com/go-drift/freecorner/pkg/graphics"
)

// Radii holds one circular radius per corner, in pixels. Each corner's
// arc uses the same value horizontally and vertically.
type Radii struct {
	LeftTop     float64
	RightTop    float64
	RightBottom float64
	LeftBottom  float64
}

// Uniform returns radii with the same value on all four corners.
func Uniform(radius float64) Radii {
	return Radii{LeftTop: radius, RightTop: radius, RightBottom: radius, LeftBottom: radius}
}

// IsZero reports whether every corner is square.
func (r Radii) IsZero() bool {
	return r == Radii{}
}

// Array returns the radii as x/y pairs in clockwise order starting at the
// left-top corner: {lt, lt, rt, rt, rb, rb, lb, lb}.
func (r Radii) Array() [8]float64 {
	return [8]float64{
		r.LeftTop, r.LeftTop,
		r.RightTop, r.RightTop,
		r.RightBottom, r.RightBottom,
		r.LeftBottom, r.LeftBottom,
	}
}

// Validate returns an error naming the first corner that is negative,
// NaN or infinite.
func (r Radii) Validate() error {
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"left_top", r.LeftTop},
		{"right_top", r.RightTop},
		{"right_bottom", r.RightBottom},
		{"left_bottom", r.LeftBottom},
	} {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) || c.v < 0 {
			return fmt.Errorf("%w: corner %s = %v", ErrInvalidRadius, c.name, c.v)
		}
	}
	return nil
}

// Sanitized replaces negative and non-finite corners with 0.
func (r Radii) Sanitized() Radii {
	fix := func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0
		}
		return v
	}
	return Radii{
		LeftTop:     fix(r.LeftTop),
		RightTop:    fix(r.RightTop),
		RightBottom: fix(r.RightBottom),
		LeftBottom:  fix(r.LeftBottom),
	}
}

// Clamp fits the radii to a width x height box. When the two radii along
// any side add up to more than that side, every radius is scaled by the
// same factor so the tightest side is exactly filled. Proportions between
// corners are kept, and equal radii end up at most half the shorter side.
func (r Radii) Clamp(width, height float64) Radii {
	scale := 1.0
	// Halves keep the sum finite for radii near math.MaxFloat64.
	fit := func(a, b, side float64) {
		if half := a/2 + b/2; half > side/2 && half > 0 {
			scale = min(scale, (side/2)/half)
		}
	}
	fit(r.LeftTop, r.RightTop, width)
	fit(r.LeftBottom, r.RightBottom, width)
	fit(r.LeftTop, r.LeftBottom, height)
	fit(r.RightTop, r.RightBottom, height)
	if scale >= 1 {
		return r
	}
	return Radii{
		LeftTop:     r.LeftTop * scale,
		RightTop:    r.RightTop * scale,
		RightBottom: r.RightBottom * scale,
		LeftBottom:  r.LeftBottom * scale,
	}
}

// RRect pairs the radii with rect as circular corner radii.
func (r Radii) RRect(rect graphics.Rect) graphics.RRect {
	return graphics.RRect{
		Rect:        rect,
		TopLeft:     graphics.CircularRadius(r.LeftTop),
		TopRight:    graphics.CircularRadius(r.RightTop),
		BottomRight: graphics.CircularRadius(r.RightBottom),
		BottomLeft:  graphics.CircularRadius(r.LeftBottom),
	}
}
