package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke

	// PaintStyleFillAndStroke fills and then strokes the outline.
	PaintStyleFillAndStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	case PaintStyleFillAndStroke:
		return "fill_and_stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// StrokeJoin describes how stroke corners are drawn.
type StrokeJoin int

const (
	JoinMiter StrokeJoin = iota // Sharp corner (default)
	JoinRound                   // Rounded corner
	JoinBevel                   // Flattened corner
)

// String returns a human-readable representation of the stroke join.
func (j StrokeJoin) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return fmt.Sprintf("StrokeJoin(%d)", int(j))
	}
}

// Paint describes how to draw a shape on the canvas.
type Paint struct {
	Color       Color
	Style       PaintStyle // Fill, stroke, or both
	StrokeWidth float64    // Width of stroke in pixels; 0 draws a one pixel hairline
	StrokeJoin  StrokeJoin // How corners are drawn; 0 = JoinMiter
	AntiAlias   bool       // Smooth edges with partial coverage
}

// DefaultPaint returns a basic opaque white anti-aliased fill paint.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		StrokeJoin:  JoinMiter,
		AntiAlias:   true,
	}
}

// FillPaint returns an anti-aliased solid fill with the given color.
func FillPaint(color Color) Paint {
	p := DefaultPaint()
	p.Color = color
	return p
}

// StrokePaint returns an anti-aliased stroke with the given color and width.
func StrokePaint(color Color, width float64) Paint {
	p := DefaultPaint()
	p.Color = color
	p.Style = PaintStyleStroke
	p.StrokeWidth = width
	return p
}
