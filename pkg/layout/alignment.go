package layout

import "github.com/go-drift/freecorner/pkg/graphics"

// Alignment positions a child inside a parent rectangle. X and Y range
// from -1 (left/top) to 1 (right/bottom); 0 is centered.
type Alignment struct {
	X float64
	Y float64
}

// Common alignments.
var (
	AlignmentTopLeft     = Alignment{X: -1, Y: -1}
	AlignmentTopCenter   = Alignment{X: 0, Y: -1}
	AlignmentTopRight    = Alignment{X: 1, Y: -1}
	AlignmentCenterLeft  = Alignment{X: -1, Y: 0}
	AlignmentCenter      = Alignment{X: 0, Y: 0}
	AlignmentCenterRight = Alignment{X: 1, Y: 0}
	AlignmentBottomLeft  = Alignment{X: -1, Y: 1}
	AlignmentBottomRight = Alignment{X: 1, Y: 1}
)

// WithinRect returns the top-left offset of a child of the given size
// aligned inside rect. Oversized children get negative offsets.
func (a Alignment) WithinRect(rect graphics.Rect, child graphics.Size) graphics.Offset {
	freeX := rect.Width() - child.Width
	freeY := rect.Height() - child.Height
	return graphics.Offset{
		X: rect.Left + freeX*(a.X+1)/2,
		Y: rect.Top + freeY*(a.Y+1)/2,
	}
}
