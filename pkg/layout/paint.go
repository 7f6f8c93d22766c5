package layout

import "github.com/go-drift/freecorner/pkg/graphics"

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas graphics.Canvas
}

// PaintChild paints a render box at the given offset.
func (p *PaintContext) PaintChild(child RenderBox, offset graphics.Offset) {
	if child == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	child.Paint(p)
	p.Canvas.Restore()
}

// PaintDirty paints every object the owner reports as needing paint,
// each at the origin, and clears their dirty flags. It returns how many
// objects were painted.
func (p *PaintContext) PaintDirty(owner *PipelineOwner) int {
	dirty := owner.FlushPaint()
	for _, obj := range dirty {
		if box, ok := obj.(RenderBox); ok {
			p.PaintChild(box, graphics.Offset{})
		}
		if c, ok := obj.(interface{ ClearNeedsPaint() }); ok {
			c.ClearNeedsPaint()
		}
	}
	return len(dirty)
}
