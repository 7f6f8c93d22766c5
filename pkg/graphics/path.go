package graphics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathDirection is the winding direction used when adding closed shapes.
type PathDirection int

const (
	// DirectionCW traces shapes clockwise in screen coordinates (y down).
	DirectionCW PathDirection = iota
	// DirectionCCW traces shapes counter-clockwise.
	DirectionCCW
)

// kappa is the control point distance for approximating a quarter circle
// with a single cubic bezier: 4*(sqrt(2)-1)/3.
const kappa = 0.5522847498

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// End returns the point the command leaves the pen at.
// Close returns false because its end point is the subpath start.
func (c PathCommand) End() (Offset, bool) {
	n := len(c.Args)
	if c.Op == PathOpClose || n < 2 {
		return Offset{}, false
	}
	return Offset{X: c.Args[n-2], Y: c.Args[n-1]}, true
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close methods,
// or add whole shapes with AddRect and AddRRect.
// Use with Canvas.DrawPath to stroke/fill, or Canvas.ClipPath to clip.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path. Paths always fill with the nonzero
// winding rule.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// IsClosed reports whether the path is non-empty and every subpath ends
// with a Close command.
func (p *Path) IsClosed() bool {
	if p.IsEmpty() {
		return false
	}
	open := false
	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			if open {
				return false
			}
			open = true
		case PathOpClose:
			open = false
		}
	}
	return !open
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	out := &Path{
		Commands: make([]PathCommand, len(p.Commands)),
	}
	for i, cmd := range p.Commands {
		args := make([]float64, len(cmd.Args))
		copy(args, cmd.Args)
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: args}
	}
	return out
}

// Bounds returns the control-point bounding box of the path.
// For the curves produced by AddRRect the control points never leave the
// rectangle, so this equals the exact geometric bounds.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	b := Rect{
		Left:   math.Inf(1),
		Top:    math.Inf(1),
		Right:  math.Inf(-1),
		Bottom: math.Inf(-1),
	}
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			b.Left = math.Min(b.Left, x)
			b.Top = math.Min(b.Top, y)
			b.Right = math.Max(b.Right, x)
			b.Bottom = math.Max(b.Bottom, y)
		}
	}
	if math.IsInf(b.Left, 1) {
		return Rect{}
	}
	return b
}

// AddRect adds a closed rectangle starting at its top-left corner.
func (p *Path) AddRect(rect Rect, dir PathDirection) {
	p.MoveTo(rect.Left, rect.Top)
	if dir == DirectionCCW {
		p.LineTo(rect.Left, rect.Bottom)
		p.LineTo(rect.Right, rect.Bottom)
		p.LineTo(rect.Right, rect.Top)
	} else {
		p.LineTo(rect.Right, rect.Top)
		p.LineTo(rect.Right, rect.Bottom)
		p.LineTo(rect.Left, rect.Bottom)
	}
	p.Close()
}

// AddRRect adds a closed rounded rectangle. Each corner is a quarter
// ellipse with that corner's X/Y radius, approximated by one cubic; a
// corner with a zero radius is a sharp right angle.
//
// Clockwise tracing starts on the top edge just after the top-left
// corner and visits top-right, bottom-right, bottom-left, top-left.
// Radii are used as given: callers clamp them so adjacent corners don't
// overlap.
func (p *Path) AddRRect(rr RRect, dir PathDirection) {
	r := rr.Rect
	tl, tr, br, bl := rr.TopLeft, rr.TopRight, rr.BottomRight, rr.BottomLeft

	b := pathBuilder{path: p}
	b.move(r.Left+tl.X, r.Top)
	if dir == DirectionCCW {
		b.arc(r.Left, r.Top, r.Left, r.Top+tl.Y)
		b.line(r.Left, r.Bottom-bl.Y)
		b.arc(r.Left, r.Bottom, r.Left+bl.X, r.Bottom)
		b.line(r.Right-br.X, r.Bottom)
		b.arc(r.Right, r.Bottom, r.Right, r.Bottom-br.Y)
		b.line(r.Right, r.Top+tr.Y)
		b.arc(r.Right, r.Top, r.Right-tr.X, r.Top)
	} else {
		b.line(r.Right-tr.X, r.Top)
		b.arc(r.Right, r.Top, r.Right, r.Top+tr.Y)
		b.line(r.Right, r.Bottom-br.Y)
		b.arc(r.Right, r.Bottom, r.Right-br.X, r.Bottom)
		b.line(r.Left+bl.X, r.Bottom)
		b.arc(r.Left, r.Bottom, r.Left, r.Bottom-bl.Y)
		b.line(r.Left, r.Top+tl.Y)
		b.arc(r.Left, r.Top, r.Left+tl.X, r.Top)
	}
	b.close()
}

// pathBuilder appends commands while skipping zero-length segments, so
// degenerate sides and zero radii don't leave duplicate points behind.
type pathBuilder struct {
	path  *Path
	start Offset
	cur   Offset
}

func (b *pathBuilder) move(x, y float64) {
	b.path.MoveTo(x, y)
	b.start = Offset{X: x, Y: y}
	b.cur = b.start
}

// close ends the subpath, dropping a final line back to the start since
// Close draws it anyway.
func (b *pathBuilder) close() {
	cmds := b.path.Commands
	if n := len(cmds); n > 0 && cmds[n-1].Op == PathOpLineTo {
		if end, _ := cmds[n-1].End(); floatEqual(end.X, b.start.X) && floatEqual(end.Y, b.start.Y) {
			b.path.Commands = cmds[:n-1]
		}
	}
	b.path.Close()
	b.cur = b.start
}

func (b *pathBuilder) line(x, y float64) {
	if floatEqual(b.cur.X, x) && floatEqual(b.cur.Y, y) {
		return
	}
	b.path.LineTo(x, y)
	b.cur = Offset{X: x, Y: y}
}

// arc rounds the rectangle corner at (cx, cy), from the current point
// to (ex, ey). If either end touches the corner the radius is zero on
// that axis and the corner stays sharp.
func (b *pathBuilder) arc(cx, cy, ex, ey float64) {
	sx, sy := b.cur.X, b.cur.Y
	startAtCorner := floatEqual(sx, cx) && floatEqual(sy, cy)
	endAtCorner := floatEqual(ex, cx) && floatEqual(ey, cy)
	if startAtCorner || endAtCorner {
		b.line(cx, cy)
		b.line(ex, ey)
		return
	}
	b.path.CubicTo(
		sx+(cx-sx)*kappa, sy+(cy-sy)*kappa,
		ex+(cx-ex)*kappa, ey+(cy-ey)*kappa,
		ex, ey,
	)
	b.cur = Offset{X: ex, Y: ey}
}

// SVGData renders the path as SVG path data ("M0 0L10 0...Z").
func (p *Path) SVGData() string {
	var sb strings.Builder
	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			sb.WriteByte('M')
		case PathOpLineTo:
			sb.WriteByte('L')
		case PathOpQuadTo:
			sb.WriteByte('Q')
		case PathOpCubicTo:
			sb.WriteByte('C')
		case PathOpClose:
			sb.WriteByte('Z')
			continue
		}
		for i, v := range cmd.Args {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64))
		}
	}
	return sb.String()
}
