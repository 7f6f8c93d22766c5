package graphics

import "github.com/tdewolff/canvas"

// flatness is the maximum distance in pixels between a curve and the
// line segments that replace it.
const flatness = 0.25

// toCanvasPath copies path into a canvas path for stroking and flattening.
func toCanvasPath(path *Path) *canvas.Path {
	p := &canvas.Path{}
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case PathOpMoveTo:
			p.MoveTo(a[0], a[1])
		case PathOpLineTo:
			p.LineTo(a[0], a[1])
		case PathOpQuadTo:
			p.QuadTo(a[0], a[1], a[2], a[3])
		case PathOpCubicTo:
			p.CubeTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case PathOpClose:
			p.Close()
		}
	}
	return p
}

func joiner(join StrokeJoin) canvas.Joiner {
	switch join {
	case JoinRound:
		return canvas.RoundJoin
	case JoinBevel:
		return canvas.BevelJoin
	default:
		return canvas.MiterJoin
	}
}

// strokePolygons returns the outline of path stroked at width with butt
// caps, flattened to one polygon per subpath. A nonzero fill of all the
// polygons together covers the stroke.
func strokePolygons(path *Path, width float64, join StrokeJoin) [][]Offset {
	outline := toCanvasPath(path).Stroke(width, canvas.ButtCap, joiner(join), flatness)
	return polygons(outline)
}

// polygons flattens p and returns the vertices of each subpath.
func polygons(p *canvas.Path) [][]Offset {
	var out [][]Offset
	for _, sub := range p.Flatten(flatness).Split() {
		coords := sub.Coords()
		if len(coords) < 3 {
			continue
		}
		poly := make([]Offset, len(coords))
		for i, c := range coords {
			poly[i] = Offset{X: c.X, Y: c.Y}
		}
		out = append(out, poly)
	}
	return out
}
