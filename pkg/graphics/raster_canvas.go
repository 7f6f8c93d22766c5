package graphics

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// RasterCanvas implements Canvas in software on an *image.RGBA.
//
// Fills, strokes and clips are rasterized with golang.org/x/image/vector
// using the nonzero rule. Stroke outlines come from tdewolff/canvas and
// are filled like any other path. The clip region is an 8-bit coverage
// mask, so anti-aliased clip edges blend smoothly. Only translation is supported
// as a transform.
type RasterCanvas struct {
	dst   *image.RGBA
	state rasterState
	stack []rasterState
}

type rasterState struct {
	tx, ty float64
	// clip is nil when nothing has been clipped yet. Masks are never
	// mutated after creation, so saved states can share them.
	clip *image.Alpha
}

// NewRasterCanvas allocates a transparent canvas of the given pixel size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return NewRasterCanvasFor(image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))))
}

// NewRasterCanvasFor draws into an existing image. The image bounds
// must start at the origin.
func NewRasterCanvasFor(dst *image.RGBA) *RasterCanvas {
	return &RasterCanvas{dst: dst}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.dst
}

// ColorAt returns the pixel at (x, y), un-premultiplied.
func (c *RasterCanvas) ColorAt(x, y int) Color {
	return ColorFromStd(c.dst.At(x, y))
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.state.tx += dx
	c.state.ty += dy
}

func (c *RasterCanvas) ClipRect(rect Rect) {
	path := NewPath()
	path.AddRect(rect, DirectionCW)
	c.ClipPath(path, ClipOpIntersect, false)
}

func (c *RasterCanvas) ClipPath(path *Path, op ClipOp, antialias bool) {
	cov := c.fillCoverage(path, antialias)
	bounds := c.dst.Bounds()
	mask := image.NewAlpha(bounds)
	for i := range mask.Pix {
		v := cov.Pix[i]
		if op == ClipOpDifference {
			v = 255 - v
		}
		if c.state.clip != nil {
			v = mul8(v, c.state.clip.Pix[i])
		}
		mask.Pix[i] = v
	}
	c.state.clip = mask
}

func (c *RasterCanvas) Clear(color Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	path := NewPath()
	path.AddRect(rect, DirectionCW)
	c.DrawPath(path, paint)
}

func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	if path.IsEmpty() {
		return
	}
	if paint.Style == PaintStyleFill || paint.Style == PaintStyleFillAndStroke {
		c.composite(c.fillCoverage(path, paint.AntiAlias), paint.Color)
	}
	if paint.Style == PaintStyleStroke || paint.Style == PaintStyleFillAndStroke {
		c.composite(c.strokeCoverage(path, paint), paint.Color)
	}
}

func (c *RasterCanvas) DrawImageRect(img image.Image, srcRect, dstRect Rect, quality FilterQuality) {
	if img == nil {
		return
	}
	sr := img.Bounds()
	if srcRect != (Rect{}) {
		sr = roundRect(srcRect).Add(img.Bounds().Min).Intersect(img.Bounds())
	}
	dr := roundRect(dstRect.Translate(c.state.tx, c.state.ty))
	if sr.Empty() || dr.Empty() {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	interpolator(quality).Scale(scaled, scaled.Bounds(), img, sr, draw.Src, nil)

	if c.state.clip == nil {
		draw.Draw(c.dst, dr, scaled, image.Point{}, draw.Over)
		return
	}
	draw.DrawMask(c.dst, dr, scaled, image.Point{}, c.state.clip, dr.Min, draw.Over)
}

func (c *RasterCanvas) Size() Size {
	b := c.dst.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// fillCoverage rasterizes the interior of path into a canvas-sized mask.
func (c *RasterCanvas) fillCoverage(path *Path, antialias bool) *image.Alpha {
	return c.rasterize(antialias, func(z *vector.Rasterizer) {
		tx, ty := c.state.tx, c.state.ty
		open := false
		for _, cmd := range path.Commands {
			a := cmd.Args
			switch cmd.Op {
			case PathOpMoveTo:
				if open {
					z.ClosePath()
				}
				z.MoveTo(f32(a[0]+tx), f32(a[1]+ty))
				open = true
			case PathOpLineTo:
				z.LineTo(f32(a[0]+tx), f32(a[1]+ty))
			case PathOpQuadTo:
				z.QuadTo(f32(a[0]+tx), f32(a[1]+ty), f32(a[2]+tx), f32(a[3]+ty))
			case PathOpCubicTo:
				z.CubeTo(f32(a[0]+tx), f32(a[1]+ty), f32(a[2]+tx), f32(a[3]+ty), f32(a[4]+tx), f32(a[5]+ty))
			case PathOpClose:
				if open {
					z.ClosePath()
					open = false
				}
			}
		}
		if open {
			z.ClosePath()
		}
	})
}

// strokeCoverage rasterizes the outline of path at the paint's width.
func (c *RasterCanvas) strokeCoverage(path *Path, paint Paint) *image.Alpha {
	width := paint.StrokeWidth
	if width <= 0 {
		width = 1
	}
	polys := strokePolygons(path, width, paint.StrokeJoin)
	return c.rasterize(paint.AntiAlias, func(z *vector.Rasterizer) {
		tx, ty := c.state.tx, c.state.ty
		for _, poly := range polys {
			z.MoveTo(f32(poly[0].X+tx), f32(poly[0].Y+ty))
			for _, p := range poly[1:] {
				z.LineTo(f32(p.X+tx), f32(p.Y+ty))
			}
			z.ClosePath()
		}
	})
}

func (c *RasterCanvas) rasterize(antialias bool, build func(z *vector.Rasterizer)) *image.Alpha {
	bounds := c.dst.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Src
	build(z)
	mask := image.NewAlpha(bounds)
	z.Draw(mask, bounds, image.Opaque, image.Point{})
	if !antialias {
		for i, v := range mask.Pix {
			if v >= 128 {
				mask.Pix[i] = 255
			} else {
				mask.Pix[i] = 0
			}
		}
	}
	return mask
}

// composite blends color through the coverage mask and the current clip.
func (c *RasterCanvas) composite(cov *image.Alpha, color Color) {
	if c.state.clip != nil {
		for i, v := range cov.Pix {
			cov.Pix[i] = mul8(v, c.state.clip.Pix[i])
		}
	}
	draw.DrawMask(c.dst, c.dst.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, cov, c.dst.Bounds().Min, draw.Over)
}

func interpolator(q FilterQuality) draw.Interpolator {
	switch q {
	case FilterQualityNone:
		return draw.NearestNeighbor
	case FilterQualityLow:
		return draw.ApproxBiLinear
	case FilterQualityMedium:
		return draw.BiLinear
	default:
		return draw.CatmullRom
	}
}

func roundRect(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left)), int(math.Round(r.Top)),
		int(math.Round(r.Right)), int(math.Round(r.Bottom)),
	)
}

func mul8(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

func f32(v float64) float32 {
	return float32(v)
}
