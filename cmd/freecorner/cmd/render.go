package cmd

import (
	"fmt"
	"math"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/go-drift/freecorner/pkg/config"
	"github.com/go-drift/freecorner/pkg/errors"
	"github.com/go-drift/freecorner/pkg/graphics"
	"github.com/go-drift/freecorner/pkg/layout"
	"github.com/go-drift/freecorner/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render an image with free corners",
		Long: `Decode an image, clip it to the free-corner shape and write the result.

Attributes come from --config (YAML or TOML) and are then overridden by
flags. Sizes accept px, dp, dip and sp suffixes; dp values are scaled by
--density. The view defaults to the image size.

Input formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
Output format follows the --out extension (PNG keeps transparency).

Usage:
  freecorner render --in photo.jpg --out card.png --corners 24,0,24,0
  freecorner render --in photo.jpg --out card.png --config view.yaml --density 2
  freecorner render --in photo.jpg --out card.png --width 200 --height 120 --fit contain`,
		Usage: "freecorner render --in IMG --out OUT [--config FILE] [--width W --height H] [--fit MODE] [--density D] [--corners lt,rt,rb,lb] [--stroke-width PX] [--stroke-color #AARRGGBB] [--background #AARRGGBB]",
		Run:   runRender,
	})
}

type renderOptions struct {
	in, out     string
	configPath  string
	width       string
	height      string
	fit         string
	density     float64
	corners     string
	strokeWidth string
	strokeColor string
	background  string
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{density: 1}
	for i := 0; i < len(args); i++ {
		v, err := flagValue(args, i)
		if err != nil {
			return opts, err
		}
		switch args[i] {
		case "--in":
			opts.in = v
		case "--out":
			opts.out = v
		case "--config":
			opts.configPath = v
		case "--width":
			opts.width = v
		case "--height":
			opts.height = v
		case "--fit":
			opts.fit = v
		case "--density":
			if opts.density, err = parseDensity(v); err != nil {
				return opts, err
			}
		case "--corners":
			opts.corners = v
		case "--stroke-width":
			opts.strokeWidth = v
		case "--stroke-color":
			opts.strokeColor = v
		case "--background":
			opts.background = v
		default:
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
		i++
	}
	if opts.in == "" || opts.out == "" {
		return opts, fmt.Errorf("--in and --out are required\n\nUsage: freecorner render --in IMG --out OUT")
	}
	return opts, nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}

	attrs := config.Defaults()
	if opts.configPath != "" {
		attrs, err = config.Load(opts.configPath, config.Options{Density: opts.density})
		if err != nil {
			return err
		}
	}

	img, err := imaging.Open(opts.in, imaging.AutoOrientation(true))
	if err != nil {
		return errors.New("render", errors.KindDecode, err)
	}

	w := widgets.FromAttributes(attrs).WithSource(img)
	if opts.fit != "" {
		fit, err := widgets.ParseImageFit(opts.fit)
		if err != nil {
			return err
		}
		w = w.WithFit(fit)
	}
	box := w.CreateRenderObject()
	if err := applyOverrides(box, opts); err != nil {
		return err
	}

	bounds := img.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())
	if opts.width != "" {
		if width, err = config.ParseDimension(opts.width, opts.density); err != nil {
			return fmt.Errorf("invalid --width: %w", err)
		}
	}
	if opts.height != "" {
		if height, err = config.ParseDimension(opts.height, opts.density); err != nil {
			return fmt.Errorf("invalid --height: %w", err)
		}
	}
	box.Measure(layout.Exactly(width), layout.Exactly(height))

	canvas := graphics.NewRasterCanvas(int(math.Ceil(width)), int(math.Ceil(height)))
	if err := paintReported(box, canvas); err != nil {
		return err
	}

	if err := imaging.Save(canvas.Image(), opts.out); err != nil {
		return errors.New("render", errors.KindDecode, err)
	}
	fmt.Fprintf(stdout, "wrote %s (%dx%d)\n", opts.out, canvas.Image().Bounds().Dx(), canvas.Image().Bounds().Dy())
	return nil
}

// applyOverrides pushes flag values through the render object's mutators.
func applyOverrides(box *widgets.RenderFreeCornerImage, opts renderOptions) error {
	dimension := dimensionParser(opts.density)
	if opts.corners != "" {
		r, err := parseCorners(opts.corners, dimension)
		if err != nil {
			return err
		}
		box.SetCorners(r.LeftTop, r.RightTop, r.RightBottom, r.LeftBottom)
	}
	if opts.strokeWidth != "" {
		px, err := dimension(opts.strokeWidth)
		if err != nil {
			return fmt.Errorf("invalid --stroke-width: %w", err)
		}
		box.SetStrokeWidth(px)
	}
	if opts.strokeColor != "" {
		c, err := graphics.ParseColor(opts.strokeColor)
		if err != nil {
			return fmt.Errorf("invalid --stroke-color: %w", err)
		}
		box.SetStrokeColor(c)
	}
	if opts.background != "" {
		c, err := graphics.ParseColor(opts.background)
		if err != nil {
			return fmt.Errorf("invalid --background: %w", err)
		}
		box.SetCenterBackgroundColor(c)
	}
	return nil
}

// paintReported paints box and turns the first reported failure into an
// error. The previous global handler is restored afterwards.
func paintReported(box *widgets.RenderFreeCornerImage, canvas graphics.Canvas) error {
	collector := &firstReport{}
	prev := errors.DefaultHandler
	errors.SetHandler(collector)
	defer errors.SetHandler(prev)

	box.Paint(&layout.PaintContext{Canvas: canvas})
	return collector.err
}

type firstReport struct {
	err error
}

func (r *firstReport) HandleError(err *errors.DriftError) {
	if r.err == nil {
		r.err = err
	}
}

func (r *firstReport) HandlePanic(err *errors.PanicError) {
	if r.err == nil {
		r.err = err
	}
}
