package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-drift/freecorner/pkg/config"
	"github.com/go-drift/freecorner/pkg/corner"
)

func init() {
	RegisterCommand(&Command{
		Name:  "path",
		Short: "Print the corner path as SVG path data",
		Long: `Build the free-corner path for a view size and print it as SVG path
data. Radii larger than the view are scaled down the same way the view
draws them. Radii accept px, dp, dip and sp suffixes like render.

Usage:
  freecorner path --width 100 --height 60 --corners 8,8,8,8
  freecorner path --width 100 --height 60 --corners 0,20dp,0,20dp --density 2`,
		Usage: "freecorner path --width W --height H [--corners lt,rt,rb,lb] [--density D]",
		Run:   runPath,
	})
}

func runPath(args []string) error {
	var (
		width, height float64
		haveW, haveH  bool
		corners       string
		density       = 1.0
	)
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--width", "--height", "--corners", "--density":
			v, err := flagValue(args, i)
			if err != nil {
				return err
			}
			switch args[i] {
			case "--width":
				width, err = parseFloat("--width", v)
				haveW = true
			case "--height":
				height, err = parseFloat("--height", v)
				haveH = true
			case "--corners":
				corners = v
			case "--density":
				density, err = parseDensity(v)
			}
			if err != nil {
				return err
			}
			i++
		default:
			return fmt.Errorf("unknown flag %q\n\nUsage: freecorner path --width W --height H [--corners lt,rt,rb,lb]", args[i])
		}
	}
	if !haveW || !haveH {
		return fmt.Errorf("--width and --height are required")
	}

	var radii corner.Radii
	if corners != "" {
		var err error
		if radii, err = parseCorners(corners, dimensionParser(density)); err != nil {
			return err
		}
	}

	// Width and height stay raw numbers so a negative size reaches
	// BuildPath and is reported as an invalid dimension.
	path, err := corner.BuildPath(width, height, radii)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, path.SVGData())
	return nil
}

func parseFloat(flag, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", flag, v, err)
	}
	return f, nil
}

func parseDensity(v string) (float64, error) {
	d, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || d <= 0 || math.IsInf(d, 0) {
		return 0, fmt.Errorf("invalid --density %q: want a positive number", v)
	}
	return d, nil
}

// dimensionParser parses px, dp, dip and sp values at density.
func dimensionParser(density float64) func(string) (float64, error) {
	return func(s string) (float64, error) {
		return config.ParseDimension(s, density)
	}
}

// parseCorners reads "lt,rt,rb,lb". A single value applies to all four
// corners.
func parseCorners(s string, parse func(string) (float64, error)) (corner.Radii, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 1 && len(parts) != 4 {
		return corner.Radii{}, fmt.Errorf("invalid --corners %q: want lt,rt,rb,lb", s)
	}
	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := parse(strings.TrimSpace(p))
		if err != nil {
			return corner.Radii{}, fmt.Errorf("invalid --corners %q: %w", s, err)
		}
		values[i] = v
	}
	if len(values) == 1 {
		return corner.Uniform(values[0]), nil
	}
	return corner.Radii{LeftTop: values[0], RightTop: values[1], RightBottom: values[2], LeftBottom: values[3]}, nil
}
