package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-drift/freecorner/pkg/graphics"
)

// units maps dimension suffixes to whether they scale with density.
var units = []struct {
	suffix string
	scaled bool
}{
	{"dip", true},
	{"dp", true},
	{"sp", true},
	{"px", false},
}

// ParseDimension converts a number (pixels) or a string such as "12dp",
// "4.5px" or "16" to pixels. dp, dip and sp are multiplied by density.
// Negative and non-finite values are rejected.
func ParseDimension(v any, density float64) (float64, error) {
	var px float64
	switch n := v.(type) {
	case int:
		px = float64(n)
	case int64:
		px = float64(n)
	case uint64:
		px = float64(n)
	case float64:
		px = n
	case string:
		s := strings.ToLower(strings.TrimSpace(n))
		scale := 1.0
		for _, u := range units {
			if rest, ok := strings.CutSuffix(s, u.suffix); ok {
				s = strings.TrimSpace(rest)
				if u.scaled {
					scale = density
				}
				break
			}
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("not a dimension: %q", n)
		}
		px = f * scale
	default:
		return 0, fmt.Errorf("not a dimension: %T", v)
	}
	if math.IsNaN(px) || math.IsInf(px, 0) {
		return 0, fmt.Errorf("dimension is not finite")
	}
	if px < 0 {
		return 0, fmt.Errorf("dimension is negative")
	}
	return px, nil
}

// PixelSize rounds a dimension to whole pixels. A positive value that
// would round to zero becomes one pixel.
func PixelSize(px float64) float64 {
	if size := math.Floor(px + 0.5); size != 0 {
		return size
	}
	if px > 0 {
		return 1
	}
	return 0
}

// ParseColor converts a color string (#RGB, #ARGB, #RRGGBB, #AARRGGBB) or
// an integer to a Color. Integers may be unsigned ARGB values or their
// signed 32-bit form.
func ParseColor(v any) (graphics.Color, error) {
	switch n := v.(type) {
	case string:
		return graphics.ParseColor(n)
	case int:
		return colorFromInt(int64(n))
	case int64:
		return colorFromInt(n)
	case uint64:
		if n > math.MaxUint32 {
			return 0, fmt.Errorf("color out of range: %d", n)
		}
		return graphics.Color(n), nil
	default:
		return 0, fmt.Errorf("not a color: %T", v)
	}
}

func colorFromInt(n int64) (graphics.Color, error) {
	switch {
	case n >= 0 && n <= math.MaxUint32:
		return graphics.Color(uint32(n)), nil
	case n < 0 && n >= math.MinInt32:
		return graphics.Color(uint32(int32(n))), nil
	default:
		return 0, fmt.Errorf("color out of range: %d", n)
	}
}
