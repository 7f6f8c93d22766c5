// Package config loads FreeCornerImage attributes from YAML or TOML files.
//
// A file holds up to seven attributes, either at the top level or under a
// free_corner_image section:
//
//	free_corner_image:
//	  stroke_width: 3dp
//	  stroke_color: "#88000000"
//	  center_background_color: "#1A000000"
//	  corner_left_top: 16dp
//	  corner_right_bottom: 16dp
//
// Missing attributes take their defaults. Malformed values also fall back
// to the default and are reported through the errors package; they never
// fail the load.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/freecorner/pkg/corner"
	"github.com/go-drift/freecorner/pkg/errors"
	"github.com/go-drift/freecorner/pkg/graphics"
)

// Attribute keys.
const (
	KeyStrokeWidth           = "stroke_width"
	KeyStrokeColor           = "stroke_color"
	KeyCenterBackgroundColor = "center_background_color"
	KeyCornerLeftTop         = "corner_left_top"
	KeyCornerRightTop        = "corner_right_top"
	KeyCornerRightBottom     = "corner_right_bottom"
	KeyCornerLeftBottom      = "corner_left_bottom"
)

// SectionKey is the optional top-level table holding the attributes.
const SectionKey = "free_corner_image"

// legacyPrefix is accepted in front of any attribute key.
const legacyPrefix = "fcim_"

// Attributes is the styled configuration of one FreeCornerImage.
type Attributes struct {
	// StrokeWidth is in whole pixels.
	StrokeWidth           float64
	StrokeColor           graphics.Color
	CenterBackgroundColor graphics.Color
	Corners               corner.Radii
}

// Defaults returns the attributes of an unconfigured view.
func Defaults() Attributes {
	return Attributes{
		StrokeWidth:           corner.DefaultStrokeWidth,
		StrokeColor:           corner.DefaultStrokeColor,
		CenterBackgroundColor: corner.DefaultCenterBackgroundColor,
	}
}

// Style returns the paint configuration described by the attributes.
func (a Attributes) Style() corner.Style {
	return corner.Style{
		FillColor:   a.CenterBackgroundColor,
		StrokeColor: a.StrokeColor,
		StrokeWidth: a.StrokeWidth,
	}
}

// Options controls unit conversion.
type Options struct {
	// Density is the pixels-per-dp factor for dp, dip and sp values.
	// Zero means 1.
	Density float64
}

func (o Options) density() float64 {
	if o.Density <= 0 {
		return 1
	}
	return o.Density
}

// Format selects the file syntax.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// String returns a human-readable representation of the format.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("unsupported attribute file %q: want .yaml, .yml or .toml", path)
	}
}

// Load reads an attribute file. The format comes from the extension.
func Load(path string, opts Options) (Attributes, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Defaults(), errors.New("config.Load", errors.KindConfig, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), errors.New("config.Load", errors.KindConfig, fmt.Errorf("failed to read %s: %w", path, err))
	}
	return Parse(data, format, opts)
}

// Parse decodes attributes from data. Only a syntax error fails; bad
// attribute values are reported and replaced by defaults.
func Parse(data []byte, format Format, opts Options) (Attributes, error) {
	raw := map[string]any{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	default:
		err = fmt.Errorf("unknown format %v", format)
	}
	if err != nil {
		return Defaults(), errors.New("config.Parse", errors.KindConfig, fmt.Errorf("failed to parse %s: %w", format, err))
	}
	return FromMap(raw, opts), nil
}

// FromMap reads attributes from decoded key/value pairs.
func FromMap(raw map[string]any, opts Options) Attributes {
	if section, ok := raw[SectionKey].(map[string]any); ok {
		raw = section
	}
	d := decoder{raw: raw, density: opts.density()}
	attrs := Defaults()
	attrs.StrokeWidth = d.pixelSize(KeyStrokeWidth, attrs.StrokeWidth)
	attrs.StrokeColor = d.color(KeyStrokeColor, attrs.StrokeColor)
	attrs.CenterBackgroundColor = d.color(KeyCenterBackgroundColor, attrs.CenterBackgroundColor)
	attrs.Corners = corner.Radii{
		LeftTop:     d.dimension(KeyCornerLeftTop, 0),
		RightTop:    d.dimension(KeyCornerRightTop, 0),
		RightBottom: d.dimension(KeyCornerRightBottom, 0),
		LeftBottom:  d.dimension(KeyCornerLeftBottom, 0),
	}
	return attrs
}

type decoder struct {
	raw     map[string]any
	density float64
}

func (d decoder) lookup(key string) (any, string, bool) {
	if v, ok := d.raw[key]; ok {
		return v, key, true
	}
	if v, ok := d.raw[legacyPrefix+key]; ok {
		return v, legacyPrefix + key, true
	}
	return nil, key, false
}

func (d decoder) dimension(key string, def float64) float64 {
	v, name, ok := d.lookup(key)
	if !ok {
		return def
	}
	px, err := ParseDimension(v, d.density)
	if err != nil {
		reject(name, v, err)
		return def
	}
	return px
}

func (d decoder) pixelSize(key string, def float64) float64 {
	v, name, ok := d.lookup(key)
	if !ok {
		return def
	}
	px, err := ParseDimension(v, d.density)
	if err != nil {
		reject(name, v, err)
		return def
	}
	return PixelSize(px)
}

func (d decoder) color(key string, def graphics.Color) graphics.Color {
	v, name, ok := d.lookup(key)
	if !ok {
		return def
	}
	c, err := ParseColor(v)
	if err != nil {
		reject(name, v, err)
		return def
	}
	return c
}

func reject(key string, value any, reason error) {
	errors.Report(errors.New("config.FromMap", errors.KindConfig, &errors.ConfigError{
		Key:    key,
		Value:  value,
		Reason: reason.Error(),
	}))
}
