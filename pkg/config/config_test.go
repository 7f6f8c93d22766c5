package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/freecorner/pkg/corner"
	"github.com/go-drift/freecorner/pkg/errors"
	"github.com/go-drift/freecorner/pkg/graphics"
)

type captureHandler struct {
	reports []*errors.DriftError
}

func (h *captureHandler) HandleError(err *errors.DriftError) {
	h.reports = append(h.reports, err)
}

func (h *captureHandler) HandlePanic(err *errors.PanicError) {}

func captureReports(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.StrokeWidth != 2 || d.StrokeColor != 0x88000000 || d.CenterBackgroundColor != 0x1A000000 {
		t.Errorf("unexpected defaults %+v", d)
	}
	if !d.Corners.IsZero() {
		t.Errorf("expected square corners, got %+v", d.Corners)
	}
	if d.Style() != corner.DefaultStyle() {
		t.Errorf("default style mismatch: %+v", d.Style())
	}
}

func TestParse_YAMLSection(t *testing.T) {
	h := captureReports(t)
	data := []byte(`
free_corner_image:
  stroke_width: 1.5dp
  stroke_color: "#00FF00"
  center_background_color: 0x20FFFFFF
  corner_left_top: 8dp
  corner_right_top: 3.5px
  corner_right_bottom: 10
`)
	attrs, err := Parse(data, FormatYAML, Options{Density: 2})
	if err != nil {
		t.Fatal(err)
	}
	want := Attributes{
		StrokeWidth:           3,
		StrokeColor:           graphics.ColorGreen,
		CenterBackgroundColor: 0x20FFFFFF,
		Corners:               corner.Radii{LeftTop: 16, RightTop: 3.5, RightBottom: 10},
	}
	if attrs != want {
		t.Errorf("got %+v, want %+v", attrs, want)
	}
	if len(h.reports) != 0 {
		t.Errorf("expected no reports, got %v", h.reports)
	}
}

func TestParse_TOMLFlatWithLegacyPrefix(t *testing.T) {
	captureReports(t)
	data := []byte(`
fcim_stroke_width = 4
fcim_stroke_color = 0x88000000
corner_left_bottom = "12dip"
fcim_corner_left_bottom = "99px"
`)
	attrs, err := Parse(data, FormatTOML, Options{Density: 1.5})
	if err != nil {
		t.Fatal(err)
	}
	if attrs.StrokeWidth != 4 || attrs.StrokeColor != 0x88000000 {
		t.Errorf("unexpected stroke %+v", attrs)
	}
	if attrs.Corners.LeftBottom != 18 {
		t.Errorf("plain key should win over the prefixed one, got %v", attrs.Corners.LeftBottom)
	}
	if attrs.CenterBackgroundColor != corner.DefaultCenterBackgroundColor {
		t.Errorf("missing key should keep its default, got %v", attrs.CenterBackgroundColor)
	}
}

func TestParse_MalformedValuesFallBack(t *testing.T) {
	h := captureReports(t)
	data := []byte(`
stroke_width: -3
stroke_color: purple
corner_right_top: wide
corner_left_top: 6
`)
	attrs, err := Parse(data, FormatYAML, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if attrs.StrokeWidth != 2 || attrs.StrokeColor != 0x88000000 || attrs.Corners.RightTop != 0 {
		t.Errorf("expected defaults for malformed values, got %+v", attrs)
	}
	if attrs.Corners.LeftTop != 6 {
		t.Errorf("valid values should still apply, got %+v", attrs.Corners)
	}
	if len(h.reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(h.reports))
	}
	keys := map[string]bool{}
	for _, e := range h.reports {
		if e.Kind != errors.KindConfig {
			t.Errorf("expected config kind, got %v", e.Kind)
		}
		var ce *errors.ConfigError
		if !stderrors.As(e, &ce) {
			t.Fatalf("expected a ConfigError, got %v", e.Err)
		}
		keys[ce.Key] = true
	}
	for _, k := range []string{KeyStrokeWidth, KeyStrokeColor, KeyCornerRightTop} {
		if !keys[k] {
			t.Errorf("expected a report for %s", k)
		}
	}
}

func TestParse_SyntaxError(t *testing.T) {
	for _, tt := range []struct {
		format Format
		data   string
	}{
		{FormatYAML, "stroke_width: [1, 2"},
		{FormatTOML, "stroke_width = = 3"},
	} {
		attrs, err := Parse([]byte(tt.data), tt.format, Options{})
		if err == nil {
			t.Errorf("%v: expected a syntax error", tt.format)
			continue
		}
		if errors.KindOf(err) != errors.KindConfig {
			t.Errorf("%v: expected config kind, got %v", tt.format, errors.KindOf(err))
		}
		if attrs != Defaults() {
			t.Errorf("%v: expected defaults on error, got %+v", tt.format, attrs)
		}
	}
}

func TestLoad(t *testing.T) {
	captureReports(t)
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "corners.yml")
	tomlPath := filepath.Join(dir, "corners.toml")
	if err := os.WriteFile(yamlPath, []byte("corner_left_top: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tomlPath, []byte("[free_corner_image]\ncorner_right_bottom = 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	attrs, err := Load(yamlPath, Options{})
	if err != nil || attrs.Corners.LeftTop != 5 {
		t.Errorf("yaml: got %+v, %v", attrs.Corners, err)
	}
	attrs, err = Load(tomlPath, Options{})
	if err != nil || attrs.Corners.RightBottom != 7 {
		t.Errorf("toml: got %+v, %v", attrs.Corners, err)
	}

	if _, err := Load(filepath.Join(dir, "corners.json"), Options{}); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml"), Options{}); errors.KindOf(err) != errors.KindConfig {
		t.Errorf("expected a config error for a missing file, got %v", err)
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in      any
		density float64
		want    float64
		wantErr bool
	}{
		{12, 2, 12, false},
		{int64(3), 2, 3, false},
		{2.5, 3, 2.5, false},
		{"4px", 3, 4, false},
		{"4dp", 3, 12, false},
		{" 2 DIP ", 2, 4, false},
		{"1.5sp", 2, 3, false},
		{"7", 2, 7, false},
		{"-1dp", 1, 0, true},
		{"abc", 1, 0, true},
		{true, 1, 0, true},
		{"NaN", 1, 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDimension(tt.in, tt.density)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDimension(%v): err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDimension(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPixelSize(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{0.2, 1},
		{1.4, 1},
		{1.5, 2},
		{3, 3},
	}
	for _, tt := range tests {
		if got := PixelSize(tt.in); got != tt.want {
			t.Errorf("PixelSize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorValue(t *testing.T) {
	tests := []struct {
		in      any
		want    graphics.Color
		wantErr bool
	}{
		{"#1A000000", 0x1A000000, false},
		{"#FFF", 0xFFFFFFFF, false},
		{2281701376, 0x88000000, false},
		{-2013265920, 0x88000000, false},
		{int64(0xFF00FF00), graphics.ColorGreen, false},
		{uint64(1 << 40), 0, true},
		{int64(1) << 40, 0, true},
		{1.5, 0, true},
		{"green", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%v): err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	if f, err := FormatFromPath("a/B.YAML"); err != nil || f != FormatYAML {
		t.Errorf("got %v, %v", f, err)
	}
	if f, err := FormatFromPath("x.toml"); err != nil || f != FormatTOML {
		t.Errorf("got %v, %v", f, err)
	}
	if _, err := FormatFromPath("x.ini"); err == nil {
		t.Error("expected error")
	}
}
