package widgets_test

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/go-drift/freecorner/pkg/config"
	"github.com/go-drift/freecorner/pkg/corner"
	"github.com/go-drift/freecorner/pkg/errors"
	"github.com/go-drift/freecorner/pkg/graphics"
	"github.com/go-drift/freecorner/pkg/layout"
	drifttest "github.com/go-drift/freecorner/pkg/testing"
	"github.com/go-drift/freecorner/pkg/widgets"
)

type testHandler struct {
	reported []*errors.DriftError
	panics []*errors.PanicError
}

func (h *testHandler) HandleError(err *errors.DriftError) { h.reported = append(h.reported, err) }
func (h *testHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func installHandler(t *testing.T) *testHandler {
	t.Helper()
	h := &testHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func paintRaster(ro *widgets.RenderFreeCornerImage, w, h int) *graphics.RasterCanvas {
	canvas := graphics.NewRasterCanvas(w, h)
	ro.Paint(&layout.PaintContext{Canvas: canvas})
	return canvas
}

func TestFreeCornerImage_FromAttributes(t *testing.T) {
	attrs := config.Defaults()
	attrs.Corners = corner.Radii{LeftTop: 4, RightBottom: 9}
	ro := widgets.FromAttributes(attrs).CreateRenderObject()

	if got := ro.Style(); got != corner.DefaultStyle() {
		t.Errorf("expected default style, got %+v", got)
	}
	if got := ro.Corners(); got != attrs.Corners {
		t.Errorf("expected corners %+v, got %+v", attrs.Corners, got)
	}
}

func TestRenderFreeCornerImage_MeasurePolicy(t *testing.T) {
	ro := widgets.FromAttributes(config.Defaults()).CreateRenderObject()

	ro.Measure(layout.AtMost(300), layout.Unspecified())
	if got := ro.Size(); got != (graphics.Size{}) {
		t.Fatalf("expected no size without exact specs, got %+v", got)
	}

	ro.Measure(layout.Exactly(120), layout.Exactly(80))
	if got := ro.Size(); got != (graphics.Size{Width: 120, Height: 80}) {
		t.Fatalf("expected exact size, got %+v", got)
	}

	ro.Measure(layout.AtMost(50), layout.Exactly(40))
	if got := ro.Size(); got != (graphics.Size{Width: 120, Height: 40}) {
		t.Errorf("expected width kept and height taken, got %+v", got)
	}
}

func TestRenderFreeCornerImage_ZeroSizeDrawsNothing(t *testing.T) {
	h := installHandler(t)
	ro := widgets.FromAttributes(config.Defaults()).CreateRenderObject()
	rec := drifttest.NewRecorder(graphics.Size{})
	ro.Paint(&layout.PaintContext{Canvas: rec})

	if len(rec.Ops()) != 0 {
		t.Errorf("expected no ops at zero size, got %v", rec.OpNames())
	}
	if len(h.reported) != 0 {
		t.Errorf("expected no reports at zero size, got %v", h.reported)
	}
}

func TestRenderFreeCornerImage_NegativeSizeReported(t *testing.T) {
	h := installHandler(t)
	ro := widgets.FromAttributes(config.Defaults()).CreateRenderObject()
	ro.Measure(layout.Exactly(-5), layout.Exactly(10))
	ro.Paint(&layout.PaintContext{Canvas: drifttest.NewRecorder(graphics.Size{})})

	if len(h.reported) != 1 {
		t.Fatalf("expected one report, got %d", len(h.reported))
	}
	if h.reported[0].Kind != errors.KindInvalidDimension {
		t.Errorf("expected invalid_dimension, got %v", h.reported[0].Kind)
	}
}

func TestRenderFreeCornerImage_SetStrokeColorIsDrawn(t *testing.T) {
	ro := widgets.FromAttributes(config.Defaults()).CreateRenderObject()
	ro.Measure(layout.Exactly(20), layout.Exactly(20))
	ro.SetCenterBackgroundColor(graphics.ColorTransparent)
	ro.SetStrokeWidth(4)
	ro.SetStrokeColor(graphics.ColorGreen)

	if got := ro.Style().StrokeColor; got != graphics.ColorGreen {
		t.Fatalf("expected stroke color to persist, got %v", got)
	}
	canvas := paintRaster(ro, 20, 20)
	if got := canvas.ColorAt(1, 10); got != graphics.ColorGreen {
		t.Errorf("expected green stroke pixel, got %v", got)
	}
	if got := canvas.ColorAt(10, 10); got != graphics.ColorTransparent {
		t.Errorf("expected transparent center, got %v", got)
	}
}

func TestRenderFreeCornerImage_ResizeRebuildsPath(t *testing.T) {
	ro := widgets.FromAttributes(config.Defaults()).CreateRenderObject()
	ro.SetCorners(10, 10, 10, 10)
	rec := drifttest.NewRecorder(graphics.Size{})
	ctx := &layout.PaintContext{Canvas: rec}

	ro.Measure(layout.Exactly(100), layout.Exactly(100))
	ro.Paint(ctx)
	ro.Paint(ctx)
	if got := ro.PathBuilds(); got != 1 {
		t.Fatalf("expected one path build, got %d", got)
	}

	ro.Measure(layout.Exactly(150), layout.Exactly(100))
	rec.Reset()
	ro.Paint(ctx)
	if got := ro.PathBuilds(); got != 2 {
		t.Fatalf("expected resize to rebuild the path, got %d builds", got)
	}
	clip := rec.Find("clipPath")[0]
	bounds := clip.Params["bounds"].(map[string]any)
	if bounds["right"] != 150.0 || bounds["bottom"] != 100.0 {
		t.Errorf("expected clip to span the new size, got %v", bounds)
	}
}

func TestRenderFreeCornerImage_MutatorsScheduleRepaint(t *testing.T) {
	ro := widgets.FromAttributes(config.Defaults()).CreateRenderObject()
	owner := &layout.PipelineOwner{}
	ro.SetOwner(owner)
	ro.Measure(layout.Exactly(10), layout.Exactly(10))

	mutators := map[string]func(){
		"SetCorners":               func() { ro.SetCorners(1, 2, 3, 4) },
		"SetStrokeWidth":           func() { ro.SetStrokeWidth(3) },
		"SetStrokeColor":           func() { ro.SetStrokeColor(graphics.ColorRed) },
		"SetCenterBackgroundColor": func() { ro.SetCenterBackgroundColor(graphics.ColorBlue) },
	}
	for name, mutate := range mutators {
		owner.FlushLayout()
		owner.FlushPaint()
		ro.ClearNeedsPaint()

		mutate()
		if !owner.NeedsPaint() {
			t.Errorf("%s did not schedule a repaint", name)
		}
	}
}

func TestRenderFreeCornerImage_DrawOrder(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	w := widgets.FromAttributes(config.Defaults()).WithSource(src)
	w.Corners = corner.Radii{LeftTop: 12, RightBottom: 12}
	ro := w.CreateRenderObject()
	ro.Measure(layout.Exactly(40), layout.Exactly(40))

	snap := drifttest.Capture(graphics.Size{Width: 40, Height: 40}, func(canvas graphics.Canvas) {
		ro.Paint(&layout.PaintContext{Canvas: canvas})
	})
	snap.MatchesFile(t, "testdata/free_corner_image_paint.snapshot.json")
}

func TestRenderFreeCornerImage_ImageCover(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	draw.Draw(src, image.Rect(0, 0, 2, 2), image.NewUniform(color.RGBA{R: 255, A: 255}), image.Point{}, draw.Src)
	draw.Draw(src, image.Rect(2, 0, 4, 2), image.NewUniform(color.RGBA{B: 255, A: 255}), image.Point{}, draw.Src)

	w := widgets.FromAttributes(config.Defaults()).WithSource(src).WithFit(widgets.ImageFitCover)
	w.FilterQuality = graphics.FilterQualityNone
	w.CenterBackgroundColor = graphics.ColorTransparent
	w.StrokeColor = graphics.ColorTransparent
	ro := w.CreateRenderObject()
	ro.Measure(layout.Exactly(10), layout.Exactly(10))

	canvas := paintRaster(ro, 10, 10)
	if got := canvas.ColorAt(2, 5); got != graphics.ColorRed {
		t.Errorf("left half: got %v", got)
	}
	if got := canvas.ColorAt(7, 5); got != graphics.ColorBlue {
		t.Errorf("right half: got %v", got)
	}
}

func TestRenderFreeCornerImage_RoundedCornerClipsImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})

	w := widgets.FromAttributes(config.Defaults()).WithSource(src)
	w.Corners = corner.Radii{RightBottom: 10}
	w.FilterQuality = graphics.FilterQualityNone
	ro := w.CreateRenderObject()
	ro.Measure(layout.Exactly(30), layout.Exactly(30))

	canvas := paintRaster(ro, 30, 30)
	if got := canvas.ColorAt(29, 29); got != graphics.ColorTransparent {
		t.Errorf("expected the rounded corner to be clipped, got %v", got)
	}
	if got := canvas.ColorAt(15, 15); got != graphics.ColorRed {
		t.Errorf("expected image inside the clip, got %v", got)
	}
}

type panickingImage struct{ image.Image }

func (panickingImage) Bounds() image.Rectangle { panic("decode failed") }

func TestRenderFreeCornerImage_PanicReported(t *testing.T) {
	h := installHandler(t)
	ro := widgets.FromAttributes(config.Defaults()).WithSource(panickingImage{}).CreateRenderObject()
	ro.Measure(layout.Exactly(10), layout.Exactly(10))
	ro.Paint(&layout.PaintContext{Canvas: drifttest.NewRecorder(graphics.Size{})})

	if len(h.panics) != 1 {
		t.Fatalf("expected one reported panic, got %d", len(h.panics))
	}
	if h.panics[0].Value != "decode failed" {
		t.Errorf("unexpected panic value %v", h.panics[0].Value)
	}
}

func TestFreeCornerImage_UpdateRenderObject(t *testing.T) {
	w := widgets.FromAttributes(config.Defaults())
	ro := w.CreateRenderObject()

	w.Corners = corner.Uniform(6)
	w.StrokeWidth = 5
	w.UpdateRenderObject(ro)

	if ro.Corners() != corner.Uniform(6) || ro.Style().StrokeWidth != 5 {
		t.Errorf("update not applied: %+v %+v", ro.Corners(), ro.Style())
	}
}
