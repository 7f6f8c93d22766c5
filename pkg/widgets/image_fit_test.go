package widgets

import (
	"testing"

	"github.com/go-drift/freecorner/pkg/config"
	"github.com/go-drift/freecorner/pkg/graphics"
	"github.com/go-drift/freecorner/pkg/layout"
)

func TestComputeFitRects(t *testing.T) {
	intrinsic := graphics.Size{Width: 200, Height: 100}
	box := graphics.Size{Width: 100, Height: 100}
	tests := []struct {
		fit     ImageFit
		align   layout.Alignment
		wantSrc graphics.Rect
		wantDst graphics.Rect
	}{
		{ImageFitFill, layout.AlignmentCenter, graphics.RectFromLTWH(0, 0, 200, 100), graphics.RectFromLTWH(0, 0, 100, 100)},
		{ImageFitContain, layout.AlignmentCenter, graphics.RectFromLTWH(0, 0, 200, 100), graphics.RectFromLTWH(0, 25, 100, 50)},
		{ImageFitContain, layout.AlignmentTopLeft, graphics.RectFromLTWH(0, 0, 200, 100), graphics.RectFromLTWH(0, 0, 100, 50)},
		{ImageFitCover, layout.AlignmentCenter, graphics.RectFromLTWH(50, 0, 100, 100), graphics.RectFromLTWH(0, 0, 100, 100)},
		{ImageFitCover, layout.AlignmentCenterLeft, graphics.RectFromLTWH(0, 0, 100, 100), graphics.RectFromLTWH(0, 0, 100, 100)},
		{ImageFitNone, layout.AlignmentCenter, graphics.RectFromLTWH(0, 0, 200, 100), graphics.RectFromLTWH(-50, 0, 200, 100)},
		{ImageFitScaleDown, layout.AlignmentCenter, graphics.RectFromLTWH(0, 0, 200, 100), graphics.RectFromLTWH(0, 25, 100, 50)},
	}
	for _, tt := range tests {
		src, dst := computeFitRects(tt.fit, tt.align, intrinsic, box)
		if !src.ApproxEqual(tt.wantSrc) || !dst.ApproxEqual(tt.wantDst) {
			t.Errorf("%v %+v: got src %+v dst %+v, want src %+v dst %+v",
				tt.fit, tt.align, src, dst, tt.wantSrc, tt.wantDst)
		}
	}
}

func TestComputeFitRects_ScaleDownKeepsSmallImages(t *testing.T) {
	_, dst := computeFitRects(ImageFitScaleDown, layout.AlignmentCenter,
		graphics.Size{Width: 10, Height: 10}, graphics.Size{Width: 100, Height: 50})
	if want := graphics.RectFromLTWH(45, 20, 10, 10); !dst.ApproxEqual(want) {
		t.Errorf("got %+v, want %+v", dst, want)
	}
}

func TestComputeFitRects_Empty(t *testing.T) {
	src, dst := computeFitRects(ImageFitCover, layout.AlignmentCenter, graphics.Size{}, graphics.Size{Width: 10, Height: 10})
	if !src.IsEmpty() || !dst.IsEmpty() {
		t.Errorf("expected empty rects for an empty image, got %+v %+v", src, dst)
	}
}

func TestParseImageFit(t *testing.T) {
	for _, fit := range []ImageFit{ImageFitCover, ImageFitContain, ImageFitFill, ImageFitNone, ImageFitScaleDown} {
		got, err := ParseImageFit(fit.String())
		if err != nil || got != fit {
			t.Errorf("ParseImageFit(%q) = %v, %v", fit.String(), got, err)
		}
	}
	if got, err := ParseImageFit("Scale-Down"); err != nil || got != ImageFitScaleDown {
		t.Errorf("expected the dashed form to parse, got %v, %v", got, err)
	}
	if _, err := ParseImageFit("stretch"); err == nil {
		t.Error("expected error for unknown fit")
	}
}

func TestImageFit_DefaultIsCover(t *testing.T) {
	if got := FromAttributes(config.Defaults()).Fit; got != ImageFitCover {
		t.Fatalf("default fit = %v, want cover", got)
	}
	// Contain is the fit-center alternative: the whole image stays visible.
	_, dst := computeFitRects(ImageFitContain, layout.Alignment{}, graphics.Size{Width: 200, Height: 100}, graphics.Size{Width: 100, Height: 100})
	if want := graphics.RectFromLTWH(0, 25, 100, 50); !dst.ApproxEqual(want) {
		t.Errorf("contain dst = %+v, want %+v", dst, want)
	}
}
