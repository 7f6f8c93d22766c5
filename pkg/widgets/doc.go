// Package widgets provides the FreeCornerImage widget.
//
// FreeCornerImage is an image view whose four corners are rounded
// independently. Around the image it paints a translucent background fill
// and an outline stroke, both following the same corner path:
//
//	w := widgets.FromAttributes(attrs)
//	w.Source = photo
//	w.Fit = widgets.ImageFitCover
//	ro := w.CreateRenderObject()
//	ro.Measure(layout.Exactly(120), layout.Exactly(120))
//	ro.Paint(&layout.PaintContext{Canvas: canvas})
//
// The widget value is immutable configuration; RenderFreeCornerImage holds
// the live state and exposes the mutators SetCorners, SetStrokeWidth,
// SetStrokeColor and SetCenterBackgroundColor. Every mutator schedules a
// repaint with the render object's PipelineOwner.
package widgets
