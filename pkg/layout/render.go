package layout

import "github.com/go-drift/freecorner/pkg/graphics"

// RenderObject handles measuring and painting.
type RenderObject interface {
	Measure(width, height MeasureSpec)
	Size() graphics.Size
	Paint(ctx *PaintContext)
	MarkNeedsLayout()
	MarkNeedsPaint()
	SetOwner(owner *PipelineOwner)
}

// RenderBox is a RenderObject with box layout.
type RenderBox interface {
	RenderObject
}

// RenderBoxBase provides base behavior for render boxes.
type RenderBoxBase struct {
	size        graphics.Size
	owner       *PipelineOwner
	self        RenderObject
	needsLayout bool // local dirty flag
	needsPaint  bool // local dirty flag for paint
}

// SetSelf records the embedding render object so scheduling hands the
// owner the outer type. It marks the box dirty without scheduling.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
	r.needsPaint = true
}

// SetOwner attaches the box to a pipeline owner and schedules any
// pending work with it.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
	if owner == nil || r.self == nil {
		return
	}
	if r.needsLayout {
		owner.ScheduleLayout(r.self)
	}
	if r.needsPaint {
		owner.SchedulePaint(r.self)
	}
}

// Owner returns the attached pipeline owner, or nil.
func (r *RenderBoxBase) Owner() *PipelineOwner {
	return r.owner
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize updates the render box size.
// If the size changes, marks paint as dirty since the content needs to be
// drawn again at the new size.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.MarkNeedsPaint()
}

// NeedsLayout reports whether the box is waiting to be measured.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}

// ClearNeedsLayout marks the box as measured.
func (r *RenderBoxBase) ClearNeedsLayout() {
	r.needsLayout = false
}

// MarkNeedsLayout marks this render box as needing layout and schedules
// it with the owner.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		return
	}
	r.needsLayout = true
	if r.owner == nil || r.self == nil {
		return
	}
	r.owner.ScheduleLayout(r.self)
}

// NeedsPaint reports whether the box is waiting to be painted.
func (r *RenderBoxBase) NeedsPaint() bool {
	return r.needsPaint
}

// ClearNeedsPaint marks the box as painted.
func (r *RenderBoxBase) ClearNeedsPaint() {
	r.needsPaint = false
}

// MarkNeedsPaint marks this render box as needing paint.
//
// Unlike MarkNeedsLayout, this doesn't early-return when needsPaint is
// already set: SetSelf pre-sets the flag without scheduling, and
// SchedulePaint deduplicates on its own.
func (r *RenderBoxBase) MarkNeedsPaint() {
	r.needsPaint = true
	if r.owner == nil || r.self == nil {
		return
	}
	r.owner.SchedulePaint(r.self)
}
