package layout

// PipelineOwner tracks render objects that need layout or paint. Marking a
// render object dirty schedules it here; the host drains the lists once
// per frame.
type PipelineOwner struct {
	dirtyLayout    []RenderObject
	dirtyLayoutSet map[RenderObject]bool // O(1) dedup check
	dirtyPaint     []RenderObject
	dirtyPaintSet  map[RenderObject]bool
	needsLayout    bool
	needsPaint     bool

	// OnNeedsFrame, if set, is called whenever the owner goes from clean to
	// having scheduled work.
	OnNeedsFrame func()
}

// ScheduleLayout marks a render object as needing layout. Layout implies
// paint.
func (p *PipelineOwner) ScheduleLayout(object RenderObject) {
	if p.dirtyLayoutSet == nil {
		p.dirtyLayoutSet = make(map[RenderObject]bool)
	}
	if p.dirtyLayoutSet[object] {
		return
	}
	p.dirtyLayoutSet[object] = true
	p.dirtyLayout = append(p.dirtyLayout, object)
	p.requestFrame()
	p.needsLayout = true
	p.needsPaint = true
}

// SchedulePaint marks a render object as needing paint.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	if p.dirtyPaintSet == nil {
		p.dirtyPaintSet = make(map[RenderObject]bool)
	}
	if p.dirtyPaintSet[object] {
		return
	}
	p.dirtyPaintSet[object] = true
	p.dirtyPaint = append(p.dirtyPaint, object)
	p.requestFrame()
	p.needsPaint = true
}

func (p *PipelineOwner) requestFrame() {
	if !p.needsLayout && !p.needsPaint && p.OnNeedsFrame != nil {
		p.OnNeedsFrame()
	}
}

// NeedsLayout reports if any render objects need layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return p.needsLayout
}

// NeedsPaint reports if any render objects need paint.
func (p *PipelineOwner) NeedsPaint() bool {
	return p.needsPaint
}

// FlushLayout returns the objects scheduled for layout in scheduling order
// and clears the list. Objects that were measured since being scheduled
// are skipped.
func (p *PipelineOwner) FlushLayout() []RenderObject {
	dirty := p.dirtyLayout
	p.dirtyLayout = nil
	p.dirtyLayoutSet = nil
	p.needsLayout = false

	result := make([]RenderObject, 0, len(dirty))
	for _, node := range dirty {
		if nl, ok := node.(interface{ NeedsLayout() bool }); ok && !nl.NeedsLayout() {
			continue
		}
		result = append(result, node)
	}
	return result
}

// FlushPaint returns the objects that still need paint in scheduling
// order and clears the list.
func (p *PipelineOwner) FlushPaint() []RenderObject {
	if !p.needsPaint || len(p.dirtyPaint) == 0 {
		p.dirtyPaint = nil
		p.dirtyPaintSet = nil
		p.needsPaint = false
		return nil
	}

	result := make([]RenderObject, 0, len(p.dirtyPaint))
	for _, node := range p.dirtyPaint {
		if np, ok := node.(interface{ NeedsPaint() bool }); ok && np.NeedsPaint() {
			result = append(result, node)
		}
	}

	p.dirtyPaint = nil
	p.dirtyPaintSet = nil
	p.needsPaint = false
	return result
}
