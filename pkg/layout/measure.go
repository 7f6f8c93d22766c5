package layout

import (
	"fmt"
	"math"
)

// MeasureMode says how strictly a parent's offered size applies to one axis.
type MeasureMode int

const (
	// MeasureUnspecified places no limit on the axis.
	MeasureUnspecified MeasureMode = iota
	// MeasureExactly requires the axis to be exactly the offered size.
	MeasureExactly
	// MeasureAtMost caps the axis at the offered size.
	MeasureAtMost
)

// String returns a human-readable representation of the measure mode.
func (m MeasureMode) String() string {
	switch m {
	case MeasureUnspecified:
		return "unspecified"
	case MeasureExactly:
		return "exactly"
	case MeasureAtMost:
		return "at_most"
	default:
		return fmt.Sprintf("MeasureMode(%d)", int(m))
	}
}

// MeasureSpec is the size a parent offers a child along one axis.
type MeasureSpec struct {
	Mode MeasureMode
	Size float64
}

// Exactly returns a spec requiring size.
func Exactly(size float64) MeasureSpec {
	return MeasureSpec{Mode: MeasureExactly, Size: size}
}

// AtMost returns a spec capping the axis at size.
func AtMost(size float64) MeasureSpec {
	return MeasureSpec{Mode: MeasureAtMost, Size: size}
}

// Unspecified returns a spec with no limit.
func Unspecified() MeasureSpec {
	return MeasureSpec{Mode: MeasureUnspecified}
}

// String formats the spec as mode(size).
func (s MeasureSpec) String() string {
	if s.Mode == MeasureUnspecified {
		return s.Mode.String()
	}
	return fmt.Sprintf("%s(%g)", s.Mode, s.Size)
}

// Resolve picks the realized size for an axis whose last realized size is
// current. Only MeasureExactly changes the size; the other modes keep the
// current value, so a view without exact specs stays at whatever size it
// last had.
func (s MeasureSpec) Resolve(current float64) float64 {
	if s.Mode == MeasureExactly && !math.IsNaN(s.Size) {
		return s.Size
	}
	return current
}
