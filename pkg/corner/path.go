package corner

import (
	"errors"
	"fmt"
	"math"

	drifterrors "github.com/go-drift/freecorner/pkg/errors"
	"github.com/go-drift/freecorner/pkg/graphics"
)

var (
	// ErrInvalidDimension is wrapped by errors for negative or non-finite sizes.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidRadius is wrapped by errors for negative or non-finite radii.
	ErrInvalidRadius = errors.New("invalid radius")
)

// BuildPath returns the closed clockwise path of the rectangle
// {0, 0, width, height} with rounded corners. A zero radius leaves that
// corner sharp; oversized radii are reduced with Radii.Clamp. The result
// depends only on the arguments.
//
// Negative or non-finite sizes fail with a KindInvalidDimension error and
// bad radii with KindInvalidRadius; both wrap the package sentinels.
func BuildPath(width, height float64, radii Radii) (*graphics.Path, error) {
	if err := checkDimension("width", width); err != nil {
		return nil, err
	}
	if err := checkDimension("height", height); err != nil {
		return nil, err
	}
	if err := radii.Validate(); err != nil {
		return nil, drifterrors.New("corner.BuildPath", drifterrors.KindInvalidRadius, err)
	}

	rect := graphics.RectFromLTWH(0, 0, width, height)
	path := graphics.NewPath()
	path.AddRRect(radii.Clamp(width, height).RRect(rect), graphics.DirectionCW)
	return path, nil
}

func checkDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return drifterrors.New("corner.BuildPath", drifterrors.KindInvalidDimension,
			fmt.Errorf("%w: %s %v", ErrInvalidDimension, name, v))
	}
	return nil
}
