package gear

import (
	"math"

	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// DefaultResolution is the angle [degrees] swept on the root circle between
	// consecutive involute points.
	DefaultResolution = 5.0
	// DefaultMaxIterations bounds the number of involute points computed per flank.
	DefaultMaxIterations = 10000
)

// Face selects the side of a tooth an involute flank belongs to.
type Face int

const (
	// Front flanks are swept towards increasing angles.
	Front Face = iota
	// Back flanks start one step ahead and are swept towards decreasing angles.
	Back
)

func (f Face) String() string {
	switch f {
	case Front:
		return "front"
	case Back:
		return "back"
	}
	return "unknown face"
}

// Curve is an ordered sequence of points.
type Curve []r2.Vec

// Flank defines a single involute curve.
type Flank struct {
	Start         float64 // start angle [degrees]
	Radius        float64 // radius of the circle the base points lie on
	Face          Face    // sweep direction
	Step          float64 // tooth step [degrees], Back flanks start at Start+Step
	RootRadius    float64 // scales the unwound tangent length
	OutsideRadius float64 // curve ends before crossing this circle
	// Resolution is the sweep increment [degrees]. Zero means DefaultResolution.
	Resolution float64
	// MaxIterations caps the sweep. Zero means DefaultMaxIterations.
	MaxIterations int
}

// Involute traces a flank from the root circle outwards. The first point
// that would fall outside the outside circle ends the curve and is not
// included, so the last point may lie up to one increment short of the
// outside circle. The returned curve may be empty.
func Involute(f Flank) (Curve, error) {
	res := f.Resolution
	if res == 0 {
		res = DefaultResolution
	}
	maxIter := f.MaxIterations
	if maxIter == 0 {
		maxIter = DefaultMaxIterations
	}
	switch {
	case !finite(f.Start, f.Radius, f.Step, f.RootRadius, f.OutsideRadius, res):
		return nil, invalidf("non-finite flank parameter in %+v", f)
	case res < 0:
		return nil, invalidf("resolution must be positive, got %g", res)
	case maxIter < 0:
		return nil, invalidf("negative iteration limit %d", maxIter)
	}

	var start, inc, rightAngle float64
	switch f.Face {
	case Front:
		start = f.Start
		inc = res
		rightAngle = -90
	case Back:
		start = f.Start + f.Step
		inc = -res
		rightAngle = 90
	default:
		return nil, invalidf("unknown flank face %d", f.Face)
	}

	var curve Curve
	angle := start
	for i := 0; i < maxIter; i++ {
		base := d2.Pol{R: f.Radius, Theta: d2r(angle)}.Cartesian()
		// Unwound tangent length equals the root circle arc swept so far.
		tangentLength := math.Abs(start-angle) / 180 * math.Pi * f.RootRadius
		tangent := d2.Pol{R: tangentLength, Theta: d2r(angle + rightAngle)}.Cartesian()
		p := r2.Add(base, tangent)
		if !d2.Finite(p) {
			return nil, degeneratef("involute point at %g degrees is not finite", angle)
		}
		if math.Hypot(p.X, p.Y) > f.OutsideRadius {
			return curve, nil
		}
		curve = append(curve, p)
		angle += inc
	}
	return nil, ErrIterationLimit
}
