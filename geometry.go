package gear

import "math"

// Geometry holds the values derived once per Spec and shared by every tooth.
type Geometry struct {
	// BaseRadius is the involute base circle radius.
	BaseRadius float64
	// TangentIntersect is the acute angle [radians] of the right triangle
	// formed by the root radius (adjacent) and the pitch radius (hypotenuse).
	TangentIntersect float64
	// TangentLength is the length of the tangent from the root circle to the pitch circle.
	TangentLength float64
	// RootAngle [radians] is TangentLength/RootRadius, the angle of the
	// root circle arc that unwinds into the tangent. The tangent length
	// stands in for the arc length.
	RootAngle float64
	// Offset [degrees] is applied to each tooth's involute start angle so
	// that the flank crosses the pitch circle at the nominal tooth angle.
	Offset float64
}

// Derive computes the Geometry of a spec.
//
// Unlike Spec.Validate, a root radius equal to the pitch radius is accepted
// and yields a zero offset. Only the parameters taking part in the offset
// computation are checked.
func Derive(s Spec) (Geometry, error) {
	switch {
	case !finite(s.PitchRadius, s.RootRadius, s.PressureAngle):
		return Geometry{}, invalidf("non-finite parameter in %+v", s)
	case s.RootRadius <= 0 || s.PitchRadius <= 0:
		return Geometry{}, invalidf("radii must be positive, got root=%g pitch=%g", s.RootRadius, s.PitchRadius)
	case s.RootRadius > s.PitchRadius:
		return Geometry{}, invalidf("root radius %g exceeds pitch radius %g", s.RootRadius, s.PitchRadius)
	case s.PressureAngle <= 0 || s.PressureAngle >= 90:
		return Geometry{}, invalidf("pressure angle %g outside (0, 90) degrees", s.PressureAngle)
	}
	var g Geometry
	g.BaseRadius = s.BaseRadius()

	ratio := s.RootRadius / s.PitchRadius
	if ratio > 1 || ratio < -1 {
		return Geometry{}, degeneratef("acos argument %g out of [-1, 1]", ratio)
	}
	g.TangentIntersect = math.Acos(ratio)
	g.TangentLength = math.Sin(g.TangentIntersect) * s.PitchRadius
	g.RootAngle = g.TangentLength / s.RootRadius
	g.Offset = r2d(g.RootAngle - g.TangentIntersect)
	if !finite(g.BaseRadius, g.TangentIntersect, g.TangentLength, g.RootAngle, g.Offset) {
		return Geometry{}, degeneratef("derived geometry %+v", g)
	}
	return g, nil
}

// Offset returns the involute offset angle in degrees for a spec.
func Offset(s Spec) (float64, error) {
	g, err := Derive(s)
	if err != nil {
		return 0, err
	}
	return g.Offset, nil
}
