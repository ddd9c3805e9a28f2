// Package gear computes the 2D outline of involute spur gears.
//
// A gear is described by its pitch, root and outside circles, a pressure angle
// and a tooth count. Each tooth is made of two involute flanks unwound from the
// root circle: a back flank swept towards decreasing angles and a front flank
// swept towards increasing angles. The flanks are joined directly, without tip
// or root arcs, and every tooth of the gear is concatenated into one closed path.
//
// Angles are in degrees unless noted and are measured clockwise from the +Y
// axis, so a point at angle a on a circle of radius r is (r*sin(a), r*cos(a)).
package gear

import (
	"math"
)

// Spec defines the parameters of a spur gear.
type Spec struct {
	PitchRadius   float64 `toml:"pitch_radius" yaml:"pitch_radius"`     // pitch circle radius
	RootRadius    float64 `toml:"root_radius" yaml:"root_radius"`       // root circle radius, base of the tooth gaps
	OutsideRadius float64 `toml:"outside_radius" yaml:"outside_radius"` // outside circle radius, tooth tips
	PressureAngle float64 `toml:"pressure_angle" yaml:"pressure_angle"` // pressure angle [degrees]
	Teeth         int     `toml:"teeth" yaml:"teeth"`                   // number of teeth
}

// DefaultSpec returns a 12 tooth gear with a 200 unit pitch radius
// and a 20 degree pressure angle.
func DefaultSpec() Spec {
	return Spec{
		PitchRadius:   200,
		RootRadius:    175,
		OutsideRadius: 230,
		PressureAngle: 20,
		Teeth:         12,
	}
}

// Step returns the angular span of a single tooth in degrees.
func (s Spec) Step() float64 {
	return 360 / float64(s.Teeth)
}

// BaseRadius returns the radius of the involute base circle.
func (s Spec) BaseRadius() float64 {
	return s.PitchRadius * math.Cos(d2r(s.PressureAngle))
}

// Validate checks that the circles are strictly nested
// (root < pitch < outside), all radii are positive, the pressure angle
// lies in (0, 90) and there is at least one tooth.
func (s Spec) Validate() error {
	switch {
	case !finite(s.PitchRadius, s.RootRadius, s.OutsideRadius, s.PressureAngle):
		return invalidf("non-finite parameter in %+v", s)
	case s.RootRadius <= 0 || s.PitchRadius <= 0 || s.OutsideRadius <= 0:
		return invalidf("radii must be positive, got root=%g pitch=%g outside=%g", s.RootRadius, s.PitchRadius, s.OutsideRadius)
	case s.RootRadius >= s.PitchRadius:
		return invalidf("root radius %g must be less than pitch radius %g", s.RootRadius, s.PitchRadius)
	case s.PitchRadius >= s.OutsideRadius:
		return invalidf("pitch radius %g must be less than outside radius %g", s.PitchRadius, s.OutsideRadius)
	case s.PressureAngle <= 0 || s.PressureAngle >= 90:
		return invalidf("pressure angle %g outside (0, 90) degrees", s.PressureAngle)
	case s.Teeth < 1:
		return invalidf("need at least one tooth, got %d", s.Teeth)
	}
	return nil
}

func d2r(degrees float64) float64 { return degrees * math.Pi / 180. }
func r2d(radians float64) float64 { return radians / math.Pi * 180. }

func finite(f ...float64) bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
