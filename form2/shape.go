package form2

import (
	"fmt"
	"runtime/debug"

	"github.com/soypat/gear"
	"github.com/soypat/gear/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Unwrap returns the error the shape constructor panicked with, if any.
func (s *shapeErr) Unwrap() error {
	err, _ := s.panicObj.(error)
	return err
}

// Polygon returns an SDF2 made from a closed set of line segments.
func Polygon(vertex []r2.Vec) (s gear.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.NewPolygon(vertex), err
}

// Gear returns the SDF2 profile of the gear described by s.
// Errors from building the gear path can be matched with errors.Is
// against the gear package sentinel errors.
func Gear(k gear.Spec) (s gear.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Gear(k), err
}

// Nagon return the vertices of a N sided regular polygon.
func Nagon(n int, radius float64) ([]r2.Vec, error) {
	if n < 3 {
		return nil, fmt.Errorf("need at least 3 sides, got %d", n)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("need positive radius, got %g", radius)
	}
	return must2.Nagon(n, radius), nil
}

// GearOpts is Gear with explicit generation options.
func GearOpts(k gear.Spec, opts gear.Options) (s gear.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.GearOpts(k, opts), err
}
