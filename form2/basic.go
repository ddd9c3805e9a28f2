package form2

import (
	"runtime/debug"

	"github.com/soypat/gear"
	"github.com/soypat/gear/form2/must2"
)

// Circle returns the SDF2 for a 2d circle.
func Circle(radius float64) (s gear.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Circle(radius), err
}

// Bore returns the gear profile of k with a centered hole of the given radius.
func Bore(k gear.Spec, radius float64) (s gear.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Bore(k, radius), err
}
