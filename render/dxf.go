package render

import (
	"errors"

	"github.com/soypat/gear"
	"github.com/yofu/dxf"
)

// CreateDXF writes the outline of each path as line entities on the
// "Gear" layer of a DXF file.
func CreateDXF(filename string, paths ...gear.Path) error {
	d := dxf.NewDrawing()
	d.AddLayer("Gear", dxf.DefaultColor, dxf.DefaultLineType, true)
	d.ChangeLayer("Gear")
	lines := 0
	for _, p := range paths {
		v := p.Vertices()
		for i := 1; i < len(v); i++ {
			d.Line(v[i-1].X, v[i-1].Y, 0, v[i].X, v[i].Y, 0)
			lines++
		}
	}
	if lines == 0 {
		return errors.New("no line segments to write")
	}
	return d.SaveAs(filename)
}
