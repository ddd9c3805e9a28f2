package render

import (
	"errors"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/soypat/gear"
	"github.com/soypat/gear/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// SVGOptions controls SVG output.
type SVGOptions struct {
	// Scale is the number of SVG user units per gear unit. Zero means 1.
	Scale float64
	// Margin around the drawing in SVG user units.
	Margin int
	// Style is the CSS style of each gear polygon. Empty uses a black outline.
	Style string
}

const defaultSVGStyle = "fill:none;stroke:black;stroke-width:1"

// WriteSVG draws the outline of each path as a closed polygon.
// The Y axis is flipped so that +Y points up in the drawing.
func WriteSVG(w io.Writer, opts SVGOptions, paths ...gear.Path) error {
	if opts.Scale == 0 {
		opts.Scale = 1
	}
	if opts.Scale < 0 || opts.Margin < 0 {
		return errors.New("negative SVG scale or margin")
	}
	if opts.Style == "" {
		opts.Style = defaultSVGStyle
	}
	bb, ok := pathsBounds(paths)
	if !ok {
		return errors.New("no vertices to draw")
	}
	size := r2.Scale(opts.Scale, bb.Size())
	width := int(math.Ceil(size.X)) + 2*opts.Margin
	height := int(math.Ceil(size.Y)) + 2*opts.Margin

	canvas := svg.New(w)
	canvas.Start(width, height)
	for _, p := range paths {
		v := p.Vertices()
		if len(v) == 0 {
			continue
		}
		xs := make([]int, len(v))
		ys := make([]int, len(v))
		for i, pt := range v {
			xs[i] = opts.Margin + int(math.Round((pt.X-bb.Min.X)*opts.Scale))
			ys[i] = opts.Margin + int(math.Round((bb.Max.Y-pt.Y)*opts.Scale))
		}
		canvas.Polygon(xs, ys, opts.Style)
	}
	canvas.End()
	return nil
}

// pathsBounds returns the box enclosing every vertex of paths.
func pathsBounds(paths []gear.Path) (d2.Box, bool) {
	var bb d2.Box
	found := false
	for _, p := range paths {
		v := d2.Set(p.Vertices())
		if len(v) == 0 {
			continue
		}
		if !found {
			bb = v.Bounds()
			found = true
			continue
		}
		bb = bb.Extend(v.Bounds())
	}
	return bb, found
}
