package render

import (
	"errors"
	"io"
	"math"

	"github.com/soypat/gear"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotOptions controls image output.
type PlotOptions struct {
	Title string
	// Size is the width and height of the square image. Zero means 6 inches.
	Size vg.Length
	// Format is an image format supported by gonum plot. Empty means "png".
	Format string
	// Spokes draws a dashed line from each gear center out to the tip
	// circle at every tooth angle.
	Spokes bool
}

// WritePNG plots the outline of each path on equally scaled axes.
// Despite the name any format supported by gonum plot may be requested
// through opts.Format.
func WritePNG(w io.Writer, opts PlotOptions, paths ...gear.Path) error {
	if opts.Size == 0 {
		opts.Size = 6 * vg.Inch
	}
	if opts.Format == "" {
		opts.Format = "png"
	}
	bb, ok := pathsBounds(paths)
	if !ok {
		return errors.New("no vertices to plot")
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	for i, path := range paths {
		v := path.Vertices()
		if len(v) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(v))
		for j, pt := range v {
			xys[j].X = pt.X
			xys[j].Y = pt.Y
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		if opts.Spokes {
			if err := addSpokes(p, path, i); err != nil {
				return err
			}
		}
	}

	// Square axes so teeth are not distorted.
	c := bb.Center()
	half := math.Max(bb.Size().X, bb.Size().Y) / 2
	p.X.Min, p.X.Max = c.X-half, c.X+half
	p.Y.Min, p.Y.Max = c.Y-half, c.Y+half

	wt, err := p.WriterTo(opts.Size, opts.Size, opts.Format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// addSpokes draws the spokes of a path from its center to its outside circle.
func addSpokes(p *plot.Plot, path gear.Path, i int) error {
	for _, spoke := range path.Spokes() {
		line, err := plotter.NewLine(plotter.XYs{
			{X: spoke[0].X, Y: spoke[0].Y},
			{X: spoke[1].X, Y: spoke[1].Y},
		})
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(1)
		p.Add(line)
	}
	return nil
}
