// Package plots draws genome-wide BAF and depth tracks with CNV and LOH intervals.
package plots

import (
	"image/color"
	"math"

	"github.com/dasnellings/cnvTools/genome"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Point is one value at a chromosome position.
type Point struct {
	Chrom string
	Pos   int
	Y     float64
}

// Series is a set of points drawn in one color.
type Series struct {
	Label  string
	Points []Point
	Color  color.Color
	Radius vg.Length
}

// Region is a chromosome interval with 1-based, inclusive coordinates.
type Region struct {
	Chrom string
	Start int
	End   int
}

// Regions is a set of intervals drawn as translucent rectangles.
type Regions struct {
	Regions []Region
	Color   color.Color
}

var (
	Red   = color.NRGBA{R: 226, G: 74, B: 51, A: 255}
	Green = color.NRGBA{R: 58, G: 160, B: 72, A: 255}
	Blue  = color.NRGBA{R: 52, G: 138, B: 189, A: 255}
	Gray  = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
)

// withAlpha returns c with its alpha replaced by a (0-1).
func withAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a * 255)}
}

// chromTicks labels each chromosome at its midpoint.
type chromTicks []genome.Chrom

func (c chromTicks) Ticks(min, max float64) []plot.Tick {
	var ans []plot.Tick
	for i := range c {
		if c[i].Mid >= min && c[i].Mid <= max {
			ans = append(ans, plot.Tick{Value: c[i].Mid, Label: c[i].Name})
		}
	}
	return ans
}

// newGenomePlot returns a plot with a genome x-axis spanning the layout and a fixed
// y range, with a gray line at the start of each chromosome.
func newGenomePlot(l *genome.Layout, ymin, ymax float64) (*plot.Plot, error) {
	p := plot.New()
	p.X.Min = 0
	p.X.Max = float64(l.Size)
	p.Y.Min = ymin
	p.Y.Max = ymax
	p.X.Tick.Marker = chromTicks(l.Chroms)
	p.X.Tick.Label.Font.Size = 7
	p.X.Tick.LineStyle.Width = 0

	for _, x := range l.Boundaries() {
		line, err := plotter.NewLine(plotter.XYs{{X: x, Y: ymin}, {X: x, Y: ymax}})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(0.5)
		line.LineStyle.Color = Gray
		p.Add(line)
	}
	return p, nil
}

// addSeries draws s as a scatter. Points on chromosomes outside the layout, or with a
// NaN value, are skipped. The number of points drawn is returned.
func addSeries(p *plot.Plot, l *genome.Layout, s Series, alpha float64) (int, error) {
	var xys plotter.XYs
	for _, pt := range s.Points {
		x, ok := l.Pos(pt.Chrom, pt.Pos)
		if !ok || math.IsNaN(pt.Y) {
			continue
		}
		xys = append(xys, plotter.XY{X: x, Y: pt.Y})
	}
	if len(xys) == 0 {
		return 0, nil
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return 0, errors.Wrap(err, "could not build scatter")
	}
	sc.GlyphStyle.Color = withAlpha(s.Color, alpha)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = s.Radius
	if sc.GlyphStyle.Radius == 0 {
		sc.GlyphStyle.Radius = vg.Points(1)
	}
	p.Add(sc)
	if s.Label != "" {
		p.Legend.Add(s.Label, sc)
	}
	return len(xys), nil
}

// addRegions draws each region as a rectangle spanning the y range.
func addRegions(p *plot.Plot, l *genome.Layout, r Regions, alpha float64) error {
	for _, reg := range r.Regions {
		x0, ok := l.Pos(reg.Chrom, reg.Start)
		if !ok {
			continue
		}
		x1 := x0 + float64(reg.End-reg.Start+1)
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: x0, Y: p.Y.Min}, {X: x1, Y: p.Y.Min}, {X: x1, Y: p.Y.Max}, {X: x0, Y: p.Y.Max},
		})
		if err != nil {
			return errors.Wrap(err, "could not build interval rectangle")
		}
		poly.Color = withAlpha(r.Color, alpha)
		poly.LineStyle.Width = 0
		p.Add(poly)
	}
	return nil
}
