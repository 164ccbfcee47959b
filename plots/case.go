package plots

import (
	"fmt"
	"os"

	"github.com/dasnellings/cnvTools/genome"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Dim selects the value drawn in a case plot.
type Dim string

const (
	Baf Dim = "baf" // tumor B-allele frequency
	Lrd Dim = "lrd" // log2 tumor:normal depth ratio
)

// ParseDim checks that s names a case plot dimension.
func ParseDim(s string) (Dim, error) {
	switch Dim(s) {
	case Baf, Lrd:
		return Dim(s), nil
	default:
		return "", errors.Errorf("invalid dim parameter (%s). Must specify 'baf' or 'lrd'", s)
	}
}

// Description is used in the plot title.
func (d Dim) Description() string {
	if d == Lrd {
		return "T:N depth ratio (log2)"
	}
	return "minor allele frequencies"
}

// Limits is the y range for the dimension.
func (d Dim) Limits() (float64, float64) {
	if d == Lrd {
		return -4, 4
	}
	return 0, 1
}

// Panel is the data of one tumor sample in a case plot.
type Panel struct {
	Label  string
	Points []Point
	Losses []Region // loss and LOH calls, drawn blue
	Gains  []Region // gain calls, drawn red
}

// Case draws one panel per tumor sample of a case, stacked with a shared genome axis,
// and writes a PNG to path.
func Case(path string, l *genome.Layout, panels []Panel, dim Dim) error {
	if len(panels) == 0 {
		return errors.New("no samples to plot")
	}
	ymin, ymax := dim.Limits()
	plots := make([][]*plot.Plot, len(panels))
	for i := range panels {
		p, err := newGenomePlot(l, ymin, ymax)
		if err != nil {
			return err
		}
		_, err = addSeries(p, l, Series{Points: panels[i].Points, Color: Blue, Radius: vg.Points(0.5)}, 0.2)
		if err != nil {
			return err
		}
		if err = addRegions(p, l, Regions{Regions: panels[i].Losses, Color: Blue}, 0.1); err != nil {
			return err
		}
		if err = addRegions(p, l, Regions{Regions: panels[i].Gains, Color: Red}, 0.1); err != nil {
			return err
		}
		p.Y.Label.Text = panels[i].Label
		if i == 0 {
			p.Title.Text = fmt.Sprintf("SCNA results (%s)", dim.Description())
		}
		if i == len(panels)-1 {
			p.X.Label.Text = "Chromosome"
		}
		plots[i] = []*plot.Plot{p}
	}

	img := vgimg.New(14*vg.Inch, 10*vg.Inch)
	dc := draw.New(img)
	t := draw.Tiles{Rows: len(panels), Cols: 1, PadY: vg.Millimeter, PadTop: vg.Millimeter, PadBottom: vg.Millimeter}
	canvases := plot.Align(plots, t, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create case plot")
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(f); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "could not write %s", path)
	}
	return f.Close()
}
