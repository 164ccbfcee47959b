package plots

import (
	"github.com/dasnellings/cnvTools/genome"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
)

// LohOptions for LOH.
type LohOptions struct {
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// LOH draws BAF points, one series per zygosity class, on a genome axis with the LOH
// intervals as red rectangles, and saves the plot to path. The image format is taken
// from the file extension.
func LOH(path string, l *genome.Layout, series []Series, intervals []Region, o LohOptions) error {
	if o.Width == 0 {
		o.Width = 19 * vg.Inch
	}
	if o.Height == 0 {
		o.Height = 3 * vg.Inch
	}
	if o.YLabel == "" {
		o.YLabel = "Tumor BAF"
	}

	p, err := newGenomePlot(l, 0, 1)
	if err != nil {
		return err
	}
	p.Y.Label.Text = o.YLabel
	p.Legend.Top = true

	for i := range series {
		if _, err = addSeries(p, l, series[i], 0.5); err != nil {
			return err
		}
	}
	if err = addRegions(p, l, Regions{Regions: intervals, Color: Red}, 0.1); err != nil {
		return err
	}

	if err = p.Save(o.Width, o.Height, path); err != nil {
		return errors.Wrapf(err, "could not save plot to %s", path)
	}
	return nil
}
