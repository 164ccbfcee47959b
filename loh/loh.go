package loh

import (
	"log"
	"path/filepath"

	"github.com/dasnellings/cnvTools/adtex"
	"github.com/dasnellings/cnvTools/genome"
	"github.com/dasnellings/cnvTools/plots"
	"github.com/pkg/errors"
)

// File names written to the ADTEx output directory.
const (
	FinalFile   string = "loh_intervals_final.bed"
	DroppedFile string = "loh_intervals_dropped.bed"
	PlotFile    string = "LOH_plot.png"
)

// Options for Finalize.
type Options struct {
	IntersectBed string  // configured intersectBed command, in-memory intersection if empty
	MinRatio     float64 // see Trim
	NoPlot       bool
	Mirrored     bool           // plot mirrored BAF instead of tumor BAF
	Layout       *genome.Layout // defaults to hg19, with Y and MT when present in the calls
}

// NewOptions returns Options with DefaultMinRatio.
func NewOptions() Options {
	return Options{IntersectBed: "intersectBed", MinRatio: DefaultMinRatio}
}

// Result of Finalize.
type Result struct {
	Kept    []Interval
	Dropped []Interval
	Calls   int
	Resized int
}

// Finalize builds, trims and writes the LOH intervals of an ADTEx output directory,
// then plots them.
func Finalize(dir string, o Options) (Result, error) {
	var res Result
	calls, segs, err := Prepare(dir, o.IntersectBed)
	if err != nil {
		return res, err
	}
	res.Calls = len(calls)

	log.Println("trimming LOH intervals")
	res.Kept, res.Dropped = Trim(calls, segs, o.MinRatio)
	if err = WriteIntervals(filepath.Join(dir, DroppedFile), res.Dropped, true); err != nil {
		return res, errors.Wrap(err, "could not write dropped intervals")
	}
	if err = WriteIntervals(filepath.Join(dir, FinalFile), res.Kept, false); err != nil {
		return res, errors.Wrap(err, "could not write final intervals")
	}
	for _, i := range res.Kept {
		if i.Trimmed() {
			res.Resized++
		}
	}
	log.Printf("%d LOH intervals kept (%d resized), %d dropped\n", len(res.Kept), res.Resized, len(res.Dropped))

	if o.NoPlot {
		return res, nil
	}
	log.Println("plotting LOH")
	err = Plot(filepath.Join(dir, PlotFile), calls, res.Kept, o)
	return res, err
}

// Plot draws the BAF of each call colored by zygosity with the intervals overlaid.
func Plot(path string, calls []adtex.Call, intervals []Interval, o Options) error {
	l := o.Layout
	if l == nil {
		var useY, useMT bool
		for i := range calls {
			useY = useY || calls[i].Chrom == "Y"
			useMT = useMT || calls[i].Chrom == "MT"
		}
		l = genome.Hg19(useY, useMT)
	}

	classes := []struct {
		zygosity string
		series   plots.Series
	}{
		{adtex.Loh, plots.Series{Label: adtex.Loh, Color: plots.Red}},
		{adtex.Ascna, plots.Series{Label: adtex.Ascna, Color: plots.Green}},
		{adtex.Het, plots.Series{Label: adtex.Het, Color: plots.Blue}},
	}
	var y float64
	for i := range calls {
		y = calls[i].TumorBaf
		if o.Mirrored {
			y = calls[i].MirroredBaf
		}
		for j := range classes {
			if calls[i].Zygosity == classes[j].zygosity {
				classes[j].series.Points = append(classes[j].series.Points, plots.Point{Chrom: calls[i].Chrom, Pos: calls[i].Pos, Y: y})
			}
		}
	}
	series := make([]plots.Series, len(classes))
	for i := range classes {
		series[i] = classes[i].series
	}

	regions := make([]plots.Region, len(intervals))
	for i := range intervals {
		regions[i] = plots.Region{Chrom: intervals[i].Chrom, Start: intervals[i].Start + 1, End: intervals[i].End}
	}

	yLabel := "Tumor BAF"
	if o.Mirrored {
		yLabel = "Mirrored BAF"
	}
	return plots.LOH(path, l, series, regions, plots.LohOptions{YLabel: yLabel})
}
