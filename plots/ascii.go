package plots

import (
	"math"

	"github.com/dasnellings/cnvTools/genome"
	"github.com/guptarohit/asciigraph"
)

// ASCII renders points as a terminal line graph of width bins along the genome axis.
// Each bin holds the mean of its points; empty bins repeat the previous value.
func ASCII(points []Point, l *genome.Layout, width, height int, caption string) string {
	if width < 1 || l.Size == 0 {
		return ""
	}
	sums := make([]float64, width)
	counts := make([]int, width)
	binSize := float64(l.Size) / float64(width)
	var found bool
	for _, pt := range points {
		x, ok := l.Pos(pt.Chrom, pt.Pos)
		if !ok || math.IsNaN(pt.Y) {
			continue
		}
		bin := int(x / binSize)
		if bin >= width {
			bin = width - 1
		}
		sums[bin] += pt.Y
		counts[bin]++
		found = true
	}
	if !found {
		return ""
	}

	data := make([]float64, width)
	var prev float64
	var started bool
	for i := range data {
		if counts[i] > 0 {
			prev = sums[i] / float64(counts[i])
			if !started {
				// back-fill leading empty bins
				for j := 0; j < i; j++ {
					data[j] = prev
				}
				started = true
			}
		}
		data[i] = prev
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption(caption))
}
