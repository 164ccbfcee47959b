// Package loh finds the CNV segments of an ADTEx run that carry LOH SNPs and trims
// each segment to the span of its LOH SNPs.
package loh

import (
	"sort"

	"github.com/dasnellings/cnvTools/adtex"
	"github.com/vertgenlab/gonomics/numbers"
)

// DefaultMinRatio is the smallest LOH SNP span / segment span ratio for which a segment
// is kept at its original size.
const DefaultMinRatio float64 = 0.8

// Interval is a CNV segment in BED coordinates (0-based start, end exclusive).
// OrigStart and OrigEnd keep the segment coordinates from before trimming.
type Interval struct {
	Chrom     string
	Start     int
	End       int
	OrigStart int
	OrigEnd   int
}

// GetChrom, GetChromStart and GetChromEnd satisfy the gonomics interval.Interval interface.
func (i Interval) GetChrom() string   { return i.Chrom }
func (i Interval) GetChromStart() int { return i.Start }
func (i Interval) GetChromEnd() int   { return i.End }

// Trimmed reports whether the interval was resized.
func (i Interval) Trimmed() bool {
	return i.Start != i.OrigStart || i.End != i.OrigEnd
}

// lohPositions collects the sorted positions of the LOH SNPs of each chromosome.
func lohPositions(calls []adtex.Call) map[string][]int {
	ans := make(map[string][]int)
	for i := range calls {
		if calls[i].Zygosity == adtex.Loh {
			ans[calls[i].Chrom] = append(ans[calls[i].Chrom], calls[i].Pos)
		}
	}
	for chrom := range ans {
		sort.Ints(ans[chrom])
	}
	return ans
}

// Trim resizes or drops each segment based on the LOH SNPs it contains.
// For a segment, first is the first LOH SNP after the segment start and last is the
// final LOH SNP at or before the segment end. A segment holding a single LOH SNP, or
// none, is dropped. A segment where (last-first)/(end-start-1) < minRatio is shrunk to
// the SNP span (first-1, last). Other segments are kept unchanged.
// Kept and dropped intervals are returned in input order.
func Trim(calls []adtex.Call, segs []Interval, minRatio float64) (kept, dropped []Interval) {
	positions := lohPositions(calls)
	var ps []int
	var first, last int
	var snpSpan, segSpan int
	var ratio float64
	for _, s := range segs {
		ps = positions[s.Chrom]
		first = sort.SearchInts(ps, s.Start+1)  // first position > start
		last = sort.SearchInts(ps, s.End+1) - 1 // last position <= end
		if first >= len(ps) || last < first || first == last {
			dropped = append(dropped, s)
			continue
		}

		snpSpan = ps[last] - ps[first]
		segSpan = s.End - s.Start - 1
		ratio = 0
		if segSpan != 0 {
			ratio = float64(snpSpan) / float64(segSpan)
		}
		if ratio < minRatio {
			s.Start = numbers.Max(ps[first]-1, s.Start)
			s.End = numbers.Min(ps[last], s.End)
		}
		kept = append(kept, s)
	}
	return kept, dropped
}
