package loh

import (
	"log"
	"os"
	"path/filepath"

	"github.com/dasnellings/cnvTools/adtex"
	"github.com/dasnellings/cnvTools/shell"
	"github.com/pkg/errors"
	"github.com/vertgenlab/gonomics/bed"
	"github.com/vertgenlab/gonomics/fileio"
	"github.com/vertgenlab/gonomics/interval"
)

// Prepare reads the zygosity calls and CNV segments of an ADTEx output directory and
// returns the calls with the segments that contain at least one LOH SNP.
// The intersection is done with intersectBed when it is configured, otherwise in memory.
func Prepare(dir, intersectBed string) ([]adtex.Call, []Interval, error) {
	log.Println("building preliminary LOH intervals in", dir)
	calls, err := adtex.ReadZygosity(adtex.ZygosityPath(dir))
	if err != nil {
		return nil, nil, err
	}
	segments, err := adtex.ReadSegments(adtex.CnvPath(dir))
	if err != nil {
		return nil, nil, err
	}

	snps := SnpBeds(calls)
	segs := SegmentBeds(segments)
	var loh []Interval
	if intersectBed != "" {
		loh, err = intersectExternal(dir, intersectBed, snps, segs)
	} else {
		loh = Intersect(segs, snps)
	}
	if err != nil {
		return nil, nil, err
	}
	return calls, loh, nil
}

// SnpBeds converts the LOH calls to single base BED records.
func SnpBeds(calls []adtex.Call) []bed.Bed {
	var ans []bed.Bed
	for i := range calls {
		if calls[i].Zygosity != adtex.Loh {
			continue
		}
		ans = append(ans, bed.Bed{Chrom: calls[i].Chrom, ChromStart: calls[i].Pos - 1, ChromEnd: calls[i].Pos, FieldsInitialized: 3})
	}
	return ans
}

// SegmentBeds converts CNV segments to BED records, dropping duplicates.
func SegmentBeds(segments []adtex.Segment) []bed.Bed {
	type key struct {
		chrom      string
		start, end int
	}
	seen := make(map[key]bool, len(segments))
	var ans []bed.Bed
	var k key
	for i := range segments {
		k = key{segments[i].Chrom, segments[i].Start - 1, segments[i].End}
		if seen[k] {
			continue
		}
		seen[k] = true
		ans = append(ans, bed.Bed{Chrom: k.chrom, ChromStart: k.start, ChromEnd: k.end, FieldsInitialized: 3})
	}
	return ans
}

// Intersect returns each segment that overlaps at least one snp, once, in segment order.
// This matches "intersectBed -a segs -b snps -wa -u".
func Intersect(segs, snps []bed.Bed) []Interval {
	var ans []Interval
	if len(snps) == 0 {
		return ans
	}
	intervals := make([]interval.Interval, len(snps))
	for i := range snps {
		intervals[i] = snps[i]
	}
	tree := interval.BuildTree(intervals)
	for i := range segs {
		if len(interval.Query(tree, segs[i], "any")) > 0 {
			ans = append(ans, fromBed(segs[i]))
		}
	}
	return ans
}

func fromBed(b bed.Bed) Interval {
	return Interval{Chrom: b.Chrom, Start: b.ChromStart, End: b.ChromEnd, OrigStart: b.ChromStart, OrigEnd: b.ChromEnd}
}

func toBed(i Interval, orig bool) bed.Bed {
	if orig {
		return bed.Bed{Chrom: i.Chrom, ChromStart: i.OrigStart, ChromEnd: i.OrigEnd, FieldsInitialized: 3}
	}
	return bed.Bed{Chrom: i.Chrom, ChromStart: i.Start, ChromEnd: i.End, FieldsInitialized: 3}
}

// intersectExternal writes temporary BED files to dir and runs intersectBed on them.
// The temporary files are removed before returning.
func intersectExternal(dir, intersectBed string, snps, segs []bed.Bed) ([]Interval, error) {
	snpPath := filepath.Join(dir, "temp_loh_snps.bed")
	segPath := filepath.Join(dir, "temp_cnv_interval.bed")
	lohPath := filepath.Join(dir, "temp_loh_intervals.bed")
	defer func() {
		for _, p := range []string{snpPath, segPath, lohPath} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				log.Println("WARNING: could not remove temporary file:", err)
			}
		}
	}()

	if err := writeBeds(snpPath, snps); err != nil {
		return nil, err
	}
	if err := writeBeds(segPath, segs); err != nil {
		return nil, err
	}

	log.Println("running bedtools intersection")
	c := shell.Command(intersectBed, "-b", snpPath, "-a", segPath, "-wa", "-u")
	c.Stdout = lohPath
	if err := shell.Run(c); err != nil {
		return nil, errors.Wrap(err, "LOH segment intersection failed")
	}

	var ans []Interval
	for _, b := range bed.Read(lohPath) {
		ans = append(ans, fromBed(b))
	}
	return ans, nil
}

func writeBeds(path string, beds []bed.Bed) error {
	out := fileio.EasyCreate(path)
	for i := range beds {
		bed.WriteBed(out, beds[i])
	}
	return out.Close()
}

// WriteIntervals writes intervals as a three column BED file. When orig is true the
// coordinates from before trimming are written.
func WriteIntervals(path string, intervals []Interval, orig bool) error {
	out := fileio.EasyCreate(path)
	for i := range intervals {
		bed.WriteBed(out, toBed(intervals[i], orig))
	}
	return out.Close()
}

// ReadIntervals reads a BED file of LOH intervals.
func ReadIntervals(path string) ([]Interval, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(err, "could not read LOH intervals")
	}
	var ans []Interval
	for _, b := range bed.Read(path) {
		ans = append(ans, fromBed(b))
	}
	return ans, nil
}
