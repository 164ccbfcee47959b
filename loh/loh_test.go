package loh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dasnellings/cnvTools/adtex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vertgenlab/gonomics/bed"
)

func call(chrom string, pos int, zygosity string) adtex.Call {
	return adtex.Call{Chrom: chrom, Pos: pos, TumorBaf: 0.9, MirroredBaf: 0.9, Zygosity: zygosity}
}

func seg(chrom string, start, end int) Interval {
	return Interval{Chrom: chrom, Start: start, End: end, OrigStart: start, OrigEnd: end}
}

// calls are deliberately out of order
var testCalls = []adtex.Call{
	call("1", 4900, adtex.Loh),
	call("1", 13000, adtex.Loh),
	call("1", 1000, adtex.Loh),
	call("1", 1500, adtex.Loh),
	call("1", 12000, adtex.Loh),
	call("1", 15000, adtex.Het),
	call("2", 50, adtex.Loh),
	call("2", 60, adtex.Het),
	call("3", 70, adtex.Ascna),
	call("4", 1000, adtex.Loh),
	call("4", 1000, adtex.Loh),
}

func TestTrim(t *testing.T) {
	segs := []Interval{
		seg("1", 999, 5000),   // LOH span covers the segment
		seg("1", 9999, 20000), // LOH span is 10% of the segment
		seg("2", 0, 100),      // single LOH SNP
		seg("3", 0, 100),      // no LOH SNP
		seg("4", 999, 1000),   // zero length span
	}
	kept, dropped := Trim(testCalls, segs, DefaultMinRatio)

	require.Len(t, kept, 3)
	assert.Equal(t, seg("1", 999, 5000), kept[0])
	assert.False(t, kept[0].Trimmed())
	assert.Equal(t, Interval{Chrom: "1", Start: 11999, End: 13000, OrigStart: 9999, OrigEnd: 20000}, kept[1])
	assert.True(t, kept[1].Trimmed())
	assert.Equal(t, seg("4", 999, 1000), kept[2])

	require.Len(t, dropped, 2)
	assert.Equal(t, "2", dropped[0].Chrom)
	assert.Equal(t, "3", dropped[1].Chrom)
}

func TestTrimRatio(t *testing.T) {
	segs := []Interval{seg("1", 999, 5000)}
	kept, _ := Trim(testCalls, segs, 0.99)
	require.Len(t, kept, 1)
	assert.Equal(t, 999, kept[0].Start)
	assert.Equal(t, 4900, kept[0].End)

	kept, _ = Trim(testCalls, segs, 0)
	assert.Equal(t, 5000, kept[0].End)
}

func TestTrimKeepsSnpOrder(t *testing.T) {
	segs := []Interval{seg("1", 0, 100000)}
	kept, _ := Trim(testCalls, segs, DefaultMinRatio)
	require.Len(t, kept, 1)
	assert.True(t, kept[0].Start < kept[0].End)
	assert.Equal(t, 999, kept[0].Start)
	assert.Equal(t, 13000, kept[0].End)
}

func TestIntersect(t *testing.T) {
	snps := SnpBeds(testCalls)
	assert.Len(t, snps, 8)
	assert.Equal(t, bed.Bed{Chrom: "2", ChromStart: 49, ChromEnd: 50, FieldsInitialized: 3}, snps[5])

	segs := SegmentBeds([]adtex.Segment{
		{Chrom: "1", Start: 1000, End: 5000},
		{Chrom: "1", Start: 1000, End: 5000},
		{Chrom: "1", Start: 5001, End: 9000},
		{Chrom: "2", Start: 50, End: 50},
		{Chrom: "3", Start: 1, End: 100},
	})
	require.Len(t, segs, 4)

	found := Intersect(segs, snps)
	require.Len(t, found, 2)
	assert.Equal(t, seg("1", 999, 5000), found[0])
	assert.Equal(t, seg("2", 49, 50), found[1])

	assert.Empty(t, Intersect(segs, nil))
}

func writeAdtexDir(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "zygosity"), 0755))
	zyg := "chrom\tSNP_loc\tcontrol_BAF\ttumor_BAF\tmirrored_BAF\tcontrol_doc\ttumor_doc\tzygosity\n" +
		"1\t1000\t0.5\t0.95\t0.95\t40\t50\tLOH\n" +
		"1\t1500\t0.5\t0.93\t0.93\t40\t50\tLOH\n" +
		"1\t4900\t0.5\t0.05\t0.95\t40\t50\tLOH\n" +
		"1\t12000\t0.5\t0.91\t0.91\t40\t50\tLOH\n" +
		"1\t13000\t0.5\t0.92\t0.92\t40\t50\tLOH\n" +
		"1\t30000\t0.5\t0.48\t0.52\t40\t50\tHET\n" +
		"2\t50\t0.5\t0.97\t0.97\t40\t50\tLOH\n" +
		"X\t70\t0.5\t0.7\t0.7\t40\t50\tASCNA\n"
	require.NoError(t, os.WriteFile(adtex.ZygosityPath(dir), []byte(zyg), 0644))
	cnv := "chr\tCNV_start\tCNV_end\tCN\n" +
		"1\t1000\t5000\t1\n" +
		"1\t10000\t20000\t1\n" +
		"1\t25000\t40000\t2\n" +
		"2\t1\t100\t1\n"
	require.NoError(t, os.WriteFile(adtex.CnvPath(dir), []byte(cnv), 0644))
	return dir
}

func TestFinalize(t *testing.T) {
	dir := writeAdtexDir(t)
	o := NewOptions()
	o.IntersectBed = ""
	res, err := Finalize(dir, o)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Calls)
	assert.Len(t, res.Kept, 2)
	assert.Len(t, res.Dropped, 1)
	assert.Equal(t, 1, res.Resized)

	final, err := os.ReadFile(filepath.Join(dir, FinalFile))
	require.NoError(t, err)
	assert.Equal(t, "1\t999\t5000\n1\t11999\t13000\n", string(final))

	dropped, err := os.ReadFile(filepath.Join(dir, DroppedFile))
	require.NoError(t, err)
	assert.Equal(t, "2\t0\t100\n", string(dropped))

	assert.FileExists(t, filepath.Join(dir, PlotFile))

	intervals, err := ReadIntervals(filepath.Join(dir, FinalFile))
	require.NoError(t, err)
	assert.Equal(t, res.Kept[1].Start, intervals[1].Start)
}

func TestFinalizeExternal(t *testing.T) {
	dir := writeAdtexDir(t)
	// stand-in for intersectBed that reports every segment of -a
	fake := filepath.Join(t.TempDir(), "intersectBed")
	require.NoError(t, os.WriteFile(fake, []byte("#!/bin/sh\ncat \"$4\"\n"), 0755))

	o := NewOptions()
	o.IntersectBed = fake
	o.NoPlot = true
	res, err := Finalize(dir, o)
	require.NoError(t, err)
	assert.Len(t, res.Kept, 2)
	assert.Len(t, res.Dropped, 2)
	assert.NoFileExists(t, filepath.Join(dir, "temp_loh_snps.bed"))
	assert.NoFileExists(t, filepath.Join(dir, "temp_cnv_interval.bed"))
	assert.NoFileExists(t, filepath.Join(dir, "temp_loh_intervals.bed"))
	assert.NoFileExists(t, filepath.Join(dir, PlotFile))

	failing := filepath.Join(t.TempDir(), "intersectBed")
	require.NoError(t, os.WriteFile(failing, []byte("#!/bin/sh\nexit 1\n"), 0755))
	o.IntersectBed = failing
	_, err = Finalize(dir, o)
	assert.Error(t, err)
}
