package adtex

import (
	"math"
	"path/filepath"

	"github.com/dasnellings/cnvTools/genome"
	"github.com/dasnellings/cnvTools/tsv"
)

// Zygosity calls made by ADTEx.
const (
	Het   string = "HET"
	Loh   string = "LOH"
	Ascna string = "ASCNA"
)

// Call is one SNP of zygosity/zygosity.res.
type Call struct {
	Chrom       string
	Pos         int
	TumorBaf    float64 // NaN when the column is absent
	MirroredBaf float64 // NaN when the column is absent
	Zygosity    string
}

// Segment is one CNV segment of cnv.result. Start and End are 1-based and inclusive.
type Segment struct {
	Chrom string
	Start int
	End   int
}

// ZygosityPath returns the zygosity result file inside an ADTEx output directory.
func ZygosityPath(dir string) string {
	return filepath.Join(dir, "zygosity", "zygosity.res")
}

// CnvPath returns the CNV result file inside an ADTEx output directory.
func CnvPath(dir string) string {
	return filepath.Join(dir, "cnv.result")
}

// ReadZygosity reads an ADTEx zygosity file. Chromosome names are normalized.
func ReadZygosity(path string) ([]Call, error) {
	r, err := tsv.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	cols, err := r.Columns("chrom", "SNP_loc", "zygosity")
	if err != nil {
		return nil, err
	}
	tumorCol, hasTumor := r.Header["tumor_BAF"]
	mirroredCol, hasMirrored := r.Header["mirrored_BAF"]

	var ans []Call
	var c Call
	for r.Next() {
		if c.Chrom, err = r.Field(cols[0]); err != nil {
			return nil, err
		}
		c.Chrom = genome.Normalize(c.Chrom)
		if c.Pos, err = r.Int(cols[1]); err != nil {
			return nil, err
		}
		if c.Zygosity, err = r.Field(cols[2]); err != nil {
			return nil, err
		}
		c.TumorBaf, c.MirroredBaf = math.NaN(), math.NaN()
		if hasTumor {
			if c.TumorBaf, err = r.Float(tumorCol); err != nil {
				return nil, err
			}
		}
		if hasMirrored {
			if c.MirroredBaf, err = r.Float(mirroredCol); err != nil {
				return nil, err
			}
		}
		ans = append(ans, c)
	}
	return ans, nil
}

// ReadSegments reads an ADTEx cnv.result file.
func ReadSegments(path string) ([]Segment, error) {
	r, err := tsv.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	cols, err := r.Columns("chr", "CNV_start", "CNV_end")
	if err != nil {
		return nil, err
	}

	var ans []Segment
	var s Segment
	for r.Next() {
		if s.Chrom, err = r.Field(cols[0]); err != nil {
			return nil, err
		}
		s.Chrom = genome.Normalize(s.Chrom)
		if s.Start, err = r.Int(cols[1]); err != nil {
			return nil, err
		}
		if s.End, err = r.Int(cols[2]); err != nil {
			return nil, err
		}
		ans = append(ans, s)
	}
	return ans, nil
}
