package pipeline

import (
	"fmt"
	"log"
	"math"
	"path/filepath"
	"sort"

	"github.com/dasnellings/cnvTools/baf"
	"github.com/dasnellings/cnvTools/genome"
	"github.com/dasnellings/cnvTools/plots"
	"github.com/dasnellings/cnvTools/saascnv"
	"github.com/dasnellings/cnvTools/tsv"
	"github.com/pkg/errors"
)

// Case is a patient with one or more tumor samples. Each sample has its own sample
// directory named after the sample id.
type Case struct {
	Id      string
	Samples []string
}

// ReadCases reads a table of samples with a case_id (or patient_id) column and a
// sample_id (or tumor_id) column. Cases and their samples are sorted by id.
func ReadCases(path string) ([]Case, error) {
	r, err := tsv.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	caseCol, err := column(r, "case_id", "patient_id")
	if err != nil {
		return nil, err
	}
	sampleCol, err := column(r, "sample_id", "tumor_id")
	if err != nil {
		return nil, err
	}

	samples := make(map[string][]string)
	var caseId, sampleId string
	for r.Next() {
		if caseId, err = r.Field(caseCol); err != nil {
			return nil, err
		}
		if sampleId, err = r.Field(sampleCol); err != nil {
			return nil, err
		}
		samples[caseId] = append(samples[caseId], sampleId)
	}

	ans := make([]Case, 0, len(samples))
	for id, s := range samples {
		sort.Strings(s)
		ans = append(ans, Case{Id: id, Samples: s})
	}
	sort.Slice(ans, func(i, j int) bool { return ans[i].Id < ans[j].Id })
	return ans, nil
}

// column returns the first of names present in the header.
func column(r *tsv.Reader, names ...string) (int, error) {
	for _, n := range names {
		if col, ok := r.Header[n]; ok {
			return col, nil
		}
	}
	return -1, errors.Errorf("%s: missing column %s", r.Path, names[0])
}

// CasePanel builds the plot panel of one sample from its SNP table and saasCNV calls.
func CasePanel(label, snpPath, callsPath string, dim plots.Dim) (plots.Panel, error) {
	p := plots.Panel{Label: label}
	records, err := baf.ReadSnpTable(snpPath)
	if err != nil {
		return p, err
	}
	calls, err := saascnv.ReadCalls(callsPath)
	if err != nil {
		return p, err
	}

	p.Points = make([]plots.Point, len(records))
	for i := range records {
		p.Points[i] = plots.Point{Chrom: records[i].Chrom, Pos: records[i].Pos, Y: dimValue(records[i], dim)}
	}
	for i := range calls {
		region := plots.Region{Chrom: calls[i].Chrom, Start: calls[i].Start, End: calls[i].End}
		switch {
		case calls[i].IsLoss():
			p.Losses = append(p.Losses, region)
		case calls[i].IsGain():
			p.Gains = append(p.Gains, region)
		}
	}
	return p, nil
}

// dimValue is NaN where the value is undefined so that the point is not drawn.
func dimValue(r baf.Record, dim plots.Dim) float64 {
	if dim == plots.Lrd {
		t, n := r.Tumor.Depth(), r.Normal.Depth()
		if t == 0 || n == 0 {
			return math.NaN()
		}
		return math.Log2(float64(t) / float64(n))
	}
	return r.Tumor.Baf()
}

// PlotCase writes <outDir>/<case>_<dim>.png for each dim. Sample directories are
// looked up in baseDir.
func PlotCase(c Case, baseDir, outDir string, l *genome.Layout, dims ...plots.Dim) ([]string, error) {
	var written []string
	for _, dim := range dims {
		panels := make([]plots.Panel, len(c.Samples))
		for i, s := range c.Samples {
			dir := filepath.Join(baseDir, s)
			p, err := CasePanel(s, filepath.Join(dir, "saas_snps.txt"), saascnv.CallsPath(filepath.Join(dir, "saasCNV_results")), dim)
			if err != nil {
				return written, errors.Wrapf(err, "case %s", c.Id)
			}
			panels[i] = p
		}
		path := filepath.Join(outDir, fmt.Sprintf("%s_%s.png", c.Id, dim))
		if err := plots.Case(path, l, panels, dim); err != nil {
			return written, err
		}
		log.Println("wrote", path)
		written = append(written, path)
	}
	return written, nil
}
