package baf

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"
)

// ChromSummary describes the BAF rows of one chromosome.
type ChromSummary struct {
	Chrom       string
	Snps        int
	TumorBaf    float64 // mean
	TumorBafSd  float64
	ControlBaf  float64 // mean
	TumorDepth  float64 // mean
	NormalDepth float64 // mean
}

// Summarize groups rows by chromosome, in order of first appearance.
func Summarize(rows []Row) []ChromSummary {
	var order []string
	tumor := make(map[string][]float64)
	control := make(map[string][]float64)
	tDoc := make(map[string][]float64)
	nDoc := make(map[string][]float64)
	for i := range rows {
		c := rows[i].Chrom
		if _, seen := tumor[c]; !seen {
			order = append(order, c)
		}
		tumor[c] = append(tumor[c], rows[i].TumorBaf)
		control[c] = append(control[c], rows[i].ControlBaf)
		tDoc[c] = append(tDoc[c], float64(rows[i].TumorDoc))
		nDoc[c] = append(nDoc[c], float64(rows[i].ControlDoc))
	}

	ans := make([]ChromSummary, len(order))
	for i, c := range order {
		ans[i].Chrom = c
		ans[i].Snps = len(tumor[c])
		ans[i].TumorBaf, ans[i].TumorBafSd = stat.MeanStdDev(tumor[c], nil)
		ans[i].ControlBaf = stat.Mean(control[c], nil)
		ans[i].TumorDepth = stat.Mean(tDoc[c], nil)
		ans[i].NormalDepth = stat.Mean(nDoc[c], nil)
	}
	return ans
}

// WriteSummary writes a column-aligned summary table.
func WriteSummary(out io.Writer, s []ChromSummary) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "chrom\tsnps\ttumor_BAF\ttumor_BAF_sd\tcontrol_BAF\ttumor_doc\tcontrol_doc")
	for i := range s {
		fmt.Fprintf(w, "%s\t%d\t%.3f\t%.3f\t%.3f\t%.1f\t%.1f\n", s[i].Chrom, s[i].Snps,
			s[i].TumorBaf, s[i].TumorBafSd, s[i].ControlBaf, s[i].TumorDepth, s[i].NormalDepth)
	}
	return w.Flush()
}
