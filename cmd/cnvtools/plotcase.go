package main

import (
	"flag"
	"fmt"

	"github.com/dasnellings/cnvTools/config"
	"github.com/dasnellings/cnvTools/genome"
	"github.com/dasnellings/cnvTools/pipeline"
	"github.com/dasnellings/cnvTools/plots"
	"github.com/vertgenlab/gonomics/exception"
)

func plotCaseUsage(plotCaseFlags *flag.FlagSet) {
	fmt.Print(
		"plotcase - plot saasCNV results for every case in a samples table\n" +
			"\tEach sample is read from <dir>/<sample_id>/saas_snps.txt and <dir>/<sample_id>/saasCNV_results.\n" +
			"\tWrites <case_id>_lrd.png and <case_id>_baf.png.\n\n" +
			"Usage:\n" +
			"  cnvtools plotcase [options] -i samples.txt\n\n" +
			"Options:\n")
	plotCaseFlags.PrintDefaults()
}

func runPlotCase(args []string) {
	var err error
	plotCaseFlags := flag.NewFlagSet("plotcase", flag.ExitOnError)

	input := plotCaseFlags.String("i", "samples.txt", "Samples table with case_id (or patient_id) and sample_id (or tumor_id) columns.")
	dir := plotCaseFlags.String("d", ".", "Directory holding the sample directories.")
	outDir := plotCaseFlags.String("o", ".", "Output directory for the plots.")
	dim := plotCaseFlags.String("dim", "", "Plot only this dimension: 'baf' or 'lrd'. Default: both")
	useY := plotCaseFlags.Bool("y", false, "Include chromosome Y in the default hg19 axis.")
	genomeFile := plotCaseFlags.String("g", "", "Genome file (name, length) or fasta index (.fai) used for the plot axis. Default: hg19")
	chroms := plotCaseFlags.String("chroms", "", "Comma separated chromosomes to plot when -g is set. Default: all in -g")

	err = plotCaseFlags.Parse(args)
	exception.PanicOnErr(err)
	plotCaseFlags.Usage = func() { plotCaseUsage(plotCaseFlags) }

	dims := []plots.Dim{plots.Lrd, plots.Baf}
	if *dim != "" {
		d, err := plots.ParseDim(*dim)
		if err != nil {
			plotCaseFlags.Usage()
			errExit("\nERROR: " + err.Error())
		}
		dims = []plots.Dim{d}
	}

	cases, err := pipeline.ReadCases(*input)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	l := genome.Hg19(*useY, false)
	if *genomeFile != "" {
		l, err = genome.ReadLayout(*genomeFile, config.ChromList(*chroms))
		if err != nil {
			errExit("ERROR: " + err.Error())
		}
	}
	for _, c := range cases {
		if _, err = pipeline.PlotCase(c, *dir, *outDir, l, dims...); err != nil {
			errExit("ERROR: " + err.Error())
		}
	}
}
