package main

import (
	"flag"
	"fmt"

	"github.com/dasnellings/cnvTools/config"
	"github.com/dasnellings/cnvTools/genome"
	"github.com/dasnellings/cnvTools/loh"
	"github.com/vertgenlab/gonomics/exception"
)

func lohUsage(lohFlags *flag.FlagSet) {
	fmt.Print(
		"loh - intersect ADTEx CNV segments with LOH SNPs, trim sparse intervals, and plot\n" +
			"\tWrites " + loh.FinalFile + ", " + loh.DroppedFile + " and " + loh.PlotFile + " to the ADTEx directory.\n\n" +
			"Usage:\n" +
			"  cnvtools loh [options] -a adtex_output\n\n" +
			"Options:\n")
	lohFlags.PrintDefaults()
}

func runLoh(args []string) {
	var err error
	lohFlags := flag.NewFlagSet("loh", flag.ExitOnError)
	o := loh.NewOptions()

	dir := lohFlags.String("a", "", "ADTEx output directory.")
	minRatio := lohFlags.Float64("minRatio", o.MinRatio, "Intervals where LOH SNPs span less than this fraction are trimmed to the SNPs.")
	noPlot := lohFlags.Bool("noPlot", false, "Do not plot.")
	mirrored := lohFlags.Bool("mirrored", false, "Plot mirrored BAF instead of tumor BAF.")
	genomeFile := lohFlags.String("g", "", "Genome file (name, length) or fasta index (.fai) used for the plot axis. Default: hg19")
	chroms := lohFlags.String("chroms", "", "Comma separated chromosomes to plot when -g is set. Default: all in -g")
	configFile := lohFlags.String("c", "", "Config yaml.")

	err = lohFlags.Parse(args)
	exception.PanicOnErr(err)
	lohFlags.Usage = func() { lohUsage(lohFlags) }

	if *dir == "" {
		lohFlags.Usage()
		errExit("\nERROR: must have input for -a")
	}

	o.IntersectBed = loadConfig(*configFile, "").IntersectBed
	o.MinRatio = *minRatio
	o.NoPlot = *noPlot
	o.Mirrored = *mirrored
	if *genomeFile != "" {
		o.Layout, err = genome.ReadLayout(*genomeFile, config.ChromList(*chroms))
		if err != nil {
			errExit("ERROR: " + err.Error())
		}
	}

	if _, err = loh.Finalize(*dir, o); err != nil {
		errExit("ERROR: " + err.Error())
	}
}
