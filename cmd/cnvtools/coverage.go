package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/dasnellings/cnvTools/coverage"
	"github.com/vertgenlab/gonomics/exception"
)

func coverageUsage(coverageFlags *flag.FlagSet) {
	fmt.Print(
		"coverage - build the genome file from the normal bam header and per-base coverage of the target regions\n" +
			"\tExisting coverage files are kept.\n\n" +
			"Usage:\n" +
			"  cnvtools coverage [options] -s sampleDir -t tumor.bam -n normal.bam\n\n" +
			"Options:\n")
	coverageFlags.PrintDefaults()
}

func runCoverage(args []string) {
	var err error
	coverageFlags := flag.NewFlagSet("coverage", flag.ExitOnError)

	sampleDir := coverageFlags.String("s", "", "Sample directory for genome.txt, tumor_cov.bed and normal_cov.bed.")
	tumorBam := coverageFlags.String("t", "", "Tumor BAM.")
	normalBam := coverageFlags.String("n", "", "Normal BAM.")
	target := coverageFlags.String("b", "", "Target regions BED. Default: CODING_REGIONS from the config.")
	configFile := coverageFlags.String("c", "", "Config yaml.")

	err = coverageFlags.Parse(args)
	exception.PanicOnErr(err)
	coverageFlags.Usage = func() { coverageUsage(coverageFlags) }

	if *sampleDir == "" || *tumorBam == "" || *normalBam == "" {
		coverageFlags.Usage()
		errExit("\nERROR: must have inputs for -s, -t, and -n")
	}

	cfg := loadConfig(*configFile, *sampleDir)
	if *target == "" {
		*target = cfg.CodingRegions
	}
	if *target == "" {
		errExit("ERROR: no target bed given and CODING_REGIONS is not configured")
	}

	o := coverage.Options{
		Bedtools:      cfg.Bedtools,
		TumorBam:      *tumorBam,
		NormalBam:     *normalBam,
		GenomePath:    filepath.Join(*sampleDir, "genome.txt"),
		TargetPath:    *target,
		TumorCovPath:  filepath.Join(*sampleDir, "tumor_cov.bed"),
		NormalCovPath: filepath.Join(*sampleDir, "normal_cov.bed"),
	}
	if err = coverage.BuildGenomeFile(cfg.Samtools, o.NormalBam, o.GenomePath); err != nil {
		errExit("ERROR: " + err.Error())
	}
	if err = coverage.BuildCoverageFiles(o); err != nil {
		errExit("ERROR: " + err.Error())
	}
}
