package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/dasnellings/cnvTools/adtex"
	"github.com/vertgenlab/gonomics/exception"
)

func adtexUsage(adtexFlags *flag.FlagSet) {
	fmt.Print(
		"adtex - run ADTEx on the coverage and BAF files of a sample directory\n\n" +
			"Usage:\n" +
			"  cnvtools adtex [options] -s sampleDir\n\n" +
			"Options:\n")
	adtexFlags.PrintDefaults()
}

func runAdtex(args []string) {
	var err error
	adtexFlags := flag.NewFlagSet("adtex", flag.ExitOnError)
	o := adtex.NewOptions()

	sampleDir := adtexFlags.String("s", "", "Sample directory with baf.txt, tumor_cov.bed and normal_cov.bed.")
	outDir := adtexFlags.String("a", "", "ADTEx output directory. Default: sampleDir/adtex_output")
	target := adtexFlags.String("b", "", "Target regions BED. Default: CODING_REGIONS from the config.")
	ploidy := adtexFlags.Int("ploidy", o.Ploidy, "Most common ploidy in the tumour sample.")
	minReadDepth := adtexFlags.Int("minReadDepth", o.MinReadDepth, "The threshold for minimum read depth for each exon.")
	configFile := adtexFlags.String("c", "", "Config yaml.")

	err = adtexFlags.Parse(args)
	exception.PanicOnErr(err)
	adtexFlags.Usage = func() { adtexUsage(adtexFlags) }

	if *sampleDir == "" {
		adtexFlags.Usage()
		errExit("\nERROR: must have input for -s")
	}

	cfg := loadConfig(*configFile, *sampleDir)
	if *target == "" {
		*target = cfg.CodingRegions
	}
	if *outDir == "" {
		*outDir = filepath.Join(*sampleDir, "adtex_output")
	}
	o.Python2 = cfg.Python2
	o.Script = cfg.Adtex
	o.NormalCov = filepath.Join(*sampleDir, "normal_cov.bed")
	o.TumorCov = filepath.Join(*sampleDir, "tumor_cov.bed")
	o.BafPath = filepath.Join(*sampleDir, "baf.txt")
	o.OutDir = *outDir
	o.TargetPath = *target
	o.Ploidy = *ploidy
	o.MinReadDepth = *minReadDepth

	if err = adtex.Run(o); err != nil {
		errExit("ERROR: " + err.Error())
	}
}
