package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dasnellings/cnvTools/baf"
	"github.com/vertgenlab/gonomics/exception"
)

func bafUsage(bafFlags *flag.FlagSet) {
	fmt.Print(
		"baf - build the BAF table (ADTEx input) and the SNP table (saasCNV input) from a vcf\n\n" +
			"Usage:\n" +
			"  cnvtools baf [options] -v pair.vcf -o baf.txt\n\n" +
			"Options:\n")
	bafFlags.PrintDefaults()
}

func runBaf(args []string) {
	var err error
	bafFlags := flag.NewFlagSet("baf", flag.ExitOnError)
	o := baf.NewOptions()

	input := bafFlags.String("v", "", "Input VCF.")
	output := bafFlags.String("o", "", "Output BAF table.")
	snps := bafFlags.String("snps", "", "Output SNP table. Default: <-o>.snps.txt")
	tumorId := bafFlags.String("tumorId", "", "Tumor sample id. Overrides -ct.")
	normalId := bafFlags.String("normalId", "", "Normal sample id. Overrides -cn.")
	colTumor := bafFlags.Int("ct", o.TumorCol, "VCF column of the tumor sample, 1-based.")
	colNormal := bafFlags.Int("cn", o.NormalCol, "VCF column of the normal sample, 1-based.")
	mq := bafFlags.Float64("mq", o.MqCutoff, "Keep SNPs with MQ above this value.")
	chroms := bafFlags.String("chroms", o.Chroms, "Comma separated chromosomes to keep.")
	summary := bafFlags.Bool("summary", false, "Print per-chromosome BAF statistics to stdout.")

	err = bafFlags.Parse(args)
	exception.PanicOnErr(err)
	bafFlags.Usage = func() { bafUsage(bafFlags) }

	if *input == "" || *output == "" {
		bafFlags.Usage()
		errExit("\nERROR: must have inputs for -v and -o")
	}

	o.VcfPath = *input
	o.BafPath = *output
	o.SnpPath = *snps
	o.TumorId = *tumorId
	o.NormalId = *normalId
	o.TumorCol = *colTumor
	o.NormalCol = *colNormal
	o.MqCutoff = *mq
	o.Chroms = *chroms

	if _, err = baf.FromVcf(o); err != nil {
		errExit("ERROR: " + err.Error())
	}
	if !*summary {
		return
	}
	rows, err := baf.ReadTable(o.BafPath)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	err = baf.WriteSummary(os.Stdout, baf.Summarize(rows))
	exception.PanicOnErr(err)
}
