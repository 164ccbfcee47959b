package main

import (
	"flag"
	"fmt"

	"github.com/dasnellings/cnvTools/trim"
	"github.com/vertgenlab/gonomics/exception"
)

func trimUsage(trimFlags *flag.FlagSet) {
	fmt.Print(
		"trim - select biallelic SNPs that are heterozygous in the normal with GATK SelectVariants\n\n" +
			"Usage:\n" +
			"  cnvtools trim [options] -v pair.vcf -r reference.fasta -tumorId T1 -s sampleDir\n\n" +
			"Options:\n")
	trimFlags.PrintDefaults()
}

func runTrim(args []string) {
	var err error
	trimFlags := flag.NewFlagSet("trim", flag.ExitOnError)
	o := trim.NewOptions()

	input := trimFlags.String("v", "", "Input VCF with tumor and normal samples.")
	ref := trimFlags.String("r", "", "Reference FASTA file. Must be indexed (.fai).")
	sampleDir := trimFlags.String("s", "", "Sample directory. Output goes to sampleDir/snps_trimmed.vcf unless -o is set.")
	output := trimFlags.String("o", "", "Output VCF.")
	tumorId := trimFlags.String("tumorId", "", "Tumor sample id.")
	normalId := trimFlags.String("normalId", "", "Normal sample id. Default: tumorId + \"N\"")
	ratioMin := trimFlags.Float64("ratioMin", o.RatioMin, "Minimum normal alt allele fraction (exclusive).")
	ratioMax := trimFlags.Float64("ratioMax", o.RatioMax, "Maximum normal alt allele fraction (exclusive).")
	minDepthN := trimFlags.Int("minDepthN", o.MinDepthN, "Minimum normal depth.")
	minDepthT := trimFlags.Int("minDepthT", o.MinDepthT, "Minimum tumor depth.")
	minGqN := trimFlags.Int("minGqN", o.MinGqN, "Normal GQ must be above this value.")
	configFile := trimFlags.String("c", "", "Config yaml.")

	err = trimFlags.Parse(args)
	exception.PanicOnErr(err)
	trimFlags.Usage = func() { trimUsage(trimFlags) }

	if *input == "" || *ref == "" || *tumorId == "" {
		trimFlags.Usage()
		errExit("\nERROR: must have inputs for -v, -r, and -tumorId")
	}

	o.Gatk = loadConfig(*configFile, *sampleDir).Gatk
	o.VcfIn = *input
	o.VcfOut = *output
	o.SampleDir = *sampleDir
	o.Reference = *ref
	o.TumorId = *tumorId
	o.NormalId = *normalId
	o.RatioMin, o.RatioMax = *ratioMin, *ratioMax
	o.MinDepthN, o.MinDepthT, o.MinGqN = *minDepthN, *minDepthT, *minGqN

	if _, err = trim.Trim(o); err != nil {
		errExit("ERROR: " + err.Error())
	}
}
