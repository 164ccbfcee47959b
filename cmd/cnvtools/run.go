package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/dasnellings/cnvTools/pipeline"
	"github.com/vertgenlab/gonomics/exception"
)

func runUsage(runFlags *flag.FlagSet) {
	fmt.Print(
		"run - run the CNV pipeline for one tumor/normal pair\n" +
			"\ttrim (optional) -> baf -> genome file -> coverage -> ADTEx -> saasCNV (optional) -> LOH\n\n" +
			"Usage:\n" +
			"  cnvtools run [options] -v pair.vcf -s sampleDir -t tumor.bam -n normal.bam\n\n" +
			"Options:\n")
	runFlags.PrintDefaults()
}

func runPipeline(args []string) {
	var err error
	runFlags := flag.NewFlagSet("run", flag.ExitOnError)
	o := pipeline.NewOptions()

	vcfPath := runFlags.String("v", "", "VCF file for sample pair.")
	sampleDir := runFlags.String("s", "", "Sample-specific output directory. Must be unique per sample to prevent overwriting.")
	tumorBam := runFlags.String("t", "", "Tumor BAM.")
	normalBam := runFlags.String("n", "", "Normal BAM.")
	adtexDir := runFlags.String("a", "", "ADTEx output directory. Default: sampleDir/adtex_output")
	target := runFlags.String("b", "", "Target regions BED. Default: CODING_REGIONS from the config.")
	ref := runFlags.String("r", "", "Reference FASTA (indexed, .fai). When set with -tumorId the vcf is trimmed with GATK first.")
	tumorId := runFlags.String("tumorId", "", "Tumor sample id in the vcf. Samples are found by column when empty.")
	normalId := runFlags.String("normalId", "", "Normal sample id in the vcf. Default for trimming: tumorId + \"N\"")
	colTumor := runFlags.Int("ct", o.TumorCol, "VCF column of the tumor sample, 1-based.")
	colNormal := runFlags.Int("cn", o.NormalCol, "VCF column of the normal sample, 1-based.")
	mq := runFlags.Float64("mq", o.MqCutoff, "Keep SNPs with MQ above this value.")
	chroms := runFlags.String("chroms", "", "Comma separated chromosomes to keep. Default: chroms from the config.")
	ratioMin := runFlags.Float64("ratioMin", o.RatioMin, "Trim: minimum normal alt allele fraction (exclusive).")
	ratioMax := runFlags.Float64("ratioMax", o.RatioMax, "Trim: maximum normal alt allele fraction (exclusive).")
	minDepthN := runFlags.Int("minDepthN", o.MinDepthN, "Trim: minimum normal depth.")
	minDepthT := runFlags.Int("minDepthT", o.MinDepthT, "Trim: minimum tumor depth.")
	minGqN := runFlags.Int("minGqN", o.MinGqN, "Trim: normal GQ must be above this value.")
	ploidy := runFlags.Int("ploidy", o.Ploidy, "Most common ploidy in the tumour sample.")
	minReadDepth := runFlags.Int("minReadDepth", o.MinReadDepth, "The threshold for minimum read depth for each exon.")
	minRatio := runFlags.Float64("minLohRatio", o.MinLohRatio, "LOH intervals where LOH SNPs span less than this fraction are trimmed to the SNPs.")
	noPlot := runFlags.Bool("noPlot", false, "Do not plot LOH.")
	preview := runFlags.Bool("preview", false, "Log an ascii plot of the tumor BAF.")
	configFile := runFlags.String("c", "", "Config yaml. Default: "+defaultConfigFile+" next to the sample directory, if present.")

	err = runFlags.Parse(args)
	exception.PanicOnErr(err)
	runFlags.Usage = func() { runUsage(runFlags) }

	if *vcfPath == "" || *sampleDir == "" || *tumorBam == "" || *normalBam == "" {
		runFlags.Usage()
		errExit("\nERROR: must have inputs for -v, -s, -t, and -n")
	}

	o.Config = loadConfig(*configFile, *sampleDir)
	o.VcfPath = *vcfPath
	o.SampleDir = *sampleDir
	o.TumorBam = *tumorBam
	o.NormalBam = *normalBam
	o.AdtexDir = *adtexDir
	o.TargetPath = *target
	o.Reference = *ref
	o.TumorId = *tumorId
	o.NormalId = *normalId
	o.TumorCol = *colTumor
	o.NormalCol = *colNormal
	o.MqCutoff = *mq
	o.Chroms = *chroms
	o.RatioMin, o.RatioMax = *ratioMin, *ratioMax
	o.MinDepthN, o.MinDepthT, o.MinGqN = *minDepthN, *minDepthT, *minGqN
	o.Ploidy = *ploidy
	o.MinReadDepth = *minReadDepth
	o.MinLohRatio = *minRatio
	o.NoPlot = *noPlot
	o.Preview = *preview

	m, err := pipeline.Run(o)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	log.Printf("run %s complete\n", m.RunId)
}
