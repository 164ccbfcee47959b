package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/dasnellings/cnvTools/saascnv"
	"github.com/vertgenlab/gonomics/exception"
)

func saasUsage(saasFlags *flag.FlagSet) {
	fmt.Print(
		"saas - run the configured saasCNV driver script on the SNP table of a sample directory\n\n" +
			"Usage:\n" +
			"  cnvtools saas [options] -s sampleDir\n\n" +
			"Options:\n")
	saasFlags.PrintDefaults()
}

func runSaas(args []string) {
	var err error
	saasFlags := flag.NewFlagSet("saas", flag.ExitOnError)

	sampleDir := saasFlags.String("s", "", "Sample directory with saas_snps.txt.")
	snps := saasFlags.String("i", "", "SNP table. Default: sampleDir/saas_snps.txt")
	outDir := saasFlags.String("o", "", "Output directory. Default: sampleDir/saasCNV_results")
	configFile := saasFlags.String("c", "", "Config yaml.")

	err = saasFlags.Parse(args)
	exception.PanicOnErr(err)
	saasFlags.Usage = func() { saasUsage(saasFlags) }

	if *sampleDir == "" && (*snps == "" || *outDir == "") {
		saasFlags.Usage()
		errExit("\nERROR: must have input for -s, or both -i and -o")
	}

	cfg := loadConfig(*configFile, *sampleDir)
	o := saascnv.NewOptions()
	o.Rscript = cfg.Rscript
	o.Driver = cfg.SaasCnv
	o.SnpTable = *snps
	o.OutDir = *outDir
	if o.SnpTable == "" {
		o.SnpTable = filepath.Join(*sampleDir, "saas_snps.txt")
	}
	if o.OutDir == "" {
		o.OutDir = filepath.Join(*sampleDir, "saasCNV_results")
	}

	if err = saascnv.Run(o); err != nil {
		errExit("ERROR: " + err.Error())
	}
}
