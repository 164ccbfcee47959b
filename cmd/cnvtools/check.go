package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dasnellings/cnvTools/config"
	"github.com/vertgenlab/gonomics/exception"
)

func checkUsage(checkFlags *flag.FlagSet) {
	fmt.Print(
		"check - report which configured programs and files can be found\n\n" +
			"Usage:\n" +
			"  cnvtools check [options]\n\n" +
			"Options:\n")
	checkFlags.PrintDefaults()
}

func runCheck(args []string) {
	var err error
	checkFlags := flag.NewFlagSet("check", flag.ExitOnError)
	configFile := checkFlags.String("c", "", "Config yaml.")

	err = checkFlags.Parse(args)
	exception.PanicOnErr(err)
	checkFlags.Usage = func() { checkUsage(checkFlags) }

	cfg := loadConfig(*configFile, "")
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "found\tname\tcommand")
	for _, p := range []struct{ name, command string }{
		{"gatk", cfg.Gatk},
		{"samtools", cfg.Samtools},
		{"bedtools", cfg.Bedtools},
		{"intersectBed", cfg.IntersectBed},
		{"python2", cfg.Python2},
		{"Rscript", cfg.Rscript},
	} {
		fmt.Fprintf(w, "%s\t%s\t%s\n", config.HasProg(p.command), p.name, p.command)
	}
	for _, f := range []struct{ name, path string }{
		{"ADTEx", cfg.Adtex},
		{"saasCNV", cfg.SaasCnv},
		{"codingRegions", cfg.CodingRegions},
	} {
		fmt.Fprintf(w, "%s\t%s\t%s\n", hasFile(f.path), f.name, f.path)
	}
	err = w.Flush()
	exception.PanicOnErr(err)

	if missing := cfg.Missing(); len(missing) > 0 {
		errExit(fmt.Sprintf("\nmissing programs: %v", missing))
	}
}

func hasFile(path string) string {
	if path == "" {
		return " "
	}
	if _, err := os.Stat(path); err == nil {
		return "Y"
	}
	return " "
}
