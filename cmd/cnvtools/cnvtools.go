package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/dasnellings/cnvTools/config"
)

const version string = "0.1.0"
const gonomicsVersion string = "1.0.1-0.20240426183757-e6c6ab634c20"

type subcommand struct {
	name     string
	function func(args []string)
	blurb    string
}

// SubCommands contains all valid subcommands.
// New subcommands can be added to cnvtools by adding a new entry to this array.
var SubCommands = []*subcommand{
	{"run", runPipeline, "run the full CNV pipeline for a tumor/normal pair"},
	{"trim", runTrim, "select high quality germline het SNPs with GATK"},
	{"baf", runBaf, "build BAF and saasCNV SNP tables from a vcf"},
	{"coverage", runCoverage, "build the genome file and per-base target coverage"},
	{"adtex", runAdtex, "run ADTEx on existing coverage and BAF files"},
	{"saas", runSaas, "run saasCNV on a SNP table"},
	{"loh", runLoh, "trim and plot LOH intervals from ADTEx output"},
	{"plotcase", runPlotCase, "plot saasCNV results for each case in a samples table"},
	{"check", runCheck, "report which external programs can be found"},
}

func usage() {
	fmt.Print(usageText())
}

func usageText() string {
	s := new(strings.Builder)
	s.WriteString(
		"Program: cnvtools (somatic CNV and LOH pipeline for tumor/normal pairs)\n" +
			"Version: " + version + " (gonomics " + gonomicsVersion + ")\n" +
			"\nUsage:\tcnvtools <command> [options]\n\n" +
			"Commands:\n")

	// add subcommand text via tabwriter so the columns align
	w := tabwriter.NewWriter(s, 0, 8, 5, '\t', tabwriter.AlignRight)
	for i := range SubCommands {
		fmt.Fprintf(w, "\t%s\t%s\n", SubCommands[i].name, SubCommands[i].blurb)
	}
	w.Flush()
	return s.String()
}

// commandMap builds a map of possible subcommands keyed on the name of the subcommand
func commandMap() map[string]func(args []string) {
	m := make(map[string]func(args []string))
	for i := range SubCommands {
		m[SubCommands[i].name] = SubCommands[i].function
	}
	return m
}

func main() {
	flag.Usage = usage
	flag.Parse()

	// check if first argument is a valid subcommand
	command := commandMap()[flag.Arg(0)]

	// if no command is found, print the usage and return
	if command == nil {
		flag.Usage()
		return
	}

	// if command successfully found, pass in remaining arguments and execute
	command(flag.Args()[1:])
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// defaultConfigFile is looked for next to the sample directory when -c is not given.
const defaultConfigFile string = "cnvtools.yaml"

// loadConfig reads the config file, environment overrides applied.
func loadConfig(file, sampleDir string) config.Config {
	if file == "" && sampleDir != "" {
		candidate := filepath.Join(filepath.Dir(filepath.Clean(sampleDir)), defaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			file = candidate
		}
	}
	c, err := config.Load(file)
	if err != nil {
		errExit("ERROR: " + err.Error())
	}
	return c
}
