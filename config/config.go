// Package config resolves paths to the external programs driven by the pipeline.
package config

import (
	"os"
	"os/exec"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"
)

// DefaultChroms is the chromosome list used when none is given.
const DefaultChroms string = "1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20,21,22,X,Y,MT"

// Paths stores the command used for each external program. A command may have
// several words (e.g. "java -jar /opt/gatk.jar") and may reference environment variables.
type Paths struct {
	Gatk         string `yaml:"gatk" envconfig:"GATK_ALIAS"`
	Samtools     string `yaml:"samtools" envconfig:"CNV_SAMTOOLS"`
	Bedtools     string `yaml:"bedtools" envconfig:"CNV_BEDTOOLS"`
	IntersectBed string `yaml:"intersectBed" envconfig:"CNV_INTERSECTBED"`
	Python2      string `yaml:"python2" envconfig:"CNV_PYTHON2"`
	Adtex        string `yaml:"adtex" envconfig:"CNV_ADTEX"`
	Rscript      string `yaml:"rscript" envconfig:"CNV_RSCRIPT"`
	SaasCnv      string `yaml:"saasCNV" envconfig:"CNV_SAASCNV"`
}

// Config is read from a yaml file with a "paths" section. Paths is embedded so that
// environment variable names are not prefixed.
type Config struct {
	Paths         `yaml:"paths"`
	CodingRegions string `yaml:"codingRegions" envconfig:"CODING_REGIONS"`
	Chroms        string `yaml:"chroms" envconfig:"CNV_CHROMS"`
}

// Default returns a Config that expects every program to be on $PATH.
// ADTEx and the saasCNV driver have no sensible default and are left empty.
func Default() Config {
	var c Config
	c.Paths.Gatk = "gatk"
	c.Paths.Samtools = "samtools"
	c.Paths.Bedtools = "bedtools"
	c.Paths.IntersectBed = "intersectBed"
	c.Paths.Python2 = "python2"
	c.Paths.Rscript = "Rscript"
	c.Chroms = DefaultChroms
	return c
}

// Load reads a yaml config file on top of Default and then applies environment overrides.
// An empty filename skips the file.
func Load(filename string) (Config, error) {
	c := Default()
	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return c, errors.Wrap(err, "could not open config file")
		}
		err = yaml.NewDecoder(f).Decode(&c)
		closeErr := f.Close()
		if err != nil {
			return c, errors.Wrapf(err, "could not parse config file %s", filename)
		}
		if closeErr != nil {
			return c, closeErr
		}
	}

	err := envconfig.Process("", &c)
	if err != nil {
		return c, errors.Wrap(err, "could not read environment overrides")
	}
	return c, nil
}

// Argv splits a configured command into program and leading arguments.
// Environment variables are expanded when the command contains a '$'.
func Argv(command string) []string {
	if strings.Contains(command, "$") {
		command = os.ExpandEnv(command)
	}
	return strings.Fields(command)
}

// ChromList splits a comma separated chromosome list, dropping empty entries.
func ChromList(chroms string) []string {
	var ans []string
	for _, c := range strings.Split(chroms, ",") {
		c = strings.TrimSpace(c)
		if c != "" && !slices.Contains(ans, c) {
			ans = append(ans, c)
		}
	}
	return ans
}

// HasProg returns "Y" if the program of the configured command is found, otherwise " ".
func HasProg(command string) string {
	argv := Argv(command)
	if len(argv) == 0 {
		return " "
	}
	if _, err := exec.LookPath(argv[0]); err == nil {
		return "Y"
	}
	return " "
}

// Missing lists the names of the configured programs that cannot be found.
// Empty entries are reported as missing as well.
func (c Config) Missing() []string {
	var ans []string
	for _, p := range c.programs() {
		if HasProg(p.command) != "Y" {
			ans = append(ans, p.name)
		}
	}
	return ans
}

type program struct {
	name    string
	command string
}

func (c Config) programs() []program {
	return []program{
		{"gatk", c.Paths.Gatk},
		{"samtools", c.Paths.Samtools},
		{"bedtools", c.Paths.Bedtools},
		{"intersectBed", c.Paths.IntersectBed},
		{"python2", c.Paths.Python2},
		{"Rscript", c.Paths.Rscript},
	}
}
