// Package saascnv runs the saasCNV R driver on a SNP table and reads the resulting CNV calls.
package saascnv

import (
	"log"
	"os"
	"path/filepath"

	"github.com/dasnellings/cnvTools/config"
	"github.com/dasnellings/cnvTools/genome"
	"github.com/dasnellings/cnvTools/shell"
	"github.com/dasnellings/cnvTools/tsv"
	"github.com/pkg/errors"
)

// Options for Run.
type Options struct {
	Rscript  string // configured Rscript command
	Driver   string // R script that runs saasCNV
	SnpTable string
	OutDir   string
	LogPath  string // defaults to OutDir/run_info.txt
}

// NewOptions returns Options that use Rscript from $PATH.
func NewOptions() Options {
	return Options{Rscript: "Rscript"}
}

// Command builds the saasCNV command line.
func Command(o Options) *shell.Cmd {
	c := shell.Command(o.Rscript, o.Driver, o.SnpTable, o.OutDir)
	c.Stdout = o.LogPath
	c.Stderr = o.LogPath
	return c
}

// Run runs the saasCNV driver and waits for it to finish.
func Run(o Options) error {
	switch {
	case len(config.Argv(o.Rscript)) == 0:
		return errors.New("Rscript is not configured")
	case o.Driver == "":
		return errors.New("saasCNV driver script is not configured")
	case o.SnpTable == "":
		return errors.New("saasCNV requires a SNP table")
	case o.OutDir == "":
		return errors.New("saasCNV requires an output directory")
	}
	if _, err := os.Stat(o.SnpTable); err != nil {
		return errors.Wrap(err, "saasCNV input")
	}
	if o.LogPath == "" {
		o.LogPath = filepath.Join(o.OutDir, "run_info.txt")
	}
	if err := os.MkdirAll(o.OutDir, 0755); err != nil {
		return errors.Wrap(err, "could not create saasCNV output directory")
	}

	log.Println("running saasCNV")
	if err := shell.Run(Command(o)); err != nil {
		return errors.Wrapf(err, "saasCNV failed, see %s", o.LogPath)
	}
	log.Println("saasCNV run complete")
	return nil
}

// CNV states reported by saasCNV.
const (
	Gain    string = "gain"
	Loss    string = "loss"
	Loh     string = "LOH"
	Neutral string = "normal"
)

// Call is one segment of seq.cnv.txt. Start and End are 1-based and inclusive.
type Call struct {
	Chrom string
	Start int
	End   int
	Cnv   string
}

// IsLoss is true for copy loss and copy neutral LOH.
func (c Call) IsLoss() bool {
	return c.Cnv == Loss || c.Cnv == Loh
}

// IsGain is true for copy gain.
func (c Call) IsGain() bool {
	return c.Cnv == Gain
}

// CallsPath returns the segment calls inside a saasCNV output directory.
func CallsPath(dir string) string {
	return filepath.Join(dir, "mid_res", "seq.cnv.txt")
}

// ReadCalls reads seq.cnv.txt. Chromosome names are normalized with genome.Normalize.
func ReadCalls(path string) ([]Call, error) {
	r, err := tsv.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	cols, err := r.Columns("chr", "posStart", "posEnd", "CNV")
	if err != nil {
		return nil, err
	}

	var ans []Call
	var c Call
	for r.Next() {
		if c.Chrom, err = r.Field(cols[0]); err != nil {
			return nil, err
		}
		c.Chrom = genome.Normalize(c.Chrom)
		if c.Start, err = r.Int(cols[1]); err != nil {
			return nil, err
		}
		if c.End, err = r.Int(cols[2]); err != nil {
			return nil, err
		}
		if c.Cnv, err = r.Field(cols[3]); err != nil {
			return nil, err
		}
		if c.End < c.Start {
			return nil, errors.Errorf("%s: segment %s:%d-%d ends before it starts", path, c.Chrom, c.Start, c.End)
		}
		ans = append(ans, c)
	}
	return ans, nil
}
