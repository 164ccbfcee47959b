// Package adtex runs ADTEx on tumor/normal exome coverage and reads its zygosity calls
// and CNV segments.
package adtex

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dasnellings/cnvTools/config"
	"github.com/dasnellings/cnvTools/shell"
	"github.com/pkg/errors"
)

// Options for Run.
type Options struct {
	Python2      string // configured python2 command
	Script       string // path to ADTEx.py
	NormalCov    string
	TumorCov     string
	OutDir       string
	BafPath      string
	TargetPath   string
	Ploidy       int
	MinReadDepth int
	LogPath      string // defaults to OutDir/run_info.txt
}

// NewOptions returns Options with ploidy 2 and a minimum read depth of 10.
func NewOptions() Options {
	return Options{Python2: "python2", Ploidy: 2, MinReadDepth: 10}
}

// Command builds the ADTEx command line.
func Command(o Options) *shell.Cmd {
	c := shell.Command(o.Python2, o.Script, "--DOC",
		"-n", o.NormalCov,
		"-t", o.TumorCov,
		"-o", o.OutDir,
		"--baf", o.BafPath,
		"--bed", o.TargetPath,
		"--estimatePloidy", "--plot",
		"--ploidy", strconv.Itoa(o.Ploidy),
		"--min_read_depth", strconv.Itoa(o.MinReadDepth))
	c.Stdout = o.LogPath
	c.Stderr = o.LogPath
	return c
}

// Run runs ADTEx and waits for it to finish. Output of ADTEx goes to o.LogPath.
func Run(o Options) error {
	switch {
	case len(config.Argv(o.Python2)) == 0:
		return errors.New("python2 is not configured")
	case o.Script == "":
		return errors.New("ADTEx script path is not configured")
	case o.OutDir == "":
		return errors.New("ADTEx requires an output directory")
	case o.Ploidy < 1:
		return errors.Errorf("invalid ploidy: %d", o.Ploidy)
	case o.MinReadDepth < 0:
		return errors.Errorf("invalid minimum read depth: %d", o.MinReadDepth)
	}
	if o.LogPath == "" {
		o.LogPath = filepath.Join(o.OutDir, "run_info.txt")
	}
	if err := os.MkdirAll(o.OutDir, 0755); err != nil {
		return errors.Wrap(err, "could not create ADTEx output directory")
	}

	log.Println("running ADTEx")
	if err := shell.Run(Command(o)); err != nil {
		return errors.Wrapf(err, "ADTEx failed, see %s", o.LogPath)
	}
	log.Println("ADTEx run complete")
	return nil
}
