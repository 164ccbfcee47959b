// Package coverage builds the genome file and the per-base target coverage files of a
// tumor/normal pair with samtools and bedtools.
package coverage

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dasnellings/cnvTools/genome"
	"github.com/dasnellings/cnvTools/shell"
	"github.com/pkg/errors"
	"github.com/vertgenlab/gonomics/bed"
	"github.com/vertgenlab/gonomics/chromInfo"
	"github.com/vertgenlab/gonomics/fileio"
	"github.com/vertgenlab/gonomics/sam"
)

// BuildGenomeFile writes the reference sequences of bam as "name<TAB>length" lines,
// the genome file format used by bedtools -sorted. The header is read with
// "samtools view -H" when samtools is configured, otherwise directly from the bam.
func BuildGenomeFile(samtools, bam, genomePath string) error {
	var seqs []chromInfo.ChromInfo
	var err error
	if samtools != "" {
		err = shell.Stream(shell.Command(samtools, "view", "-H", bam), func(r io.Reader) error {
			seqs, err = ParseHeader(r)
			return err
		})
	} else {
		seqs, err = readBamHeader(bam)
	}
	if err != nil {
		return err
	}
	if len(seqs) == 0 {
		return errors.Errorf("no @SQ lines in header of %s", bam)
	}
	return WriteGenome(genomePath, seqs)
}

func readBamHeader(bam string) ([]chromInfo.ChromInfo, error) {
	if _, err := os.Stat(bam); err != nil {
		return nil, errors.Wrap(err, "could not read bam header")
	}
	reader, header := sam.OpenBam(bam)
	err := reader.Close()
	if err != nil {
		return nil, err
	}
	return header.Chroms, nil
}

// ParseHeader reads the @SQ lines of a SAM header.
func ParseHeader(r io.Reader) ([]chromInfo.ChromInfo, error) {
	var ans []chromInfo.ChromInfo
	var curr chromInfo.ChromInfo
	var err error
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for s.Scan() {
		line := s.Text()
		if !strings.HasPrefix(line, "@SQ\t") {
			continue
		}
		curr = chromInfo.ChromInfo{Size: -1, Order: len(ans)}
		for _, tag := range strings.Split(line, "\t")[1:] {
			switch {
			case strings.HasPrefix(tag, "SN:"):
				curr.Name = tag[3:]
			case strings.HasPrefix(tag, "LN:"):
				if curr.Size, err = strconv.Atoi(tag[3:]); err != nil {
					return nil, errors.Wrapf(err, "bad sequence length in: %s", line)
				}
			}
		}
		if curr.Name == "" || curr.Size < 0 {
			return nil, errors.Errorf("@SQ line without SN or LN: %s", line)
		}
		ans = append(ans, curr)
	}
	return ans, errors.Wrap(s.Err(), "could not read sam header")
}

// WriteGenome writes seqs in genome file format.
func WriteGenome(path string, seqs []chromInfo.ChromInfo) error {
	out := fileio.EasyCreate(path)
	for i := range seqs {
		if _, err := fmt.Fprintf(out, "%s\t%d\n", seqs[i].Name, seqs[i].Size); err != nil {
			_ = out.Close()
			return err
		}
	}
	return out.Close()
}

// Options for BuildCoverageFiles.
type Options struct {
	Bedtools      string
	TumorBam      string
	NormalBam     string
	GenomePath    string
	TargetPath    string
	TumorCovPath  string
	NormalCovPath string
}

// BuildCoverageFiles runs "bedtools coverage -d -sorted" over the target regions for
// the tumor and the normal bam. A coverage file that already exists is kept.
// Output is written to a temporary name and moved into place once bedtools succeeds.
func BuildCoverageFiles(o Options) error {
	if err := CheckTargets(o.TargetPath, o.GenomePath); err != nil {
		return err
	}
	for _, s := range []struct{ which, bam, out string }{
		{"tumor", o.TumorBam, o.TumorCovPath},
		{"normal", o.NormalBam, o.NormalCovPath},
	} {
		if _, err := os.Stat(s.out); err == nil {
			log.Printf("coverage file for %s exists. Skipping.\n", s.which)
			continue
		}
		log.Printf("generating coverage for %s\n", s.bam)
		c := Command(o.Bedtools, o.GenomePath, o.TargetPath, s.bam)
		c.Stdout = s.out + ".tmp"
		if err := shell.Run(c); err != nil {
			_ = os.Remove(c.Stdout)
			return err
		}
		if err := os.Rename(c.Stdout, s.out); err != nil {
			return err
		}
	}
	return nil
}

// Command builds the bedtools coverage command for one bam.
func Command(bedtools, genomePath, target, bam string) *shell.Cmd {
	return shell.Command(bedtools, "coverage", "-g", genomePath, "-d", "-sorted", "-a", target, "-b", bam)
}

// CheckTargets verifies that every chromosome of the target bed is in the genome file
// and that targets follow the genome file order, as required by bedtools -sorted.
func CheckTargets(targetPath, genomePath string) error {
	for _, p := range []string{targetPath, genomePath} {
		if _, err := os.Stat(p); err != nil {
			return errors.Wrap(err, "coverage input missing")
		}
	}
	var names []string
	for _, c := range chromInfo.ReadToSlice(genomePath) {
		names = append(names, c.Name)
	}
	order := genome.NewOrder(names)

	targets := bed.Read(targetPath)
	if len(targets) == 0 {
		return errors.Errorf("no regions in target file %s", targetPath)
	}
	for i := range targets {
		if !order.Has(targets[i].Chrom) {
			return errors.Errorf("target chromosome %s is not in genome file %s", targets[i].Chrom, genomePath)
		}
		if i == 0 {
			continue
		}
		switch {
		case order.Rank(targets[i].Chrom) < order.Rank(targets[i-1].Chrom):
			return errors.Errorf("targets are not sorted in genome file order at %s", bed.ToString(targets[i], 3))
		case order.Less(targets[i].Chrom, targets[i].ChromStart, targets[i-1].Chrom, targets[i-1].ChromStart):
			return errors.Errorf("targets are not coordinate sorted at %s", bed.ToString(targets[i], 3))
		}
	}
	log.Printf("%d target regions in %s\n", len(targets), targetPath)
	return nil
}
