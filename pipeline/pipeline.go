// Package pipeline runs the CNV workflow of one tumor/normal pair: vcf trimming,
// BAF tables, coverage, ADTEx, saasCNV and the LOH post-processing.
package pipeline

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dasnellings/cnvTools/adtex"
	"github.com/dasnellings/cnvTools/baf"
	"github.com/dasnellings/cnvTools/config"
	"github.com/dasnellings/cnvTools/coverage"
	"github.com/dasnellings/cnvTools/genome"
	"github.com/dasnellings/cnvTools/loh"
	"github.com/dasnellings/cnvTools/plots"
	"github.com/dasnellings/cnvTools/saascnv"
	"github.com/dasnellings/cnvTools/shell"
	"github.com/dasnellings/cnvTools/trim"
	"github.com/pkg/errors"
)

// Stage names, in the order they run.
const (
	StageTrim     string = "trim"
	StageBaf      string = "baf"
	StageGenome   string = "genome"
	StageCoverage string = "coverage"
	StageAdtex    string = "adtex"
	StageSaas     string = "saascnv"
	StageLoh      string = "loh"
)

// Options for Run. Output paths left empty are placed in SampleDir.
type Options struct {
	Config    config.Config
	VcfPath   string
	SampleDir string
	TumorBam  string
	NormalBam string

	TargetPath string // defaults to Config.CodingRegions
	Reference  string // the vcf is trimmed with gatk when Reference and TumorId are set
	TumorId    string
	NormalId   string
	TumorCol   int
	NormalCol  int
	MqCutoff   float64
	Chroms     string // defaults to Config.Chroms

	RatioMin  float64
	RatioMax  float64
	MinDepthN int
	MinDepthT int
	MinGqN    int

	Ploidy       int
	MinReadDepth int
	MinLohRatio  float64
	NoPlot       bool
	Preview      bool // log an ascii plot of the tumor BAF

	BafPath       string
	SnpPath       string
	TumorCovPath  string
	NormalCovPath string
	GenomePath    string
	AdtexDir      string
	SaasDir       string
}

// NewOptions returns Options with the defaults of each stage.
func NewOptions() Options {
	t := trim.NewOptions()
	b := baf.NewOptions()
	a := adtex.NewOptions()
	return Options{
		Config:       config.Default(),
		TumorCol:     b.TumorCol,
		NormalCol:    b.NormalCol,
		MqCutoff:     b.MqCutoff,
		RatioMin:     t.RatioMin,
		RatioMax:     t.RatioMax,
		MinDepthN:    t.MinDepthN,
		MinDepthT:    t.MinDepthT,
		MinGqN:       t.MinGqN,
		Ploidy:       a.Ploidy,
		MinReadDepth: a.MinReadDepth,
		MinLohRatio:  loh.DefaultMinRatio,
	}
}

func setDefault(s *string, dir, name string) {
	if *s == "" {
		*s = filepath.Join(dir, name)
	}
}

// Resolve checks required inputs and fills in the default output paths.
func (o *Options) Resolve() error {
	var missing []string
	for _, r := range []struct{ flag, val string }{
		{"vcf", o.VcfPath},
		{"sample directory", o.SampleDir},
		{"tumor bam", o.TumorBam},
		{"normal bam", o.NormalBam},
	} {
		if r.val == "" {
			missing = append(missing, r.flag)
		}
	}
	if len(missing) > 0 {
		return errors.Errorf("missing required input: %s", strings.Join(missing, ", "))
	}
	if o.TargetPath == "" {
		o.TargetPath = o.Config.CodingRegions
	}
	if o.TargetPath == "" {
		return errors.New("no target bed given and CODING_REGIONS is not configured")
	}
	if o.Chroms == "" {
		o.Chroms = o.Config.Chroms
	}
	setDefault(&o.BafPath, o.SampleDir, "baf.txt")
	setDefault(&o.SnpPath, o.SampleDir, "saas_snps.txt")
	setDefault(&o.TumorCovPath, o.SampleDir, "tumor_cov.bed")
	setDefault(&o.NormalCovPath, o.SampleDir, "normal_cov.bed")
	setDefault(&o.GenomePath, o.SampleDir, "genome.txt")
	setDefault(&o.AdtexDir, o.SampleDir, "adtex_output")
	setDefault(&o.SaasDir, o.SampleDir, "saasCNV_results")
	return nil
}

// Run executes every stage in order and stops at the first failure. The manifest
// is written to the sample directory whether or not the run succeeds.
func Run(o Options) (m *Manifest, err error) {
	if err = o.Resolve(); err != nil {
		return nil, err
	}
	if err = os.MkdirAll(o.SampleDir, 0755); err != nil {
		return nil, errors.Wrap(err, "could not create sample directory")
	}
	m = newManifest(o.SampleDir)
	log.Printf("starting run %s in %s\n", m.RunId, o.SampleDir)
	defer func() {
		if werr := m.Write(filepath.Join(o.SampleDir, ManifestFile)); err == nil {
			err = werr
		}
	}()

	vcfPath := o.VcfPath
	if o.Reference != "" && o.TumorId != "" {
		err = m.run(StageTrim, func(s *Stage) error {
			t := trim.NewOptions()
			t.Gatk = o.Config.Gatk
			t.VcfIn = o.VcfPath
			t.SampleDir = o.SampleDir
			t.Reference = o.Reference
			t.TumorId = o.TumorId
			t.NormalId = o.NormalId
			t.RatioMin, t.RatioMax = o.RatioMin, o.RatioMax
			t.MinDepthN, t.MinDepthT, t.MinGqN = o.MinDepthN, o.MinDepthT, o.MinGqN
			if err := t.Resolve(); err != nil {
				return err
			}
			s.Commands = []string{trim.Command(t).String()}
			out, err := trim.Trim(t)
			if err != nil {
				return err
			}
			vcfPath = out
			o.NormalId = t.NormalId
			s.Outputs = []string{out}
			return nil
		})
		if err != nil {
			return m, err
		}
	} else {
		m.skip(StageTrim, "no reference or tumor id")
	}

	err = m.run(StageBaf, func(s *Stage) error {
		b := baf.NewOptions()
		b.VcfPath = vcfPath
		b.BafPath = o.BafPath
		b.SnpPath = o.SnpPath
		b.TumorId, b.NormalId = o.TumorId, o.NormalId
		b.TumorCol, b.NormalCol = o.TumorCol, o.NormalCol
		b.MqCutoff = o.MqCutoff
		b.Chroms = o.Chroms
		if _, err := baf.FromVcf(b); err != nil {
			return err
		}
		s.Outputs = []string{o.BafPath, o.SnpPath}
		return logBafSummary(o.BafPath, o.Preview)
	})
	if err != nil {
		return m, err
	}

	err = m.run(StageGenome, func(s *Stage) error {
		if o.Config.Samtools != "" {
			s.Commands = []string{shell.Command(o.Config.Samtools, "view", "-H", o.NormalBam).String()}
		}
		s.Outputs = []string{o.GenomePath}
		return coverage.BuildGenomeFile(o.Config.Samtools, o.NormalBam, o.GenomePath)
	})
	if err != nil {
		return m, err
	}

	err = m.run(StageCoverage, func(s *Stage) error {
		c := coverage.Options{
			Bedtools:      o.Config.Bedtools,
			TumorBam:      o.TumorBam,
			NormalBam:     o.NormalBam,
			GenomePath:    o.GenomePath,
			TargetPath:    o.TargetPath,
			TumorCovPath:  o.TumorCovPath,
			NormalCovPath: o.NormalCovPath,
		}
		s.Commands = []string{
			coverage.Command(c.Bedtools, c.GenomePath, c.TargetPath, c.TumorBam).String(),
			coverage.Command(c.Bedtools, c.GenomePath, c.TargetPath, c.NormalBam).String(),
		}
		s.Outputs = []string{o.TumorCovPath, o.NormalCovPath}
		return coverage.BuildCoverageFiles(c)
	})
	if err != nil {
		return m, err
	}

	err = m.run(StageAdtex, func(s *Stage) error {
		a := adtex.NewOptions()
		a.Python2 = o.Config.Python2
		a.Script = o.Config.Adtex
		a.NormalCov, a.TumorCov = o.NormalCovPath, o.TumorCovPath
		a.OutDir = o.AdtexDir
		a.BafPath = o.BafPath
		a.TargetPath = o.TargetPath
		a.Ploidy, a.MinReadDepth = o.Ploidy, o.MinReadDepth
		a.LogPath = filepath.Join(o.AdtexDir, "run_info.txt")
		s.Commands = []string{adtex.Command(a).String()}
		s.Outputs = []string{adtex.ZygosityPath(o.AdtexDir), adtex.CnvPath(o.AdtexDir)}
		return adtex.Run(a)
	})
	if err != nil {
		return m, err
	}

	if o.Config.SaasCnv != "" {
		err = m.run(StageSaas, func(s *Stage) error {
			sc := saascnv.NewOptions()
			sc.Rscript = o.Config.Rscript
			sc.Driver = o.Config.SaasCnv
			sc.SnpTable = o.SnpPath
			sc.OutDir = o.SaasDir
			sc.LogPath = filepath.Join(o.SaasDir, "run_info.txt")
			s.Commands = []string{saascnv.Command(sc).String()}
			s.Outputs = []string{saascnv.CallsPath(o.SaasDir)}
			return saascnv.Run(sc)
		})
		if err != nil {
			return m, err
		}
	} else {
		m.skip(StageSaas, "saasCNV driver not configured")
	}

	err = m.run(StageLoh, func(s *Stage) error {
		l := loh.NewOptions()
		l.IntersectBed = o.Config.IntersectBed
		l.MinRatio = o.MinLohRatio
		l.NoPlot = o.NoPlot
		res, err := loh.Finalize(o.AdtexDir, l)
		if err != nil {
			return err
		}
		s.Outputs = []string{filepath.Join(o.AdtexDir, loh.FinalFile), filepath.Join(o.AdtexDir, loh.DroppedFile)}
		if !o.NoPlot {
			s.Outputs = append(s.Outputs, filepath.Join(o.AdtexDir, loh.PlotFile))
		}
		log.Printf("%d of %d LOH intervals kept\n", len(res.Kept), len(res.Kept)+len(res.Dropped))
		return nil
	})
	return m, err
}

// logBafSummary logs per-chromosome BAF statistics and, if preview is set, an ascii
// plot of the tumor BAF.
func logBafSummary(bafPath string, preview bool) error {
	rows, err := baf.ReadTable(bafPath)
	if err != nil {
		return err
	}
	s := new(strings.Builder)
	if err = baf.WriteSummary(s, baf.Summarize(rows)); err != nil {
		return err
	}
	log.Printf("BAF summary:\n%s", s)
	if !preview {
		return nil
	}
	points := make([]plots.Point, len(rows))
	for i := range rows {
		points[i] = plots.Point{Chrom: rows[i].Chrom, Pos: rows[i].Pos, Y: rows[i].TumorBaf}
	}
	if g := plots.ASCII(points, genome.Hg19(true, true), 100, 10, "tumor BAF"); g != "" {
		log.Printf("\n%s\n", g)
	}
	return nil
}
