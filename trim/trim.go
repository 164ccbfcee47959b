// Package trim selects the germline-heterozygous, well covered, biallelic SNPs of a
// tumor/normal VCF using GATK SelectVariants.
package trim

import (
	"log"
	"path/filepath"
	"strconv"

	"github.com/dasnellings/cnvTools/config"
	"github.com/dasnellings/cnvTools/fai"
	"github.com/dasnellings/cnvTools/shell"
	"github.com/pkg/errors"
	"github.com/valyala/fasttemplate"
)

const selectExpression string = `vc.getGenotype("{normal}").isHet() ` +
	`&& vc.getGenotype("{normal}").getDP() > {minDepthN} ` +
	`&& vc.getGenotype("{tumor}").getDP() > {minDepthT} ` +
	`&& vc.getGenotype("{normal}").getGQ() > {minGqN} ` +
	`&& 1.0 * vc.getGenotype("{normal}").getAD().1 /  vc.getGenotype("{normal}").getDP() > {ratioMin} ` +
	`&& 1.0 * vc.getGenotype("{normal}").getAD().1 /  vc.getGenotype("{normal}").getDP() < {ratioMax}`

// Options for Trim. Thresholds are used as given, so start from NewOptions to get
// the defaults. A depth threshold of 0 accepts any depth.
type Options struct {
	Gatk      string // configured gatk command
	VcfIn     string
	VcfOut    string // defaults to SampleDir/snps_trimmed.vcf
	SampleDir string
	Reference string
	TumorId   string
	NormalId  string // defaults to TumorId + "N"
	RatioMin  float64
	RatioMax  float64
	MinDepthN int
	MinDepthT int
	MinGqN    int
}

// NewOptions returns Options with the default thresholds.
func NewOptions() Options {
	return Options{
		Gatk:      "gatk",
		RatioMin:  0.4,
		RatioMax:  0.6,
		MinDepthN: 10,
		MinDepthT: 20,
		MinGqN:    90,
	}
}

// Resolve fills in derived defaults and checks required fields.
func (o *Options) Resolve() error {
	if len(config.Argv(o.Gatk)) == 0 {
		return errors.New("gatk is not configured")
	}
	if o.TumorId == "" {
		return errors.New("trim requires a tumor sample id")
	}
	if o.NormalId == "" {
		o.NormalId = o.TumorId + "N"
	}
	if o.VcfOut == "" {
		if o.SampleDir == "" {
			return errors.New("trim requires an output vcf or a sample directory")
		}
		o.VcfOut = filepath.Join(o.SampleDir, "snps_trimmed.vcf")
	}
	if o.VcfIn == "" || o.Reference == "" {
		return errors.New("trim requires an input vcf and a reference fasta")
	}
	if o.MinDepthN < 0 || o.MinDepthT < 0 {
		return errors.Errorf("depth thresholds must not be negative: %d, %d", o.MinDepthN, o.MinDepthT)
	}
	if o.RatioMin >= o.RatioMax {
		return errors.Errorf("ratio window is empty: %g >= %g", o.RatioMin, o.RatioMax)
	}
	return nil
}

// SelectExpression returns the JEXL expression passed to SelectVariants -select.
// Depth cutoffs are inclusive, so they are written as "> min-1".
func SelectExpression(o Options) string {
	t := fasttemplate.New(selectExpression, "{", "}")
	return t.ExecuteString(map[string]interface{}{
		"normal":    o.NormalId,
		"tumor":     o.TumorId,
		"minDepthN": strconv.Itoa(o.MinDepthN - 1),
		"minDepthT": strconv.Itoa(o.MinDepthT - 1),
		"minGqN":    strconv.Itoa(o.MinGqN),
		"ratioMin":  strconv.FormatFloat(o.RatioMin, 'f', -1, 64),
		"ratioMax":  strconv.FormatFloat(o.RatioMax, 'f', -1, 64),
	})
}

// Command builds the SelectVariants command for o. o must be resolved.
func Command(o Options) *shell.Cmd {
	return shell.Command(o.Gatk, "SelectVariants",
		"-R", o.Reference,
		"-V", o.VcfIn,
		"-sn", o.NormalId,
		"-sn", o.TumorId,
		"--select-type-to-include", "SNP",
		"--restrict-alleles-to", "BIALLELIC",
		"-select", SelectExpression(o),
		"--output", o.VcfOut)
}

// Trim writes the filtered vcf and returns its path.
func Trim(o Options) (string, error) {
	if err := o.Resolve(); err != nil {
		return "", err
	}
	idx, err := fai.ReadIndex(fai.IndexPath(o.Reference))
	if err != nil {
		return "", errors.Wrap(err, "reference must be indexed with samtools faidx")
	}
	names := idx.Names()
	if len(names) == 0 {
		return "", errors.Errorf("fasta index of %s lists no sequences", o.Reference)
	}
	log.Printf("reference %s: %d sequences\n", o.Reference, len(names))
	if err = shell.Run(Command(o)); err != nil {
		return "", err
	}
	log.Println("created vcf:", o.VcfOut)
	return o.VcfOut, nil
}
