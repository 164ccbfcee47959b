// Package baf derives B-allele frequency tables from a tumor/normal VCF. Two files are
// written: a SNP table with allele depths (input to saasCNV) and a BAF table with
// frequencies and total depths (input to ADTEx).
package baf

import (
	"fmt"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dasnellings/cnvTools/config"
	"github.com/pkg/errors"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"github.com/vertgenlab/gonomics/vcf"
	"golang.org/x/exp/slices"
)

// first sample column of a vcf, 1-based
const firstSampleCol int = 10

// SnpHeader is the header line of the SNP table.
const SnpHeader string = "CHROM\tPOS\tID\tREF\tALT\tQUAL\tMQ\tNormal.GT\tNormal.REF.DP\tNormal.ALT.DP\tTumor.GT\tTumor.REF.DP\tTumor.ALT.DP"

// BafHeader is the header line of the BAF table.
const BafHeader string = "chrom\tSNP_loc\tcontrol_BAF\ttumor_BAF\tcontrol_doc\ttumor_doc"

var mqField = regexp.MustCompile(`^MQ=[0-9.]+$`)

// Counts are the genotype and allele depths of one sample at one site.
type Counts struct {
	Gt       string
	RefDepth int
	AltDepth int
}

// Depth is the total depth of the ref and alt alleles.
func (c Counts) Depth() int {
	return c.RefDepth + c.AltDepth
}

// Baf is the fraction of alt reads. NaN when there are no reads.
func (c Counts) Baf() float64 {
	if c.Depth() == 0 {
		return math.NaN()
	}
	return float64(c.AltDepth) / float64(c.Depth())
}

// Record is one row of the SNP table.
type Record struct {
	Chrom  string
	Pos    int
	Id     string
	Ref    string
	Alt    string
	Qual   float64
	Mq     float64
	Normal Counts
	Tumor  Counts
}

// String method for Record writes one line of the SNP table.
func (r Record) String() string {
	return fmt.Sprintf("%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%d\t%s\t%d\t%d",
		r.Chrom, r.Pos, r.Id, r.Ref, r.Alt, formatFloat(r.Qual), formatFloat(r.Mq),
		r.Normal.Gt, r.Normal.RefDepth, r.Normal.AltDepth,
		r.Tumor.Gt, r.Tumor.RefDepth, r.Tumor.AltDepth)
}

// Row is one row of the BAF table.
type Row struct {
	Chrom      string
	Pos        int
	ControlBaf float64
	TumorBaf   float64
	ControlDoc int
	TumorDoc   int
}

// String method for Row writes one line of the BAF table.
func (r Row) String() string {
	return fmt.Sprintf("%s\t%d\t%s\t%s\t%d\t%d", r.Chrom, r.Pos,
		formatFloat(r.ControlBaf), formatFloat(r.TumorBaf), r.ControlDoc, r.TumorDoc)
}

// ToRow computes the BAF row of a record. ok is false when either BAF is undefined.
func ToRow(r Record) (row Row, ok bool) {
	row = Row{
		Chrom:      r.Chrom,
		Pos:        r.Pos,
		ControlBaf: r.Normal.Baf(),
		TumorBaf:   r.Tumor.Baf(),
		ControlDoc: r.Normal.Depth(),
		TumorDoc:   r.Tumor.Depth(),
	}
	ok = !math.IsNaN(row.ControlBaf) && !math.IsNaN(row.TumorBaf)
	return
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NA"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Options for FromVcf. Samples are found by id when given, otherwise by 1-based
// vcf column (10 is the first sample).
type Options struct {
	VcfPath   string
	BafPath   string
	SnpPath   string // defaults to BafPath + ".snps.txt"
	TumorId   string
	NormalId  string
	TumorCol  int
	NormalCol int
	MqCutoff  float64
	Chroms    string
}

// NewOptions returns Options with the default columns, MQ cutoff and chromosomes.
func NewOptions() Options {
	return Options{
		TumorCol:  10,
		NormalCol: 11,
		MqCutoff:  30,
		Chroms:    config.DefaultChroms,
	}
}

// Result counts the records seen while building the tables.
type Result struct {
	Sites       int // records in the vcf
	Kept        int // rows in the SNP table
	BafRows     int // rows in the BAF table
	Unparseable int // records without usable allele depths
}

// FromVcf reads o.VcfPath and writes the SNP and BAF tables.
// Records are kept when MQ > o.MqCutoff and the chromosome is in o.Chroms.
func FromVcf(o Options) (Result, error) {
	var res Result
	if o.VcfPath == "" || o.BafPath == "" {
		return res, errors.New("baf requires a vcf and an output path")
	}
	if o.SnpPath == "" {
		o.SnpPath = o.BafPath + ".snps.txt"
	}
	chroms := config.ChromList(o.Chroms)

	records, header := vcf.GoReadToChan(o.VcfPath)
	tumorIdx, err := sampleIndex(header, o.TumorId, o.TumorCol)
	if err != nil {
		drain(records)
		return res, errors.Wrap(err, "tumor sample")
	}
	normalIdx, err := sampleIndex(header, o.NormalId, o.NormalCol)
	if err != nil {
		drain(records)
		return res, errors.Wrap(err, "normal sample")
	}
	if tumorIdx == normalIdx {
		drain(records)
		return res, errors.New("tumor and normal resolve to the same vcf column")
	}

	snpOut := fileio.EasyCreate(o.SnpPath)
	bafOut := fileio.EasyCreate(o.BafPath)
	_, err = fmt.Fprintln(snpOut, SnpHeader)
	exception.PanicOnErr(err)
	_, err = fmt.Fprintln(bafOut, BafHeader)
	exception.PanicOnErr(err)

	var r Record
	var row Row
	var ok bool
	for v := range records {
		res.Sites++
		r, ok = toRecord(v, tumorIdx, normalIdx)
		if !ok {
			res.Unparseable++
			continue
		}
		if !(r.Mq > o.MqCutoff) || !slices.Contains(chroms, r.Chrom) {
			continue
		}
		res.Kept++
		_, err = fmt.Fprintln(snpOut, r)
		exception.PanicOnErr(err)
		if row, ok = ToRow(r); ok {
			res.BafRows++
			_, err = fmt.Fprintln(bafOut, row)
			exception.PanicOnErr(err)
		}
	}

	if err = snpOut.Close(); err != nil {
		return res, err
	}
	if err = bafOut.Close(); err != nil {
		return res, err
	}
	if res.Unparseable > 0 {
		log.Printf("WARNING: %d records had no usable allele depths and were skipped.\n", res.Unparseable)
	}
	log.Printf("saved BAF data to file: %s (%d of %d sites)\n", o.BafPath, res.BafRows, res.Sites)
	return res, nil
}

func drain(c <-chan vcf.Vcf) {
	for range c {
	}
}

// sampleIndex finds the position of a sample in Vcf.Samples.
func sampleIndex(header vcf.Header, id string, col int) (int, error) {
	if id != "" {
		idx, ok := header.Samples[id]
		if !ok {
			return -1, errors.Errorf("sample %s not found in vcf header", id)
		}
		return idx, nil
	}
	idx := col - firstSampleCol
	if idx < 0 || idx >= len(header.Samples) {
		return -1, errors.Errorf("vcf column %d is not a sample column", col)
	}
	return idx, nil
}

func toRecord(v vcf.Vcf, tumorIdx, normalIdx int) (Record, bool) {
	var r Record
	var ok bool
	if tumorIdx >= len(v.Samples) || normalIdx >= len(v.Samples) {
		return r, false
	}
	adIdx := slices.Index(v.Format, "AD")
	if adIdx == -1 {
		adIdx = 1
	}
	if r.Tumor, ok = parseCounts(v.Samples[tumorIdx], adIdx); !ok {
		return r, false
	}
	if r.Normal, ok = parseCounts(v.Samples[normalIdx], adIdx); !ok {
		return r, false
	}
	r.Chrom = v.Chr
	r.Pos = v.Pos
	r.Id = v.Id
	r.Ref = v.Ref
	r.Alt = strings.Join(v.Alt, ",")
	r.Qual = v.Qual
	r.Mq = ParseMq(v.Info)
	return r, true
}

// ParseMq returns the value of the MQ entry in a vcf INFO field.
// NaN is returned unless there is exactly one numeric MQ entry.
func ParseMq(info string) float64 {
	var val string
	var found int
	for _, field := range strings.Split(info, ";") {
		if mqField.MatchString(field) {
			val = field[3:]
			found++
		}
	}
	if found != 1 {
		return math.NaN()
	}
	mq, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return math.NaN()
	}
	return mq
}

// parseCounts reads the genotype and the ref/alt depths from the AD field of a sample.
func parseCounts(s vcf.Sample, adIdx int) (Counts, bool) {
	var c Counts
	var err error
	if adIdx >= len(s.FormatData) {
		return c, false
	}
	ad := strings.Split(s.FormatData[adIdx], ",")
	if len(ad) != 2 {
		return c, false
	}
	if c.RefDepth, err = strconv.Atoi(ad[0]); err != nil {
		return c, false
	}
	if c.AltDepth, err = strconv.Atoi(ad[1]); err != nil {
		return c, false
	}
	c.Gt = genotypeString(s)
	return c, true
}

func genotypeString(s vcf.Sample) string {
	if len(s.Alleles) == 0 {
		return "."
	}
	gt := new(strings.Builder)
	for i := range s.Alleles {
		if i > 0 {
			if i < len(s.Phase) && s.Phase[i] {
				gt.WriteByte('|')
			} else {
				gt.WriteByte('/')
			}
		}
		if s.Alleles[i] < 0 {
			gt.WriteByte('.')
		} else {
			gt.WriteString(strconv.Itoa(int(s.Alleles[i])))
		}
	}
	return gt.String()
}
