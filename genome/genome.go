// Package genome lays chromosomes end to end on a single axis so that genome-wide
// data can be plotted, and defines the chromosome ordering used for sorting.
package genome

import (
	"math"
	"os"
	"strings"

	"github.com/dasnellings/cnvTools/fai"
	"github.com/pkg/errors"
	"github.com/vertgenlab/gonomics/chromInfo"
)

// hg19 chromosome lengths, in plotting order.
var hg19 = []chromInfo.ChromInfo{
	{Name: "1", Size: 249250621}, {Name: "2", Size: 243199373}, {Name: "3", Size: 198022430},
	{Name: "4", Size: 191154276}, {Name: "5", Size: 180915260}, {Name: "6", Size: 171115067},
	{Name: "7", Size: 159138663}, {Name: "8", Size: 146364022}, {Name: "9", Size: 141213431},
	{Name: "10", Size: 135534747}, {Name: "11", Size: 135006516}, {Name: "12", Size: 133851895},
	{Name: "13", Size: 115169878}, {Name: "14", Size: 107349540}, {Name: "15", Size: 102531392},
	{Name: "16", Size: 90354753}, {Name: "17", Size: 81195210}, {Name: "18", Size: 78077248},
	{Name: "19", Size: 59128983}, {Name: "20", Size: 63025520}, {Name: "21", Size: 48129895},
	{Name: "22", Size: 51304566}, {Name: "X", Size: 155270560}, {Name: "Y", Size: 59373566},
	{Name: "MT", Size: 16569},
}

// hg19 p-arm lengths, used as centromere positions.
var pArm = map[string]int{
	"1": 125000000, "2": 93300000, "3": 91000000, "4": 50400000, "5": 48400000,
	"6": 61000000, "7": 59900000, "8": 45600000, "9": 49000000, "10": 40200000,
	"11": 53700000, "12": 35800000, "13": 17900000, "14": 17600000, "15": 19000000,
	"16": 36600000, "17": 24000000, "18": 17200000, "19": 26500000, "20": 27500000,
	"21": 13200000, "22": 14700000, "X": 60600000, "Y": 12500000,
}

// Chrom is one chromosome placed on the genome axis.
type Chrom struct {
	Name       string
	Size       int
	Offset     int     // sum of the sizes of the preceding chromosomes
	Mid        float64 // tick position for the chromosome label
	Centromere int     // genome-axis position of the centromere
}

// Start is the genome-axis position of base 0 of the chromosome.
func (c Chrom) Start() int {
	return c.Offset + 1
}

// Layout is an ordered set of chromosomes on a shared axis.
type Layout struct {
	Chroms []Chrom
	Size   int // total length of the axis
	index  map[string]int
}

// Hg19 returns the hg19 layout. Y and MT are only included on request.
func Hg19(useY, useMT bool) *Layout {
	var ci []chromInfo.ChromInfo
	for i := range hg19 {
		if (hg19[i].Name == "Y" && !useY) || (hg19[i].Name == "MT" && !useMT) {
			continue
		}
		ci = append(ci, hg19[i])
	}
	return build(ci)
}

// FromChromInfo builds a layout from chromosome sizes. When chroms is not empty only
// those chromosomes are kept, in the order of chroms.
func FromChromInfo(ci []chromInfo.ChromInfo, chroms []string) (*Layout, error) {
	if len(chroms) == 0 {
		return build(ci), nil
	}
	sizes := make(map[string]chromInfo.ChromInfo, len(ci))
	for i := range ci {
		sizes[ci[i].Name] = ci[i]
	}
	var keep []chromInfo.ChromInfo
	for _, c := range chroms {
		if info, ok := sizes[c]; ok {
			keep = append(keep, info)
		}
	}
	if len(keep) == 0 {
		return nil, errors.New("none of the requested chromosomes have a known size")
	}
	return build(keep), nil
}

// ReadGenomeFile builds a layout from a two column genome file (name, length).
func ReadGenomeFile(path string, chroms []string) (*Layout, error) {
	return FromChromInfo(chromInfo.ReadToSlice(path), chroms)
}

// ReadLayout builds a layout from a samtools fasta index when path ends in .fai,
// otherwise from a genome file.
func ReadLayout(path string, chroms []string) (*Layout, error) {
	if !strings.HasSuffix(path, ".fai") {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrap(err, "could not read genome file")
		}
		return ReadGenomeFile(path, chroms)
	}
	idx, err := fai.ReadIndex(path)
	if err != nil {
		return nil, err
	}
	return FromChromInfo(idx.ChromInfo(), chroms)
}

func build(ci []chromInfo.ChromInfo) *Layout {
	l := &Layout{Chroms: make([]Chrom, len(ci)), index: make(map[string]int, len(ci))}
	var offset int
	for i := range ci {
		c := Chrom{Name: ci[i].Name, Size: ci[i].Size, Offset: offset}
		c.Mid = float64(c.Start()) + 0.5*float64(c.Size)
		p, ok := pArm[c.Name]
		if !ok || p >= c.Size {
			p = int(math.Round(float64(c.Size) / 2))
		}
		c.Centromere = p + c.Offset
		l.Chroms[i] = c
		l.index[c.Name] = i
		offset += c.Size
	}
	l.Size = offset
	return l
}

// Has reports whether chrom is part of the layout.
func (l *Layout) Has(chrom string) bool {
	_, ok := l.index[chrom]
	return ok
}

// Pos converts a chromosome position to a genome-axis position.
func (l *Layout) Pos(chrom string, pos int) (float64, bool) {
	i, ok := l.index[chrom]
	if !ok {
		return 0, false
	}
	return float64(pos + l.Chroms[i].Start()), true
}

// Boundaries returns the axis positions where each chromosome starts.
func (l *Layout) Boundaries() []float64 {
	ans := make([]float64, len(l.Chroms))
	for i := range l.Chroms {
		ans[i] = float64(l.Chroms[i].Start())
	}
	return ans
}

// Normalize strips a leading "chr" and renames M to MT.
func Normalize(chrom string) string {
	chrom = strings.TrimPrefix(chrom, "chr")
	if chrom == "M" {
		return "MT"
	}
	return chrom
}
