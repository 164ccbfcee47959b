package fai

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vertgenlab/gonomics/chromInfo"
	"github.com/vertgenlab/gonomics/fileio"
)

// Index holds the sequence records of a samtools fasta index (.fai), in file order.
type Index struct {
	seqs []seqRecord
}

// seqRecord is one line of a fai file.
type seqRecord struct {
	name         string // Name of this reference sequence
	len          int    // Total length of this reference sequence, in bases
	offset       int    // Offset within the FASTA file of this sequence's first base
	basesPerLine int    // The number of bases on each line
	bytesPerLine int    // The number of bytes in each line, including the newline
}

// String method for seqRecord enables easy writing with the fmt package.
func (s seqRecord) String() string {
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%d", s.name, s.len, s.offset, s.basesPerLine, s.bytesPerLine)
}

// String method for Index writes the index in fai format.
func (idx Index) String() string {
	answer := new(strings.Builder)
	for i := range idx.seqs {
		answer.WriteString(idx.seqs[i].String())
		answer.WriteByte('\n')
	}
	return answer.String()
}

// Names returns the sequence names in index order.
func (idx Index) Names() []string {
	ans := make([]string, len(idx.seqs))
	for i := range idx.seqs {
		ans[i] = idx.seqs[i].name
	}
	return ans
}

// ChromInfo converts the index to gonomics chromInfo records, keeping index order.
func (idx Index) ChromInfo() []chromInfo.ChromInfo {
	ans := make([]chromInfo.ChromInfo, len(idx.seqs))
	for i := range idx.seqs {
		ans[i] = chromInfo.ChromInfo{Name: idx.seqs[i].name, Size: idx.seqs[i].len, Order: i}
	}
	return ans
}

// IndexPath returns the expected fai path for a fasta file.
func IndexPath(fasta string) string {
	return fasta + ".fai"
}

// ReadIndex reads a fai index file.
func ReadIndex(filename string) (Index, error) {
	var answer Index
	if _, err := os.Stat(filename); err != nil {
		return answer, errors.Wrap(err, "fasta index not found")
	}

	file := fileio.EasyOpen(filename)
	var curr seqRecord
	var line string
	var col []string
	var done bool
	var err error
	for line, done = fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		col = strings.Split(line, "\t")
		if len(col) != 5 {
			_ = file.Close()
			return answer, errors.Errorf("malformed index file: %s\nerror on line:\n%s", filename, line)
		}
		curr.name = col[0]
		if curr.len, err = strconv.Atoi(col[1]); err != nil {
			break
		}
		if curr.offset, err = strconv.Atoi(col[2]); err != nil {
			break
		}
		if curr.basesPerLine, err = strconv.Atoi(col[3]); err != nil {
			break
		}
		if curr.bytesPerLine, err = strconv.Atoi(col[4]); err != nil {
			break
		}
		answer.seqs = append(answer.seqs, curr)
	}

	closeErr := file.Close()
	if err != nil {
		return answer, errors.Wrapf(err, "malformed index file: %s", filename)
	}
	if closeErr != nil {
		return answer, closeErr
	}
	return answer, nil
}
