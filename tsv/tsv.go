// Package tsv reads the tab-delimited tables with a header line written by the external
// CNV tools and by this module.
package tsv

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vertgenlab/gonomics/fileio"
)

// Reader reads a tab-delimited file with a header line. Lines starting with '#' and
// blank lines are skipped.
type Reader struct {
	Path   string
	Header map[string]int
	file   *fileio.EasyReader
	line   []string
	lineNo int
}

// Open opens path and reads its header line.
func Open(path string) (*Reader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(err, "could not open table")
	}
	r := &Reader{Path: path, file: fileio.EasyOpen(path)}
	if !r.Next() {
		_ = r.file.Close()
		return nil, errors.Errorf("%s is empty", path)
	}
	r.Header = make(map[string]int, len(r.line))
	for i := range r.line {
		r.Header[r.line[i]] = i
	}
	return r, nil
}

// Next advances to the next data line. It returns false at the end of the file.
func (r *Reader) Next() bool {
	var line string
	var done bool
	for line, done = fileio.EasyNextRealLine(r.file); !done; line, done = fileio.EasyNextRealLine(r.file) {
		r.lineNo++
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		r.line = strings.Split(line, "\t")
		return true
	}
	r.line = nil
	return false
}

// Columns returns the position of each named column, or an error naming the first
// column that is absent from the header.
func (r *Reader) Columns(names ...string) ([]int, error) {
	ans := make([]int, len(names))
	var ok bool
	for i := range names {
		if ans[i], ok = r.Header[names[i]]; !ok {
			return nil, errors.Errorf("%s: missing column %s", r.Path, names[i])
		}
	}
	return ans, nil
}

// Field returns column col of the current line.
func (r *Reader) Field(col int) (string, error) {
	if col >= len(r.line) {
		return "", errors.Errorf("%s line %d: expected at least %d fields", r.Path, r.lineNo, col+1)
	}
	return r.line[col], nil
}

// Int parses column col of the current line as an integer.
// Values such as "1234.0" written by dataframe libraries are accepted.
func (r *Reader) Int(col int) (int, error) {
	s, err := r.Field(col)
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(s)
	if err == nil {
		return i, nil
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr != nil || f != float64(int(f)) {
		return 0, errors.Wrapf(err, "%s line %d", r.Path, r.lineNo)
	}
	return int(f), nil
}

// Float parses column col of the current line. "NA" and "NaN" parse to NaN.
func (r *Reader) Float(col int) (float64, error) {
	s, err := r.Field(col)
	if err != nil {
		return 0, err
	}
	if s == "NA" {
		s = "NaN"
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s line %d", r.Path, r.lineNo)
	}
	return f, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
