package tsv

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	file := filepath.Join(t.TempDir(), "t.txt")
	text := "chrom\tSNP_loc\ttumor_BAF\n" +
		"1\t100\t0.5\n" +
		"\n" +
		"X\t200.0\tNA\n"
	require.NoError(t, os.WriteFile(file, []byte(text), 0644))

	r, err := Open(file)
	require.NoError(t, err)
	cols, err := r.Columns("chrom", "SNP_loc", "tumor_BAF")
	require.NoError(t, err)
	_, err = r.Columns("zygosity")
	assert.Error(t, err)

	var chroms []string
	var pos []int
	var bafs []float64
	for r.Next() {
		c, err := r.Field(cols[0])
		require.NoError(t, err)
		p, err := r.Int(cols[1])
		require.NoError(t, err)
		b, err := r.Float(cols[2])
		require.NoError(t, err)
		chroms = append(chroms, c)
		pos = append(pos, p)
		bafs = append(bafs, b)
	}
	require.NoError(t, r.Close())
	assert.Equal(t, []string{"1", "X"}, chroms)
	assert.Equal(t, []int{100, 200}, pos)
	assert.Equal(t, 0.5, bafs[0])
	assert.True(t, math.IsNaN(bafs[1]))
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "absent.txt"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	_, err = Open(empty)
	assert.Error(t, err)
}
