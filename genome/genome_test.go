package genome

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vertgenlab/gonomics/chromInfo"
)

func TestHg19(t *testing.T) {
	l := Hg19(false, false)
	assert.Len(t, l.Chroms, 23)
	assert.False(t, l.Has("Y"))
	assert.False(t, l.Has("MT"))

	pos, ok := l.Pos("1", 100)
	assert.True(t, ok)
	assert.Equal(t, 101.0, pos)

	pos, ok = l.Pos("2", 100)
	assert.True(t, ok)
	assert.Equal(t, float64(249250621+101), pos)

	_, ok = l.Pos("Y", 1)
	assert.False(t, ok)

	assert.Equal(t, 125000000, l.Chroms[0].Centromere)
	assert.Equal(t, 249250621+93300000, l.Chroms[1].Centromere)
	assert.Equal(t, l.Chroms[22].Offset+l.Chroms[22].Size, l.Size)

	all := Hg19(true, true)
	assert.Len(t, all.Chroms, 25)
	mt := all.Chroms[24]
	assert.Equal(t, 8285, mt.Centromere-mt.Offset)
}

func TestFromChromInfo(t *testing.T) {
	ci := []chromInfo.ChromInfo{{Name: "chrA", Size: 100}, {Name: "chrB", Size: 50}}
	l, err := FromChromInfo(ci, []string{"chrB", "chrC", "chrA"})
	require.NoError(t, err)
	require.Len(t, l.Chroms, 2)
	assert.Equal(t, "chrB", l.Chroms[0].Name)
	assert.Equal(t, 50, l.Chroms[1].Offset)
	assert.Equal(t, []float64{1, 51}, l.Boundaries())
	assert.Equal(t, 26.0, l.Chroms[0].Mid)
	assert.Equal(t, 150, l.Size)

	_, err = FromChromInfo(ci, []string{"chrZ"})
	assert.Error(t, err)
}

func TestReadGenomeFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "genome.txt")
	require.NoError(t, os.WriteFile(file, []byte("1\t1000\n2\t500\n"), 0644))
	l, err := ReadGenomeFile(file, nil)
	require.NoError(t, err)
	assert.Equal(t, 1500, l.Size)
	assert.Equal(t, 500, l.Chroms[0].Centromere)
}

func TestReadLayout(t *testing.T) {
	dir := t.TempDir()
	index := filepath.Join(dir, "ref.fa.fai")
	require.NoError(t, os.WriteFile(index, []byte("1\t1000\t3\t60\t61\nGL000192.1\t200\t1023\t60\t61\nX\t400\t1300\t60\t61\n"), 0644))
	l, err := ReadLayout(index, []string{"1", "X"})
	require.NoError(t, err)
	require.Len(t, l.Chroms, 2)
	assert.Equal(t, "X", l.Chroms[1].Name)
	assert.Equal(t, 1000, l.Chroms[1].Offset)
	assert.Equal(t, 1400, l.Size)
	assert.False(t, l.Has("GL000192.1"))

	l, err = ReadLayout(index, nil)
	require.NoError(t, err)
	assert.Equal(t, 1600, l.Size)

	file := filepath.Join(dir, "genome.txt")
	require.NoError(t, os.WriteFile(file, []byte("1\t1000\n2\t500\n"), 0644))
	l, err = ReadLayout(file, []string{"2"})
	require.NoError(t, err)
	assert.Equal(t, 500, l.Size)

	_, err = ReadLayout(filepath.Join(dir, "absent.fa.fai"), nil)
	assert.Error(t, err)
	_, err = ReadLayout(filepath.Join(dir, "absent.txt"), nil)
	assert.Error(t, err)
}

func TestOrder(t *testing.T) {
	o := NewOrder([]string{"1", "2", "10", "X"})
	assert.True(t, o.Less("2", 500, "10", 1))
	assert.True(t, o.Less("X", 5, "X", 6))
	assert.False(t, o.Less("X", 6, "X", 6))
	assert.True(t, o.Less("X", 1, "GL1", 1))
	assert.True(t, o.Less("GL1", 9, "GL2", 1))

	assert.True(t, o.Has("10"))
	assert.False(t, o.Has("GL1"))
	assert.Equal(t, 4, o.Rank("GL1"))

	assert.Equal(t, "MT", Normalize("chrM"))
	assert.Equal(t, "17", Normalize("chr17"))
}
