package adtex

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	o := NewOptions()
	o.Script = "/opt/ADTEx/ADTEx.py"
	o.NormalCov = "n.bed"
	o.TumorCov = "t.bed"
	o.OutDir = "out"
	o.BafPath = "baf.txt"
	o.TargetPath = "coding.bed"
	o.LogPath = "out/run_info.txt"
	c := Command(o)
	assert.Equal(t, "python2 /opt/ADTEx/ADTEx.py --DOC -n n.bed -t t.bed -o out --baf baf.txt --bed coding.bed "+
		"--estimatePloidy --plot --ploidy 2 --min_read_depth 10 > out/run_info.txt 2>&1", c.String())
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	o := NewOptions()
	o.Python2 = "sh"
	o.Script = filepath.Join(dir, "fake_adtex.sh")
	o.OutDir = filepath.Join(dir, "adtex_output")
	require.NoError(t, os.WriteFile(o.Script, []byte(`echo "ploidy ${15}"`+"\n"), 0644))

	require.NoError(t, Run(o))
	data, err := os.ReadFile(filepath.Join(o.OutDir, "run_info.txt"))
	require.NoError(t, err)
	assert.Equal(t, "ploidy 2\n", string(data))

	require.NoError(t, os.WriteFile(o.Script, []byte("exit 1\n"), 0644))
	assert.Error(t, Run(o))

	o.Ploidy = 2
	o.Python2 = ""
	err = Run(o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "python2 is not configured")
	o.Python2 = "sh"

	o.Ploidy = 0
	assert.Error(t, Run(o))
	o.Script = ""
	assert.Error(t, Run(o))
}

func TestReadResults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "zygosity"), 0755))
	zyg := "chrom\tSNP_loc\tcontrol_BAF\ttumor_BAF\tmirrored_BAF\tcontrol_doc\ttumor_doc\tzygosity\n" +
		"1\t1000\t0.5\t0.9\t0.9\t40\t50\tLOH\n" +
		"chr1\t2000\t0.5\t0.45\t0.55\t40\t50\tHET\n"
	require.NoError(t, os.WriteFile(ZygosityPath(dir), []byte(zyg), 0644))
	cnv := "chr\tCNV_start\tCNV_end\tseg_mean\tCN\n" +
		"chr1\t900\t5000\t-0.3\t1\n"
	require.NoError(t, os.WriteFile(CnvPath(dir), []byte(cnv), 0644))

	calls, err := ReadZygosity(ZygosityPath(dir))
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, Call{Chrom: "1", Pos: 1000, TumorBaf: 0.9, MirroredBaf: 0.9, Zygosity: Loh}, calls[0])
	assert.Equal(t, 0.55, calls[1].MirroredBaf)
	assert.Equal(t, "1", calls[1].Chrom)

	segs, err := ReadSegments(CnvPath(dir))
	require.NoError(t, err)
	assert.Equal(t, []Segment{{Chrom: "1", Start: 900, End: 5000}}, segs)

	minimal := filepath.Join(dir, "minimal.res")
	require.NoError(t, os.WriteFile(minimal, []byte("chrom\tSNP_loc\tzygosity\nX\t5\tASCNA\n"), 0644))
	calls, err = ReadZygosity(minimal)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(calls[0].TumorBaf))

	_, err = ReadSegments(minimal)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "missing column chr"))
}
