package saascnv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	o := NewOptions()
	o.Driver = "/opt/saas/run_saas.R"
	o.SnpTable = "s1/saas_snps.txt"
	o.OutDir = "s1/saasCNV_results"
	o.LogPath = "s1/saasCNV_results/run_info.txt"
	assert.Equal(t, "Rscript /opt/saas/run_saas.R s1/saas_snps.txt s1/saasCNV_results "+
		"> s1/saasCNV_results/run_info.txt 2>&1", Command(o).String())
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	o := NewOptions()
	o.Rscript = "sh"
	o.Driver = filepath.Join(dir, "fake_saas.sh")
	o.SnpTable = filepath.Join(dir, "saas_snps.txt")
	o.OutDir = filepath.Join(dir, "saasCNV_results")

	require.NoError(t, os.WriteFile(o.Driver, []byte(`echo "input $1"`+"\n"), 0644))
	assert.Error(t, Run(o)) // SNP table does not exist yet

	require.NoError(t, os.WriteFile(o.SnpTable, []byte("CHROM\tPOS\n"), 0644))
	require.NoError(t, Run(o))
	data, err := os.ReadFile(filepath.Join(o.OutDir, "run_info.txt"))
	require.NoError(t, err)
	assert.Equal(t, "input "+o.SnpTable+"\n", string(data))

	require.NoError(t, os.WriteFile(o.Driver, []byte("exit 3\n"), 0644))
	assert.Error(t, Run(o))

	o.Rscript = " "
	err = Run(o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Rscript is not configured")
	o.Rscript = "sh"

	o.Driver = ""
	assert.Error(t, Run(o))
}

func TestReadCalls(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "mid_res"), 0755))
	data := "chr\tposStart\tposEnd\tseg.id\tCNV\n" +
		"chr1\t1000\t50000\t1\tloss\n" +
		"chr2\t100\t900\t2\tgain\n" +
		"chr3\t100\t900\t3\tnormal\n" +
		"X\t5\t10\t4\tLOH\n" +
		"chrM\t1\t16569\t5\tloss\n"
	require.NoError(t, os.WriteFile(CallsPath(dir), []byte(data), 0644))

	calls, err := ReadCalls(CallsPath(dir))
	require.NoError(t, err)
	require.Len(t, calls, 5)
	assert.Equal(t, Call{Chrom: "1", Start: 1000, End: 50000, Cnv: Loss}, calls[0])
	assert.True(t, calls[0].IsLoss())
	assert.True(t, calls[1].IsGain())
	assert.False(t, calls[2].IsLoss() || calls[2].IsGain())
	assert.Equal(t, "X", calls[3].Chrom)
	assert.True(t, calls[3].IsLoss())
	assert.Equal(t, "MT", calls[4].Chrom)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("chr\tposStart\tposEnd\tCNV\nchr1\t10\t5\tloss\n"), 0644))
	_, err = ReadCalls(bad)
	assert.Error(t, err)

	_, err = ReadCalls(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
