package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cnvtools.yaml")
	text := "paths:\n" +
		"  adtex: /opt/ADTEx/ADTEx.py\n" +
		"  samtools: /usr/local/bin/samtools\n" +
		"codingRegions: /ref/coding.bed\n"
	require.NoError(t, os.WriteFile(file, []byte(text), 0644))

	t.Setenv("GATK_ALIAS", "java -jar $GATK_JAR")
	t.Setenv("GATK_JAR", "/opt/gatk.jar")

	c, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "/opt/ADTEx/ADTEx.py", c.Paths.Adtex)
	assert.Equal(t, "/usr/local/bin/samtools", c.Paths.Samtools)
	assert.Equal(t, "bedtools", c.Paths.Bedtools)
	assert.Equal(t, "/ref/coding.bed", c.CodingRegions)
	assert.Equal(t, DefaultChroms, c.Chroms)
	assert.Equal(t, []string{"java", "-jar", "/opt/gatk.jar"}, Argv(c.Paths.Gatk))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestChromList(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "X"}, ChromList("1, 2,,X,2"))
	assert.Nil(t, ChromList(""))
}

func TestMissing(t *testing.T) {
	var c Config
	c.Paths.Gatk = "sh"
	missing := c.Missing()
	assert.NotContains(t, missing, "gatk")
	assert.Contains(t, missing, "samtools")
}
