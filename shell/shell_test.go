package shell

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	c := Command("java -jar gatk.jar", "SelectVariants", "-select", "vc.isSNP() && x")
	c.Stdout = "out.txt"
	c.Stderr = "out.txt"
	assert.Equal(t, "java -jar gatk.jar SelectVariants -select 'vc.isSNP() && x' > out.txt 2>&1", c.String())
}

func TestRunRedirect(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "run_info.txt")
	c := Command("sh", "-c", "echo hello; echo oops 1>&2")
	c.Stdout = out
	c.Stderr = out
	require.NoError(t, Run(c))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello\n")
	assert.Contains(t, string(data), "oops\n")
}

func TestRunFailure(t *testing.T) {
	err := Run(Command("sh", "-c", "exit 3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed: sh -c 'exit 3'")

	assert.Error(t, Run(&Cmd{}))
}

func TestStream(t *testing.T) {
	var lines []string
	err := Stream(Command("printf", `a\nb\n`), func(r io.Reader) error {
		s := bufio.NewScanner(r)
		for s.Scan() {
			lines = append(lines, s.Text())
		}
		return s.Err()
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)

	err = Stream(Command("sh", "-c", "echo x; exit 1"), func(r io.Reader) error {
		_, err := io.ReadAll(r)
		return err
	})
	assert.Error(t, err)
}
