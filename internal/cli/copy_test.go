package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loctok/loctok/internal/config"
)

func TestNewCopyCmd_RegistersShowFlag(t *testing.T) {
	t.Parallel()

	cmd := newCopyCmd()
	assert.NotNil(t, cmd.Flags().Lookup("show"))
	assert.Equal(t, "copy [path]", cmd.Use)
}

func TestRunCopy_PrintsSummaryLine(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\nfunc main() {}\n"), 0o644))

	cmd, fv := newFreshCmd()
	config.BindShowFlag(cmd, fv)
	cmd.RunE = runCopy
	require.NoError(t, cmd.ParseFlags(nil))
	require.NoError(t, config.ValidateFlags(fv, cmd))

	rOld := flagValues
	flagValues = fv
	defer func() { flagValues = rOld }()

	stdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := runCopy(cmd, []string{dir})

	w.Close()
	os.Stdout = stdout

	require.NoError(t, runErr)

	buf := make([]byte, 4096)
	n, _ := r.Read(buf)
	out := string(buf[:n])
	assert.Contains(t, out, "Copied")
	assert.Contains(t, out, "tokens)")
}
