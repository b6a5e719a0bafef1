package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loctok/loctok/internal/tokenizer"
)

func TestResolve_NoFilePresentReturnsBuiltinDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	merged, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, "table", merged.Format)
	assert.Equal(t, tokenizer.Default, merged.Encoding)
	assert.False(t, merged.Hidden)
}

func TestResolve_FileOverridesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	contents := `[defaults]
format = "json"
encoding = "o200k_base"
ext = ["go", "rs"]
hidden = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(contents), 0o644))

	merged, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, "json", merged.Format)
	assert.Equal(t, "o200k_base", merged.Encoding)
	assert.Equal(t, []string{"go", "rs"}, merged.Ext)
	assert.True(t, merged.Hidden)
}

func TestResolve_PartialFileLeavesRestAtDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	contents := `[defaults]
format = "tree"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(contents), 0o644))

	merged, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, "tree", merged.Format)
	assert.Equal(t, tokenizer.Default, merged.Encoding)
}

func TestResolve_MalformedFileReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("not = [valid toml"), 0o644))

	_, err := Resolve(dir)
	assert.Error(t, err)
}
