package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd() (*cobra.Command, *FlagValues) {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	fv := BindFlags(cmd)
	return cmd, fv
}

func TestValidateFlags_RejectsVerboseAndQuietTogether(t *testing.T) {
	t.Parallel()

	cmd, fv := newTestCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--verbose", "--quiet"}))
	err := ValidateFlags(fv, cmd)
	assert.ErrorContains(t, err, "mutually exclusive")
}

func TestValidateFlags_RejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	cmd, fv := newTestCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--format", "yaml"}))
	err := ValidateFlags(fv, cmd)
	assert.ErrorContains(t, err, "--format")
}

func TestValidateFlags_RejectsUnknownEncoding(t *testing.T) {
	t.Parallel()

	cmd, fv := newTestCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--encoding", "bogus_encoding"}))
	err := ValidateFlags(fv, cmd)
	assert.ErrorContains(t, err, "--encoding")
}

func TestValidateFlags_NormalizesExtList(t *testing.T) {
	t.Parallel()

	cmd, fv := newTestCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--ext", ".GO, .RS,.Py"}))
	require.NoError(t, ValidateFlags(fv, cmd))
	assert.Equal(t, []string{"go", "rs", "py"}, fv.Ext)
}

func TestValidateFlags_ValidDefaults(t *testing.T) {
	t.Parallel()

	cmd, fv := newTestCmd()
	require.NoError(t, cmd.ParseFlags(nil))
	assert.NoError(t, ValidateFlags(fv, cmd))
}

func TestApplyEnvOverrides_OnlyAppliesWhenFlagNotChanged(t *testing.T) {
	t.Setenv("LOCTOK_FORMAT", "json")
	t.Setenv("LOCTOK_QUIET", "1")

	cmd, fv := newTestCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--format", "tree"}))

	applyEnvOverrides(fv, cmd)
	assert.Equal(t, "tree", fv.Format, "explicit flag must win over env var")
	assert.True(t, fv.Quiet, "env var applies when flag was not set")
}

func TestBindShowFlag_RegistersShowOnlyOnGivenCommand(t *testing.T) {
	t.Parallel()

	cmd, fv := newTestCmd()
	BindShowFlag(cmd, fv)
	require.NoError(t, cmd.ParseFlags([]string{"--show"}))
	assert.True(t, fv.Show)
}
