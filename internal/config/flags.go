package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loctok/loctok/internal/tokenizer"
)

// FlagValues collects all parsed global flag values from the CLI. This
// struct is populated by BindFlags and consumed by the scan/copy commands.
type FlagValues struct {
	Format         string
	Encoding       string
	Ext            []string // extensions, lowercase, no leading dots
	Hidden         bool
	Show           bool // copy subcommand only
	Verbose        bool
	Quiet          bool
	GitTrackedOnly bool
	Stats          bool
}

// BindFlags registers the persistent global flags on cmd and returns a
// FlagValues pointer populated once Cobra parses the command line.
func BindFlags(cmd *cobra.Command) *FlagValues {
	fv := &FlagValues{}

	pf := cmd.PersistentFlags()
	pf.StringVar(&fv.Format, "format", "table", "output renderer: table, tree, json")
	pf.StringVar(&fv.Encoding, "encoding", tokenizer.Default, "tiktoken-family encoding to count tokens with")
	pf.StringSliceVar(&fv.Ext, "ext", nil, "case-insensitive extension allow-list (comma-separated, no dots)")
	pf.BoolVar(&fv.Hidden, "hidden", false, "include dotfiles and dot-directories")
	pf.BoolVarP(&fv.Verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&fv.Quiet, "quiet", "q", false, "suppress all output except errors")
	pf.BoolVar(&fv.GitTrackedOnly, "git-tracked-only", false, "restrict discovery to files tracked by git")
	pf.BoolVar(&fv.Stats, "stats", false, "print a skip-reason summary to stderr after the report")

	return fv
}

// BindShowFlag registers --show on the copy subcommand. It lives outside
// BindFlags because it is meaningless for the table/tree/json renderers.
func BindShowFlag(cmd *cobra.Command, fv *FlagValues) {
	cmd.Flags().BoolVar(&fv.Show, "show", false, "also print the copy payload to stdout")
}

// ValidateFlags checks the parsed flag values for correctness and applies
// environment variable fallbacks. Call this from PersistentPreRunE after
// Cobra has parsed the flags.
func ValidateFlags(fv *FlagValues, cmd *cobra.Command) error {
	applyEnvOverrides(fv, cmd)

	if fv.Verbose && fv.Quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}

	switch fv.Format {
	case "table", "tree", "json":
		// valid
	default:
		return fmt.Errorf("--format: invalid value %q (allowed: table, tree, json)", fv.Format)
	}

	if !tokenizer.Known(fv.Encoding) {
		return fmt.Errorf("--encoding: unknown encoding %q (allowed: %s)",
			fv.Encoding, strings.Join(tokenizer.Names(), ", "))
	}

	normalized := make([]string, len(fv.Ext))
	for i, e := range fv.Ext {
		normalized[i] = strings.ToLower(strings.TrimLeft(strings.TrimSpace(e), "."))
	}
	fv.Ext = normalized

	return nil
}

// applyEnvOverrides applies environment variable fallbacks for flags not
// explicitly set on the command line. The prefix is LOCTOK_.
func applyEnvOverrides(fv *FlagValues, cmd *cobra.Command) {
	if v := os.Getenv("LOCTOK_FORMAT"); v != "" && !cmd.Flags().Changed("format") {
		fv.Format = v
	}
	if v := os.Getenv("LOCTOK_ENCODING"); v != "" && !cmd.Flags().Changed("encoding") {
		fv.Encoding = v
	}
	if os.Getenv("LOCTOK_VERBOSE") == "1" && !cmd.Flags().Changed("verbose") {
		fv.Verbose = true
	}
	if os.Getenv("LOCTOK_QUIET") == "1" && !cmd.Flags().Changed("quiet") {
		fv.Quiet = true
	}
}
