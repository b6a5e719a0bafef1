package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/loctok/loctok/internal/aggregate"
	"github.com/loctok/loctok/internal/clierr"
	"github.com/loctok/loctok/internal/config"
	"github.com/loctok/loctok/internal/discovery"
	"github.com/loctok/loctok/internal/filestat"
	"github.com/loctok/loctok/internal/progress"
	"github.com/loctok/loctok/internal/render"
	"github.com/loctok/loctok/internal/tokenizer"
)

// rootArg returns the positional path argument, defaulting to ".".
func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// resolveRoot validates that root exists and is a directory. A missing
// root exits with ExitNoRoot; an existing path that isn't a directory is
// an invalid argument and exits with ExitConfig.
func resolveRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return clierr.NoRoot(fmt.Sprintf("root path %q does not exist", root), err)
	}
	if !info.IsDir() {
		return clierr.Config(fmt.Sprintf("root path %q is not a directory", root), nil)
	}
	return nil
}

// effectiveFlags layers .loctok.toml's [defaults] table beneath explicit CLI
// flags and the LOCTOK_FORMAT / LOCTOK_ENCODING environment variables: a
// value set by neither falls back to the project config file, then the
// built-in default.
func effectiveFlags(cmd *cobra.Command, fv *config.FlagValues, root string) (*config.FlagValues, error) {
	layered, err := config.Resolve(root)
	if err != nil {
		return nil, clierr.Config("resolving .loctok.toml", err)
	}

	resolved := *fv
	if !cmd.Flags().Changed("format") && os.Getenv("LOCTOK_FORMAT") == "" {
		resolved.Format = layered.Format
	}
	if !cmd.Flags().Changed("encoding") && os.Getenv("LOCTOK_ENCODING") == "" {
		resolved.Encoding = layered.Encoding
	}
	if !cmd.Flags().Changed("ext") && len(layered.Ext) > 0 {
		resolved.Ext = layered.Ext
	}
	if !cmd.Flags().Changed("hidden") {
		resolved.Hidden = layered.Hidden
	}
	return &resolved, nil
}

// discoverAndStat runs the Walker and FileStat pipeline and returns an
// Aggregator holding every collected Record, the Encoding used, and the
// walker's skip-reason accounting (for the optional --stats summary).
func discoverAndStat(ctx context.Context, root string, fv *config.FlagValues) (*aggregate.Aggregator, tokenizer.Encoding, *discovery.Result, error) {
	enc, err := tokenizer.New(fv.Encoding)
	if err != nil {
		return nil, nil, nil, clierr.Config("constructing encoding", err)
	}

	gitignore, err := discovery.NewGitignoreMatcher(root)
	if err != nil {
		return nil, nil, nil, clierr.Config("loading .gitignore rules", err)
	}
	excludes, err := discovery.NewExcludesMatcher(root)
	if err != nil {
		return nil, nil, nil, clierr.Config("loading git excludes", err)
	}
	loctokignore, err := discovery.NewLoctokignoreMatcher(root)
	if err != nil {
		return nil, nil, nil, clierr.Config("loading .loctokignore rules", err)
	}

	var extFilter *discovery.ExtFilter
	if len(fv.Ext) > 0 {
		extFilter = discovery.NewExtFilter(fv.Ext)
	}

	walker := discovery.NewWalker()
	result, err := walker.Walk(discovery.Config{
		Root:                root,
		Hidden:              fv.Hidden,
		ExtFilter:           extFilter,
		GitignoreMatcher:    gitignore,
		ExcludesMatcher:     excludes,
		LoctokignoreMatcher: loctokignore,
		GitTrackedOnly:      fv.GitTrackedOnly,
	})
	if err != nil {
		return nil, nil, nil, clierr.Config("walking directory tree", err)
	}

	prog := progress.New(os.Stderr)
	agg := aggregate.New(prog.Update)

	if err := filestat.Run(ctx, result.Files, enc, 0, agg); err != nil {
		return nil, nil, nil, fmt.Errorf("running file-stat pipeline: %w", err)
	}
	prog.Done(agg.FilesSeen())

	if agg.IOErrors() > 0 {
		slog.Warn("some files could not be read", "io_errors", agg.IOErrors())
	}

	return agg, enc, result, nil
}

// printStats writes the walker's skip-reason accounting as a single
// summary line to stderr when --stats is set. It never touches stdout, so
// it cannot change a report's byte-identical output.
func printStats(result *discovery.Result) {
	fmt.Fprintf(os.Stderr, "found %d, scanned %d, skipped %d %v\n",
		result.TotalFound, len(result.Files), result.TotalSkipped, result.SkipReasons)
}

// runScan implements the default (no subcommand) behavior: discover, stat,
// aggregate, and render.
func runScan(cmd *cobra.Command, args []string) error {
	root := rootArg(args)
	if err := resolveRoot(root); err != nil {
		return err
	}

	fv, err := effectiveFlags(cmd, GlobalFlags(), root)
	if err != nil {
		return err
	}

	agg, enc, result, err := discoverAndStat(cmd.Context(), root, fv)
	if err != nil {
		return err
	}

	report := agg.Report(rootArg(args), enc)

	switch fv.Format {
	case "tree":
		render.Tree(os.Stdout, report)
	case "json":
		if err := render.JSON(os.Stdout, report); err != nil {
			return err
		}
	default:
		render.Table(os.Stdout, report)
	}

	if fv.Stats {
		printStats(result)
	}
	return nil
}
