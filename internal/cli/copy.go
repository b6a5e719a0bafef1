package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loctok/loctok/internal/clierr"
	"github.com/loctok/loctok/internal/clipboard"
	"github.com/loctok/loctok/internal/config"
	"github.com/loctok/loctok/internal/copypayload"
)

// newCopyCmd builds the "copy" subcommand: it runs the same discovery and
// file-stat pipeline as the default scan, then bundles every included
// file's content into a single payload on the clipboard.
func newCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy [path]",
		Short: "Copy the scanned files' content to the clipboard.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCopy,
	}
	config.BindShowFlag(cmd, flagValues)
	return cmd
}

func runCopy(cmd *cobra.Command, args []string) error {
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

	report := agg.Report(root, enc)
	paths := make([]string, len(report.Files))
	for i, f := range report.Files {
		paths[i] = f.Path
	}

	payload, err := copypayload.Build(root, paths, enc)
	if err != nil {
		return clierr.Config("building copy payload", err)
	}

	out := os.Stdout
	if fv.Show {
		fmt.Fprint(out, payload.Payload)
	}

	summaryDest := os.Stdout
	if fv.Show {
		summaryDest = os.Stderr
	}

	if err := clipboard.Write(payload.Payload); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	fmt.Fprintf(summaryDest, "Copied %d lines (%d tokens)\n", payload.Lines, payload.Tokens)

	if fv.Stats {
		printStats(result)
	}
	return nil
}
