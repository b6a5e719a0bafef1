// Package cli implements the Cobra command hierarchy for loctok. The root
// command defined here is the entry point for both the implicit scan
// behavior and the "copy" subcommand, and handles cross-cutting concerns
// like logging initialization and error handling.
package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/loctok/loctok/internal/buildinfo"
	"github.com/loctok/loctok/internal/clierr"
	"github.com/loctok/loctok/internal/config"
	"github.com/loctok/loctok/internal/tokenizer"
)

// flagValues holds the parsed global flag values, populated by
// config.BindFlags during command initialization and validated in
// PersistentPreRunE.
var flagValues *config.FlagValues

var rootCmd = &cobra.Command{
	Use:   "loctok [path]",
	Short: "Count lines of code and tokens in a directory tree.",
	Long: `loctok scans a directory tree, identifies source-like text files, and
reports lines of code and tiktoken-family token counts per file and in
aggregate, rendered as a table, a tree, or JSON.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       buildinfo.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ValidateFlags(flagValues, cmd); err != nil {
			return clierr.Config("invalid flags", err)
		}

		level := config.ResolveLogLevel(flagValues.Verbose, flagValues.Quiet)
		format := config.ResolveLogFormat()
		config.SetupLogging(level, format)

		slog.Debug("logging initialized", "level", level, "format", format)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(cmd, args)
	},
}

func init() {
	flagValues = config.BindFlags(rootCmd)

	rootCmd.RegisterFlagCompletionFunc("format", completeFormat)
	rootCmd.RegisterFlagCompletionFunc("encoding", completeEncoding)

	rootCmd.AddCommand(newCopyCmd())
}

func completeFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"table", "tree", "json"}, cobra.ShellCompDirectiveNoFileComp
}

func completeEncoding(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return tokenizer.Names(), cobra.ShellCompDirectiveNoFileComp
}

// Execute runs the root command and returns an appropriate process exit
// code. If the error is a *clierr.Error, its Code is used; any other
// non-nil error returns ExitConfig (1).
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		return extractExitCode(err)
	}
	return int(clierr.ExitSuccess)
}

// extractExitCode determines the process exit code from an error.
func extractExitCode(err error) int {
	if err == nil {
		return int(clierr.ExitSuccess)
	}
	var ce *clierr.Error
	if errors.As(err, &ce) {
		return int(ce.Code)
	}
	return int(clierr.ExitConfig)
}

// RootCmd returns the root cobra.Command for use in testing.
func RootCmd() *cobra.Command {
	return rootCmd
}

// GlobalFlags returns the parsed global flag values. Available after
// PersistentPreRunE has run.
func GlobalFlags() *config.FlagValues {
	return flagValues
}
