package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/docshift/internal/cache"
	"github.com/dshills/docshift/internal/converter"
)

// newConvertCmd creates and returns the convert command.
func newConvertCmd() *cobra.Command {
	var (
		inputStyle  string
		outputStyle string
		inPlace     bool
		threads     int
		cachePath   string
	)

	cmd := &cobra.Command{
		Use:   "convert [source]",
		Short: "Convert docstrings in a file or directory tree",
		Long: `Convert finds every Python file under source (or converts the single
file given), locates its docstrings, and rewrites them in the output
style. Without --in-place a unified diff per file is printed to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], inputStyle, outputStyle, inPlace, threads, cachePath)
		},
	}

	cmd.Flags().StringVarP(&inputStyle, "input", "i", "", "input docstring style (guess, rest, epytext)")
	cmd.Flags().StringVarP(&outputStyle, "output", "o", "", "output docstring style (rest, epytext, google, numpy)")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "rewrite files instead of printing diffs")
	cmd.Flags().IntVarP(&threads, "threads", "t", 0, "worker count (default: number of CPUs)")
	cmd.Flags().StringVar(&cachePath, "cache", "", "conversion cache database; cached unchanged files are skipped")
	return cmd
}

func runConvert(cmd *cobra.Command, source, inputStyle, outputStyle string, inPlace bool, threads int, cachePath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if inputStyle != "" {
		cfg.InputStyle = inputStyle
	}
	if outputStyle != "" {
		cfg.OutputStyle = outputStyle
	}
	if threads > 0 {
		cfg.Workers = threads
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var store cache.Store
	if cachePath != "" {
		sqliteStore, err := cache.New(cachePath)
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		defer func() { _ = sqliteStore.Close() }()
		store = sqliteStore
	}

	conv := converter.New(cfg, store)
	stats, results, err := conv.Run(cmd.Context(), source, inPlace)
	if err != nil {
		return err
	}

	for _, result := range results {
		if result.Diff != "" {
			fmt.Fprint(cmd.OutOrStdout(), result.Diff)
		}
	}

	if stats.FilesFailed > 0 {
		return fmt.Errorf("%d of %d files failed to convert",
			stats.FilesFailed, stats.FilesFailed+stats.FilesConverted+stats.FilesSkipped)
	}
	return nil
}
