// Package cmd provides the command-line interface for docshift.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/docshift/internal/config"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docshift",
	Short: "Convert Python docstrings between styles",
	Long: `Docshift converts the docstrings of Python source files between
documentation styles: reST and epytext in, and reST, epytext, google, or
numpy out.

By default conversion prints unified diffs; with --in-place the files are
rewritten. Everything except the docstrings is left untouched.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogging)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// initLogging routes logs to stderr. Stdout is reserved for diffs and, in
// serve mode, the MCP protocol.
func initLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// loadConfig builds the conversion configuration from defaults, the
// optional --config file, and DOCSHIFT_ environment variables.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}
