package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/docshift/internal/cache"
)

// Version information set via ldflags during build.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// newVersionCmd creates and returns the version command.
func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), Version)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "docshift %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Build Time: %s\n", BuildTime)
			fmt.Fprintf(cmd.OutOrStdout(), "SQLite Driver: %s\n", cache.DriverName)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "show only the version number")
	return cmd
}
