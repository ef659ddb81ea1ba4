package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dshills/docshift/internal/mcp"
)

// newServeCmd creates and returns the serve command.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve conversion tools over MCP on stdio",
		Long: `Serve starts a Model Context Protocol server on stdio exposing the
convert_source, list_docstrings, and guess_style tools. Stdout carries
the protocol; logs go to stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			srv, err := mcp.NewServer(cfg)
			if err != nil {
				return err
			}
			return srv.Serve(cmd.Context())
		},
	}
}
