package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/docshift/internal/config"
)

const (
	// ServerName is the MCP server name
	ServerName = "docshift-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp *server.MCPServer
	cfg *config.Config
}

// NewServer creates a new MCP server instance. cfg supplies the default
// input and output styles; individual tool calls may override them.
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp: mcpServer,
		cfg: cfg,
	}

	s.registerTools()
	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown. Stdout
// carries the protocol; all logging must go to stderr.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(convertSourceTool(), s.handleConvertSource)
	s.mcp.AddTool(listDocstringsTool(), s.handleListDocstrings)
	s.mcp.AddTool(guessStyleTool(), s.handleGuessStyle)
}
