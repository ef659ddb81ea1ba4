// Package mcp implements the Model Context Protocol server for docshift.
//
// The server speaks MCP over stdio: stdout carries the protocol, so every
// log line in serve mode must go to stderr.
//
// # Tools
//
// Three tools are exposed:
//
//   - convert_source: convert every docstring in Python source text to
//     another docstring style. Accepts optional input_style and
//     output_style overrides; otherwise the server's configuration is
//     used.
//   - list_docstrings: locate every docstring in Python source text and
//     report 1-based line ranges, declaration parameters, and the
//     detected style of each.
//   - guess_style: detect whether docstring text uses rest or epytext
//     fields.
//
// # Basic Usage
//
//	srv, err := mcp.NewServer(cfg)
//	if err != nil {
//	    return err
//	}
//	return srv.Serve(ctx)
//
// # Error Handling
//
// Handlers return MCPError values carrying JSON-RPC error codes:
// invalid parameters (-32602), internal errors (-32603), and unsupported
// style names (-32001). Conversion itself never mutates files here; the
// tools operate on source text in and out.
package mcp
