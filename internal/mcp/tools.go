package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/docshift/internal/converter"
	"github.com/dshills/docshift/internal/docparse"
	"github.com/dshills/docshift/internal/pyscan"
	"github.com/dshills/docshift/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams    = -32602 // Invalid method parameters
	ErrorCodeInternalError    = -32603 // Internal JSON-RPC error
	ErrorCodeUnsupportedStyle = -32001 // Style name is not a registered grammar or renderer
)

// handleConvertSource handles the convert_source tool invocation
func (s *Server) handleConvertSource(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	source, ok := args["source"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "source parameter is required", map[string]interface{}{
			"param":  "source",
			"reason": "missing",
		})
	}

	cfg := *s.cfg
	cfg.InputStyle = getStringDefault(args, "input_style", cfg.InputStyle)
	cfg.OutputStyle = getStringDefault(args, "output_style", cfg.OutputStyle)
	if err := cfg.Validate(); err != nil {
		return nil, newMCPError(ErrorCodeUnsupportedStyle, "invalid style", map[string]interface{}{
			"error": err.Error(),
		})
	}

	lines, trailingNewline := splitSource(source)
	result, err := converter.New(&cfg, nil).ConvertSource(lines)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "conversion failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	converted := strings.Join(result.Lines, "\n")
	if trailingNewline {
		converted += "\n"
	}
	response := map[string]interface{}{
		"source":               converted,
		"output_style":         cfg.OutputStyle,
		"docstrings_converted": result.Converted,
		"docstrings_skipped":   result.Skipped,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListDocstrings handles the list_docstrings tool invocation
func (s *Server) handleListDocstrings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	source, ok := args["source"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "source parameter is required", map[string]interface{}{
			"param":  "source",
			"reason": "missing",
		})
	}

	lines, _ := splitSource(source)
	captures := pyscan.NewLocator(lines).Locate()

	docstrings := make([]map[string]interface{}, 0, len(captures))
	for _, capture := range captures {
		entry := map[string]interface{}{
			// Line numbers are 1-based and inclusive.
			"start_line": capture.StartLine + 1,
			"end_line":   capture.EndLine,
			"lines":      len(capture.Lines),
		}
		if len(capture.Args) > 0 {
			entry["args"] = capture.Args
		}
		if len(capture.Keywords) > 0 {
			entry["keywords"] = capture.Keywords
		}
		if capture.VarArg != "" {
			entry["vararg"] = capture.VarArg
		}
		if capture.KwArg != "" {
			entry["kwarg"] = capture.KwArg
		}
		if style, ok := docparse.DetectStyle(capture.Lines); ok {
			entry["style"] = string(style)
		}
		docstrings = append(docstrings, entry)
	}

	response := map[string]interface{}{
		"count":      len(docstrings),
		"docstrings": docstrings,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGuessStyle handles the guess_style tool invocation
func (s *Server) handleGuessStyle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	docstring, ok := args["docstring"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "docstring parameter is required", map[string]interface{}{
			"param":  "docstring",
			"reason": "missing",
		})
	}

	lines, _ := splitSource(docstring)
	response := map[string]interface{}{
		"detected": false,
	}
	if style, ok := docparse.DetectStyle(lines); ok {
		response["detected"] = true
		response["style"] = string(style)
	} else {
		response["style"] = string(types.InputGuess)
		response["message"] = "no rest or epytext fields found; the base grammar would pass the text through"
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// splitSource splits source text into lines without newline characters,
// reporting whether the text ended with a newline.
func splitSource(source string) ([]string, bool) {
	trailing := strings.HasSuffix(source, "\n")
	if trailing {
		source = source[:len(source)-1]
	}
	return strings.Split(source, "\n"), trailing
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok && val != "" {
		return val
	}
	return defaultValue
}
