package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// convertSourceTool returns the tool definition for convert_source
func convertSourceTool() mcp.Tool {
	return mcp.Tool{
		Name:        "convert_source",
		Description: "Convert every docstring in Python source text to another docstring style",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"source": map[string]interface{}{
					"type":        "string",
					"description": "Python source text to convert",
				},
				"input_style": map[string]interface{}{
					"type":        "string",
					"description": "Docstring style to parse. With guess, each docstring's style is detected individually",
					"enum":        []string{"guess", "rest", "epytext"},
				},
				"output_style": map[string]interface{}{
					"type":        "string",
					"description": "Docstring style to write",
					"enum":        []string{"rest", "epytext", "google", "numpy"},
				},
			},
			Required: []string{"source"},
		},
	}
}

// listDocstringsTool returns the tool definition for list_docstrings
func listDocstringsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_docstrings",
		Description: "Locate every docstring in Python source text, with line ranges and declaration parameters",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"source": map[string]interface{}{
					"type":        "string",
					"description": "Python source text to scan",
				},
			},
			Required: []string{"source"},
		},
	}
}

// guessStyleTool returns the tool definition for guess_style
func guessStyleTool() mcp.Tool {
	return mcp.Tool{
		Name:        "guess_style",
		Description: "Detect the docstring style (rest or epytext) of docstring text",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"docstring": map[string]interface{}{
					"type":        "string",
					"description": "Docstring text, including or excluding the quote delimiters",
				},
			},
			Required: []string{"docstring"},
		},
	}
}
