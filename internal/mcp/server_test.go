package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/docshift/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	server, err := NewServer(config.Default())
	require.NoError(t, err)
	return server
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultJSON(t *testing.T, result *mcp.CallToolResult) map[string]interface{} {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	var data map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &data))
	return data
}

func TestServerInitialization(t *testing.T) {
	server := newTestServer(t)
	assert.NotNil(t, server.mcp)
	assert.NotNil(t, server.cfg)

	server, err := NewServer(nil)
	require.NoError(t, err)
	assert.NotNil(t, server.cfg)
}

func TestHandleConvertSource(t *testing.T) {
	server := newTestServer(t)

	source := "def f(x):\n" +
		"    \"\"\"Do a thing.\n" +
		"\n" +
		"    :param x: The input.\n" +
		"    \"\"\"\n" +
		"    return x\n"

	result, err := server.handleConvertSource(context.Background(), callRequest(map[string]interface{}{
		"source":       source,
		"output_style": "google",
	}))
	require.NoError(t, err)

	data := resultJSON(t, result)
	assert.Equal(t, "google", data["output_style"])
	assert.Equal(t, float64(1), data["docstrings_converted"])
	assert.Contains(t, data["source"], "Args:")
	assert.Contains(t, data["source"], "x: The input.")
}

func TestHandleConvertSourceMissingParam(t *testing.T) {
	server := newTestServer(t)

	_, err := server.handleConvertSource(context.Background(), callRequest(map[string]interface{}{}))
	require.Error(t, err)
	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
}

func TestHandleConvertSourceBadStyle(t *testing.T) {
	server := newTestServer(t)

	_, err := server.handleConvertSource(context.Background(), callRequest(map[string]interface{}{
		"source":       "x = 1\n",
		"output_style": "latex",
	}))
	require.Error(t, err)
	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeUnsupportedStyle, mcpErr.Code)
}

func TestHandleListDocstrings(t *testing.T) {
	server := newTestServer(t)

	source := "\"\"\"Module.\"\"\"\n" +
		"\n" +
		"def f(a, b=1):\n" +
		"    \"\"\"Doc.\n" +
		"\n" +
		"    :param a: One.\n" +
		"    \"\"\"\n"

	result, err := server.handleListDocstrings(context.Background(), callRequest(map[string]interface{}{
		"source": source,
	}))
	require.NoError(t, err)

	data := resultJSON(t, result)
	assert.Equal(t, float64(2), data["count"])

	docstrings, ok := data["docstrings"].([]interface{})
	require.True(t, ok)
	require.Len(t, docstrings, 2)

	module := docstrings[0].(map[string]interface{})
	assert.Equal(t, float64(1), module["start_line"])
	assert.Equal(t, float64(1), module["end_line"])

	fn := docstrings[1].(map[string]interface{})
	assert.Equal(t, float64(4), fn["start_line"])
	assert.Equal(t, []interface{}{"a"}, fn["args"])
	assert.Equal(t, []interface{}{"b"}, fn["keywords"])
	assert.Equal(t, "rest", fn["style"])
}

func TestHandleGuessStyle(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	result, err := server.handleGuessStyle(ctx, callRequest(map[string]interface{}{
		"docstring": ":param x: The input.",
	}))
	require.NoError(t, err)
	data := resultJSON(t, result)
	assert.Equal(t, true, data["detected"])
	assert.Equal(t, "rest", data["style"])

	result, err = server.handleGuessStyle(ctx, callRequest(map[string]interface{}{
		"docstring": "@param x: The input.",
	}))
	require.NoError(t, err)
	data = resultJSON(t, result)
	assert.Equal(t, "epytext", data["style"])

	result, err = server.handleGuessStyle(ctx, callRequest(map[string]interface{}{
		"docstring": "Just prose, no fields.",
	}))
	require.NoError(t, err)
	data = resultJSON(t, result)
	assert.Equal(t, false, data["detected"])
}
