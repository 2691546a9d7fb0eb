// Package tools exposes the workspace to the agent loop as MCP tools.
//
// Each tool is a struct with its dependencies injected through the
// constructor, a Definition() for registration and a Handle method.
// Handlers call exactly one store read or one gateway operation and
// always return a string to the agent: serialized JSON on success, or
// a message prefixed "Error: " on any failure. Nothing errors or
// panics past this boundary.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult serializes v for the agent.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return errResult(fmt.Errorf("serializing result: %w", err))
	}
	return mcp.NewToolResultText(string(data))
}

// errResult converts any failure into the textual form the agent
// expects.
func errResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err))
}

// optString returns a pointer to the argument's value, or nil when the
// argument was not supplied. Absent and empty are different things: an
// absent optional field must be omitted from the outgoing request so
// the remote keeps its current value.
func optString(req mcp.CallToolRequest, name string) *string {
	v, ok := req.GetArguments()[name]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// optFloat is optString for number arguments.
func optFloat(req mcp.CallToolRequest, name string) *float64 {
	v, ok := req.GetArguments()[name]
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	}
	return nil
}

// optStringSlice returns the argument's values, or nil when absent.
func optStringSlice(req mcp.CallToolRequest, name string) *[]string {
	v, ok := req.GetArguments()[name]
	if !ok {
		return nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return &out
}
