package tools

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// successResult wraps an operation payload as a tool result: JSON text for
// plain clients plus the structured payload for clients that consume it.
func successResult(payload any) (*mcp.CallToolResult, error) {
	text, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("tools: encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: string(text)}},
		StructuredContent: payload,
	}, nil
}

// errorResult collapses any operation failure to the uniform error
// envelope. The envelope is the tool's payload, not a protocol fault, so
// the handler returns it with a nil error.
func errorResult(err error) *mcp.CallToolResult {
	envelope := map[string]any{"error": err.Error()}
	text, _ := json.Marshal(envelope)
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: string(text)}},
		StructuredContent: envelope,
		IsError:           true,
	}
}

func decodeArgs(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
