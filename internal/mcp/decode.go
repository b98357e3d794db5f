package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// decode maps MCP request arguments onto a typed request struct by
// round-tripping them through JSON, so field names and types follow the
// struct tags instead of manual type assertions.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var out T
	raw, err := json.Marshal(req.GetArguments())
	if err == nil {
		err = json.Unmarshal(raw, &out)
	}
	if err != nil {
		return out, fmt.Errorf("decode arguments: %w", err)
	}
	return out, nil
}
