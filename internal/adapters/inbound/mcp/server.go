package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewPipeshiftMCPServer creates an MCP server with all pipeshift tools
// registered. The sourcePath is the pipeline definition the tools operate on.
func NewPipeshiftMCPServer(sourcePath string) *server.MCPServer {
	s := server.NewMCPServer(
		"pipeshift",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, sourcePath)

	return s
}
