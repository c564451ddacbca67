// Package server exposes the Marp invocation layer over the Model Context
// Protocol. It declares the fixed tool catalog, validates request arguments,
// and maps invocation results and failures into structured tool results.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"marpmcp/marp"
)

const Name = "marp-mcp-server"

// New builds the MCP server with the four Marp tools registered.
// All tool handlers share one runner; the runner holds configuration only,
// so concurrent calls never share mutable state.
func New(runner *marp.Runner, version string) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	h := &Handlers{runner: runner}

	s.AddTool(convertTool(), h.Convert)
	s.AddTool(getThemesTool(), h.GetThemes)
	s.AddTool(validateTool(), h.Validate)
	s.AddTool(previewTool(), h.Preview)

	return s
}

// ServeStdio runs the server over stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
