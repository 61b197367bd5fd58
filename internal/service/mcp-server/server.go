package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"jira_mcp/internal/service/jira"
)

// NewServer creates an MCP server with the Jira tools registered against
// the given client.
func NewServer(client *jira.Client) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		"jira-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions("Jira MCP Server - Search, retrieve, and comment on Jira issues"),
		server.WithRecovery(),
	)

	if err := registerJiraTools(s, client); err != nil {
		return nil, err
	}

	return s, nil
}

// Serve runs the MCP server over stdin/stdout until the stream closes.
// stdout carries the protocol; all logging goes to stderr.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
