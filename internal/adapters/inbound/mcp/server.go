package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/zestyzomato/zesty/internal/domain"
)

// NewZestyMCPServer creates a new MCP server with all Zesty tools and
// resources registered. Every request loads state from the store described
// by cfg and saves it again after a mutation.
func NewZestyMCPServer(cfg domain.Config, log zerolog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"zesty",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	h := &handlers{cfg: cfg, log: log}
	registerTools(s, h)
	registerResources(s, h)

	return s
}
