// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wayscan/wayscan/internal/contract"
)

// NewMCPServer initializes and configures the Wayscan MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Wayscan Archive Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: analyze_domain ---
	s.AddTool(mcp.NewTool("analyze_domain",
		mcp.WithDescription("Analyze Wayback Machine archive coverage for a domain and return a health report."),
		mcp.WithString("domain", mcp.Description("The domain to analyze (scheme prefixes are stripped)."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Maximum number of snapshot rows to request from the CDX index.")),
		mcp.WithString("endpoint", mcp.Description("Override the CDX API endpoint.")),
	), h.handleAnalyzeDomain)

	// --- 2. Tool: get_history ---
	s.AddTool(mcp.NewTool("get_history",
		mcp.WithDescription("Return all recorded analysis runs from the history backend."),
	), h.handleGetHistory)

	return s
}

// StartMCPServer starts the Wayscan MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
