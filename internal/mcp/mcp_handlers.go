package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/wayscan/wayscan/core"
	"github.com/wayscan/wayscan/internal/cdx"
	"github.com/wayscan/wayscan/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

func (h *toolHandler) handleAnalyzeDomain(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Quiet = true // keep stdio clean for the protocol

	domain := request.GetString("domain", "")
	if domain == "" {
		return mcp.NewToolResultError("domain is required"), nil
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.FetchLimit = l
	}
	if e := request.GetString("endpoint", ""); e != "" {
		cfg.Endpoint = e
	}

	client := cdx.NewClient(cfg.Endpoint, cfg.FetchLimit, cfg.FetchTimeout)
	report, err := core.AnalyzeDomain(ctx, cfg, client, h.mgr, domain)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	if report == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no archive data found for %s", domain)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetHistory(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	store := h.mgr.GetHistoryStore()
	if store == nil {
		return mcp.NewToolResultError("history backend is not configured"), nil
	}

	runs, err := store.GetAllRuns()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("history lookup failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(runs, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
