package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/trustgate/trustgate/core"
	"github.com/trustgate/trustgate/internal/contract"
	"github.com/trustgate/trustgate/internal/outwriter"
	"github.com/trustgate/trustgate/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleEvaluateDataset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.fileConfig(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	profile, bundle, err := core.GetEvaluation(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}

	return evaluationResult(profile, bundle), nil
}

func (h *toolHandler) handleEvaluateTable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.FileType = schema.SQLSource
	cfg.TableName = request.GetString("table", "")
	if b := request.GetString("backend", ""); b != "" {
		cfg.Backend = schema.DatabaseBackend(b)
	}
	if conn := request.GetString("db_connect", ""); conn != "" {
		cfg.DBConnect = conn
	}

	if cfg.Backend == schema.NoneBackend {
		return mcp.NewToolResultError("no database backend configured; pass backend and db_connect"), nil
	}
	if err := contract.ValidateDatabaseConnectionString(cfg.Backend, cfg.DBConnect); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid connection parameters: %v", err)), nil
	}

	profile, bundle, err := core.GetEvaluation(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}

	return evaluationResult(profile, bundle), nil
}

func (h *toolHandler) handleSummarizeDataset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.fileConfig(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	profile, bundle, err := core.GetEvaluation(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}

	summary := outwriter.GenerateExecutiveSummary(profile, bundle, outwriter.ReportTitle)
	return mcp.NewToolResultText(summary), nil
}

// fileConfig builds a per-request config for file-backed tools.
func (h *toolHandler) fileConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	path := request.GetString("path", "")
	if path == "" {
		return nil, fmt.Errorf("path is required")
	}
	cfg := h.baseCfg.Clone()
	cfg.Backend = schema.NoneBackend
	cfg.InputPath = path
	cfg.FileType = schema.SourceType(request.GetString("file_type", ""))
	return cfg, nil
}

// evaluationResult renders the shared JSON payload of the evaluate tools.
func evaluationResult(profile *schema.DatasetProfile, bundle *schema.EvaluationBundle) *mcp.CallToolResult {
	payload := struct {
		Metadata schema.InputMetadata `json:"metadata"`
		*schema.EvaluationBundle
	}{
		Metadata:         profile.Metadata,
		EvaluationBundle: bundle,
	}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData))
}
