// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/trustgate/trustgate/internal/contract"
)

// NewMCPServer initializes and configures the Trustgate MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Trustgate Evaluation Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: evaluate_dataset ---
	s.AddTool(mcp.NewTool("evaluate_dataset",
		mcp.WithDescription("Evaluate a tabular dataset file and return its Enterprise Data Trust Index breakdown."),
		mcp.WithString("path", mcp.Description("Path to the dataset file."), mcp.Required()),
		mcp.WithString("file_type", mcp.Description("Source format override (csv, tsv, json, parquet). Inferred from the extension if not specified."), mcp.Enum("csv", "tsv", "json", "parquet")),
	), h.handleEvaluateDataset)

	// --- 2. Tool: evaluate_table ---
	s.AddTool(mcp.NewTool("evaluate_table",
		mcp.WithDescription("Evaluate a SQL table and return its Enterprise Data Trust Index breakdown."),
		mcp.WithString("table", mcp.Description("Name of the table to evaluate."), mcp.Required()),
		mcp.WithString("backend", mcp.Description("Database backend (sqlite, mysql, postgresql). Defaults to the configured backend."), mcp.Enum("sqlite", "mysql", "postgresql")),
		mcp.WithString("db_connect", mcp.Description("Connection string. Defaults to the configured connection.")),
	), h.handleEvaluateTable)

	// --- 3. Tool: summarize_dataset ---
	s.AddTool(mcp.NewTool("summarize_dataset",
		mcp.WithDescription("Evaluate a tabular dataset file and return a plain-text executive summary."),
		mcp.WithString("path", mcp.Description("Path to the dataset file."), mcp.Required()),
		mcp.WithString("file_type", mcp.Description("Source format override (csv, tsv, json, parquet)."), mcp.Enum("csv", "tsv", "json", "parquet")),
	), h.handleSummarizeDataset)

	return s
}

// StartMCPServer starts the Trustgate MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
