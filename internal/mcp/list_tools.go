package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/akfite/dirlist/internal/core/lister"
)

// listResult is the fs_list payload: three index-aligned arrays of equal
// length, one element per directory entry.
type listResult struct {
	Paths []string `json:"paths"`
	Names []string `json:"names"`
	Types []uint8  `json:"types"`
}

// typeInfo describes one row of the fs_types table.
type typeInfo struct {
	Code uint8  `json:"code"`
	Name string `json:"name"`
}

// registerTools registers all dirlist tools
func (s *Server) registerTools() {
	// fs_list tool
	s.mcpServer.AddTool(mcp.NewTool("fs_list",
		mcp.WithDescription("List the immediate contents of a directory. Returns index-aligned arrays of paths, base names, and numeric type codes (see fs_types)."),
		mcp.WithString("path",
			mcp.Description("Directory to list"),
			mcp.Required(),
		),
		mcp.WithBoolean("canonicalize",
			mcp.Description("Resolve each entry to its canonical absolute path; fails if any entry cannot be resolved"),
		),
		mcp.WithBoolean("report_symlinks",
			mcp.Description("Classify symlinks as symlinks instead of by their target's type"),
		),
		mcp.WithBoolean("strict",
			mcp.Description("Fail the whole listing if any entry cannot be classified"),
		),
	), s.handleFsList)

	// fs_types tool
	s.mcpServer.AddTool(mcp.NewTool("fs_types",
		mcp.WithDescription("Get the stable numeric type code table used by fs_list"),
	), s.handleFsTypes)
}

func (s *Server) handleFsList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, fmt.Errorf("path is required")
	}

	opts := s.defaults
	if v, ok := args["canonicalize"].(bool); ok {
		opts.Canonicalize = v
	}
	if v, ok := args["report_symlinks"].(bool); ok {
		opts.ReportSymlinks = v
	}
	if v, ok := args["strict"].(bool); ok {
		opts.Strict = v
	}

	s.log.Debug("fs_list", "path", path,
		"canonicalize", opts.Canonicalize,
		"report_symlinks", opts.ReportSymlinks,
		"strict", opts.Strict)

	listing, err := s.lister.List(ctx, path, opts)
	if err != nil {
		return nil, listError(err)
	}

	return jsonResult(listResult{
		Paths: listing.Paths(),
		Names: listing.Names(),
		Types: listing.TypeCodes(),
	})
}

func (s *Server) handleFsTypes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	table := make([]typeInfo, 0, 10)
	for code := lister.TypeNone; code <= lister.TypeUnknown; code++ {
		table = append(table, typeInfo{Code: uint8(code), Name: code.String()})
	}
	return jsonResult(table)
}

// jsonResult marshals data into a text content tool result
func jsonResult(data interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: string(jsonData),
			},
		},
	}, nil
}
