package mcp

import (
	"context"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/scrytools/mcp-rtf-reader/internal/config"
	"github.com/scrytools/mcp-rtf-reader/internal/rtf"
)

// Server represents the MCP server instance
type Server struct {
	config     *config.Config
	rtfService *rtf.Service
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, rtfService *rtf.Service) (*Server, error) {
	if rtfService == nil {
		return nil, fmt.Errorf("rtfService cannot be nil")
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // We don't support dynamic tool capabilities
	)

	s := &Server{
		config:     cfg,
		rtfService: rtfService,
		mcpServer:  mcpServer,
	}

	// Register tools
	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	// Register RTF read file tool
	rtfReadFileTool := mcp.NewTool(
		"rtf_read_file",
		mcp.WithDescription("Recover the plain text content of an RTF file"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the RTF file"),
		),
	)
	s.mcpServer.AddTool(rtfReadFileTool, s.handleRTFReadFile)

	// Register RTF annotations file tool
	rtfAnnotationsFileTool := mcp.NewTool(
		"rtf_annotations_file",
		mcp.WithDescription("Recover the inline annotations of an RTF file"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the RTF file"),
		),
	)
	s.mcpServer.AddTool(rtfAnnotationsFileTool, s.handleRTFAnnotationsFile)

	// Register RTF validate file tool
	rtfValidateFileTool := mcp.NewTool(
		"rtf_validate_file",
		mcp.WithDescription("Validate if a file is a readable RTF document"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the RTF file"),
		),
	)
	s.mcpServer.AddTool(rtfValidateFileTool, s.handleRTFValidateFile)

	// Register RTF search directory tool
	rtfSearchDirectoryTool := mcp.NewTool(
		"rtf_search_directory",
		mcp.WithDescription("Search for RTF files in a directory with optional name filtering"),
		mcp.WithString("directory",
			mcp.Description("Directory path to search (uses default if empty)"),
		),
		mcp.WithString("query",
			mcp.Description("Optional search query for filename matching"),
		),
	)
	s.mcpServer.AddTool(rtfSearchDirectoryTool, s.handleRTFSearchDirectory)

	// Register RTF server info tool
	rtfServerInfoTool := mcp.NewTool(
		"rtf_server_info",
		mcp.WithDescription("Get server information, available tools, directory contents, and usage guidance"),
	)
	s.mcpServer.AddTool(rtfServerInfoTool, s.handleRTFServerInfo)
}

// Handler functions
func (s *Server) handleRTFReadFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := rtf.RTFReadFileRequest{Path: path}
	result, err := s.rtfService.RTFReadFile(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Successfully read RTF: %s\n", result.Path)
	responseText += fmt.Sprintf("Size: %d bytes\n", result.Size)
	responseText += fmt.Sprintf("Paragraphs: %d\n", result.LineCount)

	if result.LineCount == 0 {
		responseText += "\n⚠️  WARNING: This RTF document appears to have no readable body text.\n"
	}

	responseText += "\nContent:\n"
	responseText += result.Content

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleRTFAnnotationsFile(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := rtf.RTFAnnotationsFileRequest{Path: path}
	result, err := s.rtfService.RTFAnnotationsFile(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := s.formatRTFAnnotationsFileResult(result)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleRTFValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := rtf.RTFValidateFileRequest{Path: path}
	result, err := s.rtfService.RTFValidateFile(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.Valid {
		responseText = fmt.Sprintf("RTF file %s is valid and readable", result.Path)
	} else {
		responseText = fmt.Sprintf("RTF validation failed for %s: %s", result.Path, result.Message)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleRTFSearchDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	args := request.GetArguments()

	directory := s.config.RTFDirectory // default
	if dir, ok := args["directory"].(string); ok && dir != "" {
		directory = dir
	}

	query := ""
	if q, ok := args["query"].(string); ok {
		query = q
	}

	req := rtf.RTFSearchDirectoryRequest{
		Directory: directory,
		Query:     query,
	}

	result, err := s.rtfService.RTFSearchDirectory(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.TotalCount == 0 {
		responseText = fmt.Sprintf("No RTF files found in directory: %s", result.Directory)
		if result.SearchQuery != "" {
			responseText += fmt.Sprintf(" (searched for: %s)", result.SearchQuery)
		}
	} else {
		responseText = s.formatRTFSearchDirectoryResult(result)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleRTFServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req := rtf.RTFServerInfoRequest{}
	result, err := s.rtfService.RTFServerInfo(req, s.config.ServerName, s.config.Version, s.config.RTFDirectory)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := s.formatRTFServerInfoResult(result)
	return mcp.NewToolResultText(responseText), nil
}

// Formatting methods
func (s *Server) formatRTFAnnotationsFileResult(result *rtf.RTFAnnotationsFileResult) string {
	text := fmt.Sprintf("RTF annotations for: %s\n", result.Path)
	text += fmt.Sprintf("Total annotations found: %d\n", result.TotalCount)

	if result.TotalCount > 0 {
		text += "\nAnnotations:\n"
		for i, annotation := range result.Annotations {
			text += fmt.Sprintf("%d. %s\n", i+1, annotation)
		}
	}

	return text
}

func (s *Server) formatRTFSearchDirectoryResult(result *rtf.RTFSearchDirectoryResult) string {
	text := fmt.Sprintf("Found %d RTF file(s) in directory: %s\n", result.TotalCount, result.Directory)
	if result.SearchQuery != "" {
		text += fmt.Sprintf("Search query: %s\n", result.SearchQuery)
	}
	text += "\nFiles:\n"

	for i, file := range result.Files {
		text += fmt.Sprintf("%d. %s\n", i+1, file.Name)
		text += fmt.Sprintf("   Path: %s\n", file.Path)
		text += fmt.Sprintf("   Size: %d bytes\n", file.Size)
		text += fmt.Sprintf("   Modified: %s\n", file.ModifiedTime)
		if i < len(result.Files)-1 {
			text += "\n"
		}
	}

	return text
}

func (s *Server) formatRTFServerInfoResult(result *rtf.RTFServerInfoResult) string {
	text := fmt.Sprintf("📋 %s v%s - Server Information\n", result.ServerName, result.Version)
	text += fmt.Sprintf("📁 Default Directory: %s\n", result.DefaultDirectory)
	text += fmt.Sprintf("📏 Max File Size: %d MB\n\n", result.MaxFileSize/(1024*1024))

	// Directory contents
	if len(result.DirectoryContents) > 0 {
		text += fmt.Sprintf("📂 Directory Contents (%d RTF files found):\n", len(result.DirectoryContents))
		for i, file := range result.DirectoryContents {
			if i >= 10 { // Limit to first 10 files for readability
				text += fmt.Sprintf("   ... and %d more files\n", len(result.DirectoryContents)-10)
				break
			}
			text += fmt.Sprintf("   %d. %s (%d bytes)\n", i+1, file.Name, file.Size)
		}
		text += "\n"
	} else {
		text += "📂 Directory Contents: No RTF files found in default directory\n\n"
	}

	// Available tools
	text += "🛠️  Available Tools:\n"
	for _, tool := range result.AvailableTools {
		text += fmt.Sprintf("\n• %s\n", tool.Name)
		text += fmt.Sprintf("  Description: %s\n", tool.Description)
		text += fmt.Sprintf("  Usage: %s\n", tool.Usage)
		text += fmt.Sprintf("  Parameters: %s\n", tool.Parameters)
	}

	// Usage guidance
	text += "\n" + result.UsageGuidance

	return text
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	} else {
		return s.runStdioMode(ctx)
	}
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting RTF MCP server in stdio mode")
		log.Printf("RTF directory: %s", s.config.RTFDirectory)
	}

	// Use the mark3labs/mcp-go server.ServeStdio function
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode
func (s *Server) runServerMode(ctx context.Context) error {
	// For now, we'll just use stdio mode since the mark3labs library
	// handles the transport differently
	log.Printf("Server mode not yet implemented with mark3labs/mcp-go")
	log.Printf("Falling back to stdio mode")
	return s.runStdioMode(ctx)
}
