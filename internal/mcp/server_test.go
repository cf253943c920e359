package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/scrytools/mcp-rtf-reader/internal/config"
	"github.com/scrytools/mcp-rtf-reader/internal/rtf"
)

// sampleDoc is a minimal Scrivener-flavored document used across the
// handler tests.
const sampleDoc = `{\rtf1\ansi\ansicpg1252
\pard Hello from the handler tests.\
}`

func TestNewServer(t *testing.T) {
	// Create temp directory for test
	tempDir, err := os.MkdirTemp("", "mcp_server_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	maxFileSize := int64(1024 * 1024)
	rtfService, err := rtf.NewService(maxFileSize, tempDir)
	if err != nil {
		t.Fatalf("Failed to create RTF service: %v", err)
	}

	tests := []struct {
		name        string
		config      *config.Config
		expectError bool
	}{
		{
			name: "valid stdio mode config",
			config: &config.Config{
				Mode:         "stdio",
				RTFDirectory: "/tmp",
				Version:      "1.0.0",
				ServerName:   "test-server",
				LogLevel:     "info",
				MaxFileSize:  maxFileSize,
			},
			expectError: false,
		},
		{
			name: "valid server mode config",
			config: &config.Config{
				Mode:         "server",
				RTFDirectory: "/tmp",
				Version:      "1.0.0",
				ServerName:   "test-server",
				LogLevel:     "info",
				MaxFileSize:  maxFileSize,
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, err := NewServer(tt.config, rtfService)

			if tt.expectError && err == nil {
				t.Errorf("expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if !tt.expectError {
				if server == nil {
					t.Fatal("server should not be nil")
				}
				if server.config != tt.config {
					t.Error("server config not set correctly")
				}
				if server.rtfService != rtfService {
					t.Error("server rtfService not set correctly")
				}
				if server.mcpServer == nil {
					t.Error("mcpServer should be initialized")
				}
			}
		})
	}
}

func TestNewServer_NilService(t *testing.T) {
	cfg := &config.Config{
		Mode:         "stdio",
		RTFDirectory: "/tmp",
		Version:      "1.0.0",
		ServerName:   "test-server",
		MaxFileSize:  1024 * 1024,
	}

	if _, err := NewServer(cfg, nil); err == nil {
		t.Error("expected error for nil service")
	}
}

// newTestServer builds a server over a fresh temp directory.
func newTestServer(t *testing.T, tempDir string) *Server {
	t.Helper()

	cfg := &config.Config{
		Mode:         "stdio",
		RTFDirectory: tempDir,
		Version:      "1.0.0",
		ServerName:   "test-server",
		MaxFileSize:  1024 * 1024,
	}
	rtfService, err := rtf.NewService(cfg.MaxFileSize, cfg.RTFDirectory)
	if err != nil {
		t.Fatalf("Failed to create RTF service: %v", err)
	}
	server, err := NewServer(cfg, rtfService)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return server
}

func TestServer_HandleRTFReadFile(t *testing.T) {
	tempDir := t.TempDir()
	server := newTestServer(t, tempDir)

	testFile := filepath.Join(tempDir, "test.rtf")
	if err := os.WriteFile(testFile, []byte(sampleDoc), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"path": testFile,
			},
		},
	}

	result, err := server.handleRTFReadFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil {
		t.Fatal("result should not be nil")
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Hello from the handler tests.") {
		t.Errorf("content should contain the recovered text, got: %s", resultText)
	}
	if !strings.Contains(resultText, "Paragraphs: 1") {
		t.Errorf("content should mention the paragraph count, got: %s", resultText)
	}
}

func TestServer_HandleRTFValidateFile(t *testing.T) {
	tempDir := t.TempDir()
	server := newTestServer(t, tempDir)

	// Not a real RTF document.
	testFile := filepath.Join(tempDir, "test.rtf")
	if err := os.WriteFile(testFile, make([]byte, 1024), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"path": testFile,
			},
		},
	}

	result, err := server.handleRTFValidateFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil {
		t.Fatal("result should not be nil")
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "RTF validation failed") {
		t.Errorf("expected validation to fail, got: %s", resultText)
	}
}

func TestServer_HandleRTFAnnotationsFile(t *testing.T) {
	tempDir := t.TempDir()
	server := newTestServer(t, tempDir)

	annotated := `{\rtf1\ansi\ansicpg1252
\pard \{\\Scrv_annot \\color=\{\\R=0.1\\G=0.4\\B=0.2\} \\text=remember this\\end_Scrv_annot\}Body text.\
}`
	testFile := filepath.Join(tempDir, "annotated.rtf")
	if err := os.WriteFile(testFile, []byte(annotated), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"path": testFile,
			},
		},
	}

	result, err := server.handleRTFAnnotationsFile(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil {
		t.Fatal("result should not be nil")
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Total annotations found: 1") {
		t.Errorf("content should mention 1 annotation, got: %s", resultText)
	}
	if !strings.Contains(resultText, "remember this") {
		t.Errorf("content should contain the annotation payload, got: %s", resultText)
	}
}

func TestServer_HandleRTFSearchDirectory(t *testing.T) {
	tempDir := t.TempDir()
	server := newTestServer(t, tempDir)

	testFiles := []string{"doc1.rtf", "doc2.rtf", "report.txt"}
	for _, filename := range testFiles {
		filePath := filepath.Join(tempDir, filename)
		if err := os.WriteFile(filePath, []byte(sampleDoc), 0o644); err != nil {
			t.Fatalf("failed to create test file %s: %v", filename, err)
		}
	}

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"directory": tempDir,
				"query":     "",
			},
		},
	}

	result, err := server.handleRTFSearchDirectory(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil {
		t.Fatal("result should not be nil")
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "Found 2 RTF file(s)") {
		t.Errorf("content should mention 2 RTF files, got: %s", resultText)
	}
}

func TestServer_HandleRTFServerInfo(t *testing.T) {
	tempDir := t.TempDir()
	server := newTestServer(t, tempDir)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{},
		},
	}

	result, err := server.handleRTFServerInfo(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil {
		t.Fatal("result should not be nil")
	}

	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, "test-server") {
		t.Errorf("content should mention the server name, got: %s", resultText)
	}
	if !strings.Contains(resultText, "rtf_read_file") {
		t.Errorf("content should list the available tools, got: %s", resultText)
	}
}

func TestServer_DefaultDirectory(t *testing.T) {
	tempDir := t.TempDir()
	server := newTestServer(t, tempDir)

	// Create request without directory (should use default)
	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"query": "",
			},
		},
	}

	result, err := server.handleRTFSearchDirectory(context.Background(), request)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result == nil {
		t.Fatal("result should not be nil")
	}

	// Verify it used the default directory
	resultText := extractTextFromResult(result)
	if !strings.Contains(resultText, tempDir) {
		t.Errorf("content should mention default directory %s, got: %s", tempDir, resultText)
	}
}

func TestServer_InvalidArguments(t *testing.T) {
	server := newTestServer(t, t.TempDir())

	// Test with missing required arguments
	emptyRequest := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{},
		},
	}

	// Test each handler that requires arguments
	handlers := []struct {
		name    string
		handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
	}{
		{"RTFReadFile", server.handleRTFReadFile},
		{"RTFAnnotationsFile", server.handleRTFAnnotationsFile},
		{"RTFValidateFile", server.handleRTFValidateFile},
	}

	for _, h := range handlers {
		t.Run(h.name, func(t *testing.T) {
			result, err := h.handler(context.Background(), emptyRequest)
			if err != nil {
				t.Errorf("handler should not return error, got: %v", err)
			}
			if result == nil {
				t.Fatal("result should not be nil")
			}

			// Check if it's an error result
			resultText := extractTextFromResult(result)
			if !strings.Contains(resultText, "required") && !strings.Contains(resultText, "missing") && !strings.Contains(resultText, "error") {
				t.Errorf("expected error message for missing arguments, got: %s", resultText)
			}
		})
	}
}

func TestFormatMethods(t *testing.T) {
	server := newTestServer(t, t.TempDir())

	// Test formatRTFSearchDirectoryResult
	searchResult := &rtf.RTFSearchDirectoryResult{
		Files: []rtf.FileInfo{
			{
				Name:         "test.rtf",
				Path:         "/tmp/test.rtf",
				Size:         1024,
				ModifiedTime: "2023-01-01 12:00:00",
			},
		},
		TotalCount:  1,
		Directory:   "/tmp",
		SearchQuery: "test",
	}

	formatted := server.formatRTFSearchDirectoryResult(searchResult)
	if !strings.Contains(formatted, "Found 1 RTF file(s)") {
		t.Error("formatted result should contain file count")
	}
	if !strings.Contains(formatted, "test.rtf") {
		t.Error("formatted result should contain filename")
	}

	// Test formatRTFAnnotationsFileResult
	annotationsResult := &rtf.RTFAnnotationsFileResult{
		Path:        "/tmp/test.rtf",
		Annotations: []string{"first note", "second note"},
		TotalCount:  2,
	}

	formatted = server.formatRTFAnnotationsFileResult(annotationsResult)
	if !strings.Contains(formatted, "Total annotations found: 2") {
		t.Error("formatted result should contain annotation count")
	}
	if !strings.Contains(formatted, "1. first note") {
		t.Error("formatted result should number the annotations")
	}

	// Test formatRTFServerInfoResult
	infoResult := &rtf.RTFServerInfoResult{
		ServerName:       "test-server",
		Version:          "1.0.0",
		DefaultDirectory: "/tmp",
		MaxFileSize:      100 * 1024 * 1024,
		AvailableTools: []rtf.ToolInfo{
			{
				Name:        "rtf_read_file",
				Description: "Recover the plain text content of an RTF file",
				Usage:       "Provide a path to an RTF file",
				Parameters:  "path (required)",
			},
		},
		UsageGuidance: "Start with rtf_search_directory to discover files.",
	}

	formatted = server.formatRTFServerInfoResult(infoResult)
	if !strings.Contains(formatted, "test-server v1.0.0") {
		t.Error("formatted result should contain the server name and version")
	}
	if !strings.Contains(formatted, "rtf_read_file") {
		t.Error("formatted result should list the tools")
	}
	if !strings.Contains(formatted, "rtf_search_directory") {
		t.Error("formatted result should contain the usage guidance")
	}
}

// Helper function to extract text from a CallToolResult
func extractTextFromResult(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}

	// Try to extract text content
	for _, content := range result.Content {
		if textContent, ok := content.(mcp.TextContent); ok {
			return textContent.Text
		}
		// Handle pointer to TextContent as well
		if textContentPtr, ok := content.(*mcp.TextContent); ok {
			return textContentPtr.Text
		}
	}

	return ""
}
