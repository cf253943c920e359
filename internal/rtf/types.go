package rtf

// RTFReadFileRequest represents a request to read an RTF file
type RTFReadFileRequest struct {
	Path     string `json:"path"`
	KeepTags bool   `json:"keep_tags,omitempty"`
}

// RTFReadFileResult represents the result of reading an RTF file
type RTFReadFileResult struct {
	Path      string   `json:"path"`
	Size      int64    `json:"size"`
	Lines     []string `json:"lines"`
	LineCount int      `json:"line_count"`
	Content   string   `json:"content"`
}

// RTFAnnotationsFileRequest represents a request for the inline
// annotations of an RTF file
type RTFAnnotationsFileRequest struct {
	Path string `json:"path"`
}

// RTFAnnotationsFileResult represents the inline annotations recovered
// from an RTF file
type RTFAnnotationsFileResult struct {
	Path        string   `json:"path"`
	Size        int64    `json:"size"`
	Annotations []string `json:"annotations"`
	TotalCount  int      `json:"total_count"`
}

// RTFValidateFileRequest represents a request to validate an RTF file
type RTFValidateFileRequest struct {
	Path string `json:"path"`
}

// RTFValidateFileResult represents the result of RTF validation
type RTFValidateFileResult struct {
	Path    string `json:"path"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// RTFSearchDirectoryRequest represents a request to search a directory
// for RTF files
type RTFSearchDirectoryRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query,omitempty"`
}

// RTFSearchDirectoryResult represents the result of a directory search
type RTFSearchDirectoryResult struct {
	Directory   string     `json:"directory"`
	SearchQuery string     `json:"search_query,omitempty"`
	Files       []FileInfo `json:"files"`
	TotalCount  int        `json:"total_count"`
}

// FileInfo contains information about an RTF file
type FileInfo struct {
	Name         string `json:"name"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// RTFServerInfoRequest represents a request for server information
type RTFServerInfoRequest struct{}

// RTFServerInfoResult represents comprehensive server information
type RTFServerInfoResult struct {
	ServerName        string     `json:"server_name"`
	Version           string     `json:"version"`
	DefaultDirectory  string     `json:"default_directory"`
	MaxFileSize       int64      `json:"max_file_size"`
	AvailableTools    []ToolInfo `json:"available_tools"`
	DirectoryContents []FileInfo `json:"directory_contents"`
	UsageGuidance     string     `json:"usage_guidance"`
}

// ToolInfo describes an available MCP tool
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
	Parameters  string `json:"parameters"`
}
