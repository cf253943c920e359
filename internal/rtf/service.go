package rtf

import (
	"fmt"
	"time"

	"github.com/scrytools/mcp-rtf-reader/internal/rtf/security"
)

// Service handles RTF file operations by orchestrating the recovery components
type Service struct {
	maxFileSize   int64
	reader        *Reader
	validator     *Validator
	search        *Search
	pathValidator *security.PathValidator
}

// NewService creates a new RTF service with all components
func NewService(maxFileSize int64, configuredDirectory string) (*Service, error) {
	pathValidator, err := security.NewPathValidator(configuredDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to create path validator: %w", err)
	}

	return &Service{
		maxFileSize:   maxFileSize,
		reader:        NewReader(maxFileSize),
		validator:     NewValidator(maxFileSize),
		search:        NewSearch(maxFileSize),
		pathValidator: pathValidator,
	}, nil
}

// RTFReadFile recovers the plain text of an RTF file
func (s *Service) RTFReadFile(req RTFReadFileRequest) (*RTFReadFileResult, error) {
	if err := s.pathValidator.ValidatePath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.reader.ReadFile(req)
}

// RTFAnnotationsFile recovers the inline annotations of an RTF file
func (s *Service) RTFAnnotationsFile(req RTFAnnotationsFileRequest) (*RTFAnnotationsFileResult, error) {
	if err := s.pathValidator.ValidatePath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.reader.AnnotationsFile(req)
}

// RTFValidateFile performs validation on an RTF file
func (s *Service) RTFValidateFile(req RTFValidateFileRequest) (*RTFValidateFileResult, error) {
	if err := s.pathValidator.ValidatePath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.validator.ValidateFile(req)
}

// RTFSearchDirectory searches for RTF files in a directory
func (s *Service) RTFSearchDirectory(req RTFSearchDirectoryRequest) (*RTFSearchDirectoryResult, error) {
	// If no directory specified, use configured directory
	if req.Directory == "" {
		req.Directory = s.pathValidator.GetConfiguredDirectory()
	}

	if err := s.pathValidator.ValidateDirectory(req.Directory); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}

	return s.search.SearchDirectory(req)
}

// GetMaxFileSize returns the maximum file size limit
func (s *Service) GetMaxFileSize() int64 {
	return s.maxFileSize
}

// IsValidRTF performs a quick validation check on a file
func (s *Service) IsValidRTF(filePath string) bool {
	return s.validator.IsValidRTF(filePath)
}

// CountRTFsInDirectory counts the number of RTF files in a directory
func (s *Service) CountRTFsInDirectory(directory string) (int, error) {
	return s.search.CountRTFsInDirectory(directory)
}

// FindRTFsInDirectory finds all RTF files in a directory without filtering
func (s *Service) FindRTFsInDirectory(directory string) ([]FileInfo, error) {
	return s.search.FindRTFsInDirectory(directory)
}

// RTFServerInfo returns comprehensive server information and usage guidance
func (s *Service) RTFServerInfo(req RTFServerInfoRequest, serverName, version,
	defaultDirectory string,
) (*RTFServerInfoResult, error) {
	validatedDir := defaultDirectory
	if err := s.pathValidator.ValidateDirectory(defaultDirectory); err != nil {
		// Use the configured directory if validation fails
		validatedDir = s.pathValidator.GetConfiguredDirectory()
	}

	// Scan the directory with a timeout so a slow filesystem cannot
	// hang the info call. Limit to the first 100 files.
	directoryContents := []FileInfo{}

	resultChan := make(chan []FileInfo, 1)
	errorChan := make(chan error, 1)

	go func() {
		files, err := s.search.FindRTFsInDirectoryLimited(validatedDir, 100)
		if err != nil {
			errorChan <- err
			return
		}
		resultChan <- files
	}()

	select {
	case files := <-resultChan:
		directoryContents = files
	case <-errorChan:
		// Don't fail completely if directory scan fails, just return empty contents
		directoryContents = []FileInfo{}
	case <-time.After(5 * time.Second):
		directoryContents = []FileInfo{}
	}

	availableTools := []ToolInfo{
		{
			Name:        "rtf_read_file",
			Description: "Recover the plain text content of an RTF file",
			Usage: "Use this tool to read an RTF document as plain text. Inline annotations are " +
				"removed and Scrivener style tags stripped; each paragraph is one line.",
			Parameters: "path (required): Full absolute path to the RTF file",
		},
		{
			Name:        "rtf_annotations_file",
			Description: "Recover the inline annotations of an RTF file",
			Usage: "Use this tool to read only the inline annotation spans of an RTF document, " +
				"such as Scrivener comments embedded in the text.",
			Parameters: "path (required): Full absolute path to the RTF file",
		},
		{
			Name:        "rtf_validate_file",
			Description: "Validate if a file is a readable RTF document",
			Usage:       "Use this tool to check if a file is a valid RTF document before attempting to read it.",
			Parameters:  "path (required): Full absolute path to the RTF file",
		},
		{
			Name:        "rtf_search_directory",
			Description: "Search for RTF files in a directory with optional name filtering",
			Usage: "Use this tool to find RTF files in the default directory or any specified " +
				"directory. Supports substring matching by filename.",
			Parameters: "directory (optional): Directory path to search (uses default if empty), " +
				"query (optional): Search query for filename matching",
		},
	}

	usageGuidance := `RTF MCP Server Usage Guide:

1. START WITH DISCOVERY:
   - Use 'rtf_search_directory' to find available RTF files

2. VALIDATE FILES:
   - Use 'rtf_validate_file' to check if a file is readable before processing

3. READ CONTENT:
   - Use 'rtf_read_file' to recover the plain text of a document
   - Each entry in 'lines' is one recovered paragraph

4. READ ANNOTATIONS WHEN NEEDED:
   - Use 'rtf_annotations_file' to recover inline annotation spans
     (reviewer comments embedded in the body text)

IMPORTANT NOTES:
- Always use absolute file paths
- The server can handle files up to ` + fmt.Sprintf("%d", s.maxFileSize/(1024*1024)) + `MB
- Binary payloads and unknown control words are skipped, not errors`

	return &RTFServerInfoResult{
		ServerName:        serverName,
		Version:           version,
		DefaultDirectory:  validatedDir,
		MaxFileSize:       s.maxFileSize,
		AvailableTools:    availableTools,
		DirectoryContents: directoryContents,
		UsageGuidance:     usageGuidance,
	}, nil
}

// ValidateConfiguration validates the service configuration
func (s *Service) ValidateConfiguration() error {
	if s.maxFileSize <= 0 {
		return fmt.Errorf("maxFileSize must be greater than 0")
	}
	if s.maxFileSize > 1024*1024*1024 { // 1GB limit
		return fmt.Errorf("maxFileSize cannot exceed 1GB")
	}
	return nil
}
