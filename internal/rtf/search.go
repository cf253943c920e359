package rtf

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Search handles directory operations for RTF files
type Search struct {
	maxFileSize int64
}

// NewSearch creates a new RTF search component
func NewSearch(maxFileSize int64) *Search {
	return &Search{maxFileSize: maxFileSize}
}

// SearchDirectory lists RTF files in a directory, optionally filtered
// by a case-insensitive substring query on the file name.
func (s *Search) SearchDirectory(req RTFSearchDirectoryRequest) (*RTFSearchDirectoryResult, error) {
	files, err := s.FindRTFsInDirectory(req.Directory)
	if err != nil {
		return nil, err
	}

	if req.Query != "" {
		query := strings.ToLower(req.Query)
		matched := make([]FileInfo, 0, len(files))
		for _, f := range files {
			if strings.Contains(strings.ToLower(f.Name), query) {
				matched = append(matched, f)
			}
		}
		files = matched
	}

	return &RTFSearchDirectoryResult{
		Directory:   req.Directory,
		SearchQuery: req.Query,
		Files:       files,
		TotalCount:  len(files),
	}, nil
}

// FindRTFsInDirectory finds all RTF files in a directory.
func (s *Search) FindRTFsInDirectory(directory string) ([]FileInfo, error) {
	return s.findRTFs(directory, -1)
}

// FindRTFsInDirectoryLimited finds up to limit RTF files in a directory.
func (s *Search) FindRTFsInDirectoryLimited(directory string, limit int) ([]FileInfo, error) {
	return s.findRTFs(directory, limit)
}

// CountRTFsInDirectory counts the RTF files in a directory.
func (s *Search) CountRTFsInDirectory(directory string) (int, error) {
	files, err := s.FindRTFsInDirectory(directory)
	if err != nil {
		return 0, err
	}
	return len(files), nil
}

func (s *Search) findRTFs(directory string, limit int) ([]FileInfo, error) {
	if directory == "" {
		return nil, fmt.Errorf("directory cannot be empty")
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", directory, err)
	}

	files := []FileInfo{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".rtf") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:         entry.Name(),
			Path:         filepath.Join(directory, entry.Name()),
			Size:         info.Size(),
			ModifiedTime: info.ModTime().Format("2006-01-02 15:04:05"),
		})
		if limit > 0 && len(files) >= limit {
			break
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
