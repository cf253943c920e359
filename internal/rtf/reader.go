package rtf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scrytools/mcp-rtf-reader/internal/rtf/annot"
	"github.com/scrytools/mcp-rtf-reader/internal/rtf/interp"
	"github.com/scrytools/mcp-rtf-reader/internal/rtf/tag"
)

// Reader handles RTF text recovery operations
type Reader struct {
	maxFileSize int64
}

// NewReader creates a new RTF reader
func NewReader(maxFileSize int64) *Reader {
	return &Reader{maxFileSize: maxFileSize}
}

// ReadFile recovers the body text of an RTF file. Inline annotation
// spans are removed and Scrivener style tags stripped, leaving one
// string per recovered paragraph.
func (r *Reader) ReadFile(req RTFReadFileRequest) (*RTFReadFileResult, error) {
	data, size, err := r.loadFile(req.Path)
	if err != nil {
		return nil, err
	}

	paragraphs, err := interp.Paragraphs(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RTF %s: %w", req.Path, err)
	}

	lines, err := annotLines(annot.SkipAnnotations(paragraphs))
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from %s: %w", req.Path, err)
	}
	if !req.KeepTags {
		for i, line := range lines {
			lines[i] = tag.Strip(line)
		}
	}

	return &RTFReadFileResult{
		Path:      req.Path,
		Size:      size,
		Lines:     lines,
		LineCount: len(lines),
		Content:   strings.Join(lines, "\n"),
	}, nil
}

// AnnotationsFile recovers only the inline annotation payloads of an
// RTF file.
func (r *Reader) AnnotationsFile(req RTFAnnotationsFileRequest) (*RTFAnnotationsFileResult, error) {
	data, size, err := r.loadFile(req.Path)
	if err != nil {
		return nil, err
	}

	paragraphs, err := interp.Paragraphs(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RTF %s: %w", req.Path, err)
	}

	annotations, err := annotLines(annot.OnlyAnnotations(paragraphs))
	if err != nil {
		return nil, fmt.Errorf("failed to extract annotations from %s: %w", req.Path, err)
	}

	return &RTFAnnotationsFileResult{
		Path:        req.Path,
		Size:        size,
		Annotations: annotations,
		TotalCount:  len(annotations),
	}, nil
}

// loadFile reads the file after checking it against the size limit.
func (r *Reader) loadFile(path string) ([]byte, int64, error) {
	if path == "" {
		return nil, 0, fmt.Errorf("file path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, fmt.Errorf("cannot access file %s: %w", path, err)
	}
	if info.Size() > r.maxFileSize {
		return nil, 0, fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), r.maxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, info.Size(), nil
}

// annotLines drains a splitter into a slice.
func annotLines(s *annot.Splitter) ([]string, error) {
	lines := []string{}
	for {
		line, err := s.Next()
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
}
