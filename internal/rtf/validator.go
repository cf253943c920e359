package rtf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// rtfHeader is the magic prefix every RTF document starts with.
var rtfHeader = []byte(`{\rtf`)

// Validator handles RTF file validation
type Validator struct {
	maxFileSize int64
}

// NewValidator creates a new RTF validator
func NewValidator(maxFileSize int64) *Validator {
	return &Validator{maxFileSize: maxFileSize}
}

// ValidateFile checks whether a file is a readable RTF document.
// Validation failures are reported in the result, not as errors.
func (v *Validator) ValidateFile(req RTFValidateFileRequest) (*RTFValidateFileResult, error) {
	result := &RTFValidateFileResult{Path: req.Path}

	if err := v.checkFile(req.Path); err != nil {
		result.Message = err.Error()
		return result, nil
	}

	result.Valid = true
	return result, nil
}

// IsValidRTF performs a quick validation check on a file.
func (v *Validator) IsValidRTF(path string) bool {
	return v.checkFile(path) == nil
}

func (v *Validator) checkFile(path string) error {
	if path == "" {
		return fmt.Errorf("file path cannot be empty")
	}
	if !strings.EqualFold(filepath.Ext(path), ".rtf") {
		return fmt.Errorf("file does not have an .rtf extension")
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file")
	}
	if info.Size() == 0 {
		return fmt.Errorf("file is empty")
	}
	if info.Size() > v.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), v.maxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open file: %w", err)
	}
	defer f.Close()

	header := make([]byte, len(rtfHeader))
	if _, err := io.ReadFull(f, header); err != nil {
		return fmt.Errorf("cannot read file header: %w", err)
	}
	if !bytes.Equal(header, rtfHeader) {
		return fmt.Errorf("file does not start with an RTF header")
	}
	return nil
}
