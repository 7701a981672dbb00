package errors

import (
	"strings"
	"unicode"
)

// ValidateFilePath validates a user-supplied file path for basic safety.
// It rejects empty paths, unreasonably long paths, and paths containing
// control characters or null bytes. It does not check existence; callers
// stat the file themselves so they can report a precise error.
func ValidateFilePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateOutputPath validates a PDF output path. In addition to the basic
// file path rules the name must carry a .pdf extension so sheet-splitting
// can derive numbered siblings from the stem.
func ValidateOutputPath(path string) error {
	if err := ValidateFilePath(path); err != nil {
		return err
	}

	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return New(ErrCodeInvalidPath, "output path must end in .pdf: %q", path)
	}

	return nil
}

// ValidateSheetName validates a spreadsheet worksheet name.
// Excel rejects names over 31 characters and a handful of reserved
// characters; mirroring those rules here surfaces typos before a
// workbook open fails with an opaque message.
func ValidateSheetName(name string) error {
	if name == "" {
		return nil // empty means "first sheet"
	}

	if len(name) > 31 {
		return New(ErrCodeInvalidInput, "sheet name too long (max 31 characters): %q", name)
	}

	if strings.ContainsAny(name, `[]:*?/\`) {
		return New(ErrCodeInvalidInput, "sheet name contains reserved characters: %q", name)
	}

	return nil
}
