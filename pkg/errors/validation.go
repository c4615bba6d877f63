package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// sampleNameRegex matches gallery sample names: lowercase words joined by dashes.
var sampleNameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateSampleName checks that name is a well-formed gallery sample name.
// It does not check that the sample exists.
func ValidateSampleName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "sample name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "sample name too long (max 64 characters)")
	}
	if !sampleNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid sample name: %q", name)
	}
	return nil
}

// ValidateOutputPath validates an output base path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No backslashes (Windows-style paths)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
