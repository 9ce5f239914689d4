package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateFilename validates an output filename for safety.
// It ensures the filename is a simple basename with the given extension.
func ValidateFilename(filename, ext string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "filename cannot be empty")
	}

	if len(filename) > 255 {
		return New(ErrCodeInvalidManifest, "filename too long (max 255 characters): %q", filename)
	}

	for _, r := range filename {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidManifest, "filename contains invalid control characters: %q", filename)
		}
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "filename cannot contain path separators: %q", filename)
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidManifest, "filename cannot be a hidden file: %q", filename)
	}

	if ext != "" && !strings.HasSuffix(strings.ToLower(filename), ext) {
		return New(ErrCodeInvalidManifest, "filename must end in %s: %q", ext, filename)
	}

	return nil
}

// ValidatePath validates an output or source directory path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//
// Absolute paths are allowed: the export directory is chosen by the operator.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
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

// ValidateLabel validates free text that is printed inside the fenced tree
// diagram, such as a folder name or a purpose note. It must fit on one line
// and cannot contain backticks. Empty values are allowed.
func ValidateLabel(field, value string) error {
	if len(value) > 255 {
		return New(ErrCodeInvalidManifest, "%s too long (max 255 characters): %q", field, value)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidManifest, "%s contains invalid control characters: %q", field, value)
		}
	}
	if strings.ContainsRune(value, '`') {
		return New(ErrCodeInvalidManifest, "%s cannot contain backticks: %q", field, value)
	}
	return nil
}

// emailRegex is deliberately loose: one @, no spaces, a dot in the domain.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail validates the support contact address.
func ValidateEmail(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidManifest, "support email cannot be empty")
	}
	if !emailRegex.MatchString(addr) {
		return New(ErrCodeInvalidManifest, "invalid support email: %q", addr)
	}
	return nil
}

// hexColorRegex matches #RGB and #RRGGBB colors.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a brand color value.
func ValidateHexColor(color string) error {
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidManifest, "invalid hex color: %q", color)
	}
	return nil
}
