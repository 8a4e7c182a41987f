package errors

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// ValidateNodeID validates a graph node identifier supplied by external
// input (API requests, selection parameters). It rejects identifiers that
// could be used for injection or that would corrupt downstream formats.
//
// The rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "node id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "node id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node id contains control characters")
		}
	}

	return nil
}

// ValidateGraphID validates a stored-graph identifier from a URL path.
// Stored graphs are keyed by UUID, so anything that does not parse as one
// is rejected before it reaches a storage backend.
func ValidateGraphID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGraphID, "graph id cannot be empty")
	}

	if _, err := uuid.Parse(id); err != nil {
		return New(ErrCodeInvalidGraphID, "graph id is not a valid UUID: %q", id)
	}

	return nil
}

// ValidateGraphFilename validates a graph filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateGraphFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidInput, "graph filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidInput, "graph filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidInput, "graph filename cannot be a hidden file")
	}

	return nil
}
