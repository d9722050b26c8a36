package filestorage

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile saves a file and returns the accessible URL where it was stored
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath lets you specify a subdirectory for storing the file
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a file from storage
	DeleteFile(filePath string) error

	// GetFullPath returns the full filesystem path for a given file URL
	GetFullPath(fileURL string) string
}

// allowedResourceExtensions lists the file types accepted as session
// resources.
var allowedResourceExtensions = map[string]bool{
	".txt": true,
	".pdf": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename strips any path components from an uploaded filename and
// replaces characters that are unsafe on disk or in URLs.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	return strings.Trim(name, "._")
}

// ValidateResourceFilename checks that an uploaded resource has a filename
// with one of the allowed extensions. The returned error message is surfaced
// to the caller as a validation failure.
func ValidateResourceFilename(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return fmt.Errorf("file %q has no extension", name)
	}
	if !allowedResourceExtensions[ext] {
		return fmt.Errorf("file type %q is not allowed, only txt and pdf files are accepted", ext)
	}
	return nil
}
