package utils

import (
	"path/filepath"
	"strings"
)

func GetFileExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func IsAllowedFileType(filename string, allowedTypes []string) bool {
	ext := strings.TrimPrefix(GetFileExtension(filename), ".")

	for _, allowedType := range allowedTypes {
		if ext == allowedType {
			return true
		}
	}

	return false
}

// IsDocumentFile reports whether the filename carries an extension we
// accept for driver document uploads.
func IsDocumentFile(filename string) bool {
	return IsAllowedFileType(filename, AllowedDocumentTypes)
}
