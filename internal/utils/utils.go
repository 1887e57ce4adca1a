// Package utils contains general helper functions used across rich-tree.
package utils

import (
	"path/filepath"
	"strings"
)

// IsHiddenName reports whether an entry name is hidden by platform convention.
func IsHiddenName(name string) bool {
	return strings.HasPrefix(name, HiddenEntryPrefix)
}

// DisplayName returns the base name of an absolute path, or the path itself
// for filesystem roots where the base name is empty or a separator.
func DisplayName(absolutePath string) string {
	baseName := filepath.Base(absolutePath)
	if baseName == "" || baseName == "." || baseName == string(filepath.Separator) {
		return absolutePath
	}
	return baseName
}
