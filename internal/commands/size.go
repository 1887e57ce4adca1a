package commands

import (
	"os"
	"path/filepath"

	"github.com/temirov/richtree/internal/utils"
)

// DirectorySize returns the cumulative byte size of every regular file below directoryPath,
// without any depth limit. Symbolic links are not followed. Unreadable directories and
// entries that cannot be inspected contribute zero.
func DirectorySize(directoryPath string, showHidden bool) int64 {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return 0
	}
	var totalBytes int64
	for _, directoryEntry := range directoryEntries {
		if !showHidden && utils.IsHiddenName(directoryEntry.Name()) {
			continue
		}
		entryMode := directoryEntry.Type()
		switch {
		case entryMode.IsDir():
			totalBytes += DirectorySize(filepath.Join(directoryPath, directoryEntry.Name()), showHidden)
		case entryMode.IsRegular():
			entryInfo, infoError := directoryEntry.Info()
			if infoError != nil {
				continue
			}
			totalBytes += entryInfo.Size()
		}
	}
	return totalBytes
}
