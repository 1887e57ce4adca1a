// Package icons maps filesystem entries to the fixed icon taxonomy and selects
// the glyph alphabet used to draw them.
package icons

import (
	"path/filepath"
	"strings"

	"github.com/temirov/richtree/internal/types"
)

// extensionCategories is the fixed extension table. Keys are lower-case suffixes including the dot.
var extensionCategories = map[string]types.IconCategory{
	".py": types.IconPythonSource,

	".txt":  types.IconTextLike,
	".md":   types.IconTextLike,
	".doc":  types.IconTextLike,
	".docx": types.IconTextLike,

	".jpg":  types.IconImage,
	".png":  types.IconImage,
	".gif":  types.IconImage,
	".jpeg": types.IconImage,
	".svg":  types.IconImage,

	".mp4": types.IconVideo,
	".avi": types.IconVideo,
	".mov": types.IconVideo,

	".mp3":  types.IconAudio,
	".wav":  types.IconAudio,
	".flac": types.IconAudio,

	".zip": types.IconArchive,
	".rar": types.IconArchive,
	".7z":  types.IconArchive,
	".tar": types.IconArchive,
	".gz":  types.IconArchive,

	".exe": types.IconExecutable,
	".app": types.IconExecutable,

	".json": types.IconStructuredData,
	".xml":  types.IconStructuredData,
	".yaml": types.IconStructuredData,
	".yml":  types.IconStructuredData,
}

// CategoryForName resolves the icon category of a file from its final suffix, case-insensitively.
// Names without a known suffix resolve to the generic file icon.
func CategoryForName(fileName string) types.IconCategory {
	suffix := strings.ToLower(filepath.Ext(fileName))
	if category, known := extensionCategories[suffix]; known {
		return category
	}
	return types.IconGenericFile
}
