package icons

import (
	"fmt"
	"strings"

	"github.com/temirov/richtree/internal/types"
)

// GlyphMode selects how the glyph set is chosen.
type GlyphMode string

const (
	GlyphModeAuto    GlyphMode = "auto"
	GlyphModeUnicode GlyphMode = "unicode"
	GlyphModeASCII   GlyphMode = "ascii"

	utfMarker = "utf"

	invalidGlyphModeFormat = "unsupported glyph mode %q (expected auto, unicode, or ascii)"
)

// localeVariables are consulted in POSIX precedence order.
var localeVariables = []string{"LC_ALL", "LC_CTYPE", "LANG"}

// GlyphSet is one icon alphabet. Unicode reports whether it draws box-drawing guides.
type GlyphSet struct {
	Unicode bool
	glyphs  map[types.IconCategory]string
}

// Glyph returns the glyph drawn for a category.
func (set GlyphSet) Glyph(category types.IconCategory) string {
	if glyph, found := set.glyphs[category]; found {
		return glyph
	}
	return set.glyphs[types.IconGenericFile]
}

// UnicodeGlyphs is used when the output encoding advertises UTF support.
var UnicodeGlyphs = GlyphSet{
	Unicode: true,
	glyphs: map[types.IconCategory]string{
		types.IconDirectory:        "📁",
		types.IconPythonSource:     "🐍",
		types.IconTextLike:         "📄",
		types.IconImage:            "🖼️",
		types.IconVideo:            "🎬",
		types.IconAudio:            "🎵",
		types.IconArchive:          "📦",
		types.IconExecutable:       "⚙️",
		types.IconStructuredData:   "📋",
		types.IconGenericFile:      "📄",
		types.IconPermissionDenied: "❌",
		types.IconRoot:             "🏠",
		types.IconTreeMarker:       "🌳",
		types.IconScanMarker:       "📂",
	},
}

// ASCIIGlyphs is the fallback for legacy consoles.
var ASCIIGlyphs = GlyphSet{
	Unicode: false,
	glyphs: map[types.IconCategory]string{
		types.IconDirectory:        "[DIR]",
		types.IconPythonSource:     "[PY]",
		types.IconTextLike:         "[FILE]",
		types.IconImage:            "[IMG]",
		types.IconVideo:            "[VID]",
		types.IconAudio:            "[AUD]",
		types.IconArchive:          "[ZIP]",
		types.IconExecutable:       "[EXE]",
		types.IconStructuredData:   "[DATA]",
		types.IconGenericFile:      "[FILE]",
		types.IconPermissionDenied: "[X]",
		types.IconRoot:             "[ROOT]",
		types.IconTreeMarker:       "TREE",
		types.IconScanMarker:       "SCAN",
	},
}

// DetectGlyphSet picks the unicode set when the effective locale encoding is UTF, otherwise ASCII.
func DetectGlyphSet(lookupEnv func(string) (string, bool)) GlyphSet {
	if lookupEnv == nil {
		return ASCIIGlyphs
	}
	for _, variable := range localeVariables {
		value, present := lookupEnv(variable)
		if !present || value == "" {
			continue
		}
		if strings.Contains(strings.ToLower(value), utfMarker) {
			return UnicodeGlyphs
		}
		return ASCIIGlyphs
	}
	return ASCIIGlyphs
}

// ParseGlyphMode validates a configured glyph mode. An empty value means auto.
func ParseGlyphMode(value string) (GlyphMode, error) {
	normalized := GlyphMode(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case "":
		return GlyphModeAuto, nil
	case GlyphModeAuto, GlyphModeUnicode, GlyphModeASCII:
		return normalized, nil
	default:
		return "", fmt.Errorf(invalidGlyphModeFormat, value)
	}
}

// ResolveGlyphSet returns the glyph set for a mode, detecting from the environment in auto mode.
func ResolveGlyphSet(mode GlyphMode, lookupEnv func(string) (string, bool)) GlyphSet {
	switch mode {
	case GlyphModeUnicode:
		return UnicodeGlyphs
	case GlyphModeASCII:
		return ASCIIGlyphs
	default:
		return DetectGlyphSet(lookupEnv)
	}
}
