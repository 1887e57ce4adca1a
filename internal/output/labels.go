package output

import (
	"fmt"

	"github.com/temirov/richtree/internal/icons"
	"github.com/temirov/richtree/internal/types"
	"github.com/temirov/richtree/internal/utils"
)

const (
	labelFormat          = "%s %s"
	sizedLabelFormat     = "%s %s %s"
	sizeAnnotationFormat = "(%s)"
	deniedLabelText      = "permission denied"
)

// FormatLabel composes the display label of a node: icon, styled name, and the
// formatted size when one was computed.
func FormatLabel(node *types.TreeNode, glyphs icons.GlyphSet, styles Styles) string {
	if node == nil {
		return ""
	}
	glyph := glyphs.Glyph(node.Icon)
	var name string
	switch {
	case node.Kind == types.NodeKindDenied:
		return fmt.Sprintf(labelFormat, glyph, styles.Denied.Render(deniedLabelText))
	case node.IsRoot:
		return fmt.Sprintf(labelFormat, glyph, styles.Root.Render(node.Name))
	case node.IsDirectory() && node.HasSize:
		name = styles.Directory.Render(node.Name)
	case node.IsDirectory():
		name = styles.UnsizedDirectory.Render(node.Name)
	default:
		name = styles.File.Render(node.Name)
	}
	if !node.HasSize {
		return fmt.Sprintf(labelFormat, glyph, name)
	}
	sizeText := styles.Size.Render(fmt.Sprintf(sizeAnnotationFormat, utils.FormatSize(node.SizeBytes)))
	return fmt.Sprintf(sizedLabelFormat, glyph, name, sizeText)
}
