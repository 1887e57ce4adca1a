// Package output renders scan results to a terminal using lipgloss panels and trees.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"

	"github.com/temirov/richtree/internal/icons"
	"github.com/temirov/richtree/internal/types"
	"github.com/temirov/richtree/internal/utils"
)

const (
	bannerFormat       = "%s Directory Tree %s"
	headerTitleFormat  = "%s Scan Info"
	summaryTitle       = "Statistics"
	panelLineFormat    = "%s %s"
	pathKey            = "Path:"
	depthKey           = "Depth:"
	depthValueFormat   = "%d levels"
	directoriesKey     = "Directories:"
	filesKey           = "Files:"
	totalSizeKey       = "Total size:"
	errorMessageFormat = "%s %s"

	asciiBranch       = "|--"
	asciiLastBranch   = "`--"
	asciiIndent       = "|  "
	asciiLastIndent   = "   "
	unicodeBranch     = "├──"
	unicodeLastBranch = "└──"
	unicodeIndent     = "│  "
	unicodeLastIndent = "   "
)

// Option customizes a Presenter.
type Option func(*lipgloss.Renderer)

// WithColorProfile forces a colour profile, for example termenv.Ascii for uncoloured output.
func WithColorProfile(profile termenv.Profile) Option {
	return func(renderer *lipgloss.Renderer) {
		renderer.SetColorProfile(profile)
	}
}

// Presenter writes the banner, panels, and tree for one run.
type Presenter struct {
	writer io.Writer
	glyphs icons.GlyphSet
	styles Styles
}

// NewPresenter builds a presenter writing to writer. Colours are only emitted when the
// writer is a terminal that supports them, unless a profile is forced.
func NewPresenter(writer io.Writer, glyphs icons.GlyphSet, options ...Option) *Presenter {
	renderer := lipgloss.NewRenderer(writer)
	for _, option := range options {
		option(renderer)
	}
	return &Presenter{
		writer: writer,
		glyphs: glyphs,
		styles: NewStyles(renderer, glyphs.Unicode),
	}
}

// RenderBanner prints the title line framed by tree markers.
func (presenter *Presenter) RenderBanner() error {
	marker := presenter.glyphs.Glyph(types.IconTreeMarker)
	_, err := fmt.Fprintln(presenter.writer, presenter.styles.Banner.Render(fmt.Sprintf(bannerFormat, marker, marker)))
	return err
}

// RenderHeader prints the panel describing the scanned path and depth limit.
func (presenter *Presenter) RenderHeader(absolutePath string, maxDepth int) error {
	title := fmt.Sprintf(headerTitleFormat, presenter.glyphs.Glyph(types.IconScanMarker))
	panel := presenter.panel(presenter.styles.HeaderPanel, title,
		presenter.panelLine(pathKey, absolutePath),
		presenter.panelLine(depthKey, fmt.Sprintf(depthValueFormat, maxDepth)),
	)
	_, err := fmt.Fprintln(presenter.writer, panel+"\n")
	return err
}

// RenderTree prints the tree rooted at root with guide lines.
func (presenter *Presenter) RenderTree(root *types.TreeNode) error {
	if root == nil {
		return nil
	}
	_, err := fmt.Fprintln(presenter.writer, presenter.treeString(root))
	return err
}

func (presenter *Presenter) treeString(root *types.TreeNode) string {
	rendered := presenter.buildTree(root)
	if presenter.glyphs.Unicode {
		rendered = rendered.Enumerator(unicodeEnumerator).Indenter(unicodeIndenter)
	} else {
		rendered = rendered.Enumerator(asciiEnumerator).Indenter(asciiIndenter)
	}
	return rendered.EnumeratorStyle(presenter.styles.Guide).String()
}

func (presenter *Presenter) buildTree(node *types.TreeNode) *tree.Tree {
	branch := tree.Root(FormatLabel(node, presenter.glyphs, presenter.styles))
	for _, child := range node.Children {
		if len(child.Children) == 0 {
			branch.Child(FormatLabel(child, presenter.glyphs, presenter.styles))
			continue
		}
		branch.Child(presenter.buildTree(child))
	}
	return branch
}

// RenderSummary prints the panel with directory and file totals.
func (presenter *Presenter) RenderSummary(summary types.Summary) error {
	lines := []string{
		presenter.panelLine(directoriesKey, humanize.Comma(int64(summary.Directories))),
		presenter.panelLine(filesKey, humanize.Comma(int64(summary.Files))),
	}
	if summary.HasSize {
		lines = append(lines, presenter.panelLine(totalSizeKey, utils.FormatSize(summary.TotalBytes)))
	}
	panel := presenter.panel(presenter.styles.SummaryPanel, summaryTitle, lines...)
	_, err := fmt.Fprintln(presenter.writer, "\n"+panel)
	return err
}

// RenderError prints a single highlighted error line.
func (presenter *Presenter) RenderError(message string) error {
	line := fmt.Sprintf(errorMessageFormat, presenter.glyphs.Glyph(types.IconPermissionDenied), message)
	_, err := fmt.Fprintln(presenter.writer, presenter.styles.Error.Render(line))
	return err
}

// Render prints the complete report: banner, header panel, tree, and summary panel.
func (presenter *Presenter) Render(config types.ScanConfig, root *types.TreeNode, summary types.Summary) error {
	if err := presenter.RenderBanner(); err != nil {
		return err
	}
	if err := presenter.RenderHeader(config.Root, config.MaxDepth); err != nil {
		return err
	}
	if err := presenter.RenderTree(root); err != nil {
		return err
	}
	return presenter.RenderSummary(summary)
}

func (presenter *Presenter) panel(style lipgloss.Style, title string, lines ...string) string {
	body := append([]string{presenter.styles.PanelTitle.Render(title)}, lines...)
	return style.Render(strings.Join(body, "\n"))
}

func (presenter *Presenter) panelLine(key string, value string) string {
	return fmt.Sprintf(panelLineFormat, presenter.styles.PanelKey.Render(key), presenter.styles.PanelValue.Render(value))
}

func unicodeEnumerator(children tree.Children, index int) string {
	if index == children.Length()-1 {
		return unicodeLastBranch
	}
	return unicodeBranch
}

func unicodeIndenter(children tree.Children, index int) string {
	if index == children.Length()-1 {
		return unicodeLastIndent
	}
	return unicodeIndent
}

func asciiEnumerator(children tree.Children, index int) string {
	if index == children.Length()-1 {
		return asciiLastBranch
	}
	return asciiBranch
}

func asciiIndenter(children tree.Children, index int) string {
	if index == children.Length()-1 {
		return asciiLastIndent
	}
	return asciiIndent
}
