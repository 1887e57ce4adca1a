package output

import "github.com/charmbracelet/lipgloss"

const (
	colorRed     = lipgloss.Color("1")
	colorGreen   = lipgloss.Color("2")
	colorYellow  = lipgloss.Color("3")
	colorBlue    = lipgloss.Color("4")
	colorMagenta = lipgloss.Color("5")
	colorCyan    = lipgloss.Color("6")
	colorBright  = lipgloss.Color("12")
)

// asciiBorder draws panels on consoles that cannot show box-drawing characters.
var asciiBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

// Styles holds every lipgloss style used by the presenter, bound to a single renderer.
// Directory names are drawn bold when no size annotation follows them.
type Styles struct {
	Banner           lipgloss.Style
	Root             lipgloss.Style
	Directory        lipgloss.Style
	UnsizedDirectory lipgloss.Style
	File             lipgloss.Style
	Size             lipgloss.Style
	Denied           lipgloss.Style
	Error            lipgloss.Style
	Guide            lipgloss.Style
	PanelTitle       lipgloss.Style
	PanelKey         lipgloss.Style
	PanelValue       lipgloss.Style
	HeaderPanel      lipgloss.Style
	SummaryPanel     lipgloss.Style
}

// NewStyles builds the style set for a renderer. Unicode selects rounded panel borders.
func NewStyles(renderer *lipgloss.Renderer, unicode bool) Styles {
	border := asciiBorder
	if unicode {
		border = lipgloss.RoundedBorder()
	}
	panel := renderer.NewStyle().Border(border).Padding(0, 1)
	directory := renderer.NewStyle().Foreground(colorCyan)
	return Styles{
		Banner:           renderer.NewStyle().Bold(true).Foreground(colorMagenta),
		Root:             renderer.NewStyle().Bold(true).Foreground(colorBlue),
		Directory:        directory,
		UnsizedDirectory: directory.Bold(true),
		File:             renderer.NewStyle().Foreground(colorGreen),
		Size:             renderer.NewStyle().Faint(true),
		Denied:           renderer.NewStyle().Foreground(colorRed),
		Error:            renderer.NewStyle().Bold(true).Foreground(colorRed),
		Guide:            renderer.NewStyle().Foreground(colorBright).PaddingRight(1),
		PanelTitle:       renderer.NewStyle().Bold(true),
		PanelKey:         renderer.NewStyle().Foreground(colorCyan),
		PanelValue:       renderer.NewStyle().Foreground(colorYellow),
		HeaderPanel:      panel.BorderForeground(colorBlue),
		SummaryPanel:     panel.BorderForeground(colorGreen),
	}
}
