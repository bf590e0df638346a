package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Prompt      lipgloss.Style
	Filter      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	InfoBox     lipgloss.Style

	Header       lipgloss.Style
	HeaderSorted lipgloss.Style
	Cell         lipgloss.Style
	Cursor       lipgloss.Style
	Selected     lipgloss.Style
	Highlight    lipgloss.Style
	Empty        lipgloss.Style
	Footer       lipgloss.Style
	Live         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Underline(true).Padding(0, 1),
		Dim:       lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Prompt:      lipgloss.NewStyle().Bold(true),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:        lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),

		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		HeaderSorted: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Cell:         lipgloss.NewStyle(),
		Cursor:       lipgloss.NewStyle().Reverse(true),
		Selected:     lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Empty:        lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
		Footer:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Live:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
	}
}

// PlainStyles renders without any colors, for pagers and non-terminal output
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Title: plain, Tab: plain, ActiveTab: plain, Dim: plain, Status: plain,
		StatusError: plain, Prompt: plain, Filter: plain, Help: plain, Main: plain,
		InfoBox: plain, Header: plain, HeaderSorted: plain, Cell: plain, Cursor: plain,
		Selected: plain, Highlight: plain, Empty: plain, Footer: plain, Live: plain,
	}
}
