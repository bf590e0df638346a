package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"healthgrid/internal/ui/grid"
)

// ViewState contains all the state needed for rendering a screen
type ViewState struct {
	Width         int
	Height        int
	Tabs          []string
	ActiveTab     int
	Table         grid.ViewState
	HasTable      bool
	ShowFilters   bool
	Loading       bool
	InputMode     string
	TextInput     string
	StatusMessage string
	StatusIsError bool
	HelpLine      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	table  *TableRenderer
	zones  *zone.Manager
}

// NewRenderer creates a new renderer; zones may be nil
func NewRenderer(zones *zone.Manager) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		table:  NewTableRenderer(styles, zones),
		zones:  zones,
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.titleLine(state))
	content.WriteString("\n\n")

	if state.InputMode != "" {
		content.WriteString(state.TextInput)
		content.WriteString("\n\n")
	}

	switch {
	case state.HasTable:
		content.WriteString(r.table.Render(state.Table, TableOptions{
			ShowFilters: state.ShowFilters,
			ShowFooter:  true,
			ShowLive:    true,
		}))
	case state.Loading:
		content.WriteString(r.styles.Dim.Render("Loading datasets..."))
	default:
		content.WriteString(r.styles.Dim.Render("No datasets found."))
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	if state.HelpLine != "" {
		// Push help to the bottom when there is room
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2
		if padding := availableLines - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpLine))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// titleLine renders the logo and dataset tabs, with a spinner while loading
func (r *Renderer) titleLine(state ViewState) string {
	logo := r.styles.Title.Render("healthgrid")

	var tabs []string
	for i, name := range state.Tabs {
		style := r.styles.Tab
		if i == state.ActiveTab {
			style = r.styles.ActiveTab
		}
		tab := style.Render(name)
		if r.zones != nil {
			tab = r.zones.Mark(TabZoneID(i), tab)
		}
		tabs = append(tabs, tab)
	}
	line := logo
	if len(tabs) > 0 {
		line = logo + "  " + strings.Join(tabs, "")
	}

	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		indicator := r.styles.Dim.Render(fmt.Sprintf("%s Loading", spinner[frame]))

		termWidth := state.Width
		if termWidth <= 0 {
			termWidth = 80
		}
		gap := termWidth - 4 - lipgloss.Width(line) - lipgloss.Width(indicator)
		if gap < 2 {
			gap = 2
		}
		line += strings.Repeat(" ", gap) + indicator
	}
	return line
}

// TabZoneID is the mouse zone of a dataset tab
func TabZoneID(i int) string {
	return fmt.Sprintf("tab:%d", i)
}

// RenderPlain renders a table without colors or zones, for pagers and pipes
func RenderPlain(title string, v grid.ViewState) string {
	r := NewTableRenderer(PlainStyles(), nil)
	body := r.Render(v, TableOptions{ShowFooter: true})
	if title == "" {
		return body + "\n"
	}
	return title + "\n\n" + body + "\n"
}
