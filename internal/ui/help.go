package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"healthgrid/internal/ui/input/types"
)

// helpSection groups bindings under a heading
type helpSection struct {
	title    string
	bindings []key.Binding
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys types.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys types.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

func (r *HelpRenderer) sections() []helpSection {
	k := r.keys
	return []helpSection{
		{"Navigation", []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Home, k.End}},
		{"Pages & Datasets", []key.Binding{k.NextPage, k.PrevPage, k.NextTab, k.PrevTab}},
		{"Rows", []key.Binding{k.Activate, k.Select, k.SelectAll, k.Deselect}},
		{"Search & Filter", []key.Binding{k.Search, k.Filter, k.FilterRow, k.ClearFilters}},
		{"Sorting", []key.Binding{k.Sort, k.SortMenu, k.ClearSort}},
		{"Other", []key.Binding{k.Pager, k.Help, k.Quit}},
	}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	noteStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("healthgrid Help"))
	help.WriteString("\n")

	for _, section := range r.sections() {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, b := range section.bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
		}
		help.WriteString("\n")
	}

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("header"), descStyle.Render("click to sort that column")))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("cell"), descStyle.Render("click to move there, click again to activate")))
	help.WriteString("\n")

	help.WriteString(noteStyle.Render("  Search matches any column; a column filter keeps rows whose cell contains the text."))
	help.WriteString("\n")
	help.WriteString(noteStyle.Render("  In search and filter prompts: enter keeps the value, esc restores the previous one."))

	return help.String()
}

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// SetProgram sets the program whose terminal is released while paging
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager shows content using the ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	configureVimKeyBindings(&config)

	root.SetConfig(config)

	return root.Run()
}

// configureVimKeyBindings adds k/j/G movement on top of ov's defaults.
// ov binds "j" to jump_target, so that action is left without a key.
func configureVimKeyBindings(config *oviewer.Config) {
	if config.Keybind == nil {
		config.Keybind = make(map[string][]string)
	}
	config.Keybind["down"] = []string{"Enter", "Down", "ctrl+N", "j"}
	config.Keybind["up"] = []string{"Up", "ctrl+p", "k"}
	config.Keybind["bottom"] = []string{"End", "G"}
	config.Keybind["jump_target"] = []string{}
}
