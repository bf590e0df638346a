package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the normal-mode keyboard bindings
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding

	// Row actions
	Activate  key.Binding
	Select    key.Binding
	SelectAll key.Binding
	Deselect  key.Binding

	// Query
	Search       key.Binding
	Filter       key.Binding
	FilterRow    key.Binding
	ClearFilters key.Binding
	Sort         key.Binding
	SortMenu     key.Binding
	ClearSort    key.Binding

	// Global
	Pager key.Binding
	Help  key.Binding
	Quit  key.Binding
	Force key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home/gg", "first cell"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last cell"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "pgdown"),
			key.WithHelp("n/pgdn", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "pgup"),
			key.WithHelp("p/pgup", "previous page"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next dataset"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous dataset"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "activate cell"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle row"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "toggle all"),
		),
		Deselect: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear selection"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter column"),
		),
		FilterRow: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "show filters"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort column"),
		),
		SortMenu: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sort by..."),
		),
		ClearSort: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "clear sort"),
		),
		Pager: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view all rows"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Force: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Filter, k.Sort, k.Select, k.NextPage, k.Pager, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Home, k.End},
		{k.NextPage, k.PrevPage, k.NextTab, k.PrevTab},
		{k.Activate, k.Select, k.SelectAll, k.Deselect},
		{k.Search, k.Filter, k.FilterRow, k.ClearFilters},
		{k.Sort, k.SortMenu, k.ClearSort},
		{k.Pager, k.Help, k.Quit},
	}
}
