package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"healthgrid/internal/ui/columns"
	"healthgrid/internal/ui/grid"
	"healthgrid/internal/ui/services/search"
	"healthgrid/internal/ui/services/sorting"
)

const (
	maxAutoWidth = 28
	columnGap    = "  "
	checkboxOn   = "[x]"
	checkboxOff  = "[ ]"
)

// TableOptions tweak a single table render
type TableOptions struct {
	ShowFilters bool // show the filter row even when no filter is set
	ShowLive    bool // append the live region line
	ShowFooter  bool
}

// TableRenderer draws a grid.ViewState as text
type TableRenderer struct {
	styles *Styles
	zones  *zone.Manager
}

// NewTableRenderer creates a table renderer. zones may be nil, in which
// case no mouse zones are marked.
func NewTableRenderer(styles *Styles, zones *zone.Manager) *TableRenderer {
	return &TableRenderer{styles: styles, zones: zones}
}

// HeaderZoneID is the mouse zone of a column header
func HeaderZoneID(key string) string {
	return "hdr:" + key
}

// CellZoneID is the mouse zone of a body cell in cursor coordinates
func CellZoneID(row, col int) string {
	return fmt.Sprintf("cell:%d:%d", row, col)
}

// Render draws header, optional filter row, body, footer and live region
func (r *TableRenderer) Render(v grid.ViewState, opts TableOptions) string {
	widths := columnWidths(v)
	var lines []string

	lines = append(lines, r.headerLine(v, widths))
	if opts.ShowFilters || v.FilterActive() {
		lines = append(lines, r.filterLine(v, widths))
	}
	lines = append(lines, r.ruleLine(v, widths))

	if len(v.Rows) == 0 {
		msg := v.EmptyMessage
		if msg == "" {
			msg = "No rows"
		}
		lines = append(lines, r.styles.Empty.Render(msg))
	}
	for i := range v.Rows {
		lines = append(lines, r.bodyLine(v, widths, i))
	}

	if opts.ShowFooter {
		lines = append(lines, "", r.styles.Footer.Render(Footer(v)))
	}
	if opts.ShowLive {
		lines = append(lines, r.styles.Live.Render(LiveRegion(v)))
	}
	return strings.Join(lines, "\n")
}

// Footer summarizes pagination, row counts and selection
func Footer(v grid.ViewState) string {
	parts := []string{fmt.Sprintf("Page %d/%d", v.Page, v.PageCount)}

	rows := fmt.Sprintf("%d rows", v.RowCount)
	if v.RowCount != v.Total {
		rows = fmt.Sprintf("%d of %d rows", v.RowCount, v.Total)
	}
	parts = append(parts, rows)

	if v.Selectable {
		parts = append(parts, fmt.Sprintf("%d selected", v.SelectedCount))
	}
	if v.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", v.Search))
	}
	if desc := cursorDescription(v); desc != "" {
		parts = append(parts, desc)
	}
	return strings.Join(parts, " · ")
}

// LiveRegion is the text a screen reader would be handed
func LiveRegion(v grid.ViewState) string {
	if len(v.Announcements) == 0 {
		return ""
	}
	return "» " + strings.Join(v.Announcements, " · ")
}

func cursorDescription(v grid.ViewState) string {
	if !v.Focused {
		return ""
	}
	col := v.CursorCol
	if v.Selectable {
		col--
	}
	if col < 0 || col >= len(v.Headers) || v.Headers[col].Description == "" {
		return ""
	}
	return v.Headers[col].Title + ": " + v.Headers[col].Description
}

func (r *TableRenderer) headerLine(v grid.ViewState, widths []int) string {
	var cells []string
	if v.Selectable {
		box := checkboxOff
		if v.AllSelected {
			box = checkboxOn
		}
		cells = append(cells, r.mark(HeaderZoneID(grid.SelectColumnKey), r.styles.Header.Render(box)))
	}

	for i, h := range v.Headers {
		title := h.Title
		style := r.styles.Header
		switch h.Direction {
		case sorting.Ascending:
			title += " ▲"
			style = r.styles.HeaderSorted
		case sorting.Descending:
			title += " ▼"
			style = r.styles.HeaderSorted
		}
		cells = append(cells, r.mark(HeaderZoneID(h.Key), pad(title, widths[i], h.Align, style)))
	}
	return strings.Join(cells, columnGap)
}

func (r *TableRenderer) filterLine(v grid.ViewState, widths []int) string {
	var cells []string
	if v.Selectable {
		cells = append(cells, strings.Repeat(" ", runewidth.StringWidth(checkboxOff)))
	}
	for i, h := range v.Headers {
		text := ""
		switch {
		case h.Filter != "":
			text = "= " + h.Filter
		case h.Filterable:
			text = "·"
		}
		cells = append(cells, pad(text, widths[i], columns.AlignLeft, r.styles.Filter))
	}
	return strings.Join(cells, columnGap)
}

func (r *TableRenderer) ruleLine(v grid.ViewState, widths []int) string {
	var cells []string
	if v.Selectable {
		cells = append(cells, strings.Repeat("─", runewidth.StringWidth(checkboxOff)))
	}
	for _, w := range widths {
		cells = append(cells, strings.Repeat("─", w))
	}
	return r.styles.Dim.Render(strings.Join(cells, columnGap))
}

func (r *TableRenderer) bodyLine(v grid.ViewState, widths []int, i int) string {
	row := v.Rows[i]
	var cells []string

	col := 0
	styleFor := func(c int) lipgloss.Style {
		switch {
		case v.Focused && v.CursorRow == i && v.CursorCol == c:
			return r.styles.Cursor
		case row.Selected:
			return r.styles.Selected
		default:
			return r.styles.Cell
		}
	}

	if v.Selectable {
		box := checkboxOff
		if row.Selected {
			box = checkboxOn
		}
		cells = append(cells, r.mark(CellZoneID(i, col), styleFor(col).Render(box)))
		col++
	}

	for j, text := range row.Cells {
		h := v.Headers[j]
		cell := padHighlight(text, widths[j], h.Align, styleFor(col), r.styles.Highlight, v.Search)
		cells = append(cells, r.mark(CellZoneID(i, col), cell))
		col++
	}
	return strings.Join(cells, columnGap)
}

func (r *TableRenderer) mark(id, s string) string {
	if r.zones == nil {
		return s
	}
	return r.zones.Mark(id, s)
}

// columnWidths uses the declared width, or fits header and cells up to a cap
func columnWidths(v grid.ViewState) []int {
	widths := make([]int, len(v.Headers))
	for i, h := range v.Headers {
		if h.Width > 0 {
			widths[i] = h.Width
			continue
		}
		w := runewidth.StringWidth(h.Title)
		if h.Sortable {
			w += 2
		}
		if h.Filter != "" {
			w = max(w, runewidth.StringWidth(h.Filter)+2)
		}
		for _, row := range v.Rows {
			w = max(w, runewidth.StringWidth(row.Cells[i]))
		}
		widths[i] = min(max(w, 1), maxAutoWidth)
	}
	return widths
}

func pad(text string, width int, align columns.Align, style lipgloss.Style) string {
	return padHighlight(text, width, align, style, style, "")
}

// padHighlight truncates text to width, aligns it and highlights the first
// case-insensitive occurrence of term
func padHighlight(text string, width int, align columns.Align, base, highlight lipgloss.Style, term string) string {
	text = runewidth.Truncate(text, width, "…")
	gap := width - runewidth.StringWidth(text)

	left := 0
	switch align {
	case columns.AlignRight:
		left = gap
	case columns.AlignCenter:
		left = gap / 2
	}
	right := gap - left

	body := base.Render(text)
	if start, end := search.Index(text, term); start >= 0 {
		body = base.Render(text[:start]) + highlight.Inherit(base).Render(text[start:end]) + base.Render(text[end:])
	}
	return base.Render(strings.Repeat(" ", left)) + body + base.Render(strings.Repeat(" ", right))
}
