package grid

import (
	"healthgrid/internal/ui/columns"
)

// View snapshots the state a renderer needs for the current page
func (g *Grid[T]) View() ViewState {
	v := g.baseView(g.result.Rows)

	st := g.nav.State()
	_, _, focused := g.nav.Cell()
	v.Focused = focused
	v.CursorRow = st.Row
	v.CursorCol = st.Col

	v.Page = g.result.Page
	v.PageCount = g.result.PageCount

	for _, m := range g.announcer.Messages() {
		v.Announcements = append(v.Announcements, m.Text)
	}
	return v
}

// Export snapshots every filtered row in sort order, ignoring pagination
func (g *Grid[T]) Export() ViewState {
	v := g.baseView(g.result.Filtered)
	v.Page = 1
	v.PageCount = 1
	v.PageSize = 0
	return v
}

func (g *Grid[T]) baseView(entries []columns.Entry[T]) ViewState {
	spec := g.sorting.Current()

	v := ViewState{
		Headers:       make([]HeaderCell, len(g.cols)),
		Rows:          make([]RowView, len(entries)),
		Selectable:    g.opts.Selectable,
		Searchable:    g.opts.Searchable,
		SelectedCount: g.selection.Count(),
		PageSize:      g.pager.PageSize(),
		Total:         len(g.rows),
		RowCount:      g.result.FilteredCount(),
		Search:        g.search.Term(),
		EmptyMessage:  g.opts.EmptyMessage,
	}
	if g.opts.Selectable {
		v.AllSelected = g.selection.AllSelected(g.filteredIDs())
	}

	for i, col := range g.cols {
		v.Headers[i] = HeaderCell{
			Key:         col.Key,
			Title:       col.Title(),
			Description: col.Description,
			Sortable:    col.Sortable,
			Filterable:  col.Filterable,
			Direction:   spec.DirectionFor(col.Key),
			Filter:      g.search.Filter(col.Key),
			Align:       col.Align,
			Width:       col.Width,
		}
	}

	for i, e := range entries {
		id := g.ids[e.Index]
		cells := make([]string, len(g.cols))
		for j, col := range g.cols {
			// undefined values render as empty cells
			cells[j], _ = col.Text(e.Row)
		}
		v.Rows[i] = RowView{
			ID:       id,
			Cells:    cells,
			Selected: g.selection.IsSelected(id),
		}
	}
	return v
}
