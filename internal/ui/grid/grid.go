package grid

import (
	"fmt"
	"log"

	"healthgrid/internal/ui/columns"
	"healthgrid/internal/ui/services/announce"
	"healthgrid/internal/ui/services/events"
	"healthgrid/internal/ui/services/navigation"
	"healthgrid/internal/ui/services/query"
	"healthgrid/internal/ui/services/search"
	"healthgrid/internal/ui/services/selection"
	"healthgrid/internal/ui/services/sorting"
)

// Grid owns the search, filter, sort, page, selection and cursor state of one
// table and recomputes the visible page after every change.
type Grid[T any] struct {
	cols []columns.Column[T]
	rows []T
	ids  []string
	opts Options[T]

	bus       events.EventBus
	search    *search.Service
	sorting   *sorting.Service
	selection *selection.Service
	nav       *navigation.Service
	pager     *query.Pager
	announcer announce.Announcer

	result query.Result[T]
}

var _ Controller = (*Grid[struct{}])(nil)

// New validates cols and creates an empty grid
func New[T any](cols []columns.Column[T], opts Options[T]) (*Grid[T], error) {
	if err := columns.Validate(cols); err != nil {
		return nil, fmt.Errorf("invalid columns: %w", err)
	}

	bus := opts.Bus
	if bus == nil {
		bus = events.NewBus()
	}
	announcer := opts.Announcer
	if announcer == nil {
		announcer = announce.NewQueue()
	}

	g := &Grid[T]{
		cols:      append([]columns.Column[T](nil), cols...),
		opts:      opts,
		bus:       bus,
		search:    search.NewService(bus),
		sorting:   sorting.NewService(bus),
		selection: selection.NewService(bus),
		nav:       navigation.NewService(bus),
		pager:     query.NewPager(bus, opts.PageSize),
		announcer: announcer,
	}
	g.subscribe()
	g.recompute()
	return g, nil
}

// subscribe forwards service events to the caller's callbacks
func (g *Grid[T]) subscribe() {
	cb := g.opts.Callbacks

	g.bus.Subscribe(events.TypeOf(sorting.SortChangedEvent{}), func(e interface{}) {
		ev := e.(sorting.SortChangedEvent)
		if cb.OnSort == nil {
			return
		}
		if ev.New.Active() {
			cb.OnSort(ev.New.ColumnKey, ev.New.Direction)
		} else {
			cb.OnSort(ev.Old.ColumnKey, sorting.None)
		}
	})

	g.bus.Subscribe(events.TypeOf(search.FilterChangedEvent{}), func(e interface{}) {
		ev := e.(search.FilterChangedEvent)
		if cb.OnFilter != nil {
			cb.OnFilter(ev.ColumnKey, ev.NewValue)
		}
	})

	g.bus.Subscribe(events.TypeOf(search.FiltersClearedEvent{}), func(e interface{}) {
		ev := e.(search.FiltersClearedEvent)
		if cb.OnFilter == nil {
			return
		}
		for _, col := range g.cols {
			if _, ok := ev.Removed[col.Key]; ok {
				cb.OnFilter(col.Key, "")
			}
		}
	})

	g.bus.Subscribe(events.TypeOf(search.SearchChangedEvent{}), func(e interface{}) {
		ev := e.(search.SearchChangedEvent)
		if cb.OnSearch != nil {
			cb.OnSearch(ev.NewTerm)
		}
	})

	selectionChanged := func(interface{}) {
		if cb.OnSelectionChange != nil {
			cb.OnSelectionChange(g.selection.Selected())
		}
	}
	g.bus.Subscribe(events.TypeOf(selection.SelectionChangedEvent{}), selectionChanged)
	g.bus.Subscribe(events.TypeOf(selection.AllSelectedEvent{}), selectionChanged)
	g.bus.Subscribe(events.TypeOf(selection.SelectionClearedEvent{}), selectionChanged)
}

// SetRows replaces the row collection, resetting page and cursor.
// The selection is left alone; the owner decides whether it is stale.
func (g *Grid[T]) SetRows(rows []T) {
	g.rows = rows
	g.ids = make([]string, len(rows))

	positional := 0
	for i, row := range rows {
		if g.opts.RowID != nil {
			if id := g.opts.RowID(row); id != "" {
				g.ids[i] = id
				continue
			}
		}
		id, pos := columns.DefaultRowID(row, i)
		if pos {
			positional++
		}
		g.ids[i] = id
	}
	if positional > 0 {
		log.Printf("grid: %d of %d rows have no id, using positions", positional, len(rows))
	}

	g.pager.Reset()
	g.recompute()
	g.nav.Reset()
	g.announcer.Announce(fmt.Sprintf("%d rows loaded", len(rows)))
}

// Columns returns the column descriptors
func (g *Grid[T]) Columns() []columns.Column[T] {
	return g.cols
}

// FilteredRows returns every row surviving search and filters, in sort order
func (g *Grid[T]) FilteredRows() []T {
	out := make([]T, len(g.result.Filtered))
	for i, e := range g.result.Filtered {
		out[i] = e.Row
	}
	return out
}

// SetSearch sets the global search term and returns to the first page
func (g *Grid[T]) SetSearch(term string) error {
	if !g.opts.Searchable {
		return ErrSearchDisabled
	}
	if !g.search.SetTerm(term) {
		return nil
	}

	g.resetView()
	if term == "" {
		g.announcer.Announce(fmt.Sprintf("Search cleared: %d rows", g.result.FilteredCount()))
	} else {
		g.announcer.Announce(fmt.Sprintf("Search %q: %d rows", term, g.result.FilteredCount()))
	}
	return nil
}

// Search returns the current search term
func (g *Grid[T]) Search() string {
	return g.search.Term()
}

// SetFilter sets one column filter; an empty value removes it
func (g *Grid[T]) SetFilter(columnKey, value string) error {
	col, err := g.column(columnKey)
	if err != nil {
		return err
	}
	if !col.Filterable {
		return fmt.Errorf("%w: %s", ErrNotFilterable, columnKey)
	}
	if !g.search.SetFilter(columnKey, value) {
		return nil
	}

	g.resetView()
	if value == "" {
		g.announcer.Announce(fmt.Sprintf("Filter %s cleared: %d rows", col.Title(), g.result.FilteredCount()))
	} else {
		g.announcer.Announce(fmt.Sprintf("Filter %s %q: %d rows", col.Title(), value, g.result.FilteredCount()))
	}
	return nil
}

// Filter returns the filter value of a column
func (g *Grid[T]) Filter(columnKey string) string {
	return g.search.Filter(columnKey)
}

// ClearFilters removes every column filter and the search term
func (g *Grid[T]) ClearFilters() bool {
	cleared := g.search.ClearFilters()
	if g.search.SetTerm("") {
		cleared = true
	}
	if !cleared {
		return false
	}

	g.resetView()
	g.announcer.Announce(fmt.Sprintf("Filters cleared: %d rows", g.result.FilteredCount()))
	return true
}

// ToggleSort cycles the sort of a column: none, ascending, descending, ascending.
// Sorting another column replaces the current sort.
func (g *Grid[T]) ToggleSort(columnKey string) error {
	col, err := g.column(columnKey)
	if err != nil {
		return err
	}
	if !col.Sortable {
		return fmt.Errorf("%w: %s", ErrNotSortable, columnKey)
	}

	spec := g.sorting.Cycle(columnKey)
	g.recompute()
	g.announcer.Announce(fmt.Sprintf("Sorted by %s %s", col.Title(), spec.Direction))
	return nil
}

// SetSort applies a sort directly; sorting.None clears it
func (g *Grid[T]) SetSort(columnKey string, direction sorting.Direction) error {
	if direction == sorting.None {
		g.ClearSort()
		return nil
	}
	col, err := g.column(columnKey)
	if err != nil {
		return err
	}
	if !col.Sortable {
		return fmt.Errorf("%w: %s", ErrNotSortable, columnKey)
	}

	spec := sorting.Spec{ColumnKey: columnKey, Direction: direction}
	if g.sorting.Current() == spec {
		return nil
	}
	g.sorting.Set(spec)
	g.recompute()
	g.announcer.Announce(fmt.Sprintf("Sorted by %s %s", col.Title(), direction))
	return nil
}

// SortSpec returns the active sort
func (g *Grid[T]) SortSpec() sorting.Spec {
	return g.sorting.Current()
}

// ClearSort restores the original row order
func (g *Grid[T]) ClearSort() bool {
	if !g.sorting.Clear() {
		return false
	}
	g.recompute()
	g.announcer.Announce("Sort cleared")
	return true
}

// SetPage moves to a 1-based page, clamped, and resets the cursor
func (g *Grid[T]) SetPage(page int) bool {
	return g.paged(g.pager.Set(page, g.result.FilteredCount()))
}

// NextPage moves one page forward
func (g *Grid[T]) NextPage() bool {
	return g.paged(g.pager.Next(g.result.FilteredCount()))
}

// PrevPage moves one page back
func (g *Grid[T]) PrevPage() bool {
	return g.paged(g.pager.Prev(g.result.FilteredCount()))
}

func (g *Grid[T]) paged(changed bool) bool {
	if !changed {
		return false
	}
	g.recompute()
	g.nav.Reset()
	g.announcer.Announce(fmt.Sprintf("Page %d of %d, %d rows", g.result.Page, g.result.PageCount, g.result.FilteredCount()))
	return true
}

// Navigate moves the cursor within the current page
func (g *Grid[T]) Navigate(direction navigation.Direction) bool {
	return g.nav.Navigate(direction)
}

// Focus moves the cursor to a cell, clamped to the page
func (g *Grid[T]) Focus(row, col int) bool {
	return g.nav.MoveTo(row, col)
}

// Activate acts on the focused cell: the checkbox column toggles the row,
// an interactive column reports a row click, anything else does nothing.
func (g *Grid[T]) Activate() bool {
	row, col, ok := g.nav.Cell()
	if !ok {
		return false
	}
	entry := g.result.Rows[row]

	if g.opts.Selectable {
		if col == 0 {
			g.selection.Toggle(g.ids[entry.Index])
			return true
		}
		col--
	}

	if !g.cols[col].Interactive {
		return false
	}
	if g.opts.Callbacks.OnRowClick != nil {
		g.opts.Callbacks.OnRowClick(entry.Row)
	}
	return true
}

// CurrentRow returns the row under the cursor
func (g *Grid[T]) CurrentRow() (T, bool) {
	row, _, ok := g.nav.Cell()
	if !ok {
		var zero T
		return zero, false
	}
	return g.result.Rows[row].Row, true
}

// CursorColumn returns the key of the data column under the cursor
func (g *Grid[T]) CursorColumn() (string, bool) {
	st := g.nav.State()
	if st.Cols == 0 {
		return "", false
	}
	col := st.Col
	if g.opts.Selectable {
		if col == 0 {
			return "", false
		}
		col--
	}
	return g.cols[col].Key, true
}

// ToggleSelection flips the selection of the row under the cursor
func (g *Grid[T]) ToggleSelection() bool {
	if !g.opts.Selectable {
		return false
	}
	row, _, ok := g.nav.Cell()
	if !ok {
		return false
	}
	g.selection.Toggle(g.ids[g.result.Rows[row].Index])
	return true
}

// ToggleSelectAll selects exactly the filtered rows, or clears the whole
// selection when they are all selected already
func (g *Grid[T]) ToggleSelectAll() bool {
	if !g.opts.Selectable {
		return false
	}

	ids := g.filteredIDs()
	if g.selection.AllSelected(ids) {
		g.selection.DeselectAll()
		g.announcer.Announce("Selection cleared")
		return true
	}
	if len(ids) == 0 {
		return false
	}

	g.selection.SelectAll(ids)
	g.announcer.Announce(fmt.Sprintf("Selected %d rows", len(ids)))
	return true
}

// ClearSelection deselects everything
func (g *Grid[T]) ClearSelection() bool {
	if !g.selection.HasSelection() {
		return false
	}
	g.selection.DeselectAll()
	g.announcer.Announce("Selection cleared")
	return true
}

// Selected returns the selected row ids in sorted order
func (g *Grid[T]) Selected() []string {
	return g.selection.Selected()
}

// IsSelected reports whether the row with id is selected
func (g *Grid[T]) IsSelected(id string) bool {
	return g.selection.IsSelected(id)
}

// SelectedRows returns the selected rows in original order
func (g *Grid[T]) SelectedRows() []T {
	var out []T
	for i, row := range g.rows {
		if g.selection.IsSelected(g.ids[i]) {
			out = append(out, row)
		}
	}
	return out
}

// Page returns the current 1-based page
func (g *Grid[T]) Page() int {
	return g.result.Page
}

// Close cancels pending announcements
func (g *Grid[T]) Close() {
	g.announcer.Close()
}

func (g *Grid[T]) column(key string) (columns.Column[T], error) {
	i := columns.IndexOf(g.cols, key)
	if i < 0 {
		return columns.Column[T]{}, fmt.Errorf("%w: %s", ErrUnknownColumn, key)
	}
	return g.cols[i], nil
}

func (g *Grid[T]) filteredIDs() []string {
	ids := make([]string, len(g.result.Filtered))
	for i, e := range g.result.Filtered {
		ids[i] = g.ids[e.Index]
	}
	return ids
}

func (g *Grid[T]) columnCount() int {
	n := len(g.cols)
	if g.opts.Selectable {
		n++
	}
	return n
}

// resetView returns to page 1 and the top-left cell after search or filter input changed
func (g *Grid[T]) resetView() {
	g.pager.Reset()
	g.recompute()
	g.nav.Reset()
}

func (g *Grid[T]) recompute() {
	g.result = query.Compute(
		g.rows,
		g.cols,
		g.search.Term(),
		g.search.Filters(),
		g.sorting.Current(),
		g.pager.Page(),
		g.pager.PageSize(),
	)
	g.pager.Clamp(g.result.FilteredCount())
	g.nav.SetBounds(len(g.result.Rows), g.columnCount())
}
