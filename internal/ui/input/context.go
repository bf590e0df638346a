package input

import (
	"healthgrid/internal/ui/grid"
	"healthgrid/internal/ui/input/types"
	"healthgrid/internal/ui/services/sorting"
)

// ModelContext implements the Context interface over the active grid
type ModelContext struct {
	grid grid.Controller
	view grid.ViewState
}

// NewModelContext snapshots g; g may be nil when no dataset is shown
func NewModelContext(g grid.Controller) *ModelContext {
	c := &ModelContext{grid: g}
	if g != nil {
		c.view = g.View()
	}
	return c
}

func (c *ModelContext) HasTable() bool {
	return c.grid != nil
}

func (c *ModelContext) Searchable() bool {
	return c.view.Searchable
}

func (c *ModelContext) Selectable() bool {
	return c.view.Selectable
}

func (c *ModelContext) HasSelection() bool {
	return c.view.SelectedCount > 0
}

func (c *ModelContext) SelectedCount() int {
	return c.view.SelectedCount
}

func (c *ModelContext) SearchQuery() string {
	return c.view.Search
}

// CursorColumn returns the data column under the cursor
func (c *ModelContext) CursorColumn() (string, string, bool) {
	if c.grid == nil {
		return "", "", false
	}
	key, ok := c.grid.CursorColumn()
	if !ok {
		return "", "", false
	}
	if h, found := c.header(key); found {
		return key, h.Title, true
	}
	return key, key, true
}

func (c *ModelContext) IsFilterable(key string) bool {
	h, ok := c.header(key)
	return ok && h.Filterable
}

func (c *ModelContext) FilterValue(key string) string {
	h, _ := c.header(key)
	return h.Filter
}

func (c *ModelContext) SortableColumns() []types.ColumnOption {
	var out []types.ColumnOption
	for _, h := range c.view.Headers {
		if h.Sortable {
			out = append(out, types.ColumnOption{Key: h.Key, Title: h.Title})
		}
	}
	return out
}

// CurrentSort returns the key and direction of the active sort, or "" when
// rows are in their original order
func (c *ModelContext) CurrentSort() (string, bool) {
	if c.grid == nil {
		return "", false
	}
	spec := c.grid.SortSpec()
	if !spec.Active() {
		return "", false
	}
	return spec.ColumnKey, spec.Direction == sorting.Descending
}

func (c *ModelContext) header(key string) (grid.HeaderCell, bool) {
	for _, h := range c.view.Headers {
		if h.Key == key {
			return h, true
		}
	}
	return grid.HeaderCell{}, false
}
