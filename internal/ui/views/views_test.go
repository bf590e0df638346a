package views

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"healthgrid/internal/ui/columns"
	"healthgrid/internal/ui/grid"
	"healthgrid/internal/ui/services/sorting"
)

func foodView() grid.ViewState {
	return grid.ViewState{
		Headers: []grid.HeaderCell{
			{Key: "food", Title: "Food", Sortable: true, Filterable: true, Direction: sorting.Ascending, Description: "What was eaten"},
			{Key: "kcal", Title: "Calories", Align: columns.AlignRight},
		},
		Rows: []grid.RowView{
			{ID: "f1", Cells: []string{"Oatmeal", "310"}},
			{ID: "f2", Cells: []string{"Apple", "95"}, Selected: true},
		},
		Selectable:    true,
		SelectedCount: 1,
		Page:          1,
		PageCount:     3,
		PageSize:      2,
		Total:         6,
		RowCount:      5,
	}
}

func TestFooter(t *testing.T) {
	v := foodView()
	assert.Equal(t, "Page 1/3 · 5 of 6 rows · 1 selected", Footer(v))

	v.RowCount = 6
	v.Selectable = false
	v.Search = "ap"
	assert.Equal(t, `Page 1/3 · 6 rows · search "ap"`, Footer(v))

	// Focus on the first data column describes it
	v.Focused = true
	v.CursorCol = 0
	assert.Equal(t, `Page 1/3 · 6 rows · search "ap" · Food: What was eaten`, Footer(v))
}

func TestLiveRegion(t *testing.T) {
	v := foodView()
	assert.Equal(t, "", LiveRegion(v))

	v.Announcements = []string{"Page 2 of 3", "Sorted by Food ascending"}
	assert.Equal(t, "» Page 2 of 3 · Sorted by Food ascending", LiveRegion(v))
}

func TestRenderPlain(t *testing.T) {
	out := RenderPlain("Food", foodView())
	lines := strings.Split(out, "\n")

	assert.Equal(t, "Food", lines[0])
	assert.Contains(t, out, "Food ▲")
	assert.Contains(t, out, "Calories")
	assert.Contains(t, out, "Oatmeal")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "Page 1/3 · 5 of 6 rows · 1 selected")
	assert.NotContains(t, out, "= ")
}

func TestRenderFilterRowAndEmpty(t *testing.T) {
	v := foodView()
	v.Headers[0].Filter = "oat"
	v.Rows = nil
	v.EmptyMessage = "No records"

	out := RenderPlain("", v)
	assert.Contains(t, out, "= oat")
	assert.Contains(t, out, "No records")
}

func TestTruncatesToDeclaredWidth(t *testing.T) {
	v := foodView()
	v.Headers[0].Width = 4
	v.Rows[0].Cells[0] = "Overnight oats"

	out := RenderPlain("", v)
	assert.Contains(t, out, "Ove…")
	assert.NotContains(t, out, "Overnight")
}

func TestHighlightKeepsRunesWhole(t *testing.T) {
	base := lipgloss.NewStyle()
	out := padHighlight("ȺȺmag\u212A", 8, columns.AlignLeft, base, base.Bold(true), "MAGK")
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "ȺȺmag\u212A  ", out)
}

func TestRendererScreen(t *testing.T) {
	r := NewRenderer(nil)

	out := r.Render(ViewState{
		Width:         100,
		Height:        30,
		Tabs:          []string{"Food", "Supplements"},
		Table:         foodView(),
		HasTable:      true,
		InputMode:     "search",
		TextInput:     "Search: oat",
		StatusMessage: "Oatmeal, 310 kcal",
		HelpLine:      "? help",
	})
	assert.Contains(t, out, "healthgrid")
	assert.Contains(t, out, "Supplements")
	assert.Contains(t, out, "Search: oat")
	assert.Contains(t, out, "Oatmeal, 310 kcal")
	assert.Contains(t, out, "? help")

	empty := r.Render(ViewState{Width: 80, Height: 20})
	assert.Contains(t, empty, "No datasets found.")

	loading := r.Render(ViewState{Width: 80, Height: 20, Loading: true})
	assert.Contains(t, loading, "Loading datasets...")
}

func TestZoneIDs(t *testing.T) {
	assert.Equal(t, "hdr:food", HeaderZoneID("food"))
	assert.Equal(t, "cell:2:1", CellZoneID(2, 1))
	assert.Equal(t, "tab:3", TabZoneID(3))
}
