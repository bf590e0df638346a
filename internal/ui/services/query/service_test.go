package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthgrid/internal/ui/columns"
	"healthgrid/internal/ui/services/events"
	"healthgrid/internal/ui/services/sorting"
)

type item struct {
	ID   int
	Name string
	Val  int
	Kind string
}

func itemColumns() []columns.Column[item] {
	return []columns.Column[item]{
		{Key: "name", Header: "Name", Field: "Name", Sortable: true, Filterable: true},
		{Key: "val", Header: "Value", Field: "Val", Sortable: true, Filterable: true},
		{Key: "kind", Header: "Kind", Field: "Kind", Filterable: true},
	}
}

func ids(entries []columns.Entry[item]) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Row.ID
	}
	return out
}

func sampleItems(n int) []item {
	kinds := []string{"fruit", "grain", "dairy"}
	rows := make([]item, n)
	for i := range rows {
		rows[i] = item{ID: i + 1, Name: fmt.Sprintf("item-%02d", i+1), Val: (i * 7) % 5, Kind: kinds[i%3]}
	}
	return rows
}

func TestComputeNoOpPreservesOrder(t *testing.T) {
	rows := sampleItems(12)
	res := Compute(rows, itemColumns(), "", nil, sorting.Spec{}, 1, 0)

	require.Len(t, res.Rows, 12)
	for i, e := range res.Rows {
		assert.Equal(t, i, e.Index)
		assert.Equal(t, rows[i], e.Row)
	}
	assert.Equal(t, 1, res.PageCount)
}

func TestComputeFilterConjunction(t *testing.T) {
	rows := sampleItems(30)
	cols := itemColumns()
	filters := map[string]string{"kind": "FRU", "val": "2"}
	term := "item-1"

	res := Compute(rows, cols, term, filters, sorting.Spec{}, 1, 0)

	got := make(map[int]bool)
	for _, e := range res.Filtered {
		got[e.Row.ID] = true
	}
	for _, r := range rows {
		want := r.Kind == "fruit" && fmt.Sprint(r.Val) == "2" && len(r.Name) >= 6 && r.Name[:6] == "item-1"
		assert.Equal(t, want, got[r.ID], "row %d", r.ID)
	}
}

func TestComputeSortExample(t *testing.T) {
	rows := []item{
		{ID: 1, Name: "B", Val: 5},
		{ID: 2, Name: "A", Val: 5},
		{ID: 3, Name: "C", Val: 1},
	}

	asc := Compute(rows, itemColumns(), "", nil, sorting.Spec{ColumnKey: "val", Direction: sorting.Ascending}, 1, 10)
	assert.Equal(t, []int{3, 1, 2}, ids(asc.Rows))

	desc := Compute(rows, itemColumns(), "", nil, sorting.Spec{ColumnKey: "val", Direction: sorting.Descending}, 1, 10)
	assert.Equal(t, []int{1, 2, 3}, ids(desc.Rows))
}

func TestComputePaginationExample(t *testing.T) {
	rows := sampleItems(5)
	cols := itemColumns()

	var pages [][]int
	for p := 1; p <= 3; p++ {
		res := Compute(rows, cols, "", nil, sorting.Spec{}, p, 2)
		assert.Equal(t, 3, res.PageCount)
		pages = append(pages, ids(res.Rows))
	}
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, pages)

	clamped := Compute(rows, cols, "", nil, sorting.Spec{}, 4, 2)
	assert.Equal(t, 3, clamped.Page)
	assert.Equal(t, []int{5}, ids(clamped.Rows))
}

func TestComputePaginationCoverage(t *testing.T) {
	rows := sampleItems(23)
	cols := itemColumns()
	spec := sorting.Spec{ColumnKey: "val", Direction: sorting.Descending}

	first := Compute(rows, cols, "", map[string]string{"kind": "r"}, spec, 1, 4)

	var all []int
	for p := 1; p <= first.PageCount; p++ {
		res := Compute(rows, cols, "", map[string]string{"kind": "r"}, spec, p, 4)
		all = append(all, ids(res.Rows)...)
	}
	assert.Equal(t, ids(first.Filtered), all)
}

func TestComputeEmpty(t *testing.T) {
	res := Compute[item](nil, itemColumns(), "x", nil, sorting.Spec{}, 3, 5)
	assert.Empty(t, res.Rows)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 1, res.PageCount)
	assert.Equal(t, 0, res.Total)
}

func TestPageHelpers(t *testing.T) {
	assert.Equal(t, 1, PageCount(0, 10))
	assert.Equal(t, 3, PageCount(21, 10))
	assert.Equal(t, 1, PageCount(21, 0))

	assert.Equal(t, 1, ClampPage(-2, 3))
	assert.Equal(t, 3, ClampPage(9, 3))

	start, end := PageBounds(21, 3, 10)
	assert.Equal(t, 20, start)
	assert.Equal(t, 21, end)
}

func TestPager(t *testing.T) {
	bus := events.NewBus()
	var changes []PageChangedEvent
	bus.Subscribe(events.TypeOf(PageChangedEvent{}), func(e interface{}) {
		changes = append(changes, e.(PageChangedEvent))
	})

	p := NewPager(bus, 2)
	assert.Equal(t, 1, p.Page())

	assert.True(t, p.Next(5))
	assert.True(t, p.Next(5))
	assert.False(t, p.Next(5), "last page")
	assert.Equal(t, 3, p.Page())

	p.Clamp(3)
	assert.Equal(t, 2, p.Page())

	assert.True(t, p.Prev(3))
	assert.False(t, p.Prev(3))

	p.Set(2, 5)
	p.Reset()
	assert.Equal(t, 1, p.Page())

	require.Len(t, changes, 4)
	assert.Equal(t, PageChangedEvent{OldPage: 1, NewPage: 2, PageCount: 3}, changes[0])
}
