package sorting

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"healthgrid/internal/ui/columns"
	"healthgrid/internal/ui/services/events"
)

type meal struct {
	ID       int
	Food     string
	Calories float64
	At       time.Time
}

func mealColumns() []columns.Column[meal] {
	return []columns.Column[meal]{
		{Key: "food", Header: "Food", Field: "Food", Sortable: true},
		{Key: "kcal", Header: "Calories", Field: "Calories", Sortable: true},
		{Key: "at", Header: "At", Field: "At", Sortable: true},
	}
}

func order(entries []columns.Entry[meal]) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Row.ID
	}
	return out
}

func TestDirectionCycle(t *testing.T) {
	assert.Equal(t, Ascending, None.Next())
	assert.Equal(t, Descending, Ascending.Next())
	assert.Equal(t, Ascending, Descending.Next())
	assert.Equal(t, "descending", Descending.String())
}

func TestServiceCycle(t *testing.T) {
	bus := events.NewBus()
	var got []SortChangedEvent
	bus.Subscribe(events.TypeOf(SortChangedEvent{}), func(e interface{}) {
		got = append(got, e.(SortChangedEvent))
	})

	s := NewService(bus)
	assert.False(t, s.Current().Active())

	assert.Equal(t, Spec{"food", Ascending}, s.Cycle("food"))
	assert.Equal(t, Spec{"food", Descending}, s.Cycle("food"))
	assert.Equal(t, Spec{"food", Ascending}, s.Cycle("food"))
	assert.Equal(t, Spec{"kcal", Ascending}, s.Cycle("kcal"), "other column resets")
	assert.Equal(t, None, s.Current().DirectionFor("food"))

	assert.True(t, s.Clear())
	assert.False(t, s.Clear())
	assert.Equal(t, Spec{}, s.Current())

	assert.Len(t, got, 5)
	assert.Equal(t, Spec{"kcal", Ascending}, got[4].Old)
}

func TestApplyStableBothDirections(t *testing.T) {
	rows := []meal{
		{ID: 1, Food: "oats", Calories: 300},
		{ID: 2, Food: "egg", Calories: 80},
		{ID: 3, Food: "rice", Calories: 300},
		{ID: 4, Food: "tea", Calories: 80},
	}
	entries := columns.Entries(rows)

	asc := Apply(entries, mealColumns(), Spec{"kcal", Ascending})
	assert.Equal(t, []int{2, 4, 1, 3}, order(asc))

	desc := Apply(entries, mealColumns(), Spec{"kcal", Descending})
	assert.Equal(t, []int{1, 3, 2, 4}, order(desc))

	assert.Equal(t, []int{1, 2, 3, 4}, order(entries), "input untouched")
}

func TestApplyUndefinedSortLast(t *testing.T) {
	rows := []meal{
		{ID: 1, Calories: math.NaN()},
		{ID: 2, Calories: 10},
		{ID: 3, Calories: 5},
	}
	entries := columns.Entries(rows)

	assert.Equal(t, []int{3, 2, 1}, order(Apply(entries, mealColumns(), Spec{"kcal", Ascending})))
	assert.Equal(t, []int{2, 3, 1}, order(Apply(entries, mealColumns(), Spec{"kcal", Descending})))
}

func TestApplyPanickingAccessor(t *testing.T) {
	cols := []columns.Column[meal]{{
		Key: "boom",
		Value: func(m meal) any {
			if m.ID == 2 {
				panic("bad row")
			}
			return m.ID
		},
	}}
	entries := columns.Entries([]meal{{ID: 2}, {ID: 3}, {ID: 1}})

	assert.NotPanics(t, func() {
		assert.Equal(t, []int{1, 3, 2}, order(Apply(entries, cols, Spec{"boom", Ascending})))
	})
}

func TestApplyTimesAndCustomComparator(t *testing.T) {
	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	rows := []meal{
		{ID: 1, Food: "b", At: base.Add(2 * time.Hour)},
		{ID: 2, Food: "a", At: base},
		{ID: 3, Food: "c", At: base.Add(time.Hour)},
	}
	entries := columns.Entries(rows)

	assert.Equal(t, []int{2, 3, 1}, order(Apply(entries, mealColumns(), Spec{"at", Ascending})))

	cols := mealColumns()
	cols[0].Compare = func(a, b any) int {
		// reverse alphabetical
		return columns.CompareStrings(b.(string), a.(string))
	}
	assert.Equal(t, []int{3, 1, 2}, order(Apply(entries, cols, Spec{"food", Ascending})))
}

func TestApplyUnknownColumnKeepsOrder(t *testing.T) {
	entries := columns.Entries([]meal{{ID: 2}, {ID: 1}})
	assert.Equal(t, []int{2, 1}, order(Apply(entries, mealColumns(), Spec{"nope", Ascending})))
}
