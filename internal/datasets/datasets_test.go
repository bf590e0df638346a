package datasets

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthgrid/internal/datasource"
	"healthgrid/internal/domain"
	"healthgrid/internal/eventbus"
	"healthgrid/internal/ui/columns"
	"healthgrid/internal/ui/grid"
	"healthgrid/internal/ui/services/announce"
	"healthgrid/internal/ui/services/navigation"
)

func TestFormatters(t *testing.T) {
	assert.Equal(t, "72.4", Number(2)(72.40))
	assert.Equal(t, "61", Number(2)(61.0))
	assert.Equal(t, "6.25", Number(2)(6.25))
	assert.Equal(t, "9 g", Grams(9.0))
	assert.Equal(t, "$8.99", Money(899))
	assert.Equal(t, "$0.05", Money(5))
	assert.Equal(t, "-$1.50", Money(-150))
	assert.Equal(t, "★★★★★ 4.6", Stars(4.6))
	assert.Equal(t, "★★★★☆ 4.1", Stars(4.1))
	assert.Equal(t, "☆☆☆☆☆ 0.0", Stars(-2.0))
	assert.Equal(t, "yes", YesNo(true))
	assert.Equal(t, "no", YesNo(false))

	at := time.Date(2024, 3, 1, 7, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-01", Date(at))
	assert.Equal(t, "2024-03-01 07:30", DateTime(at))
}

func TestColumnSetsAreValid(t *testing.T) {
	require.NoError(t, columns.Validate(MeasurementColumns()))
	require.NoError(t, columns.Validate(FoodColumns()))
	require.NoError(t, columns.Validate(SupplementColumns()))
}

func TestZeroValuesAreUndefined(t *testing.T) {
	cols := SupplementColumns()
	rating := cols[columns.IndexOf(cols, "rating")]

	_, ok := rating.Raw(domain.Supplement{SKU: "x"})
	assert.False(t, ok)

	text, ok := rating.Text(domain.Supplement{SKU: "x", Rating: 4.2})
	require.True(t, ok)
	assert.Equal(t, "★★★★☆ 4.2", text)

	food := FoodColumns()
	logged := food[columns.IndexOf(food, "logged_at")]
	_, ok = logged.Raw(domain.FoodEntry{ID: "f"})
	assert.False(t, ok)
}

func TestSummaries(t *testing.T) {
	b := datasource.Sample()
	assert.Equal(t, "weight: 72.4 kg at 2024-03-01 07:30", MeasurementSummary(b.Measurements[0]))
	assert.Equal(t, "heart rate: 61 bpm at 2024-03-01 07:32 (resting)", MeasurementSummary(b.Measurements[1]))
	assert.Equal(t, "Oatmeal with blueberries (breakfast): 310 kcal, P 9 g / C 54 g / F 6 g", FoodSummary(b.Food[0]))
	assert.Equal(t, "Omega-3 fish oil by Northsea: $21.99, out of stock", SupplementSummary(b.Supplements[2]))
}

func TestNewGridPerKind(t *testing.T) {
	b := datasource.Sample()
	for _, ds := range datasource.SampleDatasets(4) {
		g, err := NewGrid(ds, b, Options{Selectable: true, Searchable: true, Announcer: announce.Nop{}})
		require.NoError(t, err, ds.Name)

		v := g.View()
		assert.Equal(t, 4, v.PageSize, ds.Name)
		assert.Len(t, v.Rows, 4, ds.Name)
		assert.True(t, v.Selectable)
		g.Close()
	}

	_, err := NewGrid(domain.Dataset{Name: "x", Kind: "vitals"}, b, Options{})
	assert.ErrorIs(t, err, datasource.ErrUnknownKind)
}

func TestSupplementSortByRatingPutsUnratedLast(t *testing.T) {
	g, err := NewGrid(domain.Dataset{Name: "Shop", Kind: domain.KindSupplements}, datasource.Sample(),
		Options{PageSize: 0, Announcer: announce.Nop{}})
	require.NoError(t, err)

	require.NoError(t, g.ToggleSort("rating"))
	rows := g.View().Rows
	require.NotEmpty(t, rows)
	assert.Equal(t, "ZN-25", rows[len(rows)-1].ID)

	require.NoError(t, g.ToggleSort("rating"))
	rows = g.View().Rows
	assert.Equal(t, "CR-5", rows[0].ID)
	assert.Equal(t, "ZN-25", rows[len(rows)-1].ID)
}

func TestCallbacksReachBus(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	var mu sync.Mutex
	var got []eventbus.DomainEvent
	record := func(e eventbus.DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e)
	}
	bus.Subscribe(eventbus.EventRowActivated, record)
	bus.Subscribe(eventbus.EventSortChanged, record)
	bus.Subscribe(eventbus.EventSearchChanged, record)

	g, err := NewGrid(domain.Dataset{Name: "Food", Kind: domain.KindFood}, datasource.Sample(), Options{
		PageSize: 5, Searchable: true, Announcer: announce.Nop{}, Bus: bus,
	})
	require.NoError(t, err)

	require.NoError(t, g.ToggleSort("calories"))
	require.NoError(t, g.SetSearch("salmon"))

	// Move onto the interactive "food" column and activate it
	g.Navigate(navigation.DirectionDown)
	g.Navigate(navigation.DirectionRight)
	g.Navigate(navigation.DirectionRight)
	key, ok := g.CursorColumn()
	require.True(t, ok)
	require.Equal(t, "food", key)
	require.True(t, g.Activate())

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 3
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	var activated eventbus.RowActivatedEvent
	for _, e := range got {
		if a, ok := e.(eventbus.RowActivatedEvent); ok {
			activated = a
		}
	}
	assert.Equal(t, "f4", activated.RowID)
	assert.Equal(t, "Food", activated.Dataset)
	assert.Contains(t, activated.Summary, "Salmon with rice")
}

func TestControllerInterface(t *testing.T) {
	g, err := NewGrid(domain.Dataset{Name: "M", Kind: domain.KindMeasurements}, datasource.Sample(), Options{Announcer: announce.Nop{}})
	require.NoError(t, err)
	var _ grid.Controller = g
	assert.Equal(t, 12, g.Export().RowCount)
}
