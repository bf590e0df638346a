package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"healthgrid/internal/domain"
	"healthgrid/internal/eventbus"
	"healthgrid/internal/ui/state"
)

func newHandler() (*EventHandler, *state.AppState) {
	s := state.NewAppState([]state.Tab{{Name: "Food"}, {Name: "Supplements"}})
	return NewEventHandler(s), s
}

func TestRowActivatedShowsSummary(t *testing.T) {
	h, s := newHandler()

	cmd := h.HandleEvent(eventbus.RowActivatedEvent{Dataset: "Food", RowID: "f1", Summary: "Oatmeal, 310 kcal"})
	assert.NotNil(t, cmd)
	assert.Equal(t, "Oatmeal, 310 kcal", s.StatusMessage)
	assert.False(t, s.StatusIsError)
}

func TestErrorEventIsMarked(t *testing.T) {
	h, s := newHandler()

	h.HandleEvent(eventbus.ErrorEvent{Message: "bad file", Err: errors.New("parse")})
	assert.Equal(t, "Error: bad file", s.StatusMessage)
	assert.True(t, s.StatusIsError)
}

func TestSelectionChangedOnlyForActiveTab(t *testing.T) {
	h, s := newHandler()

	assert.Nil(t, h.HandleEvent(eventbus.SelectionChangedEvent{Dataset: "Supplements", Selected: []string{"a"}}))
	assert.Empty(t, s.StatusMessage)

	h.HandleEvent(eventbus.SelectionChangedEvent{Dataset: "Food", Selected: []string{"a", "b"}})
	assert.Equal(t, "2 selected", s.StatusMessage)

	h.HandleEvent(eventbus.SelectionChangedEvent{Dataset: "Food"})
	assert.Equal(t, "Selection cleared", s.StatusMessage)
}

func TestScanEventsReportProgress(t *testing.T) {
	h, s := newHandler()
	s.Loading = true

	assert.NotNil(t, h.HandleEvent(eventbus.ScanStartedEvent{Paths: []string{"/data"}}))
	assert.Equal(t, "Scanning /data for datasets...", s.StatusMessage)

	// Files are still being parsed after the scan
	assert.NotNil(t, h.HandleEvent(eventbus.ScanCompletedEvent{DatasetsFound: 3}))
	assert.True(t, s.Loading)
	assert.Equal(t, "Scan complete. Found 3 dataset files.", s.StatusMessage)
}

func TestIgnoredEvents(t *testing.T) {
	h, s := newHandler()

	assert.Nil(t, h.HandleEvent(eventbus.DatasetLoadedEvent{Dataset: domain.Dataset{Name: "Food"}, Records: 9}))
	assert.Nil(t, h.HandleEvent(eventbus.SortChangedEvent{Dataset: "Food", ColumnKey: "calories"}))
	assert.Nil(t, h.HandleEvent(eventbus.RowActivatedEvent{Dataset: "Food"}))
	assert.Empty(t, s.StatusMessage)
}
