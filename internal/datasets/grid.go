package datasets

import (
	"fmt"

	"healthgrid/internal/datasource"
	"healthgrid/internal/domain"
	"healthgrid/internal/eventbus"
	"healthgrid/internal/ui/columns"
	"healthgrid/internal/ui/grid"
	"healthgrid/internal/ui/services/announce"
	"healthgrid/internal/ui/services/sorting"
)

// Options are the per-grid settings shared by every dataset kind
type Options struct {
	PageSize     int
	Selectable   bool
	Searchable   bool
	EmptyMessage string
	Announcer    announce.Announcer

	// Bus receives the grid callbacks as domain events; may be nil
	Bus eventbus.EventBus
}

// NewGrid builds a grid over the records of ds.Kind in b
func NewGrid(ds domain.Dataset, b domain.Bundle, opts Options) (grid.Controller, error) {
	if ds.PageSize > 0 {
		opts.PageSize = ds.PageSize
	}

	switch ds.Kind {
	case domain.KindMeasurements:
		return build(ds.Name, MeasurementColumns(), b.Measurements,
			func(m domain.Measurement) string { return m.ID }, MeasurementSummary, opts)
	case domain.KindFood:
		return build(ds.Name, FoodColumns(), b.Food,
			func(f domain.FoodEntry) string { return f.ID }, FoodSummary, opts)
	case domain.KindSupplements:
		return build(ds.Name, SupplementColumns(), b.Supplements,
			func(s domain.Supplement) string { return s.SKU }, SupplementSummary, opts)
	}
	return nil, fmt.Errorf("dataset %q: %w: %q", ds.Name, datasource.ErrUnknownKind, ds.Kind)
}

func build[T any](name string, cols []columns.Column[T], rows []T, rowID func(T) string, summary func(T) string, opts Options) (*grid.Grid[T], error) {
	publish := func(e eventbus.DomainEvent) {
		if opts.Bus != nil {
			opts.Bus.Publish(e)
		}
	}

	g, err := grid.New(cols, grid.Options[T]{
		PageSize:     opts.PageSize,
		Selectable:   opts.Selectable,
		Searchable:   opts.Searchable,
		EmptyMessage: opts.EmptyMessage,
		Announcer:    opts.Announcer,
		RowID:        rowID,
		Callbacks: grid.Callbacks[T]{
			OnRowClick: func(row T) {
				publish(eventbus.RowActivatedEvent{Dataset: name, RowID: rowID(row), Summary: summary(row)})
			},
			OnSort: func(key string, dir sorting.Direction) {
				publish(eventbus.SortChangedEvent{Dataset: name, ColumnKey: key, Direction: dir.String()})
			},
			OnFilter: func(key, value string) {
				publish(eventbus.FilterChangedEvent{Dataset: name, ColumnKey: key, Value: value})
			},
			OnSearch: func(term string) {
				publish(eventbus.SearchChangedEvent{Dataset: name, Term: term})
			},
			OnSelectionChange: func(ids []string) {
				publish(eventbus.SelectionChangedEvent{Dataset: name, Selected: ids})
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", name, err)
	}

	g.SetRows(rows)
	return g, nil
}
