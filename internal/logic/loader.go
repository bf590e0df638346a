package logic

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"healthgrid/internal/config"
	"healthgrid/internal/datasource"
	"healthgrid/internal/discovery"
	"healthgrid/internal/domain"
	"healthgrid/internal/eventbus"
)

// ErrNoDatasets is returned when every configured dataset failed to load
var ErrNoDatasets = errors.New("no dataset could be loaded")

// Loader fills a DatasetStore from configuration, discovery or the sample bundle
type Loader struct {
	store     DatasetStore
	discovery discovery.DiscoveryService
	bus       eventbus.EventBus
	onLoaded  func(*LoadedDataset)
}

// NewLoader creates a loader; bus may be nil
func NewLoader(store DatasetStore, disc discovery.DiscoveryService, bus eventbus.EventBus) *Loader {
	return &Loader{store: store, discovery: disc, bus: bus}
}

// OnLoaded registers fn to run after each dataset is stored, in load order
// and on the loading goroutine
func (l *Loader) OnLoaded(fn func(*LoadedDataset)) {
	l.onLoaded = fn
}

// Load resolves the datasets of cfg and parses them into the store.
//
// Configured datasets are used when present; otherwise data_dir is scanned.
// When neither yields a file the built-in sample is loaded. Individual
// failures are returned alongside a nil error as long as one dataset loaded.
func (l *Loader) Load(ctx context.Context, cfg *config.Config) ([]Failure, error) {
	var failures []Failure

	switch {
	case len(cfg.Datasets) > 0:
		for _, ds := range cfg.ResolveDatasets() {
			bundle, err := datasource.Load(ds.Path, ds.Kind)
			if err != nil {
				failures = append(failures, l.fail(ds.Path, err))
				continue
			}
			l.add(ds, bundle)
		}

	case cfg.DataDir != "" && l.discovery != nil:
		paths, err := l.discovery.Scan(ctx, []string{cfg.DataDir})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", cfg.DataDir, err)
		}
		for _, path := range paths {
			bundle, err := datasource.Load(path, "")
			if err != nil {
				failures = append(failures, l.fail(path, err))
				continue
			}
			for _, ds := range discoveredDatasets(path, bundle, cfg.UISettings.PageSize) {
				if l.store.GetDataset(ds.Name) != nil {
					ds.Name += " (" + filepath.Base(filepath.Dir(path)) + ")"
				}
				l.add(ds, bundle)
			}
		}
	}

	if l.store.Len() > 0 {
		return failures, nil
	}
	if len(failures) > 0 {
		errs := make([]error, len(failures))
		for i, f := range failures {
			errs[i] = f.Err
		}
		return failures, fmt.Errorf("%w: %w", ErrNoDatasets, errors.Join(errs...))
	}

	log.Printf("No datasets found, loading the built-in sample")
	sample := datasource.Sample()
	for _, ds := range datasource.SampleDatasets(cfg.UISettings.PageSize) {
		l.add(ds, sample)
	}
	return nil, nil
}

func (l *Loader) add(ds domain.Dataset, bundle domain.Bundle) {
	loaded := &LoadedDataset{Dataset: ds, Bundle: datasource.Only(bundle, ds.Kind)}
	l.store.AddDataset(loaded)
	l.publish(eventbus.DatasetLoadedEvent{Dataset: ds, Records: loaded.Records()})
	if l.onLoaded != nil {
		l.onLoaded(loaded)
	}
}

func (l *Loader) fail(path string, err error) Failure {
	log.Printf("Failed to load dataset %s: %v", path, err)
	l.publish(eventbus.ErrorEvent{Message: fmt.Sprintf("%s failed to load", filepath.Base(path)), Err: err})
	return Failure{Path: path, Err: err}
}

func (l *Loader) publish(e eventbus.DomainEvent) {
	if l.bus != nil {
		l.bus.Publish(e)
	}
}

// discoveredDatasets names one dataset per record kind in a discovered file
func discoveredDatasets(path string, bundle domain.Bundle, pageSize int) []domain.Dataset {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	kinds := datasource.KindsIn(bundle)

	out := make([]domain.Dataset, 0, len(kinds))
	for _, kind := range kinds {
		name := base
		if len(kinds) > 1 {
			name = base + "/" + string(kind)
		}
		out = append(out, domain.Dataset{Name: name, Kind: kind, Path: path, PageSize: pageSize})
	}
	return out
}
