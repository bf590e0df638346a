package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"healthgrid/internal/datasource"
	"healthgrid/internal/eventbus"
)

// maxDepth limits how far below a root the scan descends
const maxDepth = 5

// ErrScanInProgress is returned when a second scan is started concurrently
var ErrScanInProgress = errors.New("scan already in progress")

// skipDirs are never descended into
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"__pycache__":  true,
	"venv":         true,
	"env":          true,
}

// DiscoveryService finds dataset files in the filesystem
type DiscoveryService interface {
	Scan(ctx context.Context, roots []string) ([]string, error)
	StopScan()
}

type discoveryService struct {
	bus        eventbus.EventBus
	mu         sync.Mutex
	isScanning bool
	cancelFunc context.CancelFunc
	done       chan struct{}
}

// NewDiscoveryService creates a new discovery service; bus may be nil
func NewDiscoveryService(bus eventbus.EventBus) DiscoveryService {
	return &discoveryService{bus: bus}
}

// Scan walks roots and returns every dataset file found, sorted.
// Each file is also published as a DatasetDiscoveredEvent.
func (ds *discoveryService) Scan(ctx context.Context, roots []string) ([]string, error) {
	ds.mu.Lock()
	if ds.isScanning {
		ds.mu.Unlock()
		return nil, ErrScanInProgress
	}
	ds.isScanning = true

	scanCtx, cancel := context.WithCancel(ctx)
	ds.cancelFunc = cancel
	ds.done = make(chan struct{})
	done := ds.done
	ds.mu.Unlock()

	var found []string
	defer func() {
		cancel()
		ds.mu.Lock()
		ds.isScanning = false
		ds.cancelFunc = nil
		ds.mu.Unlock()
		close(done)

		ds.publish(eventbus.ScanCompletedEvent{DatasetsFound: len(found)})
	}()

	ds.publish(eventbus.ScanStartedEvent{Paths: roots})

	for _, root := range roots {
		paths, err := ds.scanDirectory(scanCtx, root)
		found = append(found, paths...)
		if err != nil {
			sort.Strings(found)
			return found, err
		}
	}

	sort.Strings(found)
	return found, nil
}

// StopScan cancels any ongoing scan and waits for it to finish
func (ds *discoveryService) StopScan() {
	ds.mu.Lock()
	if ds.cancelFunc != nil {
		ds.cancelFunc()
	}
	done := ds.done
	ds.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (ds *discoveryService) publish(e eventbus.DomainEvent) {
	if ds.bus != nil {
		ds.bus.Publish(e)
	}
}

// scanDirectory walks one root. A root that is itself a dataset file is
// returned as is.
func (ds *discoveryService) scanDirectory(ctx context.Context, root string) ([]string, error) {
	var found []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			if path == root {
				return err
			}
			log.Printf("Error walking path %s: %v", path, err)
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			relPath, _ := filepath.Rel(root, path)
			if strings.Count(relPath, string(filepath.Separator)) >= maxDepth {
				return fs.SkipDir
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || skipDirs[name] {
				return fs.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if _, ok := datasource.FormatOf(path); !ok {
			return nil
		}

		found = append(found, path)
		ds.publish(eventbus.DatasetDiscoveredEvent{Path: path})
		return nil
	})

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return found, err
		}
		log.Printf("Error scanning directory %s: %v", root, err)
		ds.publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("Failed to scan %s", root),
			Err:     err,
		})
		return found, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	return found, nil
}
