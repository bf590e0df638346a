package logic

import (
	"sync"
)

// MemoryDatasetStore is an in-memory implementation of DatasetStore
type MemoryDatasetStore struct {
	mu       sync.RWMutex
	datasets map[string]*LoadedDataset
	order    []string
}

// NewMemoryDatasetStore creates a new memory-based dataset store
func NewMemoryDatasetStore() *MemoryDatasetStore {
	return &MemoryDatasetStore{
		datasets: make(map[string]*LoadedDataset),
	}
}

func (s *MemoryDatasetStore) GetDataset(name string) *LoadedDataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.datasets[name]
}

// GetAllDatasets returns the datasets in the order they were added
func (s *MemoryDatasetStore) GetAllDatasets() []*LoadedDataset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*LoadedDataset, 0, len(s.order))
	for _, name := range s.order {
		result = append(result, s.datasets[name])
	}
	return result
}

// AddDataset stores ds, replacing a dataset of the same name in place
func (s *MemoryDatasetStore) AddDataset(ds *LoadedDataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := ds.Dataset.Name
	if _, exists := s.datasets[name]; !exists {
		s.order = append(s.order, name)
	}
	s.datasets[name] = ds
}

func (s *MemoryDatasetStore) RemoveDataset(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.datasets[name]; !exists {
		return
	}
	delete(s.datasets, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *MemoryDatasetStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
