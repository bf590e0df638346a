package logic

import "healthgrid/internal/domain"

// LoadedDataset is a dataset together with its parsed records
type LoadedDataset struct {
	Dataset domain.Dataset
	Bundle  domain.Bundle
}

// Records returns the number of records of the dataset's kind
func (l LoadedDataset) Records() int {
	switch l.Dataset.Kind {
	case domain.KindMeasurements:
		return len(l.Bundle.Measurements)
	case domain.KindFood:
		return len(l.Bundle.Food)
	case domain.KindSupplements:
		return len(l.Bundle.Supplements)
	}
	return 0
}

// DatasetStore provides access to loaded datasets in load order
type DatasetStore interface {
	GetDataset(name string) *LoadedDataset
	GetAllDatasets() []*LoadedDataset
	AddDataset(ds *LoadedDataset)
	RemoveDataset(name string)
	Len() int
}

// Failure records a dataset that could not be loaded
type Failure struct {
	Path string
	Err  error
}
