package dataset

import (
	"fmt"
	"sync/atomic"

	"github.com/sheetworks/cut-estimator/pkg/metrics"
)

// Store holds the currently loaded dataset. Loading a new source replaces the
// snapshot wholesale; snapshots already handed out are never modified.
type Store struct {
	loader  *Loader
	current atomic.Pointer[Dataset]
}

// NewStore creates an empty Store loading sources with loader.
func NewStore(loader *Loader) *Store {
	return &Store{loader: loader}
}

// Load reads path and makes it the current snapshot. On error the previous snapshot is kept.
func (s *Store) Load(path string) (*Dataset, error) {
	ds, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}
	s.current.Store(ds)
	metrics.UpdateDatasetRowsMetric(ds.Source(), ds.Len())
	return ds, nil
}

// Snapshot returns the current dataset.
func (s *Store) Snapshot() (*Dataset, error) {
	ds := s.current.Load()
	if ds == nil {
		return nil, fmt.Errorf("no dataset loaded")
	}
	return ds, nil
}
