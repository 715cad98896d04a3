// internal/app/store/performance/performancestore.go
package performance

import (
	"errors"
	"fmt"
	"math"

	"github.com/dalemusser/stratadash/internal/domain/models"
)

// ErrUnknownTab is returned when a dataset is requested for a tab that does not exist.
var ErrUnknownTab = errors.New("unknown tab")

// Store provides read-only access to the performance datasets.
// The datasets are literal constants; Store never mutates them and
// hands out copies so callers cannot either.
type Store struct {
	datasets map[models.Tab]models.Dataset
}

// New creates a store holding the dataset for every tab.
func New() *Store {
	s := &Store{datasets: make(map[models.Tab]models.Dataset, len(models.AllTabs()))}
	for _, t := range models.AllTabs() {
		if d, ok := models.DatasetFor(t); ok {
			s.datasets[t] = d
		}
	}
	return s
}

// Get returns the dataset for a tab.
func (s *Store) Get(t models.Tab) (models.Dataset, error) {
	d, ok := s.datasets[t]
	if !ok {
		return models.Dataset{}, fmt.Errorf("%w: %q", ErrUnknownTab, string(t))
	}
	return clone(d), nil
}

// All returns every dataset in tab display order.
func (s *Store) All() []models.Dataset {
	out := make([]models.Dataset, 0, len(s.datasets))
	for _, t := range models.AllTabs() {
		if d, ok := s.datasets[t]; ok {
			out = append(out, clone(d))
		}
	}
	return out
}

// Len returns the number of datasets held.
func (s *Store) Len() int {
	return len(s.datasets)
}

// Validate checks the dataset invariants: every tab has a dataset, every
// dataset has points, and every bar value is a finite non-negative number.
func (s *Store) Validate() error {
	var errs []error
	for _, t := range models.AllTabs() {
		d, ok := s.datasets[t]
		if !ok {
			errs = append(errs, fmt.Errorf("tab %q: no dataset", t))
			continue
		}
		if len(d.Points) == 0 {
			errs = append(errs, fmt.Errorf("tab %q: dataset is empty", t))
		}
		for i, p := range d.Points {
			v := p.Value()
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				errs = append(errs, fmt.Errorf("tab %q: point %d (%s): invalid tiempo %v", t, i, p.Category(), v))
			}
		}
	}
	return errors.Join(errs...)
}

func clone(d models.Dataset) models.Dataset {
	points := make([]models.Point, len(d.Points))
	copy(points, d.Points)
	d.Points = points
	return d
}
