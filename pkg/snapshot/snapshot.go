// Package snapshot persists the prior run's condensed unit set for delta
// computation. The snapshot is a dated mapping from stock number to a
// reduced subset of unit fields, written as a single YAML blob at the end
// of each run and loaded at the start of the next.
package snapshot

import (
	"time"

	"github.com/Diavel78/product-trainer/pkg/inventory"
)

// Unit is the reduced unit subset carried across runs. Only the fields
// the delta engine and report headers need are kept.
type Unit struct {
	Title     string              `json:"title" yaml:"title"`
	Store     inventory.Store     `json:"store" yaml:"store"`
	Category  inventory.Category  `json:"category" yaml:"category"`
	Condition inventory.Condition `json:"condition" yaml:"condition"`
	Price     float64             `json:"price" yaml:"price"`
}

// Snapshot is one run's persisted unit set with the time it was taken.
type Snapshot struct {
	Date  time.Time       `json:"date" yaml:"date"`
	Units map[string]Unit `json:"units" yaml:"units"`
}

// Capture condenses a canonical unit set into a snapshot dated at the
// given time.
func Capture(units inventory.Units, takenAt time.Time) *Snapshot {
	snap := &Snapshot{
		Date:  takenAt,
		Units: make(map[string]Unit, units.Len()),
	}
	for stock, unit := range units {
		snap.Units[stock] = Unit{
			Title:     unit.Title,
			Store:     unit.Store,
			Category:  unit.Category,
			Condition: unit.Condition,
			Price:     unit.Price,
		}
	}
	return snap
}

// Len returns the number of units in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Units)
}
