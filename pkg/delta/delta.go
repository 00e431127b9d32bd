// Package delta computes day-over-day inventory changes by reconciling
// the current canonical unit set against the previously persisted
// snapshot. The comparison is a full set-based pass each run; it needs
// only the condensed snapshot, never the previous run's raw feeds.
package delta

import (
	"sort"
	"time"

	"github.com/Diavel78/product-trainer/pkg/inventory"
	"github.com/Diavel78/product-trainer/pkg/snapshot"
)

// Entry describes one added or removed unit.
type Entry struct {
	Stock     string              `json:"stock" yaml:"stock"`
	Title     string              `json:"title" yaml:"title"`
	Store     inventory.Store     `json:"store" yaml:"store"`
	Category  inventory.Category  `json:"category" yaml:"category"`
	Condition inventory.Condition `json:"condition" yaml:"condition"`
	Price     float64             `json:"price" yaml:"price"`
}

// PriceChange describes one unit whose price moved between runs.
type PriceChange struct {
	Stock    string          `json:"stock" yaml:"stock"`
	Title    string          `json:"title" yaml:"title"`
	Store    inventory.Store `json:"store" yaml:"store"`
	OldPrice float64         `json:"old_price" yaml:"old_price"`
	NewPrice float64         `json:"new_price" yaml:"new_price"`

	// Change is the signed price delta (new minus old).
	Change float64 `json:"change" yaml:"change"`
}

// Changeset is the computed difference between two runs. The three
// collections are disjoint by construction. A first run (no usable prior
// snapshot) yields empty collections and FirstRun set. That is a
// distinct terminal state, not an error.
type Changeset struct {
	FirstRun     bool          `json:"first_run" yaml:"first_run"`
	PreviousDate time.Time     `json:"previous_date,omitempty" yaml:"previous_date,omitempty"`
	Added        []Entry       `json:"added" yaml:"added"`
	Removed      []Entry       `json:"removed" yaml:"removed"`
	PriceChanges []PriceChange `json:"price_changes" yaml:"price_changes"`
}

// Total returns the number of changes of all kinds.
func (c *Changeset) Total() int {
	return len(c.Added) + len(c.Removed) + len(c.PriceChanges)
}

// Compute reconciles the current unit set against the prior snapshot.
//
// Added units are sorted by store label, removed units by store label,
// and price changes by signed delta ascending so the largest price drop
// leads. A price move counts only when at least one side carries a real,
// known price; an unknown-to-unknown (0 to 0) transition is not a change.
func Compute(current inventory.Units, prev *snapshot.Snapshot) *Changeset {
	changeset := &Changeset{
		Added:        []Entry{},
		Removed:      []Entry{},
		PriceChanges: []PriceChange{},
	}

	if prev == nil {
		changeset.FirstRun = true
		return changeset
	}
	changeset.PreviousDate = prev.Date

	// Find added units and price changes
	for stock, unit := range current {
		prevUnit, exists := prev.Units[stock]
		if !exists {
			changeset.Added = append(changeset.Added, Entry{
				Stock:     stock,
				Title:     unit.Title,
				Store:     unit.Store,
				Category:  unit.Category,
				Condition: unit.Condition,
				Price:     unit.Price,
			})
			continue
		}

		if unit.Price != prevUnit.Price && (unit.Price > 0 || prevUnit.Price > 0) {
			changeset.PriceChanges = append(changeset.PriceChanges, PriceChange{
				Stock:    stock,
				Title:    unit.Title,
				Store:    unit.Store,
				OldPrice: prevUnit.Price,
				NewPrice: unit.Price,
				Change:   unit.Price - prevUnit.Price,
			})
		}
	}

	// Find removed units
	for stock, prevUnit := range prev.Units {
		if _, exists := current[stock]; !exists {
			changeset.Removed = append(changeset.Removed, Entry{
				Stock:     stock,
				Title:     prevUnit.Title,
				Store:     prevUnit.Store,
				Category:  prevUnit.Category,
				Condition: prevUnit.Condition,
				Price:     prevUnit.Price,
			})
		}
	}

	sortChangeset(changeset)
	return changeset
}

// sortChangeset sorts all slices in the changeset for consistent output.
// Stock number breaks ties so ordering is fully deterministic.
func sortChangeset(changeset *Changeset) {
	sort.Slice(changeset.Added, func(i, j int) bool {
		a, b := changeset.Added[i], changeset.Added[j]
		if a.Store.Label() != b.Store.Label() {
			return a.Store.Label() < b.Store.Label()
		}
		return a.Stock < b.Stock
	})
	sort.Slice(changeset.Removed, func(i, j int) bool {
		a, b := changeset.Removed[i], changeset.Removed[j]
		if a.Store.Label() != b.Store.Label() {
			return a.Store.Label() < b.Store.Label()
		}
		return a.Stock < b.Stock
	})
	sort.Slice(changeset.PriceChanges, func(i, j int) bool {
		a, b := changeset.PriceChanges[i], changeset.PriceChanges[j]
		if a.Change != b.Change {
			return a.Change < b.Change
		}
		return a.Stock < b.Stock
	})
}
