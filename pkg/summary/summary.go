// Package summary computes cross-cutting inventory statistics in a single
// pass over the canonical unit set. The aggregation is a pure function of
// its input: no hidden state, no side effects.
package summary

import (
	"sort"

	"github.com/Diavel78/product-trainer/pkg/inventory"
)

// StoreStats holds per-store unit counts and summed inventory value.
// Unknown (zero) prices contribute 0 to the value sum on purpose: the
// total is a lower-bound valuation, not an estimate.
type StoreStats struct {
	New        int     `json:"new" yaml:"new"`
	Used       int     `json:"used" yaml:"used"`
	Total      int     `json:"total" yaml:"total"`
	TotalValue float64 `json:"total_value" yaml:"total_value"`
}

// CategoryStats holds per-category unit counts.
type CategoryStats struct {
	New   int `json:"new" yaml:"new"`
	Used  int `json:"used" yaml:"used"`
	Total int `json:"total" yaml:"total"`
}

// Summary is the aggregate view of one canonical unit set.
type Summary struct {
	// Stores and Categories are the distinct labels present in the set,
	// sorted for stable rendering.
	Stores     []inventory.Store    `json:"stores" yaml:"stores"`
	Categories []inventory.Category `json:"categories" yaml:"categories"`

	ByStore    map[inventory.Store]StoreStats       `json:"by_store" yaml:"by_store"`
	ByCategory map[inventory.Category]CategoryStats `json:"by_category" yaml:"by_category"`

	// ByStoreCategory is the store-by-category count matrix.
	ByStoreCategory map[inventory.Store]map[inventory.Category]int `json:"by_store_category" yaml:"by_store_category"`

	Total     int `json:"total" yaml:"total"`
	TotalNew  int `json:"total_new" yaml:"total_new"`
	TotalUsed int `json:"total_used" yaml:"total_used"`
}

// Compute aggregates the unit set in one pass.
func Compute(units inventory.Units) *Summary {
	s := &Summary{
		Stores:          []inventory.Store{},
		Categories:      []inventory.Category{},
		ByStore:         make(map[inventory.Store]StoreStats),
		ByCategory:      make(map[inventory.Category]CategoryStats),
		ByStoreCategory: make(map[inventory.Store]map[inventory.Category]int),
	}

	for _, unit := range units {
		store := unit.Store
		category := unit.Category
		used := unit.Condition == inventory.ConditionUsed

		storeStats := s.ByStore[store]
		storeStats.Total++
		storeStats.TotalValue += unit.Price
		if used {
			storeStats.Used++
		} else {
			storeStats.New++
		}
		s.ByStore[store] = storeStats

		categoryStats := s.ByCategory[category]
		categoryStats.Total++
		if used {
			categoryStats.Used++
		} else {
			categoryStats.New++
		}
		s.ByCategory[category] = categoryStats

		if s.ByStoreCategory[store] == nil {
			s.ByStoreCategory[store] = make(map[inventory.Category]int)
		}
		s.ByStoreCategory[store][category]++

		s.Total++
		if used {
			s.TotalUsed++
		} else {
			s.TotalNew++
		}
	}

	for store := range s.ByStore {
		s.Stores = append(s.Stores, store)
	}
	sort.Slice(s.Stores, func(i, j int) bool {
		return s.Stores[i].Label() < s.Stores[j].Label()
	})

	for category := range s.ByCategory {
		s.Categories = append(s.Categories, category)
	}
	sort.Slice(s.Categories, func(i, j int) bool {
		return s.Categories[i] < s.Categories[j]
	})

	return s
}
