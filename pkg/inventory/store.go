package inventory

import "slices"

// Store identifies one of the dealership's physical locations.
type Store string

// Known store locations. StoreUnassigned is a valid terminal classification
// for units whose location could not be resolved, not an error state.
const (
	StoreNorthLakeHavasu Store = "north-lake-havasu"
	StoreBullheadCity    Store = "bullhead-city"
	StoreParker          Store = "parker"
	StoreSouthLakeHavasu Store = "south-lake-havasu"
	StoreReno            Store = "reno"
	StoreUnassigned      Store = "unassigned"
)

// storeLabels maps stores to their numbered display labels. The numbering
// fixes the display and sort order used across reports.
var storeLabels = map[Store]string{
	StoreNorthLakeHavasu: "(1) North Lake Havasu",
	StoreBullheadCity:    "(2) Bullhead City",
	StoreParker:          "(3) Parker",
	StoreSouthLakeHavasu: "(4) South Lake Havasu",
	StoreReno:            "(5) Reno",
	StoreUnassigned:      "Unassigned",
}

// String returns the string representation of a Store.
func (s Store) String() string {
	return string(s)
}

// Label returns the numbered display label for the store.
// Unknown stores fall back to their raw identifier.
func (s Store) Label() string {
	if label, ok := storeLabels[s]; ok {
		return label
	}
	return string(s)
}

// Stores returns all known stores in display order, StoreUnassigned last.
func Stores() []Store {
	return []Store{
		StoreNorthLakeHavasu,
		StoreBullheadCity,
		StoreParker,
		StoreSouthLakeHavasu,
		StoreReno,
		StoreUnassigned,
	}
}

// IsValid returns true if the Store is one of the defined constants.
func (s Store) IsValid() bool {
	return slices.Contains(Stores(), s)
}
