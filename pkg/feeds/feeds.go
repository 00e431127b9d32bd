// Package feeds defines the raw record model for upstream inventory feeds
// and the field extraction primitives used to read them. Each feed source
// publishes records under its own key names; the extractor resolves a small
// set of candidate aliases per logical field and coerces values with safe
// defaults, so no missing or malformed field ever raises.
package feeds

import (
	"context"
	"slices"
)

// ID represents the identifier of an upstream feed source.
type ID string

// String returns the string representation of a feed ID.
func (id ID) String() string {
	return string(id)
}

// Known feed sources.
const (
	// InventoryID is the primary dealership inventory JSON feed.
	InventoryID ID = "inventory"
	// GoogleAdsID is the Google Vehicle Ads TSV feed.
	GoogleAdsID ID = "google_ads"
	// FacebookID is the Facebook/Meta Product CSV feed.
	FacebookID ID = "facebook"
)

// IDs returns all feed sources in pipeline order.
func IDs() []ID {
	return []ID{InventoryID, GoogleAdsID, FacebookID}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// Source supplies raw records for one feed. Implementations handle
// retrieval and decoding; the pipeline consumes already-fetched records.
type Source interface {
	// ID returns the feed this source supplies
	ID() ID

	// Fetch retrieves the feed's raw records
	Fetch(ctx context.Context) ([]Record, error)
}

// StaticSource is a Source backed by an in-memory record slice. Useful for
// tests and for callers that retrieve feeds themselves.
type StaticSource struct {
	id      ID
	records []Record
}

// NewStatic creates a StaticSource for the given feed and records.
func NewStatic(id ID, records []Record) *StaticSource {
	return &StaticSource{id: id, records: records}
}

// ID implements the Source interface.
func (s *StaticSource) ID() ID {
	return s.id
}

// Fetch implements the Source interface.
func (s *StaticSource) Fetch(_ context.Context) ([]Record, error) {
	return s.records, nil
}
