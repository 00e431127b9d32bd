// Package trainer turns raw dealership inventory feeds into a single
// daily report: a canonical unit set, per-store and per-category
// statistics, per-feed data quality issues, and the day-over-day
// changes against the previously persisted snapshot.
package trainer

import (
	"context"

	"github.com/Diavel78/product-trainer/pkg/audit"
	"github.com/Diavel78/product-trainer/pkg/delta"
	"github.com/Diavel78/product-trainer/pkg/errors"
	"github.com/Diavel78/product-trainer/pkg/feeds"
	"github.com/Diavel78/product-trainer/pkg/inventory"
	"github.com/Diavel78/product-trainer/pkg/logging"
	"github.com/Diavel78/product-trainer/pkg/normalize"
	"github.com/Diavel78/product-trainer/pkg/resolve"
	"github.com/Diavel78/product-trainer/pkg/snapshot"
	"github.com/Diavel78/product-trainer/pkg/summary"
)

// Trainer runs the inventory pipeline end to end.
type Trainer interface {
	// Run fetches every configured feed, normalizes them, and produces
	// the report. The website inventory feed is required; a run against
	// an empty or failing inventory feed aborts with ErrEmptyFeed and
	// leaves any persisted snapshot untouched. The advertising feeds are
	// best effort: a failure there degrades to an empty feed with a
	// logged warning.
	Run(ctx context.Context) (*Report, error)
}

// trainer is the internal implementation of the Trainer interface.
type trainer struct {
	config     *config
	normalizer *normalize.Normalizer
	auditor    *audit.Auditor
	snapshots  *snapshot.Store
}

// New creates a Trainer with the given options. At minimum an inventory
// source must be configured via WithSource.
func New(opts ...Option) (Trainer, error) {
	t := &trainer{
		config: defaultConfig(),
	}

	if err := t.options(opts...); err != nil {
		return nil, err
	}

	if t.config.sources[feeds.InventoryID] == nil {
		return nil, errors.NewConfigError("trainer", "no inventory source configured", nil)
	}

	t.normalizer = normalize.New(
		resolve.NewLocationResolver(t.config.locations),
		resolve.NewCategoryResolver(t.config.categories),
	)
	t.auditor = audit.New()
	if t.config.snapshotPath != "" {
		t.snapshots = snapshot.NewStore(t.config.snapshotPath)
	}

	return t, nil
}

// options applies the given options to the trainer configuration.
func (t *trainer) options(opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(t.config); err != nil {
			return err
		}
	}
	return nil
}

// Run implements the Trainer interface.
func (t *trainer) Run(ctx context.Context) (*Report, error) {
	now := t.config.clock()

	records, err := t.fetch(ctx, feeds.InventoryID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &errors.EmptyFeedError{Feed: feeds.InventoryID.String()}
	}

	units := t.normalizer.Inventory(records)
	logging.Info().
		Int("records", len(records)).
		Int("units", units.Len()).
		Msg("Normalized inventory feed")

	issues := map[feeds.ID][]audit.Issue{
		feeds.InventoryID: t.auditor.Audit(feeds.InventoryID, units),
	}
	for _, id := range []feeds.ID{feeds.GoogleAdsID, feeds.FacebookID} {
		adRecords, err := t.fetch(ctx, id)
		if err != nil {
			logging.Warn().Err(err).Str("feed", id.String()).
				Msg("Advertising feed unavailable, auditing empty feed")
			adRecords = nil
		}
		issues[id] = t.auditor.Audit(id, t.normalizer.Normalize(id, adRecords))
	}

	changes := t.reconcile(units)

	report := &Report{
		GeneratedAt: now,
		Summary:     summary.Compute(units),
		Issues:      issues,
		Delta:       changes,
		Units:       units,
	}
	logging.Info().
		Int("stores", len(report.Summary.Stores)).
		Int("categories", len(report.Summary.Categories)).
		Int("issues", report.TotalIssues()).
		Msg("Report assembled")

	if t.snapshots != nil {
		if err := t.snapshots.Save(snapshot.Capture(units, now)); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// fetch retrieves one feed's records. A missing source is not an error
// here; the caller decides whether the feed is required.
func (t *trainer) fetch(ctx context.Context, id feeds.ID) ([]feeds.Record, error) {
	source := t.config.sources[id]
	if source == nil {
		return nil, nil
	}
	records, err := source.Fetch(ctx)
	if err != nil {
		return nil, errors.WrapFeed(id.String(), "", err)
	}
	return records, nil
}

// reconcile loads the prior snapshot and computes the changeset against
// the current unit set. Without a snapshot store every run is a first run.
func (t *trainer) reconcile(units inventory.Units) *delta.Changeset {
	var prev *snapshot.Snapshot
	if t.snapshots != nil {
		prev, _ = t.snapshots.Load()
	}
	changes := delta.Compute(units, prev)
	if changes.FirstRun {
		logging.Info().Msg("No prior snapshot, treating run as baseline")
	} else {
		logging.Info().
			Time("previous", changes.PreviousDate).
			Int("changes", changes.Total()).
			Msg("Computed changes against prior snapshot")
	}
	return changes
}
