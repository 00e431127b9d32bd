package trainer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Diavel78/product-trainer/pkg/errors"
	"github.com/Diavel78/product-trainer/pkg/feeds"
	"github.com/Diavel78/product-trainer/pkg/inventory"
)

// failingSource simulates an upstream feed outage.
type failingSource struct {
	id feeds.ID
}

func (s *failingSource) ID() feeds.ID { return s.id }

func (s *failingSource) Fetch(_ context.Context) ([]feeds.Record, error) {
	return nil, errors.New("connection reset")
}

func inventoryRecords() []feeds.Record {
	return []feeds.Record{
		{
			"stocknumber": "p1001",
			"title":       "2024 Polaris RZR Pro XP 4 Ultimate",
			"location":    "North Lake Havasu",
			"condition":   "New",
			"price":       "$28,999.00",
			"photos":      []any{"1.jpg", "2.jpg", "3.jpg", "4.jpg"},
			"description": "Four-seat sport side by side with Dynamix suspension, Ride Command, and a full factory warranty.",
			"url":         "https://www.andersonpowersportshavasu.com/inventory/p1001",
		},
		{
			"stocknumber": "k2002",
			"year":        "2021",
			"make":        "Kawasaki",
			"model":       "Ninja 650",
			"condition":   "Used",
			"price":       "6999",
			"photos":      []any{"1.jpg", "2.jpg"},
			"mileage":     "8200",
			"url":         "https://www.andersonpowersportsbullhead.com/inventory/k2002",
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("requires inventory source", func(t *testing.T) {
		_, err := New()
		require.Error(t, err)

		_, err = New(WithSource(feeds.NewStatic(feeds.FacebookID, nil)))
		require.Error(t, err)
	})

	t.Run("rejects nil source", func(t *testing.T) {
		_, err := New(WithSource(nil))
		require.Error(t, err)
	})

	t.Run("rejects unknown feed id", func(t *testing.T) {
		_, err := New(WithSource(feeds.NewStatic(feeds.ID("bing_ads"), nil)))
		require.Error(t, err)
	})

	t.Run("minimal configuration", func(t *testing.T) {
		tr, err := New(WithSource(feeds.NewStatic(feeds.InventoryID, inventoryRecords())))
		require.NoError(t, err)
		require.NotNil(t, tr)
	})
}

func TestRun(t *testing.T) {
	at := time.Date(2025, 3, 1, 6, 30, 0, 0, time.UTC)

	t.Run("first run", func(t *testing.T) {
		tr, err := New(
			WithSource(feeds.NewStatic(feeds.InventoryID, inventoryRecords())),
			WithClock(func() time.Time { return at }),
		)
		require.NoError(t, err)

		report, err := tr.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, at, report.GeneratedAt)
		assert.Equal(t, 2, report.Summary.Total)
		assert.Equal(t, 1, report.Summary.TotalNew)
		assert.Equal(t, 1, report.Summary.TotalUsed)

		require.NotNil(t, report.Delta)
		assert.True(t, report.Delta.FirstRun)
		assert.Zero(t, report.Delta.Total())

		rzr, ok := report.Units.Get("P1001")
		require.True(t, ok)
		assert.Equal(t, inventory.StoreNorthLakeHavasu, rzr.Store)
		assert.Equal(t, inventory.CategoryUTV, rzr.Category)
		assert.InDelta(t, 28999, rzr.Price, 0.001)

		ninja, ok := report.Units.Get("K2002")
		require.True(t, ok)
		assert.Equal(t, "2021 Kawasaki Ninja 650", ninja.Title)
		assert.Equal(t, inventory.StoreBullheadCity, ninja.Store)
		assert.Equal(t, inventory.CategoryMotorcycle, ninja.Category)
		assert.Equal(t, inventory.ConditionUsed, ninja.Condition)
	})

	t.Run("inventory issues reported", func(t *testing.T) {
		tr, err := New(WithSource(feeds.NewStatic(feeds.InventoryID, inventoryRecords())))
		require.NoError(t, err)

		report, err := tr.Run(context.Background())
		require.NoError(t, err)

		issues := report.Issues[feeds.InventoryID]
		require.Len(t, issues, 1)
		assert.Equal(t, "K2002", issues[0].Stock)
		// Two photos and no description at all.
		assert.Len(t, issues[0].Problems, 2)
	})

	t.Run("empty inventory feed aborts", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snapshot.yaml")
		tr, err := New(
			WithSource(feeds.NewStatic(feeds.InventoryID, nil)),
			WithSnapshotPath(path),
		)
		require.NoError(t, err)

		report, err := tr.Run(context.Background())
		require.Error(t, err)
		assert.Nil(t, report)
		assert.True(t, errors.IsEmptyFeed(err))

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "aborted run must not write a snapshot")
	})

	t.Run("inventory outage aborts", func(t *testing.T) {
		tr, err := New(WithSource(&failingSource{id: feeds.InventoryID}))
		require.NoError(t, err)

		_, err = tr.Run(context.Background())
		require.Error(t, err)
		assert.False(t, errors.IsEmptyFeed(err))
	})

	t.Run("advertising outage degrades to empty feed", func(t *testing.T) {
		tr, err := New(
			WithSource(feeds.NewStatic(feeds.InventoryID, inventoryRecords())),
			WithSource(&failingSource{id: feeds.GoogleAdsID}),
		)
		require.NoError(t, err)

		report, err := tr.Run(context.Background())
		require.NoError(t, err)
		assert.Empty(t, report.Issues[feeds.GoogleAdsID])
		assert.Empty(t, report.Issues[feeds.FacebookID])
	})

	t.Run("second run reports changes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state", "snapshot.yaml")

		first, err := New(
			WithSource(feeds.NewStatic(feeds.InventoryID, inventoryRecords())),
			WithSnapshotPath(path),
			WithClock(func() time.Time { return at }),
		)
		require.NoError(t, err)
		_, err = first.Run(context.Background())
		require.NoError(t, err)

		// Next day: the RZR is repriced, the Ninja sells, a PWC arrives.
		records := inventoryRecords()[:1]
		records[0]["price"] = "26999"
		records = append(records, feeds.Record{
			"stocknumber": "s3003",
			"title":       "2024 Sea-Doo GTX 170",
			"location":    "Parker",
			"condition":   "New",
			"price":       "13499",
		})

		second, err := New(
			WithSource(feeds.NewStatic(feeds.InventoryID, records)),
			WithSnapshotPath(path),
			WithClock(func() time.Time { return at.Add(24 * time.Hour) }),
		)
		require.NoError(t, err)

		report, err := second.Run(context.Background())
		require.NoError(t, err)

		changes := report.Delta
		require.NotNil(t, changes)
		assert.False(t, changes.FirstRun)
		assert.True(t, changes.PreviousDate.Equal(at))

		require.Len(t, changes.Added, 1)
		assert.Equal(t, "S3003", changes.Added[0].Stock)

		require.Len(t, changes.Removed, 1)
		assert.Equal(t, "K2002", changes.Removed[0].Stock)
		assert.Equal(t, inventory.StoreBullheadCity, changes.Removed[0].Store)

		require.Len(t, changes.PriceChanges, 1)
		assert.Equal(t, "P1001", changes.PriceChanges[0].Stock)
		assert.InDelta(t, -2000, changes.PriceChanges[0].Change, 0.001)
	})
}
