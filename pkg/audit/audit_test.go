package audit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Diavel78/product-trainer/pkg/audit"
	"github.com/Diavel78/product-trainer/pkg/feeds"
	"github.com/Diavel78/product-trainer/pkg/inventory"
	"github.com/Diavel78/product-trainer/pkg/normalize"
)

func cleanUnit(stock string) *inventory.Unit {
	return &inventory.Unit{
		Stock:             stock,
		Title:             "2024 Polaris RZR",
		Store:             inventory.StoreParker,
		Category:          inventory.CategoryUTV,
		Condition:         inventory.ConditionNew,
		Price:             28999,
		MSRP:              29999,
		PhotoCount:        5,
		DescriptionLength: 120,
		Mileage:           "12",
		Brand:             "Polaris",
	}
}

func TestInventoryAudit(t *testing.T) {
	auditor := audit.New()

	t.Run("clean unit produces no issue", func(t *testing.T) {
		units := inventory.NewUnits()
		units.Set(cleanUnit("P100"))
		assert.Empty(t, auditor.Audit(feeds.InventoryID, units))
	})

	t.Run("used unit with three defects", func(t *testing.T) {
		units := inventory.NewUnits()
		units.Set(&inventory.Unit{
			Stock:             "U100",
			Title:             "2019 Honda Talon",
			Condition:         inventory.ConditionUsed,
			Price:             50000,
			PhotoCount:        1,
			DescriptionLength: 10,
			Mileage:           "",
		})

		issues := auditor.Audit(feeds.InventoryID, units)
		require.Len(t, issues, 1)
		require.Len(t, issues[0].Problems, 3)
		assert.Equal(t, "Only 1 photo(s) (need 3+)", issues[0].Problems[0])
		assert.Equal(t, "Missing or short description (10 chars)", issues[0].Problems[1])
		assert.Equal(t, "Used unit — no mileage/hours listed", issues[0].Problems[2])
	})

	t.Run("zero price flagged", func(t *testing.T) {
		unit := cleanUnit("P200")
		unit.Price = 0
		units := inventory.NewUnits()
		units.Set(unit)

		issues := auditor.Audit(feeds.InventoryID, units)
		require.Len(t, issues, 1)
		assert.Equal(t, []string{"No price listed"}, issues[0].Problems)
	})

	t.Run("accented description just below threshold flagged", func(t *testing.T) {
		// 49 characters but 53 UTF-8 bytes.
		description := strings.Repeat("x", 45) + strings.Repeat("é", 4)
		units := normalize.NewDefault().Inventory([]feeds.Record{{
			"stock":       "P300",
			"title":       "2024 Polaris RZR",
			"location":    "Parker",
			"type":        "Side x Side",
			"condition":   "New",
			"price":       "$28,999",
			"photos":      []any{"1.jpg", "2.jpg", "3.jpg"},
			"description": description,
		}})

		issues := auditor.Audit(feeds.InventoryID, units)
		require.Len(t, issues, 1)
		assert.Equal(t, []string{"Missing or short description (49 chars)"}, issues[0].Problems)
	})

	t.Run("issues ordered by stock", func(t *testing.T) {
		units := inventory.NewUnits()
		for _, stock := range []string{"C3", "A1", "B2"} {
			unit := cleanUnit(stock)
			unit.Price = 0
			units.Set(unit)
		}
		issues := auditor.Audit(feeds.InventoryID, units)
		require.Len(t, issues, 3)
		assert.Equal(t, "A1", issues[0].Stock)
		assert.Equal(t, "C3", issues[2].Stock)
	})
}

func TestGoogleAdsAudit(t *testing.T) {
	auditor := audit.New()

	t.Run("new unit missing msrp", func(t *testing.T) {
		unit := cleanUnit("G100")
		unit.MSRP = 0
		units := inventory.NewUnits()
		units.Set(unit)

		issues := auditor.Audit(feeds.GoogleAdsID, units)
		require.Len(t, issues, 1)
		assert.Equal(t, []string{"New unit missing MSRP"}, issues[0].Problems)
	})

	t.Run("used unit without msrp is fine", func(t *testing.T) {
		unit := cleanUnit("G200")
		unit.MSRP = 0
		unit.Condition = inventory.ConditionUsed
		units := inventory.NewUnits()
		units.Set(unit)

		assert.Empty(t, auditor.Audit(feeds.GoogleAdsID, units))
	})

	t.Run("image count message", func(t *testing.T) {
		unit := cleanUnit("G300")
		unit.PhotoCount = 2
		units := inventory.NewUnits()
		units.Set(unit)

		issues := auditor.Audit(feeds.GoogleAdsID, units)
		require.Len(t, issues, 1)
		assert.Equal(t, []string{"Only 2 image(s) in Google feed"}, issues[0].Problems)
	})
}

func TestFacebookAudit(t *testing.T) {
	auditor := audit.New()

	t.Run("missing image and brand", func(t *testing.T) {
		unit := cleanUnit("F100")
		unit.PhotoCount = 0
		unit.Brand = ""
		units := inventory.NewUnits()
		units.Set(unit)

		issues := auditor.Audit(feeds.FacebookID, units)
		require.Len(t, issues, 1)
		assert.Equal(t, []string{
			"No image in Facebook feed",
			"Missing brand in Facebook feed",
		}, issues[0].Problems)
	})

	t.Run("photo threshold does not apply", func(t *testing.T) {
		unit := cleanUnit("F200")
		unit.PhotoCount = 1 // below MinPhotoCount but present
		units := inventory.NewUnits()
		units.Set(unit)

		assert.Empty(t, auditor.Audit(feeds.FacebookID, units))
	})
}

func TestUnknownFeedHasNoRules(t *testing.T) {
	auditor := audit.New()
	units := inventory.NewUnits()
	units.Set(&inventory.Unit{Stock: "X1"})
	assert.Nil(t, auditor.Audit(feeds.ID("craigslist"), units))
}
