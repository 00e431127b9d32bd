// Package normalize builds canonical inventory units from raw feed
// records. One normalizer variant exists per upstream feed schema; all
// variants share the same location and category resolvers so that
// classification cannot drift between feeds. Every extraction path is
// default-safe: missing or malformed raw fields produce zero values,
// never errors.
package normalize

import (
	"strings"
	"unicode/utf8"

	"github.com/Diavel78/product-trainer/pkg/feeds"
	"github.com/Diavel78/product-trainer/pkg/inventory"
	"github.com/Diavel78/product-trainer/pkg/resolve"
)

// maxDescription caps the description text carried on a canonical unit.
// The full length is kept separately for audit rules.
const maxDescription = 200

// Normalizer converts raw feed records into canonical units.
type Normalizer struct {
	locations  *resolve.LocationResolver
	categories *resolve.CategoryResolver
}

// New creates a normalizer sharing the given resolvers across all feed
// variants.
func New(locations *resolve.LocationResolver, categories *resolve.CategoryResolver) *Normalizer {
	return &Normalizer{
		locations:  locations,
		categories: categories,
	}
}

// NewDefault creates a normalizer over the default store and category tables.
func NewDefault() *Normalizer {
	return New(
		resolve.NewLocationResolver(resolve.DefaultLocationConfig()),
		resolve.NewCategoryResolver(resolve.DefaultCategoryConfig()),
	)
}

// Normalize dispatches records to the variant for the given feed.
func (n *Normalizer) Normalize(id feeds.ID, records []feeds.Record) inventory.Units {
	switch id {
	case feeds.GoogleAdsID:
		return n.GoogleAds(records)
	case feeds.FacebookID:
		return n.Facebook(records)
	default:
		return n.Inventory(records)
	}
}

// Inventory normalizes the primary dealership inventory JSON feed. If the
// same stock number appears twice the later record wins.
func (n *Normalizer) Inventory(records []feeds.Record) inventory.Units {
	units := inventory.NewUnits()
	for _, record := range records {
		stock := strings.ToUpper(record.String("stocknumber", "stock", "id"))
		url := record.String("url")

		title := record.String("title")
		if title == "" {
			title = composeTitle(record)
		}

		description := record.String("description")
		rawType := record.String("type", "category")

		unit := &inventory.Unit{
			Stock:             stock,
			Title:             title,
			Store:             n.locations.Resolve(record.String("location", "dealer", "dealer_name"), tags(record), url),
			Category:          n.categories.Resolve(rawType, stock, title),
			Condition:         inventory.ParseCondition(record.String("condition"), url),
			Price:             record.Number("price"),
			PhotoCount:        record.PhotoCount("photos", "photo"),
			Description:       truncate(description, maxDescription),
			DescriptionLength: utf8.RuneCountInString(description),
			Mileage:           record.String("mileage"),
			Make:              record.String("make"),
			Model:             record.String("model"),
			Year:              record.String("year"),
			VIN:               record.String("vin"),
			URL:               url,
		}
		units.Set(unit)
	}
	return units
}

// GoogleAds normalizes the Google Vehicle Ads TSV feed.
func (n *Normalizer) GoogleAds(records []feeds.Record) inventory.Units {
	units := inventory.NewUnits()
	for _, record := range records {
		stock := strings.ToUpper(record.String("id"))
		url := record.String("link")
		title := record.String("title")
		description := record.String("description")

		photoCount := feeds.CommaCount(record.String("additional_image_link"))
		if photoCount == 0 && record.String("image_link") != "" {
			photoCount = 1
		}

		unit := &inventory.Unit{
			Stock:             stock,
			Title:             title,
			Store:             n.locations.Resolve(record.String("store_code"), nil, url),
			Category:          n.categories.Resolve(record.String("product_type", "google_product_category"), stock, title),
			Condition:         inventory.ParseCondition(record.String("condition"), url),
			Price:             record.Number("price"),
			MSRP:              record.Number("vehicle_msrp"),
			PhotoCount:        photoCount,
			DescriptionLength: utf8.RuneCountInString(description),
			Mileage:           record.String("mileage"),
			URL:               url,
		}
		units.Set(unit)
	}
	return units
}

// Facebook normalizes the Facebook/Meta Product CSV feed.
func (n *Normalizer) Facebook(records []feeds.Record) inventory.Units {
	units := inventory.NewUnits()
	for _, record := range records {
		stock := strings.ToUpper(record.String("id"))
		url := record.String("link")
		title := record.String("title")
		description := record.String("description")

		unit := &inventory.Unit{
			Stock:             stock,
			Title:             title,
			Store:             n.locations.Resolve("", nil, url),
			Category:          n.categories.Resolve(record.String("product_type", "fb_product_category"), stock, title),
			Condition:         inventory.ParseCondition(record.String("condition"), url),
			Price:             record.Number("price"),
			PhotoCount:        record.PhotoCount("images", "image_link"),
			DescriptionLength: utf8.RuneCountInString(description),
			Brand:             record.String("brand"),
			URL:               url,
		}
		units.Set(unit)
	}
	return units
}

// composeTitle falls back to "year make model" when a title is absent.
func composeTitle(record feeds.Record) string {
	parts := []string{
		record.String("year"),
		record.String("make"),
		record.String("model"),
	}
	fields := parts[:0]
	for _, part := range parts {
		if part != "" {
			fields = append(fields, part)
		}
	}
	return strings.Join(fields, " ")
}

// tags extracts a free-text tag collection from a record.
func tags(record feeds.Record) []string {
	list := record.List("tags")
	if len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

// truncate caps s at max characters, never splitting a multi-byte rune.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}
