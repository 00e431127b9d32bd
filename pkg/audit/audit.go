// Package audit applies per-feed data-quality rule sets to canonical
// units. Each rule is evaluated independently and accumulates a problem
// message onto the unit's issue; only units with at least one triggered
// rule appear in the output.
package audit

import (
	"fmt"

	"github.com/Diavel78/product-trainer/pkg/feeds"
	"github.com/Diavel78/product-trainer/pkg/inventory"
)

// Quality thresholds shared by the feed rule sets.
const (
	// MinPhotoCount is the minimum acceptable number of listing photos.
	MinPhotoCount = 3

	// MinDescriptionLength is the minimum acceptable description length
	// in characters.
	MinDescriptionLength = 50
)

// Issue is one unit's accumulated data-quality problems within a feed.
// Issues are recomputed every run and never persisted.
type Issue struct {
	Stock     string              `json:"stock" yaml:"stock"`
	Title     string              `json:"title" yaml:"title"`
	Store     inventory.Store     `json:"store" yaml:"store"`
	Category  inventory.Category  `json:"category" yaml:"category"`
	Condition inventory.Condition `json:"condition" yaml:"condition"`
	URL       string              `json:"url,omitempty" yaml:"url,omitempty"`
	Problems  []string            `json:"problems" yaml:"problems"`
}

// rule evaluates one quality check against a unit, returning a problem
// message when triggered.
type rule func(*inventory.Unit) (string, bool)

// Auditor holds the fixed rule set for each feed type.
type Auditor struct {
	rules map[feeds.ID][]rule
}

// New creates an auditor with the standard per-feed rule sets.
func New() *Auditor {
	return &Auditor{
		rules: map[feeds.ID][]rule{
			feeds.InventoryID: {
				noPrice("No price listed"),
				lowPhotos("Only %d photo(s) (need 3+)"),
				shortDescription("Missing or short description (%d chars)"),
				usedWithoutMileage("Used unit — no mileage/hours listed"),
			},
			feeds.GoogleAdsID: {
				noPrice("No price in Google feed"),
				newWithoutMSRP("New unit missing MSRP"),
				lowPhotos("Only %d image(s) in Google feed"),
				shortDescription("Missing or short description in Google feed"),
				usedWithoutMileage("Used unit — no mileage in Google feed"),
			},
			feeds.FacebookID: {
				noPrice("No price in Facebook feed"),
				noImage("No image in Facebook feed"),
				shortDescription("Missing or short description in Facebook feed"),
				noBrand("Missing brand in Facebook feed"),
			},
		},
	}
}

// Audit applies the feed's rule set to every unit and returns the units
// with problems, ordered by stock number. Units that pass every rule
// produce no issue at all.
func (a *Auditor) Audit(feed feeds.ID, units inventory.Units) []Issue {
	rules := a.rules[feed]
	if len(rules) == 0 {
		return nil
	}

	var issues []Issue
	for _, unit := range units.List() {
		var problems []string
		for _, r := range rules {
			if message, triggered := r(unit); triggered {
				problems = append(problems, message)
			}
		}
		if len(problems) == 0 {
			continue
		}
		issues = append(issues, Issue{
			Stock:     unit.Stock,
			Title:     unit.Title,
			Store:     unit.Store,
			Category:  unit.Category,
			Condition: unit.Condition,
			URL:       unit.URL,
			Problems:  problems,
		})
	}
	return issues
}

// Rule constructors. Message formats that include a %d verb are filled
// with the offending value so the report shows the actual count.

func noPrice(message string) rule {
	return func(u *inventory.Unit) (string, bool) {
		return message, u.Price == 0
	}
}

func lowPhotos(format string) rule {
	return func(u *inventory.Unit) (string, bool) {
		return fmt.Sprintf(format, u.PhotoCount), u.PhotoCount < MinPhotoCount
	}
}

func shortDescription(format string) rule {
	return func(u *inventory.Unit) (string, bool) {
		message := format
		if hasVerb(format) {
			message = fmt.Sprintf(format, u.DescriptionLength)
		}
		return message, u.DescriptionLength < MinDescriptionLength
	}
}

func usedWithoutMileage(message string) rule {
	return func(u *inventory.Unit) (string, bool) {
		return message, u.Condition == inventory.ConditionUsed && u.Mileage == ""
	}
}

func newWithoutMSRP(message string) rule {
	return func(u *inventory.Unit) (string, bool) {
		return message, u.Condition == inventory.ConditionNew && u.MSRP == 0
	}
}

func noImage(message string) rule {
	return func(u *inventory.Unit) (string, bool) {
		return message, u.PhotoCount == 0
	}
}

func noBrand(message string) rule {
	return func(u *inventory.Unit) (string, bool) {
		return message, u.Brand == ""
	}
}

// hasVerb reports whether a message format expects a count argument.
func hasVerb(format string) bool {
	for i := 0; i+1 < len(format); i++ {
		if format[i] == '%' && format[i+1] == 'd' {
			return true
		}
	}
	return false
}
