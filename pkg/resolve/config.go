// Package resolve classifies raw feed hints into canonical stores and
// categories. Both resolvers are driven by explicit immutable configuration
// tables passed into their constructors: the table is the single source of
// truth for each taxonomy, so adding a store or category alias means adding
// one table entry, not new code. Rule order is a deliberate precedence
// policy: the first matching entry wins.
package resolve

import "github.com/Diavel78/product-trainer/pkg/inventory"

// StoreRule maps raw spellings and URL domains to one canonical store.
type StoreRule struct {
	Store inventory.Store `json:"store" yaml:"store"`

	// Aliases are raw spellings matched (case-insensitively, as
	// substrings) against explicit location fields and tag text.
	Aliases []string `json:"aliases" yaml:"aliases"`

	// Domains are per-store website domains or slugs matched against
	// unit URLs.
	Domains []string `json:"domains,omitempty" yaml:"domains,omitempty"`
}

// LocationConfig is the ordered store alias table for a deployment.
type LocationConfig struct {
	Rules []StoreRule `json:"rules" yaml:"rules"`
}

// DefaultLocationConfig returns the Anderson Powersports store table.
func DefaultLocationConfig() LocationConfig {
	return LocationConfig{
		Rules: []StoreRule{
			{
				Store:   inventory.StoreNorthLakeHavasu,
				Aliases: []string{"North Lake Havasu"},
				Domains: []string{"andersonpowersportshavasu.com"},
			},
			{
				Store:   inventory.StoreBullheadCity,
				Aliases: []string{"Bullhead City", "Bullhead"},
				Domains: []string{"andersonpowersportsbullhead.com"},
			},
			{
				Store:   inventory.StoreParker,
				Aliases: []string{"Parker"},
				Domains: []string{"andersonpowersportsparker.com"},
			},
			{
				Store:   inventory.StoreSouthLakeHavasu,
				Aliases: []string{"AZ West", "South Lake Havasu"},
				Domains: []string{"andersonazwestallsports.com"},
			},
			{
				Store:   inventory.StoreReno,
				Aliases: []string{"Reno"},
				Domains: []string{"andersonpowersportsreno.com"},
			},
		},
	}
}

// CategoryRule maps raw vendor category strings to one canonical category.
type CategoryRule struct {
	Category inventory.Category `json:"category" yaml:"category"`
	Aliases  []string           `json:"aliases" yaml:"aliases"`
}

// KeywordRule maps title keywords (model and brand-family names) to one
// canonical category, used as a fallback when no explicit category field
// matched.
type KeywordRule struct {
	Category inventory.Category `json:"category" yaml:"category"`
	Keywords []string           `json:"keywords" yaml:"keywords"`
}

// CategoryConfig holds the ordered category alias table and the ordered
// title-keyword fallback lists for a deployment.
type CategoryConfig struct {
	Rules    []CategoryRule `json:"rules" yaml:"rules"`
	Keywords []KeywordRule  `json:"keywords" yaml:"keywords"`
}

// DefaultCategoryConfig returns the powersports category taxonomy. The
// keyword list order (UTV, Motorcycle, PWC, Boat, Snowmobile, Trailer) is
// the tie-break policy when a title matches more than one list.
func DefaultCategoryConfig() CategoryConfig {
	return CategoryConfig{
		Rules: []CategoryRule{
			{Category: inventory.CategoryUTV, Aliases: []string{"Utility Vehicle", "Side x Side", "Side by Side", "SxS"}},
			{Category: inventory.CategoryATV, Aliases: []string{"ATV", "All Terrain Vehicle", "Quad"}},
			{Category: inventory.CategoryMotorcycle, Aliases: []string{"Motorcycle", "Street Bike", "Dirt Bike", "Scooter", "Cruiser"}},
			{Category: inventory.CategoryPWC, Aliases: []string{"Personal Watercraft", "PWC", "Watercraft", "Jet Ski"}},
			{Category: inventory.CategoryBoat, Aliases: []string{"Boat", "Pontoon", "Marine"}},
			{Category: inventory.CategorySnowmobile, Aliases: []string{"Snowmobile", "Sled"}},
			{Category: inventory.CategoryTrailer, Aliases: []string{"Trailer", "Cargo Trailer"}},
		},
		Keywords: []KeywordRule{
			{Category: inventory.CategoryUTV, Keywords: []string{
				"rzr", "ranger", "maverick", "defender", "general", "zforce", "uforce",
				"pioneer", "talon", "mule", "teryx", "wolverine", "viking", "commander",
				"sportsman", "outlander", "xpedition",
			}},
			{Category: inventory.CategoryMotorcycle, Keywords: []string{
				"ninja", "rebel", "scout", "chief", "challenger", "ibex", "grom",
				"crf", "klr", "klx", "mt-", "tenere", "yz", "slingshot",
			}},
			{Category: inventory.CategoryPWC, Keywords: []string{
				"sea-doo", "waverunner", "jet ski", "spark", "fishpro", "gti", "gtx",
				"rxt", "rxp", "gtr", "superjet", "jetblaster",
			}},
			{Category: inventory.CategoryBoat, Keywords: []string{
				"bennington", "godfrey", "switch", "pontoon", "aquapatio", "sweetwater",
			}},
			{Category: inventory.CategorySnowmobile, Keywords: []string{
				"rmk", "khaos", "timbersled", "snowmobile",
			}},
			{Category: inventory.CategoryTrailer, Keywords: []string{
				"trailer", "echo trailer",
			}},
		},
	}
}
