// Package inventory defines the canonical record model for dealership
// inventory units, independent of any source feed schema. All downstream
// components (audit, delta, summary, rendering) operate on these types.
package inventory

// Unit is the canonical representation of one physical inventory item.
// A Unit is built by a normalizer from one raw feed record; its Stock
// identifier is the primary key across all pipeline operations.
type Unit struct {
	// Stock is the uppercased, trimmed stock number identifying the unit.
	Stock string `json:"stock" yaml:"stock"`

	// Title is the human-readable unit name. When the feed omits it, the
	// normalizer composes "year make model" instead.
	Title string `json:"title" yaml:"title"`

	Store     Store     `json:"store" yaml:"store"`
	Category  Category  `json:"category" yaml:"category"`
	Condition Condition `json:"condition" yaml:"condition"`

	// Price is the asking price in dollars. Zero means unknown, not free.
	Price float64 `json:"price" yaml:"price"`

	// MSRP is the manufacturer's suggested retail price where the feed
	// carries one (vehicle-ads feeds). Zero means unknown.
	MSRP float64 `json:"msrp,omitempty" yaml:"msrp,omitempty"`

	PhotoCount        int    `json:"photo_count" yaml:"photo_count"`
	Description       string `json:"description,omitempty" yaml:"description,omitempty"`
	DescriptionLength int    `json:"description_length" yaml:"description_length"`
	Mileage           string `json:"mileage,omitempty" yaml:"mileage,omitempty"`
	Make              string `json:"make,omitempty" yaml:"make,omitempty"`
	Model             string `json:"model,omitempty" yaml:"model,omitempty"`
	Year              string `json:"year,omitempty" yaml:"year,omitempty"`
	VIN               string `json:"vin,omitempty" yaml:"vin,omitempty"`
	Brand             string `json:"brand,omitempty" yaml:"brand,omitempty"`
	URL               string `json:"url,omitempty" yaml:"url,omitempty"`
}
