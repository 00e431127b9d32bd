package inventory

import "slices"

// Category represents the product taxonomy for inventory units.
type Category string

// Product categories. CategoryOther is a valid terminal classification for
// units no resolver rule matched, not an error state.
const (
	CategoryUTV        Category = "UTV"
	CategoryATV        Category = "ATV"
	CategoryMotorcycle Category = "Motorcycle"
	CategoryPWC        Category = "PWC"
	CategoryBoat       Category = "Boat"
	CategorySnowmobile Category = "Snowmobile"
	CategoryTrailer    Category = "Trailer"
	CategoryOther      Category = "Other"
)

// String returns the string representation of a Category.
func (c Category) String() string {
	return string(c)
}

// Categories returns all categories in display order, CategoryOther last.
func Categories() []Category {
	return []Category{
		CategoryUTV,
		CategoryATV,
		CategoryMotorcycle,
		CategoryPWC,
		CategoryBoat,
		CategorySnowmobile,
		CategoryTrailer,
		CategoryOther,
	}
}

// IsValid returns true if the Category is one of the defined constants.
func (c Category) IsValid() bool {
	return slices.Contains(Categories(), c)
}
