package inventory

import "sort"

// Units is a canonical unit set keyed by stock number. Within one
// normalization pass a stock number is unique; setting a unit for an
// existing key overwrites the earlier record (later record wins).
type Units map[string]*Unit

// NewUnits creates an empty unit set.
func NewUnits() Units {
	return make(Units)
}

// Set adds or replaces a unit, keyed by its stock number.
func (u Units) Set(unit *Unit) {
	if unit == nil || unit.Stock == "" {
		return
	}
	u[unit.Stock] = unit
}

// Get returns a unit by stock number.
func (u Units) Get(stock string) (*Unit, bool) {
	unit, found := u[stock]
	return unit, found
}

// Len returns the number of units in the set.
func (u Units) Len() int {
	return len(u)
}

// Stocks returns all stock numbers in ascending order.
func (u Units) Stocks() []string {
	stocks := make([]string, 0, len(u))
	for stock := range u {
		stocks = append(stocks, stock)
	}
	sort.Strings(stocks)
	return stocks
}

// List returns all units ordered by stock number for deterministic output.
func (u Units) List() []*Unit {
	units := make([]*Unit, 0, len(u))
	for _, stock := range u.Stocks() {
		units = append(units, u[stock])
	}
	return units
}
