package models

// MenuFilter is the transient browse state: free-text search plus the
// dietary/spice/price filters. Empty sets place no restriction.
type MenuFilter struct {
	Category   string   `json:"category,omitempty"`
	Query      string   `json:"query,omitempty"`
	Dietary    []string `json:"dietary,omitempty"`
	SpiceLevel []string `json:"spice_level,omitempty"`
	PriceMin   float64  `json:"price_min"`
	PriceMax   float64  `json:"price_max"`
}

// Active reports whether any predicate beyond category/availability is set,
// so consumers can tell an empty result from an unfiltered empty menu.
func (f *MenuFilter) Active() bool {
	return f.Query != "" || len(f.Dietary) > 0 || len(f.SpiceLevel) > 0 || f.PriceMin > 0 || f.PriceMax > 0
}

// MenuResult pairs the filtered items with the counts consumers need for
// "no results" messaging.
type MenuResult struct {
	Items         []MenuItem `json:"items"`
	TotalCount    int        `json:"total_count"`    // items matching category+availability
	FilteredCount int        `json:"filtered_count"` // items surviving all predicates
	FilterActive  bool       `json:"filter_active"`
}
