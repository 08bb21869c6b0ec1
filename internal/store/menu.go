package store

import (
	"sort"
	"strings"

	"github.com/lucsky/cuid"

	"github.com/csakala/tableside/internal/models"
)

// SetMenu replaces the whole catalog; used at startup with the seeded menu.
func (s *Store) SetMenu(items []models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = make([]models.MenuItem, len(items))
	copy(s.menu, items)
}

// AddMenuItem inserts a catalog entry, assigning an id when the caller left it
// empty. Returns the stored item.
func (s *Store) AddMenuItem(item models.MenuItem) models.MenuItem {
	if item.ID == "" {
		item.ID = cuid.New()
	}
	s.mu.Lock()
	s.menu = append(s.menu, item)
	s.mu.Unlock()
	return item
}

// UpdateMenuItem replaces the catalog entry with the same id. Snapshots held
// by cart lines or placed orders are unaffected. Unknown ids are no-ops.
func (s *Store) UpdateMenuItem(item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menu {
		if s.menu[i].ID == item.ID {
			s.menu[i] = item
			return
		}
	}
}

func (s *Store) ToggleMenuItemAvailability(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menu {
		if s.menu[i].ID == id {
			s.menu[i].Available = !s.menu[i].Available
			return
		}
	}
}

// MenuItem looks up a catalog entry by id.
func (s *Store) MenuItem(id string) (models.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menu {
		if s.menu[i].ID == id {
			return s.menu[i], true
		}
	}
	return models.MenuItem{}, false
}

// Menu returns the full catalog, unfiltered.
func (s *Store) Menu() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MenuItem, len(s.menu))
	copy(out, s.menu)
	return out
}

func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	s.filter.Query = query
	s.mu.Unlock()
}

// SetFilters merges the given criteria into the browse state; nil slices and
// zero ranges leave the existing values alone, mirroring a partial update.
func (s *Store) SetFilters(f models.MenuFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.Category != "" {
		s.filter.Category = f.Category
	}
	if f.Query != "" {
		s.filter.Query = f.Query
	}
	if f.Dietary != nil {
		s.filter.Dietary = f.Dietary
	}
	if f.SpiceLevel != nil {
		s.filter.SpiceLevel = f.SpiceLevel
	}
	if f.PriceMin > 0 || f.PriceMax > 0 {
		s.filter.PriceMin = f.PriceMin
		s.filter.PriceMax = f.PriceMax
	}
}

func (s *Store) ClearFilters() {
	s.mu.Lock()
	s.filter = s.defaultFilter()
	s.mu.Unlock()
}

func (s *Store) Filter() models.MenuFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// FilteredMenu applies the stored browse criteria; see FilterMenu.
func (s *Store) FilteredMenu() models.MenuResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FilterMenu(s.menu, s.filter, s.config.MaxMenuPrice)
}

// FilterMenu narrows the catalog to available items in the selected category,
// then intersects the text, dietary, spice and price predicates. Dietary and
// spice filters use OR semantics within the set; an empty set is no
// restriction. Results are ordered by popularity, highest first, with ties
// keeping their catalog order.
func FilterMenu(menu []models.MenuItem, f models.MenuFilter, maxPrice float64) models.MenuResult {
	priceMax := f.PriceMax
	if priceMax == 0 {
		priceMax = maxPrice
	}

	result := models.MenuResult{FilterActive: f.Active()}
	for i := range menu {
		item := menu[i]
		if !item.Available {
			continue
		}
		if f.Category != "" && item.Category != f.Category {
			continue
		}
		result.TotalCount++

		if f.Query != "" && !matchesQuery(&item, f.Query) {
			continue
		}
		if len(f.Dietary) > 0 && !matchesAnyDietary(&item, f.Dietary) {
			continue
		}
		if len(f.SpiceLevel) > 0 && !matchesAnySpice(&item, f.SpiceLevel) {
			continue
		}
		if item.Price < f.PriceMin || item.Price > priceMax {
			continue
		}
		result.Items = append(result.Items, item)
	}
	result.FilteredCount = len(result.Items)

	sort.SliceStable(result.Items, func(i, j int) bool {
		return result.Items[i].Popularity > result.Items[j].Popularity
	})
	return result
}

// matchesQuery is a case-insensitive substring match against name,
// description, or any ingredient.
func matchesQuery(item *models.MenuItem, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(item.Name), q) ||
		strings.Contains(strings.ToLower(item.Description), q) {
		return true
	}
	for _, ing := range item.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}

func matchesAnyDietary(item *models.MenuItem, tags []string) bool {
	for _, tag := range tags {
		if item.HasDietaryTag(tag) {
			return true
		}
	}
	return false
}

func matchesAnySpice(item *models.MenuItem, levels []string) bool {
	for _, level := range levels {
		if item.SpiceLevel == level {
			return true
		}
	}
	return false
}
