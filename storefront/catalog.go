package storefront

import (
	"strings"

	"github.com/nigel2421/wemisireact/models"
)

// SetFilter sets the active category filter; empty means AllCategories.
func (s *State) SetFilter(category string) {
	if category == "" {
		category = AllCategories
	}
	s.filter = category
}

// Filter returns the active category filter.
func (s *State) Filter() string { return s.filter }

// SetSearch sets the search query.
func (s *State) SetSearch(query string) { s.search = query }

// Search returns the current search query.
func (s *State) Search() string { return s.search }

// Visible derives the storefront product list from the full list, the active
// category filter and the search string. A product matches when it is
// visible, its category equals the filter (or the filter is "All"), and the
// query is a case-insensitive substring of its name or description. Input
// order is preserved.
func (s *State) Visible() []models.Product {
	query := strings.ToLower(strings.TrimSpace(s.search))
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if !p.IsVisible {
			continue
		}
		if s.filter != AllCategories && p.Category != s.filter {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Select opens the product detail view; an unknown id closes it.
func (s *State) Select(id string) {
	if _, ok := s.findProduct(id); ok {
		s.selected = id
		return
	}
	s.selected = ""
}

// Deselect closes the product detail view.
func (s *State) Deselect() { s.selected = "" }

// Selected returns the product currently shown in the detail view.
func (s *State) Selected() (models.Product, bool) {
	if s.selected == "" {
		return models.Product{}, false
	}
	return s.findProduct(s.selected)
}
