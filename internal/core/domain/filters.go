package domain

import "strings"

// FilterCriteria - the three public catalog filter dimensions. An empty
// string means "no constraint" on that dimension. The UI always submits all
// three together, so criteria fully replace each other and never merge.
type FilterCriteria struct {
	Search   string
	City     string
	Category string
}

// IsZero reports whether no dimension is constrained.
func (c FilterCriteria) IsZero() bool {
	return c.Search == "" && c.City == "" && c.Category == ""
}

// ApplyFilters narrows listings by the given criteria. Dimensions compose
// conjunctively: search is a case-insensitive substring match on the domain
// name, city and category are exact case-sensitive matches. The relative
// order of the input is preserved, and an all-empty criteria returns the
// input elements unchanged.
func ApplyFilters(listings []Listing, c FilterCriteria) []Listing {
	if c.IsZero() {
		return listings
	}

	search := strings.ToLower(c.Search)

	filtered := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if search != "" && !strings.Contains(strings.ToLower(l.DomainName), search) {
			continue
		}
		if c.City != "" && l.City != c.City {
			continue
		}
		if c.Category != "" && l.Category != c.Category {
			continue
		}
		filtered = append(filtered, l)
	}
	return filtered
}

// ActiveListings returns the subset eligible for public display. Only an
// explicit Active == false excludes a record; the normalizer already maps an
// absent wire field to true (see marketapi.Normalize).
func ActiveListings(listings []Listing) []Listing {
	active := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.Active {
			active = append(active, l)
		}
	}
	return active
}

// FeaturedListings returns the listings flagged for the featured section.
// Callers pass the active set; the featured set is always a subset of it.
func FeaturedListings(listings []Listing) []Listing {
	featured := make([]Listing, 0)
	for _, l := range listings {
		if l.IsFeatured {
			featured = append(featured, l)
		}
	}
	return featured
}

// DistinctCities collects the unique non-empty city values, first-seen order.
// Used to populate the city filter selector.
func DistinctCities(listings []Listing) []string {
	return distinctValues(listings, func(l Listing) string { return l.City })
}

// DistinctCategories collects the unique non-empty category values,
// first-seen order.
func DistinctCategories(listings []Listing) []string {
	return distinctValues(listings, func(l Listing) string { return l.Category })
}

func distinctValues(listings []Listing, value func(Listing) string) []string {
	seen := make(map[string]struct{}, len(listings))
	values := make([]string, 0)
	for _, l := range listings {
		v := value(l)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
