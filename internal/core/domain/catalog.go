package domain

// CatalogSnapshot - the listing store's derived state: the active public
// collection plus the views computed from it. Rebuilt as a whole on every
// reload; never patched incrementally.
type CatalogSnapshot struct {
	Listings   []Listing
	Featured   []Listing
	Cities     []string
	Categories []string
}

// CatalogPage - the view-model behind the public catalog page: the featured
// carousel, the currently filtered subset and the filter selector options.
type CatalogPage struct {
	Featured   []Listing
	Listings   []Listing
	Cities     []string
	Categories []string
}
