package marketapi

// RawListing mirrors one listing record as the backend actually sends it.
// The backend is inconsistent about field naming: depending on the code path
// that produced the record, multiword fields arrive in camelCase, in
// snake_case, or in both. Each such field is declared twice here — the
// camelCase spelling is the primary key, the snake_case *Alt spelling the
// fallback — and Normalize is the only place that resolves the pair.
// Single-word fields (id, slug, active, city, category, description) spell
// the same in both conventions.
type RawListing struct {
	ID int64 `json:"id"`

	DomainName    string `json:"domainName,omitempty"`
	DomainNameAlt string `json:"domain_name,omitempty"`

	Slug string `json:"slug,omitempty"`

	PriceUSD    float64 `json:"priceUsd,omitempty"`
	PriceUSDAlt float64 `json:"price_usd,omitempty"`

	PriceBRL    float64 `json:"priceBrl,omitempty"`
	PriceBRLAlt float64 `json:"price_brl,omitempty"`

	WhatsappNumber    string `json:"whatsappNumber,omitempty"`
	WhatsappNumberAlt string `json:"whatsapp_number,omitempty"`

	AfternicURL    string `json:"afternicUrl,omitempty"`
	AfternicURLAlt string `json:"afternic_url,omitempty"`

	Active *bool `json:"active,omitempty"`

	IsFeatured    *bool `json:"isFeatured,omitempty"`
	IsFeaturedAlt *bool `json:"is_featured,omitempty"`

	City        string `json:"city,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`

	CreatedAt    string `json:"createdAt,omitempty"`
	CreatedAtAlt string `json:"created_at,omitempty"`

	UpdatedAt    string `json:"updatedAt,omitempty"`
	UpdatedAtAlt string `json:"updated_at,omitempty"`
}

// recalculationResponse - body of POST /api/admin/recalculate-brl.
type recalculationResponse struct {
	Updated int `json:"updated"`
}

// errorResponse - body the backend attaches to non-2xx answers.
type errorResponse struct {
	Error string `json:"error"`
}
