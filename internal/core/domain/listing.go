package domain

// Listing - canonical representation of one domain-for-sale record after
// wire-name normalization. Downstream code only ever sees this shape;
// the snake_case/camelCase duality of the backend stays inside the
// marketapi adapter.
type Listing struct {
	ID             int64
	DomainName     string
	Slug           string
	PriceUSD       float64
	PriceBRL       float64
	WhatsappNumber string
	AfternicURL    string
	Active         bool
	IsFeatured     bool
	City           string
	Category       string
	Description    string
	CreatedAt      string
	UpdatedAt      string
}

// ListingFields - the mutable subset of a listing sent to the backend on
// create and update. Every field is omitted from the request body when the
// caller did not supply it, so updates stay partial: a body touching only
// price_brl must not zero the name or the USD price in transit.
type ListingFields struct {
	DomainName     *string  `json:"domain_name,omitempty"`
	Slug           string   `json:"slug,omitempty"`
	PriceUSD       *float64 `json:"price_usd,omitempty"`
	PriceBRL       *float64 `json:"price_brl,omitempty"`
	WhatsappNumber string   `json:"whatsapp_number,omitempty"`
	AfternicURL    string   `json:"afternic_url,omitempty"`
	Active         *bool    `json:"active,omitempty"`
	IsFeatured     *bool    `json:"isFeatured,omitempty"`
	City           string   `json:"city,omitempty"`
	Category       string   `json:"category,omitempty"`
	Description    string   `json:"description,omitempty"`
}

// ListingQuery - optional flags forwarded to the backend catalog endpoint.
type ListingQuery struct {
	IsSold     *bool
	IsFeatured *bool
}

// RecalculationResult - outcome of the bulk BRL recalculation trigger.
type RecalculationResult struct {
	Updated int
}
