package rest

import (
	"domain-market-web/internal/core/domain"
)

// ListingCardResponse - one card on the public catalog page. Prices arrive
// pre-formatted so the page renders them untouched.
type ListingCardResponse struct {
	ID              int64  `json:"id"`
	DomainName      string `json:"domain_name"`
	Slug            string `json:"slug"`
	PriceUsdDisplay string `json:"price_usd_display"`
	PriceBrlDisplay string `json:"price_brl_display"`
	IsFeatured      bool   `json:"is_featured"`
	City            string `json:"city"`
	Category        string `json:"category"`
}

// ListingDetailResponse - the full detail page view-model, card fields plus
// the purchase links.
type ListingDetailResponse struct {
	ListingCardResponse
	Description string `json:"description"`
	AfternicURL string `json:"afternic_url,omitempty"`
	WhatsappURL string `json:"whatsapp_url,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// CatalogResponse - the public catalog page: featured carousel, the filtered
// grid and the options for the filter selectors.
type CatalogResponse struct {
	Featured   []ListingCardResponse `json:"featured"`
	Listings   []ListingCardResponse `json:"listings"`
	Cities     []string              `json:"cities"`
	Categories []string              `json:"categories"`
}

// AdminListingResponse - the raw numeric view used by the dashboard table.
// Admin edits numbers, so no display formatting here.
type AdminListingResponse struct {
	ID             int64   `json:"id"`
	DomainName     string  `json:"domain_name"`
	Slug           string  `json:"slug"`
	PriceUSD       float64 `json:"price_usd"`
	PriceBRL       float64 `json:"price_brl"`
	WhatsappNumber string  `json:"whatsapp_number"`
	AfternicURL    string  `json:"afternic_url"`
	Active         bool    `json:"active"`
	IsFeatured     bool    `json:"isFeatured"`
	City           string  `json:"city"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	CreatedAt      string  `json:"created_at,omitempty"`
	UpdatedAt      string  `json:"updated_at,omitempty"`
}

// LoginRequest - body of POST /api/v1/admin/session.
type LoginRequest struct {
	Token string `json:"token"`
}

// SessionResponse - the minted session id returned on a successful login.
type SessionResponse struct {
	SessionID string `json:"sessionId"`
}

// RecalculateResponse - outcome of the bulk BRL recalculation.
type RecalculateResponse struct {
	Updated int `json:"updated"`
}

func newListingCard(l domain.Listing) ListingCardResponse {
	return ListingCardResponse{
		ID:              l.ID,
		DomainName:      l.DomainName,
		Slug:            l.Slug,
		PriceUsdDisplay: domain.FormatCurrency(l.PriceUSD, domain.CurrencyUSD),
		PriceBrlDisplay: domain.FormatCurrency(l.PriceBRL, domain.CurrencyBRL),
		IsFeatured:      l.IsFeatured,
		City:            l.City,
		Category:        l.Category,
	}
}

func newListingCards(listings []domain.Listing) []ListingCardResponse {
	cards := make([]ListingCardResponse, len(listings))
	for i, l := range listings {
		cards[i] = newListingCard(l)
	}
	return cards
}

func newListingDetail(l *domain.Listing) ListingDetailResponse {
	detail := ListingDetailResponse{
		ListingCardResponse: newListingCard(*l),
		Description:         l.Description,
		AfternicURL:         l.AfternicURL,
		CreatedAt:           l.CreatedAt,
		UpdatedAt:           l.UpdatedAt,
	}
	if l.WhatsappNumber != "" {
		detail.WhatsappURL = domain.BuildChatURL(l.WhatsappNumber, l.DomainName)
	}
	return detail
}

func newAdminListing(l domain.Listing) AdminListingResponse {
	return AdminListingResponse{
		ID:             l.ID,
		DomainName:     l.DomainName,
		Slug:           l.Slug,
		PriceUSD:       l.PriceUSD,
		PriceBRL:       l.PriceBRL,
		WhatsappNumber: l.WhatsappNumber,
		AfternicURL:    l.AfternicURL,
		Active:         l.Active,
		IsFeatured:     l.IsFeatured,
		City:           l.City,
		Category:       l.Category,
		Description:    l.Description,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
