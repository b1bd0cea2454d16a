package marketapi

import (
	"domain-market-web/internal/core/domain"
)

// defaultActive is the decision for records that carry no active flag at
// all: they are publicly visible. Only an explicit false deactivates a
// listing.
const defaultActive = true

// Normalize resolves a raw wire record into the canonical listing shape.
// For every dual-spelled field the camelCase value wins when it is present
// and non-falsy (non-empty string, non-zero number, true bool), otherwise
// the snake_case value applies, otherwise the zero default. Normalize never
// fails: malformed or absent fields degrade to zero values.
//
// The slug defaults to the resolved domain name when the backend sent none.
// That default is deliberately NOT URL-escaped and not guaranteed unique;
// it reproduces the backend's own slug behavior, and changing it here would
// break links for records the backend already serves under the raw name.
func Normalize(raw RawListing) domain.Listing {
	name := pickString(raw.DomainName, raw.DomainNameAlt)

	slug := raw.Slug
	if slug == "" {
		slug = name
	}

	return domain.Listing{
		ID:             raw.ID,
		DomainName:     name,
		Slug:           slug,
		PriceUSD:       pickFloat(raw.PriceUSD, raw.PriceUSDAlt),
		PriceBRL:       pickFloat(raw.PriceBRL, raw.PriceBRLAlt),
		WhatsappNumber: pickString(raw.WhatsappNumber, raw.WhatsappNumberAlt),
		AfternicURL:    pickString(raw.AfternicURL, raw.AfternicURLAlt),
		Active:         resolveActive(raw.Active),
		IsFeatured:     pickBool(raw.IsFeatured, raw.IsFeaturedAlt),
		City:           raw.City,
		Category:       raw.Category,
		Description:    raw.Description,
		CreatedAt:      pickString(raw.CreatedAt, raw.CreatedAtAlt),
		UpdatedAt:      pickString(raw.UpdatedAt, raw.UpdatedAtAlt),
	}
}

// AsRaw re-emits a canonical listing as a wire record using only the
// camelCase spellings. Normalize(AsRaw(l)) == l for any normalized l, which
// is what keeps normalization idempotent.
func AsRaw(l domain.Listing) RawListing {
	active := l.Active
	featured := l.IsFeatured
	return RawListing{
		ID:             l.ID,
		DomainName:     l.DomainName,
		Slug:           l.Slug,
		PriceUSD:       l.PriceUSD,
		PriceBRL:       l.PriceBRL,
		WhatsappNumber: l.WhatsappNumber,
		AfternicURL:    l.AfternicURL,
		Active:         &active,
		IsFeatured:     &featured,
		City:           l.City,
		Category:       l.Category,
		Description:    l.Description,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func pickString(primary, fallback string) string {
	if primary != "" {
		return primary
	}
	return fallback
}

func pickFloat(primary, fallback float64) float64 {
	if primary != 0 {
		return primary
	}
	return fallback
}

// pickBool follows the same falsy rule as the other pickers: a camelCase
// false falls through to the snake_case value. Absent both, the flag is off.
func pickBool(primary, fallback *bool) bool {
	if primary != nil && *primary {
		return true
	}
	if fallback != nil {
		return *fallback
	}
	return false
}

// resolveActive maps the tri-state wire flag (true / false / unset) onto the
// canonical bool; unset means defaultActive.
func resolveActive(active *bool) bool {
	if active == nil {
		return defaultActive
	}
	return *active
}
