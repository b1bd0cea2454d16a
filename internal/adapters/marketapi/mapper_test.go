package marketapi

import (
	"testing"

	"domain-market-web/internal/core/domain"
)

func boolPtr(v bool) *bool { return &v }

func TestNormalize(t *testing.T) {
	t.Run("camelCase wins over snake_case when both present", func(t *testing.T) {
		got := Normalize(RawListing{DomainNameAlt: "a.com", DomainName: "b.com"})
		if got.DomainName != "b.com" {
			t.Fatalf("\nwanted:\nb.com\ngot:\n%q", got.DomainName)
		}
	})

	t.Run("snake_case fills in when camelCase is absent", func(t *testing.T) {
		got := Normalize(RawListing{
			ID:                7,
			DomainNameAlt:     "a.com",
			PriceUSDAlt:       1500,
			PriceBRLAlt:       7500,
			WhatsappNumberAlt: "+55 21 99999-8888",
			AfternicURLAlt:    "https://afternic.com/domain/a.com",
		})
		want := domain.Listing{
			ID:             7,
			DomainName:     "a.com",
			Slug:           "a.com",
			PriceUSD:       1500,
			PriceBRL:       7500,
			WhatsappNumber: "+55 21 99999-8888",
			AfternicURL:    "https://afternic.com/domain/a.com",
			Active:         true,
		}
		if got != want {
			t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", want, got)
		}
	})

	t.Run("falsy camelCase number falls back to snake_case", func(t *testing.T) {
		got := Normalize(RawListing{PriceUSD: 0, PriceUSDAlt: 250})
		if got.PriceUSD != 250 {
			t.Fatalf("\nwanted:\n250\ngot:\n%v", got.PriceUSD)
		}
	})

	t.Run("slug defaults to the resolved domain name", func(t *testing.T) {
		got := Normalize(RawListing{DomainNameAlt: "minha loja.com.br"})
		// Deliberately not URL-escaped; the raw name is the slug.
		if got.Slug != "minha loja.com.br" {
			t.Fatalf("\nwanted:\nminha loja.com.br\ngot:\n%q", got.Slug)
		}
	})

	t.Run("explicit slug is kept", func(t *testing.T) {
		got := Normalize(RawListing{DomainName: "a.com", Slug: "a-com"})
		if got.Slug != "a-com" {
			t.Fatalf("\nwanted:\na-com\ngot:\n%q", got.Slug)
		}
	})

	t.Run("absent active flag means active", func(t *testing.T) {
		if got := Normalize(RawListing{}); !got.Active {
			t.Fatalf("\nwanted:\nactive\ngot:\ninactive")
		}
	})

	t.Run("explicit active false is preserved", func(t *testing.T) {
		if got := Normalize(RawListing{Active: boolPtr(false)}); got.Active {
			t.Fatalf("\nwanted:\ninactive\ngot:\nactive")
		}
	})

	t.Run("featured requires an explicit true", func(t *testing.T) {
		if got := Normalize(RawListing{}); got.IsFeatured {
			t.Fatalf("\nwanted:\nnot featured\ngot:\nfeatured")
		}
		if got := Normalize(RawListing{IsFeaturedAlt: boolPtr(true)}); !got.IsFeatured {
			t.Fatalf("\nwanted:\nfeatured\ngot:\nnot featured")
		}
	})

	t.Run("empty record degrades to zero values, no panic", func(t *testing.T) {
		got := Normalize(RawListing{})
		if got.DomainName != "" || got.Slug != "" || got.PriceUSD != 0 {
			t.Fatalf("\nwanted:\nzero-valued listing\ngot:\n%+v", got)
		}
	})
}

func TestNormalizeIdempotence(t *testing.T) {
	tests := []struct {
		name string
		raw  RawListing
	}{
		{"snake_case only", RawListing{ID: 1, DomainNameAlt: "a.com", PriceUSDAlt: 100, WhatsappNumberAlt: "+55 11 1234-5678"}},
		{"camelCase only", RawListing{ID: 2, DomainName: "b.com", PriceUSD: 200, IsFeatured: boolPtr(true)}},
		{"both spellings", RawListing{ID: 3, DomainName: "b.com", DomainNameAlt: "a.com", PriceUSD: 300, PriceUSDAlt: 100}},
		{"neither", RawListing{ID: 4}},
		{"inactive", RawListing{ID: 5, DomainNameAlt: "c.com", Active: boolPtr(false)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := Normalize(tt.raw)
			twice := Normalize(AsRaw(once))
			if once != twice {
				t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", once, twice)
			}
		})
	}
}
